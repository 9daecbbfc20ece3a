package helpers

import (
	"encoding/csv"
	"fmt"
	"net/http"
)

// utf8BOM makes spreadsheet tools detect UTF-8 in the exported file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV streams a semicolon-delimited CSV attachment with a UTF-8
// BOM. Field quoting and escaping follow encoding/csv, so separators and
// quotes inside values do not break row boundaries.
func WriteCSV(w http.ResponseWriter, filename string, headers []string, rows [][]string) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
