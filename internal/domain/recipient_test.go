package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecipients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Recipient
	}{
		{
			name: "bare email",
			raw:  "marie.martin@chu.fr",
			want: []Recipient{{Name: "marie.martin", Email: "marie.martin@chu.fr", Gender: "M"}},
		},
		{
			name: "name angle brackets",
			raw:  "Jean Dupont <jean.dupont@hopital.fr>",
			want: []Recipient{{Name: "Jean Dupont", Email: "jean.dupont@hopital.fr", Gender: "M"}},
		},
		{
			name: "name comma email",
			raw:  "Jean Dupont, jean.dupont@hopital.fr",
			want: []Recipient{{Name: "Jean Dupont", Email: "jean.dupont@hopital.fr", Gender: "M"}},
		},
		{
			name: "name semicolon email",
			raw:  "Jean Dupont; jean.dupont@hopital.fr",
			want: []Recipient{{Name: "Jean Dupont", Email: "jean.dupont@hopital.fr", Gender: "M"}},
		},
		{
			name: "gender marker with title",
			raw:  "F, Dr Marie Martin, marie.martin@chu.fr",
			want: []Recipient{{Name: "Dr Marie Martin", Email: "marie.martin@chu.fr", Gender: "F"}},
		},
		{
			name: "gender marker with angle brackets",
			raw:  "M; Pr Paul Durand <paul.durand@chu.fr>",
			want: []Recipient{{Name: "Pr Paul Durand", Email: "paul.durand@chu.fr", Gender: "M"}},
		},
		{
			name: "lowercase gender marker",
			raw:  "f, Mme Claire Petit, claire.petit@chu.fr",
			want: []Recipient{{Name: "Mme Claire Petit", Email: "claire.petit@chu.fr", Gender: "F"}},
		},
		{
			name: "malformed lines dropped silently",
			raw:  "no email here\n\njust-a-name\nvalid@chu.fr",
			want: []Recipient{{Name: "valid", Email: "valid@chu.fr", Gender: "M"}},
		},
		{
			name: "duplicates preserved",
			raw:  "a@chu.fr\na@chu.fr",
			want: []Recipient{
				{Name: "a", Email: "a@chu.fr", Gender: "M"},
				{Name: "a", Email: "a@chu.fr", Gender: "M"},
			},
		},
		{
			name: "mixed lines",
			raw:  "F, Dr Marie Martin, marie.martin@chu.fr\ngarbage line\nJean Dupont <jean@chu.fr>",
			want: []Recipient{
				{Name: "Dr Marie Martin", Email: "marie.martin@chu.fr", Gender: "F"},
				{Name: "Jean Dupont", Email: "jean@chu.fr", Gender: "M"},
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRecipients(tt.raw)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStripTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"doctor", "Dr Marie Martin", "Marie Martin"},
		{"doctor with dot", "Dr. Marie Martin", "Marie Martin"},
		{"professor", "Pr Paul Durand", "Paul Durand"},
		{"madame", "Mme Claire Petit", "Claire Petit"},
		{"no title", "Marie Martin", "Marie Martin"},
		{"title only word", "Dr", "Dr"},
		{"title-like first name kept", "Driss Alami", "Driss Alami"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StripTitle(tt.in))
		})
	}
}

func TestSalutation(t *testing.T) {
	require.Equal(t, "Chère Marie Martin", Salutation("Dr Marie Martin", "F"))
	require.Equal(t, "Cher Paul Durand", Salutation("Pr Paul Durand", "M"))
	require.Equal(t, "Cher jean.dupont", Salutation("jean.dupont", ""))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "j.dupont@hopital.fr", NormalizeEmail("  J.Dupont@Hopital.FR "))
}
