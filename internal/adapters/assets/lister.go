package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"corelabevents/internal/domain"
)

var imageExtensions = map[string]struct{}{
	".svg":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// Overrides adjusts display metadata for individual asset files, keyed
// by filename without extension.
type Overrides struct {
	Labels map[string]string
	Links  map[string]string
	Scales map[string]float64
}

// fsLister lists assets from a filesystem tree: one subdirectory per
// category, image files only.
type fsLister struct {
	fsys      fs.FS
	baseURL   string
	overrides Overrides
}

// NewFSLister returns an AssetLister over fsys. baseURL is prefixed to
// every returned asset path (e.g. "/assets").
func NewFSLister(fsys fs.FS, baseURL string, overrides Overrides) domain.AssetLister {
	return &fsLister{
		fsys:      fsys,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		overrides: overrides,
	}
}

func (l *fsLister) List(category string) ([]domain.Asset, error) {
	if !fs.ValidPath(category) || category == "." {
		return nil, fmt.Errorf("invalid asset category %q", category)
	}
	entries, err := fs.ReadDir(l.fsys, category)
	if err != nil {
		return nil, fmt.Errorf("read asset category %q: %w", category, err)
	}

	assets := []domain.Asset{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if _, ok := imageExtensions[ext]; !ok {
			continue
		}
		identifier := strings.TrimSuffix(name, path.Ext(name))

		label := l.overrides.Labels[identifier]
		if label == "" {
			label = strings.NewReplacer("-", " ", "_", " ").Replace(identifier)
		}
		assets = append(assets, domain.Asset{
			Path:  l.baseURL + "/" + category + "/" + name,
			Label: label,
			Scale: l.overrides.Scales[identifier],
			Href:  l.overrides.Links[identifier],
		})
	}
	return assets, nil
}
