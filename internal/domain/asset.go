package domain

// Asset is a display asset (e.g. a partner logo) served by the site.
type Asset struct {
	Path  string  `json:"path"`
	Label string  `json:"label"`
	Scale float64 `json:"scale,omitempty"`
	Href  string  `json:"href,omitempty"`
}

// AssetLister lists display assets by category. Implementations decide
// where assets live (filesystem, object store); the catalog is not
// coupled to any particular layout.
type AssetLister interface {
	List(category string) ([]Asset, error)
}
