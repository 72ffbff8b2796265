package types

// CatalogInfo describes the catalog a daemon is serving.
// This struct is shared between the daemon and client packages.
type CatalogInfo struct {
	Version string `json:"version"`
	Source  string `json:"source"`
	Count   int    `json:"count"`
}

// GrinderSummary is a search hit: enough to pick a grinder from a list.
type GrinderSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Numeric bool   `json:"numeric"`
}
