package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tab/holy-grind/pkg/grind"
)

// ErrGrinderNotFound is returned when a grinder id is not in the catalog.
var ErrGrinderNotFound = errors.New("grinder not found")

// Catalog is the set of grinders conversions are made between. A loaded
// Catalog is never modified.
type Catalog struct {
	Version  string          `json:"version"`
	Source   string          `json:"source"`
	Grinders []grind.Grinder `json:"grinders"`
}

// Find returns the grinder with the given id.
func (c *Catalog) Find(id string) (*grind.Grinder, error) {
	for i := range c.Grinders {
		if c.Grinders[i].ID == id {
			return &c.Grinders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGrinderNotFound, id)
}

// Search returns the grinders whose name contains query, ignoring case, in
// catalog order. An empty query matches everything.
func (c *Catalog) Search(query string) []*grind.Grinder {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]*grind.Grinder, 0, len(c.Grinders))
	for i := range c.Grinders {
		if query == "" || strings.Contains(strings.ToLower(c.Grinders[i].Name), query) {
			out = append(out, &c.Grinders[i])
		}
	}
	return out
}

func (c *Catalog) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"version":  c.Version,
		"source":   c.Source,
		"grinders": len(c.Grinders),
	}
}
