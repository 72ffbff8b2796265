package daemon

import (
	"sync"
	"time"

	"github.com/tab/holy-grind/pkg/catalog"
	"github.com/tab/holy-grind/pkg/converter"
	"github.com/tab/holy-grind/pkg/events"
)

// catalogStore holds the catalog being served. A reload builds a complete
// new catalog before swapping it in; a loaded catalog is never modified.
type catalogStore struct {
	mu  sync.RWMutex
	svc *converter.Service
}

func (s *catalogStore) Service() *converter.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.svc
}

// Load replaces the served catalog with the one at path. On error the
// current catalog stays in place.
func (s *catalogStore) Load(path string) (*catalog.Catalog, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	s.Set(c)

	sseHub.Publish(events.CatalogReloaded, events.CatalogReloadedEvent{
		Version: c.Version,
		Source:  c.Source,
		Count:   len(c.Grinders),
		Ts:      time.Now().Unix(),
	})

	return c, nil
}

func (s *catalogStore) Set(c *catalog.Catalog) {
	svc := converter.New(c, messages)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.svc = svc
}
