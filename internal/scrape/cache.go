package scrape

import (
	"log"
	"sync"
	"time"
)

// DefaultTTL is how long a successfully loaded snapshot stays fresh.
const DefaultTTL = 5 * time.Minute

// Source produces one snapshot of the external bulk dataset.
type Source interface {
	Fetch() ([]Row, error)
}

// Cache keeps the last successful dataset snapshot for a TTL. The mutex is
// held across the refetch, so concurrent callers share one in-flight fetch
// and only ever observe either the old snapshot or a complete new one.
type Cache struct {
	source Source
	ttl    time.Duration

	mu        sync.Mutex
	rows      []Row
	fetchedAt time.Time

	now func() time.Time
}

// NewCache creates a cache around the given source. A non-positive ttl
// falls back to DefaultTTL.
func NewCache(source Source, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Rows returns the current snapshot, refetching synchronously when the
// cached one has expired. A failed refetch falls back to the previous
// non-empty snapshot, else an empty set; callers never see an error.
func (c *Cache) Rows() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.rows) > 0 && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.rows
	}

	rows, err := c.source.Fetch()
	if err != nil {
		if len(c.rows) > 0 {
			log.Printf("scrape: refresh failed, serving previous snapshot: %v", err)
			return c.rows
		}
		log.Printf("scrape: fetch failed and no snapshot cached: %v", err)
		return nil
	}

	c.rows = rows
	c.fetchedAt = c.now()
	return c.rows
}
