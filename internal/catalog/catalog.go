package catalog

import (
	"sync"
	"time"

	"github.com/ecosystem-ai/footer/internal/domain"
)

// Source tells where the live snapshot came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceBuiltin Source = "builtin"
	SourceFile    Source = "file"
	SourceRedis   Source = "redis"
)

// Catalog holds the live footer snapshot.
//
// Snapshots are immutable; Swap replaces the pointer and never touches the
// previous value, so readers that already hold a snapshot keep a
// consistent view while a reload happens.
type Catalog struct {
	mu          sync.RWMutex
	footer      *domain.Footer
	fingerprint string
	source      Source
	lastReload  time.Time
	now         func() time.Time
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		source: SourceNone,
		now:    time.Now,
	}
}

// Swap installs a new snapshot. The footer must not be modified afterwards.
func (c *Catalog) Swap(f *domain.Footer, source Source) {
	fp := f.Fingerprint()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.footer = f
	c.fingerprint = fp
	c.source = source
	c.lastReload = c.now()
}

// Current returns the live snapshot, or nil if none was loaded yet.
func (c *Catalog) Current() *domain.Footer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.footer
}

// Snapshot returns the live snapshot together with its fingerprint, read
// under the same lock.
func (c *Catalog) Snapshot() (*domain.Footer, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.footer, c.fingerprint
}

// Fingerprint returns the fingerprint of the live snapshot.
func (c *Catalog) Fingerprint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.fingerprint
}

// Source returns where the live snapshot came from.
func (c *Catalog) Source() Source {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.source
}

// Loaded reports whether a snapshot is available.
func (c *Catalog) Loaded() bool {
	return c.Current() != nil
}

// GetLastReload returns the time of the last Swap.
func (c *Catalog) GetLastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
