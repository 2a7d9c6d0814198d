package scheduler

import (
	"context"
	"time"

	"github.com/ecosystem-ai/footer/internal/catalog"
	"github.com/ecosystem-ai/footer/internal/logger"
	redisstore "github.com/ecosystem-ai/footer/internal/store/redis"
)

// DefaultPruneInterval is how often stale fragments are swept
const DefaultPruneInterval = time.Hour

// CachePruner deletes cached fragments rendered from an older snapshot or
// for a past year.
type CachePruner struct {
	store    *redisstore.Store
	catalog  *catalog.Catalog
	logger   logger.Logger
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

// NewCachePruner creates a new pruner
func NewCachePruner(
	store *redisstore.Store,
	cat *catalog.Catalog,
	log logger.Logger,
	interval time.Duration,
	now func() time.Time,
) *CachePruner {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}
	if now == nil {
		now = time.Now
	}

	return &CachePruner{
		store:    store,
		catalog:  cat,
		logger:   log,
		interval: interval,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic pruning
func (cp *CachePruner) Start(ctx context.Context) error {
	ticker := time.NewTicker(cp.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := cp.Prune(ctx); err != nil {
					cp.logger.Error("fragment pruning failed",
						logger.Error(err))
				}
			case <-cp.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the pruner
func (cp *CachePruner) Stop() {
	close(cp.stopCh)
}

// Prune deletes every fragment that isn't for the live fingerprint and the
// current year.
func (cp *CachePruner) Prune(ctx context.Context) (int, error) {
	if cp.store == nil || !cp.catalog.Loaded() {
		return 0, nil
	}

	deleted, err := cp.store.PruneFragments(ctx, cp.catalog.Fingerprint(), cp.now().Year())
	if err != nil {
		return deleted, err
	}

	if deleted > 0 {
		cp.logger.Info("pruned stale fragments",
			logger.Int("deleted", deleted))
	} else {
		cp.logger.Debug("no stale fragments to prune")
	}

	return deleted, nil
}
