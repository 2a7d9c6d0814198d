package scheduler

import (
	"context"
	"errors"

	"github.com/ecosystem-ai/footer/internal/catalog"
	"github.com/ecosystem-ai/footer/internal/logger"
	redisstore "github.com/ecosystem-ai/footer/internal/store/redis"
)

// RedisSyncer restores the last persisted snapshot into the catalog on startup
type RedisSyncer struct {
	store   *redisstore.Store
	catalog *catalog.Catalog
	logger  logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	cat *catalog.Catalog,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:   store,
		catalog: cat,
		logger:  log,
	}
}

// Sync loads the snapshot from Redis into the catalog.
// An empty Redis is not an error.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("restoring menu snapshot from redis")

	footer, err := rs.store.LoadSnapshot(ctx)
	if errors.Is(err, redisstore.ErrNoSnapshot) {
		rs.logger.Info("no snapshot found in redis")
		return nil
	}
	if err != nil {
		return err
	}

	rs.catalog.Swap(footer, catalog.SourceRedis)

	rs.logger.Info("restored menu snapshot from redis",
		logger.String("fingerprint", footer.Fingerprint()),
		logger.Int("sections", len(footer.Sections)))

	return nil
}
