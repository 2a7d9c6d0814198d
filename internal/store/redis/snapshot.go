package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecosystem-ai/footer/internal/domain"
)

const (
	// DefaultSnapshotTTL keeps the last snapshot around across restarts
	DefaultSnapshotTTL = 30 * 24 * time.Hour
	// DefaultCacheTTL is the default TTL for rendered fragments
	DefaultCacheTTL = 24 * time.Hour
)

// ErrNoSnapshot is returned when Redis holds no snapshot.
var ErrNoSnapshot = errors.New("no snapshot in redis")

// Store handles Redis operations for snapshots and rendered fragments
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// SaveSnapshot persists a footer snapshot
func (s *Store) SaveSnapshot(ctx context.Context, footer *domain.Footer) error {
	data, err := json.Marshal(footer)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, SnapshotKey(), data, DefaultSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot retrieves and validates the persisted snapshot
func (s *Store) LoadSnapshot(ctx context.Context) (*domain.Footer, error) {
	data, err := s.client.Get(ctx, SnapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var footer domain.Footer
	if err := json.Unmarshal(data, &footer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	if err := footer.Validate(); err != nil {
		return nil, fmt.Errorf("stored snapshot rejected: %w", err)
	}

	return &footer, nil
}
