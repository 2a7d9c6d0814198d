package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheFragment stores rendered output
func (s *Store) CacheFragment(ctx context.Context, kind, fingerprint string, year int, html []byte, ttl time.Duration) error {
	key := FragmentKey(kind, fingerprint, year)
	if err := s.client.Set(ctx, key, html, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache fragment: %w", err)
	}
	return nil
}

// GetCachedFragment retrieves rendered output. A miss returns (nil, nil).
func (s *Store) GetCachedFragment(ctx context.Context, kind, fingerprint string, year int) ([]byte, error) {
	key := FragmentKey(kind, fingerprint, year)
	html, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cached fragment: %w", err)
	}
	return html, nil
}

// PruneFragments deletes cached fragments that don't belong to the given
// fingerprint and year. It returns the number of deleted keys.
func (s *Store) PruneFragments(ctx context.Context, keepFingerprint string, keepYear int) (int, error) {
	deleted := 0
	iter := s.client.Scan(ctx, 0, KeyPrefixFragment+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		_, fp, year, err := ParseFragmentKey(key)
		if err == nil && fp == keepFingerprint && year == keepYear {
			continue
		}
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return deleted, fmt.Errorf("failed to delete fragment key: %w", err)
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to prune fragments: %w", err)
	}
	return deleted, nil
}

// FlushCache removes all cached fragments
func (s *Store) FlushCache(ctx context.Context) error {
	_, err := s.PruneFragments(ctx, "", -1)
	return err
}
