package redis

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// KeySnapshot holds the last loaded footer snapshot
	KeySnapshot = "footer:snapshot"
	// KeyPrefixFragment is the prefix for rendered output keys
	KeyPrefixFragment = "footer:fragment:"
)

// SnapshotKey returns the key of the persisted snapshot
func SnapshotKey() string {
	return KeySnapshot
}

// FragmentKey returns the key of a rendered artifact.
// Example: footer:fragment:page:3f9c0a1b2c3d4e5f:2031
func FragmentKey(kind, fingerprint string, year int) string {
	return KeyPrefixFragment + kind + ":" + fingerprint + ":" + strconv.Itoa(year)
}

// ParseFragmentKey splits a fragment key into its parts
func ParseFragmentKey(key string) (kind, fingerprint string, year int, err error) {
	if !strings.HasPrefix(key, KeyPrefixFragment) {
		return "", "", 0, fmt.Errorf("invalid fragment key: %s", key)
	}
	parts := strings.Split(key[len(KeyPrefixFragment):], ":")
	if len(parts) != 3 {
		return "", "", 0, fmt.Errorf("invalid fragment key: %s", key)
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid fragment year in %s: %w", key, err)
	}
	return parts[0], parts[1], year, nil
}
