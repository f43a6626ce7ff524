// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

// Package cache provides the opaque key-value store shared by reconciler
// and writer workers. Keys are opaque strings constructed by callers;
// values are raw bytes (JSON helpers included). Backed by PebbleDB with
// synchronous writes so a Set observed by any worker is visible to all
// subsequent Gets.
package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/cockroachdb/pebble/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Store is the cache handle injected into the reconciler and writer.
// Implementations must support safe concurrent Get/Set from many workers
// with read-your-writes consistency. No cross-key transactions.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
	Close() error
}

// PebbleStore implements Store on a PebbleDB database.
type PebbleStore struct {
	db *pebble.DB
}

// Open opens (or creates) a pebble-backed cache at path.
func Open(path string) (*PebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

// Get returns the value for key, a presence flag, and any I/O error.
// A missing key is (nil, false, nil).
func (s *PebbleStore) Get(key string) ([]byte, bool, error) {
	value, closer, err := s.db.Get([]byte(key))
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %q: %w", key, err)
	}
	defer closer.Close()

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set stores value under key with a synchronous write.
func (s *PebbleStore) Set(key string, value []byte) error {
	if err := s.db.Set([]byte(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// Delete removes a single key.
func (s *PebbleStore) Delete(key string) error {
	if err := s.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

// Clear removes every entry.
func (s *PebbleStore) Clear() error {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}

	batch := s.db.NewBatch()
	for iter.First(); iter.Valid(); iter.Next() {
		k := make([]byte, len(iter.Key()))
		copy(k, iter.Key())
		if err := batch.Delete(k, nil); err != nil {
			iter.Close()
			batch.Close()
			return fmt.Errorf("cache clear: %w", err)
		}
	}
	if err := iter.Close(); err != nil {
		batch.Close()
		return fmt.Errorf("cache clear: %w", err)
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *PebbleStore) Close() error {
	return s.db.Close()
}

// GetJSON unmarshals the cached value for key into out.
func GetJSON(s Store, key string, out interface{}) (bool, error) {
	data, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("cache decode %q: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and stores it under key.
func SetJSON(s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %q: %w", key, err)
	}
	return s.Set(key, data)
}

// keyFolder strips diacritics so "Émile Zola" and "Emile Zola" share a key.
var keyFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// MetadataKey builds the reconciliation cache key from a title/author pair,
// case-insensitive and diacritic-folded.
func MetadataKey(title, author string) string {
	return "meta:" + foldKey(title) + "|" + foldKey(author)
}

// CoverKey builds the cover-bytes cache key for a book group.
func CoverKey(groupID string) string {
	return "cover:" + groupID
}

func foldKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(keyFolder, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}
