// ABOUTME: Charm KV client wrapper for the cloud-synced storage backend.
// ABOUTME: Thread-safe initialization, prefix helpers, and automatic sync.
package charm

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

const (
	dbName    = "talent"
	charmHost = "charm.2389.dev"
)

var (
	globalStore *Store
	storeOnce   sync.Once
	storeErr    error
)

// Store implements the storage.Store contract on Charm KV. Values are JSON,
// keys are type-prefixed, and every write syncs to Charm Cloud when enabled.
type Store struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// Open initializes the global Charm-backed store. Thread-safe; can be
// called multiple times.
func Open() (*Store, error) {
	storeOnce.Do(func() {
		// Set server before opening KV
		if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
			storeErr = err
			return
		}

		db, err := kv.OpenWithDefaultsFallback(dbName)
		if err != nil {
			storeErr = err
			return
		}

		globalStore = &Store{
			kv:       db,
			autoSync: true,
		}

		// Pull remote data on startup (skip in read-only mode)
		if !db.IsReadOnly() {
			_ = db.Sync()
		}
	})

	return globalStore, storeErr
}

// Close closes the KV database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (s *Store) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *Store) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

func (s *Store) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}

// set stores a value; caller must hold the write lock.
func (s *Store) setLocked(key string, data []byte) error {
	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := s.kv.Set([]byte(key), data); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

func (s *Store) set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(key, data)
}

func (s *Store) get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kv.Get([]byte(key))
}

func (s *Store) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := s.kv.Delete([]byte(key)); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// listByPrefix returns all values with keys matching the prefix, in sorted
// key order.
func (s *Store) listByPrefix(prefix string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listByPrefixLocked(prefix)
}

func (s *Store) listByPrefixLocked(prefix string) ([][]byte, error) {
	keys, err := s.sortedKeys(prefix)
	if err != nil {
		return nil, err
	}

	var results [][]byte
	for _, key := range keys {
		val, err := s.kv.Get(key)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}
	return results, nil
}

// sortedKeys returns keys with the given prefix in ascending byte order so
// sequence-keyed entries replay in insertion order.
func (s *Store) sortedKeys(prefix string) ([][]byte, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}

	prefixBytes := []byte(prefix)
	var matched [][]byte
	for _, key := range keys {
		if bytes.HasPrefix(key, prefixBytes) {
			matched = append(matched, key)
		}
	}
	sortKeys(matched)
	return matched, nil
}

func sortKeys(keys [][]byte) {
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i], keys[j]) < 0
	})
}
