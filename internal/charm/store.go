// ABOUTME: storage.Store implementation backed by the Charm KV client.
// ABOUTME: Mirrors the Badger backend's key scheme so data shapes stay identical.
package charm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/harperreed/talent/internal/models"
	"github.com/harperreed/talent/internal/storage"
)

// AppendResult appends a test record to the result log. The sequence counter
// and the write happen under one lock, so concurrent appends cannot collide
// on a key.
func (s *Store) AppendResult(r *models.TestRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq, err := s.nextSeqLocked()
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%012d", storage.ResultPrefix, seq)
	return s.setLocked(key, data)
}

// nextSeqLocked bumps and returns the result sequence counter; caller must
// hold the write lock.
func (s *Store) nextSeqLocked() (uint64, error) {
	var seq uint64
	val, err := s.kv.Get([]byte(storage.ResultSeqKey))
	switch {
	case err == nil:
		seq, err = strconv.ParseUint(string(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse sequence: %w", err)
		}
	case errors.Is(err, badger.ErrKeyNotFound):
		seq = 0
	default:
		return 0, fmt.Errorf("get sequence: %w", err)
	}

	seq++
	if err := s.kv.Set([]byte(storage.ResultSeqKey), []byte(strconv.FormatUint(seq, 10))); err != nil {
		return 0, fmt.Errorf("bump sequence: %w", err)
	}
	return seq, nil
}

// ListResults returns the full result log in insertion order.
// Entries that fail to decode are skipped so one corrupt value cannot make
// the whole log unreadable.
func (s *Store) ListResults() ([]*models.TestRecord, error) {
	values, err := s.listByPrefix(storage.ResultPrefix)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	var results []*models.TestRecord
	for _, val := range values {
		var r models.TestRecord
		if err := json.Unmarshal(val, &r); err != nil {
			continue // skip invalid entries
		}
		results = append(results, &r)
	}
	return results, nil
}

// ListResultsByType returns results for one test type, in insertion order.
func (s *Store) ListResultsByType(testType models.TestType) ([]*models.TestRecord, error) {
	all, err := s.ListResults()
	if err != nil {
		return nil, err
	}
	var results []*models.TestRecord
	for _, r := range all {
		if r.TestType == testType {
			results = append(results, r)
		}
	}
	return results, nil
}

// MarkResultSubmitted flips the submitted flag on the log record with the
// given ID. The rest of the record is rewritten unchanged.
func (s *Store) MarkResultSubmitted(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.sortedKeys(storage.ResultPrefix)
	if err != nil {
		return fmt.Errorf("list result keys: %w", err)
	}

	for _, key := range keys {
		val, err := s.kv.Get(key)
		if err != nil {
			return fmt.Errorf("read result: %w", err)
		}
		var r models.TestRecord
		if err := json.Unmarshal(val, &r); err != nil {
			continue
		}
		if r.ID != id {
			continue
		}
		r.Submitted = true
		data, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		return s.setLocked(string(key), data)
	}
	return fmt.Errorf("result %s not found", id)
}

// SaveProfile stores the user profile.
func (s *Store) SaveProfile(p *models.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.set(storage.ProfileKey, data)
}

// GetProfile retrieves the user profile, or nil if none is saved.
func (s *Store) GetProfile() (*models.UserProfile, error) {
	val, err := s.get(storage.ProfileKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p models.UserProfile
	if err := json.Unmarshal(val, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// SaveEarnedBadge records an earned badge. Writing the same badge ID again
// overwrites the existing entry, so re-saving is harmless.
func (s *Store) SaveEarnedBadge(b models.EarnedBadge) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal badge: %w", err)
	}
	return s.set(storage.BadgePrefix+b.ID, data)
}

// ListEarnedBadges returns all earned badges.
func (s *Store) ListEarnedBadges() ([]models.EarnedBadge, error) {
	values, err := s.listByPrefix(storage.BadgePrefix)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	var badges []models.EarnedBadge
	for _, val := range values {
		var b models.EarnedBadge
		if err := json.Unmarshal(val, &b); err != nil {
			continue // skip invalid entries
		}
		badges = append(badges, b)
	}
	return badges, nil
}

// UpsertPending inserts or replaces the pending submission for its record ID.
func (s *Store) UpsertPending(p *models.PendingSubmission) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pending submission: %w", err)
	}
	return s.set(storage.PendingPrefix+p.Record.ID.String(), data)
}

// ListPending returns all pending submissions.
func (s *Store) ListPending() ([]*models.PendingSubmission, error) {
	values, err := s.listByPrefix(storage.PendingPrefix)
	if err != nil {
		return nil, fmt.Errorf("list pending submissions: %w", err)
	}

	var pending []*models.PendingSubmission
	for _, val := range values {
		var p models.PendingSubmission
		if err := json.Unmarshal(val, &p); err != nil {
			continue // skip invalid entries
		}
		pending = append(pending, &p)
	}
	return pending, nil
}

// RemovePending deletes the pending submission for a record ID. Removing an
// absent ID is not an error.
func (s *Store) RemovePending(id uuid.UUID) error {
	err := s.delete(storage.PendingPrefix + id.String())
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

// ClearAll deletes every key, including the sequence counter. Used on logout.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	keys, err := s.kv.Keys()
	if err != nil {
		return fmt.Errorf("list keys: %w", err)
	}
	for _, key := range keys {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	s.syncIfEnabled()
	return nil
}
