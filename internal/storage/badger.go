// ABOUTME: Badger-backed Store implementation for local durable storage.
// ABOUTME: Prefix-keyed JSON values; result log keyed by a padded sequence number.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/harperreed/talent/internal/models"
)

// BadgerStore implements Store on top of a local Badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger database at the given path.
func OpenBadger(path string) (*BadgerStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "talent")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "talent.db")
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// AppendResult appends a test record to the result log.
// Records are keyed by a zero-padded sequence number so Badger's sorted key
// iteration replays insertion order.
func (s *BadgerStore) AppendResult(r *models.TestRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSeq(txn)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%s%012d", ResultPrefix, seq)
		return txn.Set([]byte(key), data)
	})
}

func nextSeq(txn *badger.Txn) (uint64, error) {
	var seq uint64
	item, err := txn.Get([]byte(ResultSeqKey))
	switch err {
	case nil:
		val, err := item.ValueCopy(nil)
		if err != nil {
			return 0, fmt.Errorf("read sequence: %w", err)
		}
		seq, err = strconv.ParseUint(string(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse sequence: %w", err)
		}
	case badger.ErrKeyNotFound:
		seq = 0
	default:
		return 0, fmt.Errorf("get sequence: %w", err)
	}

	seq++
	if err := txn.Set([]byte(ResultSeqKey), []byte(strconv.FormatUint(seq, 10))); err != nil {
		return 0, fmt.Errorf("bump sequence: %w", err)
	}
	return seq, nil
}

// ListResults returns the full result log in insertion order.
// Entries that fail to decode are skipped so one corrupt value cannot make
// the whole log unreadable.
func (s *BadgerStore) ListResults() ([]*models.TestRecord, error) {
	var results []*models.TestRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(ResultPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read result: %w", err)
			}
			var r models.TestRecord
			if err := json.Unmarshal(val, &r); err != nil {
				continue // skip invalid entries
			}
			results = append(results, &r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

// ListResultsByType returns results for one test type, in insertion order.
func (s *BadgerStore) ListResultsByType(testType models.TestType) ([]*models.TestRecord, error) {
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
func (s *BadgerStore) MarkResultSubmitted(id uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(ResultPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			val, err := it.Item().ValueCopy(nil)
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
			return txn.Set(key, data)
		}
		return fmt.Errorf("result %s not found", id)
	})
}

// SaveProfile stores the user profile.
func (s *BadgerStore) SaveProfile(p *models.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(ProfileKey), data)
	})
}

// GetProfile retrieves the user profile, or nil if none is saved.
func (s *BadgerStore) GetProfile() (*models.UserProfile, error) {
	var p *models.UserProfile
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(ProfileKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		var profile models.UserProfile
		if err := json.Unmarshal(val, &profile); err != nil {
			return fmt.Errorf("unmarshal profile: %w", err)
		}
		p = &profile
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// SaveEarnedBadge records an earned badge. Writing the same badge ID again
// overwrites the existing entry, so re-saving is harmless.
func (s *BadgerStore) SaveEarnedBadge(b models.EarnedBadge) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal badge: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(BadgePrefix+b.ID), data)
	})
}

// ListEarnedBadges returns all earned badges.
func (s *BadgerStore) ListEarnedBadges() ([]models.EarnedBadge, error) {
	var badges []models.EarnedBadge
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(BadgePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read badge: %w", err)
			}
			var b models.EarnedBadge
			if err := json.Unmarshal(val, &b); err != nil {
				continue // skip invalid entries
			}
			badges = append(badges, b)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return badges, nil
}

// UpsertPending inserts or replaces the pending submission for its record ID.
func (s *BadgerStore) UpsertPending(p *models.PendingSubmission) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pending submission: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(PendingPrefix+p.Record.ID.String()), data)
	})
}

// ListPending returns all pending submissions.
func (s *BadgerStore) ListPending() ([]*models.PendingSubmission, error) {
	var pending []*models.PendingSubmission
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(PendingPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read pending submission: %w", err)
			}
			var p models.PendingSubmission
			if err := json.Unmarshal(val, &p); err != nil {
				continue // skip invalid entries
			}
			pending = append(pending, &p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list pending submissions: %w", err)
	}
	return pending, nil
}

// RemovePending deletes the pending submission for a record ID, matched by
// ID rather than position. Removing an absent ID is not an error.
func (s *BadgerStore) RemovePending(id uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(PendingPrefix + id.String()))
	})
}

// ClearAll deletes the profile, result log, earned badges, and pending
// submissions. Used on logout.
func (s *BadgerStore) ClearAll() error {
	return s.db.Update(func(txn *badger.Txn) error {
		var keys [][]byte

		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		return nil
	})
}
