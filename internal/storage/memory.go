// ABOUTME: In-memory Store implementation for tests.
// ABOUTME: Mirrors backend semantics: insertion-order log, id-keyed pending set.
package storage

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/talent/internal/models"
)

// MemoryStore is an in-memory Store used by package tests.
type MemoryStore struct {
	mu      sync.RWMutex
	results []*models.TestRecord
	profile *models.UserProfile
	badges  []models.EarnedBadge
	pending map[uuid.UUID]*models.PendingSubmission
	order   []uuid.UUID // pending insertion order
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{pending: make(map[uuid.UUID]*models.PendingSubmission)}
}

func (s *MemoryStore) AppendResult(r *models.TestRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rc := *r
	s.results = append(s.results, &rc)
	return nil
}

func (s *MemoryStore) ListResults() ([]*models.TestRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.TestRecord, len(s.results))
	for i, r := range s.results {
		rc := *r
		out[i] = &rc
	}
	return out, nil
}

func (s *MemoryStore) ListResultsByType(testType models.TestType) ([]*models.TestRecord, error) {
	all, err := s.ListResults()
	if err != nil {
		return nil, err
	}
	var out []*models.TestRecord
	for _, r := range all {
		if r.TestType == testType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) MarkResultSubmitted(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.results {
		if r.ID == id {
			r.Submitted = true
			return nil
		}
	}
	return fmt.Errorf("result %s not found", id)
}

func (s *MemoryStore) SaveProfile(p *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pc := *p
	s.profile = &pc
	return nil
}

func (s *MemoryStore) GetProfile() (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, nil
	}
	pc := *s.profile
	return &pc, nil
}

func (s *MemoryStore) SaveEarnedBadge(b models.EarnedBadge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.badges {
		if existing.ID == b.ID {
			s.badges[i] = b
			return nil
		}
	}
	s.badges = append(s.badges, b)
	return nil
}

func (s *MemoryStore) ListEarnedBadges() ([]models.EarnedBadge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.EarnedBadge, len(s.badges))
	copy(out, s.badges)
	return out, nil
}

func (s *MemoryStore) UpsertPending(p *models.PendingSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pc := *p
	id := p.Record.ID
	if _, ok := s.pending[id]; !ok {
		s.order = append(s.order, id)
	}
	s.pending[id] = &pc
	return nil
}

func (s *MemoryStore) ListPending() ([]*models.PendingSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PendingSubmission
	for _, id := range s.order {
		if p, ok := s.pending[id]; ok {
			pc := *p
			out = append(out, &pc)
		}
	}
	return out, nil
}

func (s *MemoryStore) RemovePending(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
	return nil
}

func (s *MemoryStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
	s.profile = nil
	s.badges = nil
	s.pending = make(map[uuid.UUID]*models.PendingSubmission)
	s.order = nil
	return nil
}

func (s *MemoryStore) Close() error { return nil }
