// ABOUTME: Shared Store contract tests run against badger and memory backends.
// ABOUTME: Covers log order, submitted flag, pending upsert, and ClearAll.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/talent/internal/models"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	b, err := OpenBadger(filepath.Join(t.TempDir(), "talent.db"))
	if err != nil {
		t.Fatalf("open badger store: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })

	return map[string]Store{
		"badger": b,
		"memory": NewMemory(),
	}
}

func TestResultLogOrder(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
			var ids []uuid.UUID
			for i := 0; i < 5; i++ {
				r := models.NewTestRecord(models.TestSitUps, float64(30+i), models.TierAverage).
					WithDate(base.AddDate(0, 0, i))
				ids = append(ids, r.ID)
				if err := s.AppendResult(r); err != nil {
					t.Fatalf("append result: %v", err)
				}
			}

			results, err := s.ListResults()
			if err != nil {
				t.Fatalf("list results: %v", err)
			}
			if len(results) != 5 {
				t.Fatalf("got %d results, want 5", len(results))
			}
			for i, r := range results {
				if r.ID != ids[i] {
					t.Errorf("result %d out of insertion order", i)
				}
			}
		})
	}
}

func TestListResultsByType(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_ = s.AppendResult(models.NewTestRecord(models.TestSitUps, 30, models.TierAverage))
			_ = s.AppendResult(models.NewTestRecord(models.TestVerticalJump, 55, models.TierGood))
			_ = s.AppendResult(models.NewTestRecord(models.TestSitUps, 35, models.TierAverage))

			situps, err := s.ListResultsByType(models.TestSitUps)
			if err != nil {
				t.Fatalf("list by type: %v", err)
			}
			if len(situps) != 2 {
				t.Fatalf("got %d sit-ups results, want 2", len(situps))
			}
			if situps[0].Score != 30 || situps[1].Score != 35 {
				t.Error("filtered results lost insertion order")
			}
		})
	}
}

func TestMarkResultSubmitted(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			r := models.NewTestRecord(models.TestShuttleRun, 80, models.TierGood)
			if err := s.AppendResult(r); err != nil {
				t.Fatalf("append result: %v", err)
			}

			if err := s.MarkResultSubmitted(r.ID); err != nil {
				t.Fatalf("mark submitted: %v", err)
			}

			results, _ := s.ListResults()
			if !results[0].Submitted {
				t.Error("record not marked submitted")
			}
			if results[0].Score != 80 || results[0].TestType != models.TestShuttleRun {
				t.Error("immutable fields changed by MarkResultSubmitted")
			}

			if err := s.MarkResultSubmitted(uuid.New()); err == nil {
				t.Error("expected error for unknown record id")
			}
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			p, err := s.GetProfile()
			if err != nil {
				t.Fatalf("get profile: %v", err)
			}
			if p != nil {
				t.Fatal("expected nil profile before save")
			}

			saved := models.NewUserProfile("Asha", 16, "female", "Kerala")
			if err := s.SaveProfile(saved); err != nil {
				t.Fatalf("save profile: %v", err)
			}

			p, err = s.GetProfile()
			if err != nil {
				t.Fatalf("get profile: %v", err)
			}
			if p == nil || p.Name != "Asha" || p.Region != "Kerala" {
				t.Errorf("profile round trip failed: %+v", p)
			}
		})
	}
}

func TestPendingUpsert(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			r := models.NewTestRecord(models.TestEnduranceRun, 2400, models.TierGood)
			p := &models.PendingSubmission{Record: *r, QueuedAt: time.Now()}

			if err := s.UpsertPending(p); err != nil {
				t.Fatalf("upsert pending: %v", err)
			}
			p.Attempts = 2
			if err := s.UpsertPending(p); err != nil {
				t.Fatalf("upsert pending again: %v", err)
			}

			pending, err := s.ListPending()
			if err != nil {
				t.Fatalf("list pending: %v", err)
			}
			if len(pending) != 1 {
				t.Fatalf("got %d pending entries, want 1 (upsert must not duplicate)", len(pending))
			}
			if pending[0].Attempts != 2 {
				t.Errorf("Attempts = %d, want 2", pending[0].Attempts)
			}

			if err := s.RemovePending(r.ID); err != nil {
				t.Fatalf("remove pending: %v", err)
			}
			pending, _ = s.ListPending()
			if len(pending) != 0 {
				t.Errorf("got %d pending entries after remove, want 0", len(pending))
			}

			// Removing an absent id is not an error.
			if err := s.RemovePending(uuid.New()); err != nil {
				t.Errorf("remove absent pending: %v", err)
			}
		})
	}
}

func TestClearAll(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_ = s.SaveProfile(models.NewUserProfile("Asha", 16, "female", "Kerala"))
			r := models.NewTestRecord(models.TestSitUps, 40, models.TierGood)
			_ = s.AppendResult(r)
			_ = s.SaveEarnedBadge(models.EarnedBadge{ID: "first_test", Name: "First Steps", EarnedDate: time.Now()})
			_ = s.UpsertPending(&models.PendingSubmission{Record: *r, QueuedAt: time.Now()})

			if err := s.ClearAll(); err != nil {
				t.Fatalf("clear all: %v", err)
			}

			if p, _ := s.GetProfile(); p != nil {
				t.Error("profile survived ClearAll")
			}
			if results, _ := s.ListResults(); len(results) != 0 {
				t.Error("results survived ClearAll")
			}
			if badges, _ := s.ListEarnedBadges(); len(badges) != 0 {
				t.Error("badges survived ClearAll")
			}
			if pending, _ := s.ListPending(); len(pending) != 0 {
				t.Error("pending submissions survived ClearAll")
			}

			// The log starts fresh after a wipe.
			_ = s.AppendResult(models.NewTestRecord(models.TestSitUps, 41, models.TierGood))
			if results, _ := s.ListResults(); len(results) != 1 {
				t.Error("expected a fresh log after ClearAll")
			}
		})
	}
}

func TestEarnedBadgeRewrite(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			b := models.EarnedBadge{ID: "first_test", Name: "First Steps", EarnedDate: time.Now()}
			_ = s.SaveEarnedBadge(b)
			_ = s.SaveEarnedBadge(b)

			badges, err := s.ListEarnedBadges()
			if err != nil {
				t.Fatalf("list badges: %v", err)
			}
			if len(badges) != 1 {
				t.Errorf("got %d badges, want 1 (same id overwrites)", len(badges))
			}
		})
	}
}
