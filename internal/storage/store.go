// ABOUTME: Store interface for assessment data persistence.
// ABOUTME: Defines the contract for the result log, profile, badges, and pending set.
package storage

import (
	"github.com/google/uuid"
	"github.com/harperreed/talent/internal/models"
)

// Key namespaces shared by all backends.
const (
	ProfileKey    = "profile"
	ResultPrefix  = "result:"
	BadgePrefix   = "badge:"
	PendingPrefix = "pending:"
	ResultSeqKey  = "seq:result"
)

// Store defines the storage interface for assessment data.
// This interface allows swapping implementations (e.g., for testing).
//
// The result log is append-only: a record's ID, test type, score, and date
// never change after AppendResult; only the submitted flag mutates, through
// MarkResultSubmitted. The pending set is keyed by record ID, so
// UpsertPending never creates duplicates for the same record.
type Store interface {
	// Result log
	AppendResult(r *models.TestRecord) error
	ListResults() ([]*models.TestRecord, error)
	ListResultsByType(testType models.TestType) ([]*models.TestRecord, error)
	MarkResultSubmitted(id uuid.UUID) error

	// Profile
	SaveProfile(p *models.UserProfile) error
	GetProfile() (*models.UserProfile, error)

	// Earned badges
	SaveEarnedBadge(b models.EarnedBadge) error
	ListEarnedBadges() ([]models.EarnedBadge, error)

	// Pending submissions
	UpsertPending(p *models.PendingSubmission) error
	ListPending() ([]*models.PendingSubmission, error)
	RemovePending(id uuid.UUID) error

	// Logout: clears profile, results, badges, and pending submissions.
	// Partial failure is surfaced, never silently ignored.
	ClearAll() error

	// Lifecycle
	Close() error
}
