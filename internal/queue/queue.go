// ABOUTME: Submission queue managing the path from recorded to acknowledged.
// ABOUTME: Queues into the id-keyed pending set on failure; retries on sync.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/talent/internal/api"
	"github.com/harperreed/talent/internal/models"
	"github.com/harperreed/talent/internal/storage"
)

// ErrUnreachable is returned by SyncPending when the authority cannot be
// probed; nothing is attempted and the pending set is left untouched.
var ErrUnreachable = errors.New("no internet connection available")

// Messages surfaced to the user. Connectivity trouble is steady-state here,
// so these are informational, never technical.
const (
	msgSavedOffline = "No internet connection. Result saved for later submission."
	msgSavedFailed  = "Could not reach the server. Result saved for later submission."
)

// Result is the outcome of a single submit attempt.
type Result struct {
	Delivered    bool
	SubmissionID string
	Message      string
}

// Report aggregates one SyncPending run. A single item's failure never
// aborts the batch; it lands in Errors instead.
type Report struct {
	Synced int
	Failed int
	Errors []string
}

// Queue moves test records from the local log to the remote authority.
// Submit and SyncPending share one mutex, so a record mid-sync can never be
// resubmitted concurrently, and the id-keyed pending set makes requeueing an
// upsert rather than a duplicate.
type Queue struct {
	mu        sync.Mutex
	store     storage.Store
	transport api.Transport
	athleteID string
	now       func() time.Time
}

// New creates a Queue for one athlete.
func New(store storage.Store, transport api.Transport, athleteID string) *Queue {
	return &Queue{
		store:     store,
		transport: transport,
		athleteID: athleteID,
		now:       time.Now,
	}
}

// WithClock overrides the queue clock for tests.
func (q *Queue) WithClock(now func() time.Time) *Queue {
	q.now = now
	return q
}

// Submit attempts immediate delivery of a record. When the authority is
// unreachable or rejects the attempt, the record is persisted into the
// pending set and a non-delivered Result is returned with a user-facing
// message; that path is expected behavior, not an error.
func (q *Queue) Submit(ctx context.Context, record *models.TestRecord) (*Result, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.transport.Reachable(ctx) {
		if err := q.enqueue(record, "unreachable"); err != nil {
			return nil, err
		}
		return &Result{Message: msgSavedOffline}, nil
	}

	resp, err := q.transport.Submit(ctx, q.payload(record))
	if err != nil || !resp.Success {
		reason := "rejected"
		if err != nil {
			reason = err.Error()
		} else if resp.Error != "" {
			reason = resp.Error
		}
		if err := q.enqueue(record, reason); err != nil {
			return nil, err
		}
		return &Result{Message: msgSavedFailed}, nil
	}

	if err := q.acknowledge(record.ID); err != nil {
		return nil, err
	}
	record.Submitted = true
	return &Result{Delivered: true, SubmissionID: resp.SubmissionID}, nil
}

// SyncPending retries every pending submission. When unreachable it returns
// ErrUnreachable without touching the pending set. Otherwise each item is
// attempted independently: acknowledged items leave the set (matched by
// record id), failures stay queued with their attempt count bumped.
func (q *Queue) SyncPending(ctx context.Context) (*Report, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	report := &Report{}
	if !q.transport.Reachable(ctx) {
		return report, ErrUnreachable
	}

	pending, err := q.store.ListPending()
	if err != nil {
		return report, fmt.Errorf("list pending submissions: %w", err)
	}

	for _, p := range pending {
		resp, err := q.transport.Submit(ctx, q.payload(&p.Record))
		if err != nil || !resp.Success {
			report.Failed++
			reason := "rejected"
			if err != nil {
				reason = err.Error()
			} else if resp.Error != "" {
				reason = resp.Error
			}
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", p.Record.ID, reason))

			p.Attempts++
			p.LastError = reason
			if err := q.store.UpsertPending(p); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s: record attempt: %v", p.Record.ID, err))
			}
			continue
		}

		if err := q.acknowledge(p.Record.ID); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", p.Record.ID, err))
			continue
		}
		report.Synced++
	}

	return report, nil
}

// Pending returns the current pending set.
func (q *Queue) Pending() ([]*models.PendingSubmission, error) {
	return q.store.ListPending()
}

func (q *Queue) payload(record *models.TestRecord) api.SubmissionPayload {
	p := api.SubmissionPayload{
		AthleteID: q.athleteID,
		TestType:  string(record.TestType),
		Result:    api.ResultPayload{Score: record.Score, Tier: string(record.Tier)},
		Timestamp: record.Date.Format(time.RFC3339),
	}
	if record.VideoPath != nil {
		p.VideoPath = *record.VideoPath
	}
	return p
}

// enqueue upserts a record into the pending set, preserving the original
// QueuedAt when the record is already queued.
func (q *Queue) enqueue(record *models.TestRecord, reason string) error {
	p := &models.PendingSubmission{
		Record:    *record,
		QueuedAt:  q.now(),
		LastError: reason,
	}
	existing, err := q.store.ListPending()
	if err != nil {
		return fmt.Errorf("list pending submissions: %w", err)
	}
	for _, e := range existing {
		if e.Record.ID == record.ID {
			p.QueuedAt = e.QueuedAt
			p.Attempts = e.Attempts
			break
		}
	}

	if err := q.store.UpsertPending(p); err != nil {
		return fmt.Errorf("save pending submission: %w", err)
	}
	return nil
}

// acknowledge marks the log record submitted and drops it from the pending
// set. Removal is by id; a concurrent append to the set cannot shift it.
func (q *Queue) acknowledge(id uuid.UUID) error {
	if err := q.store.MarkResultSubmitted(id); err != nil {
		return fmt.Errorf("mark result submitted: %w", err)
	}
	if err := q.store.RemovePending(id); err != nil {
		return fmt.Errorf("remove pending submission: %w", err)
	}
	return nil
}
