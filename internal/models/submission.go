// ABOUTME: PendingSubmission model for results awaiting remote acknowledgment.
// ABOUTME: Keyed by record ID; lives only while the record is unsubmitted.
package models

import "time"

// PendingSubmission wraps a TestRecord queued for delivery to the remote
// authority. The pending set is keyed by Record.ID, so re-queueing the same
// record is an upsert, never a duplicate.
type PendingSubmission struct {
	Record    TestRecord `json:"record"`
	QueuedAt  time.Time  `json:"queuedAt"`
	Attempts  int        `json:"attempts"`
	LastError string     `json:"lastError,omitempty"`
}
