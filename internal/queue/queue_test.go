// ABOUTME: Tests for the submission queue with a scripted transport fake.
// ABOUTME: Covers offline queueing, upserts, batch sync, and per-item failures.
package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/harperreed/talent/internal/api"
	"github.com/harperreed/talent/internal/models"
	"github.com/harperreed/talent/internal/storage"
)

// fakeTransport scripts reachability and per-call submit outcomes.
type fakeTransport struct {
	reachable bool
	submits   int
	// fail returns an error or rejection for a given payload; nil means success.
	fail func(p api.SubmissionPayload) error
}

func (f *fakeTransport) Submit(_ context.Context, p api.SubmissionPayload) (*api.SubmitResponse, error) {
	f.submits++
	if f.fail != nil {
		if err := f.fail(p); err != nil {
			return nil, err
		}
	}
	return &api.SubmitResponse{Success: true, SubmissionID: "SAI_" + p.TestType}, nil
}

func (f *fakeTransport) GetBenchmarks(context.Context, models.TestType, string, string) (*api.Benchmarks, error) {
	return &api.Benchmarks{Excellent: 70, Good: 60, Average: 50, Unit: "cm"}, nil
}

func (f *fakeTransport) Reachable(context.Context) bool { return f.reachable }

func newQueue(reachable bool) (*Queue, *storage.MemoryStore, *fakeTransport) {
	store := storage.NewMemory()
	transport := &fakeTransport{reachable: reachable}
	return New(store, transport, "athlete-1"), store, transport
}

func appendedRecord(t *testing.T, store storage.Store) *models.TestRecord {
	t.Helper()
	r := models.NewTestRecord(models.TestVerticalJump, 65, models.TierGood)
	if err := store.AppendResult(r); err != nil {
		t.Fatalf("append result: %v", err)
	}
	return r
}

func TestSubmitDeliversWhenReachable(t *testing.T) {
	q, store, _ := newQueue(true)
	r := appendedRecord(t, store)

	res, err := q.Submit(context.Background(), r)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Delivered || res.SubmissionID == "" {
		t.Errorf("result = %+v, want delivered with a server id", res)
	}
	if !r.Submitted {
		t.Error("record not flagged submitted in memory")
	}

	results, _ := store.ListResults()
	if !results[0].Submitted {
		t.Error("log record not marked submitted")
	}
	if pending, _ := store.ListPending(); len(pending) != 0 {
		t.Error("delivered record must not be queued")
	}
}

func TestSubmitQueuesWhenUnreachable(t *testing.T) {
	q, store, _ := newQueue(false)
	r := appendedRecord(t, store)

	res, err := q.Submit(context.Background(), r)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Delivered {
		t.Error("unreachable submit must not report delivery")
	}
	if res.Message == "" {
		t.Error("queued result needs a user-facing message")
	}

	pending, _ := store.ListPending()
	if len(pending) != 1 || pending[0].Record.ID != r.ID {
		t.Fatalf("pending = %v, want exactly the submitted record", pending)
	}
}

func TestSubmitTwiceUpserts(t *testing.T) {
	q, store, _ := newQueue(false)
	r := appendedRecord(t, store)

	if _, err := q.Submit(context.Background(), r); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := q.Submit(context.Background(), r); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	pending, _ := store.ListPending()
	if len(pending) != 1 {
		t.Errorf("pending set has %d entries for one record, want 1", len(pending))
	}
}

func TestSubmitQueuesOnTransportError(t *testing.T) {
	q, store, transport := newQueue(true)
	transport.fail = func(api.SubmissionPayload) error { return errors.New("connection reset") }
	r := appendedRecord(t, store)

	res, err := q.Submit(context.Background(), r)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Delivered {
		t.Error("failed delivery must not report success")
	}

	pending, _ := store.ListPending()
	if len(pending) != 1 {
		t.Fatalf("pending = %d entries, want 1", len(pending))
	}
	if pending[0].LastError == "" {
		t.Error("queued entry should carry the failure reason")
	}
}

func TestSyncPendingUnreachableIsNoOp(t *testing.T) {
	q, store, transport := newQueue(false)
	r := appendedRecord(t, store)
	_, _ = q.Submit(context.Background(), r)

	for i := 0; i < 3; i++ {
		report, err := q.SyncPending(context.Background())
		if !errors.Is(err, ErrUnreachable) {
			t.Fatalf("err = %v, want ErrUnreachable", err)
		}
		if report.Synced != 0 {
			t.Errorf("synced = %d while unreachable, want 0", report.Synced)
		}
	}

	if transport.submits != 0 {
		t.Error("no submit may be attempted while unreachable")
	}
	pending, _ := store.ListPending()
	if len(pending) != 1 || pending[0].Record.ID != r.ID {
		t.Error("pending set changed while unreachable")
	}
}

func TestSyncPendingDrainsQueue(t *testing.T) {
	q, store, transport := newQueue(false)
	r1 := appendedRecord(t, store)
	r2 := appendedRecord(t, store)
	_, _ = q.Submit(context.Background(), r1)
	_, _ = q.Submit(context.Background(), r2)

	transport.reachable = true
	report, err := q.SyncPending(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if report.Synced != 2 || report.Failed != 0 {
		t.Errorf("report = %+v, want 2 synced", report)
	}

	if pending, _ := store.ListPending(); len(pending) != 0 {
		t.Error("pending set should drain after full sync")
	}
	results, _ := store.ListResults()
	for _, res := range results {
		if !res.Submitted {
			t.Errorf("record %s not marked submitted after sync", res.ID)
		}
	}
}

func TestSyncPendingPartialFailure(t *testing.T) {
	q, store, transport := newQueue(false)
	good := appendedRecord(t, store)
	bad := models.NewTestRecord(models.TestShuttleRun, 80, models.TierGood)
	if err := store.AppendResult(bad); err != nil {
		t.Fatalf("append result: %v", err)
	}
	_, _ = q.Submit(context.Background(), good)
	_, _ = q.Submit(context.Background(), bad)

	transport.reachable = true
	transport.fail = func(p api.SubmissionPayload) error {
		if p.TestType == string(models.TestShuttleRun) {
			return fmt.Errorf("server rejected shuttle-run")
		}
		return nil
	}

	report, err := q.SyncPending(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if report.Synced != 1 || report.Failed != 1 {
		t.Errorf("report = %+v, want 1 synced and 1 failed", report)
	}
	if len(report.Errors) != 1 {
		t.Errorf("errors = %v, want one per-item error", report.Errors)
	}

	pending, _ := store.ListPending()
	if len(pending) != 1 || pending[0].Record.ID != bad.ID {
		t.Fatalf("pending = %v, want only the failed record", pending)
	}
	if pending[0].Attempts != 1 {
		t.Errorf("failed entry attempts = %d, want 1", pending[0].Attempts)
	}
}

func TestSubmitPreservesQueuedAtOnRequeue(t *testing.T) {
	q, store, _ := newQueue(false)
	r := appendedRecord(t, store)

	_, _ = q.Submit(context.Background(), r)
	first, _ := store.ListPending()

	_, _ = q.Submit(context.Background(), r)
	second, _ := store.ListPending()

	if !second[0].QueuedAt.Equal(first[0].QueuedAt) {
		t.Error("requeueing must keep the original QueuedAt")
	}
}
