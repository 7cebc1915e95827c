// ABOUTME: Tests for the HTTP transport client against httptest servers.
// ABOUTME: Covers submit success/failure, benchmarks, and the reachability probe.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harperreed/talent/internal/models"
)

func TestClientSubmit(t *testing.T) {
	var gotPayload SubmissionPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != submitPath {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(SubmitResponse{Success: true, SubmissionID: "SAI_123"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Submit(context.Background(), SubmissionPayload{
		AthleteID: "athlete-1",
		TestType:  "sit-ups",
		Result:    ResultPayload{Score: 42, Tier: "Good"},
		Timestamp: "2025-05-10T12:00:00Z",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !resp.Success || resp.SubmissionID != "SAI_123" {
		t.Errorf("response = %+v, want success with id SAI_123", resp)
	}
	if gotPayload.TestType != "sit-ups" || gotPayload.Result.Score != 42 {
		t.Errorf("server saw payload %+v", gotPayload)
	}
}

func TestClientSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Submit(context.Background(), SubmissionPayload{}); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestClientGetBenchmarks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != benchmarksPath {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("testType"); got != "vertical-jump" {
			t.Errorf("testType query = %q", got)
		}
		_ = json.NewEncoder(w).Encode(Benchmarks{Excellent: 70, Good: 60, Average: 50, Unit: "cm"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	b, err := c.GetBenchmarks(context.Background(), models.TestVerticalJump, "16-18", "male")
	if err != nil {
		t.Fatalf("get benchmarks: %v", err)
	}
	if b.Excellent != 70 || b.Unit != "cm" {
		t.Errorf("benchmarks = %+v", b)
	}
}

func TestClientReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(srv.URL)

	if !c.Reachable(context.Background()) {
		t.Error("expected live server to be reachable")
	}

	srv.Close()
	if c.Reachable(context.Background()) {
		t.Error("expected closed server to be unreachable")
	}
}
