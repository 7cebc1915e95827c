// ABOUTME: Transport contract for the remote assessment authority.
// ABOUTME: Wire payload and response shapes for submission and benchmarks.
package api

import (
	"context"

	"github.com/harperreed/talent/internal/models"
)

// ResultPayload is the scored outcome inside a submission.
type ResultPayload struct {
	Score float64 `json:"score"`
	Tier  string  `json:"benchmark"`
}

// SubmissionPayload is the wire format for submitting one test result.
type SubmissionPayload struct {
	AthleteID string        `json:"athleteId"`
	TestType  string        `json:"testType"`
	Result    ResultPayload `json:"result"`
	VideoPath string        `json:"videoPath,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// SubmitResponse is the authority's answer to a submission.
type SubmitResponse struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submissionId,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Benchmarks holds the tier cutoffs for one test type and demographic.
type Benchmarks struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Average   float64 `json:"average"`
	Unit      string  `json:"unit"`
}

// Transport is the remote authority the submission queue talks to. The core
// never assumes a delivery latency, only that a call eventually resolves to
// success or a typed failure.
type Transport interface {
	// Submit delivers one result. A nil error with Success false means the
	// authority rejected the submission; the caller treats both the same way.
	Submit(ctx context.Context, payload SubmissionPayload) (*SubmitResponse, error)

	// GetBenchmarks fetches tier cutoffs for a test type and demographic.
	GetBenchmarks(ctx context.Context, testType models.TestType, ageGroup, gender string) (*Benchmarks, error)

	// Reachable probes connectivity with no side effects.
	Reachable(ctx context.Context) bool
}
