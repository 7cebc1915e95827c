// ABOUTME: HTTP client implementing the Transport contract.
// ABOUTME: Timeouts are treated as delivery failures, never hangs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/harperreed/talent/internal/models"
)

const (
	submitPath     = "/api/v1/assessments/submit"
	benchmarksPath = "/api/v1/benchmarks"

	requestTimeout = 10 * time.Second
	probeTimeout   = 3 * time.Second
)

// Client talks to the assessment authority over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Submit posts one result to the authority.
func (c *Client) Submit(ctx context.Context, payload SubmissionPayload) (*SubmitResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("submit request: server returned %s", resp.Status)
	}

	var out SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode submit response: %w", err)
	}
	return &out, nil
}

// GetBenchmarks fetches tier cutoffs for a test type and demographic.
func (c *Client) GetBenchmarks(ctx context.Context, testType models.TestType, ageGroup, gender string) (*Benchmarks, error) {
	q := url.Values{}
	q.Set("testType", string(testType))
	if ageGroup != "" {
		q.Set("ageGroup", ageGroup)
	}
	if gender != "" {
		q.Set("gender", gender)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+benchmarksPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build benchmarks request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("benchmarks request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("benchmarks request: server returned %s", resp.Status)
	}

	var out Benchmarks
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode benchmarks response: %w", err)
	}
	return &out, nil
}

// Reachable probes the authority with a HEAD request. Any response counts as
// reachable; only transport-level failure counts as offline.
func (c *Client) Reachable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}
