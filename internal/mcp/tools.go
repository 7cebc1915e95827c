// ABOUTME: MCP tool implementations for assessment results.
// ABOUTME: Recording, progress, badges, insights, and queue operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/talent/internal/gamification"
	"github.com/harperreed/talent/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// record_test
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_test",
		Description: "Record a fitness test result (vertical-jump, shuttle-run, sit-ups, height-weight, endurance-run)",
	}, s.handleRecordTest)

	// list_results
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_results",
		Description: "List recorded test results, optionally filtered by test type",
	}, s.handleListResults)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get level, XP, test count, and average score",
	}, s.handleGetProgress)

	// list_badges
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_badges",
		Description: "List all badges with earned state",
	}, s.handleListBadges)

	// get_insights
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_insights",
		Description: "Get personalized insights derived from the result history",
	}, s.handleGetInsights)

	// sync_pending
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sync_pending",
		Description: "Retry submission of all queued results",
	}, s.handleSyncPending)

	// get_pending
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_pending",
		Description: "List results waiting for submission",
	}, s.handleGetPending)
}

// Tool input/output types

// Required fields carry no omitempty; the schema marks them required and the
// whole jsonschema tag is the field description.
type recordTestInput struct {
	TestType string  `json:"test_type" jsonschema:"Type of test (vertical-jump, shuttle-run, sit-ups, height-weight, endurance-run)"`
	Score    float64 `json:"score" jsonschema:"The test score"`
	Tier     string  `json:"tier,omitempty" jsonschema:"Benchmark tier (Excellent, Good, Average), defaults to Average"`
	Date     string  `json:"date,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Local    bool    `json:"local,omitempty" jsonschema:"Skip submission, keep the result local only"`
}

type recordTestOutput struct {
	ID        string   `json:"id"`
	TestType  string   `json:"test_type"`
	Score     float64  `json:"score"`
	Submitted bool     `json:"submitted"`
	NewBadges []string `json:"new_badges,omitempty"`
	Message   string   `json:"message"`
}

type listResultsInput struct {
	TestType string `json:"test_type,omitempty" jsonschema:"Filter by test type"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type badgeOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
	EarnedDate  string `json:"earned_date,omitempty"`
}

type insightsOutput struct {
	Insights []string `json:"insights"`
}

type syncOutput struct {
	Synced  int      `json:"synced"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
	Message string   `json:"message"`
}

// Tool handlers

func (s *Server) handleRecordTest(ctx context.Context, req *mcp.CallToolRequest, input recordTestInput) (*mcp.CallToolResult, recordTestOutput, error) {
	if !models.IsValidTestType(input.TestType) {
		return nil, recordTestOutput{}, fmt.Errorf("unknown test type: %s", input.TestType)
	}

	tier := models.TierAverage
	if input.Tier != "" {
		if !models.IsValidTier(input.Tier) {
			return nil, recordTestOutput{}, fmt.Errorf("unknown tier: %s", input.Tier)
		}
		tier = models.Tier(input.Tier)
	}

	r := models.NewTestRecord(models.TestType(input.TestType), input.Score, tier)
	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.Date)
		}
		if err == nil {
			r.WithDate(t)
		}
	}

	if err := s.store.AppendResult(r); err != nil {
		return nil, recordTestOutput{}, fmt.Errorf("failed to record result: %w", err)
	}

	history, err := s.store.ListResults()
	if err != nil {
		return nil, recordTestOutput{}, fmt.Errorf("failed to list results: %w", err)
	}

	var newBadges []string
	for _, b := range s.evaluator.Evaluate(r, history) {
		if err := s.store.SaveEarnedBadge(models.EarnedBadge{ID: b.ID, Name: b.Name, EarnedDate: *b.EarnedDate}); err != nil {
			return nil, recordTestOutput{}, fmt.Errorf("failed to save badge: %w", err)
		}
		newBadges = append(newBadges, fmt.Sprintf("%s %s", b.Icon, b.Name))
	}

	message := gamification.MotivationalMessage(tier, len(history))
	if !input.Local {
		res, err := s.queue.Submit(ctx, r)
		if err != nil {
			return nil, recordTestOutput{}, fmt.Errorf("failed to submit result: %w", err)
		}
		if res.Delivered {
			message = fmt.Sprintf("Submitted (ID: %s). %s", res.SubmissionID, message)
		} else {
			message = fmt.Sprintf("%s %s", res.Message, message)
		}
	}

	return nil, recordTestOutput{
		ID:        r.ID.String()[:8],
		TestType:  input.TestType,
		Score:     r.Score,
		Submitted: r.Submitted,
		NewBadges: newBadges,
		Message:   message,
	}, nil
}

func (s *Server) handleListResults(ctx context.Context, req *mcp.CallToolRequest, input listResultsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var results []*models.TestRecord
	var err error
	if input.TestType != "" {
		if !models.IsValidTestType(input.TestType) {
			return nil, nil, fmt.Errorf("unknown test type: %s", input.TestType)
		}
		results, err = s.store.ListResultsByType(models.TestType(input.TestType))
	} else {
		results, err = s.store.ListResults()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list results: %w", err)
	}

	if len(results) == 0 {
		return nil, map[string]interface{}{"message": "No results found."}, nil
	}

	// Most recent entries, capped at the limit.
	if len(results) > input.Limit {
		results = results[len(results)-input.Limit:]
	}
	return nil, results, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, models.ProgressSnapshot, error) {
	history, err := s.store.ListResults()
	if err != nil {
		return nil, models.ProgressSnapshot{}, fmt.Errorf("failed to list results: %w", err)
	}
	return nil, gamification.ComputeProgress(history), nil
}

func (s *Server) handleListBadges(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	var out []badgeOutput
	for _, b := range s.evaluator.Badges() {
		bo := badgeOutput{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			Earned:      b.Earned,
		}
		if b.EarnedDate != nil {
			bo.EarnedDate = b.EarnedDate.Format(time.RFC3339)
		}
		out = append(out, bo)
	}
	return nil, out, nil
}

func (s *Server) handleGetInsights(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, insightsOutput, error) {
	history, err := s.store.ListResults()
	if err != nil {
		return nil, insightsOutput{}, fmt.Errorf("failed to list results: %w", err)
	}
	return nil, insightsOutput{Insights: gamification.GenerateInsights(history, time.Now())}, nil
}

func (s *Server) handleSyncPending(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, syncOutput, error) {
	report, err := s.queue.SyncPending(ctx)
	if err != nil {
		return nil, syncOutput{}, err
	}

	message := fmt.Sprintf("Synced %d result(s)", report.Synced)
	if report.Failed > 0 {
		message = fmt.Sprintf("Synced %d result(s), %d failed", report.Synced, report.Failed)
	}
	return nil, syncOutput{
		Synced:  report.Synced,
		Failed:  report.Failed,
		Errors:  report.Errors,
		Message: message,
	}, nil
}

func (s *Server) handleGetPending(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	pending, err := s.queue.Pending()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}

	if len(pending) == 0 {
		return nil, map[string]interface{}{"message": "No pending submissions."}, nil
	}
	return nil, pending, nil
}
