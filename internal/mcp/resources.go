// ABOUTME: MCP resource implementations for assessment data.
// ABOUTME: Provides talent://progress, talent://badges, and talent://recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/talent/internal/gamification"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// talent://progress - Level, XP, and insights dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "talent://progress",
		Name:        "Progress Dashboard",
		Description: "Level, XP, test counts, average score, and current insights",
		MIMEType:    "application/json",
	}, s.handleProgressResource)

	// talent://badges - Full badge catalog with earned state
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "talent://badges",
		Name:        "Badge Collection",
		Description: "All badges with earned state and earn dates",
		MIMEType:    "application/json",
	}, s.handleBadgesResource)

	// talent://recent - Last 10 results plus pending submission count
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "talent://recent",
		Name:        "Recent Test Results",
		Description: "Last 10 test results and the pending submission count",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history, err := s.store.ListResults()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	result := map[string]interface{}{
		"progress": gamification.ComputeProgress(history),
		"insights": gamification.GenerateInsights(history, time.Now()),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "talent://progress",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleBadgesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	badges := s.evaluator.Badges()
	earned := 0
	for _, b := range badges {
		if b.Earned {
			earned++
		}
	}

	result := map[string]interface{}{
		"badges": badges,
		"earned": earned,
		"total":  len(badges),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "talent://badges",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	results, err := s.store.ListResults()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	if len(results) > 10 {
		results = results[len(results)-10:]
	}

	pending, err := s.store.ListPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w", err)
	}

	result := map[string]interface{}{
		"results":       results,
		"pending_count": len(pending),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "talent://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
