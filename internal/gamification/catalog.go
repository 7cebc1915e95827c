// ABOUTME: The fixed badge catalog compiled into the app.
// ABOUTME: 8 badges across completion, score, consistency, and improvement criteria.
package gamification

import "github.com/harperreed/talent/internal/models"

// Catalog returns a fresh copy of the fixed badge catalog, all unearned.
// The catalog is owned by the session; mutation happens only through an
// Evaluator wrapping it.
func Catalog() []*models.Badge {
	return []*models.Badge{
		{
			ID:          "first_test",
			Name:        "First Steps",
			Description: "Complete your first assessment test",
			Icon:        "target",
			Color:       "#10b981",
			Criteria:    models.CompletionCriteria{Count: 1},
		},
		{
			ID:          "consistency_week",
			Name:        "Consistent Performer",
			Description: "Complete 5 tests in one week",
			Icon:        "calendar",
			Color:       "#3b82f6",
			Criteria:    models.ConsistencyCriteria{Tests: 5, Days: 7},
		},
		{
			ID:          "top_performer",
			Name:        "Top 10%",
			Description: "Achieve top 10% score in any test",
			Icon:        "trophy",
			Color:       "#f97316",
			Criteria:    models.ScoreCriteria{Threshold: 90},
		},
		{
			ID:          "vertical_jump_master",
			Name:        "Jump Master",
			Description: "Score excellent in vertical jump",
			Icon:        "arrow-up",
			Color:       "#8b5cf6",
			Criteria:    models.TestScoreCriteria{Test: models.TestVerticalJump, Threshold: 70},
		},
		{
			ID:          "endurance_champion",
			Name:        "Endurance Champion",
			Description: "Complete endurance run with excellent rating",
			Icon:        "heart",
			Color:       "#ef4444",
			Criteria:    models.TestScoreCriteria{Test: models.TestEnduranceRun, Threshold: 2800},
		},
		{
			ID:          "speed_demon",
			Name:        "Speed Demon",
			Description: "Fastest shuttle run in your region",
			Icon:        "zap",
			Color:       "#fbbf24",
			Criteria:    models.TestScoreCriteria{Test: models.TestShuttleRun, Threshold: 12},
		},
		{
			ID:          "improvement_streak",
			Name:        "Always Improving",
			Description: "Show improvement in 3 consecutive tests",
			Icon:        "trending-up",
			Color:       "#06b6d4",
			Criteria:    models.ImprovementCriteria{Streak: 3},
		},
		{
			ID:          "all_rounder",
			Name:        "All-Rounder",
			Description: "Complete all 5 assessment tests",
			Icon:        "award",
			Color:       "#f59e0b",
			Criteria:    models.CoverageCriteria{Types: 5},
		},
	}
}
