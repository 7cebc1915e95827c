// ABOUTME: Insight generator producing feedback strings from the result log.
// ABOUTME: Pure function of history; ordered by priority; never returns empty.
package gamification

import (
	"fmt"
	"time"

	"github.com/harperreed/talent/internal/models"
)

const (
	insightFirstTest   = "Complete your first test to get personalized insights!"
	insightConsistent  = "🔥 You're on fire! Great consistency this week!"
	insightNudge       = "📅 Try to test at least once this week to maintain progress"
	insightTrendingUp  = "📈 Your scores are trending upward! Keep it up!"
	insightFallback    = "Keep testing to unlock personalized insights!"
	consistencyWindow  = 7 // days
	consistencyMinimum = 3 // tests in window for the positive message
)

// GenerateInsights derives feedback strings from the result log, in priority
// order: consistency, improvement trend, strength area. history must be in
// insertion (chronological) order; now anchors the trailing 7-day window.
func GenerateInsights(history []*models.TestRecord, now time.Time) []string {
	if len(history) == 0 {
		return []string{insightFirstTest}
	}

	var insights []string

	// Consistency: positive message at 3+ tests this week, nudge at zero.
	cutoff := now.AddDate(0, 0, -consistencyWindow)
	recent := 0
	for _, r := range history {
		if !r.Date.Before(cutoff) {
			recent++
		}
	}
	if recent >= consistencyMinimum {
		insights = append(insights, insightConsistent)
	} else if recent == 0 {
		insights = append(insights, insightNudge)
	}

	// Improvement trend over the last 3 log entries.
	window := history
	if len(window) > 3 {
		window = window[len(window)-3:]
	}
	if len(window) >= 2 && window[len(window)-1].Score > window[0].Score {
		insights = append(insights, insightTrendingUp)
	}

	// Strength area: highest per-type mean, ties broken by first appearance.
	if best := strongestTestType(history); best != "" {
		insights = append(insights, fmt.Sprintf("💪 %s is your strongest area!", models.TestNames[best]))
	}

	if len(insights) == 0 {
		return []string{insightFallback}
	}
	return insights
}

func strongestTestType(history []*models.TestRecord) models.TestType {
	totals := make(map[models.TestType]float64)
	counts := make(map[models.TestType]int)
	var order []models.TestType
	for _, r := range history {
		if _, seen := counts[r.TestType]; !seen {
			order = append(order, r.TestType)
		}
		totals[r.TestType] += r.Score
		counts[r.TestType]++
	}

	var best models.TestType
	bestMean := 0.0
	for _, tt := range order {
		mean := totals[tt] / float64(counts[tt])
		if mean > bestMean {
			bestMean = mean
			best = tt
		}
	}
	return best
}
