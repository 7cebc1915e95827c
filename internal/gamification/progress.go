// ABOUTME: Progress calculator deriving level, XP, totals, and averages.
// ABOUTME: Pure function of the result log; badge state never feeds into it.
package gamification

import (
	"math"

	"github.com/harperreed/talent/internal/models"
)

// XP and level constants. The score bonus thresholds apply to the raw
// numeric score across all test types even though score scales differ per
// test; kept for compatibility with the established formula.
// XPPerLevel is the XP span of one level; level N covers
// [(N-1)*XPPerLevel, N*XPPerLevel).
const XPPerLevel = 100

const (
	xpPerTest       = 10
	excellentBonus  = 20
	goodBonus       = 10
	excellentCutoff = 90
	goodCutoff      = 80
	startingLevel   = 1
	startingNextXP  = XPPerLevel
)

// ComputeProgress derives a ProgressSnapshot from the full result log.
// Total on any input: an empty history yields level 1, 0 XP, and a
// 100 XP first-level target.
func ComputeProgress(history []*models.TestRecord) models.ProgressSnapshot {
	totalTests := len(history)
	if totalTests == 0 {
		return models.ProgressSnapshot{
			Level:       startingLevel,
			XP:          0,
			NextLevelXP: startingNextXP,
		}
	}

	xp := totalTests * xpPerTest
	totalScore := 0.0
	for _, r := range history {
		totalScore += r.Score
		switch {
		case r.Score >= excellentCutoff:
			xp += excellentBonus
		case r.Score >= goodCutoff:
			xp += goodBonus
		}
	}

	level := xp/XPPerLevel + 1
	return models.ProgressSnapshot{
		Level:        level,
		XP:           xp,
		NextLevelXP:  level * XPPerLevel,
		TotalTests:   totalTests,
		AverageScore: int(math.Round(totalScore / float64(totalTests))),
	}
}
