// ABOUTME: Badge evaluator: decides which unearned badges newly qualify.
// ABOUTME: Serialized by a mutex; idempotent; earned badges never re-emit.
package gamification

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/harperreed/talent/internal/models"
)

// Evaluator owns the badge catalog for a session and applies badge rules to
// the result log. Evaluate is serialized so two overlapping calls can never
// both decide a badge is newly earned.
type Evaluator struct {
	mu      sync.Mutex
	catalog []*models.Badge
	now     func() time.Time
}

// NewEvaluator wraps a catalog. Pass gamification.Catalog() for the standard set.
func NewEvaluator(catalog []*models.Badge) *Evaluator {
	return &Evaluator{catalog: catalog, now: time.Now}
}

// WithClock overrides the evaluation clock, used by time-windowed rules.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// Restore marks previously earned badges on the catalog, e.g. from storage
// at session start.
func (e *Evaluator) Restore(earned []models.EarnedBadge) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, eb := range earned {
		for _, b := range e.catalog {
			if b.ID == eb.ID {
				b.Earned = true
				d := eb.EarnedDate
				b.EarnedDate = &d
			}
		}
	}
}

// Badges returns the catalog in definition order.
func (e *Evaluator) Badges() []*models.Badge {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*models.Badge, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Evaluate runs every unearned badge rule against the result log and returns
// the badges that newly qualify. history must already include newResult and
// be in insertion (chronological) order. Badges that qualify are flipped to
// earned before returning; re-running Evaluate with the same inputs emits
// nothing.
//
// An unrecognized criteria variant is a catalog/config mismatch and panics:
// the catalog is compiled into the binary, so this can only be a programming
// error, never runtime data.
func (e *Evaluator) Evaluate(newResult *models.TestRecord, history []*models.TestRecord) []*models.Badge {
	e.mu.Lock()
	defer e.mu.Unlock()

	var newlyEarned []*models.Badge
	for _, badge := range e.catalog {
		if badge.Earned {
			continue
		}
		if !e.qualifies(badge.Criteria, newResult, history) {
			continue
		}
		badge.Earned = true
		earnedAt := e.now()
		badge.EarnedDate = &earnedAt
		newlyEarned = append(newlyEarned, badge)
	}
	return newlyEarned
}

func (e *Evaluator) qualifies(criteria models.Criteria, newResult *models.TestRecord, history []*models.TestRecord) bool {
	switch c := criteria.(type) {
	case models.CompletionCriteria:
		return len(history) == c.Count

	case models.CoverageCriteria:
		distinct := make(map[models.TestType]struct{})
		for _, r := range history {
			distinct[r.TestType] = struct{}{}
		}
		return len(distinct) >= c.Types

	case models.ScoreCriteria:
		return newResult.Score >= c.Threshold

	case models.TestScoreCriteria:
		return newResult.TestType == c.Test && newResult.Score >= c.Threshold

	case models.ConsistencyCriteria:
		cutoff := e.now().AddDate(0, 0, -c.Days)
		count := 0
		for _, r := range history {
			if !r.Date.Before(cutoff) {
				count++
			}
		}
		return count >= c.Tests

	case models.ImprovementCriteria:
		return hasImprovementStreak(newResult.TestType, history, c.Streak)

	default:
		panic(fmt.Sprintf("badge catalog contains unknown criteria type %T", criteria))
	}
}

// hasImprovementStreak reports whether the streak most recent results for
// testType are strictly increasing oldest to newest. Fewer than streak
// same-type results never qualifies.
func hasImprovementStreak(testType models.TestType, history []*models.TestRecord, streak int) bool {
	var sameType []*models.TestRecord
	for _, r := range history {
		if r.TestType == testType {
			sameType = append(sameType, r)
		}
	}
	if len(sameType) < streak {
		return false
	}

	// Most recent first; stable so date ties keep insertion order.
	sort.SliceStable(sameType, func(i, j int) bool {
		return sameType[i].Date.After(sameType[j].Date)
	})
	recent := sameType[:streak]

	// recent[0] is newest: walking backward in time, each score must drop,
	// i.e. chronologically each score exceeds its predecessor.
	for i := 0; i < len(recent)-1; i++ {
		if recent[i].Score <= recent[i+1].Score {
			return false
		}
	}
	return true
}
