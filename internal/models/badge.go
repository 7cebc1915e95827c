// ABOUTME: Badge model with tagged criteria variants per criteria kind.
// ABOUTME: A badge flips earned false->true exactly once and never reverts.
package models

import "time"

// CriteriaKind classifies how a badge is earned.
type CriteriaKind string

const (
	KindTestCompletion CriteriaKind = "test_completion"
	KindScoreThreshold CriteriaKind = "score_threshold"
	KindConsistency    CriteriaKind = "consistency"
	KindImprovement    CriteriaKind = "improvement"
)

// Criteria is the tagged badge criteria. Each variant carries exactly the
// fields its kind needs; shape is enforced at construction, not at runtime.
type Criteria interface {
	Kind() CriteriaKind
}

// CompletionCriteria is earned when the result log reaches exactly Count entries.
type CompletionCriteria struct {
	Count int
}

func (CompletionCriteria) Kind() CriteriaKind { return KindTestCompletion }

// CoverageCriteria is earned when the log covers at least Types distinct test types.
type CoverageCriteria struct {
	Types int
}

func (CoverageCriteria) Kind() CriteriaKind { return KindTestCompletion }

// ScoreCriteria is earned when the new result's score meets Threshold,
// regardless of test type.
type ScoreCriteria struct {
	Threshold float64
}

func (ScoreCriteria) Kind() CriteriaKind { return KindScoreThreshold }

// TestScoreCriteria is earned when the new result is for Test and its score
// meets Threshold.
type TestScoreCriteria struct {
	Test      TestType
	Threshold float64
}

func (TestScoreCriteria) Kind() CriteriaKind { return KindScoreThreshold }

// ConsistencyCriteria is earned when at least Tests results fall within the
// trailing Days-day window.
type ConsistencyCriteria struct {
	Tests int
	Days  int
}

func (ConsistencyCriteria) Kind() CriteriaKind { return KindConsistency }

// ImprovementCriteria is earned when the Streak most recent results for the
// new result's test type are strictly increasing oldest to newest.
type ImprovementCriteria struct {
	Streak int
}

func (ImprovementCriteria) Kind() CriteriaKind { return KindImprovement }

// Badge is a named achievement from the fixed catalog.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	Criteria    Criteria
	Earned      bool
	EarnedDate  *time.Time
}

// EarnedBadge is the persisted shape of an earned badge.
type EarnedBadge struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EarnedDate time.Time `json:"earnedDate"`
}
