// ABOUTME: TestRecord model and TestType enum for assessment results.
// ABOUTME: Defines the 5 standard tests and the benchmark tier scale.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TestType represents one of the standard assessment tests.
type TestType string

const (
	TestVerticalJump TestType = "vertical-jump"
	TestShuttleRun   TestType = "shuttle-run"
	TestSitUps       TestType = "sit-ups"
	TestHeightWeight TestType = "height-weight"
	TestEnduranceRun TestType = "endurance-run"
)

// TestNames maps test types to their display names.
var TestNames = map[TestType]string{
	TestVerticalJump: "Vertical Jump",
	TestShuttleRun:   "Shuttle Run",
	TestSitUps:       "Sit-Ups",
	TestHeightWeight: "Height & Weight",
	TestEnduranceRun: "Endurance Run",
}

// AllTestTypes returns all valid test types.
var AllTestTypes = []TestType{
	TestVerticalJump, TestShuttleRun, TestSitUps, TestHeightWeight, TestEnduranceRun,
}

// IsValidTestType checks if a string is a valid test type.
func IsValidTestType(s string) bool {
	for _, tt := range AllTestTypes {
		if string(tt) == s {
			return true
		}
	}
	return false
}

// Tier is the coarse qualitative bucket the scoring oracle assigns to a score.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierAverage   Tier = "Average"
)

// IsValidTier checks if a string is a valid benchmark tier.
func IsValidTier(s string) bool {
	switch Tier(s) {
	case TierExcellent, TierGood, TierAverage:
		return true
	}
	return false
}

// TestRecord represents one completed assessment test.
// ID, TestType, Score, and Date are immutable once the record is appended
// to the result log; only Submitted flips when the remote authority acks.
type TestRecord struct {
	ID        uuid.UUID
	TestType  TestType
	Score     float64
	Tier      Tier
	Date      time.Time
	VideoPath *string
	Submitted bool
}

// NewTestRecord creates a new TestRecord with generated UUID and current timestamp.
func NewTestRecord(testType TestType, score float64, tier Tier) *TestRecord {
	return &TestRecord{
		ID:       uuid.New(),
		TestType: testType,
		Score:    score,
		Tier:     tier,
		Date:     time.Now(),
	}
}

// WithDate sets a custom completion timestamp.
func (r *TestRecord) WithDate(t time.Time) *TestRecord {
	r.Date = t
	return r
}

// WithVideoPath sets the captured video path.
func (r *TestRecord) WithVideoPath(path string) *TestRecord {
	r.VideoPath = &path
	return r
}
