// ABOUTME: Tests for TestRecord model, TestType enum, and Tier scale.
// ABOUTME: Validates constants, display names, and constructor defaults.
package models

import (
	"testing"
	"time"
)

func TestIsValidTestType(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"vertical-jump", true},
		{"shuttle-run", true},
		{"sit-ups", true},
		{"height-weight", true},
		{"endurance-run", true},
		{"long-jump", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidTestType(tt.input); got != tt.want {
				t.Errorf("IsValidTestType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllTestTypesHaveNames(t *testing.T) {
	for _, tt := range AllTestTypes {
		if _, ok := TestNames[tt]; !ok {
			t.Errorf("test type %s has no display name", tt)
		}
	}
}

func TestIsValidTier(t *testing.T) {
	for _, valid := range []string{"Excellent", "Good", "Average"} {
		if !IsValidTier(valid) {
			t.Errorf("expected %s to be a valid tier", valid)
		}
	}
	if IsValidTier("excellent") {
		t.Error("tiers are case-sensitive; 'excellent' should be invalid")
	}
	if IsValidTier("Poor") {
		t.Error("'Poor' should be invalid")
	}
}

func TestNewTestRecord(t *testing.T) {
	r := NewTestRecord(TestVerticalJump, 65, TierGood)

	if r.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if r.TestType != TestVerticalJump {
		t.Errorf("TestType = %s, want vertical-jump", r.TestType)
	}
	if r.Score != 65 {
		t.Errorf("Score = %f, want 65", r.Score)
	}
	if r.Tier != TierGood {
		t.Errorf("Tier = %s, want Good", r.Tier)
	}
	if r.Date.IsZero() {
		t.Error("expected Date to be set")
	}
	if r.Submitted {
		t.Error("new records must start unsubmitted")
	}
}

func TestRecordBuilders(t *testing.T) {
	when := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	r := NewTestRecord(TestSitUps, 42, TierAverage).
		WithDate(when).
		WithVideoPath("/tmp/situps.mp4")

	if !r.Date.Equal(when) {
		t.Errorf("Date = %v, want %v", r.Date, when)
	}
	if r.VideoPath == nil || *r.VideoPath != "/tmp/situps.mp4" {
		t.Errorf("VideoPath = %v, want /tmp/situps.mp4", r.VideoPath)
	}
}
