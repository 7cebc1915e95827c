// ABOUTME: Tests for the XP bar rendering.
// ABOUTME: The bar tracks position within the current level, not total XP.
package main

import (
	"strings"
	"testing"
)

func TestXPBar(t *testing.T) {
	tests := []struct {
		name        string
		xp          int
		nextLevelXP int
		wantFilled  int
	}{
		{"level start", 0, 100, 0},
		{"mid level one", 50, 100, 15},
		{"mid level two", 150, 200, 15},
		{"level boundary", 100, 200, 0},
		{"near full", 199, 200, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := xpBar(tt.xp, tt.nextLevelXP, 30)
			filled := strings.Count(bar, "█")
			if filled != tt.wantFilled {
				t.Errorf("xpBar(%d, %d) filled %d cells, want %d", tt.xp, tt.nextLevelXP, filled, tt.wantFilled)
			}
			if empty := strings.Count(bar, "░"); filled+empty != 30 {
				t.Errorf("bar width = %d, want 30", filled+empty)
			}
		})
	}
}
