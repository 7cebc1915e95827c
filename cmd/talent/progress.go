// ABOUTME: CLI command for showing level, XP, and score averages.
// ABOUTME: Renders the progress snapshot with an XP bar.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/talent/internal/gamification"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Show level, XP, and averages",
	Long: `Show your progress: level, XP toward the next level, total tests
completed, and average score across all results.

XP is earned per test, with bonuses for high scores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := store.ListResults()
		if err != nil {
			return fmt.Errorf("failed to list results: %w", err)
		}

		snap := gamification.ComputeProgress(history)

		color.New(color.Bold).Printf("Level %d\n", snap.Level)
		fmt.Printf("  XP: %d / %d\n", snap.XP, snap.NextLevelXP)
		fmt.Printf("  %s\n", xpBar(snap.XP, snap.NextLevelXP, 30))
		fmt.Printf("  Tests completed: %d\n", snap.TotalTests)
		if snap.TotalTests > 0 {
			fmt.Printf("  Average score: %d\n", snap.AverageScore)
		}

		return nil
	},
}

// xpBar renders progress within the current level.
func xpBar(xp, nextLevelXP, width int) string {
	levelFloor := nextLevelXP - gamification.XPPerLevel
	filled := (xp - levelFloor) * width / gamification.XPPerLevel
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
