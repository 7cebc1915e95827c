// ABOUTME: CLI command for recording test results.
// ABOUTME: Appends to the log, evaluates badges, and attempts submission.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/talent/internal/gamification"
	"github.com/harperreed/talent/internal/models"
	"github.com/spf13/cobra"
)

var (
	recordTier  string
	recordAt    string
	recordVideo string
	recordLocal bool
)

var recordCmd = &cobra.Command{
	Use:     "record <test-type> <score>",
	Aliases: []string{"r"},
	Short:   "Record a test result",
	Long: `Record a fitness test result. The result is saved locally first, then
submitted to the assessment authority if a connection is available.

Examples:
  talent record vertical-jump 55 --tier Good
  talent record sit-ups 42 --at "2025-08-14 07:00"
  talent record shuttle-run 11.5 --video runs/shuttle.mp4
  talent record endurance-run 2400 --local`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		testType := args[0]
		if !models.IsValidTestType(testType) {
			return fmt.Errorf("unknown test type: %s\nValid types: vertical-jump, shuttle-run, sit-ups, height-weight, endurance-run", testType)
		}

		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid score: %s", args[1])
		}

		tier := models.TierAverage
		if recordTier != "" {
			if !models.IsValidTier(recordTier) {
				return fmt.Errorf("unknown tier: %s (use Excellent, Good, or Average)", recordTier)
			}
			tier = models.Tier(recordTier)
		}

		r := models.NewTestRecord(models.TestType(testType), score, tier)

		if recordAt != "" {
			t, err := parseTime(recordAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", recordAt)
			}
			r.WithDate(t)
		}
		if recordVideo != "" {
			r.WithVideoPath(recordVideo)
		}

		if err := store.AppendResult(r); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}

		color.Green("✓ Recorded %s", models.TestNames[r.TestType])
		fmt.Printf("  %s %.2f (%s)\n",
			color.New(color.Faint).Sprint(r.ID.String()[:8]),
			r.Score, r.Tier)

		history, err := store.ListResults()
		if err != nil {
			return fmt.Errorf("failed to list results: %w", err)
		}

		for _, b := range evaluator.Evaluate(r, history) {
			if err := store.SaveEarnedBadge(models.EarnedBadge{ID: b.ID, Name: b.Name, EarnedDate: *b.EarnedDate}); err != nil {
				return fmt.Errorf("failed to save badge: %w", err)
			}
			color.Green("🏅 Badge earned: %s %s", b.Icon, b.Name)
			fmt.Printf("  %s\n", color.New(color.Faint).Sprint(b.Description))
		}

		fmt.Println(gamification.MotivationalMessage(tier, len(history)))

		if recordLocal || cfg.NoAutoSubmit {
			return nil
		}

		res, err := submitQueue.Submit(cmd.Context(), r)
		if err != nil {
			return fmt.Errorf("failed to submit result: %w", err)
		}
		if res.Delivered {
			color.Green("✓ Submitted (ID: %s)", res.SubmissionID)
		} else {
			color.Yellow("⚠ %s", res.Message)
		}

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	recordCmd.Flags().StringVar(&recordTier, "tier", "", "benchmark tier (Excellent, Good, Average)")
	recordCmd.Flags().StringVar(&recordAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	recordCmd.Flags().StringVar(&recordVideo, "video", "", "path to the captured test video")
	recordCmd.Flags().BoolVar(&recordLocal, "local", false, "keep the result local, skip submission")
	rootCmd.AddCommand(recordCmd)
}
