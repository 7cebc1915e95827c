// ABOUTME: CLI command for fetching benchmark tier cutoffs.
// ABOUTME: Queries the authority for a test type and demographic.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/talent/internal/models"
	"github.com/spf13/cobra"
)

var (
	benchmarksAge    string
	benchmarksGender string
)

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks <test-type>",
	Short: "Show benchmark tiers for a test",
	Long: `Fetch the benchmark tier cutoffs for a test type from the
assessment authority. Requires a connection.

EXAMPLES:

  talent benchmarks vertical-jump
  talent benchmarks sit-ups --age 15-17 --gender female`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		testType := args[0]
		if !models.IsValidTestType(testType) {
			return fmt.Errorf("unknown test type: %s", testType)
		}

		b, err := apiClient.GetBenchmarks(cmd.Context(), models.TestType(testType), benchmarksAge, benchmarksGender)
		if err != nil {
			return fmt.Errorf("failed to fetch benchmarks: %w", err)
		}

		fmt.Printf("%s benchmarks (%s):\n", models.TestNames[models.TestType(testType)], b.Unit)
		color.Green("  Excellent: %.1f+", b.Excellent)
		fmt.Printf("  Good:      %.1f+\n", b.Good)
		fmt.Printf("  Average:   %.1f+\n", b.Average)

		return nil
	},
}

func init() {
	benchmarksCmd.Flags().StringVar(&benchmarksAge, "age", "", "age group (e.g. 15-17)")
	benchmarksCmd.Flags().StringVar(&benchmarksGender, "gender", "", "gender")
	rootCmd.AddCommand(benchmarksCmd)
}
