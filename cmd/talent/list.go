// ABOUTME: CLI command for listing test results.
// ABOUTME: Supports filtering by test type and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/talent/internal/models"
	"github.com/spf13/cobra"
)

var (
	listType  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List test results",
	Long: `List recent test results from your local log.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  TEST  SCORE  TIER  STATUS

  Status is ✓ for submitted results and ○ for results still queued
  or local-only.

EXAMPLES:

  talent list                        # Show last 20 results (all tests)
  talent list --type vertical-jump   # Show only vertical jump results
  talent list -t sit-ups -n 50       # Show last 50 sit-up results`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []*models.TestRecord
		var err error
		if listType != "" {
			if !models.IsValidTestType(listType) {
				return fmt.Errorf("unknown test type: %s", listType)
			}
			results, err = store.ListResultsByType(models.TestType(listType))
		} else {
			results, err = store.ListResults()
		}
		if err != nil {
			return fmt.Errorf("failed to list results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		if listLimit > 0 && len(results) > listLimit {
			results = results[len(results)-listLimit:]
		}

		faint := color.New(color.Faint)
		for _, r := range results {
			status := "○"
			if r.Submitted {
				status = color.GreenString("✓")
			}
			fmt.Printf("%s %s %s %8.2f %-9s %s\n",
				faint.Sprint(r.ID.String()[:8]),
				faint.Sprint(r.Date.Format("2006-01-02 15:04")),
				padRight(string(r.TestType), 14),
				r.Score,
				r.Tier,
				status)
		}

		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by test type")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
