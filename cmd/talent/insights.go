// ABOUTME: CLI command for personalized insights.
// ABOUTME: Prints feedback derived from the result history.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/talent/internal/gamification"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Aliases: []string{"i"},
	Short:   "Show personalized insights",
	Long: `Show feedback derived from your result history: weekly consistency,
score trends, and your strongest test area.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := store.ListResults()
		if err != nil {
			return fmt.Errorf("failed to list results: %w", err)
		}

		for _, insight := range gamification.GenerateInsights(history, time.Now()) {
			fmt.Println(insight)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
