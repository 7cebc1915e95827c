// ABOUTME: CLI commands for syncing queued submissions.
// ABOUTME: Retries the pending queue and reports per-item outcomes.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/talent/internal/models"
	"github.com/harperreed/talent/internal/queue"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Submit queued results",
	Long: `Retry submission of all results waiting in the pending queue.

Each queued result is attempted independently: one rejection never blocks
the rest. Results stay queued until the authority acknowledges them, so
running sync repeatedly is always safe.

COMMANDS:

  sync           Retry all queued submissions
  sync status    Show the pending queue and connection state`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, err := submitQueue.Pending()
		if err != nil {
			return fmt.Errorf("failed to list pending submissions: %w", err)
		}
		if len(pending) == 0 {
			fmt.Println("Nothing to sync.")
			return nil
		}

		fmt.Printf("Syncing %d pending result(s)...\n", len(pending))
		report, err := submitQueue.SyncPending(cmd.Context())
		if errors.Is(err, queue.ErrUnreachable) {
			color.Yellow("⚠ No internet connection. Results remain queued.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		if report.Synced > 0 {
			color.Green("✓ Submitted %d result(s)", report.Synced)
		}
		if report.Failed > 0 {
			color.Yellow("⚠ %d result(s) failed and remain queued", report.Failed)
			faint := color.New(color.Faint)
			for _, e := range report.Errors {
				fmt.Printf("  %s\n", faint.Sprint(e))
			}
		}

		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show the pending submission queue and whether the assessment
authority is currently reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiClient.Reachable(cmd.Context()) {
			color.Green("✓ Connected to %s", cfg.GetServer())
		} else {
			color.Yellow("⚠ Offline (%s unreachable)", cfg.GetServer())
		}

		pending, err := submitQueue.Pending()
		if err != nil {
			return fmt.Errorf("failed to list pending submissions: %w", err)
		}
		if len(pending) == 0 {
			fmt.Println("No pending submissions.")
			return nil
		}

		fmt.Printf("\n%d pending submission(s):\n", len(pending))
		faint := color.New(color.Faint)
		for _, p := range pending {
			line := fmt.Sprintf("%s %s %.2f (queued %s",
				p.Record.ID.String()[:8],
				models.TestNames[p.Record.TestType],
				p.Record.Score,
				p.QueuedAt.Format("2006-01-02 15:04"))
			if p.Attempts > 0 {
				line += fmt.Sprintf(", %d attempt(s)", p.Attempts)
			}
			line += ")"
			fmt.Printf("  %s\n", faint.Sprint(line))
		}

		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
