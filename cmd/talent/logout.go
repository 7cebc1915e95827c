// ABOUTME: CLI command for logging out and clearing local data.
// ABOUTME: Destructive; requires confirmation unless --force is given.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutForce bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear all local data",
	Long: `Delete the local profile, result log, earned badges, and pending
submissions. Queued results that were never submitted are lost.

This is a DESTRUCTIVE operation. Use 'talent export json' first if you
want a backup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, err := store.ListPending()
		if err != nil {
			return fmt.Errorf("failed to list pending submissions: %w", err)
		}

		if !logoutForce {
			fmt.Println("This will PERMANENTLY DELETE all local assessment data.")
			if len(pending) > 0 {
				color.Yellow("⚠ %d result(s) are still queued and will never be submitted.", len(pending))
			}
			fmt.Print("Type 'logout' to confirm: ")
			var confirm string
			fmt.Scanln(&confirm)
			if confirm != "logout" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := store.ClearAll(); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}

		color.Green("✓ Local data cleared")
		return nil
	},
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(logoutCmd)
}
