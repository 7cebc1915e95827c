// ABOUTME: CLI command for printing the version.
// ABOUTME: Version is set at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("talent", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
