// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/talent/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your assessment data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "talent": {
        "command": "talent",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  record_test    Record a fitness test result
  list_results   List recorded results
  get_progress   Level, XP, and averages
  list_badges    Badge catalog with earned state
  get_insights   Personalized insights
  sync_pending   Retry queued submissions
  get_pending    List queued submissions

AVAILABLE RESOURCES:

  talent://progress    Progress dashboard
  talent://badges      Badge collection
  talent://recent      Recent results and pending count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, evaluator, submitQueue)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
