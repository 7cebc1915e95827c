// ABOUTME: Root Cobra command for talent CLI.
// ABOUTME: Handles config load and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/talent/internal/api"
	"github.com/harperreed/talent/internal/config"
	"github.com/harperreed/talent/internal/gamification"
	"github.com/harperreed/talent/internal/queue"
	"github.com/harperreed/talent/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	store       storage.Store
	evaluator   *gamification.Evaluator
	apiClient   *api.Client
	submitQueue *queue.Queue

	serverFlag string
)

var rootCmd = &cobra.Command{
	Use:   "talent",
	Short: "Fitness assessment tracker with offline-first submission",
	Long: `Talent is a CLI tool for recording standardized fitness test results,
tracking progress, and submitting results to the assessment authority.

STANDARD TESTS:

  vertical-jump    Explosive leg power (cm)
  shuttle-run      Agility and speed (laps)
  sit-ups          Core strength (reps)
  height-weight    Body measurements
  endurance-run    Cardiovascular endurance (meters)

QUICK START:

  $ talent record vertical-jump 55 --tier Good   # Record a result
  $ talent list                                  # See recent results
  $ talent progress                              # Level, XP, and averages
  $ talent badges                                # Earned badges
  $ talent insights                              # Personalized feedback

OFFLINE-FIRST SUBMISSION:

  Results are saved locally first and submitted to the authority when a
  connection is available. Nothing is lost offline.

  $ talent sync           # Retry queued submissions
  $ talent sync status    # Show the pending queue

MCP INTEGRATION:

  Run 'talent mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "talent": { "command": "talent", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Results are stored locally at ~/.local/share/talent (Badger by default,
  Charm KV with cloud sync via the "charm" backend in config).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if serverFlag != "" {
			cfg.Server = serverFlag
		}

		// First run: mint a stable athlete id for submissions
		if cfg.AthleteID == "" {
			cfg.AthleteID = uuid.New().String()
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		evaluator = gamification.NewEvaluator(gamification.Catalog())
		earned, err := store.ListEarnedBadges()
		if err != nil {
			return fmt.Errorf("failed to load badges: %w", err)
		}
		evaluator.Restore(earned)

		apiClient = api.NewClient(cfg.GetServer())
		submitQueue = queue.New(store, apiClient, cfg.AthleteID)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "assessment authority URL (overrides config)")
}
