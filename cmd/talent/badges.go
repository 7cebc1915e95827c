// ABOUTME: CLI command for listing badges.
// ABOUTME: Shows earned badges by default; --all includes locked ones.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var badgesAll bool

var badgesCmd = &cobra.Command{
	Use:     "badges",
	Aliases: []string{"b"},
	Short:   "List earned badges",
	Long: `List badges you have earned. Use --all to also show locked badges
and what it takes to earn them.

EXAMPLES:

  talent badges          # Earned badges only
  talent badges --all    # Full catalog with locked badges`,
	RunE: func(cmd *cobra.Command, args []string) error {
		badges := evaluator.Badges()
		faint := color.New(color.Faint)

		earned := 0
		for _, b := range badges {
			if b.Earned {
				earned++
			}
		}

		if earned == 0 && !badgesAll {
			fmt.Println("No badges earned yet. Complete a test to get started!")
			return nil
		}

		for _, b := range badges {
			switch {
			case b.Earned:
				fmt.Printf("%s %s %s\n", b.Icon, color.GreenString(b.Name),
					faint.Sprintf("(earned %s)", b.EarnedDate.Format("2006-01-02")))
				fmt.Printf("   %s\n", faint.Sprint(b.Description))
			case badgesAll:
				fmt.Printf("🔒 %s\n", faint.Sprint(b.Name))
				fmt.Printf("   %s\n", faint.Sprint(b.Description))
			}
		}

		fmt.Printf("\n%d of %d badges earned\n", earned, len(badges))
		return nil
	},
}

func init() {
	badgesCmd.Flags().BoolVar(&badgesAll, "all", false, "include locked badges")
	rootCmd.AddCommand(badgesCmd)
}
