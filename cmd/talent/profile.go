// ABOUTME: CLI commands for viewing and editing the athlete profile.
// ABOUTME: Profile demographics feed benchmark lookups and submissions.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/talent/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileName   string
	profileAge    int
	profileGender string
	profileRegion string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or edit the athlete profile",
	Long: `View or edit the athlete profile. Demographics are used for
benchmark lookups.

EXAMPLES:

  talent profile
  talent profile set --name "Asha" --age 16 --gender female --region "Kerala"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile set. Use 'talent profile set' to create one.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("Name:    %s\n", p.Name)
		fmt.Printf("Age:     %d\n", p.Age)
		fmt.Printf("Gender:  %s\n", p.Gender)
		fmt.Printf("Region:  %s\n", p.Region)
		fmt.Printf("Joined:  %s\n", faint.Sprint(p.JoinDate.Format("2006-01-02")))
		fmt.Printf("Athlete: %s\n", faint.Sprint(cfg.AthleteID))

		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields",
	Long: `Create or update the athlete profile. Unset flags keep their
current values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			p = models.NewUserProfile(profileName, profileAge, profileGender, profileRegion)
		} else {
			if cmd.Flags().Changed("name") {
				p.Name = profileName
			}
			if cmd.Flags().Changed("age") {
				p.Age = profileAge
			}
			if cmd.Flags().Changed("gender") {
				p.Gender = profileGender
			}
			if cmd.Flags().Changed("region") {
				p.Region = profileRegion
			}
		}

		if err := store.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "athlete name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "athlete age")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "athlete gender")
	profileSetCmd.Flags().StringVar(&profileRegion, "region", "", "athlete region")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
