/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imeis/lastfm/internal/render"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show a user's profile",
	Long: `Fetch a user's profile: library totals, registration date,
country and subscription status.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	user, err := username(cfg)
	if err != nil {
		return err
	}

	profile, err := client.User().Info(context.Background(), user)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	return output(profile, func() string { return render.Profile(profile) })
}
