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

// recentCmd represents the recent command
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show a user's listening history",
	Long: `List the tracks a user played most recently, newest first.

A track the user is listening to right now is marked in the output.`,
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().IntP("limit", "l", 20, "Maximum number of tracks to list")
}

func runRecent(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	user, err := username(cfg)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	tracks, err := client.User().RecentTracks(context.Background(), user, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch recent tracks: %w", err)
	}

	return output(tracks, func() string { return render.RecentTracks(tracks) })
}
