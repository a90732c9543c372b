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

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track <artist> <track>",
	Short: "Look up a track",
	Long: `Fetch a track's record: its album, tags and the configured user's
play count.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	user, err := username(cfg)
	if err != nil {
		return err
	}

	track, err := client.Track().Info(context.Background(), args[0], args[1], user)
	if err != nil {
		return fmt.Errorf("failed to fetch track: %w", err)
	}

	return output(track, func() string { return render.Track(track) })
}
