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

// albumCmd represents the album command
var albumCmd = &cobra.Command{
	Use:   "album <artist> <album>",
	Short: "Look up an album",
	Long: `Fetch an album's record: the track listing with durations, tags and
the configured user's play count.`,
	Args: cobra.ExactArgs(2),
	RunE: runAlbum,
}

func init() {
	rootCmd.AddCommand(albumCmd)
}

func runAlbum(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	user, err := username(cfg)
	if err != nil {
		return err
	}

	album, err := client.Album().Info(context.Background(), args[0], args[1], user)
	if err != nil {
		return fmt.Errorf("failed to fetch album: %w", err)
	}

	return output(album, func() string { return render.Album(album) })
}
