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

// artistCmd represents the artist command
var artistCmd = &cobra.Command{
	Use:   "artist <name>",
	Short: "Look up an artist",
	Long: `Fetch an artist's record: play counts, listeners, tags, similar
artists and top tracks/albums. Play counts are relative to the
configured user.`,
	Args: cobra.ExactArgs(1),
	RunE: runArtist,
}

func init() {
	rootCmd.AddCommand(artistCmd)
}

func runArtist(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	user, err := username(cfg)
	if err != nil {
		return err
	}

	artist, err := client.Artist().Info(context.Background(), args[0], user)
	if err != nil {
		return fmt.Errorf("failed to fetch artist: %w", err)
	}

	return output(artist, func() string { return render.Artist(artist) })
}
