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

// libraryCmd represents the library command
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Show a snapshot of a user's whole library",
	Long: `Fetch a user's all-time top artists, albums, tracks and tags in one
go and print them as four ranked tables.`,
	RunE: runLibrary,
}

func init() {
	rootCmd.AddCommand(libraryCmd)

	libraryCmd.Flags().IntP("top", "t", 10, "Entries to show per list")
}

func runLibrary(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	user, err := username(cfg)
	if err != nil {
		return err
	}

	snapshot, err := client.Library().Snapshot(context.Background(), user)
	if err != nil {
		return fmt.Errorf("failed to fetch library snapshot: %w", err)
	}

	top, _ := cmd.Flags().GetInt("top")
	return output(snapshot, func() string { return render.Snapshot(snapshot, top) })
}
