/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imeis/lastfm/internal/render"
	"github.com/imeis/lastfm/pkg/lastfm"
)

// topCmd represents the top command
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show a user's most played artists, albums, tracks or tags",
	Long: `Rank a user's listening over a period.

Valid periods: overall, 7day, 1month, 3month, 6month, 12month.`,
}

var topArtistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "Show a user's most played artists",
	RunE:  runTopArtists,
}

var topAlbumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "Show a user's most played albums",
	RunE:  runTopAlbums,
}

var topTracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Show a user's most played tracks",
	RunE:  runTopTracks,
}

var topTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show a user's most used tags",
	RunE:  runTopTags,
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.AddCommand(topArtistsCmd, topAlbumsCmd, topTracksCmd, topTagsCmd)

	topCmd.PersistentFlags().StringP("period", "p", "overall", "Ranking period (overall, 7day, 1month, 3month, 6month, 12month)")
	topCmd.PersistentFlags().IntP("limit", "l", 20, "Maximum number of entries to list")
}

// topArgs resolves the shared setup and flags of the top subcommands.
func topArgs(cmd *cobra.Command) (*lastfm.Client, string, lastfm.Period, int, error) {
	cfg, client, err := setup()
	if err != nil {
		return nil, "", "", 0, err
	}
	user, err := username(cfg)
	if err != nil {
		return nil, "", "", 0, err
	}

	periodFlag, _ := cmd.Flags().GetString("period")
	period, err := parsePeriod(periodFlag)
	if err != nil {
		return nil, "", "", 0, err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	return client, user, period, limit, nil
}

// parsePeriod validates a period flag value.
func parsePeriod(s string) (lastfm.Period, error) {
	switch p := lastfm.Period(s); p {
	case lastfm.PeriodOverall, lastfm.PeriodWeek, lastfm.PeriodMonth,
		lastfm.PeriodQuarter, lastfm.PeriodHalfYear, lastfm.PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("invalid period %q: valid periods are overall, 7day, 1month, 3month, 6month, 12month", s)
}

func runTopArtists(cmd *cobra.Command, args []string) error {
	client, user, period, limit, err := topArgs(cmd)
	if err != nil {
		return err
	}
	artists, err := client.User().TopArtists(context.Background(), user, period, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch top artists: %w", err)
	}
	return output(artists, func() string { return render.Artists(artists) })
}

func runTopAlbums(cmd *cobra.Command, args []string) error {
	client, user, period, limit, err := topArgs(cmd)
	if err != nil {
		return err
	}
	albums, err := client.User().TopAlbums(context.Background(), user, period, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch top albums: %w", err)
	}
	return output(albums, func() string { return render.Albums(albums) })
}

func runTopTracks(cmd *cobra.Command, args []string) error {
	client, user, period, limit, err := topArgs(cmd)
	if err != nil {
		return err
	}
	tracks, err := client.User().TopTracks(context.Background(), user, period, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch top tracks: %w", err)
	}
	return output(tracks, func() string { return render.Tracks(tracks) })
}

func runTopTags(cmd *cobra.Command, args []string) error {
	client, user, period, limit, err := topArgs(cmd)
	if err != nil {
		return err
	}
	tags, err := client.User().TopTags(context.Background(), user, period, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch top tags: %w", err)
	}
	return output(tags, func() string { return render.Tags(tags) })
}
