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

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag <name>",
	Short: "Look up a tag",
	Long: `Fetch a tag's record: its wiki text, reach and the artists, albums
and tracks most associated with it. Tags are global, no username is
needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	_, client, err := setup()
	if err != nil {
		return err
	}

	tag, err := client.Tag().Info(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch tag: %w", err)
	}

	return output(tag, func() string { return render.Tag(tag) })
}
