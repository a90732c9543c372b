/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imeis/lastfm/internal/report"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <recipient>",
	Short: "Email a library snapshot",
	Long: `Fetch a user's library snapshot and mail it to the given address via
SendGrid. Requires sendgrid.api_key and sendgrid.from in the config.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntP("top", "t", 10, "Entries to include per list")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	user, err := username(cfg)
	if err != nil {
		return err
	}
	if cfg.SendGrid.APIKey == "" || cfg.SendGrid.From == "" {
		return fmt.Errorf("sendgrid not configured: set sendgrid.api_key and sendgrid.from in the config")
	}

	snapshot, err := client.Library().Snapshot(context.Background(), user)
	if err != nil {
		return fmt.Errorf("failed to fetch library snapshot: %w", err)
	}

	top, _ := cmd.Flags().GetInt("top")
	mailer := report.NewMailer(cfg.SendGrid.APIKey, cfg.SendGrid.From)
	if err := mailer.SendSnapshot(args[0], user, snapshot, top); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}

	fmt.Printf("Report for %s sent to %s\n", user, args[0])
	return nil
}
