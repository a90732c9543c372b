/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/imeis/lastfm/internal/config"
	"github.com/imeis/lastfm/pkg/lastfm"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	flagUser     string
	flagJSON     bool
	flagLogLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lastfm",
	Short: "Query Last.fm listening data",
	Long: `lastfm queries the Last.fm API for listening data.

It covers user profiles, the currently playing track, listening
history, artist/album/track/tag lookups, ranked top lists and full
library snapshots. Most commands need a username, taken from --user
or from the configured default.

Configuration lives in ~/.config/lastfm/config.yaml and can be
overridden with LASTFM_* environment variables. An API key is
required for every command.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "Last.fm username (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON instead of tables")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// setup loads configuration and builds an API client from it.
func setup() (*config.Config, *lastfm.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("no API key configured: set LASTFM_API_KEY or api_key in %s",
			filepath.Join(config.GetConfigDir(), "config.yaml"))
	}

	client, err := lastfm.NewClient(lastfm.Config{
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout(),
		Logger:  zerologAdapter{logger: setupLogger(flagLogLevel)},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return cfg, client, nil
}

// username resolves the target user from the flag or the config.
func username(cfg *config.Config) (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if cfg.User != "" {
		return cfg.User, nil
	}
	return "", fmt.Errorf("no username: pass --user or set user in the config")
}

// setupLogger builds the CLI logger
func setupLogger(logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// zerologAdapter exposes a zerolog logger through the client's Logger
// interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (a zerologAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debug().Msgf(format, args...)
}

// output prints v as indented JSON when --json is set, and the
// rendered text otherwise.
func output(v interface{}, text func() string) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	fmt.Print(text())
	return nil
}
