// Package cmd wires the promptdex CLI: the stdio MCP server plus a few
// developer conveniences for poking the registry directly.
package cmd

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"promptdex/internal/config"
	"promptdex/internal/registry"
)

// Persistent flags shared by every subcommand. Empty/zero means "use the
// config file value (or the default)".
var (
	flagConfig   string
	flagBaseURL  string
	flagTimeout  time.Duration
	flagLogLevel string
)

// rootCmd is the entry point when promptdex runs without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "promptdex",
	Short: "Expose the promptdex instruction registry as MCP tools",
	Long: `promptdex adapts the remote promptdex instruction registry to the
Model Context Protocol. 'promptdex serve' runs a stdio MCP server exposing
search, fetch-one, list-categories, and list-featured; the remaining
commands query the registry directly for development and debugging.`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command; main injects it at
// build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. Called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "promptdex version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Registry origin (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Registry request timeout (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, or error (overrides config)")
}

// resolveConfig layers flags over the config file over the defaults.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	return cfg, nil
}

func newRegistryClient(cfg config.Config, logger *slog.Logger) *registry.Client {
	return registry.NewClient(
		registry.WithBaseURL(cfg.BaseURL),
		registry.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		registry.WithLogger(logger),
	)
}
