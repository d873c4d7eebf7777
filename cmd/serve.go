package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"promptdex/internal/logging"
	"promptdex/internal/server"
	"promptdex/internal/tools"
)

// serveCmd runs the stdio MCP server. This is the command MCP hosts
// configure as the server binary; stdout carries the protocol stream,
// so all logging goes to stderr.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Starts a long-lived MCP server on stdin/stdout exposing the registry
tools search, fetch-one, list-categories, and list-featured. Every tool
call fetches fresh registry state; nothing is cached between calls.

The server runs until stdin closes or the process receives SIGINT/SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	client := newRegistryClient(cfg, logger)

	srv := server.New(server.Config{
		Name:    "promptdex",
		Version: rootCmd.Version,
		Logger:  logger,
	})
	srv.AddTools(tools.NewHandlers(client, logger).Tools())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting promptdex", "registry", cfg.BaseURL, "version", rootCmd.Version)

	return srv.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
