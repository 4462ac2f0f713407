package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kgplan/kgplan/internal/config"
	"github.com/kgplan/kgplan/internal/home"
	"github.com/kgplan/kgplan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the kgplan server",
	Long: `Start the kgplan HTTP server.

The server opens the plan database, watches the config file for changes,
and serves the browser form API under /api/v1.

Examples:
  kgplan serve                   # Listen per config (default 127.0.0.1:8321)
  kgplan serve --config my.yaml  # Use a specific config file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load config with hot reload
		cfgPath := cfgFile
		if cfgPath == "" && h.ConfigExists() {
			cfgPath = h.ConfigPath()
		}
		mgr, err := config.NewManager(cfgPath)
		if err != nil {
			return err
		}
		mgr.WatchConfig()

		// Create server
		srv, err := server.New(server.Config{
			ConfigManager: mgr,
			Home:          h,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
