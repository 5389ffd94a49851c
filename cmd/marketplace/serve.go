package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan/creator-marketplace/internal/config"
	"github.com/jordan/creator-marketplace/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the campaign matching, Brand-Fit profile, and admin intelligence endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return err
	}
	if merged.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(merged)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run()
}
