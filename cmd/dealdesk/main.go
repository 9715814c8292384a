// Package main is the entry point for the dealdesk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/dealdeskhq/dealdesk/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dealdesk",
		Short: "Dealdesk private-markets CRM server",
		Long:  `Dealdesk is a private-markets CRM that resolves and searches entities across GP, LP, fund, portfolio company, contact, and service provider tables, and processes news through an AI-assisted linking pipeline.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
