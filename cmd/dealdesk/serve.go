package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dealdeskhq/dealdesk"
	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/infrastructure/api"
	"github.com/dealdeskhq/dealdesk/internal/config"
	"github.com/dealdeskhq/dealdesk/internal/log"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                         Server host to bind to (default: 0.0.0.0)
  PORT                         Server port to listen on (default: 8080)
  DATA_DIR                     Data directory (default: ~/.dealdesk)
  DB_URL                       Database URL (default: sqlite:///{data_dir}/dealdesk.db)
  LOG_LEVEL                    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT                   Log format: pretty, json (default: pretty)
  SEARCH_LIMIT                 Per-table cap for entity search (default: 5)
  ENTITY_ALIASES               JSON object of extra entity type aliases

  GENERATION_ENDPOINT_*        AI generation service configuration
    BASE_URL                   Base URL (e.g., https://api.openai.com/v1)
    MODEL                      Model identifier (e.g., gpt-4o-mini)
    API_KEY                    API key for authentication
    TIMEOUT                    Request timeout in seconds (default: 60)
    MAX_RETRIES                Retry attempts (default: 5)
    REQUESTS_PER_MINUTE        Rate limit (default: 60)

  SCHEDULER_ENABLED            Enable the news scheduler (default: true)
  SCHEDULER_POLL_INTERVAL_SECONDS   New-record poll interval (default: 60)
  SCHEDULER_POLL_BATCH         New records per tick (default: 5)
  SCHEDULER_RETRY_INTERVAL_SECONDS  Retry poll interval (default: 600)
  SCHEDULER_RETRY_BATCH        Failed records per tick (default: 3)
  SCHEDULER_MAX_ATTEMPTS       Processing attempt ceiling (default: 10)
  SCHEDULER_WORKER_COUNT       Worker pool size (default: 4)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = applyServeOverrides(cfg, host, port)

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	opts := []dealdesk.Option{
		dealdesk.WithDataDir(cfg.DataDir()),
		dealdesk.WithLogger(slogger),
		dealdesk.WithSchedulerConfig(cfg.Scheduler()),
		dealdesk.WithSearchLimit(cfg.SearchLimit()),
	}

	dbURL := cfg.DBURL()
	if isSQLite(dbURL) {
		opts = append(opts, dealdesk.WithSQLite(strings.TrimPrefix(dbURL, "sqlite:///")))
	} else {
		opts = append(opts, dealdesk.WithPostgres(dbURL))
	}

	if overrides := aliasOverrides(cfg); len(overrides) > 0 {
		opts = append(opts, dealdesk.WithAliasOverrides(overrides))
	}

	if endpoint := cfg.Generation(); endpoint != nil && endpoint.IsConfigured() {
		opts = append(opts, dealdesk.WithGenerationEndpoint(*endpoint))
	}

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting dealdesk", attrs...)

	client, err := dealdesk.New(opts...)
	if err != nil {
		return fmt.Errorf("create dealdesk client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close dealdesk client", slog.Any("error", err))
		}
	}()

	server := api.NewServer(cfg.Addr(), slogger)
	server.MountV1(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slogger.Info("shutting down server")
		cancel()
		if err := server.Shutdown(ctx); err != nil {
			slogger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	if err := server.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// isSQLite checks if the database URL is for SQLite.
func isSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite:")
}

// aliasOverrides converts the configured alias map to domain kinds. A
// value that parses to no known kind removes the alias.
func aliasOverrides(cfg config.AppConfig) map[string]entity.Kind {
	raw := cfg.AliasOverrides()
	if len(raw) == 0 {
		return nil
	}
	overrides := make(map[string]entity.Kind, len(raw))
	for alias, kind := range raw {
		overrides[alias] = entity.ParseKind(kind)
	}
	return overrides
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
