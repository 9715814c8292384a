package dealdesk

import (
	"log/slog"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/infrastructure/provider"
	"github.com/dealdeskhq/dealdesk/internal/config"
)

// databaseType identifies the database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
)

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	database         databaseType
	dbPath           string
	dbDSN            string
	dataDir          string
	logger           *slog.Logger
	generator        provider.TextGenerator
	generation       *config.Endpoint
	scheduler        config.SchedulerConfig
	searchLimit      int
	aliasOverrides   map[string]entity.Kind
	disableScheduler bool
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir:     config.DefaultDataDir(),
		scheduler:   config.NewSchedulerConfig(),
		searchLimit: config.DefaultSearchPerTableLimit,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres configures PostgreSQL with the given DSN.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDataDir sets the data directory for database storage.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithGenerationEndpoint configures the AI generation endpoint used for
// news analysis.
func WithGenerationEndpoint(endpoint config.Endpoint) Option {
	return func(c *clientConfig) {
		c.generation = &endpoint
	}
}

// WithTextGenerator sets a custom text generation provider, overriding
// any configured endpoint. Useful in tests.
func WithTextGenerator(g provider.TextGenerator) Option {
	return func(c *clientConfig) {
		c.generator = g
	}
}

// WithSchedulerConfig sets the news-processing scheduler configuration.
func WithSchedulerConfig(cfg config.SchedulerConfig) Option {
	return func(c *clientConfig) {
		c.scheduler = cfg
	}
}

// WithoutScheduler disables the background scheduler. News records can
// still be processed on demand through the Processor.
func WithoutScheduler() Option {
	return func(c *clientConfig) {
		c.disableScheduler = true
	}
}

// WithSearchLimit sets the per-table cap for cross-table entity search.
// Values <= 0 are ignored.
func WithSearchLimit(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.searchLimit = n
		}
	}
}

// WithAliasOverrides merges the given entity type aliases over the
// built-in vocabulary. An override mapping to KindUnknown removes the
// alias.
func WithAliasOverrides(overrides map[string]entity.Kind) Option {
	return func(c *clientConfig) {
		c.aliasOverrides = overrides
	}
}
