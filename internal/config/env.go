// Package config provides application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g., GENERATION_ENDPOINT_BASE_URL).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.dealdesk
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/dealdesk.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// SearchLimit is the per-table result cap for entity search.
	// Env: SEARCH_LIMIT (default: 5)
	SearchLimit int `envconfig:"SEARCH_LIMIT" default:"5"`

	// EntityAliases is a JSON-encoded map of alias -> entity kind, layered
	// over the built-in vocabulary. Mapping an alias to "" removes it.
	// Env: ENTITY_ALIASES
	EntityAliases string `envconfig:"ENTITY_ALIASES"`

	// GenerationEndpoint configures the news analysis AI service.
	GenerationEndpoint EndpointEnv `envconfig:"GENERATION_ENDPOINT"`

	// Scheduler configures background news processing.
	Scheduler SchedulerEnv `envconfig:"SCHEDULER"`
}

// EndpointEnv holds environment configuration for an AI endpoint.
type EndpointEnv struct {
	// BaseURL is the base URL for the endpoint.
	// Env: *_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the model identifier (e.g., gpt-4o-mini).
	// Env: *_MODEL
	Model string `envconfig:"MODEL"`

	// APIKey is the API key for authentication.
	// Env: *_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// Timeout is the request timeout in seconds.
	// Env: *_TIMEOUT (default: 60)
	Timeout float64 `envconfig:"TIMEOUT" default:"60"`

	// MaxRetries is the maximum number of retries.
	// Env: *_MAX_RETRIES (default: 5)
	MaxRetries int `envconfig:"MAX_RETRIES" default:"5"`

	// InitialDelay is the initial retry delay in seconds.
	// Env: *_INITIAL_DELAY (default: 2.0)
	InitialDelay float64 `envconfig:"INITIAL_DELAY" default:"2.0"`

	// BackoffFactor is the retry backoff multiplier.
	// Env: *_BACKOFF_FACTOR (default: 2.0)
	BackoffFactor float64 `envconfig:"BACKOFF_FACTOR" default:"2.0"`

	// MaxTokens is the maximum token limit.
	// Env: *_MAX_TOKENS (default: 1024)
	MaxTokens int `envconfig:"MAX_TOKENS" default:"1024"`

	// RequestsPerMinute is the client-side rate limit.
	// Env: *_REQUESTS_PER_MINUTE (default: 60)
	RequestsPerMinute int `envconfig:"REQUESTS_PER_MINUTE" default:"60"`
}

// SchedulerEnv holds environment configuration for the news scheduler.
type SchedulerEnv struct {
	// Enabled controls whether background processing runs.
	// Env: SCHEDULER_ENABLED (default: true)
	Enabled bool `envconfig:"ENABLED" default:"true"`

	// PollIntervalSeconds is the new-work polling interval in seconds.
	// Env: SCHEDULER_POLL_INTERVAL_SECONDS (default: 60)
	PollIntervalSeconds float64 `envconfig:"POLL_INTERVAL_SECONDS" default:"60"`

	// PollBatch is the per-tick cap on new records.
	// Env: SCHEDULER_POLL_BATCH (default: 5)
	PollBatch int `envconfig:"POLL_BATCH" default:"5"`

	// RetryIntervalSeconds is the failed-work polling interval in seconds.
	// Env: SCHEDULER_RETRY_INTERVAL_SECONDS (default: 600)
	RetryIntervalSeconds float64 `envconfig:"RETRY_INTERVAL_SECONDS" default:"600"`

	// RetryBatch is the per-tick cap on failed records.
	// Env: SCHEDULER_RETRY_BATCH (default: 3)
	RetryBatch int `envconfig:"RETRY_BATCH" default:"3"`

	// MaxAttempts is the processing attempt ceiling.
	// Env: SCHEDULER_MAX_ATTEMPTS (default: 10)
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"10"`

	// WorkerCount is the worker pool size.
	// Env: SCHEDULER_WORKER_COUNT (default: 4)
	WorkerCount int `envconfig:"WORKER_COUNT" default:"4"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "DEALDESK" would require DEALDESK_DB_URL instead of
// DB_URL.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() (AppConfig, error) {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.SearchLimit > 0 {
		cfg = applyOption(cfg, WithSearchLimit(e.SearchLimit))
	}

	if e.EntityAliases != "" {
		overrides, err := parseAliasOverrides(e.EntityAliases)
		if err != nil {
			return AppConfig{}, fmt.Errorf("parse ENTITY_ALIASES: %w", err)
		}
		cfg = applyOption(cfg, WithAliasOverrides(overrides))
	}

	if e.GenerationEndpoint.IsConfigured() {
		cfg = applyOption(cfg, WithGenerationEndpoint(e.GenerationEndpoint.ToEndpoint()))
	}

	cfg = applyOption(cfg, WithSchedulerConfig(e.Scheduler.ToSchedulerConfig()))

	return cfg, nil
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// IsConfigured returns true if the endpoint has a model configured.
func (e EndpointEnv) IsConfigured() bool {
	return e.Model != ""
}

// ToEndpoint converts EndpointEnv to Endpoint.
func (e EndpointEnv) ToEndpoint() Endpoint {
	opts := []EndpointOption{
		WithModel(e.Model),
		WithTimeout(time.Duration(e.Timeout * float64(time.Second))),
		WithMaxRetries(e.MaxRetries),
		WithInitialDelay(time.Duration(e.InitialDelay * float64(time.Second))),
		WithBackoffFactor(e.BackoffFactor),
		WithMaxTokens(e.MaxTokens),
		WithRequestsPerMinute(e.RequestsPerMinute),
	}

	if e.BaseURL != "" {
		opts = append(opts, WithBaseURL(e.BaseURL))
	}
	if e.APIKey != "" {
		opts = append(opts, WithAPIKey(e.APIKey))
	}

	return NewEndpointWithOptions(opts...)
}

// ToSchedulerConfig converts SchedulerEnv to SchedulerConfig.
func (s SchedulerEnv) ToSchedulerConfig() SchedulerConfig {
	cfg := NewSchedulerConfig().WithEnabled(s.Enabled)
	if s.PollIntervalSeconds > 0 {
		cfg = cfg.WithPollInterval(time.Duration(s.PollIntervalSeconds * float64(time.Second)))
	}
	if s.PollBatch > 0 {
		cfg = cfg.WithPollBatch(s.PollBatch)
	}
	if s.RetryIntervalSeconds > 0 {
		cfg = cfg.WithRetryInterval(time.Duration(s.RetryIntervalSeconds * float64(time.Second)))
	}
	if s.RetryBatch > 0 {
		cfg = cfg.WithRetryBatch(s.RetryBatch)
	}
	if s.MaxAttempts > 0 {
		cfg = cfg.WithMaxAttempts(s.MaxAttempts)
	}
	if s.WorkerCount > 0 {
		cfg = cfg.WithWorkerCount(s.WorkerCount)
	}
	return cfg
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

// parseAliasOverrides parses a JSON-encoded alias override map.
func parseAliasOverrides(s string) (map[string]string, error) {
	var overrides map[string]string
	if err := json.Unmarshal([]byte(s), &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}
