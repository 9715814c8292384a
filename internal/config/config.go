// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8080
	DefaultLogLevel = "INFO"

	// DefaultSearchPerTableLimit caps results per entity table in
	// cross-table search. Five per table keeps the concatenated list
	// at thirty rows worst case.
	DefaultSearchPerTableLimit = 5

	DefaultPollInterval  = 60 * time.Second
	DefaultPollBatch     = 5
	DefaultRetryInterval = 10 * time.Minute
	DefaultRetryBatch    = 3
	DefaultMaxAttempts   = 10
	DefaultWorkerCount   = 4

	DefaultEndpointTimeout       = 60 * time.Second
	DefaultEndpointMaxRetries    = 5
	DefaultEndpointInitialDelay  = 2 * time.Second
	DefaultEndpointBackoffFactor = 2.0
	DefaultEndpointMaxTokens     = 1024
	DefaultRequestsPerMinute     = 60
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// SchedulerConfig configures the news-processing scheduler: the new-work
// poll loop, the slower retry loop, and the worker pool between them.
type SchedulerConfig struct {
	enabled       bool
	pollInterval  time.Duration
	pollBatch     int
	retryInterval time.Duration
	retryBatch    int
	maxAttempts   int
	workerCount   int
}

// NewSchedulerConfig creates a SchedulerConfig with defaults.
func NewSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		enabled:       true,
		pollInterval:  DefaultPollInterval,
		pollBatch:     DefaultPollBatch,
		retryInterval: DefaultRetryInterval,
		retryBatch:    DefaultRetryBatch,
		maxAttempts:   DefaultMaxAttempts,
		workerCount:   DefaultWorkerCount,
	}
}

// Enabled reports whether the scheduler runs at all.
func (s SchedulerConfig) Enabled() bool { return s.enabled }

// PollInterval returns the new-work polling interval.
func (s SchedulerConfig) PollInterval() time.Duration { return s.pollInterval }

// PollBatch returns the per-tick cap on new records submitted.
func (s SchedulerConfig) PollBatch() int { return s.pollBatch }

// RetryInterval returns the failed-work polling interval. Retries poll
// slower than new work so a persistently failing downstream dependency is
// not hammered.
func (s SchedulerConfig) RetryInterval() time.Duration { return s.retryInterval }

// RetryBatch returns the per-tick cap on failed records resubmitted.
func (s SchedulerConfig) RetryBatch() int { return s.retryBatch }

// MaxAttempts returns the processing attempt ceiling. Records that fail
// this many times are left for manual intervention.
func (s SchedulerConfig) MaxAttempts() int { return s.maxAttempts }

// WorkerCount returns the worker pool size.
func (s SchedulerConfig) WorkerCount() int { return s.workerCount }

// WithEnabled returns a copy with the enabled flag set.
func (s SchedulerConfig) WithEnabled(enabled bool) SchedulerConfig {
	s.enabled = enabled
	return s
}

// WithPollInterval returns a copy with the new-work interval set.
func (s SchedulerConfig) WithPollInterval(d time.Duration) SchedulerConfig {
	s.pollInterval = d
	return s
}

// WithPollBatch returns a copy with the new-work batch size set.
func (s SchedulerConfig) WithPollBatch(n int) SchedulerConfig {
	s.pollBatch = n
	return s
}

// WithRetryInterval returns a copy with the retry interval set.
func (s SchedulerConfig) WithRetryInterval(d time.Duration) SchedulerConfig {
	s.retryInterval = d
	return s
}

// WithRetryBatch returns a copy with the retry batch size set.
func (s SchedulerConfig) WithRetryBatch(n int) SchedulerConfig {
	s.retryBatch = n
	return s
}

// WithMaxAttempts returns a copy with the attempt ceiling set.
func (s SchedulerConfig) WithMaxAttempts(n int) SchedulerConfig {
	s.maxAttempts = n
	return s
}

// WithWorkerCount returns a copy with the worker pool size set.
func (s SchedulerConfig) WithWorkerCount(n int) SchedulerConfig {
	s.workerCount = n
	return s
}

// Endpoint configures the AI generation service.
type Endpoint struct {
	baseURL           string
	model             string
	apiKey            string
	timeout           time.Duration
	maxRetries        int
	initialDelay      time.Duration
	backoffFactor     float64
	maxTokens         int
	requestsPerMinute int
}

// NewEndpoint creates an Endpoint with defaults.
func NewEndpoint() Endpoint {
	return Endpoint{
		timeout:           DefaultEndpointTimeout,
		maxRetries:        DefaultEndpointMaxRetries,
		initialDelay:      DefaultEndpointInitialDelay,
		backoffFactor:     DefaultEndpointBackoffFactor,
		maxTokens:         DefaultEndpointMaxTokens,
		requestsPerMinute: DefaultRequestsPerMinute,
	}
}

// BaseURL returns the endpoint base URL.
func (e Endpoint) BaseURL() string { return e.baseURL }

// Model returns the model identifier.
func (e Endpoint) Model() string { return e.model }

// APIKey returns the API key.
func (e Endpoint) APIKey() string { return e.apiKey }

// Timeout returns the request timeout.
func (e Endpoint) Timeout() time.Duration { return e.timeout }

// MaxRetries returns the retry ceiling for one request.
func (e Endpoint) MaxRetries() int { return e.maxRetries }

// InitialDelay returns the first retry delay.
func (e Endpoint) InitialDelay() time.Duration { return e.initialDelay }

// BackoffFactor returns the retry backoff multiplier.
func (e Endpoint) BackoffFactor() float64 { return e.backoffFactor }

// MaxTokens returns the generation token limit.
func (e Endpoint) MaxTokens() int { return e.maxTokens }

// RequestsPerMinute returns the client-side rate limit.
func (e Endpoint) RequestsPerMinute() int { return e.requestsPerMinute }

// IsConfigured reports whether the endpoint has a model configured.
func (e Endpoint) IsConfigured() bool { return e.model != "" }

// EndpointOption configures an Endpoint.
type EndpointOption func(*Endpoint)

// WithBaseURL sets the endpoint base URL.
func WithBaseURL(url string) EndpointOption {
	return func(e *Endpoint) { e.baseURL = url }
}

// WithModel sets the model identifier.
func WithModel(model string) EndpointOption {
	return func(e *Endpoint) { e.model = model }
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) EndpointOption {
	return func(e *Endpoint) { e.apiKey = key }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) EndpointOption {
	return func(e *Endpoint) { e.timeout = d }
}

// WithMaxRetries sets the per-request retry ceiling.
func WithMaxRetries(n int) EndpointOption {
	return func(e *Endpoint) { e.maxRetries = n }
}

// WithInitialDelay sets the first retry delay.
func WithInitialDelay(d time.Duration) EndpointOption {
	return func(e *Endpoint) { e.initialDelay = d }
}

// WithBackoffFactor sets the retry backoff multiplier.
func WithBackoffFactor(f float64) EndpointOption {
	return func(e *Endpoint) { e.backoffFactor = f }
}

// WithMaxTokens sets the generation token limit.
func WithMaxTokens(n int) EndpointOption {
	return func(e *Endpoint) { e.maxTokens = n }
}

// WithRequestsPerMinute sets the client-side rate limit.
func WithRequestsPerMinute(n int) EndpointOption {
	return func(e *Endpoint) { e.requestsPerMinute = n }
}

// NewEndpointWithOptions creates an Endpoint from options over defaults.
func NewEndpointWithOptions(opts ...EndpointOption) Endpoint {
	e := NewEndpoint()
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// AppConfig is the immutable application configuration.
type AppConfig struct {
	host           string
	port           int
	dataDir        string
	dbURL          string
	logLevel       string
	logFormat      LogFormat
	searchLimit    int
	aliasOverrides map[string]string
	scheduler      SchedulerConfig
	generation     *Endpoint
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:        DefaultHost,
		port:        DefaultPort,
		dataDir:     DefaultDataDir(),
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		searchLimit: DefaultSearchPerTableLimit,
		scheduler:   NewSchedulerConfig(),
	}
}

// DefaultDataDir returns ~/.dealdesk, falling back to .dealdesk in the
// working directory when the home directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dealdesk"
	}
	return filepath.Join(home, ".dealdesk")
}

// Host returns the server bind host.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port bind address.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database URL, defaulting to a SQLite file in the data
// directory when unset.
func (c AppConfig) DBURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return "sqlite:///" + filepath.Join(c.dataDir, "dealdesk.db")
}

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// SearchLimit returns the per-table search result cap.
func (c AppConfig) SearchLimit() int { return c.searchLimit }

// AliasOverrides returns entity-type alias overrides layered over the
// built-in vocabulary.
func (c AppConfig) AliasOverrides() map[string]string { return c.aliasOverrides }

// Scheduler returns the news scheduler configuration.
func (c AppConfig) Scheduler() SchedulerConfig { return c.scheduler }

// Generation returns the AI generation endpoint, or nil when unconfigured.
func (c AppConfig) Generation() *Endpoint { return c.generation }

// EnsureDataDir creates the data directory if missing.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// LogAttrs returns the config as slog attributes for startup logging.
// The database URL is masked.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("addr", c.Addr()),
		slog.String("data_dir", c.dataDir),
		slog.String("db", maskDBURL(c.DBURL())),
		slog.String("log_level", c.logLevel),
		slog.Bool("scheduler_enabled", c.scheduler.Enabled()),
		slog.Bool("generation_configured", c.generation != nil && c.generation.IsConfigured()),
	}
}

// AppConfigOption configures an AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server bind host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) { c.dataDir = dir }
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log verbosity level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log output format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithSearchLimit sets the per-table search result cap.
func WithSearchLimit(limit int) AppConfigOption {
	return func(c *AppConfig) { c.searchLimit = limit }
}

// WithAliasOverrides sets entity-type alias overrides.
func WithAliasOverrides(overrides map[string]string) AppConfigOption {
	return func(c *AppConfig) { c.aliasOverrides = overrides }
}

// WithSchedulerConfig sets the scheduler configuration.
func WithSchedulerConfig(scheduler SchedulerConfig) AppConfigOption {
	return func(c *AppConfig) { c.scheduler = scheduler }
}

// WithGenerationEndpoint sets the AI generation endpoint.
func WithGenerationEndpoint(endpoint Endpoint) AppConfigOption {
	return func(c *AppConfig) { c.generation = &endpoint }
}

// Apply returns a copy of the config with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// maskDBURL hides credentials in a database URL for logging.
func maskDBURL(url string) string {
	at := -1
	scheme := -1
	for i := 0; i < len(url); i++ {
		if url[i] == '@' {
			at = i
		}
		if scheme < 0 && i+2 < len(url) && url[i] == ':' && url[i+1] == '/' && url[i+2] == '/' {
			scheme = i + 3
		}
	}
	if at < 0 || scheme < 0 || at < scheme {
		return url
	}
	return url[:scheme] + "***" + url[at:]
}
