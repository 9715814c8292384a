package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"HOST", "PORT", "DATA_DIR", "DB_URL", "LOG_LEVEL", "LOG_FORMAT",
	"SEARCH_LIMIT", "ENTITY_ALIASES",
	"GENERATION_ENDPOINT_BASE_URL", "GENERATION_ENDPOINT_MODEL",
	"GENERATION_ENDPOINT_API_KEY", "GENERATION_ENDPOINT_MAX_TOKENS",
	"SCHEDULER_ENABLED", "SCHEDULER_POLL_INTERVAL_SECONDS",
	"SCHEDULER_POLL_BATCH", "SCHEDULER_RETRY_INTERVAL_SECONDS",
	"SCHEDULER_RETRY_BATCH", "SCHEDULER_MAX_ATTEMPTS",
	"SCHEDULER_WORKER_COUNT",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		_ = os.Unsetenv(v)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "", cfg.DBURL)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.Equal(t, "", cfg.EntityAliases)

	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 60.0, cfg.Scheduler.PollIntervalSeconds)
	assert.Equal(t, 5, cfg.Scheduler.PollBatch)
	assert.Equal(t, 600.0, cfg.Scheduler.RetryIntervalSeconds)
	assert.Equal(t, 3, cfg.Scheduler.RetryBatch)
	assert.Equal(t, 10, cfg.Scheduler.MaxAttempts)
	assert.Equal(t, 4, cfg.Scheduler.WorkerCount)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "postgres://localhost/dealdesk")
	t.Setenv("GENERATION_ENDPOINT_MODEL", "gpt-4o-mini")
	t.Setenv("GENERATION_ENDPOINT_API_KEY", "sk-test")
	t.Setenv("SCHEDULER_POLL_INTERVAL_SECONDS", "5")
	t.Setenv("SCHEDULER_MAX_ATTEMPTS", "2")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/dealdesk", cfg.DBURL)
	assert.Equal(t, "gpt-4o-mini", cfg.GenerationEndpoint.Model)
	assert.Equal(t, "sk-test", cfg.GenerationEndpoint.APIKey)
	assert.Equal(t, 5.0, cfg.Scheduler.PollIntervalSeconds)
	assert.Equal(t, 2, cfg.Scheduler.MaxAttempts)
}

func TestEnvDefaults_MatchConfigDefaults(t *testing.T) {
	// Struct tag defaults must be literals, so this test keeps them in
	// sync with the constants in config.go.
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultSearchPerTableLimit, cfg.SearchLimit)
	assert.Equal(t, DefaultPollBatch, cfg.Scheduler.PollBatch)
	assert.Equal(t, DefaultRetryBatch, cfg.Scheduler.RetryBatch)
	assert.Equal(t, DefaultMaxAttempts, cfg.Scheduler.MaxAttempts)
	assert.Equal(t, DefaultWorkerCount, cfg.Scheduler.WorkerCount)
	assert.Equal(t, DefaultEndpointMaxRetries, cfg.GenerationEndpoint.MaxRetries)
	assert.Equal(t, DefaultEndpointMaxTokens, cfg.GenerationEndpoint.MaxTokens)
	assert.Equal(t, DefaultRequestsPerMinute, cfg.GenerationEndpoint.RequestsPerMinute)
}

func TestToAppConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9191")
	t.Setenv("ENTITY_ALIASES", `{"Growth Fund": "fund", "PE": ""}`)
	t.Setenv("GENERATION_ENDPOINT_MODEL", "gpt-4o-mini")
	t.Setenv("SCHEDULER_RETRY_INTERVAL_SECONDS", "120")

	envCfg, err := LoadFromEnv()
	require.NoError(t, err)

	cfg, err := envCfg.ToAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9191", cfg.Addr())
	assert.Equal(t, map[string]string{"Growth Fund": "fund", "PE": ""}, cfg.AliasOverrides())
	require.NotNil(t, cfg.Generation())
	assert.Equal(t, "gpt-4o-mini", cfg.Generation().Model())
	assert.Equal(t, 120*time.Second, cfg.Scheduler().RetryInterval())
}

func TestToAppConfig_InvalidAliases(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENTITY_ALIASES", "not-json")

	envCfg, err := LoadFromEnv()
	require.NoError(t, err)

	_, err = envCfg.ToAppConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENTITY_ALIASES")
}

func TestToAppConfig_UnconfiguredEndpointIsNil(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("GENERATION_ENDPOINT_BASE_URL", "https://api.example.com/v1")

	envCfg, err := LoadFromEnv()
	require.NoError(t, err)

	cfg, err := envCfg.ToAppConfig()
	require.NoError(t, err)

	// A base URL without a model is not a usable endpoint.
	assert.Nil(t, cfg.Generation())
}
