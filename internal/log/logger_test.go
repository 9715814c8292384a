package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dealdeskhq/dealdesk/internal/config"
)

func TestNewLogger_TextFormat(t *testing.T) {
	cfg := config.NewAppConfig().Apply(
		config.WithLogLevel("INFO"),
		config.WithLogFormat(config.LogFormatPretty),
	)

	logger := NewLogger(cfg)

	if logger == nil {
		t.Fatal("NewLogger should not return nil")
	}
	if logger.Slog() == nil {
		t.Error("Slog() should not return nil")
	}
}

func TestLogger_LogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "DEBUG")

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 log lines, got %d", len(lines))
	}

	for i, line := range lines {
		var data map[string]any
		if err := json.Unmarshal([]byte(line), &data); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "WARN")

	logger.Debug("filtered")
	logger.Info("filtered")
	logger.Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected 1 log line, got %d", len(lines))
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	logger.With("component", "resolver").Info("test message")

	var data map[string]any
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if data["component"] != "resolver" {
		t.Errorf("expected component=resolver, got %v", data["component"])
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	ctx := WithCorrelationID(context.Background(), "corr-123")
	ctx = WithRequestID(ctx, "req-456")
	ctx = WithOrgID(ctx, "org-789")

	logger.InfoContext(ctx, "test message")

	var data map[string]any
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if data["correlation_id"] != "corr-123" {
		t.Errorf("expected correlation_id=corr-123, got %v", data["correlation_id"])
	}
	if data["request_id"] != "req-456" {
		t.Errorf("expected request_id=req-456, got %v", data["request_id"])
	}
	if data["org_id"] != "org-789" {
		t.Errorf("expected org_id=org-789, got %v", data["org_id"])
	}
}

func TestLogger_WithContext_Empty(t *testing.T) {
	logger := NewLoggerWithWriter(&bytes.Buffer{}, config.LogFormatJSON, "INFO")

	if got := logger.WithContext(context.Background()); got != logger {
		t.Error("WithContext with no context values should return the same logger")
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	if CorrelationID(ctx) != "" {
		t.Error("CorrelationID on empty context should be empty")
	}
	if OrgID(ctx) != "" {
		t.Error("OrgID on empty context should be empty")
	}

	ctx = WithCorrelationID(ctx, "abc")
	ctx = WithOrgID(ctx, "def")

	if CorrelationID(ctx) != "abc" {
		t.Errorf("CorrelationID = %v, want abc", CorrelationID(ctx))
	}
	if OrgID(ctx) != "def" {
		t.Errorf("OrgID = %v, want def", OrgID(ctx))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DEBUG", "DEBUG"},
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"WARN", "WARN"},
		{"WARNING", "WARN"},
		{"ERROR", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTerminalHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO")

	logger.Info("server started", "port", 8080)

	out := buf.String()
	if !strings.Contains(out, "INF") {
		t.Errorf("output should contain level label, got %q", out)
	}
	if !strings.Contains(out, "server started") {
		t.Errorf("output should contain message, got %q", out)
	}
	if !strings.Contains(out, "port=") {
		t.Errorf("output should contain attribute, got %q", out)
	}
}

func TestTerminalHandler_ShortensIdentityUUIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO")

	orgID := "3be90021-64cf-4f4a-9a58-0cf43b7b2d41"
	logger.Info("news claimed", "org_id", orgID, "batch", orgID)

	out := buf.String()
	if !strings.Contains(out, "org_id=\033[0m3be90021 ") {
		t.Errorf("org_id value should be shortened to 8 hex digits, got %q", out)
	}
	// Non-identity attrs keep the full value even when it looks like a UUID.
	if !strings.Contains(out, "batch=\033[0m"+orgID) {
		t.Errorf("batch value should not be shortened, got %q", out)
	}
}

func TestShortenUUID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3be90021-64cf-4f4a-9a58-0cf43b7b2d41", "3be90021"},
		{"not-a-uuid", "not-a-uuid"},
		{"", ""},
		{"3be9002164cf4f4a9a580cf43b7b2d41ffff", "3be9002164cf4f4a9a580cf43b7b2d41ffff"},
	}
	for _, tt := range tests {
		if got := shortenUUID(tt.input); got != tt.want {
			t.Errorf("shortenUUID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKeyStyle(t *testing.T) {
	if keyStyle("org_id") != ansiCyan {
		t.Error("identity keys should be cyan")
	}
	if keyStyle("error") != ansiRed {
		t.Error("error key should be red")
	}
	if keyStyle("duration") != ansiDim {
		t.Error("other keys should be dim")
	}
}
