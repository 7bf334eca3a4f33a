package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("Server.GinMode = %q, want release", cfg.Server.GinMode)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.App.ForecastDays != 5 {
		t.Errorf("App.ForecastDays = %d, want 5", cfg.App.ForecastDays)
	}
}

func TestConfig_GetServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 9090}}
	if got := cfg.GetServerAddr(); got != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", got)
	}
}

func TestConfig_NewLoggerWithWriter_Level(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		wantsDebug bool
	}{
		{
			name:       "debug level writes debug lines",
			level:      "debug",
			wantsDebug: true,
		},
		{
			name:       "info level drops debug lines",
			level:      "info",
			wantsDebug: false,
		},
		{
			name:       "unknown level defaults to info",
			level:      "verbose",
			wantsDebug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: "text"}}
			logger := cfg.NewLoggerWithWriter(&buf)

			logger.Debug("debug message")
			logger.Info("info message")

			gotDebug := strings.Contains(buf.String(), "debug message")
			if gotDebug != tt.wantsDebug {
				t.Errorf("debug line written = %v, want %v", gotDebug, tt.wantsDebug)
			}
			if !strings.Contains(buf.String(), "info message") {
				t.Error("info line should always be written")
			}
		})
	}
}

func TestConfig_NewLoggerWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Log: LogConfig{Level: "info", Format: "json"}}
	logger := cfg.NewLoggerWithWriter(&buf)

	logger.Info("hello", "key", "value")

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "{") {
		t.Errorf("JSON format should produce JSON lines, got %q", line)
	}
	if !strings.Contains(line, `"key":"value"`) {
		t.Errorf("JSON line %q should contain the attribute", line)
	}
}
