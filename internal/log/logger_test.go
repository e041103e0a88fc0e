// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})
	logger.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("JSON output missing message: %s", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "error", Format: FormatText, Output: &buf})
	logger.Info("quiet")

	if buf.Len() != 0 {
		t.Errorf("info logged despite error level: %s", buf.String())
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STRATUM_LOG_LEVEL", "debug")
	t.Setenv("STRATUM_LOG_FORMAT", "json")

	cfg := FromEnv()
	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func TestFromEnvDebugPrecedence(t *testing.T) {
	t.Setenv("STRATUM_DEBUG", "1")
	t.Setenv("STRATUM_LOG_LEVEL", "error")

	if cfg := FromEnv(); cfg.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
}
