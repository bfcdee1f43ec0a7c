// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the logger including configuration, context
//              management, formatters and coded error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-18 v0.2.0: Correlation ids and coded error levels

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLoggerWithMethodsClone(t *testing.T) {
	logger := New()
	derived := logger.WithLevel(LevelDebug).WithName("parser").WithField("file", "a.tri")

	if derived == logger {
		t.Fatal("With* methods should return a new logger instance")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
	if logger.Name() != "" {
		t.Error("WithName() should not modify original logger")
	}
	if _, ok := logger.contextFields["file"]; ok {
		t.Error("WithField() should not modify original logger")
	}
	if derived.Name() != "parser" {
		t.Errorf("Name() = %q, want parser", derived.Name())
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output missing warn entry: %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger = logger.WithName("scanner").WithCorrelationID("run-1")

	logger.Debug("token", Fields{"row": 2, "kind": "Identifier"})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]interface{}{
		"level":          "debug",
		"message":        "token",
		"logger":         "scanner",
		"correlation_id": "run-1",
		"kind":           "Identifier",
		"row":            float64(2),
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestTextOutputSortsFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.formatter = &TextFormatter{DisableTimestamp: true}

	logger.Info("parsed", Fields{"b": 2, "a": 1})

	want := "[INF] parsed [a=1 b=2]\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		minLevel  Level
		wantLevel string
		wantField string
	}{
		{
			name:      "syntax error logs at info",
			err:       mdwerror.New("unexpected token").WithCode(mdwerror.CodeSyntax).WithDetail("row", 1),
			minLevel:  LevelTrace,
			wantLevel: "info",
			wantField: "error_row",
		},
		{
			name:      "io error logs at error",
			err:       mdwerror.New("disk full").WithCode(mdwerror.CodeIO),
			minLevel:  LevelTrace,
			wantLevel: "error",
			wantField: "error_code",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			minLevel:  LevelTrace,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.minLevel, FormatJSON)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
			if tt.wantField != "" {
				if _, ok := decoded[tt.wantField]; !ok {
					t.Errorf("missing field %q in %v", tt.wantField, decoded)
				}
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("dropped")
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("tokens", 12)
	if !timer.IsRunning() {
		t.Fatal("new timer should be running")
	}
	timer.Stop()
	if timer.IsRunning() {
		t.Error("stopped timer should not be running")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return zero")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["message"] != "parse completed" {
		t.Errorf("message = %v, want %q", decoded["message"], "parse completed")
	}
	if decoded["operation"] != "parse" {
		t.Errorf("operation = %v, want parse", decoded["operation"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatText)
	logger.formatter = &TextFormatter{DisableTimestamp: true}

	logger.StartTimer("scan").StopWithError(errors.New("bad char"))

	out := buf.String()
	if !strings.HasPrefix(out, "[ERR] scan failed") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, `error="bad char"`) {
		t.Errorf("output missing error: %q", out)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom := Discard()
	SetDefault(custom)
	if GetDefault() != custom {
		t.Error("SetDefault() did not replace the default logger")
	}
}
