package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/keyscribe/keyscribe/internal/config"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("low-severity messages leaked: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("high-severity messages missing: %q", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "keyscribe"})

	logger.Info("loaded %d actions", 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO] keyscribe: loaded 3 actions") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithComponent("dispatch").WithField("op", "abc123").Info("done")

	out := buf.String()
	if !strings.Contains(out, "component=dispatch") || !strings.Contains(out, "op=abc123") {
		t.Errorf("fields missing from log line: %q", out)
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})

	logger.Info("before")
	logger.SetLevel(LogLevelDebug)
	logger.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("message logged below threshold: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("message missing after SetLevel: %q", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"nonsense", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNullLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NullLogger.SetOutput(&buf)
	NullLogger.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("NullLogger wrote %q", buf.String())
	}
}

func TestLogWriterDefaultsToStderr(t *testing.T) {
	w := LogWriter(config.LoggingSettings{})
	if w == nil {
		t.Fatal("LogWriter returned nil")
	}
	if _, ok := w.(interface{ Rotate() error }); ok {
		t.Error("file-less settings produced a rotating writer")
	}

	rot := LogWriter(config.LoggingSettings{File: "/tmp/keyscribe-test.log"})
	if _, ok := rot.(interface{ Rotate() error }); !ok {
		t.Error("file settings did not produce a rotating writer")
	}
}
