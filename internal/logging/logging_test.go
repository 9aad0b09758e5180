package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"", []string{"msg=\"schedule complete\"", "algorithm=rr"}},
		{"text", []string{"msg=\"schedule complete\"", "algorithm=rr"}},
		{"json", []string{`"msg":"schedule complete"`, `"algorithm":"rr"`}},
		{"JSON", []string{`"algorithm":"rr"`}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Format: tt.format})
		if err != nil {
			t.Fatalf("format %q: %v", tt.format, err)
		}
		logger.Info("schedule complete", "algorithm", "rr")
		for _, w := range tt.want {
			if !strings.Contains(buf.String(), w) {
				t.Errorf("format %q: expected %s in output, got: %s", tt.format, w, buf.String())
			}
		}
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("listening")
	logger.Warn("save run failed")

	if strings.Contains(buf.String(), "listening") {
		t.Errorf("INFO message should be filtered at WARN level, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "save run failed") {
		t.Errorf("WARN message missing, got: %s", buf.String())
	}
}

func TestNew_RejectsUnknownOptions(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Error("format xml: expected error")
	}
	if _, err := New(&bytes.Buffer{}, Options{Level: "verbose"}); err == nil {
		t.Error("level verbose: expected error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
		}
	}
}
