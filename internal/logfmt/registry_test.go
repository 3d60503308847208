package logfmt

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"CRITICAL", LevelCritical},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", tt.in, err)
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestParseLevelInvalid(t *testing.T) {
	_, err := ParseLevel("TRACE")
	if err == nil {
		t.Fatal("expected error for TRACE")
	}
	var invalid *InvalidLevelError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidLevelError, got %T", err)
	}
	for _, want := range []string{"TRACE", "INFO", "WARNING", "DEBUG", "CRITICAL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err.Error(), want)
		}
	}
}

func TestUnconfiguredRegistryIsSilent(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)

	reg.Logger("mylogger").Info("should vanish")

	if buf.Len() != 0 {
		t.Errorf("unconfigured registry emitted output: %q", buf.String())
	}
}

func TestCompactTemplate(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)
	reg.Configure(1)
	reg.SetLevel(slog.LevelDebug)

	reg.Logger("mylogger").Info("hello there")

	got := buf.String()
	if !strings.Contains(got, "INFO") {
		t.Errorf("output missing level name: %q", got)
	}
	if !strings.Contains(got, "hello there") {
		t.Errorf("output missing message: %q", got)
	}
	// First record computes the delta against itself.
	if !strings.Contains(got, "(0.00s)") {
		t.Errorf("first record should report zero delta: %q", got)
	}
	if strings.Contains(got, "mylogger") {
		t.Errorf("compact template should not include the logger name: %q", got)
	}
}

func TestVerboseTemplateHasCallerFields(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)
	reg.Configure(2)
	reg.SetLevel(slog.LevelDebug)

	reg.Logger("mylogger").Debug("inspect me")

	got := buf.String()
	for _, want := range []string{"DEBUG", "inspect me", "mylogger", "()"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q should contain %q", got, want)
		}
	}
	// Function name and line number of the emission site.
	if !strings.Contains(got, "TestVerboseTemplateHasCallerFields") {
		t.Errorf("output should name the calling function: %q", got)
	}
	if !regexp.MustCompile(`\s\d+ >> `).MatchString(got) {
		t.Errorf("output should contain a line number before '>>': %q", got)
	}
}

func TestFullTemplateHasTimestamp(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)
	reg.Configure(3)
	reg.SetLevel(slog.LevelDebug)

	reg.Logger("mylogger").Warn("full format")

	got := buf.String()
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} Line:`).MatchString(got) {
		t.Errorf("output should start with an absolute timestamp: %q", got)
	}
	for _, want := range []string{"WARNING", "full format", "Delta=", "mylogger"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q should contain %q", got, want)
		}
	}
}

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)
	reg.Configure(1)
	reg.SetLevel(LevelCritical)

	logger := reg.Logger("mylogger")
	logger.Debug("no")
	logger.Info("no")
	logger.Warn("no")
	logger.Error("no")

	if buf.Len() != 0 {
		t.Errorf("records below CRITICAL leaked through: %q", buf.String())
	}

	logger.Log(context.Background(), LevelCritical, "yes")
	if !strings.Contains(buf.String(), "yes") {
		t.Errorf("CRITICAL record was suppressed: %q", buf.String())
	}
}

func TestDeltaAcrossRecords(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)
	reg.Configure(1)
	reg.SetLevel(slog.LevelDebug)

	logger := reg.Logger("mylogger")
	logger.Info("first")
	logger.Info("second")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	re := regexp.MustCompile(`\((\d+\.\d{2})s\)`)
	for _, line := range lines {
		if !re.MatchString(line) {
			t.Errorf("line missing delta field: %q", line)
		}
	}
}

func TestConfigureReplacesNotStacks(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)
	reg.Configure(2)
	reg.Configure(1)
	reg.SetLevel(slog.LevelDebug)

	reg.Logger("mylogger").Info("once")

	got := strings.TrimSuffix(buf.String(), "\n")
	if strings.Count(got, "once") != 1 || strings.Contains(got, "\n") {
		t.Errorf("reconfiguring must not duplicate output: %q", buf.String())
	}
	if reg.FormatLevel() != 1 {
		t.Errorf("FormatLevel = %d, want 1", reg.FormatLevel())
	}
}

func TestAttrsAppendedToMessage(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(&buf)
	reg.Configure(1)
	reg.SetLevel(slog.LevelDebug)

	logger := reg.Logger("mylogger").With("surface", "topreek")
	logger.Info("loaded", "ncol", 80)

	got := buf.String()
	for _, want := range []string{"surface=topreek", "ncol=80"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q should contain %q", got, want)
		}
	}
}

func TestTemplatePlaceholders(t *testing.T) {
	tests := []struct {
		format   int
		contains []string
	}{
		{1, []string{"%s", "%ss"}},
		{2, []string{"%ss", "%40s()", "%4d"}},
		{3, []string{"Delta=%ss", "%40s()", "%4d"}},
	}

	for _, tt := range tests {
		reg := NewRegistry(nil)
		reg.Configure(tt.format)
		tpl := reg.Template()
		for _, want := range tt.contains {
			if !strings.Contains(tpl, want) {
				t.Errorf("format %d template %q should contain %q", tt.format, tpl, want)
			}
		}
	}
}
