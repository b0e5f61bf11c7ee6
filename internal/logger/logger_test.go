package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// resetLogger resets the logger to default state for test isolation
func resetLogger() {
	Init(Options{})
}

func TestOptions_Level(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want slog.Level
	}{
		{"default", Options{}, slog.LevelInfo},
		{"debug", Options{Debug: true}, slog.LevelDebug},
		{"quiet", Options{Quiet: true}, slog.LevelError},
		{"quiet wins over debug", Options{Debug: true, Quiet: true}, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit_DefaultLevel_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("document written")
	if !strings.Contains(buf.String(), "document written") {
		t.Error("Info message should be logged at default level")
	}

	buf.Reset()
	Debug("pipeline detail")
	if strings.Contains(buf.String(), "pipeline detail") {
		t.Error("Debug message should not be logged at default level")
	}
}

func TestInit_DebugLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	Debug("processing document", "input_size", 42)
	out := buf.String()
	if !strings.Contains(out, "processing document") || !strings.Contains(out, "input_size=42") {
		t.Errorf("unexpected debug output %q", out)
	}
}

func TestInit_QuietLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Quiet: true, Output: buf})
	defer resetLogger()

	Info("info")
	Warn("warn")
	if buf.Len() != 0 {
		t.Errorf("expected nothing below error, got %q", buf.String())
	}

	Error("failed to write")
	if !strings.Contains(buf.String(), "failed to write") {
		t.Error("Error message should be logged when Quiet=true")
	}
}

func TestInit_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("cleaned", "path", "index.html")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "cleaned" || entry["path"] != "index.html" || entry["level"] != "INFO" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestInit_CustomLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	custom := slog.New(slog.NewTextHandler(buf, nil))
	Init(Options{Logger: custom, Debug: true})
	defer resetLogger()

	if Get() != custom {
		t.Fatal("expected custom logger to be installed")
	}
	Info("via custom")
	if !strings.Contains(buf.String(), "via custom") {
		t.Error("expected message in custom logger output")
	}
}

func TestSetLogger_IgnoresNil(t *testing.T) {
	defer resetLogger()
	before := Get()
	SetLogger(nil)
	if Get() != before {
		t.Error("SetLogger(nil) should keep the current logger")
	}
}

func TestWith_ReturnsLoggerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	With("stage", "loader").Warn("marker not found")

	out := buf.String()
	if !strings.Contains(out, "marker not found") || !strings.Contains(out, "stage=loader") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestContextHelpers(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	ctx := context.Background()
	DebugContext(ctx, "debug with context")
	InfoContext(ctx, "info with context")
	ErrorContext(ctx, "error with context")

	out := buf.String()
	for _, want := range []string{"debug with context", "info with context", "error with context"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
