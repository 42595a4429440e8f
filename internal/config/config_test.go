package config

import (
	"bytes"
	"runtime"
	"testing"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if cfg.HeaderOverrides == nil || len(cfg.HeaderOverrides) != 0 {
		t.Errorf("HeaderOverrides = %v, want empty map", cfg.HeaderOverrides)
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != SAN {
		t.Errorf("Format = %v, want %v", cfg.Format, SAN)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResults {
		t.Error("KeepResults should be true by default")
	}
	if cfg.TagFormat != AllTags {
		t.Errorf("TagFormat = %v, want AllTags", cfg.TagFormat)
	}
}

// TestDuplicateConfig_Defaults verifies DuplicateConfig has sensible defaults
func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if cfg.ExactMatch {
		t.Error("ExactMatch should be false by default")
	}
	if cfg.MaxCapacity != 0 {
		t.Errorf("MaxCapacity = %d, want 0", cfg.MaxCapacity)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   OutputFormat
		wantOK bool
	}{
		{"san", SAN, true},
		{"", SAN, true},
		{"LALG", LALG, true},
		{"uci", UCI, true},
		{"epd", SAN, false},
	}
	for _, tt := range tests {
		got, ok := ParseOutputFormat(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseOutputFormat(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
		if ok && tt.in != "" {
			if back, _ := ParseOutputFormat(got.String()); back != got {
				t.Errorf("String() of %v does not parse back", got)
			}
		}
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.SetLog(&buf)

	cfg.Logf(1, "summary %d\n", 1)
	cfg.Logf(2, "detail\n")

	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log = %q, want only the level 1 line", got)
	}

	cfg.Verbosity = 0
	cfg.Logf(1, "hidden\n")
	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log = %q after verbosity 0", got)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithOutputFormat(LALG).
		WithMaxLineLength(120).
		WithJSONOutput(true).
		WithDuplicateSuppression(true).
		WithWorkers(3).
		WithWorkers(0).
		WithHeader("Event", "Club Championship").
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != LALG {
		t.Errorf("Format = %v, want LALG", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.JSONFormat {
		t.Error("JSONFormat should be true")
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.HeaderOverrides["Event"] != "Club Championship" {
		t.Errorf("HeaderOverrides = %v", cfg.HeaderOverrides)
	}
	if cfg.OutputFile != &out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
