// Package config provides configuration for the chess rules tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Sub-configurations
	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// Workers is the number of goroutines used for batch replay.
	Workers int

	// HeaderOverrides are tag values applied to every PGN export.
	HeaderOverrides map[string]string

	// AllowNestedComments lets the PGN reader nest { } comments.
	AllowNestedComments bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:       1,
		Output:          NewOutputConfig(),
		Duplicate:       NewDuplicateConfig(),
		Workers:         runtime.NumCPU(),
		HeaderOverrides: make(map[string]string),
		OutputFile:      os.Stdout,
		LogFile:         os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes to the log when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
