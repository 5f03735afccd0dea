// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/rdlheader/internal/headergen"
	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateExporter creates the header exporter for the language of the options.
// The language has to be resolved already.
func CreateExporter(opts options.Program) (*headergen.Exporter, error) {
	cfg, err := headergen.ParseOptions(opts.ExporterOptions())
	if err != nil {
		return nil, fmt.Errorf("parsing exporter options: %w", err)
	}

	exp, err := headergen.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating exporter: %w", err)
	}
	return exp, nil
}
