// Package detector handles output language detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/rdlheader/internal/language"
	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles output language detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new language detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the output language from options or the output file name.
// It first checks if a language is explicitly specified in options, otherwise
// attempts to detect the language from the output filename extension.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Language != "" {
		return language.Normalize(opts.Language)
	}

	lang := d.detectFromFile(opts.Output)
	d.logger.Debug("Auto-detected language",
		log.String("language", lang),
		log.String("file", opts.Output))
	return lang
}

// detectFromFile determines the language based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".svh", ".sv", ".vh", ".v":
		return language.Verilog
	case ".hpp", ".hh", ".hxx":
		return language.Cpp
	case ".h":
		return language.C
	default:
		return language.Default
	}
}
