// Package fileprocessor handles input file selection and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/rdlheader/internal/language"
	"github.com/retroenv/rdlheader/internal/loader"
	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/rdlheader/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	pipe := pipeline.New(logger)
	outputPath, err := pipe.Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("processing file %s: %w", opts.Input, err)
	}

	if outputPath != "" && !opts.Check {
		logger.Info("Header generated", log.String("file", outputPath))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the header filename for a given input file.
// A register map read from stdin is printed to the console.
func GenerateOutputFilename(inputFile, lang string) string {
	if inputFile == loader.StdinInput {
		return options.StdoutOutput
	}
	if lang == "" {
		lang = language.Default
	}
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + language.Extension(lang)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := buildinfo.Version(version, commit, date)
	logger.Info("rdlheader", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
