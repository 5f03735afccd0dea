// Package pipeline orchestrates the header generation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/rdlheader/internal/config"
	"github.com/retroenv/rdlheader/internal/detector"
	"github.com/retroenv/rdlheader/internal/headergen"
	"github.com/retroenv/rdlheader/internal/loader"
	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/rdlheader/internal/regmap"
	"github.com/retroenv/rdlheader/internal/verification"
	"github.com/retroenv/rdlheader/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// consoleHeaderName is used to name the include guard of a header printed to
// the console for a register map read from stdin.
const consoleHeaderName = "regmap"

// Pipeline orchestrates the complete header generation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	console  io.Writer // destination for console output and check diffs
}

// New creates a new header generation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		console:  os.Stdout,
	}
}

// Execute runs the complete pipeline for the input file of the options and
// returns the path of the written or checked header file.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (string, error) {
	root, err := p.loader.Load(opts)
	if err != nil {
		return "", fmt.Errorf("loading register map: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return p.ExecuteWithTree(ctx, root, opts)
}

// ExecuteWithTree runs the pipeline with a pre-loaded register tree.
// This is useful for testing and programmatic usage where the tree is already in memory.
func (p *Pipeline) ExecuteWithTree(ctx context.Context, root *regmap.Node, opts options.Program) (string, error) {
	opts.Language = p.detector.Detect(opts)

	exp, err := config.CreateExporter(opts)
	if err != nil {
		return "", err
	}

	p.printInfo(opts, root)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case opts.Output == options.StdoutOutput:
		return "", p.printHeader(exp, root, opts.Input)

	case opts.Check:
		return p.checkHeader(exp, root, opts.Output)

	default:
		outputPath := exp.OutputPath(opts.Output)
		if err := exp.Export(root, opts.Output); err != nil {
			return "", fmt.Errorf("exporting header: %w", err)
		}
		p.logger.Debug("Header written", log.String("file", outputPath))
		return outputPath, nil
	}
}

// printHeader writes the header to the console, the guard is derived from the input name.
func (p *Pipeline) printHeader(exp *headergen.Exporter, root *regmap.Node, input string) error {
	if input == loader.StdinInput {
		input = consoleHeaderName
	}
	lines, err := exp.Generate(root, filepath.Base(exp.OutputPath(input)))
	if err != nil {
		return fmt.Errorf("generating header: %w", err)
	}
	if err := writer.Write(p.console, lines); err != nil {
		return fmt.Errorf("printing header: %w", err)
	}
	_, err = fmt.Fprintln(p.console)
	return err
}

// checkHeader compares the generated header with the existing file.
func (p *Pipeline) checkHeader(exp *headergen.Exporter, root *regmap.Node, output string) (string, error) {
	outputPath := exp.OutputPath(output)
	lines, err := exp.Generate(root, filepath.Base(outputPath))
	if err != nil {
		return "", fmt.Errorf("generating header: %w", err)
	}

	err = verification.Check(outputPath, lines)
	var mismatch *verification.MismatchError
	if errors.As(err, &mismatch) {
		_, _ = fmt.Fprint(p.console, mismatch.Diff)
	}
	if err != nil {
		return "", fmt.Errorf("checking header: %w", err)
	}

	p.logger.Info("Header is up to date", log.String("file", outputPath))
	return outputPath, nil
}

// printInfo prints information about the register map being processed.
func (p *Pipeline) printInfo(opts options.Program, root *regmap.Node) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing register map",
		log.String("file", opts.Input),
		log.String("language", opts.Language),
		log.Int("registers", root.Count(regmap.KindReg)),
		log.Int("fields", root.Count(regmap.KindField)),
	)
}
