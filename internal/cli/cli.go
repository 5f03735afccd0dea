// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/rdlheader/internal/language"
	"github.com/retroenv/rdlheader/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: rdlheader [options] <register map file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after register map file, please pass the file to process as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Language == "" {
		return nil
	}

	opts.Language = language.Normalize(opts.Language)
	if err := language.Validate(opts.Language); err != nil {
		return fmt.Errorf("invalid language option: %w", err)
	}
	return nil
}

// validateOptionCombinations checks for option combinations that can not work together
func validateOptionCombinations(opts options.Program) error {
	if opts.Output == options.StdoutOutput {
		if opts.Check {
			return errors.New("the -check option requires an output file")
		}
		if opts.Batch != "" {
			return errors.New("the -batch option can not print to the console")
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input register map description (.yaml/.json), - reads from stdin")
	flags.StringVar(&opts.Output, "o", "", "name of the output header file, the extension is replaced by .svh or .h, - prints to the console")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically name the header files, for example *.yaml")
	flags.StringVar(&opts.Language, "l", "", "output language of the generated header (verilog/c/cpp), detected from the output file if not given")
	flags.BoolVar(&opts.Check, "check", false, "do not write the header but fail if the existing one is not up to date")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
