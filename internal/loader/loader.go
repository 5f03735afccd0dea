// Package loader handles register map file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/rdlheader/internal/regmap"
)

// StdinInput is the input name that selects reading from the console.
const StdinInput = "-"

// Loader handles loading register map descriptions from disk.
type Loader struct {
	stdin io.Reader
}

// New creates a new register map loader.
func New() *Loader {
	return &Loader{
		stdin: os.Stdin,
	}
}

// Load loads and decodes the register map description of the input option
// and returns the root node of the register tree.
func (l *Loader) Load(opts options.Program) (*regmap.Node, error) {
	if opts.Input == StdinInput {
		root, err := regmap.Load(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("loading register map from stdin: %w", err)
		}
		return root, nil
	}

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	root, err := regmap.Load(file)
	if err != nil {
		return nil, fmt.Errorf("loading register map %s: %w", opts.Input, err)
	}
	return root, nil
}
