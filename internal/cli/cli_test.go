package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "soc.yaml"},
			want: options.Program{Parameters: options.Parameters{Input: "soc.yaml"}},
		},
		{
			name: "language is normalized",
			args: []string{"prog", "-l", "C++", "soc.yaml"},
			want: options.Program{
				Parameters: options.Parameters{Input: "soc.yaml"},
				Flags:      options.Flags{Language: "cpp"},
			},
		},
		{
			name: "output and check",
			args: []string{"prog", "-o", "out/soc.h", "-check", "soc.yaml"},
			want: options.Program{
				Parameters: options.Parameters{Input: "soc.yaml", Output: "out/soc.h"},
				Flags:      options.Flags{Check: true},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "soc.yaml", "-q"},
			want: options.Program{
				Parameters: options.Parameters{Input: "soc.yaml"},
				Flags:      options.Flags{Quiet: true},
			},
		},
		{
			name: "batch",
			args: []string{"prog", "-batch", "*.yaml", "-debug"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.yaml"},
				Flags:      options.Flags{Debug: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
		errText    string
	}{
		{
			name:       "missing input",
			args:       []string{"prog"},
			usageError: true,
		},
		{
			name:       "flag after input",
			args:       []string{"prog", "soc.yaml", "-q"},
			usageError: true,
			errText:    "Potential argument -q found after register map file",
		},
		{
			name:    "unsupported language",
			args:    []string{"prog", "-l", "vhdl", "soc.yaml"},
			errText: "unsupported language 'vhdl'",
		},
		{
			name:    "check on console output",
			args:    []string{"prog", "-o", "-", "-check", "soc.yaml"},
			errText: "the -check option requires an output file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
			if tt.errText != "" {
				assert.ErrorContains(t, err, tt.errText)
			}
		})
	}
}
