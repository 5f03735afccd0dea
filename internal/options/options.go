// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input register map description (.yaml/.json, - for stdin)"`
	Output string `flag:"o" usage:"output header file, extension is replaced (- for stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.yaml)"`
}

// Flags contains behavior options.
type Flags struct {
	Language string `flag:"l" usage:"output language: verilog, c, cpp (default: detect from output)"`
	Check    bool   `flag:"check" usage:"check that the existing header is up to date instead of writing it"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the header generator.
type Program struct {
	Parameters
	Flags
}

// StdoutOutput is the output name that selects printing to the console.
const StdoutOutput = "-"

// ExporterOptions returns the generic exporter options for the program options.
func (p Program) ExporterOptions() map[string]string {
	return map[string]string{
		"languages": p.Language,
	}
}
