package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const testDescription = `
top:
  - kind: addrmap
    name: soc
    children:
      - {kind: addrmap, name: uart, offset: 0x1000, children: [{kind: reg, name: data}]}
      - {kind: mem, name: sram, offset: 0x2000}
`

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input string
		lang  string
		want  string
	}{
		{input: "soc.yaml", lang: "c", want: "soc.h"},
		{input: "maps/soc.json", lang: "cpp", want: "maps/soc.h"},
		{input: "soc.yaml", lang: "verilog", want: "soc.svh"},
		{input: "soc", lang: "", want: "soc.svh"},
		{input: "-", lang: "c", want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateOutputFilename(tt.input, tt.lang))
		})
	}
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yaml", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(testDescription), 0o600))
	}

	opts := &options.Program{Parameters: options.Parameters{Input: "single.yaml"}}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.yaml"}, files)

	opts = &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.yaml")}}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")}, files)

	opts = &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.json")}}
	_, err = GetFilesToProcess(opts)
	assert.ErrorContains(t, err, "no files match batch pattern")
}

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "soc.yaml")
	assert.NoError(t, os.WriteFile(input, []byte(testDescription), 0o600))

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: GenerateOutputFilename(input, "c")},
		Flags:      options.Flags{Language: "c", Quiet: true},
	}
	assert.NoError(t, ProcessFile(context.Background(), logger, opts))

	data, err := os.ReadFile(filepath.Join(dir, "soc.h"))
	assert.NoError(t, err)

	expected := `#ifndef __SOC_H__
#define __SOC_H__

#define UART_BASE_ADDR 0
//register: data
#define UART_DATA UART_BASE_ADDR + 0x1000
#define SRAM_BASE_ADDR 0

#endif`
	assert.Equal(t, expected, string(data))

	opts.Input = filepath.Join(dir, "missing.yaml")
	assert.ErrorContains(t, ProcessFile(context.Background(), logger, opts), "processing file")
}
