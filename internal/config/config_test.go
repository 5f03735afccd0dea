package config

import (
	"errors"
	"testing"

	"github.com/retroenv/rdlheader/internal/headergen"
	"github.com/retroenv/rdlheader/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateExporter(t *testing.T) {
	exp, err := CreateExporter(options.Program{Flags: options.Flags{Language: "cpp"}})
	assert.NoError(t, err)
	assert.Equal(t, "regs.h", exp.OutputPath("regs.yaml"))

	_, err = CreateExporter(options.Program{Flags: options.Flags{Language: "vhdl"}})
	var cfgErr *headergen.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
