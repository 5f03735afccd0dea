package headergen

import (
	"errors"
	"testing"

	"github.com/retroenv/rdlheader/internal/language"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    map[string]string
		want    string
		errText string
	}{
		{name: "default", opts: nil, want: language.Verilog},
		{name: "c", opts: map[string]string{"languages": "c"}, want: language.C},
		{name: "cpp", opts: map[string]string{"languages": "cpp"}, want: language.Cpp},
		{
			name:    "unknown option",
			opts:    map[string]string{"languages": "c", "foo": "bar"},
			errText: "got an unexpected option 'foo'",
		},
		{
			name:    "unknown language",
			opts:    map[string]string{"languages": "vhdl"},
			errText: "unsupported value 'vhdl' for option 'languages'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseOptions(tt.opts)
			if tt.errText != "" {
				var cfgErr *ConfigError
				assert.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, tt.errText, err.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Language)
		})
	}
}

func TestNewInvalidLanguage(t *testing.T) {
	_, err := New(Config{Language: "pascal"})
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "pascal", cfgErr.Value)
}

func TestDialect(t *testing.T) {
	verilog := newDialect(language.Verilog)
	assert.Equal(t, "`define ", verilog.define)
	assert.Equal(t, "`ifndef ", verilog.ifndef)
	assert.Equal(t, "`endif", verilog.endif)
	assert.Equal(t, "'h", verilog.hexPrefix)
	assert.Equal(t, "X``", verilog.arrayParam)

	c := newDialect(language.C)
	assert.Equal(t, "#define ", c.define)
	assert.Equal(t, "#endif", c.endif)
	assert.Equal(t, "0x", c.hexPrefix)
	assert.Equal(t, "X", c.arrayParam)
	assert.Equal(t, "", c.baseQuote)
}
