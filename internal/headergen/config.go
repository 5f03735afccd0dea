package headergen

import (
	"sort"

	"github.com/retroenv/rdlheader/internal/language"
)

// OptionLanguages is the option key that selects the output language.
const OptionLanguages = "languages"

// Config of the header exporter.
type Config struct {
	Language string // one of verilog, c or cpp
}

// ParseOptions converts generic key/value options to a config.
// The only recognized key is "languages", a missing key selects Verilog.
func ParseOptions(opts map[string]string) (Config, error) {
	cfg := Config{Language: language.Default}

	keys := make([]string, 0, len(opts))
	for key := range opts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key != OptionLanguages {
			return Config{}, &ConfigError{Option: key}
		}
		cfg.Language = opts[key]
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := language.Validate(c.Language); err != nil {
		return &ConfigError{Option: OptionLanguages, Value: c.Language}
	}
	return nil
}

// dialect contains the literal conventions of an output language.
type dialect struct {
	name       string
	define     string // macro definition directive including trailing space
	ifndef     string
	endif      string
	hexPrefix  string
	arrayParam string // array index parameter used inside macro values
	baseQuote  string // prefix needed to reference another macro
}

func newDialect(lang string) dialect {
	prefix := "#"
	d := dialect{
		name:       lang,
		hexPrefix:  "0x",
		arrayParam: "X",
	}
	if lang == language.Verilog {
		prefix = "`"
		d.hexPrefix = "'h"
		d.arrayParam = "X``"
		d.baseQuote = "`"
	}

	d.define = prefix + "define "
	d.ifndef = prefix + "ifndef "
	d.endif = prefix + "endif"
	return d
}
