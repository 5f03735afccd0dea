package headergen

import "fmt"

// ConfigError is returned for an unknown exporter option or option value.
type ConfigError struct {
	Option string
	Value  string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("got an unexpected option '%s'", e.Option)
	}
	return fmt.Sprintf("unsupported value '%s' for option '%s'", e.Value, e.Option)
}

// TypeError is returned when the node to export is not an address map.
type TypeError struct {
	Got string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("'node' argument expects type AddrmapNode. Got '%s'", e.Got)
}
