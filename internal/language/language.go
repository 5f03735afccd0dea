// Package language defines the available header output languages.
package language

import (
	"fmt"
	"strings"
)

const (
	Verilog = "verilog"
	C       = "c"
	Cpp     = "cpp"
)

// Default is the language used when none is configured.
const Default = Verilog

// Supported lists all supported languages.
var Supported = []string{Verilog, C, Cpp}

// Normalize returns the lowercase language name, accepting a few common aliases.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "sv", "systemverilog":
		return Verilog
	case "c++", "cxx":
		return Cpp
	default:
		return name
	}
}

// Validate returns an error if the given language is not supported.
func Validate(name string) error {
	for _, lang := range Supported {
		if name == lang {
			return nil
		}
	}
	return fmt.Errorf("unsupported language '%s', valid options: %s", name, strings.Join(Supported, ", "))
}

// Extension returns the header file extension for the given language.
func Extension(name string) string {
	if name == Verilog {
		return ".svh"
	}
	return ".h"
}
