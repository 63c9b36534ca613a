// Package config loads optional flag defaults for the cutlass command
// from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the defaults file consulted in the working directory
// when no --config flag is given.
const DefaultPath = ".cutlass.yaml"

// Defaults are the file-configurable flag defaults. Explicit command-line
// flags always win over file values.
type Defaults struct {
	// Delimiter is the default input field delimiter.
	Delimiter string `yaml:"delimiter"`

	// OutputDelimiter is the default delimiter for joining output fields.
	OutputDelimiter string `yaml:"output_delimiter"`

	// Color is the default color policy for diagnostics: auto, always,
	// or never.
	Color string `yaml:"color"`
}

// Load reads defaults from path. When explicit is false a missing file is
// fine and zero Defaults come back; an explicitly requested file must
// exist. A file that exists but does not parse is an error either way.
func Load(path string, explicit bool) (Defaults, error) {
	var d Defaults
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return d, nil
		}
		return d, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return d, nil
}
