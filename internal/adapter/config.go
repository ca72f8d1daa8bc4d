package adapter

import (
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/Gnarus-G/cnat/internal/model"
)

// DefaultScopes reproduce the scopes of a plain `cnat prefix` run.
var DefaultScopes = []string{"att:class,className", "fn:createElement"}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *m.Config {
	return &m.Config{
		Scopes:      append([]string(nil), DefaultScopes...),
		Extensions:  append([]string(nil), DefaultExtensions...),
		ExcludeDirs: append([]string(nil), DefaultExcludeDirs...),
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults. An empty
// path yields the defaults.
func LoadConfig(path string) (*m.Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}
