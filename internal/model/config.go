package model

// Config is the on-disk configuration of the prefix command.
type Config struct {
	Prefix      string   `yaml:"prefix"`
	Input       string   `yaml:"input"`
	Scopes      []string `yaml:"scopes"`
	Extensions  []string `yaml:"extensions"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
}
