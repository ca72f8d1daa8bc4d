// Package controller provides the output adapters that report cnat runs.
package controller

import (
	m "github.com/Gnarus-G/cnat/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePrefix StartMode = iota
	ModeClasses
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPrefixMode sets the UI to report a prefix run.
func WithPrefixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePrefix
	}
}

// WithClassesMode sets the UI to list stylesheet classes.
func WithClassesMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeClasses
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModePrefix}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for reporting runs.
// Implementations can use different output methods (simple text, TUI, etc).
// Calls are not safe for concurrent use; callers serialize them.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayClassNames(names []string)
	DisplayRunInfo(total int, threads int, dryRun bool)
	DisplayFileResult(result m.FileResult)
	DisplaySummary(summary m.Summary)
}
