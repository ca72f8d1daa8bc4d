package controller

import (
	"time"

	m "github.com/Gnarus-G/cnat/internal/model"
)

// Message types.
type tickMsg time.Time

type classNamesMsg struct {
	names []string
}

type runInfoMsg struct {
	total   int
	threads int
	dryRun  bool
}

type fileResultMsg struct {
	path   string
	status string
	edits  int
	diff   string
	err    string
}

type summaryMsg struct {
	summary m.Summary
}

// List item types.
type fileItem struct {
	path   string
	status string
	edits  int
	diff   string
	err    string
}

func (f fileItem) FilterValue() string {
	return f.path
}

type classItem string

func (c classItem) FilterValue() string {
	return string(c)
}
