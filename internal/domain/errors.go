package domain

import (
	"fmt"
)

// ConfigurationError reports invalid run input, such as a malformed scope.
// It aborts a run before any file is touched.
type ConfigurationError struct {
	Input  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Input == "" {
		return "configuration error: " + e.Reason
	}

	return fmt.Sprintf("configuration error: %s: %q", e.Reason, e.Input)
}

// PatchInvariantViolation reports an edit whose recorded span does not line up
// with the buffer being patched. Nothing is written for the affected file.
type PatchInvariantViolation struct {
	Index    int // position of the offending edit in the edit list
	Start    int // shifted start offset
	End      int // shifted inclusive end offset
	Expected []byte
	Actual   []byte
	Reason   string
}

func (e *PatchInvariantViolation) Error() string {
	msg := fmt.Sprintf("invariant failed: edit %d at [%d, %d]: %s", e.Index, e.Start, e.End, e.Reason)
	if e.Expected != nil && e.Actual != nil {
		msg += fmt.Sprintf(" (expected %q, found %q)", e.Expected, e.Actual)
	}

	return msg
}

// RunError is returned by a run in which at least one file failed. Files that
// were transformed stay transformed.
type RunError struct {
	Failed int
	Total  int
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%d of %d files failed", e.Failed, e.Total)
}
