// Package diff renders unified diffs of rewritten files.
package diff

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

// Diff returns a unified diff of old and new, or nil when they are equal.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(new)),
		FromFile: oldName,
		ToFile:   newName,
		Context:  contextLines,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}
