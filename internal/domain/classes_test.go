package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassRewriter_Rewrite(t *testing.T) {
	rewriter := NewClassRewriter("tw-", NewClassSet([]string{"flex", "sr-only", "bg-red-500"}))

	tests := []struct {
		name    string
		value   string
		want    string
		changed bool
	}{
		{name: "known and unknown", value: "flex sr-only custom", want: "tw-flex tw-sr-only custom", changed: true},
		{name: "only unknown", value: "custom only", want: "custom only", changed: false},
		{name: "modifier", value: "hover:flex", want: "hover:tw-flex", changed: true},
		{name: "stacked modifiers", value: "sm:hover:bg-red-500 text-white", want: "sm:hover:tw-bg-red-500 text-white", changed: true},
		{name: "runs of spaces are kept", value: "flex  custom", want: "tw-flex  custom", changed: true},
		{name: "trailing colon", value: "flex:", want: "flex:", changed: false},
		{name: "empty", value: "", want: "", changed: false},
		{name: "already prefixed", value: "tw-flex hover:tw-bg-red-500", want: "tw-flex hover:tw-bg-red-500", changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := rewriter.Rewrite(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestClassSet_Contains(t *testing.T) {
	set := NewClassSet([]string{"flex", "flex"})

	assert.True(t, set.Contains("flex"))
	assert.False(t, set.Contains("tw-flex"))
	assert.Len(t, set, 1)
}
