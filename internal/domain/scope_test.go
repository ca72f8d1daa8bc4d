package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Gnarus-G/cnat/internal/model"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  m.ScopeRule
	}{
		{
			name:  "attribute names",
			input: "att:class,className",
			want: m.ScopeRule{Variant: m.AttributeName, Values: []m.ScopeValue{
				{Kind: m.Exact, Pattern: "class"},
				{Kind: m.Exact, Pattern: "className"},
			}},
		},
		{
			name:  "wildcards",
			input: "prop:*foo,foo*,*foo*,foo",
			want: m.ScopeRule{Variant: m.ObjectPropertyKey, Values: []m.ScopeValue{
				{Kind: m.EndsWith, Pattern: "foo"},
				{Kind: m.StartsWith, Pattern: "foo"},
				{Kind: m.Contains, Pattern: "foo"},
				{Kind: m.Exact, Pattern: "foo"},
			}},
		},
		{
			name:  "empty fragments are dropped",
			input: "fn:,cva,,",
			want: m.ScopeRule{Variant: m.CallCallee, Values: []m.ScopeValue{
				{Kind: m.Exact, Pattern: "cva"},
			}},
		},
		{
			name:  "runs of stars classify like one",
			input: "att:**Class",
			want: m.ScopeRule{Variant: m.AttributeName, Values: []m.ScopeValue{
				{Kind: m.EndsWith, Pattern: "Class"},
			}},
		},
		{
			name:  "star only fragment is dropped",
			input: "fn:*,cn",
			want: m.ScopeRule{Variant: m.CallCallee, Values: []m.ScopeValue{
				{Kind: m.Exact, Pattern: "cn"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScope(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScope_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{name: "missing separator", input: "className", reason: "should be two parts"},
		{name: "too many parts", input: "att:class:name", reason: "should be two parts"},
		{name: "unknown variant", input: "tag:div", reason: "unrecognized variant"},
		{name: "no values", input: "att:", reason: "at least one value must be provided"},
		{name: "only separators", input: "att:,,", reason: "at least one value must be provided"},
		{name: "only stars", input: "att:*", reason: "at least one value must be provided"},
		{name: "inner wildcard", input: "att:fo*o", reason: "wildcards are only supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScope(tt.input)
			require.Error(t, err)

			var configErr *ConfigurationError
			require.True(t, errors.As(err, &configErr), "expected ConfigurationError, got %T", err)
			assert.Contains(t, configErr.Error(), tt.reason)
		})
	}
}

func TestParseScopes(t *testing.T) {
	t.Run("splits groups on whitespace", func(t *testing.T) {
		config, err := ParseScopes("att:class,className fn:createElement", "prop:classes")
		require.NoError(t, err)
		require.Len(t, config, 3)

		assert.Equal(t, m.AttributeName, config[0].Variant)
		assert.Equal(t, m.CallCallee, config[1].Variant)
		assert.Equal(t, m.ObjectPropertyKey, config[2].Variant)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := ParseScopes("  ", "")

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})

	t.Run("first invalid group fails the whole configuration", func(t *testing.T) {
		_, err := ParseScopes("att:className oops")

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "oops", configErr.Input)
	})
}

func TestScopeMatcher_Matches(t *testing.T) {
	config, err := ParseScopes("att:className,*ClassName prop:*class* fn:cva,cn*")
	require.NoError(t, err)

	matcher := NewScopeMatcher(config)

	tests := []struct {
		identifier string
		variant    m.ScopeVariant
		want       bool
	}{
		{"className", m.AttributeName, true},
		{"wrapperClassName", m.AttributeName, true},
		{"classNameWrapper", m.AttributeName, false},
		{"className", m.CallCallee, false},
		{"className", m.ObjectPropertyKey, true},
		{"headerclasses", m.ObjectPropertyKey, true},
		{"style", m.ObjectPropertyKey, false},
		{"cva", m.CallCallee, true},
		{"cvax", m.CallCallee, false},
		{"cnMerge", m.CallCallee, true},
		{"cva", m.AttributeName, false},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String()+":"+tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Matches(tt.identifier, tt.variant))
		})
	}
}

func TestScopeMatcher_VariantIsolation(t *testing.T) {
	variants := []m.ScopeVariant{m.AttributeName, m.ObjectPropertyKey, m.CallCallee}

	for _, variant := range variants {
		rule, err := ParseScope(variant.String() + ":alpha,beta")
		require.NoError(t, err)

		matcher := NewScopeMatcher(m.ScopeConfiguration{rule})

		for _, other := range variants {
			for _, identifier := range []string{"alpha", "beta"} {
				assert.Equal(t, other == variant, matcher.Matches(identifier, other),
					"rule %s, identifier %s, variant %s", variant, identifier, other)
			}
		}
	}
}
