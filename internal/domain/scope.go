package domain

import (
	"strings"

	m "github.com/Gnarus-G/cnat/internal/model"
)

var variantTokens = map[string]m.ScopeVariant{
	"att":  m.AttributeName,
	"prop": m.ObjectPropertyKey,
	"fn":   m.CallCallee,
}

// ParseScope parses one `variant:value,value,...` group, for example
// `att:className,*ClassName` or `fn:cva`.
func ParseScope(s string) (m.ScopeRule, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return m.ScopeRule{}, &ConfigurationError{
			Input:  s,
			Reason: "should be two parts, a variant and values: <variant>:<...values>",
		}
	}

	variant, ok := variantTokens[parts[0]]
	if !ok {
		return m.ScopeRule{}, &ConfigurationError{Input: parts[0], Reason: "unrecognized variant"}
	}

	var values []m.ScopeValue

	for _, fragment := range strings.Split(parts[1], ",") {
		value, ok, err := parseScopeValue(fragment)
		if err != nil {
			return m.ScopeRule{}, err
		}

		if ok {
			values = append(values, value)
		}
	}

	return newScopeRule(variant, values, s)
}

// ParseScopes parses whitespace separated scope groups from every argument
// into one configuration.
func ParseScopes(groups ...string) (m.ScopeConfiguration, error) {
	var config m.ScopeConfiguration

	for _, group := range groups {
		for _, field := range strings.Fields(group) {
			rule, err := ParseScope(field)
			if err != nil {
				return nil, err
			}

			config = append(config, rule)
		}
	}

	if len(config) == 0 {
		return nil, &ConfigurationError{Reason: "at least one scope must be provided"}
	}

	return config, nil
}

func newScopeRule(variant m.ScopeVariant, values []m.ScopeValue, input string) (m.ScopeRule, error) {
	if len(values) == 0 {
		return m.ScopeRule{}, &ConfigurationError{Input: input, Reason: "at least one value must be provided"}
	}

	return m.ScopeRule{Variant: variant, Values: values}, nil
}

// parseScopeValue classifies a pattern by its edge wildcards. ok is false for
// fragments without an identifier, which are dropped.
func parseScopeValue(fragment string) (m.ScopeValue, bool, error) {
	pattern := strings.TrimLeft(fragment, "*")
	leading := len(pattern) != len(fragment)

	trimmed := strings.TrimRight(pattern, "*")
	trailing := len(trimmed) != len(pattern)
	pattern = trimmed

	if pattern == "" {
		return m.ScopeValue{}, false, nil
	}

	if strings.Contains(pattern, "*") {
		return m.ScopeValue{}, false, &ConfigurationError{
			Input:  fragment,
			Reason: "wildcards are only supported at the start or end of a value",
		}
	}

	kind := m.Exact

	switch {
	case leading && trailing:
		kind = m.Contains
	case leading:
		kind = m.EndsWith
	case trailing:
		kind = m.StartsWith
	}

	return m.ScopeValue{Kind: kind, Pattern: pattern}, true, nil
}

// ScopeMatcher answers whether a syntactic site opens a rewrite scope.
type ScopeMatcher struct {
	rules m.ScopeConfiguration
}

// NewScopeMatcher wraps a parsed configuration.
func NewScopeMatcher(rules m.ScopeConfiguration) ScopeMatcher {
	return ScopeMatcher{rules: rules}
}

// Matches reports whether any rule of the given variant matches identifier.
func (s ScopeMatcher) Matches(identifier string, variant m.ScopeVariant) bool {
	for _, rule := range s.rules {
		if rule.Variant != variant {
			continue
		}

		for _, value := range rule.Values {
			if valueMatches(value, identifier) {
				return true
			}
		}
	}

	return false
}

func valueMatches(value m.ScopeValue, identifier string) bool {
	switch value.Kind {
	case m.Exact:
		return identifier == value.Pattern
	case m.Contains:
		return strings.Contains(identifier, value.Pattern)
	case m.StartsWith:
		return strings.HasPrefix(identifier, value.Pattern)
	case m.EndsWith:
		return strings.HasSuffix(identifier, value.Pattern)
	default:
		return false
	}
}
