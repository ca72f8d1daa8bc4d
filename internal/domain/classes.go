package domain

import (
	"strings"
)

// ClassSet is the set of class names a stylesheet declares.
type ClassSet map[string]struct{}

// NewClassSet builds a ClassSet from a list of names.
func NewClassSet(names []string) ClassSet {
	set := make(ClassSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

// Contains reports whether name is a known class.
func (s ClassSet) Contains(name string) bool {
	_, ok := s[name]

	return ok
}

// ClassRewriter prefixes the known class names of a whitespace separated
// class list.
type ClassRewriter struct {
	prefix string
	known  ClassSet
}

// NewClassRewriter returns a rewriter that applies prefix to classes in known.
func NewClassRewriter(prefix string, known ClassSet) ClassRewriter {
	return ClassRewriter{prefix: prefix, known: known}
}

// Rewrite splits value on spaces, prefixes every token whose part after the
// last ':' is a known class, and joins the tokens back with single spaces.
// Runs of spaces survive as empty tokens. ok is false when no token was
// rewritten.
func (r ClassRewriter) Rewrite(value string) (string, bool) {
	tokens := strings.Split(value, " ")
	changed := false

	for i, token := range tokens {
		if rewritten, ok := r.rewriteToken(token); ok {
			tokens[i] = rewritten
			changed = true
		}
	}

	if !changed {
		return value, false
	}

	return strings.Join(tokens, " "), true
}

// rewriteToken handles `hover:flex` as `hover:` + prefix + `flex`. Modifiers
// are kept verbatim.
func (r ClassRewriter) rewriteToken(token string) (string, bool) {
	idx := strings.LastIndexByte(token, ':')
	modifiers, name := token[:idx+1], token[idx+1:]

	if name == "" || !r.known.Contains(name) {
		return token, false
	}

	return modifiers + r.prefix + name, true
}
