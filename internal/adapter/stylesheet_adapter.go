package adapter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StylesheetAdapter extracts the class names a stylesheet declares.
type StylesheetAdapter interface {
	// ClassNames returns the name of every class selector, in source order
	// and without duplicates. A name containing ':' only contributes the part
	// after the final ':'.
	ClassNames(content []byte) ([]string, error)
}

// CSSStylesheetAdapter is a StylesheetAdapter backed by the tdewolff CSS parser.
type CSSStylesheetAdapter struct{}

// NewCSSStylesheetAdapter constructs a CSSStylesheetAdapter.
func NewCSSStylesheetAdapter() *CSSStylesheetAdapter {
	return &CSSStylesheetAdapter{}
}

// ClassNames scans the token stream rather than the rule grammar, so that
// selectors inside any block at-rule (@layer, @container, @scope...) and
// nested rules are found as well. The tokens read since the last '{', '}' or
// ';' form a selector when a '{' follows them, unless they start with an
// at-keyword.
func (a *CSSStylesheetAdapter) ClassNames(content []byte) ([]string, error) {
	l := css.NewLexer(parse.NewInputBytes(content))
	seen := make(map[string]struct{})

	var names []string

	var prelude []css.Token

	for {
		tt, data := l.Next()

		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
			}

			return names, nil
		case css.CommentToken:
			continue
		case css.LeftBraceToken:
			if !isAtRulePrelude(prelude) {
				for _, name := range selectorClassNames(prelude) {
					if _, ok := seen[name]; ok {
						continue
					}

					seen[name] = struct{}{}
					names = append(names, name)
				}
			}

			prelude = prelude[:0]
		case css.RightBraceToken, css.SemicolonToken:
			prelude = prelude[:0]
		default:
			prelude = append(prelude, css.Token{TokenType: tt, Data: append([]byte(nil), data...)})
		}
	}
}

func isAtRulePrelude(tokens []css.Token) bool {
	for _, token := range tokens {
		if token.TokenType == css.WhitespaceToken {
			continue
		}

		return token.TokenType == css.AtKeywordToken
	}

	return false
}

func selectorClassNames(tokens []css.Token) []string {
	var names []string

	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].TokenType != css.DelimToken || string(tokens[i].Data) != "." {
			continue
		}

		next := tokens[i+1]
		if next.TokenType != css.IdentToken {
			continue
		}

		name := unescapeIdent(next.Data)
		if idx := strings.LastIndexByte(name, ':'); idx >= 0 {
			name = name[idx+1:]
		}

		if name != "" {
			names = append(names, name)
		}

		i++
	}

	return names
}

// unescapeIdent resolves CSS escapes: `\` followed by up to six hex digits
// (and one optional whitespace) or by any other single character.
func unescapeIdent(raw []byte) string {
	if !strings.ContainsRune(string(raw), '\\') {
		return string(raw)
	}

	var b strings.Builder

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(raw) && j-i <= 6 && isHex(raw[j]) {
			j++
		}

		if j == i+1 {
			r, size := utf8.DecodeRune(raw[j:])
			b.WriteRune(r)
			i = j + size - 1

			continue
		}

		code, err := strconv.ParseUint(string(raw[i+1:j]), 16, 32)
		if err != nil || code == 0 || code > utf8.MaxRune {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteRune(rune(code))
		}

		if j < len(raw) && isCSSWhitespace(raw[j]) {
			j++
		}

		i = j - 1
	}

	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isCSSWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
