package adapter

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "github.com/Gnarus-G/cnat/internal/model"
)

const maxSnippetLen = 24

var dialectLanguages = map[m.Dialect]*sitter.Language{
	m.DialectJavaScript: javascript.GetLanguage(),
	m.DialectTypeScript: typescript.GetLanguage(),
	m.DialectTSX:        tsx.GetLanguage(),
}

// SyntaxAdapter turns source text into a syntax tree whose nodes carry byte
// offsets into the original text.
type SyntaxAdapter interface {
	// Parse builds a tree for content using the grammar of source.Dialect.
	// The caller owns the returned tree and must Close it.
	Parse(ctx context.Context, source m.Source, content []byte) (*sitter.Tree, error)
}

// Diagnostic locates a syntax error, 1-based.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// ParseError reports a source file that is not valid for its dialect.
type ParseError struct {
	Path        m.Path
	Diagnostics []Diagnostic
}

func (e *ParseError) Error() string {
	if len(e.Diagnostics) == 0 {
		return fmt.Sprintf("failed to parse %s", e.Path)
	}

	msg := fmt.Sprintf("failed to parse %s: %s", e.Path, e.Diagnostics[0])
	if extra := len(e.Diagnostics) - 1; extra > 0 {
		msg += fmt.Sprintf(" (and %d more)", extra)
	}

	return msg
}

// TreeSitterAdapter provides a SyntaxAdapter backed by tree-sitter grammars.
type TreeSitterAdapter struct{}

// NewTreeSitterAdapter constructs a TreeSitterAdapter.
func NewTreeSitterAdapter() *TreeSitterAdapter {
	return &TreeSitterAdapter{}
}

// Parse uses a fresh parser per call, so concurrent calls are safe.
func (a *TreeSitterAdapter) Parse(ctx context.Context, source m.Source, content []byte) (*sitter.Tree, error) {
	lang, ok := dialectLanguages[source.Dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q for %s", source.Dialect, source.Path)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source.Path, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		var diagnostics []Diagnostic
		collectDiagnostics(root, content, &diagnostics)
		tree.Close()

		return nil, &ParseError{Path: source.Path, Diagnostics: diagnostics}
	}

	return tree, nil
}

func collectDiagnostics(n *sitter.Node, src []byte, out *[]Diagnostic) {
	if n == nil {
		return
	}

	switch {
	case n.IsMissing():
		*out = append(*out, newDiagnostic(n, "missing "+n.Type()))

		return
	case n.Type() == "ERROR":
		*out = append(*out, newDiagnostic(n, fmt.Sprintf("unexpected %q", snippet(n.Content(src)))))

		return
	}

	if !n.HasError() {
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		collectDiagnostics(n.Child(i), src, out)
	}
}

func newDiagnostic(n *sitter.Node, msg string) Diagnostic {
	point := n.StartPoint()

	return Diagnostic{
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
		Message: msg,
	}
}

func snippet(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}

	if len(text) > maxSnippetLen {
		text = text[:maxSnippetLen] + "…"
	}

	return text
}
