package adapter

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Gnarus-G/cnat/internal/model"
)

func TestTreeSitterAdapter_Parse(t *testing.T) {
	tests := []struct {
		name    string
		dialect m.Dialect
		src     string
	}{
		{name: "javascript with jsx", dialect: m.DialectJavaScript, src: `const a = <div className="flex" />;`},
		{name: "typescript", dialect: m.DialectTypeScript, src: `const a: string = cn("flex");`},
		{name: "tsx", dialect: m.DialectTSX, src: `const A = (p: { x: number }) => <div className="flex" />;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewTreeSitterAdapter()

			tree, err := adapter.Parse(context.Background(), m.Source{Path: "a", Dialect: tt.dialect}, []byte(tt.src))
			require.NoError(t, err)
			defer tree.Close()

			root := tree.RootNode()
			assert.Equal(t, "program", root.Type())
			assert.Equal(t, uint32(len(tt.src)), root.EndByte())
		})
	}
}

func TestTreeSitterAdapter_Parse_SyntaxError(t *testing.T) {
	adapter := NewTreeSitterAdapter()
	src := "const a = 1;\nconst b = <div className=\"flex\"\n"

	tree, err := adapter.Parse(context.Background(), m.Source{Path: "broken.jsx", Dialect: m.DialectJavaScript}, []byte(src))
	require.Error(t, err)
	assert.Nil(t, tree)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, m.Path("broken.jsx"), parseErr.Path)
	require.NotEmpty(t, parseErr.Diagnostics)
	assert.GreaterOrEqual(t, parseErr.Diagnostics[0].Line, 2)
	assert.Contains(t, err.Error(), "failed to parse broken.jsx")
}

func TestTreeSitterAdapter_Parse_TypeScriptRejectsJSX(t *testing.T) {
	adapter := NewTreeSitterAdapter()

	_, err := adapter.Parse(context.Background(), m.Source{Path: "a.ts", Dialect: m.DialectTypeScript}, []byte(`const a = <div className="flex" />;`))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestTreeSitterAdapter_Parse_UnsupportedDialect(t *testing.T) {
	adapter := NewTreeSitterAdapter()

	_, err := adapter.Parse(context.Background(), m.Source{Path: "a.vue", Dialect: "vue"}, []byte(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Path: "a.js", Diagnostics: []Diagnostic{
		{Line: 1, Column: 5, Message: `unexpected "<"`},
		{Line: 2, Column: 1, Message: "missing }"},
	}}

	assert.Equal(t, `failed to parse a.js: 1:5: unexpected "<" (and 1 more)`, err.Error())
	assert.Equal(t, "failed to parse b.js", (&ParseError{Path: "b.js"}).Error())
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "abc", snippet("abc\ndef"))
	assert.Equal(t, strings.Repeat("a", maxSnippetLen)+"…", snippet(strings.Repeat("a", 30)))
}
