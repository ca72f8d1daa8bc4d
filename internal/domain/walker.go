package domain

import (
	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/Gnarus-G/cnat/internal/model"
)

// Node kinds of the JavaScript family of tree-sitter grammars.
const (
	nodeJSXAttribute       = "jsx_attribute"
	nodeCallExpression     = "call_expression"
	nodePair               = "pair"
	nodeString             = "string"
	nodeIdentifier         = "identifier"
	nodePropertyIdentifier = "property_identifier"
)

// CollectEdits walks the tree in depth-first, left-to-right order and records
// one edit for every string literal that sits inside a matched scope and
// contains at least one known class. Edits are returned in ascending order.
func CollectEdits(root *sitter.Node, src []byte, matcher ScopeMatcher, rewriter ClassRewriter) []m.Edit {
	w := &walker{src: src, matcher: matcher, rewriter: rewriter}
	w.visit(root, false)

	return w.edits
}

type walker struct {
	src      []byte
	matcher  ScopeMatcher
	rewriter ClassRewriter
	edits    []m.Edit
}

// visit carries the scope state down the call stack. A scoped child never
// changes the state seen by its siblings.
func (w *walker) visit(n *sitter.Node, inScope bool) {
	if n == nil {
		return
	}

	switch n.Type() {
	case nodeString:
		if inScope {
			w.rewriteLiteral(n)
		}

		return
	case nodeJSXAttribute:
		w.visitAttribute(n, inScope)

		return
	case nodeCallExpression:
		scoped := w.identifierMatches(n.ChildByFieldName("function"), nodeIdentifier, m.CallCallee)
		w.visitFieldScoped(n, "arguments", scoped, inScope)

		return
	case nodePair:
		scoped := w.identifierMatches(n.ChildByFieldName("key"), nodePropertyIdentifier, m.ObjectPropertyKey)
		w.visitFieldScoped(n, "value", scoped, inScope)

		return
	}

	w.visitChildren(n, inScope)
}

func (w *walker) visitChildren(n *sitter.Node, inScope bool) {
	for i := 0; i < int(n.ChildCount()); i++ {
		w.visit(n.Child(i), inScope)
	}
}

// visitAttribute scopes everything after the attribute name. Namespaced names
// such as xlink:href never match.
func (w *walker) visitAttribute(n *sitter.Node, inScope bool) {
	count := int(n.ChildCount())
	if count == 0 {
		return
	}

	name := n.Child(0)
	scoped := inScope || w.identifierMatches(name, nodePropertyIdentifier, m.AttributeName)

	for i := 1; i < count; i++ {
		w.visit(n.Child(i), scoped)
	}
}

// visitFieldScoped visits the child stored under field in scope when scoped is
// set, every other child with the enclosing state.
func (w *walker) visitFieldScoped(n *sitter.Node, field string, scoped, inScope bool) {
	target := n.ChildByFieldName(field)

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if scoped && sameNode(child, target) {
			w.visit(child, true)

			continue
		}

		w.visit(child, inScope)
	}
}

func (w *walker) identifierMatches(n *sitter.Node, kind string, variant m.ScopeVariant) bool {
	if n == nil || n.Type() != kind {
		return false
	}

	return w.matcher.Matches(n.Content(w.src), variant)
}

// rewriteLiteral records an edit over the literal's content, quotes excluded.
func (w *walker) rewriteLiteral(n *sitter.Node) {
	start, end := int(n.StartByte()), int(n.EndByte())
	if end-start < 2 || end > len(w.src) {
		return
	}

	quote := w.src[start]
	if (quote != '"' && quote != '\'') || w.src[end-1] != quote {
		return
	}

	raw := w.src[start+1 : end-1]

	rewritten, changed := w.rewriter.Rewrite(string(raw))
	if !changed {
		return
	}

	w.edits = append(w.edits, m.Edit{
		Start: start + 1,
		End:   end - 2,
		Old:   append([]byte(nil), raw...),
		New:   []byte(rewritten),
	})
}

// sameNode compares two nodes by position, Child returns fresh wrappers.
func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}

	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
