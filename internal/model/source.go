// Package model defines the data structures shared by the scoped rename engine.
package model

// Path represents a file system path.
type Path string

// Dialect selects the grammar a source file is parsed with.
type Dialect string

const (
	// DialectJavaScript covers .js and .jsx files; JSX is always enabled.
	DialectJavaScript Dialect = "javascript"
	// DialectTypeScript covers .ts files.
	DialectTypeScript Dialect = "typescript"
	// DialectTSX covers .tsx files.
	DialectTSX Dialect = "tsx"
)

// Source is a candidate file yielded by the directory walker.
type Source struct {
	Path    Path
	Dialect Dialect
}
