// Package adapter contains the infrastructure adapters of the cnat CLI:
// filesystem access, source parsing, stylesheet extraction and configuration.
package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "github.com/Gnarus-G/cnat/internal/model"
)

const gitignoreFile = ".gitignore"

// DefaultExtensions is the extension allow-list used when none is configured.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// DefaultExcludeDirs lists directory names that are never descended into.
var DefaultExcludeDirs = []string{"node_modules"}

// extToDialect maps every extension the syntax adapter can parse.
var extToDialect = map[string]m.Dialect{
	".js":  m.DialectJavaScript,
	".jsx": m.DialectJavaScript,
	".mjs": m.DialectJavaScript,
	".cjs": m.DialectJavaScript,
	".ts":  m.DialectTypeScript,
	".mts": m.DialectTypeScript,
	".cts": m.DialectTypeScript,
	".tsx": m.DialectTSX,
}

// WalkOptions restricts which files a walk yields.
type WalkOptions struct {
	// Extensions is the allow-list of file extensions, with the leading dot.
	Extensions []string
	// ExcludeDirs holds directory names skipped wherever they appear.
	ExcludeDirs []string
}

func (o WalkOptions) withDefaults() WalkOptions {
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}

	if o.ExcludeDirs == nil {
		o.ExcludeDirs = DefaultExcludeDirs
	}

	return o
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when processing user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Sources collects the candidate files under the provided roots. A root can
	// be a directory, walked recursively, or a single file.
	Sources(roots []m.Path, opts WalkOptions) ([]m.Source, error)

	// Walk traverses root, skipping hidden entries, excluded directories and
	// anything matched by a .gitignore file. fn is only called for files.
	Walk(root m.Path, opts WalkOptions, fn SourceWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// keep permissions when rewriting a file.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// SourceWalkFunc is called for every file that survives the ignore rules.
type SourceWalkFunc func(path string, entry fs.DirEntry) error

// LocalSourceFSAdapter is the os backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Sources walks every root and returns the supported files, de-duplicated
// across roots, in walk order.
func (a *LocalSourceFSAdapter) Sources(roots []m.Path, opts WalkOptions) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	opts = opts.withDefaults()
	allowed := extensionSet(opts.Extensions)
	seen := make(map[string]struct{})

	var sources []m.Source

	add := func(path string) error {
		dialect, ok := dialectFor(path, allowed)
		if !ok {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if _, exists := seen[abs]; exists {
			return nil
		}

		seen[abs] = struct{}{}
		sources = append(sources, m.Source{Path: m.Path(path), Dialect: dialect})

		return nil
	}

	for _, root := range roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), opts, func(path string, _ fs.DirEntry) error {
			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

type ignoreLayer struct {
	dir     string
	matcher *ignore.GitIgnore
}

// Walk iterates over the files under root in lexical order.
func (a *LocalSourceFSAdapter) Walk(root m.Path, opts WalkOptions, fn SourceWalkFunc) error {
	rootStr := string(root)
	excluded := make(map[string]struct{}, len(opts.ExcludeDirs))

	for _, dir := range opts.ExcludeDirs {
		excluded[dir] = struct{}{}
	}

	var layers []ignoreLayer

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootStr {
				return err
			}

			// Unreadable entries are skipped, the rest of the tree is still walked.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		layers = enclosingLayers(layers, path)

		if path != rootStr && skipEntry(path, d, excluded, layers) {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			if gi := loadGitignore(path); gi != nil {
				layers = append(layers, ignoreLayer{dir: path, matcher: gi})
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(path, d)
	})
}

func skipEntry(path string, d fs.DirEntry, excluded map[string]struct{}, layers []ignoreLayer) bool {
	name := d.Name()
	if strings.HasPrefix(name, ".") {
		return true
	}

	if d.IsDir() {
		if _, ok := excluded[name]; ok {
			return true
		}
	}

	for _, layer := range layers {
		rel, err := filepath.Rel(layer.dir, path)
		if err != nil {
			continue
		}

		rel = filepath.ToSlash(rel)
		if layer.matcher.MatchesPath(rel) {
			return true
		}

		if d.IsDir() && layer.matcher.MatchesPath(rel+"/") {
			return true
		}
	}

	return false
}

// enclosingLayers drops the ignore layers of directories the walk has left.
func enclosingLayers(layers []ignoreLayer, path string) []ignoreLayer {
	for len(layers) > 0 {
		if within(path, layers[len(layers)-1].dir) {
			break
		}

		layers = layers[:len(layers)-1]
	}

	return layers
}

func within(path, dir string) bool {
	if dir == "." {
		return !filepath.IsAbs(path)
	}

	if path == dir {
		return true
	}

	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}

	return strings.HasPrefix(path, dir)
}

func loadGitignore(dir string) *ignore.GitIgnore {
	path := filepath.Join(dir, gitignoreFile)

	if _, err := os.Stat(path); err != nil {
		return nil
	}

	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}

	return gi
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// DetectDialect returns the dialect for a file path, or false when the
// extension cannot be parsed.
func DetectDialect(path string) (m.Dialect, bool) {
	dialect, ok := extToDialect[strings.ToLower(filepath.Ext(path))]

	return dialect, ok
}

func dialectFor(path string, allowed map[string]struct{}) (m.Dialect, bool) {
	if _, ok := allowed[strings.ToLower(filepath.Ext(path))]; !ok {
		return "", false
	}

	return DetectDialect(path)
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))

	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		set[ext] = struct{}{}
	}

	return set
}

func normalizeRootPath(root string) (string, error) {
	rootStr := strings.TrimSuffix(root, "/...")

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Clean(rootStr), nil
}
