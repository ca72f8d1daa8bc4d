package domain

import (
	"context"
	"fmt"

	"github.com/Gnarus-G/cnat/internal/adapter"
	"github.com/Gnarus-G/cnat/internal/diff"
	m "github.com/Gnarus-G/cnat/internal/model"
)

// TransformOptions carries the read-only state of a run into the per-file
// pipeline.
type TransformOptions struct {
	Matcher  ScopeMatcher
	Rewriter ClassRewriter
	DryRun   bool // compute the result without writing it
	Diff     bool // render a unified diff of the change
}

// Orchestrator runs the per-file pipeline: read, parse, collect edits, patch
// and write back.
type Orchestrator interface {
	Transform(ctx context.Context, source m.Source, opts TransformOptions) m.FileResult
}

type orchestrator struct {
	fsAdapter     adapter.SourceFSAdapter
	syntaxAdapter adapter.SyntaxAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and syntax adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, syntaxAdapter adapter.SyntaxAdapter) Orchestrator {
	return &orchestrator{
		fsAdapter:     fsAdapter,
		syntaxAdapter: syntaxAdapter,
	}
}

// Transform never returns an error; failures are reported in the result so
// one bad file never stops the batch.
func (o *orchestrator) Transform(ctx context.Context, source m.Source, opts TransformOptions) m.FileResult {
	result := m.FileResult{Source: source, DryRun: opts.DryRun}

	content, err := o.fsAdapter.ReadFile(source.Path)
	if err != nil {
		return failed(result, fmt.Errorf("failed to read %s: %w", source.Path, err))
	}

	edits, err := o.collectEdits(ctx, source, content, opts)
	if err != nil {
		return failed(result, err)
	}

	if len(edits) == 0 {
		result.Status = m.StatusUnchanged

		return result
	}

	patched, err := ApplyEdits(content, edits)
	if err != nil {
		return failed(result, fmt.Errorf("failed to patch %s: %w", source.Path, err))
	}

	if opts.Diff {
		text, err := diff.Diff("a/"+string(source.Path), content, "b/"+string(source.Path), patched)
		if err != nil {
			return failed(result, fmt.Errorf("failed to diff %s: %w", source.Path, err))
		}

		result.Diff = string(text)
	}

	if !opts.DryRun {
		if err := o.writePatchedFile(source.Path, patched); err != nil {
			return failed(result, err)
		}
	}

	result.Status = m.StatusTransformed
	result.Edits = len(edits)

	return result
}

func (o *orchestrator) collectEdits(ctx context.Context, source m.Source, content []byte, opts TransformOptions) ([]m.Edit, error) {
	tree, err := o.syntaxAdapter.Parse(ctx, source, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return CollectEdits(tree.RootNode(), content, opts.Matcher, opts.Rewriter), nil
}

// writePatchedFile keeps the permissions of the file being replaced.
func (o *orchestrator) writePatchedFile(path m.Path, content []byte) error {
	info, err := o.fsAdapter.FileInfo(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := o.fsAdapter.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func failed(result m.FileResult, err error) m.FileResult {
	result.Status = m.StatusFailed
	result.Err = err

	return result
}
