package domain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Gnarus-G/cnat/internal/adapter"
	"github.com/Gnarus-G/cnat/internal/controller"
	m "github.com/Gnarus-G/cnat/internal/model"
)

// PrefixArgs holds the input of a prefix run.
type PrefixArgs struct {
	Paths       []m.Path
	Stylesheet  m.Path
	Prefix      string
	Scopes      []string // scope groups, each may hold several whitespace separated rules
	Extensions  []string
	ExcludeDirs []string
	Threads     int
	DryRun      bool
	Diff        bool
}

// ClassesArgs holds the input of a classes run.
type ClassesArgs struct {
	Stylesheet m.Path
}

// Workflow defines the runs exposed by the CLI.
type Workflow interface {
	// Prefix applies the prefix to every known class found in scope in the
	// sources under args.Paths. It returns a *RunError when any file failed.
	Prefix(ctx context.Context, args PrefixArgs) error
	// Classes reports the class names declared by a stylesheet.
	Classes(args ClassesArgs) error
}

type workflow struct {
	fsAdapter         adapter.SourceFSAdapter
	stylesheetAdapter adapter.StylesheetAdapter
	ui                controller.UI
	orchestrator      Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	stylesheetAdapter adapter.StylesheetAdapter,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		fsAdapter:         fsAdapter,
		stylesheetAdapter: stylesheetAdapter,
		ui:                ui,
		orchestrator:      orchestrator,
	}
}

func (w *workflow) Prefix(ctx context.Context, args PrefixArgs) error {
	opts, err := w.transformOptions(args)
	if err != nil {
		return err
	}

	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	sources, err := w.fsAdapter.Sources(paths, adapter.WalkOptions{
		Extensions:  args.Extensions,
		ExcludeDirs: args.ExcludeDirs,
	})
	if err != nil {
		return fmt.Errorf("failed to collect sources: %w", err)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(controller.WithPrefixMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(len(sources), threads, args.DryRun)

	summary := w.transformSources(ctx, sources, threads, opts)

	w.ui.DisplaySummary(summary)
	w.ui.Wait()

	if summary.Failed > 0 {
		return &RunError{Failed: summary.Failed, Total: summary.Total}
	}

	return nil
}

// transformOptions validates the run input. Nothing is read from the
// source tree until it succeeds.
func (w *workflow) transformOptions(args PrefixArgs) (TransformOptions, error) {
	if strings.TrimSpace(args.Prefix) == "" {
		return TransformOptions{}, &ConfigurationError{Reason: "a non-empty prefix is required"}
	}

	rules, err := ParseScopes(args.Scopes...)
	if err != nil {
		return TransformOptions{}, err
	}

	names, err := w.classNames(args.Stylesheet)
	if err != nil {
		return TransformOptions{}, err
	}

	return TransformOptions{
		Matcher:  NewScopeMatcher(rules),
		Rewriter: NewClassRewriter(args.Prefix, NewClassSet(names)),
		DryRun:   args.DryRun,
		Diff:     args.Diff,
	}, nil
}

// transformSources runs the per-file pipeline on a bounded pool. A single
// worker processes sources in walk order.
func (w *workflow) transformSources(ctx context.Context, sources []m.Source, threads int, opts TransformOptions) m.Summary {
	summary := m.Summary{DryRun: opts.DryRun}

	var mu sync.Mutex

	var g errgroup.Group

	g.SetLimit(threads)

	for _, source := range sources {
		g.Go(func() error {
			result := w.orchestrator.Transform(ctx, source, opts)

			mu.Lock()
			defer mu.Unlock()

			summary.Add(result)
			w.ui.DisplayFileResult(result)

			return nil
		})
	}

	_ = g.Wait()

	return summary
}

func (w *workflow) Classes(args ClassesArgs) error {
	names, err := w.classNames(args.Stylesheet)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithClassesMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayClassNames(names)
	w.ui.Wait()

	return nil
}

func (w *workflow) classNames(stylesheet m.Path) ([]string, error) {
	if stylesheet == "" {
		return nil, &ConfigurationError{Reason: "a stylesheet input path is required"}
	}

	content, err := w.fsAdapter.ReadFile(stylesheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet %s: %w", stylesheet, err)
	}

	names, err := w.stylesheetAdapter.ClassNames(content)
	if err != nil {
		return nil, fmt.Errorf("failed to extract classes from %s: %w", stylesheet, err)
	}

	return names, nil
}
