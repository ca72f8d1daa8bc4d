package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/Gnarus-G/cnat/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	started bool
	done    chan struct{}
	mu      sync.Mutex
	config  StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options...)

	if t.config.mode == ModeClasses {
		return t.startWithModel(newClassesModel(), tea.WithAltScreen())
	}

	return t.startWithModel(newPrefixModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts = append([]tea.ProgramOption{tea.WithOutput(t.output)}, opts...)
	program := tea.NewProgram(model, opts...)
	done := make(chan struct{})

	t.program = program
	t.done = done
	t.started = true

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// ensureStarted starts the default mode when a display method is called
// before Start.
func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and restores the terminal. It is safe to call more
// than once.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayClassNames lists the stylesheet classes.
func (t *TUI) DisplayClassNames(names []string) {
	t.ensureStarted()
	t.send(classNamesMsg{names: append([]string(nil), names...)})
}

// DisplayRunInfo sets the size of the progress bar.
func (t *TUI) DisplayRunInfo(total int, threads int, dryRun bool) {
	t.ensureStarted()
	t.send(runInfoMsg{total: total, threads: threads, dryRun: dryRun})
}

// DisplayFileResult appends a file to the result list.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.ensureStarted()

	msg := fileResultMsg{
		path:   string(result.Source.Path),
		status: string(result.Status),
		edits:  result.Edits,
		diff:   result.Diff,
	}
	if result.Err != nil {
		msg.err = result.Err.Error()
	}

	t.send(msg)
}

// DisplaySummary switches the view to the browsable results.
func (t *TUI) DisplaySummary(summary m.Summary) {
	t.ensureStarted()
	t.send(summaryMsg{summary: summary})
}
