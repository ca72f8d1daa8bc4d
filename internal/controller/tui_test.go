package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/Gnarus-G/cnat/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// send while running should go through program.Send
	tui.send(runInfoMsg{total: 2, threads: 1})

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_StartWithModel_OnlyOnce(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	program := tui.program

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	if tui.program != program {
		t.Fatal("second startWithModel replaced the running program")
	}

	tui.Close()
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be no-op
	tui.send(runInfoMsg{total: 1})

	// ensureStarted should not re-start when already started
	tui.started = true
	tui.ensureStarted()

	if tui.program != nil {
		t.Fatal("ensureStarted started a program although started was set")
	}
}

func TestTUI_PrefixRun(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithPrefixMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui.DisplayRunInfo(2, 1, false)
	tui.DisplayFileResult(m.FileResult{
		Source: m.Source{Path: "app.tsx"},
		Status: m.StatusTransformed,
		Edits:  1,
		Diff:   "--- a/app.tsx\n+++ b/app.tsx\n",
	})
	tui.DisplayFileResult(m.FileResult{
		Source: m.Source{Path: "broken.js"},
		Status: m.StatusFailed,
		Err:    errors.New("boom"),
	})
	tui.DisplaySummary(m.Summary{Total: 2, Transformed: 1, Failed: 1})

	tui.Close()
}

func TestTUI_ClassesMode(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithClassesMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui.DisplayClassNames([]string{"flex", "p-4"})

	tui.Close()
}

func TestTUI_DisplayBeforeStart_StartsPrefixMode(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayRunInfo(0, 1, true)

	if !tui.started {
		t.Fatal("DisplayRunInfo() did not start the program")
	}

	if tui.config.mode != ModePrefix {
		t.Fatalf("mode = %v, want %v", tui.config.mode, ModePrefix)
	}

	tui.Close()
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	tui.Close()
	tui.Close()
}

func TestTUI_WaitWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	done := make(chan struct{})
	go func() {
		tui.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait() without Start blocked")
	}
}
