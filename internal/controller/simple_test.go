package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/Gnarus-G/cnat/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return NewSimpleUI(cmd), &out, &errOut
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	ui, out, _ := newTestSimpleUI()

	ui.DisplayRunInfo(3, 2, false)
	ui.DisplayRunInfo(1, 1, true)

	want := "[INFO] processing 3 files with 2 worker(s)\n[INFO] processing 1 files with 1 worker(s) (dry run)\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestSimpleUI_DisplayFileResult(t *testing.T) {
	tests := []struct {
		name    string
		result  m.FileResult
		wantOut string
		wantErr string
	}{
		{
			name:    "transformed",
			result:  m.FileResult{Source: m.Source{Path: "src/app.tsx"}, Status: m.StatusTransformed, Edits: 2},
			wantOut: "[DONE] transformed src/app.tsx (2 literals)\n",
		},
		{
			name:    "dry run",
			result:  m.FileResult{Source: m.Source{Path: "src/app.tsx"}, Status: m.StatusTransformed, Edits: 1, DryRun: true},
			wantOut: "[DONE] would transform src/app.tsx (1 literals)\n",
		},
		{
			name:    "unchanged",
			result:  m.FileResult{Source: m.Source{Path: "src/plain.ts"}, Status: m.StatusUnchanged},
			wantOut: "[INFO] no change src/plain.ts\n",
		},
		{
			name:    "failed goes to stderr",
			result:  m.FileResult{Source: m.Source{Path: "src/broken.js"}, Status: m.StatusFailed, Err: errors.New("boom")},
			wantErr: "[ERROR] src/broken.js: boom\n",
		},
		{
			name: "diff follows the status line",
			result: m.FileResult{
				Source: m.Source{Path: "a.jsx"},
				Status: m.StatusTransformed,
				Edits:  1,
				DryRun: true,
				Diff:   "--- a/a.jsx\n+++ b/a.jsx",
			},
			wantOut: "[DONE] would transform a.jsx (1 literals)\n--- a/a.jsx\n+++ b/a.jsx\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out, errOut := newTestSimpleUI()

			ui.DisplayFileResult(tt.result)

			if out.String() != tt.wantOut {
				t.Fatalf("stdout = %q, want %q", out.String(), tt.wantOut)
			}

			if errOut.String() != tt.wantErr {
				t.Fatalf("stderr = %q, want %q", errOut.String(), tt.wantErr)
			}
		})
	}
}

func TestSimpleUI_DisplaySummary_PrintsTable(t *testing.T) {
	ui, out, _ := newTestSimpleUI()

	ui.DisplaySummary(m.Summary{Total: 6, Transformed: 3, Unchanged: 2, Failed: 1})

	output := out.String()

	for _, want := range []string{
		"STATUS",
		"FILES",
		"transformed",
		"unchanged",
		"failed",
		"TOTAL",
		"6",
		formatterReminder,
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySummary_NoReminder(t *testing.T) {
	for _, summary := range []m.Summary{
		{Total: 2, Unchanged: 2},
		{Total: 1, Transformed: 1, DryRun: true},
	} {
		ui, out, _ := newTestSimpleUI()

		ui.DisplaySummary(summary)

		if strings.Contains(out.String(), formatterReminder) {
			t.Fatalf("summary %+v should not print the formatter reminder\noutput:\n%s", summary, out.String())
		}
	}
}

func TestSimpleUI_DisplayClassNames(t *testing.T) {
	ui, out, _ := newTestSimpleUI()

	if err := ui.Start(WithClassesMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayClassNames([]string{"flex", "w-1/2"})
	ui.Wait()
	ui.Close()

	if out.String() != "flex\nw-1/2\n" {
		t.Fatalf("output = %q", out.String())
	}
}
