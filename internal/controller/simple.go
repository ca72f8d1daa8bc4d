package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/Gnarus-G/cnat/internal/model"
)

const formatterReminder = "Make sure to run your formatter (e.g. prettier) on the transformed files."

// SimpleUI implements UI using cobra Command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately, there is nothing to interact with.
func (s *SimpleUI) Wait() {
}

// DisplayClassNames prints one class name per line.
func (s *SimpleUI) DisplayClassNames(names []string) {
	for _, name := range names {
		s.printf("%s\n", name)
	}
}

// DisplayRunInfo announces the number of files about to be processed.
func (s *SimpleUI) DisplayRunInfo(total int, threads int, dryRun bool) {
	mode := ""
	if dryRun {
		mode = " (dry run)"
	}

	s.printf("[INFO] processing %d files with %d worker(s)%s\n", total, threads, mode)
}

// DisplayFileResult prints the outcome of a single file, followed by its diff
// when one was rendered.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	path := result.Source.Path

	switch result.Status {
	case m.StatusTransformed:
		verb := "transformed"
		if result.DryRun {
			verb = "would transform"
		}

		s.printf("[DONE] %s %s (%d literals)\n", verb, path, result.Edits)
	case m.StatusUnchanged:
		s.printf("[INFO] no change %s\n", path)
	case m.StatusFailed:
		s.errorf("[ERROR] %s: %v\n", path, result.Err)
	}

	if result.Diff != "" {
		diff := result.Diff
		if !strings.HasSuffix(diff, "\n") {
			diff += "\n"
		}

		s.printf("%s", diff)
	}
}

// DisplaySummary prints the per-status file counts as a table.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Status", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{string(m.StatusTransformed), fmt.Sprintf("%d", summary.Transformed)})
	table.Append([]string{string(m.StatusUnchanged), fmt.Sprintf("%d", summary.Unchanged)})
	table.Append([]string{string(m.StatusFailed), fmt.Sprintf("%d", summary.Failed)})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", summary.Total)})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if summary.Transformed > 0 && !summary.DryRun {
		s.printf("[INFO] %s\n", formatterReminder)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
