package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/Gnarus-G/cnat/internal/model"
)

const statusWidth = 12

type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, model list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	detail := ""

	switch {
	case file.err != "":
		detail = "  " + file.err
	case file.edits > 0:
		detail = fmt.Sprintf("  (%d)", file.edits)
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	status := statusStyle(file.status).Width(statusWidth)

	if index == model.Index() {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accentColor).Bold(true)
		status = status.Background(accentColor)
	}

	line := status.Render(file.status) + pathStyle.Render(truncateToWidth(file.path+detail, model.Width()-statusWidth))
	_, _ = fmt.Fprint(w, line)
}

// prefixModel shows the progress of a prefix run, then the browsable results.
type prefixModel struct {
	width       int
	height      int
	progressBar progress.Model
	total       int
	threads     int
	dryRun      bool
	completed   int
	results     []fileItem
	resultsList list.Model
	finished    bool
	summary     m.Summary
	showDiff    bool
	rendered    bool
}

func newPrefixModel() prefixModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	resultsList := list.New([]list.Item{}, resultDelegate{}, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter by path…"

	return prefixModel{
		progressBar: prog,
		resultsList: resultsList,
	}
}

func (m prefixModel) Init() tea.Cmd {
	return nil
}

func (m prefixModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case runInfoMsg:
		m.total = msg.total
		m.threads = msg.threads
		m.dryRun = msg.dryRun
		m.completed = 0
		m.rendered = true

	case fileResultMsg:
		m, cmd = m.handleFileResult(msg)

	case summaryMsg:
		m.summary = msg.summary
		m.finished = true
		m.rendered = true

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)
	}

	return m, cmd
}

func (m prefixModel) handleWindowSize(msg tea.WindowSizeMsg) prefixModel {
	m.width = msg.Width
	m.height = msg.Height
	m.resultsList.SetWidth(m.width - 4)

	m.progressBar.Width = m.width - 8
	if m.progressBar.Width < 20 {
		m.progressBar.Width = 20
	}

	return m
}

func (m prefixModel) handleFileResult(msg fileResultMsg) (prefixModel, tea.Cmd) {
	m.completed++
	m.rendered = true
	m.results = append(m.results, fileItem(msg))

	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	return m, m.resultsList.SetItems(items)
}

func (m prefixModel) handleKeyMsg(msg tea.KeyMsg) (prefixModel, tea.Cmd) {
	filtering := m.resultsList.FilterState() == list.Filtering

	switch {
	case msg.String() == "ctrl+c", msg.String() == "q" && !filtering:
		return m, tea.Quit
	case !m.finished:
		return m, nil
	case !filtering && (msg.String() == "enter" || msg.String() == " "):
		m.showDiff = !m.showDiff && m.selectedDiff() != ""

		return m, nil
	}

	previous := m.resultsList.Index()

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)
	if m.resultsList.Index() != previous {
		m.showDiff = false
	}

	return m, cmd
}

func (m prefixModel) selectedDiff() string {
	file, ok := m.resultsList.SelectedItem().(fileItem)
	if !ok {
		return ""
	}

	return strings.TrimSpace(file.diff)
}

func (m prefixModel) percent() float64 {
	if m.total == 0 {
		if m.finished {
			return 1
		}

		return 0
	}

	return float64(m.completed) / float64(m.total)
}

func (m prefixModel) View() string {
	if !m.rendered {
		return "Collecting sources…\n"
	}

	mode := ""
	if m.dryRun {
		mode = "  •  dry run"
	}

	title := titleStyle.Render("cnat prefix")
	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s%s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
		mode,
	))
	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent()))

	if !m.finished {
		return lipgloss.JoinVertical(lipgloss.Left, title, summary, progressView)
	}

	totals := summaryStyle.Render(fmt.Sprintf(
		"Transformed: %s  •  Unchanged: %s  •  Failed: %s",
		statusStyle("transformed").Render(fmt.Sprintf("%d", m.summary.Transformed)),
		statusStyle("unchanged").Render(fmt.Sprintf("%d", m.summary.Unchanged)),
		statusStyle("failed").Render(fmt.Sprintf("%d", m.summary.Failed)),
	))
	footer := footerStyle.Width(m.width).Render("↑/k up • ↓/j down • / filter • enter diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		totals,
		m.renderResults(),
		footer,
	)
}

func (m prefixModel) renderResults() string {
	diffLines := m.diffLines()

	listHeight := m.height - 12 - len(diffLines)
	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)

	results := boxStyle.Render(m.resultsList.View())
	if len(diffLines) == 0 {
		return results
	}

	width := m.width - 8
	if width < 10 {
		width = 10
	}

	rendered := make([]string, 0, len(diffLines))
	for _, line := range diffLines {
		rendered = append(rendered, renderDiffLine(line, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, results, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...)))
}

// diffLines returns the visible lines of the selected diff, capped to a third
// of the screen.
func (m prefixModel) diffLines() []string {
	if !m.showDiff {
		return nil
	}

	diff := m.selectedDiff()
	if diff == "" {
		return nil
	}

	lines := strings.Split(diff, "\n")

	maxLines := m.height / 3
	if maxLines < 6 {
		maxLines = 6
	}

	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1:maxLines-1], ellipsis)
	}

	return lines
}
