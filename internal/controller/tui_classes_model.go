package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type classDelegate struct{}

func (d classDelegate) Height() int  { return 1 }
func (d classDelegate) Spacing() int { return 0 }
func (d classDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d classDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	name, ok := item.(classItem)
	if !ok {
		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if index == m.Index() {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Bold(true)
	}

	_, _ = fmt.Fprint(w, style.Render(truncateToWidth(string(name), m.Width())))
}

// classesModel lists the classes of a stylesheet.
type classesModel struct {
	width     int
	height    int
	classList list.Model
	total     int
	rendered  bool
}

func newClassesModel() classesModel {
	classList := list.New([]list.Item{}, classDelegate{}, 80, 20)
	classList.SetShowPagination(false)
	classList.SetShowFilter(true)
	classList.SetShowHelp(false)
	classList.SetShowTitle(false)
	classList.SetShowStatusBar(false)
	classList.FilterInput.Placeholder = "Filter classes…"

	return classesModel{classList: classList}
}

func (m classesModel) Init() tea.Cmd {
	return nil
}

func (m classesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.classList.SetWidth(m.width - 4)

	case classNamesMsg:
		items := make([]list.Item, 0, len(msg.names))
		for _, name := range msg.names {
			items = append(items, classItem(name))
		}

		cmd = m.classList.SetItems(items)
		m.total = len(msg.names)
		m.rendered = true

	case tea.KeyMsg:
		if m.classList.FilterState() != list.Filtering && (msg.String() == "q" || msg.String() == "ctrl+c") {
			return m, tea.Quit
		}

		m.classList, cmd = m.classList.Update(msg)
	}

	return m, cmd
}

func (m classesModel) View() string {
	if !m.rendered {
		return "Reading stylesheet…\n"
	}

	listHeight := m.height - 8
	if listHeight < 5 {
		listHeight = 5
	}

	m.classList.SetHeight(listHeight)

	title := titleStyle.Render("cnat classes")
	summary := summaryStyle.Render(fmt.Sprintf("Classes: %s", accentStyle.Render(fmt.Sprintf("%d", m.total))))
	footer := footerStyle.Width(m.width).Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		boxStyle.Render(m.classList.View()),
		footer,
	)
}
