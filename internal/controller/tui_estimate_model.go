package controller

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// countColumnWidth holds the count column plus its two-space gutter.
const countColumnWidth = 8

// countDelegate renders a fileItem as a right-aligned count followed by its
// path. The selected row scrolls when the path is too long.
type countDelegate struct {
	step int
}

func (d countDelegate) Height() int                             { return 1 }
func (d countDelegate) Spacing() int                            { return 0 }
func (d countDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d countDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	row, ok := item.(fileItem)
	if !ok {
		return
	}

	width := l.Width() - countColumnWidth

	count := strconv.Itoa(row.count)
	if row.err != nil {
		count = "error"
	}

	countStyle := lipgloss.NewStyle().Foreground(colorCount).Bold(true)
	pathStyle := lipgloss.NewStyle().Foreground(colorPath)
	path := fitWidth(row.path, width)

	if index == l.Index() {
		countStyle = selectedStyle()
		pathStyle = selectedStyle()
		path = marquee(row.path, width, d.step)
	}

	if row.err != nil {
		countStyle = countStyle.Foreground(colorFailed)
	}

	_, _ = fmt.Fprintf(w, "%s  %s",
		countStyle.Width(countColumnWidth-2).Align(lipgloss.Right).Render(count),
		pathStyle.Render(path),
	)
}

// rowsModel is a filterable table of counted rows. The estimate screen
// counts operator matchers per file; the targets screen lists expressions
// with their line numbers.
type rowsModel struct {
	width    int
	height   int
	rows     list.Model
	delegate countDelegate
	heading  string
	columns  [2]string
	waiting  string
	total    int
	rowCount int
	err      error
	loaded   bool
	selected int
}

func newEstimateModel() rowsModel {
	return newRowsModel("Respec Matcher Estimate", [2]string{"Count", "File Path"}, "Loading matcher list…\n")
}

func newTargetsModel() rowsModel {
	return newRowsModel("Respec Dynamic Analysis Targets", [2]string{"Line", "Target"}, "Loading targets…\n")
}

func newRowsModel(heading string, columns [2]string, waiting string) rowsModel {
	delegate := countDelegate{}

	return rowsModel{
		rows:     newPlainList(delegate, "Filter by path…"),
		delegate: delegate,
		heading:  heading,
		columns:  columns,
		waiting:  waiting,
		selected: -1,
	}
}

func (m rowsModel) Init() tea.Cmd {
	return tickAfter(initialTick)
}

func (m rowsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.rows.SetWidth(m.width)

	case tickMsg:
		if m.loaded && m.rows.FilterState() != list.Filtering {
			m = m.withStep(m.delegate.step + 1)
		}

		return m, tickAfter(marqueeTick)

	case tea.KeyMsg:
		if k := msg.String(); k == "q" || k == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.rows, cmd = m.rows.Update(msg)
		if m.rows.Index() != m.selected {
			m.selected = m.rows.Index()
			m = m.withStep(0)
		}

		return m, cmd

	case estimationMsg:
		m.total, m.err = msg.total, msg.err
		m = m.load(msg.files)

	case targetsMsg:
		m.total, m.err = len(msg.targets), msg.err
		m = m.load(msg.targets)
	}

	return m, nil
}

func (m rowsModel) withStep(step int) rowsModel {
	m.delegate.step = step
	m.rows.SetDelegate(m.delegate)

	return m
}

func (m rowsModel) load(files []fileItem) rowsModel {
	items := make([]list.Item, len(files))
	for i, file := range files {
		items[i] = file
	}

	m.rows.SetItems(items)
	m.rowCount = len(files)
	m.loaded = true

	if len(items) > 0 && m.selected < 0 {
		m.selected = 0
	}

	return m
}

func (m rowsModel) View() string {
	if !m.loaded {
		return m.waiting
	}

	summary := fmt.Sprintf("Total: %s   Rows: %s",
		accentStyle().Render(strconv.Itoa(m.total)),
		accentStyle().Render(strconv.Itoa(m.rowCount)),
	)
	if m.err != nil {
		summary = "Error: " + lipgloss.NewStyle().Foreground(colorFailed).Bold(true).Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle().Render(m.heading),
		summaryStyle().Render(summary),
		m.renderTable(),
		footerStyle(m.width).Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit"),
	)
}

func (m rowsModel) renderTable() string {
	// title, summary, footer, border and header rows
	m.rows.SetHeight(max(m.height-9, minListHeight))

	// margin, border and padding
	width := m.width - 6
	m.rows.SetWidth(width)

	header := headerStyle(width).Render(fmt.Sprintf("%6s  %s", m.columns[0], m.columns[1]))

	return boxStyle().Render(lipgloss.JoinVertical(lipgloss.Left, header, m.rows.View()))
}
