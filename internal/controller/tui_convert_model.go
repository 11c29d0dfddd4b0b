package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/respec/internal/model"
)

// reportDelegate renders one converted file per line.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	report, ok := item.(reportItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	pathWidth := m.Width() - 22 // status (10), records (8) and spacing

	statusStyle := lipgloss.NewStyle().Bold(true).Width(10).Align(lipgloss.Left)
	countStyle := lipgloss.NewStyle().Foreground(colorCount).Width(8).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(colorPath)

	statusColors := map[string]lipgloss.Color{
		"changed":   colorChanged,
		"unchanged": colorMuted,
		"failed":    colorFailed,
	}
	statusStyle = statusStyle.Foreground(statusColors[report.status])

	displayPath := fitWidth(report.path, pathWidth)

	if isSelected {
		selected := selectedStyle()
		statusStyle = selected.Width(10).Align(lipgloss.Left)
		countStyle = selected.Width(8).Align(lipgloss.Right)
		pathStyle = selected
		displayPath = marquee(report.path, pathWidth, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s",
		statusStyle.Render(report.status),
		countStyle.Render(fmt.Sprintf("%d", report.records)),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

// convertModel shows conversion progress and, once the summary arrives, the
// per-file results with their diffs. With viewOnly set it only shows stored
// results.
type convertModel struct {
	width        int
	height       int
	progressBar  progress.Model
	dryRun       bool
	viewOnly     bool
	threads      int
	shardIndex   int
	shardCount   int
	total        int
	completed    int
	workerFiles  map[int]string
	finished     bool
	reports      []reportItem
	records      []m.RecordCount
	resultsList  list.Model
	delegate     reportDelegate
	animOffset   int
	lastSelected int
	showDiff     bool
	selectedDiff string
	selectedPath string
}

func newConvertModel(dryRun bool) convertModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := reportDelegate{}
	resultsList := newPlainList(delegate, "Filter results…")

	return convertModel{
		progressBar:  prog,
		dryRun:       dryRun,
		threads:      1,
		shardCount:   1,
		workerFiles:  make(map[int]string),
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func newViewModel() convertModel {
	model := newConvertModel(false)
	model.viewOnly = true

	return model
}

func (m convertModel) Init() tea.Cmd {
	return tickAfter(100 * time.Millisecond)
}

func (m convertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.progressBar.Width = m.width - 8
		if m.progressBar.Width < 20 {
			m.progressBar.Width = 20
		}

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		if m.finished && m.resultsList.FilterState() != list.Filtering {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.resultsList.SetDelegate(m.delegate)
		}

		return m, tickAfter(marqueeTick)

	case concurrencyMsg:
		m.threads = msg.threads
		m.shardIndex = msg.shardIndex
		m.shardCount = msg.shards

	case upcomingMsg:
		m.total = msg.count
		m.completed = 0

	case startFileMsg:
		m.workerFiles[msg.worker] = msg.path

	case completedFileMsg:
		m = m.handleCompletedFile(msg)

	case summaryMsg:
		m = m.handleSummary(msg)
	}

	return m, cmd
}

func (m convertModel) handleCompletedFile(msg completedFileMsg) convertModel {
	m.completed++

	item := newReportItem(msg.report)
	for worker, path := range m.workerFiles {
		if path == item.path {
			delete(m.workerFiles, worker)
		}
	}

	m.reports = append(m.reports, item)

	return m
}

func (m convertModel) handleSummary(msg summaryMsg) convertModel {
	m.records = msg.records
	m.reports = make([]reportItem, 0, len(msg.reports))

	items := make([]list.Item, 0, len(msg.reports))
	for _, report := range msg.reports {
		item := newReportItem(report)
		m.reports = append(m.reports, item)
		items = append(items, item)
	}

	m.resultsList.SetItems(items)
	m.finished = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m convertModel) handleKeyMsg(msg tea.KeyMsg) (convertModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if !m.finished {
		return m, nil
	}

	if msg.String() == "enter" || msg.String() == " " {
		m.toggleSelectedDiff()
		return m, nil
	}

	m.resultsList, cmd = m.resultsList.Update(msg)

	// Detect selection change to reset animation
	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.resultsList.SetDelegate(m.delegate)
		m.showDiff = false
		m.selectedDiff = ""
		m.selectedPath = ""
	}

	return m, cmd
}

func (m *convertModel) toggleSelectedDiff() {
	report, ok := m.resultsList.SelectedItem().(reportItem)
	if !ok {
		return
	}

	diff := strings.TrimSpace(report.diff)
	if diff == "" || (m.showDiff && m.selectedDiff == diff) {
		m.showDiff = false
		m.selectedDiff = ""
		m.selectedPath = ""

		return
	}

	m.showDiff = true
	m.selectedDiff = diff
	m.selectedPath = report.path
}

func (m convertModel) countStatus(status string) int {
	count := 0

	for _, report := range m.reports {
		if report.status == status {
			count++
		}
	}

	return count
}

func (m convertModel) View() string {
	if m.finished {
		return m.viewResults()
	}

	if m.viewOnly {
		return "Loading reports…\n"
	}

	return m.viewProgress()
}

func (m convertModel) viewProgress() string {
	title := titleStyle().Render("Respec Conversion")
	if m.dryRun {
		title = titleStyle().Render("Respec Conversion (dry run)")
	}

	summary := summaryStyle().Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s  •  Shard: %s / %s",
		accentStyle().Render(fmt.Sprintf("%d", m.completed)),
		accentStyle().Render(fmt.Sprintf("%d", m.total)),
		accentStyle().Render(fmt.Sprintf("%d", m.threads)),
		accentStyle().Render(fmt.Sprintf("%d", m.shardIndex)),
		accentStyle().Render(fmt.Sprintf("%d", m.shardCount)),
	))

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.completed) / float64(m.total)
	}

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(percent))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		m.renderWorkerBox(),
		footerStyle(m.width).Render("Press q to quit"),
	)
}

func (m convertModel) renderWorkerBox() string {
	boxWidth := max(m.width-4, 20)

	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(boxWidth)

	fileStyle := lipgloss.NewStyle().Foreground(colorPath)

	// Border (2) and padding (2)
	availableWidth := boxWidth - 4
	digits := len(fmt.Sprintf("%d", max(m.threads-1, 0)))
	labelFormat := fmt.Sprintf("Worker %%%dd: %%s", digits)
	pathWidth := max(availableWidth-(7+digits+2), 10)

	lines := make([]string, 0, m.threads)

	for i := range m.threads {
		content := "idle"
		if path := m.workerFiles[i]; path != "" {
			content = fileStyle.Render(fitWidth(path, pathWidth))
		}

		lines = append(lines, fmt.Sprintf(labelFormat, i, content))
	}

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m convertModel) viewResults() string {
	title := titleStyle().Render("Respec Results")

	summary := summaryStyle().Render(fmt.Sprintf(
		"Files: %s  •  Changed: %s  •  Unchanged: %s  •  Failed: %s",
		accentStyle().Render(fmt.Sprintf("%d", len(m.reports))),
		accentStyle().Render(fmt.Sprintf("%d", m.countStatus("changed"))),
		accentStyle().Render(fmt.Sprintf("%d", m.countStatus("unchanged"))),
		accentStyle().Render(fmt.Sprintf("%d", m.countStatus("failed"))),
	))

	footer := footerStyle(m.width).Render("↑/k up • ↓/j down • / filter • enter/space diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderRecords(),
		m.renderResultsBox(),
		footer,
	)
}

func (m convertModel) renderRecords() string {
	if len(m.records) == 0 {
		return lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2).Render("No conversions applied")
	}

	countStyle := lipgloss.NewStyle().Foreground(colorCount).Bold(true).Width(6).Align(lipgloss.Right)
	syntaxStyle := lipgloss.NewStyle().Foreground(colorText)

	lines := make([]string, 0, len(m.records))
	for _, rc := range m.records {
		lines = append(lines, fmt.Sprintf("%s  %s → %s",
			countStyle.Render(fmt.Sprintf("%d", rc.Count)),
			syntaxStyle.Render(rc.Record.OriginalSyntax),
			syntaxStyle.Render(rc.Record.ConvertedSyntax),
		))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m convertModel) renderResultsBox() string {
	listWidth := max(m.width-4, 20)
	diffBox := m.renderDiffBox(listWidth)

	listHeight := m.height - 10 - len(m.records) - lipgloss.Height(diffBox)
	if listHeight < minListHeight {
		listHeight = minListHeight
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headers := headerStyle(listWidth).Render(fmt.Sprintf("%-10s  %8s  %s", "Status", "Records", "File"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))

	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func (m convertModel) renderDiffBox(width int) string {
	if !m.showDiff || m.selectedDiff == "" {
		return ""
	}

	maxLines := min(max(m.height/3, 6), 20)
	lines := strings.Split(m.selectedDiff, "\n")
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := max(width-4, 10)

	body := make([]string, 0, len(lines)+2)
	body = append(body, lipgloss.NewStyle().Foreground(colorMuted).Bold(true).
		Render(fitWidth("Diff • "+m.selectedPath, contentWidth)))

	for _, line := range lines {
		body = append(body, renderDiffLine(line, contentWidth))
	}

	if truncated {
		body = append(body, "…")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(colorText)

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(colorAdded).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(colorRemoved).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(colorAdded)
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(colorRemoved)
	}

	return style.Render(fitWidth(line, width))
}
