package controller

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Terminal palette shared by the TUI screens.
const (
	colorTitle   = lipgloss.Color("205")
	colorText    = lipgloss.Color("252")
	colorMuted   = lipgloss.Color("8")
	colorAccent  = lipgloss.Color("6")
	colorPath    = lipgloss.Color("14")
	colorCount   = lipgloss.Color("11")
	colorAdded   = lipgloss.Color("10")
	colorRemoved = lipgloss.Color("9")
	colorChanged = lipgloss.Color("2")
	colorFailed  = lipgloss.Color("1")
	colorInverse = lipgloss.Color("0")
)

const (
	ellipsis      = "…"
	marqueeGap    = "   "
	marqueePause  = 5
	marqueeTick   = 150 * time.Millisecond
	initialTick   = 500 * time.Millisecond
	minListHeight = 5
)

type tickMsg time.Time

func tickAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fitWidth cuts text to at most width terminal cells, ending with an
// ellipsis when something was dropped.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(text, width, ellipsis)
}

// marquee scrolls text that does not fit into width. The first
// marqueePause steps show the start of the text.
func marquee(text string, width, step int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width || step < marqueePause {
		return fitWidth(text, width)
	}

	loop := []rune(text + marqueeGap)
	start := (step - marqueePause) % len(loop)
	rotated := string(loop[start:]) + string(loop[:start])

	return runewidth.Truncate(rotated, width, "")
}

func newPlainList(delegate list.ItemDelegate, placeholder string) list.Model {
	l := list.New([]list.Item{}, delegate, 80, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = placeholder

	return l
}

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorInverse).Background(colorAccent).Bold(true)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorTitle).Bold(true).Padding(1, 0, 0, 2)
}

func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorText).Padding(0, 0, 1, 2)
}

func accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func footerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted).Align(lipgloss.Center).Width(width)
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Margin(0, 1).
		Padding(0, 1)
}

func headerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorMuted).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorMuted).
		Width(width)
}
