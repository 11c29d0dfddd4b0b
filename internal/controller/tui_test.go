package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/respec/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// send while running should go through program.Send
	tui.send(upcomingMsg{count: 2})

	waitOrFail(t, "Wait()", tui.Wait)
	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be no-op
	tui.send(upcomingMsg{count: 1})

	// ensureStarted should not re-start when already started
	tui.started = true
	tui.ensureStarted()

	if tui.program != nil {
		t.Fatalf("ensureStarted() started a program although started was set")
	}
}

func TestTUI_ConvertMode_StartAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithConvertMode(true)); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	tui.DisplayConcurrencyInfo(2, 0, 1)
	tui.DisplayUpcomingFilesInfo(1)
	tui.DisplayStartingFileInfo(m.Source{Origin: "spec/a_spec.rb"}, 0)
	tui.DisplayCompletedFileInfo(m.Report{
		Source:  m.Source{Origin: "spec/a_spec.rb"},
		Changed: true,
		Diff:    "@@ -1 +1 @@\n-a.should == 1\n+a.should eq(1)\n",
	})

	if err := tui.DisplaySummary(nil, nil); err != nil {
		t.Fatalf("DisplaySummary error = %v", err)
	}

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_StartEachMode(t *testing.T) {
	for _, opt := range []StartOption{WithEstimateMode(), WithTargetsMode(), WithViewMode()} {
		var buf bytes.Buffer
		tui := NewTUI(&buf)

		if err := tui.Start(opt); err != nil {
			t.Fatalf("Start error = %v", err)
		}

		waitOrFail(t, "Close()", tui.Close)
	}
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	tui2 := NewTUI(&buf)
	tui2.Wait() // Wait without start should be no-op

	tui3 := NewTUI(&buf)
	if err := tui3.Start(); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	waitOrFail(t, "Close()", tui3.Close)
	waitOrFail(t, "second Close()", tui3.Close)
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// Avoid starting Bubble Tea program in tests
	tui.started = true

	if err := tui.DisplayEstimation(nil, nil); err != nil {
		t.Fatalf("DisplayEstimation unexpected error = %v", err)
	}

	if err := tui.DisplayEstimation(nil, errSentinel); err == nil {
		t.Fatalf("DisplayEstimation expected error")
	}

	estimates := []m.Estimate{
		{Source: m.Source{Origin: "spec/b_spec.rb"}, Matchers: 1},
		{Source: m.Source{Origin: "spec/a_spec.rb"}, Err: errSentinel},
	}
	if err := tui.DisplayEstimation(estimates, nil); err != nil {
		t.Fatalf("DisplayEstimation with estimates error = %v", err)
	}

	if err := tui.DisplayTargets([]m.Target{{ID: "a_1_2", Line: 1, Text: "x"}}, nil); err != nil {
		t.Fatalf("DisplayTargets error = %v", err)
	}

	if err := tui.DisplayTargets(nil, errSentinel); err == nil {
		t.Fatalf("DisplayTargets expected error")
	}

	tui.DisplayConcurrencyInfo(2, 1, 3)
	tui.DisplayUpcomingFilesInfo(5)
	tui.DisplayStartingFileInfo(m.Source{Origin: "spec/a_spec.rb"}, 7)
	tui.DisplayCompletedFileInfo(m.Report{Source: m.Source{Origin: "spec/a_spec.rb"}})

	if err := tui.DisplaySummary([]m.Report{{}}, nil); err != nil {
		t.Fatalf("DisplaySummary error = %v", err)
	}
}

var errSentinel = errors.New("boom")
