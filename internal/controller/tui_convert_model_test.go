package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/respec/internal/model"
)

var convertedReport = m.Report{
	Source:  m.Source{Origin: "spec/a_spec.rb"},
	Records: []m.Record{{OriginalSyntax: "== expected", ConvertedSyntax: "eq(expected)"}},
	Changed: true,
	Diff:    "--- a/spec/a_spec.rb\n+++ b/spec/a_spec.rb\n@@ -1 +1 @@\n-a.should == 1\n+a.should eq(1)\n",
}

func updateConvert(t *testing.T, model convertModel, msg tea.Msg) convertModel {
	t.Helper()

	updated, _ := model.Update(msg)

	result, ok := updated.(convertModel)
	if !ok {
		t.Fatalf("Update returned %T, want convertModel", updated)
	}

	return result
}

func TestConvertModel_Progress(t *testing.T) {
	model := newConvertModel(true)
	model = updateConvert(t, model, tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updateConvert(t, model, concurrencyMsg{threads: 2, shardIndex: 1, shards: 3})
	model = updateConvert(t, model, upcomingMsg{count: 2})
	model = updateConvert(t, model, startFileMsg{worker: 1, path: "spec/a_spec.rb"})

	if model.workerFiles[1] != "spec/a_spec.rb" {
		t.Fatalf("worker file not tracked: %v", model.workerFiles)
	}

	view := model.View()
	for _, want := range []string{"Respec Conversion (dry run)", "Worker 0: idle", "spec/a_spec.rb"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	model = updateConvert(t, model, completedFileMsg{report: convertedReport})

	if model.completed != 1 {
		t.Fatalf("completed = %d, want 1", model.completed)
	}

	if _, busy := model.workerFiles[1]; busy {
		t.Fatalf("worker should be idle after completion")
	}

	if !strings.Contains(model.View(), "Progress: 1 / 2") {
		t.Fatalf("View() missing progress\n%s", model.View())
	}
}

func TestConvertModel_SummaryAndDiff(t *testing.T) {
	model := newConvertModel(true)
	model = updateConvert(t, model, tea.WindowSizeMsg{Width: 100, Height: 40})
	model = updateConvert(t, model, summaryMsg{
		reports: []m.Report{
			convertedReport,
			{Source: m.Source{Origin: "spec/b_spec.rb"}, Err: errors.New("bad syntax")},
		},
		records: []m.RecordCount{{Record: convertedReport.Records[0], Count: 1}},
	})

	if !model.finished {
		t.Fatalf("summary should finish the model")
	}

	view := model.View()
	for _, want := range []string{"Respec Results", "Changed: 1", "Failed: 1", "== expected", "eq(expected)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	model = updateConvert(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if !model.showDiff || model.selectedPath != "spec/a_spec.rb" {
		t.Fatalf("enter should show the selected diff")
	}

	if !strings.Contains(model.View(), "+a.should eq(1)") {
		t.Fatalf("View() missing diff\n%s", model.View())
	}

	model = updateConvert(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.showDiff {
		t.Fatalf("second enter should hide the diff")
	}

	model = updateConvert(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if model.lastSelected != 1 {
		t.Fatalf("lastSelected = %d, want 1", model.lastSelected)
	}

	// failed file has no diff
	model = updateConvert(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.showDiff {
		t.Fatalf("a file without diff should not open the diff box")
	}
}

func TestConvertModel_KeysAndTicks(t *testing.T) {
	model := newConvertModel(false)

	if cmd := model.Init(); cmd == nil {
		t.Fatalf("Init() returned nil cmd")
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}

	// keys other than quit are ignored while converting
	model = updateConvert(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.showDiff {
		t.Fatalf("diff shown before conversion finished")
	}

	model.finished = true
	updated, cmd := model.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}

	if updated.(convertModel).animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", updated.(convertModel).animOffset)
	}
}

func TestViewModel_WaitsForReports(t *testing.T) {
	model := newViewModel()
	if got := model.View(); got != "Loading reports…\n" {
		t.Fatalf("View() before summary = %q", got)
	}

	model = updateConvert(t, model, summaryMsg{})
	model.width = 60
	model.height = 20

	if !strings.Contains(model.View(), "No conversions applied") {
		t.Fatalf("View() missing empty records line\n%s", model.View())
	}
}

func TestReportDelegate_Render(t *testing.T) {
	delegate := reportDelegate{}
	items := []list.Item{newReportItem(convertedReport)}
	l := list.New(items, delegate, 60, 5)

	var buf bytes.Buffer
	delegate.Render(&buf, l, 0, items[0])

	for _, want := range []string{"changed", "1", "spec/a_spec.rb"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("render output missing %q: %q", want, buf.String())
		}
	}

	buf.Reset()
	delegate.Render(&buf, l, 0, struct{ list.Item }{})

	if buf.Len() != 0 {
		t.Fatalf("unexpected output for foreign item: %q", buf.String())
	}
}

func TestReportStatus(t *testing.T) {
	if got := reportStatus(m.Report{Err: errors.New("x"), Changed: true}); got != "failed" {
		t.Fatalf("reportStatus(err) = %q, want failed", got)
	}

	if got := reportStatus(m.Report{Changed: true}); got != "changed" {
		t.Fatalf("reportStatus(changed) = %q, want changed", got)
	}

	if got := reportStatus(m.Report{}); got != "unchanged" {
		t.Fatalf("reportStatus() = %q, want unchanged", got)
	}
}
