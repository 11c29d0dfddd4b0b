package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/respec/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayEstimation_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	estimates := []m.Estimate{
		{Source: m.Source{Origin: "spec/b_spec.rb"}, Matchers: 1},
		{Source: m.Source{Origin: "spec/a_spec.rb"}, Matchers: 2},
		{Source: m.Source{Origin: "spec/broken_spec.rb"}, Err: errors.New("syntax")},
	}

	if err := ui.DisplayEstimation(estimates, nil); err != nil {
		t.Fatalf("DisplayEstimation() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"spec/a_spec.rb",
		"spec/b_spec.rb",
		"error",
		"TOTAL FILES 3",
		"3",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Index(output, "spec/a_spec.rb") > strings.Index(output, "spec/b_spec.rb") {
		t.Fatalf("rows are not sorted by path\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayEstimation_Error(t *testing.T) {
	ui, buf := newTestSimpleUI()
	boom := errors.New("boom")

	if err := ui.DisplayEstimation(nil, boom); err == nil {
		t.Fatalf("DisplayEstimation() expected error")
	}

	output := buf.String()
	if !strings.Contains(output, "estimation error: boom") {
		t.Fatalf("output missing error message\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayTargets(t *testing.T) {
	ui, buf := newTestSimpleUI()

	targets := []m.Target{
		{ID: "/spec/a_spec.rb_10_14", Line: 2, Text: "list"},
	}

	if err := ui.DisplayTargets(targets, nil); err != nil {
		t.Fatalf("DisplayTargets() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"/spec/a_spec.rb_10_14", "list", "TOTAL TARGETS"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if err := ui.DisplayTargets(nil, errors.New("boom")); err == nil {
		t.Fatalf("DisplayTargets() expected error")
	}
}

func TestSimpleUI_ConvertProgress(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.Start(WithConvertMode(false)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayConcurrencyInfo(4, 1, 3)
	ui.DisplayUpcomingFilesInfo(1200)
	ui.DisplayStartingFileInfo(m.Source{Origin: "spec/a_spec.rb"}, 0)
	ui.DisplayCompletedFileInfo(m.Report{
		Source:  m.Source{Origin: "spec/a_spec.rb"},
		Records: []m.Record{{OriginalSyntax: "== expected", ConvertedSyntax: "eq(expected)"}},
		Changed: true,
		Diff:    "@@ -1 +1 @@\n-a.should == 1\n+a.should eq(1)\n",
	})
	ui.DisplayCompletedFileInfo(m.Report{Source: m.Source{Origin: "spec/b_spec.rb"}})
	ui.DisplayCompletedFileInfo(m.Report{Source: m.Source{Origin: "spec/c_spec.rb"}, Err: errors.New("bad syntax")})
	ui.Wait()
	ui.Close()

	output := buf.String()
	for _, want := range []string{
		"Converting with 4 worker(s), shard 1/3",
		"Upcoming files: 1,200",
		"changed spec/a_spec.rb (1 conversions)",
		"unchanged spec/b_spec.rb",
		"failed spec/c_spec.rb: bad syntax",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Contains(output, "+a.should eq(1)") {
		t.Fatalf("diff printed outside dry run\noutput:\n%s", output)
	}
}

func TestSimpleUI_DryRunPrintsDiff(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.Start(WithConvertMode(true)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayConcurrencyInfo(1, 0, 1)
	ui.DisplayCompletedFileInfo(m.Report{
		Source:  m.Source{Origin: "spec/a_spec.rb"},
		Changed: true,
		Diff:    "@@ -1 +1 @@\n-a.should == 1\n+a.should eq(1)\n",
	})

	output := buf.String()
	if !strings.Contains(output, "Converting with 1 worker(s)\n") {
		t.Fatalf("output missing concurrency line\noutput:\n%s", output)
	}

	if !strings.Contains(output, "-a.should == 1\n+a.should eq(1)\n") {
		t.Fatalf("output missing diff\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.Start(WithViewMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	reports := []m.Report{
		{Source: m.Source{Origin: "spec/a_spec.rb"}, Changed: true},
		{Source: m.Source{Origin: "spec/b_spec.rb"}},
		{Source: m.Source{Origin: "spec/c_spec.rb"}, Err: errors.New("bad syntax")},
	}
	records := []m.RecordCount{
		{Record: m.Record{OriginalSyntax: "=~ /pattern/", ConvertedSyntax: "match(/pattern/)"}, Count: 2},
		{Record: m.Record{OriginalSyntax: "== expected", ConvertedSyntax: "eq(expected)"}, Count: 1},
	}

	if err := ui.DisplaySummary(reports, records); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"ORIGINAL SYNTAX",
		"=~ /pattern/",
		"match(/pattern/)",
		"eq(expected)",
		"3 files: 1 changed, 1 unchanged, 1 failed",
		"spec/c_spec.rb: bad syntax",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestColorizeDiff_KeepsLines(t *testing.T) {
	diff := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n ctx\n"

	if got := colorizeDiff(diff); got != diff {
		t.Fatalf("colorizeDiff() without color = %q, want %q", got, diff)
	}
}
