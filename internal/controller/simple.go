package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/respec/internal/model"
)

var (
	changedColor   = color.New(color.FgGreen)
	unchangedColor = color.New(color.FgHiBlack)
	failedColor    = color.New(color.FgRed, color.Bold)
	hunkColor      = color.New(color.FgCyan)
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	mu     sync.Mutex
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig()}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayEstimation prints the number of operator matchers per file.
func (s *SimpleUI) DisplayEstimation(estimates []m.Estimate, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	sorted := append([]m.Estimate(nil), estimates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Source.Origin < sorted[j].Source.Origin })

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Matchers"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, estimate := range sorted {
		if estimate.Err != nil {
			table.Append([]string{string(estimate.Source.Origin), "error"})
			continue
		}

		table.Append([]string{string(estimate.Source.Origin), fmt.Sprintf("%d", estimate.Matchers)})
		total += estimate.Matchers
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		humanize.Comma(int64(total)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTargets prints the expressions that need runtime type information.
func (s *SimpleUI) DisplayTargets(targets []m.Target, err error) error {
	if err != nil {
		s.printf("targets error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Line", "Expression"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, target := range targets {
		table.Append([]string{target.ID, fmt.Sprintf("%d", target.Line), target.Text})
	}

	table.SetFooter([]string{"Total Targets", humanize.Comma(int64(len(targets))), ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	if shardCount > 1 {
		s.printf("Converting with %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)
		return
	}

	s.printf("Converting with %d worker(s)\n", threads)
}

// DisplayUpcomingFilesInfo shows the number of files to be converted.
func (s *SimpleUI) DisplayUpcomingFilesInfo(count int) {
	s.printf("Upcoming files: %s\n", humanize.Comma(int64(count)))
}

// DisplayStartingFileInfo is silent; plain output only reports finished files.
func (s *SimpleUI) DisplayStartingFileInfo(_ m.Source, _ int) {}

// DisplayCompletedFileInfo prints one status line per converted file. In dry
// run mode the diff follows.
func (s *SimpleUI) DisplayCompletedFileInfo(report m.Report) {
	var line string

	switch status := reportStatus(report); status {
	case "failed":
		line = fmt.Sprintf("%s %s: %v\n", failedColor.Sprint(status), report.Source.Origin, report.Err)
	case "changed":
		line = fmt.Sprintf("%s %s (%d conversions)\n", changedColor.Sprint(status), report.Source.Origin, len(report.Records))
	default:
		line = fmt.Sprintf("%s %s\n", unchangedColor.Sprint(status), report.Source.Origin)
	}

	if s.config.dryRun && report.Diff != "" {
		line += colorizeDiff(report.Diff)
	}

	s.printf("%s", line)
}

// DisplaySummary prints how often each kind of conversion was applied and
// how many files were touched.
func (s *SimpleUI) DisplaySummary(reports []m.Report, records []m.RecordCount) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Original Syntax", "Converted Syntax", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, rc := range records {
		table.Append([]string{rc.Record.OriginalSyntax, rc.Record.ConvertedSyntax, humanize.Comma(int64(rc.Count))})
		total += rc.Count
	}

	table.SetFooter([]string{"Total", "", humanize.Comma(int64(total))})

	table.Render()

	changed, unchanged, failed := 0, 0, 0

	for _, report := range reports {
		switch reportStatus(report) {
		case "failed":
			failed++
		case "changed":
			changed++
		default:
			unchanged++
		}
	}

	s.printf("\n%s\n%d files: %s changed, %s unchanged, %s failed\n",
		tableBuffer.String(),
		len(reports),
		changedColor.Sprint(changed),
		unchangedColor.Sprint(unchanged),
		failedColor.Sprint(failed),
	)

	if s.config.mode == ModeView {
		for _, report := range reports {
			if report.Err != nil {
				s.printf("  %s: %v\n", report.Source.Origin, report.Err)
			}
		}
	}

	return nil
}

func colorizeDiff(diff string) string {
	var sb strings.Builder

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "@@"):
			sb.WriteString(hunkColor.Sprint(line))
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			sb.WriteString(line)
		case strings.HasPrefix(line, "+"):
			sb.WriteString(changedColor.Sprint(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(failedColor.Sprint(line))
		default:
			sb.WriteString(line)
		}
	}

	return sb.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
