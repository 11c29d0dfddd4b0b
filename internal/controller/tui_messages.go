package controller

import (
	m "github.com/mouse-blink/respec/internal/model"
)

// Message types.
type estimationMsg struct {
	total int
	files []fileItem
	err   error
}

type targetsMsg struct {
	targets []fileItem
	err     error
}

type upcomingMsg struct {
	count int
}

type startFileMsg struct {
	worker int
	path   string
}

type completedFileMsg struct {
	report m.Report
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shards     int
}

type summaryMsg struct {
	reports []m.Report
	records []m.RecordCount
}

// List item types.
type fileItem struct {
	path  string
	count int
	err   error
}

func (f fileItem) FilterValue() string {
	return f.path
}

type reportItem struct {
	path    string
	status  string
	records int
	diff    string
}

func (r reportItem) FilterValue() string {
	return r.path + " " + r.status
}

func newReportItem(report m.Report) reportItem {
	return reportItem{
		path:    string(report.Source.Origin),
		status:  reportStatus(report),
		records: len(report.Records),
		diff:    report.Diff,
	}
}

func reportStatus(report m.Report) string {
	switch {
	case report.Err != nil:
		return "failed"
	case report.Changed:
		return "changed"
	default:
		return "unchanged"
	}
}
