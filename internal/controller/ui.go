// Package controller renders conversion progress and results.
package controller

import (
	m "github.com/mouse-blink/respec/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeConvert
	ModeTargets
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	dryRun bool
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithConvertMode sets the UI to conversion mode. A dry run shows diffs
// instead of reporting written files.
func WithConvertMode(dryRun bool) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeConvert
		c.dryRun = dryRun
	}
}

// WithTargetsMode sets the UI to dynamic analysis target listing.
func WithTargetsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTargets
	}
}

// WithViewMode sets the UI to display stored reports.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeEstimate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how the workflow reports what it does.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayEstimation(estimates []m.Estimate, err error) error
	DisplayTargets(targets []m.Target, err error) error
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	DisplayUpcomingFilesInfo(count int)
	DisplayStartingFileInfo(source m.Source, workerID int)
	DisplayCompletedFileInfo(report m.Report)
	DisplaySummary(reports []m.Report, records []m.RecordCount) error
}
