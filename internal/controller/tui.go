package controller

import (
	"io"
	"os"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/respec/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
	config  StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, config: newStartConfig()}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	t.mu.Lock()
	t.config = newStartConfig(options...)
	cfg := t.config
	t.mu.Unlock()

	return t.startWithModel(t.modelFor(cfg))
}

func (t *TUI) modelFor(cfg StartConfig) tea.Model {
	width, height := t.terminalSize()

	switch cfg.mode {
	case ModeConvert:
		model := newConvertModel(cfg.dryRun)
		model.width, model.height = width, height

		return model
	case ModeView:
		model := newViewModel()
		model.width, model.height = width, height

		return model
	case ModeTargets:
		model := newTargetsModel()
		model.width, model.height = width, height

		return model
	default:
		model := newEstimateModel()
		model.width, model.height = width, height

		return model
	}
}

func (t *TUI) terminalSize() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return 80, 24
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output)}
	if IsTTY(t.output) {
		opts = append(opts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	} else {
		opts = append(opts, tea.WithInput(nil))
	}

	program := tea.NewProgram(model, opts...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	t.program = program
	t.done = done
	t.started = true

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	cfg := t.config
	t.mu.Unlock()

	if started {
		return
	}

	_ = t.startWithModel(t.modelFor(cfg))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and restores the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.started = false
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayEstimation shows the matcher count of every file.
func (t *TUI) DisplayEstimation(estimates []m.Estimate, err error) error {
	t.ensureStarted()

	if err != nil {
		t.send(estimationMsg{err: err})
		return err
	}

	files := make([]fileItem, 0, len(estimates))
	total := 0

	for _, estimate := range estimates {
		files = append(files, fileItem{
			path:  string(estimate.Source.Origin),
			count: estimate.Matchers,
			err:   estimate.Err,
		})
		total += estimate.Matchers
	}

	sort.Slice(files, func(i, j int) bool { return files[i].path < files[j].path })

	t.send(estimationMsg{total: total, files: files})

	return nil
}

// DisplayTargets lists the expressions that need runtime type information.
func (t *TUI) DisplayTargets(targets []m.Target, err error) error {
	t.ensureStarted()

	if err != nil {
		t.send(targetsMsg{err: err})
		return err
	}

	items := make([]fileItem, 0, len(targets))
	for _, target := range targets {
		items = append(items, fileItem{path: target.ID + "  " + target.Text, count: target.Line})
	}

	t.send(targetsMsg{targets: items})

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	t.ensureStarted()
	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shards: shardCount})
}

// DisplayUpcomingFilesInfo shows the number of files to be converted.
func (t *TUI) DisplayUpcomingFilesInfo(count int) {
	t.ensureStarted()
	t.send(upcomingMsg{count: count})
}

// DisplayStartingFileInfo marks a worker as busy with source.
func (t *TUI) DisplayStartingFileInfo(source m.Source, workerID int) {
	t.ensureStarted()
	t.send(startFileMsg{worker: workerID, path: string(source.Origin)})
}

// DisplayCompletedFileInfo adds the file to the results list.
func (t *TUI) DisplayCompletedFileInfo(report m.Report) {
	t.ensureStarted()
	t.send(completedFileMsg{report: report})
}

// DisplaySummary shows the applied conversions and switches to the results
// view.
func (t *TUI) DisplaySummary(reports []m.Report, records []m.RecordCount) error {
	t.ensureStarted()
	t.send(summaryMsg{reports: reports, records: records})

	return nil
}
