package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/respec/internal/adapter"
	"github.com/mouse-blink/respec/internal/controller"
	m "github.com/mouse-blink/respec/internal/model"
	"github.com/mouse-blink/respec/internal/syntax"
)

// ErrConversionFailed is returned by Convert when at least one file could
// not be converted. The other files are still processed.
var ErrConversionFailed = errors.New("conversion failed")

// EstimateArgs selects the spec files to work on.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ConvertArgs configures a conversion run.
type ConvertArgs struct {
	EstimateArgs
	Reports                m.Path
	Parallel               int
	ParenthesizeMatcherArg bool
	RuntimeData            m.Path
	DryRun                 bool
	ShardIndex             int
	TotalShardCount        int
}

// ViewArgs selects stored reports to display.
type ViewArgs struct {
	Reports m.Path
}

// CleanArgs selects stored reports to delete. With no paths every report
// is deleted.
type CleanArgs struct {
	EstimateArgs
	Reports m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Convert(ctx context.Context, args ConvertArgs) error
	Targets(ctx context.Context, args EstimateArgs) error
	View(args ViewArgs) error
	Clean(args CleanArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	parser      adapter.RubyParser
	runtimeData adapter.RuntimeDataStore
	reportStore adapter.ReportStore
	ui          controller.UI
	converter   Converter
	log         *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// A nil logger falls back to slog.Default.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	parser adapter.RubyParser,
	runtimeData adapter.RuntimeDataStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	converter Converter,
	log *slog.Logger,
) Workflow {
	if log == nil {
		log = slog.Default()
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		parser:      parser,
		runtimeData: runtimeData,
		reportStore: reportStore,
		ui:          ui,
		converter:   converter,
		log:         log,
	}
}

// Estimate counts the operator matchers of every selected file.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	sources, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	estimates := make([]m.Estimate, 0, len(sources))

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		estimate := m.Estimate{Source: source}

		tree, err := w.parse(ctx, source)
		if err != nil {
			w.log.Warn("skipping file", "path", source.Origin, "err", err)
			estimate.Err = err
		} else {
			estimate.Matchers = w.converter.CountOperatorMatchers(tree)
		}

		estimates = append(estimates, estimate)
	}

	if err := w.ui.DisplayEstimation(estimates, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Targets lists the expressions whose conversion depends on runtime types.
func (w *workflow) Targets(ctx context.Context, args EstimateArgs) error {
	sources, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	if err := w.ui.Start(controller.WithTargetsMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	var targets []m.Target

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		tree, err := w.parse(ctx, source)
		if err != nil {
			w.log.Warn("skipping file", "path", source.Origin, "err", err)

			continue
		}

		targets = append(targets, w.converter.Targets(tree, source)...)
	}

	if err := w.ui.DisplayTargets(targets, nil); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Convert rewrites the selected files in parallel and stores one report per
// file. Files that fail are reported and left untouched.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	sources, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	shardIndex, shardCount := args.ShardIndex, max(args.TotalShardCount, 1)
	sources = ShardSources(sources, shardIndex, shardCount)

	oracle, err := w.runtimeData.Load(args.RuntimeData)
	if err != nil {
		return fmt.Errorf("load runtime data: %w", err)
	}

	w.log.Debug("runtime data loaded", "path", args.RuntimeData, "observations", oracle.Len())

	threads := max(args.Parallel, 1)

	if err := w.ui.Start(controller.WithConvertMode(args.DryRun)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads, shardIndex, shardCount)
	w.ui.DisplayUpcomingFilesInfo(len(sources))

	reports, err := w.convertAll(ctx, sources, oracle, args, threads)
	if err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		if err := w.reportStore.RegenerateIndex(args.Reports); err != nil {
			return fmt.Errorf("regenerate index: %w", err)
		}
	}

	if err := w.ui.DisplaySummary(reports, SummarizeRecords(reports)); err != nil {
		return err
	}

	w.ui.Wait()

	failed := 0

	for _, report := range reports {
		if report.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed, failed, len(reports))
	}

	return nil
}

// View displays the summary of stored reports.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.ui.DisplaySummary(reports, SummarizeRecords(reports)); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Clean deletes stored reports and regenerates the report index.
func (w *workflow) Clean(args CleanArgs) error {
	var sources []m.Source

	if len(args.Paths) > 0 {
		selected, err := w.fsAdapter.Get(args.Paths, args.Exclude)
		if err != nil {
			return fmt.Errorf("get sources: %w", err)
		}

		// nil sources would clean every report
		if len(selected) == 0 {
			return nil
		}

		sources = selected
	}

	if err := w.reportStore.CleanReports(args.Reports, sources); err != nil {
		return fmt.Errorf("clean reports: %w", err)
	}

	w.log.Info("reports cleaned", "path", args.Reports, "files", len(sources))

	return nil
}

func (w *workflow) convertAll(ctx context.Context, sources []m.Source, oracle Oracle, args ConvertArgs, threads int) ([]m.Report, error) {
	reports := make([]m.Report, len(sources))

	workerIDs := make(chan int, threads)
	for id := range threads {
		workerIDs <- id
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			id := <-workerIDs
			defer func() { workerIDs <- id }()

			w.ui.DisplayStartingFileInfo(source, id)

			report := w.convertSource(gctx, source, oracle, args)
			reports[i] = report

			w.ui.DisplayCompletedFileInfo(report)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (w *workflow) convertSource(ctx context.Context, source m.Source, oracle Oracle, args ConvertArgs) m.Report {
	report := m.Report{Source: source}

	content, err := w.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		report.Err = fmt.Errorf("read %s: %w", source.Origin, err)

		return report
	}

	tree, err := w.parser.Parse(ctx, string(source.Origin), content)
	if err != nil {
		w.log.Warn("skipping file", "path", source.Origin, "err", err)
		report.Err = err

		return report
	}

	conversion, err := w.converter.Convert(tree, ConvertOptions{
		ParenthesizeMatcherArg: args.ParenthesizeMatcherArg,
		Oracle:                 oracle,
	})
	if err != nil {
		w.log.Warn("skipping file", "path", source.Origin, "err", err)
		report.Err = err

		return report
	}

	report.Records = conversion.Records
	report.Changed = conversion.Changed

	if conversion.Changed {
		report.Diff = UnifiedDiff(string(source.Origin), string(content), conversion.Text)

		if !args.DryRun {
			if err := w.fsAdapter.WriteFile(source.Origin, []byte(conversion.Text)); err != nil {
				report.Err = fmt.Errorf("write %s: %w", source.Origin, err)

				return report
			}
		}
	}

	w.log.Debug("converted file", "path", source.Origin, "records", len(report.Records), "changed", report.Changed)

	return report
}

func (w *workflow) parse(ctx context.Context, source m.Source) (*syntax.Tree, error) {
	content, err := w.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source.Origin, err)
	}

	return w.parser.Parse(ctx, string(source.Origin), content)
}
