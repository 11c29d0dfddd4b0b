// Package cmd provides the root command and CLI setup for respec.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/respec/internal/adapter"
	"github.com/mouse-blink/respec/internal/config"
	"github.com/mouse-blink/respec/internal/controller"
	"github.com/mouse-blink/respec/internal/domain"
	m "github.com/mouse-blink/respec/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var rubyParser adapter.RubyParser
var runtimeDataStore adapter.RuntimeDataStore
var reportStore adapter.ReportStore
var converter domain.Converter
var workflow domain.Workflow
var ui controller.UI

var logLevel = new(slog.LevelVar)
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	rubyParser = adapter.NewTreeSitterRubyParser()
	runtimeDataStore = adapter.NewJSONRuntimeDataStore()
	reportStore = adapter.NewReportStore()
	converter = domain.NewConverter()
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		rubyParser,
		runtimeDataStore,
		reportStore,
		ui,
		converter,
		logger,
	)
}

// defaultSpecRoot is converted when no path is given.
const defaultSpecRoot = "spec/..."

var configFlag string
var verboseFlag bool
var reportsFlag string
var excludeFlags []string

var noParenthesesFlag bool
var parallelFlag int
var runtimeDataFlag string
var dryRunFlag bool
var shardFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "respec [paths...]",
		Short: "Convert RSpec operator matchers to explicit matchers",
		Long: `Respec rewrites RSpec expectations written with operator matchers
into their explicit matcher form:

  actual.should == expected   ->  actual.should eq(expected)
  actual.should < expected    ->  actual.should be < expected
  actual.should =~ /pattern/  ->  actual.should match(/pattern/)
  actual.should =~ [1, 2]     ->  actual.should match_array([1, 2])

Paths default to spec/... and support recursive patterns:
  - spec/...          recursively scan the spec directory
  - spec/models       scan one directory
  - spec/a_spec.rb    convert a single file`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: runConvert,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default .respec.yaml in the working or home directory)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log per-file details")
	cmd.PersistentFlags().StringVar(&reportsFlag, "reports", config.DefaultReports, "directory of per-file conversion reports")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	addConvertFlags(cmd)

	return cmd
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&noParenthesesFlag, "no-parentheses-matcher-arg", "p", false, "write `eq 1` instead of `eq(1)`")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "j", config.DefaultParallel, "number of files converted in parallel")
	cmd.Flags().StringVarP(&runtimeDataFlag, "runtime-data", "r", "", "JSON file with runtime observations of dynamic analysis targets")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "show diffs without writing files")
	cmd.Flags().StringVarP(&shardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	shardIndex, totalShards := parseShardFlag(shardFlag)

	return workflow.Convert(cmd.Context(), domain.ConvertArgs{
		EstimateArgs: domain.EstimateArgs{
			Paths:   parsePaths(args),
			Exclude: cfg.Exclude,
		},
		Reports:                m.Path(cfg.Reports),
		Parallel:               cfg.Parallel,
		ParenthesizeMatcherArg: cfg.ParenthesizeMatcherArg,
		RuntimeData:            m.Path(cfg.RuntimeData),
		DryRun:                 cfg.DryRun,
		ShardIndex:             shardIndex,
		TotalShardCount:        totalShards,
	})
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("reports") {
		cfg.Reports = reportsFlag
	}

	if flags.Changed("exclude") {
		cfg.Exclude = excludeFlags
	}

	if flags.Changed("no-parentheses-matcher-arg") {
		cfg.ParenthesizeMatcherArg = !noParenthesesFlag
	}

	if flags.Changed("parallel") {
		cfg.Parallel = parallelFlag
	}

	if flags.Changed("runtime-data") {
		cfg.RuntimeData = runtimeDataFlag
	}

	if flags.Changed("dry-run") {
		cfg.DryRun = dryRunFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	logger.Debug("configuration loaded",
		"parallel", cfg.Parallel,
		"reports", cfg.Reports,
		"runtime_data", cfg.RuntimeData,
		"dry_run", cfg.DryRun,
	)

	return cfg, nil
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{defaultSpecRoot}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
