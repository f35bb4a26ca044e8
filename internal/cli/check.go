package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/buildcheck/cmakecheck/internal/check"
	"github.com/buildcheck/cmakecheck/internal/cmake"
	"github.com/buildcheck/cmakecheck/internal/config"
	"github.com/buildcheck/cmakecheck/internal/errors"
)

// runParams are the fully resolved inputs for one verification run:
// settings file values overlaid with command-line flags.
type runParams struct {
	sourceDir  string
	configRoot string
	buildRoot  string
	generator  string
	defineVar  string
	extraArgs  []string
	toolHints  map[string]string
}

// resolveParams merges flags over settings and resolves paths. The config
// root is relative to the source tree, the build root to the working
// directory, matching where their contents conceptually live.
func resolveParams(opts *Options, settings *config.Settings) (*runParams, error) {
	sourceDir, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}

	configRoot := opts.ConfigRoot
	if configRoot == "" {
		configRoot = settings.ConfigRoot
	}
	if !filepath.IsAbs(configRoot) {
		configRoot = filepath.Join(sourceDir, configRoot)
	}

	buildRoot := opts.BuildRoot
	if buildRoot == "" {
		buildRoot = settings.BuildRoot
	}
	buildRoot, err = filepath.Abs(buildRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve build root: %w", err)
	}

	generator := opts.Generator
	if generator == "" {
		generator = settings.Generator
	}

	defineVar := opts.DefineVar
	if defineVar == "" {
		defineVar = settings.DefineVar
	}

	return &runParams{
		sourceDir:  sourceDir,
		configRoot: configRoot,
		buildRoot:  buildRoot,
		generator:  generator,
		defineVar:  defineVar,
		extraArgs:  settings.CmakeArgs,
		toolHints:  settings.ToolHints,
	}, nil
}

// runCheck is the top-level run routine: enumerate, verify preconditions,
// configure each config sequentially, then report.
func runCheck(ctx context.Context, opts *Options) int {
	settings, warnings, err := config.Discover(opts.SourceDir)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	for _, w := range warnings {
		out.Warning("%s", w)
	}

	params, err := resolveParams(opts, settings)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	tool := cmake.NewWithWriter(params.sourceDir, out.Stream())
	tool.SetVerbose(opts.Verbose)

	// Fail fast on a forced generator before touching any config.
	if params.generator != "" {
		caps := tool.Capabilities(ctx)
		if err := cmake.CheckGenerator(params.generator, caps, params.toolHints); err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
	}

	configs, err := check.ListConfigs(params.configRoot, opts.Configs)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	if len(configs) == 0 {
		out.Errorln("No configuration files found")
		return errors.ExitFailure
	}

	if err := check.PrepareBuildRoot(params.buildRoot, opts.Clean); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if v := tool.Version(ctx); v != "" {
		out.Verbose("%s", v)
	}
	out.Info("Testing %d configurations...", len(configs))

	session := cmake.NewSession(tool, cmake.SessionOptions{
		BuildRoot: params.buildRoot,
		DefineVar: params.defineVar,
		Generator: params.generator,
		ExtraArgs: params.extraArgs,
	})

	runner := check.NewRunner(session, out)
	summary, err := runner.Run(ctx, configs)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	printSummary(summary)

	if opts.Report != "" {
		if err := check.WriteReport(opts.Report, summary); err != nil {
			out.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		out.Info("Report written to %s", opts.Report)
	}

	if !summary.AllPassed() {
		return errors.ExitFailure
	}
	return errors.ExitSuccess
}

// printSummary prints the aggregated run outcome.
func printSummary(summary *check.Summary) {
	out.SummaryHeader("Summary")

	out.SummaryItem("Total", fmt.Sprintf("%d", summary.Total()))
	out.SummaryPassed("Succeeded", fmt.Sprintf("%d", summary.Passed()))
	if names := summary.Succeeded(); len(names) > 0 {
		out.List(names)
	}
	out.SummaryFailed("Failed", fmt.Sprintf("%d", summary.Failed()))
	if names := summary.FailedNames(); len(names) > 0 {
		out.List(names)
	}

	if summary.AllPassed() {
		out.FinalSuccess("All %d configurations configured successfully.", summary.Total())
		return
	}

	out.FinalFailure("%d of %d configurations failed to configure.", summary.Failed(), summary.Total())
	out.Println("")
	out.Hint("The failing configurations typically require vendor-specific toolchains")
	out.Hint("or environment variables. Inspect the output above for details.")
}
