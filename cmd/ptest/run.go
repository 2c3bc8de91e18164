package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpmtoolkit/ptest/internal/config"
	"github.com/rpmtoolkit/ptest/internal/results"
	"github.com/rpmtoolkit/ptest/internal/runner"
	"github.com/rpmtoolkit/ptest/internal/specfilter"
	"github.com/rpmtoolkit/ptest/internal/toolchain"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run package tests through the toolkit and report results",
		RunE:  runExecute,
	}

	flags := cmd.Flags()
	flags.StringArrayP("spec", "s", nil, "names of specs to run tests for (repeatable)")
	flags.String("results", "", "path to the test results JSON file")
	flags.StringArray("only", nil, "report only matching components")
	flags.StringArray("skip", nil, "exclude matching components from the report")
	flags.IntP("jobs", "j", 0, "make parallelism (defaults to CPU count)")
	flags.Bool("dry-run", false, "print the make command without executing it")
	flags.Bool("no-sudo", false, "invoke make without sudo")
	flags.Bool("report-last-results-only", false, "report the last test results without re-running tests")

	return cmd
}

func runExecute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd, cfg)

	if err := toolchain.ValidateToolkitDir(cfg.ToolkitDir); err != nil {
		return err
	}
	warnPrereqs(cmd)

	if cfg.ReportLastResultsOnly {
		log.Log("reporting last test results only; skipping build/test")
	} else {
		done, err := runBuild(cmd, cfg)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
	}

	return reportResults(cmd, cfg)
}

// runBuild invokes the toolkit make target. It returns false when the
// invocation was a dry run and there is nothing to report.
func runBuild(cmd *cobra.Command, cfg config.Config) (bool, error) {
	if len(cfg.Specs) == 0 {
		return false, fmt.Errorf("no specs provided")
	}

	logLevel := "warn"
	if cfg.Verbose {
		logLevel = "info"
	}

	r := runner.New(runner.Options{
		ToolkitDir: cfg.ToolkitDir,
		Specs:      cfg.Specs,
		Jobs:       cfg.Jobs,
		LogLevel:   logLevel,
		Sudo:       cfg.Sudo,
		DryRun:     cfg.DryRun,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})

	elapsed, err := r.Run(cmd.Context())
	if err != nil {
		return false, err
	}
	if cfg.DryRun {
		return false, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ran tests in %.2fs.\n", elapsed.Seconds())
	return true, nil
}

func reportResults(cmd *cobra.Command, cfg config.Config) error {
	records, err := results.Load(cfg.ResolvedResultsPath())
	if err != nil {
		return err
	}

	records, err = filterRecords(records, cfg)
	if err != nil {
		return err
	}

	reporters := []results.Reporter{results.NewReadable(cmd.OutOrStdout(), true)}

	var markdownFile *os.File
	if cfg.OutputMarkdown != "" {
		markdownFile, err = os.Create(cfg.OutputMarkdown)
		if err != nil {
			return fmt.Errorf("create report %q: %w", cfg.OutputMarkdown, err)
		}
		defer markdownFile.Close()
		reporters = append(reporters, results.NewMarkdown(markdownFile))
	}

	tally := results.Report(records, reporters)

	if markdownFile != nil {
		if err := markdownFile.Close(); err != nil {
			return fmt.Errorf("write report %q: %w", cfg.OutputMarkdown, err)
		}
	}

	tally.WriteSummary(cmd.OutOrStdout())

	if tally.Failed() {
		return fmt.Errorf("one or more tests were failed or blocked")
	}
	return nil
}

func filterRecords(records map[string]results.Record, cfg config.Config) (map[string]results.Record, error) {
	if len(cfg.Only) == 0 && len(cfg.Skip) == 0 {
		return records, nil
	}

	only, err := specfilter.Compile(cfg.Only)
	if err != nil {
		return nil, err
	}
	skip, err := specfilter.Compile(cfg.Skip)
	if err != nil {
		return nil, err
	}

	filtered := make(map[string]results.Record, len(records))
	for name, rec := range records {
		if specfilter.Selected(name, only, skip) {
			filtered[name] = rec
		}
	}
	return filtered, nil
}

// warnPrereqs checks the build tools the toolkit shells out to. Missing or
// unparsable versions are warnings only; the toolkit itself gives the
// authoritative failure.
func warnPrereqs(cmd *cobra.Command) {
	checks := []func() (toolchain.Info, error){
		toolchain.DetectMake,
		toolchain.DetectRPMBuild,
	}
	names := []string{"make", "rpmbuild"}

	for i, detect := range checks {
		if _, err := detect(); err != nil {
			if toolchain.Missing(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s executable not found\n", names[i])
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: unable to detect %s version: %v\n", names[i], err)
		}
	}
}
