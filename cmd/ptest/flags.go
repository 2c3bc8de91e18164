package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpmtoolkit/ptest/internal/config"
	"github.com/rpmtoolkit/ptest/internal/logger"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("toolkit-dir") {
		v, err := flags.GetString("toolkit-dir")
		if err != nil {
			return values, fmt.Errorf("parse --toolkit-dir: %w", err)
		}
		values.ToolkitDir = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("log-dir") {
		v, err := flags.GetString("log-dir")
		if err != nil {
			return values, fmt.Errorf("parse --log-dir: %w", err)
		}
		values.LogDir = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("results") {
		v, err := flags.GetString("results")
		if err != nil {
			return values, fmt.Errorf("parse --results: %w", err)
		}
		values.ResultsPath = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("suite-name") {
		v, err := flags.GetString("suite-name")
		if err != nil {
			return values, fmt.Errorf("parse --suite-name: %w", err)
		}
		values.SuiteName = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return values, fmt.Errorf("parse --format: %w", err)
		}
		values.Format = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("output-junit-xml") {
		v, err := flags.GetString("output-junit-xml")
		if err != nil {
			return values, fmt.Errorf("parse --output-junit-xml: %w", err)
		}
		values.OutputJUnitXML = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("output-md") {
		v, err := flags.GetString("output-md")
		if err != nil {
			return values, fmt.Errorf("parse --output-md: %w", err)
		}
		values.OutputMarkdown = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("spec") {
		v, err := flags.GetStringArray("spec")
		if err != nil {
			return values, fmt.Errorf("parse --spec: %w", err)
		}
		values.Specs = config.SliceFlag{Values: append([]string{}, v...)}
	}

	if flags.Changed("only") {
		v, err := flags.GetStringArray("only")
		if err != nil {
			return values, fmt.Errorf("parse --only: %w", err)
		}
		values.Only = config.SliceFlag{Values: append([]string{}, v...)}
	}

	if flags.Changed("skip") {
		v, err := flags.GetStringArray("skip")
		if err != nil {
			return values, fmt.Errorf("parse --skip: %w", err)
		}
		values.Skip = config.SliceFlag{Values: append([]string{}, v...)}
	}

	if flags.Changed("jobs") {
		v, err := flags.GetInt("jobs")
		if err != nil {
			return values, fmt.Errorf("parse --jobs: %w", err)
		}
		values.Jobs = config.IntFlag{Value: v, Set: true}
	}

	if flags.Changed("ado-logger") {
		v, err := flags.GetBool("ado-logger")
		if err != nil {
			return values, fmt.Errorf("parse --ado-logger: %w", err)
		}
		values.ADOLogger = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return values, fmt.Errorf("parse --verbose: %w", err)
		}
		values.Verbose = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("dry-run") {
		v, err := flags.GetBool("dry-run")
		if err != nil {
			return values, fmt.Errorf("parse --dry-run: %w", err)
		}
		values.DryRun = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("no-sudo") {
		v, err := flags.GetBool("no-sudo")
		if err != nil {
			return values, fmt.Errorf("parse --no-sudo: %w", err)
		}
		values.NoSudo = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("report-last-results-only") {
		v, err := flags.GetBool("report-last-results-only")
		if err != nil {
			return values, fmt.Errorf("parse --report-last-results-only: %w", err)
		}
		values.ReportLastResultsOnly = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyFlags(&cfg, flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) logger.Logger {
	if cfg.Logger == logger.KindADO {
		return logger.NewADO(cmd.OutOrStdout(), "")
	}
	return logger.NewStd(cmd.ErrOrStderr(), cfg.Verbose)
}
