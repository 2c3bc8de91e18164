package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpmtoolkit/ptest/internal/analyzer"
	"github.com/rpmtoolkit/ptest/internal/config"
	"github.com/rpmtoolkit/ptest/internal/discovery"
	"github.com/rpmtoolkit/ptest/internal/output"
	"github.com/rpmtoolkit/ptest/internal/report"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [test-log ...]",
		Short: "Scan package test logs and generate reports",
		RunE:  runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd, cfg)
	logDir := cfg.ResolvedLogDir()
	log.Logf("Analyzing tests results inside '%s'.", logDir)

	suite, err := analyzer.New(log).ScanLogs(logDir, args, cfg.SuiteName)
	if err != nil {
		if errors.Is(err, discovery.ErrNoTestLogs) {
			return fmt.Errorf("no test logs found in %q", logDir)
		}
		return err
	}

	if err := writeReports(cfg, suite); err != nil {
		return err
	}

	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		return output.NewPretty(cmd.OutOrStdout()).Render(suite)
	case config.FormatJSON:
		return output.NewJSON(cmd.OutOrStdout()).Render(suite)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}

// writeReports emits the configured file reports for a scanned suite.
func writeReports(cfg config.Config, suite report.TestSuite) error {
	if cfg.OutputJUnitXML != "" {
		if err := writeReport(cfg.OutputJUnitXML, suite, func(f *os.File) suiteRenderer {
			return output.NewJUnit(f)
		}); err != nil {
			return err
		}
	}
	if cfg.OutputMarkdown != "" {
		if err := writeReport(cfg.OutputMarkdown, suite, func(f *os.File) suiteRenderer {
			return output.NewMarkdown(f)
		}); err != nil {
			return err
		}
	}
	return nil
}

type suiteRenderer interface {
	Render(report.TestSuite) error
}

func writeReport(path string, suite report.TestSuite, renderer func(*os.File) suiteRenderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %q: %w", path, err)
	}
	defer f.Close()

	if err := renderer(f).Render(suite); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write report %q: %w", path, err)
	}
	return nil
}
