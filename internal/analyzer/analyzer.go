// Package analyzer turns a directory of package test logs into a test
// suite report.
package analyzer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpmtoolkit/ptest/internal/checklog"
	"github.com/rpmtoolkit/ptest/internal/discovery"
	"github.com/rpmtoolkit/ptest/internal/logger"
	"github.com/rpmtoolkit/ptest/internal/report"
)

// Case annotation messages carried into the reports.
const (
	failedMessage       = "TEST FAILED. CHECK ATTACHMENTS TAB FOR FAILURE LOG"
	skippedMessage      = "PACKAGE TEST SKIPPED"
	notSupportedMessage = "PACKAGE TEST NOT SUPPORTED"
)

// Analyzer scans package test logs and builds report test cases.
type Analyzer struct {
	log     logger.Logger
	scanner *checklog.Scanner
}

// New creates an Analyzer reporting progress and diagnostics through log.
func New(log logger.Logger) *Analyzer {
	return &Analyzer{
		log:     log,
		scanner: checklog.NewScanner(log),
	}
}

// ScanLogs discovers test logs under dir (or uses the explicit paths when
// provided) and classifies each one in turn, returning the assembled
// suite. Logs are processed sequentially; an unreadable log aborts the
// whole scan.
func (a *Analyzer) ScanLogs(dir string, explicit []string, suiteName string) (report.TestSuite, error) {
	suite := report.TestSuite{Name: suiteName}

	paths, err := discovery.TestLogs(dir, explicit)
	if err != nil {
		return suite, err
	}

	for i, path := range paths {
		a.log.GroupBegin(fmt.Sprintf("Processing : %s", filepath.Base(path)))
		a.log.Progress((i + 1) * 100 / len(paths))

		tc, err := a.scanLog(path, suiteName)
		if err != nil {
			a.log.GroupEnd()
			return suite, err
		}
		suite.Cases = append(suite.Cases, tc)

		a.log.GroupEnd()
	}

	return suite, nil
}

// ScanLog classifies a single test log.
func (a *Analyzer) ScanLog(path, suiteName string) (report.TestCase, error) {
	return a.scanLog(path, suiteName)
}

func (a *Analyzer) scanLog(path, suiteName string) (report.TestCase, error) {
	pkg, err := checklog.ParseLogName(path)
	if err != nil {
		return report.TestCase{}, err
	}
	a.log.Debugf("Package: %s  Version: %s", pkg.Name, pkg.Version)

	result, err := a.scanResult(path)
	if err != nil {
		return report.TestCase{}, err
	}

	elapsed := checklog.ElapsedSeconds(result.Start, result.End)
	a.log.Debugf("Package name: %s. Version: %s. Test status: %s. Duration: %g.",
		pkg.Name, pkg.Version, result.Status, elapsed)

	tc := report.TestCase{
		Name:       pkg.Name,
		Classname:  suiteName,
		Time:       elapsed,
		Status:     result.Status,
		StatusText: result.Status.String(),
	}

	switch result.Status {
	case checklog.StatusFail:
		tc.Message = failedMessage
		tc.Output, err = a.testOutput(path)
		if err != nil {
			return report.TestCase{}, err
		}
	case checklog.StatusSkipped:
		tc.Message = skippedMessage
	case checklog.StatusNotSupported:
		tc.Message = notSupportedMessage
	}

	return tc, nil
}

func (a *Analyzer) scanResult(path string) (checklog.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return checklog.Result{}, fmt.Errorf("open test log: %w", err)
	}
	defer f.Close()

	return a.scanner.Scan(f)
}

func (a *Analyzer) testOutput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open test log: %w", err)
	}
	defer f.Close()

	return a.scanner.TestOutput(f)
}
