package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpmtoolkit/ptest/internal/checklog"
	"github.com/rpmtoolkit/ptest/internal/config"
	"github.com/rpmtoolkit/ptest/internal/discovery"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [test-log ...]",
		Short: "List discovered package test logs with their status",
		RunE:  runList,
	}
}

// listEntry is one discovered test log with its quick classification.
type listEntry struct {
	Log     string  `json:"log"`
	Package string  `json:"package"`
	Version string  `json:"version"`
	Status  string  `json:"status"`
	Time    float64 `json:"time"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd, cfg)
	logDir := cfg.ResolvedLogDir()

	paths, err := discovery.TestLogs(logDir, args)
	if err != nil {
		if errors.Is(err, discovery.ErrNoTestLogs) {
			fmt.Fprintln(cmd.OutOrStdout(), "No test logs found")
			return nil
		}
		return err
	}

	scanner := checklog.NewScanner(log)
	entries := make([]listEntry, 0, len(paths))
	for _, path := range paths {
		pkg, err := checklog.ParseLogName(path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open test log: %w", err)
		}
		result, err := scanner.Scan(f)
		f.Close()
		if err != nil {
			return err
		}

		entries = append(entries, listEntry{
			Log:     filepath.Base(path),
			Package: pkg.Name,
			Version: pkg.Version,
			Status:  result.Status.String(),
			Time:    checklog.ElapsedSeconds(result.Start, result.End),
		})
	}

	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", e.Package, e.Version, e.Status)
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}
