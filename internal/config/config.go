// Package config captures CLI options sourced from config files or flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rpmtoolkit/ptest/internal/logger"
)

// Config holds every option the ptest commands consume.
type Config struct {
	// ToolkitDir is the directory holding the toolkit Makefile.
	ToolkitDir string `yaml:"toolkit_dir"`
	// LogDir is where the build system writes package test logs; empty
	// means the conventional location under the build tree.
	LogDir string `yaml:"log_dir"`
	// ResultsPath is the orchestrator's test results JSON file; empty
	// means the conventional location under the build tree.
	ResultsPath string `yaml:"results_path"`

	SuiteName string `yaml:"suite_name"`
	Format    string `yaml:"format"`
	Logger    string `yaml:"logger"`

	OutputJUnitXML string `yaml:"output_junit_xml"`
	OutputMarkdown string `yaml:"output_md"`

	Specs []string `yaml:"specs"`
	Only  []string `yaml:"only"`
	Skip  []string `yaml:"skip"`

	Jobs                  int  `yaml:"jobs"`
	Verbose               bool `yaml:"verbose"`
	DryRun                bool `yaml:"dry_run"`
	ReportLastResultsOnly bool `yaml:"report_last_results_only"`

	// Sudo wraps the make invocation in sudo. Defaults on; the toolkit
	// build needs root.
	Sudo bool `yaml:"-"`
}

const (
	// FormatPretty renders human readable output.
	FormatPretty = "pretty"
	// FormatJSON renders machine readable output.
	FormatJSON = "json"

	// DefaultSuiteName names the report test suite when nothing else is
	// configured.
	DefaultSuiteName = "Package Tests"

	configFileName = ".ptest.yml"
)

// Default returns the baseline configuration used when no flags or config
// file specify values.
func Default() Config {
	return Config{
		ToolkitDir: ".",
		SuiteName:  DefaultSuiteName,
		Format:     FormatPretty,
		Logger:     logger.KindStd,
		Sudo:       true,
	}
}

// Load reads .ptest.yml from root when present. Missing files are
// ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, configFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	return merge(cfg, fileCfg), nil
}

func merge(base, override Config) Config {
	out := base

	if override.ToolkitDir != "" {
		out.ToolkitDir = override.ToolkitDir
	}
	if override.LogDir != "" {
		out.LogDir = override.LogDir
	}
	if override.ResultsPath != "" {
		out.ResultsPath = override.ResultsPath
	}
	if override.SuiteName != "" {
		out.SuiteName = override.SuiteName
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Logger != "" {
		out.Logger = override.Logger
	}
	if override.OutputJUnitXML != "" {
		out.OutputJUnitXML = override.OutputJUnitXML
	}
	if override.OutputMarkdown != "" {
		out.OutputMarkdown = override.OutputMarkdown
	}
	if len(override.Specs) > 0 {
		out.Specs = append([]string{}, override.Specs...)
	}
	if len(override.Only) > 0 {
		out.Only = append([]string{}, override.Only...)
	}
	if len(override.Skip) > 0 {
		out.Skip = append([]string{}, override.Skip...)
	}
	if override.Jobs > 0 {
		out.Jobs = override.Jobs
	}
	if override.Verbose {
		out.Verbose = true
	}
	if override.DryRun {
		out.DryRun = true
	}
	if override.ReportLastResultsOnly {
		out.ReportLastResultsOnly = true
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are
// present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.ToolkitDir.Set {
		cfg.ToolkitDir = flags.ToolkitDir.Value
	}
	if flags.LogDir.Set {
		cfg.LogDir = flags.LogDir.Value
	}
	if flags.ResultsPath.Set {
		cfg.ResultsPath = flags.ResultsPath.Value
	}
	if flags.SuiteName.Set {
		cfg.SuiteName = flags.SuiteName.Value
	}
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if flags.ADOLogger.Set && flags.ADOLogger.Value {
		cfg.Logger = logger.KindADO
	}
	if flags.OutputJUnitXML.Set {
		cfg.OutputJUnitXML = flags.OutputJUnitXML.Value
	}
	if flags.OutputMarkdown.Set {
		cfg.OutputMarkdown = flags.OutputMarkdown.Value
	}
	if len(flags.Specs.Values) > 0 {
		cfg.Specs = append([]string{}, flags.Specs.Values...)
	}
	if len(flags.Only.Values) > 0 {
		cfg.Only = append([]string{}, flags.Only.Values...)
	}
	if len(flags.Skip.Values) > 0 {
		cfg.Skip = append([]string{}, flags.Skip.Values...)
	}
	if flags.Jobs.Set {
		cfg.Jobs = flags.Jobs.Value
	}
	if flags.Verbose.Set {
		cfg.Verbose = flags.Verbose.Value
	}
	if flags.DryRun.Set {
		cfg.DryRun = flags.DryRun.Value
	}
	if flags.ReportLastResultsOnly.Set {
		cfg.ReportLastResultsOnly = flags.ReportLastResultsOnly.Value
	}
	if flags.NoSudo.Set {
		cfg.Sudo = !flags.NoSudo.Value
	}
}

// Validate surfaces configuration errors before any work starts. Output
// paths in particular are checked up front: a bad report destination used
// to go unnoticed until after a full test run.
func (c Config) Validate() error {
	switch c.Format {
	case FormatPretty, FormatJSON:
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}

	switch c.Logger {
	case logger.KindADO, logger.KindStd:
	default:
		return fmt.Errorf("unsupported logger %q", c.Logger)
	}

	if err := validateOutputPath("junit xml", c.OutputJUnitXML); err != nil {
		return err
	}
	if err := validateOutputPath("markdown", c.OutputMarkdown); err != nil {
		return err
	}

	return nil
}

func validateOutputPath(label, path string) error {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s output directory %q does not exist", label, dir)
		}
		return fmt.Errorf("stat %s output directory %q: %w", label, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s output directory %q is not a directory", label, dir)
	}
	return nil
}

// ResolvedLogDir returns the configured log directory, defaulting to the
// build tree location next to the toolkit.
func (c Config) ResolvedLogDir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return filepath.Join(c.ToolkitDir, "..", "build", "logs", "pkggen", "rpmbuilding")
}

// ResolvedResultsPath returns the configured test results file, defaulting
// to the build tree location next to the toolkit.
func (c Config) ResolvedResultsPath() string {
	if c.ResultsPath != "" {
		return c.ResultsPath
	}
	return filepath.Join(c.ToolkitDir, "..", "build", "pkg_artifacts", "test_results.json")
}

// FlagValues captures CLI flag state with knowledge of whether each flag
// was set explicitly.
type FlagValues struct {
	ToolkitDir            StringFlag
	LogDir                StringFlag
	ResultsPath           StringFlag
	SuiteName             StringFlag
	Format                StringFlag
	OutputJUnitXML        StringFlag
	OutputMarkdown        StringFlag
	Specs                 SliceFlag
	Only                  SliceFlag
	Skip                  SliceFlag
	Jobs                  IntFlag
	ADOLogger             BoolFlag
	Verbose               BoolFlag
	DryRun                BoolFlag
	NoSudo                BoolFlag
	ReportLastResultsOnly BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// SliceFlag represents a slice flag and whether it captured values via
// CLI.
type SliceFlag struct {
	Values []string
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}

// IntFlag represents an int flag and whether it was set.
type IntFlag struct {
	Value int
	Set   bool
}
