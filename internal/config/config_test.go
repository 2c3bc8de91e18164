package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpmtoolkit/ptest/internal/logger"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ToolkitDir != "." {
		t.Fatalf("unexpected toolkit dir %q", cfg.ToolkitDir)
	}
	if cfg.SuiteName != DefaultSuiteName {
		t.Fatalf("unexpected suite name %q", cfg.SuiteName)
	}
	if cfg.Format != FormatPretty {
		t.Fatalf("unexpected format %q", cfg.Format)
	}
	if cfg.Logger != logger.KindStd {
		t.Fatalf("unexpected logger %q", cfg.Logger)
	}
	if !cfg.Sudo {
		t.Fatalf("sudo must default on")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != FormatPretty {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMergesFile(t *testing.T) {
	root := t.TempDir()
	contents := strings.Join([]string{
		"toolkit_dir: /repo/toolkit",
		"suite_name: Nightly Package Tests",
		"format: json",
		"logger: ado",
		"specs:",
		"  - zlib",
		"  - bash",
		"verbose: true",
	}, "\n")
	if err := os.WriteFile(filepath.Join(root, ".ptest.yml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ToolkitDir != "/repo/toolkit" {
		t.Fatalf("toolkit dir not merged: %q", cfg.ToolkitDir)
	}
	if cfg.SuiteName != "Nightly Package Tests" {
		t.Fatalf("suite name not merged: %q", cfg.SuiteName)
	}
	if cfg.Format != FormatJSON {
		t.Fatalf("format not merged: %q", cfg.Format)
	}
	if cfg.Logger != logger.KindADO {
		t.Fatalf("logger not merged: %q", cfg.Logger)
	}
	if len(cfg.Specs) != 2 || cfg.Specs[0] != "zlib" {
		t.Fatalf("specs not merged: %v", cfg.Specs)
	}
	if !cfg.Verbose {
		t.Fatalf("verbose not merged")
	}
}

func TestLoadBadYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".ptest.yml"), []byte("format: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(root); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := Default()
	ApplyFlags(&cfg, FlagValues{
		LogDir:    StringFlag{Value: "/logs", Set: true},
		Format:    StringFlag{Value: FormatJSON, Set: true},
		ADOLogger: BoolFlag{Value: true, Set: true},
		Specs:     SliceFlag{Values: []string{"zlib"}},
		Jobs:      IntFlag{Value: 4, Set: true},
		NoSudo:    BoolFlag{Value: true, Set: true},
	})

	if cfg.LogDir != "/logs" {
		t.Fatalf("log dir not applied: %q", cfg.LogDir)
	}
	if cfg.Format != FormatJSON {
		t.Fatalf("format not applied: %q", cfg.Format)
	}
	if cfg.Logger != logger.KindADO {
		t.Fatalf("logger not applied: %q", cfg.Logger)
	}
	if len(cfg.Specs) != 1 {
		t.Fatalf("specs not applied: %v", cfg.Specs)
	}
	if cfg.Jobs != 4 {
		t.Fatalf("jobs not applied: %d", cfg.Jobs)
	}
	if cfg.Sudo {
		t.Fatalf("no-sudo not applied")
	}
}

func TestApplyFlagsUnsetLeavesConfig(t *testing.T) {
	cfg := Default()
	cfg.Format = FormatJSON

	ApplyFlags(&cfg, FlagValues{})

	if cfg.Format != FormatJSON {
		t.Fatalf("unset flag overwrote config: %q", cfg.Format)
	}
	if !cfg.Sudo {
		t.Fatalf("unset no-sudo flipped sudo")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	bad := Default()
	bad.Format = "xml"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected format error")
	}

	bad = Default()
	bad.Logger = "syslog"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected logger error")
	}
}

func TestValidateOutputPaths(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.OutputJUnitXML = filepath.Join(dir, "report.xml")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("existing directory must validate: %v", err)
	}

	cfg.OutputJUnitXML = filepath.Join(dir, "missing", "report.xml")
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error for missing output directory")
	}
	if !strings.Contains(err.Error(), "junit xml output directory") {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg = Default()
	cfg.OutputMarkdown = filepath.Join(dir, "missing", "report.md")
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing markdown directory")
	}
}

func TestResolvedPaths(t *testing.T) {
	cfg := Default()
	cfg.ToolkitDir = "/repo/toolkit"

	if got := cfg.ResolvedLogDir(); got != filepath.Join("/repo/toolkit", "..", "build", "logs", "pkggen", "rpmbuilding") {
		t.Fatalf("unexpected log dir %q", got)
	}
	if got := cfg.ResolvedResultsPath(); got != filepath.Join("/repo/toolkit", "..", "build", "pkg_artifacts", "test_results.json") {
		t.Fatalf("unexpected results path %q", got)
	}

	cfg.LogDir = "/logs"
	cfg.ResultsPath = "/results.json"
	if cfg.ResolvedLogDir() != "/logs" {
		t.Fatalf("explicit log dir ignored")
	}
	if cfg.ResolvedResultsPath() != "/results.json" {
		t.Fatalf("explicit results path ignored")
	}
}
