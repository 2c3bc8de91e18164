// Package toolchain checks the host tools the package test build depends
// on.
package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// Info captures a build tool installed on the system.
type Info struct {
	Name    string
	Version string
}

var (
	makeRegex     = regexp.MustCompile(`(?i)gnu make\s+(\d+\.\d+(?:\.\d+)?)`)
	rpmbuildRegex = regexp.MustCompile(`(?i)rpm[^\d]*(\d+\.\d+(?:\.\d+)?)`)
)

// DetectMake returns the system make version by calling `make --version`.
func DetectMake() (Info, error) {
	out, err := runCommand("make", "--version")
	if err != nil {
		return Info{}, err
	}
	match := makeRegex.FindStringSubmatch(out)
	if len(match) < 2 {
		return Info{}, fmt.Errorf("unable to parse make version from %q", firstLine(out))
	}
	return Info{Name: "make", Version: match[1]}, nil
}

// DetectRPMBuild returns the system rpmbuild version by calling
// `rpmbuild --version`.
func DetectRPMBuild() (Info, error) {
	out, err := runCommand("rpmbuild", "--version")
	if err != nil {
		return Info{}, err
	}
	match := rpmbuildRegex.FindStringSubmatch(out)
	if len(match) < 2 {
		return Info{}, fmt.Errorf("unable to parse rpmbuild version from %q", firstLine(out))
	}
	return Info{Name: "rpmbuild", Version: match[1]}, nil
}

// Missing reports whether executing the command returned a not-found
// error.
func Missing(cmdErr error) bool {
	return errors.Is(cmdErr, exec.ErrNotFound)
}

// ValidateToolkitDir verifies dir looks like the toolkit root by checking
// for its Makefile. Unlike missing tool versions, this is fatal: nothing
// can run without it.
func ValidateToolkitDir(dir string) error {
	path := filepath.Join(dir, "Makefile")
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("can't find toolkit path: no Makefile in %q", dir)
		}
		return fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("can't find toolkit path: %q is a directory", path)
	}
	return nil
}

func runCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
