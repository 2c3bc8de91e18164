package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("log"), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}

func TestTestLogsGlob(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"zlib-1.2.11-5.src.rpm.test.log",
		"bash-5.1.8-1.src.rpm.test.log",
		"curl-7.76.0-7.src.rpm.test.log",
	}
	for _, name := range files {
		writeLog(t, filepath.Join(dir, name))
	}
	// Non-test-log files are not picked up.
	writeLog(t, filepath.Join(dir, "zlib-1.2.11-5.src.rpm.log"))
	writeLog(t, filepath.Join(dir, "notes.txt"))

	got, err := TestLogs(dir, nil)
	if err != nil {
		t.Fatalf("TestLogs returned error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "bash-5.1.8-1.src.rpm.test.log"),
		filepath.Join(dir, "curl-7.76.0-7.src.rpm.test.log"),
		filepath.Join(dir, "zlib-1.2.11-5.src.rpm.test.log"),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTestLogsEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := TestLogs(dir, nil)
	if !errors.Is(err, ErrNoTestLogs) {
		t.Fatalf("expected ErrNoTestLogs, got %v", err)
	}
}

func TestTestLogsExplicit(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "zlib-1.2.11-5.src.rpm.test.log")
	writeLog(t, file)

	externalDir := t.TempDir()
	absOutside := filepath.Join(externalDir, "bash-5.1.8-1.src.rpm.test.log")
	writeLog(t, absOutside)

	got, err := TestLogs(dir, []string{"zlib-1.2.11-5.src.rpm.test.log", absOutside, "zlib-1.2.11-5.src.rpm.test.log"})
	if err != nil {
		t.Fatalf("TestLogs returned error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected duplicates removed, got %d entries", len(got))
	}
	if got[0] != file || got[1] != absOutside {
		t.Fatalf("unexpected paths: %v", got)
	}
}

func TestTestLogsExplicitMissing(t *testing.T) {
	dir := t.TempDir()

	if _, err := TestLogs(dir, []string{"missing.src.rpm.test.log"}); err == nil {
		t.Fatalf("expected error for missing explicit path")
	}
}

func TestTestLogsExplicitDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, err := TestLogs(dir, []string{"sub"}); err == nil {
		t.Fatalf("expected error for directory path")
	}
}
