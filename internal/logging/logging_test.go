package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")
	t.Setenv("BLACKZONE_LOG", path)

	logger, closeFn, err := Setup()
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Info("raid started", "seed", int64(42))
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "raid started") {
		t.Errorf("Log line missing from file, got: %q", string(content))
	}
	if !strings.Contains(string(content), "seed") {
		t.Errorf("Structured key missing from file, got: %q", string(content))
	}
}

func TestSetupCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "test.log")
	t.Setenv("BLACKZONE_LOG", path)

	logger, closeFn, err := Setup()
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected log file at %s: %v", path, err)
	}
}
