// Package testutil provides common test helpers for the dotx project.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TempVenvDir creates a temporary project directory containing a virtual
// environment layout (<dir>/.venv/bin plus pyvenv.cfg) and returns the
// project directory path.
func TempVenvDir(t *testing.T, pythonVersion string) string {
	t.Helper()

	dir := t.TempDir()
	binDir := filepath.Join(dir, ".venv", "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("TempVenvDir: mkdir failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(binDir, "python"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("TempVenvDir: write python stub failed: %v", err)
	}

	cfg := "home = /usr/bin\nversion = " + pythonVersion + "\nprompt = 'test-project'\n"
	if err := os.WriteFile(filepath.Join(dir, ".venv", "pyvenv.cfg"), []byte(cfg), 0644); err != nil {
		t.Fatalf("TempVenvDir: write pyvenv.cfg failed: %v", err)
	}

	return dir
}

// TempWorkTree creates a temporary work tree with the given relative files
// and returns its path.
func TempWorkTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("TempWorkTree: mkdir failed: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("TempWorkTree: write failed: %v", err)
		}
	}
	return dir
}

// TempBareRepo creates a temporary bare git repository and returns its path.
// Useful for E2E tests that need a real git dir.
func TempBareRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	cmd := exec.Command("git", "init", "--bare")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("TempBareRepo: git init --bare failed: %v\n%s", err, out)
	}

	return dir
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempCacheFile creates a temporary cache.json with the given content
// and returns its path.
func TempCacheFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempCacheFile: write failed: %v", err)
	}

	return path
}

// SetupTestConfig creates a temporary config.toml with a venv and dotfiles
// section pre-configured against the given git dir and work tree.
// Returns the config file path.
func SetupTestConfig(t *testing.T, gitDir, workTree string) string {
	t.Helper()

	content := `version = 1

[venv]
dir = ".venv"
sync_command = "uv sync"

[dotfiles]
git_dir = "` + gitDir + `"
work_tree = "` + workTree + `"

[cache]
ttl_minutes = 5
`
	return TempConfigFile(t, content)
}
