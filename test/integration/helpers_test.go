//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// setupProject creates an isolated project directory with an empty manifest
// and points the CLI config at a throwaway home.
func setupProject(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	return t.TempDir()
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertFileAbsent(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent", path)
	}
}

func readFile(t *testing.T, elem ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(elem...))
	if err != nil {
		t.Fatalf("reading %v: %v", elem, err)
	}
	return string(data)
}
