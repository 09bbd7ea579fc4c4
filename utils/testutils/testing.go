package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// RunWithTempDir runs runnable with a fresh directory that is removed afterwards.
func RunWithTempDir(t *testing.T, runnable func(string)) {
	t.Helper()
	runnable(t.TempDir())
}

// WriteFile creates name inside dir with the given lines and returns its path.
func WriteFile(t *testing.T, dir string, name string, lines ...string) string {
	t.Helper()
	filename := filepath.Join(dir, name)
	content := make([]byte, 0)
	for _, line := range lines {
		content = append(content, line...)
		content = append(content, '\n')
	}
	if err := os.WriteFile(filename, content, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", filename, err)
	}
	return filename
}
