package testkit

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteScript writes an executable /bin/sh script named name into a fresh
// temp dir and returns its path. Tests using it are skipped on Windows
func WriteScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts need a POSIX sh")
	}
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}
