// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files: error assertions, fake analysis-tool scripts, and
// trial directory layouts.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// WriteFakeTool writes an executable shell script into dir and returns
// its path. Tests use these scripts in place of the real analysis
// binaries. Skips the test on platforms without /bin/sh.
func WriteFakeTool(t *testing.T, dir, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts require /bin/sh")
	}

	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("failed to write fake tool %s: %v", name, err)
	}
	return path
}

// MakeRunDirs creates base/run_{1..n} directories, each holding empty
// dump.initial and dump.final_no_cluster files.
func MakeRunDirs(t *testing.T, base string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		dir := filepath.Join(base, fmt.Sprintf("run_%d", i))
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create run dir: %v", err)
		}
		for _, name := range []string{"dump.initial", "dump.final_no_cluster"} {
			if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
				t.Fatalf("failed to create dump file: %v", err)
			}
		}
	}
}
