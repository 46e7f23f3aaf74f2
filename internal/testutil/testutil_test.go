package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFakeTool(t *testing.T) {
	dir := t.TempDir()
	path := WriteFakeTool(t, dir, "fake-analysis", `echo ok`)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("fake tool not written: %v", err)
	}
	if info.Mode()&0111 == 0 {
		t.Errorf("fake tool mode = %v, want executable", info.Mode())
	}
}

func TestMakeRunDirs(t *testing.T) {
	base := t.TempDir()
	MakeRunDirs(t, base, 3)

	for _, want := range []string{
		"run_1/dump.initial",
		"run_2/dump.final_no_cluster",
		"run_3/dump.initial",
	} {
		if _, err := os.Stat(filepath.Join(base, want)); err != nil {
			t.Errorf("missing fixture file %s: %v", want, err)
		}
	}
}
