package trial

import (
	"path/filepath"
	"testing"
)

func TestTrialPaths(t *testing.T) {
	testCases := []struct {
		name    string
		baseDir string
		index   int
		wantDir string
	}{
		{"first_trial", "/data/crater", 1, "/data/crater/run_1"},
		{"double_digit", "/data/crater", 42, "/data/crater/run_42"},
		{"relative_base", "results", 7, "results/run_7"},
		{"trailing_slash", "/data/crater/", 3, "/data/crater/run_3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := New(tc.baseDir, tc.index)
			wantDir := filepath.FromSlash(tc.wantDir)
			if got := tr.Dir(); got != wantDir {
				t.Errorf("Dir() = %q, want %q", got, wantDir)
			}
			wantInitial := filepath.Join(wantDir, InitialDumpName)
			if got := tr.InitialDump(); got != wantInitial {
				t.Errorf("InitialDump() = %q, want %q", got, wantInitial)
			}
			wantFinal := filepath.Join(wantDir, FinalDumpName)
			if got := tr.FinalDump(); got != wantFinal {
				t.Errorf("FinalDump() = %q, want %q", got, wantFinal)
			}
		})
	}
}
