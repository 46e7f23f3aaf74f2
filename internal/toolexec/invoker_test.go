package toolexec

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lammps-data/crater.report/internal/testutil"
)

func TestInvoke_CapturesStdout(t *testing.T) {
	tool := testutil.WriteFakeTool(t, t.TempDir(), "fake-analysis",
		`echo "1.0 2.0 3.0"`)

	inv := NewInvoker(tool)
	out, err := inv.Invoke(context.Background())
	testutil.AssertNoError(t, err)

	if got := strings.TrimSpace(out); got != "1.0 2.0 3.0" {
		t.Errorf("Invoke() output = %q, want %q", got, "1.0 2.0 3.0")
	}
}

func TestInvoke_PassesArguments(t *testing.T) {
	// The script echoes its arguments back so we can check the argv wiring.
	tool := testutil.WriteFakeTool(t, t.TempDir(), "fake-analysis", `echo "$@"`)

	inv := NewInvoker(tool)
	out, err := inv.Invoke(context.Background(), "dump.initial", "dump.final_no_cluster", "-c", "1.75")
	testutil.AssertNoError(t, err)

	want := "dump.initial dump.final_no_cluster -c 1.75"
	if got := strings.TrimSpace(out); got != want {
		t.Errorf("Invoke() output = %q, want %q", got, want)
	}
}

func TestInvoke_NonZeroExit(t *testing.T) {
	tool := testutil.WriteFakeTool(t, t.TempDir(), "fake-analysis", `exit 3`)

	inv := NewInvoker(tool)
	_, err := inv.Invoke(context.Background())
	testutil.AssertError(t, err)

	var failure *ExternalToolFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Invoke() error = %v, want *ExternalToolFailure", err)
	}
	if failure.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", failure.ExitCode)
	}
}

func TestInvoke_MissingBinary(t *testing.T) {
	inv := NewInvoker(filepath.Join(t.TempDir(), "no-such-tool"))
	_, err := inv.Invoke(context.Background())
	testutil.AssertError(t, err)

	// A tool that cannot start is an infrastructure error, not a tool failure.
	var failure *ExternalToolFailure
	if errors.As(err, &failure) {
		t.Errorf("Invoke() error = %v, should not be *ExternalToolFailure", err)
	}
}
