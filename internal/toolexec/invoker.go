// Package toolexec launches the external analysis binaries and captures
// their standard output for parsing.
package toolexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExternalToolFailure reports an analysis binary that exited with a
// non-zero status. A single failed invocation invalidates the whole
// batch it belongs to; callers must not mask it.
type ExternalToolFailure struct {
	Tool     string
	ExitCode int
}

func (e *ExternalToolFailure) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
}

// Invoker runs one external analysis binary. The tool path is resolved
// through PATH when it is a bare name.
type Invoker struct {
	Tool string
}

// NewInvoker creates an invoker for the given binary.
func NewInvoker(tool string) *Invoker {
	return &Invoker{Tool: tool}
}

// Invoke runs the tool with the given arguments and blocks until it
// exits, returning the captured standard output as text. Standard error
// passes through to the caller's stderr for diagnostics. A non-zero
// exit maps to *ExternalToolFailure.
func (inv *Invoker) Invoke(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, inv.Tool, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExternalToolFailure{Tool: inv.Tool, ExitCode: exitErr.ExitCode()}
		}
		return "", fmt.Errorf("failed to run %s: %w", inv.Tool, err)
	}
	return stdout.String(), nil
}
