// Package analysis parses the text output of the crater analysis tools
// into fixed-width numeric records.
//
// Two output shapes exist. crater-analysis emits a single line of five
// whitespace-separated floats per invocation. component-shift emits
// three lines: a sample count, a per-component displacement sum, and a
// per-component sum of squares (the tool pre-aggregates within one
// trial).
package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// CutoffRecordLen is the number of values on one crater-analysis
// output line.
const CutoffRecordLen = 5

// ShiftComponents is the number of spatial components in the
// component-shift output vectors.
const ShiftComponents = 3

// MalformedOutputError reports tool output that does not match the
// expected numeric shape. It aborts the enclosing batch; a silently
// skipped trial would corrupt the aggregate.
type MalformedOutputError struct {
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return "malformed tool output: " + e.Reason
}

// ParseRecord parses text as exactly width whitespace-separated floats.
func ParseRecord(text string, width int) ([]float64, error) {
	tokens := strings.Fields(text)
	if len(tokens) != width {
		return nil, &MalformedOutputError{
			Reason: fmt.Sprintf("expected %d values, got %d", width, len(tokens)),
		}
	}
	out := make([]float64, width)
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &MalformedOutputError{
				Reason: fmt.Sprintf("value %q is not a number", tok),
			}
		}
		out[i] = v
	}
	return out, nil
}

// ShiftOutput is the pre-aggregated result of one component-shift
// invocation.
type ShiftOutput struct {
	Count float64
	Sum   []float64
	Sum2  []float64
}

// ParseShiftOutput parses the three-line component-shift output: a
// scalar sample count, a 3-vector of component sums, and a 3-vector of
// component sums of squares.
func ParseShiftOutput(text string) (ShiftOutput, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 3 {
		return ShiftOutput{}, &MalformedOutputError{
			Reason: fmt.Sprintf("expected 3 output lines, got %d", len(lines)),
		}
	}

	count, err := ParseRecord(lines[0], 1)
	if err != nil {
		return ShiftOutput{}, fmt.Errorf("count line: %w", err)
	}
	sum, err := ParseRecord(lines[1], ShiftComponents)
	if err != nil {
		return ShiftOutput{}, fmt.Errorf("sum line: %w", err)
	}
	sum2, err := ParseRecord(lines[2], ShiftComponents)
	if err != nil {
		return ShiftOutput{}, fmt.Errorf("sum-of-squares line: %w", err)
	}

	return ShiftOutput{Count: count[0], Sum: sum, Sum2: sum2}, nil
}
