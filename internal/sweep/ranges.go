// Package sweep drives the cutoff sweep: it expands the swept cutoff
// progression, runs the per-cutoff trial batches, and folds the parsed
// results into one summary row per cutoff value.
package sweep

import (
	"fmt"
	"math"
)

// CutoffRange defines the swept cutoff progression [Start, End] with a
// fixed Step. The progression always includes both endpoints.
type CutoffRange struct {
	Start float64
	End   float64
	Step  float64
}

// Validate rejects ranges that cannot produce a progression.
func (r CutoffRange) Validate() error {
	if r.Step <= 0 {
		return fmt.Errorf("cutoff step must be positive, got %g", r.Step)
	}
	if r.End < r.Start {
		return fmt.Errorf("cutoff end %g is below start %g", r.End, r.Start)
	}
	return nil
}

// Values expands the progression: ceil((End-Start)/Step)+1 values from
// Start stepping by Step. The count is computed with a small slack so
// float drift in (End-Start)/Step never adds a phantom step, and each
// value is snapped to a 1e-6 grid so the endpoint comes out exact.
func (r CutoffRange) Values() []float64 {
	const slack = 1e-9
	n := int(math.Ceil((r.End-r.Start)/r.Step-slack)) + 1
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((r.Start+float64(i)*r.Step)*1e6) / 1e6
	}
	return out
}
