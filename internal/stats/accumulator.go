// Package stats folds per-trial numeric records into running
// aggregates.
//
// Each accumulator is owned by exactly one sweep iteration and is only
// fed after its batch has fully completed, so no locking is needed. The
// fold is commutative: records may arrive in any order. All arithmetic
// is float64; at ~100 trials times a few thousand inner samples plain
// summation is numerically adequate.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// VectorAccumulator keeps a running count and per-component sum of
// fixed-width records.
type VectorAccumulator struct {
	count int
	sum   []float64
}

// NewVectorAccumulator creates an accumulator for records of the given
// width.
func NewVectorAccumulator(width int) *VectorAccumulator {
	return &VectorAccumulator{sum: make([]float64, width)}
}

// Add folds one record into the running sum.
func (a *VectorAccumulator) Add(record []float64) error {
	if len(record) != len(a.sum) {
		return fmt.Errorf("record width %d does not match accumulator width %d",
			len(record), len(a.sum))
	}
	floats.Add(a.sum, record)
	a.count++
	return nil
}

// Count returns the number of records folded so far.
func (a *VectorAccumulator) Count() int { return a.count }

// Sum returns a copy of the running per-component sum.
func (a *VectorAccumulator) Sum() []float64 {
	return append([]float64(nil), a.sum...)
}

// Mean finalizes the accumulator into per-component means. With no
// records folded it returns the zero vector.
func (a *VectorAccumulator) Mean() []float64 {
	mean := a.Sum()
	if a.count > 0 {
		floats.Scale(1/float64(a.count), mean)
	}
	return mean
}

// ShiftAccumulator folds pre-aggregated component-shift outputs. Each
// record already carries a partial sample count and per-component
// partial sums, so the fold adds them directly instead of averaging
// per trial first.
type ShiftAccumulator struct {
	count float64
	sum   []float64
	sum2  []float64
}

// NewShiftAccumulator creates an empty three-component accumulator.
func NewShiftAccumulator() *ShiftAccumulator {
	return &ShiftAccumulator{
		sum:  make([]float64, 3),
		sum2: make([]float64, 3),
	}
}

// Add folds one trial's partial count, sum, and sum of squares.
func (a *ShiftAccumulator) Add(count float64, sum, sum2 []float64) error {
	if len(sum) != len(a.sum) || len(sum2) != len(a.sum2) {
		return fmt.Errorf("component count %d/%d does not match accumulator width %d",
			len(sum), len(sum2), len(a.sum))
	}
	a.count += count
	floats.Add(a.sum, sum)
	floats.Add(a.sum2, sum2)
	return nil
}

// Count returns the total sample count folded so far.
func (a *ShiftAccumulator) Count() float64 { return a.count }

// Sum returns a copy of the running per-component sum.
func (a *ShiftAccumulator) Sum() []float64 {
	return append([]float64(nil), a.sum...)
}

// Sum2 returns a copy of the running per-component sum of squares.
func (a *ShiftAccumulator) Sum2() []float64 {
	return append([]float64(nil), a.sum2...)
}

// Mean finalizes the per-component mean shift.
func (a *ShiftAccumulator) Mean() []float64 {
	mean := a.Sum()
	if a.count > 0 {
		floats.Scale(1/a.count, mean)
	}
	return mean
}

// RMS finalizes the per-component root mean square shift,
// sqrt(sum2/count). The deltas are centered upstream by the tool, so
// this is a population RMS, not a Bessel-corrected sample deviation.
func (a *ShiftAccumulator) RMS() []float64 {
	rms := a.Sum2()
	for i, v := range rms {
		if a.count > 0 {
			rms[i] = math.Sqrt(v / a.count)
		}
	}
	return rms
}
