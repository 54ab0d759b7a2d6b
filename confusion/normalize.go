// Package confusion: reversible min-max normalization with an undo history.
//
// Purpose:
//   - Rescale every cell linearly into an arbitrary [lo,hi] range, e.g. for
//     color-scale display, without losing the original counts.
//   - Keep a LIFO stack of full snapshots so any normalization can be undone.
//
// Policy decisions (documented, enforced in tests):
//   - lo/hi must be finite with lo < hi, else ErrInvalidRange.
//   - A matrix whose min/max is undeterminable (empty, or zero origin cell —
//     see Matrix.MinAndMax) is rejected with ErrNormalization.
//   - A flat matrix (min == max) is rejected with ErrNormalization instead of
//     silently producing NaN cells: the linear formula divides by max-min.
//   - Snapshots are pushed BEFORE mutation and deep-copied both on push and
//     on restore; the live matrix and the history never alias.

package confusion

import (
	"fmt"
	"math"
)

const (
	opNormalize = "Normalize"

	// DefaultNormLo and DefaultNormHi are the conventional unit-range bounds;
	// callers wanting [0,1] pass them explicitly for readability.
	DefaultNormLo = 0.0
	DefaultNormHi = 1.0

	// Bounds for WithFractionDigits, mirroring the valid digit range of
	// decimal rounding.
	minFractionDigits = 0
	maxFractionDigits = 20

	// noRounding marks "fractionDigits not requested" in normOptions.
	noRounding = -1

	panicFractionDigits = "confusion: WithFractionDigits: digits must be in [0,20]"
)

// NormOption mutates normalization options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type NormOption func(*normOptions)

// normOptions stores the effective normalization configuration; unexported so
// public entry points fully control the defaults.
type normOptions struct {
	fractionDigits int // noRounding, or 0..20 decimal digits to round to
}

// WithFractionDigits rounds every rescaled cell to d decimal digits.
// Panics when d is outside [0,20].
func WithFractionDigits(d int) NormOption {
	if d < minFractionDigits || d > maxFractionDigits {
		panic(panicFractionDigits)
	}

	return func(o *normOptions) { o.fractionDigits = d }
}

// gatherNormOptions resolves defaults then applies setters in order.
func gatherNormOptions(opts []NormOption) normOptions {
	o := normOptions{fractionDigits: noRounding}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Normalize rescales every cell linearly into [lo,hi]:
//
//	newValue = (hi-lo) · (oldValue-min)/(max-min) + lo
//
// where min/max come from MinAndMax over the current grid.
//
// Implementation:
//   - Stage 1: validate the range (finite, lo < hi) and the matrix invariants.
//   - Stage 2: determine min/max; reject undeterminable or flat matrices.
//   - Stage 3: push a deep snapshot of the current state onto the history.
//   - Stage 4: rescale in fixed i→j order, rounding per WithFractionDigits.
//
// Errors:
//   - ErrInvalidRange: lo >= hi or a non-finite bound.
//   - ErrInvalidMatrix family: invariants no longer hold.
//   - ErrNormalization: min/max undeterminable, or min == max (flat matrix).
//
// On any error the matrix is unchanged and no snapshot is pushed.
// Complexity: O(n²) snapshot + O(n²) rescale.
func (m *Matrix) Normalize(lo, hi float64, opts ...NormOption) error {
	// Stage 1 (Range): both bounds finite, lo strictly below hi.
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return confusionErrorf(opNormalize, ErrInvalidRange)
	}

	// Stage 1 (Invariants): defensive re-check before touching state.
	if err := m.Validate(); err != nil {
		return confusionErrorf(opNormalize, err)
	}

	// Stage 2 (Bounds): min/max of the live grid.
	min, max, ok := m.MinAndMax()
	if !ok {
		return confusionErrorf(opNormalize, ErrNormalization)
	}
	if min == max {
		return confusionErrorf(opNormalize, fmt.Errorf("flat matrix: %w", ErrNormalization))
	}

	// Stage 3 (Snapshot): push the pre-mutation state; deep copies only.
	m.history = append(m.history, snapshot{
		labels: copyLabels(m.labels),
		cells:  copyCells(m.cells),
	})

	// Stage 4 (Rescale): standard min-max formula, fixed traversal order.
	o := gatherNormOptions(opts)
	scale := (hi - lo) / (max - min)
	var i, j int
	for i = 0; i < len(m.cells); i++ {
		for j = 0; j < len(m.cells[i]); j++ {
			v := scale*(m.cells[i][j]-min) + lo
			if o.fractionDigits != noRounding {
				v = roundTo(v, o.fractionDigits)
			}
			m.cells[i][j] = v
		}
	}

	return nil
}

// RevertNormalization pops the most recent snapshot and restores it into the
// live matrix. Returns false — a no-op, not an error — when the history is
// empty. Complexity: O(n²).
func (m *Matrix) RevertNormalization() bool {
	if len(m.history) == 0 {
		return false
	}

	last := len(m.history) - 1
	m.restore(m.history[last])
	m.history = m.history[:last]

	return true
}

// RevertAllNormalizations restores the OLDEST snapshot in the history
// (index 0) and clears the stack. Because a snapshot is taken before each
// normalization, the oldest one holds the state preceding the first
// Normalize call. Returns false when the history is empty.
func (m *Matrix) RevertAllNormalizations() bool {
	if len(m.history) == 0 {
		return false
	}

	m.restore(m.history[0])
	m.history = nil

	return true
}

// HistoryLen reports the current undo depth.
func (m *Matrix) HistoryLen() int {
	return len(m.history)
}

// restore deep-copies a snapshot into the live fields. Snapshots were valid
// when pushed, so no re-validation is needed.
func (m *Matrix) restore(s snapshot) {
	m.labels = copyLabels(s.labels)
	m.cells = copyCells(s.cells)
}

// roundTo rounds v to d decimal digits (d in [0,20]).
func roundTo(v float64, d int) float64 {
	pow := math.Pow(10, float64(d))

	return math.Round(v*pow) / pow
}
