// Package confusion: class-count extraction.
//
// Purpose:
//   - Derive the four confusion counts (TP/TN/FP/FN) for one label, for every
//     label, and pooled across all labels, from the live matrix state.
//
// Convention (stable, do not change):
//   - Rows are TRUE classes, columns are PREDICTED classes.
//   - FalsePositive is computed from the label's ROW (off-diagonal row
//     remainder) and FalseNegative from its COLUMN, despite what the names
//     would suggest under the usual sklearn orientation. Existing consumers
//     depend on these exact numbers.

package confusion

const opCountsFor = "CountsFor"

// CountsFor derives the confusion counts for one label.
//
// With i the label's index:
//   - TruePositive  = cells[i][i]
//   - FalsePositive = (sum of row i)    - TruePositive
//   - FalseNegative = (sum of column i) - TruePositive
//   - TrueNegative  = grand total - TP - FP - FN
//
// Errors: ErrInvalidLabel for an empty label, ErrUnknownLabel for an absent one.
// Complexity: O(n²) for the grand total.
func (m *Matrix) CountsFor(label string) (Counts, error) {
	i, err := m.IndexOf(label)
	if err != nil {
		return Counts{}, confusionErrorf(opCountsFor, err)
	}

	return m.countsAt(i), nil
}

// AllCounts derives the counts for every label, in label order.
// Complexity: O(n³) — O(n²) per label; label sets are small by design.
func (m *Matrix) AllCounts() []Counts {
	all := make([]Counts, len(m.labels))
	for i := range m.labels {
		all[i] = m.countsAt(i)
	}

	return all
}

// SumCounts pools AllCounts element-wise into one aggregate Counts — the
// input for micro-averaged metrics.
func (m *Matrix) SumCounts() Counts {
	var sum Counts
	for _, c := range m.AllCounts() {
		sum = sum.Add(c)
	}

	return sum
}

// countsAt extracts the counts for a known-valid label index.
// Fixed loop order; no bounds re-checks (index verified by callers).
func (m *Matrix) countsAt(i int) Counts {
	var rowSum, colSum, total float64
	var r, c int
	for r = 0; r < len(m.cells); r++ {
		for c = 0; c < len(m.cells[r]); c++ {
			v := m.cells[r][c]
			total += v
			if r == i {
				rowSum += v
			}
			if c == i {
				colSum += v
			}
		}
	}

	tp := m.cells[i][i]
	fp := rowSum - tp
	fn := colSum - tp

	return Counts{
		TruePositive:  tp,
		TrueNegative:  total - tp - fp - fn,
		FalsePositive: fp,
		FalseNegative: fn,
	}
}
