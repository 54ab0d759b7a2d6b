// Package confusion: domain value types shared across the package.

package confusion

// Counts bundles the four confusion counts for one label treated as the
// positive class. Values are derived from the live matrix, never stored, and
// stay non-negative for any valid matrix.
type Counts struct {
	TruePositive  float64 `json:"true_positive"`  // diagonal cell of the label
	TrueNegative  float64 `json:"true_negative"`  // grand total minus TP, FP, FN
	FalsePositive float64 `json:"false_positive"` // off-diagonal remainder of the label's row
	FalseNegative float64 `json:"false_negative"` // off-diagonal remainder of the label's column
}

// Total returns TP+TN+FP+FN — the grand total of the matrix for any single
// label's counts.
func (c Counts) Total() float64 {
	return c.TruePositive + c.TrueNegative + c.FalsePositive + c.FalseNegative
}

// Add returns the element-wise sum of c and o. Used to pool counts across
// labels for micro averaging.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		TruePositive:  c.TruePositive + o.TruePositive,
		TrueNegative:  c.TrueNegative + o.TrueNegative,
		FalsePositive: c.FalsePositive + o.FalsePositive,
		FalseNegative: c.FalseNegative + o.FalseNegative,
	}
}

// snapshot is a full deep copy of (labels, cells) taken immediately before a
// normalization mutates the live matrix. Snapshots are independent: mutating
// the live matrix afterward never affects a previously pushed snapshot.
type snapshot struct {
	labels []string
	cells  [][]float64
}
