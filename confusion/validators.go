// Package confusion: canonical source of truth for structural validation.
//
// Purpose:
//   - Keep constructor/mutator code minimal by delegating invariant checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and allocate at most one map for the
//     duplicate-label scan.
//   - Check order is fixed and documented: shape → squareness → labels → cells.

package confusion

import "math"

// ValidateShape ensures len(labels) matches the row count and every row has
// length equal to the row count (square grid).
//
// Returns ErrLabelCountMismatch or ErrNonSquare.
// Complexity: O(n).
func ValidateShape(labels []string, cells [][]float64) error {
	if len(labels) != len(cells) {
		return ErrLabelCountMismatch
	}
	for _, row := range cells {
		if len(row) != len(cells) {
			return ErrNonSquare
		}
	}

	return nil
}

// ValidateLabels ensures labels are pairwise distinct.
//
// Returns ErrDuplicateLabel on the first repeated label.
// Complexity: O(n) time, O(n) space.
func ValidateLabels(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			return ErrDuplicateLabel
		}
		seen[label] = struct{}{}
	}

	return nil
}

// ValidateCells ensures every cell is finite and non-negative.
//
// Returns ErrNaNInf or ErrNegativeCell on the first offending cell,
// scanning in fixed i→j order for deterministic reporting.
// Complexity: O(n²).
func ValidateCells(cells [][]float64) error {
	var i, j int
	for i = 0; i < len(cells); i++ {
		for j = 0; j < len(cells[i]); j++ {
			v := cells[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
			if v < 0 {
				return ErrNegativeCell
			}
		}
	}

	return nil
}

// validate runs the full invariant sequence in canonical order.
// Every sentinel it returns chains onto ErrInvalidMatrix.
func validate(labels []string, cells [][]float64) error {
	if err := ValidateShape(labels, cells); err != nil {
		return err
	}
	if err := ValidateLabels(labels); err != nil {
		return err
	}

	return ValidateCells(cells)
}
