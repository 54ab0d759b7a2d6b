// Package confusion: aggregate statistics over the live cell grid.
//
// Purpose:
//   - Provide the read-only aggregates the metrics package and display layers
//     consume: min/max, grand total, per-label predicted totals.
//
// Determinism & Performance:
//   - Fixed i→j traversal for every loop; no caching — aggregates are always
//     recomputed from the current matrix state.

package confusion

const opPredictionsFor = "PredictionsFor"

// MinAndMax returns the minimum and maximum cell value over the whole grid.
//
// ok is false — meaning "no data" — when the matrix is empty OR when the
// origin cell [0][0] is exactly zero. The zero-origin rule is kept for
// backward compatibility with existing consumers even though a legitimate
// zero count is indistinguishable from an absent matrix under it; Normalize
// refuses such matrices with ErrNormalization accordingly.
//
// Complexity: O(n²).
func (m *Matrix) MinAndMax() (min, max float64, ok bool) {
	if len(m.cells) == 0 || m.cells[0][0] == 0 {
		return 0, 0, false
	}

	min, max = m.cells[0][0], m.cells[0][0]
	var i, j int
	for i = 0; i < len(m.cells); i++ {
		for j = 0; j < len(m.cells[i]); j++ {
			v := m.cells[i][j]
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return min, max, true
}

// TotalCellSum returns the sum of all cells — the grand total of samples.
// Complexity: O(n²).
func (m *Matrix) TotalCellSum() float64 {
	var sum float64
	var i, j int
	for i = 0; i < len(m.cells); i++ {
		for j = 0; j < len(m.cells[i]); j++ {
			sum += m.cells[i][j]
		}
	}

	return sum
}

// PredictionSums returns the per-label predicted totals: for each label
// index j, the sum over all rows of column j (samples predicted as that
// label). Order matches Labels(). Complexity: O(n²).
func (m *Matrix) PredictionSums() []float64 {
	sums := make([]float64, len(m.cells))
	var i, j int
	for i = 0; i < len(m.cells); i++ {
		for j = 0; j < len(m.cells[i]); j++ {
			sums[j] += m.cells[i][j]
		}
	}

	return sums
}

// TotalPredictions returns the sum of PredictionSums — the grand total of
// predictions, equal to TotalCellSum for any valid square matrix.
func (m *Matrix) TotalPredictions() float64 {
	var total float64
	for _, s := range m.PredictionSums() {
		total += s
	}

	return total
}

// PredictionsFor returns the predicted total for one label (its column sum).
//
// Errors: ErrInvalidLabel for an empty label, ErrUnknownLabel for an absent one.
// Complexity: O(n²) dominated by the column-sum pass.
func (m *Matrix) PredictionsFor(label string) (float64, error) {
	i, err := m.IndexOf(label)
	if err != nil {
		return 0, confusionErrorf(opPredictionsFor, err)
	}

	return m.PredictionSums()[i], nil
}
