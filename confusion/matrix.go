// Package confusion - the labeled matrix store & safe accessors.
//
// Purpose:
//   - Own the (labels, cells) pair behind a strict mutation contract:
//     copy the candidate, swap it in, validate, roll back on failure.
//   - Guarantee safety at the public surface: At returns errors instead of
//     panicking; accessors hand out deep copies.
//   - Keep value semantics everywhere so the live matrix, its clones and its
//     normalization history never alias.

package confusion

// ---------- operation tags for error wrapping ----------

const (
	opNew         = "New"
	opAt          = "At"
	opSetLabels   = "SetLabels"
	opSetMatrix   = "SetMatrix"
	opReplaceWith = "ReplaceWith"
)

// Matrix is a labeled square confusion matrix: cells[i][j] counts samples
// whose true class is labels[i] and predicted class is labels[j].
//
// The zero value is not usable; construct via New or Clone. Fields are
// unexported so every observable state has passed validation.
type Matrix struct {
	labels  []string    // one label per row/column, pairwise distinct
	cells   [][]float64 // square grid, finite non-negative values
	history []snapshot  // LIFO normalization snapshots, oldest first
}

// New builds a Matrix from deep copies of labels and cells, then validates.
//
// Errors:
//   - ErrInvalidMatrix family on any structural violation; no partially
//     constructed Matrix is observable on failure.
//
// Complexity: O(n²) copy + O(n²) validation.
func New(labels []string, cells [][]float64) (*Matrix, error) {
	m := &Matrix{
		labels: copyLabels(labels),
		cells:  copyCells(cells),
	}
	if err := m.Validate(); err != nil {
		return nil, confusionErrorf(opNew, err)
	}

	return m, nil
}

// Validate re-checks the structural invariants of the live matrix.
// Metric entry points call this defensively before reading derived state.
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}

	return validate(m.labels, m.cells)
}

// Len returns the number of labels (== rows == columns).
func (m *Matrix) Len() int {
	return len(m.labels)
}

// Labels returns a deep copy of the label sequence, in row order.
func (m *Matrix) Labels() []string {
	return copyLabels(m.labels)
}

// Cells returns a deep copy of the cell grid. Mutating the returned slices
// never affects the live matrix.
func (m *Matrix) Cells() [][]float64 {
	return copyCells(m.cells)
}

// At retrieves the cell at (row i, column j).
//
// Errors: ErrOutOfRange when either index falls outside [0, Len).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.cells) || j < 0 || j >= len(m.cells) {
		return 0, confusionErrorf(opAt, ErrOutOfRange)
	}

	return m.cells[i][j], nil
}

// IndexOf returns the row/column index of label.
//
// Errors:
//   - ErrInvalidLabel when label is empty.
//   - ErrUnknownLabel when label is absent from the label sequence.
//
// Complexity: O(n) scan; label sets are small and this keeps the store free
// of a secondary index that mutators would have to maintain.
func (m *Matrix) IndexOf(label string) (int, error) {
	if label == "" {
		return 0, ErrInvalidLabel
	}
	for i, l := range m.labels {
		if l == label {
			return i, nil
		}
	}

	return 0, ErrUnknownLabel
}

// SetLabels replaces the label sequence with a deep copy of labels.
// Attempt-then-validate-then-commit: on validation failure the previous
// labels are restored and the call is a no-op from the caller's perspective.
//
// Errors: ErrInvalidMatrix family.
func (m *Matrix) SetLabels(labels []string) error {
	prev := m.labels
	m.labels = copyLabels(labels)
	if err := m.Validate(); err != nil {
		m.labels = prev // rollback, caller never observes the invalid state
		return confusionErrorf(opSetLabels, err)
	}

	return nil
}

// SetMatrix replaces the cell grid with a deep copy of cells.
// Attempt-then-validate-then-commit, same rollback contract as SetLabels.
//
// Errors: ErrInvalidMatrix family.
func (m *Matrix) SetMatrix(cells [][]float64) error {
	prev := m.cells
	m.cells = copyCells(cells)
	if err := m.Validate(); err != nil {
		m.cells = prev // rollback, caller never observes the invalid state
		return confusionErrorf(opSetMatrix, err)
	}

	return nil
}

// ReplaceWith deep-copies other's labels and cells into the receiver, then
// validates, rolling back both fields on failure. The receiver's
// normalization history is left untouched.
//
// Errors: ErrNilMatrix when other is nil; ErrInvalidMatrix family otherwise.
func (m *Matrix) ReplaceWith(other *Matrix) error {
	if other == nil {
		return confusionErrorf(opReplaceWith, ErrNilMatrix)
	}

	prevLabels, prevCells := m.labels, m.cells
	m.labels = copyLabels(other.labels)
	m.cells = copyCells(other.cells)
	if err := m.Validate(); err != nil {
		m.labels, m.cells = prevLabels, prevCells
		return confusionErrorf(opReplaceWith, err)
	}

	return nil
}

// Clone returns a fully independent deep copy of the matrix, including its
// normalization history. Complexity: O(n² · (1 + history length)).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	out := &Matrix{
		labels: copyLabels(m.labels),
		cells:  copyCells(m.cells),
	}
	if len(m.history) > 0 {
		out.history = make([]snapshot, len(m.history))
		for i, snap := range m.history {
			out.history[i] = snapshot{
				labels: copyLabels(snap.labels),
				cells:  copyCells(snap.cells),
			}
		}
	}

	return out
}

// ---------- deep-copy helpers (single source of truth) ----------

// copyLabels returns an independent copy of labels; nil maps to an empty,
// non-nil slice so downstream length checks stay uniform.
func copyLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)

	return out
}

// copyCells returns a row-by-row independent copy of cells.
func copyCells(cells [][]float64) [][]float64 {
	out := make([][]float64, len(cells))
	for i, row := range cells {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}
