// Package confusion owns the labeled confusion matrix: a square grid of
// prediction counts whose rows are true classes and columns are predicted
// classes, one row/column per distinct label.
//
// What:
//
//   - Matrix wraps (labels, cells) with strict structural validation:
//     label count == row count, square rows, pairwise-distinct labels,
//     finite non-negative cells.
//   - Mutators (SetLabels, SetMatrix, ReplaceWith) are atomic: a failed
//     call rolls back and the caller never observes a half-applied state.
//   - CountsFor / AllCounts / SumCounts derive true/false positive/negative
//     counts per label — the raw material for the metrics package.
//   - Normalize rescales every cell into an arbitrary [lo,hi] range and
//     records a snapshot first; RevertNormalization undoes one step,
//     RevertAllNormalizations restores the oldest snapshot.
//
// Why:
//
//   - Classifier evaluation: feed the counts into metrics for accuracy,
//     precision, recall, specificity, F1 and friends.
//   - Display pipelines: normalized cell values map directly onto color
//     scales without losing the original counts.
//
// Value semantics:
//
//   - Every constructor, accessor, mutator and snapshot deep-copies.
//     The live matrix, its clones and its history never alias.
//
// Concurrency:
//
//   - A Matrix has single-owner semantics and no internal locking.
//     Callers sharing one across goroutines must serialize externally.
//
// Complexity (n = label count):
//
//   - Validation, counts extraction, statistics, normalization: O(n²).
//   - Label lookup: O(n).
//
// Errors:
//
//   - ErrInvalidMatrix family: structural invariant violations
//     (ErrLabelCountMismatch, ErrNonSquare, ErrDuplicateLabel,
//     ErrNegativeCell, ErrNaNInf).
//   - ErrInvalidLabel: empty label argument.
//   - ErrUnknownLabel: label absent from the current label set.
//   - ErrInvalidRange: Normalize called with lo >= hi.
//   - ErrNormalization: matrix min/max undeterminable or flat.
package confusion
