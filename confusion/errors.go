// Package confusion: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// confusion package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in option
// constructors.

package confusion

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "confusion: ..." for consistency and easy
// grepping across logs. Structural sentinels are chained onto
// ErrInvalidMatrix so that errors.Is(err, ErrInvalidMatrix) matches every
// invariant violation while errors.Is(err, ErrNonSquare) still pinpoints
// the exact rule that failed.

var (
	// ErrInvalidMatrix is the root of the structural-invariant family.
	// Every mutator and every metric accessor may surface it.
	ErrInvalidMatrix = errors.New("confusion: invalid matrix")

	// ErrLabelCountMismatch signals len(labels) != number of matrix rows.
	ErrLabelCountMismatch = fmt.Errorf("%w: label count differs from row count", ErrInvalidMatrix)

	// ErrNonSquare signals a row whose length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidMatrix)

	// ErrDuplicateLabel signals two identical labels in the label sequence.
	ErrDuplicateLabel = fmt.Errorf("%w: duplicate label", ErrInvalidMatrix)

	// ErrNegativeCell signals a cell value below zero; confusion counts are
	// non-negative by definition.
	ErrNegativeCell = fmt.Errorf("%w: negative cell value", ErrInvalidMatrix)

	// ErrNaNInf signals a NaN or ±Inf cell where finite values are required.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf cell value", ErrInvalidMatrix)

	// ErrInvalidLabel indicates an empty label argument where one is required.
	ErrInvalidLabel = errors.New("confusion: empty label")

	// ErrUnknownLabel indicates a label argument absent from the current label set.
	ErrUnknownLabel = errors.New("confusion: unknown label")

	// ErrInvalidRange indicates Normalize was called with lo >= hi (or a
	// non-finite bound).
	ErrInvalidRange = errors.New("confusion: invalid normalization range")

	// ErrNormalization indicates the matrix min/max could not be determined
	// (empty matrix, zero origin cell, or a flat matrix where min == max).
	ErrNormalization = errors.New("confusion: matrix min/max undeterminable")

	// ErrOutOfRange indicates a cell index outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("confusion: index out of range")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("confusion: nil matrix")
)

// confusionErrorf wraps an underlying sentinel with the given operation tag.
// Used internally to maintain consistent labeling of failures; callers keep
// matching via errors.Is.
func confusionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
