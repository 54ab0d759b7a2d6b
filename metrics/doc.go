// Package metrics computes classifier-quality metrics from a
// confusion.Matrix: accuracy, misclassification rate, precision, recall,
// specificity and F1 — per label, or matrix-wide under micro, macro or
// weighted averaging.
//
// What:
//
//   - One dispatcher per metric family (Accuracy, Precision, ...) configured
//     with functional options: WithLabel pins a single label and overrides
//     averaging; WithAverage selects Micro, Macro or Weighted (the default).
//   - Thin facades (LabelAccuracy, MicroPrecision, WeightedF1, ...) delegate
//     to the dispatchers for discoverability; no logic duplication.
//   - Report aggregates every metric under every mode in one call, ready for
//     display layers.
//
// Averaging (identical across every metric family):
//
//   - Micro    — pool TP/TN/FP/FN across all labels first, apply the formula once.
//   - Macro    — apply the formula per label, take the unweighted mean.
//   - Weighted — apply the formula per label, take the mean weighted by each
//     label's predicted total, normalized by the grand total of predictions.
//
// Degenerate-result policy:
//
//   - A zero denominator (or NaN result) yields 0, never an error, so
//     0/0-style cases stay representable in tabular output.
//
// Statelessness:
//
//   - Nothing is cached; every call re-reads the live matrix, and every
//     public entry point revalidates it first, surfacing the
//     confusion.ErrInvalidMatrix family defensively.
//
// Complexity: O(n³) worst case per call (counts for n labels at O(n²) each);
// confusion matrices are small and fully resident by design.
package metrics
