// Package metrics: canonical evaluation kernel and metric formulas.
//
// Purpose:
//   - Keep ALL evaluation logic in one kernel (evaluate); the public
//     dispatchers and facades in api.go only select a formula and forward.
//   - Apply one degenerate-result policy everywhere: zero denominator or NaN
//     maps to 0, never to an error.
//
// Determinism & Performance:
//   - Per-label traversal follows label order; no map iteration.
//   - No caching: each call recomputes from the live matrix state.

package metrics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/confmat/confusion"
)

// formula maps one label's (or the pooled) confusion counts to a metric value.
type formula func(confusion.Counts) float64

// metricsErrorf wraps an underlying error with the metric family tag.
func metricsErrorf(metric string, err error) error {
	return fmt.Errorf("metrics.%s: %w", metric, err)
}

// safeRatio divides num by den under the degenerate-result policy:
// zero denominator, NaN or ±Inf results collapse to 0.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}

	return q
}

// ---------- per-family formulas (TP/TN/FP/FN per GLOSSARY) ----------

// accuracy = (TP+TN) / (TP+TN+FP+FN)
func accuracyOf(c confusion.Counts) float64 {
	return safeRatio(c.TruePositive+c.TrueNegative, c.Total())
}

// misclassification rate = (FP+FN) / (TP+TN+FP+FN)
func misclassificationOf(c confusion.Counts) float64 {
	return safeRatio(c.FalsePositive+c.FalseNegative, c.Total())
}

// precision = TP / (TP+FP)
func precisionOf(c confusion.Counts) float64 {
	return safeRatio(c.TruePositive, c.TruePositive+c.FalsePositive)
}

// recall = TP / (TP+FN)
func recallOf(c confusion.Counts) float64 {
	return safeRatio(c.TruePositive, c.TruePositive+c.FalseNegative)
}

// specificity = TN / (TN+FP)
func specificityOf(c confusion.Counts) float64 {
	return safeRatio(c.TrueNegative, c.TrueNegative+c.FalsePositive)
}

// f1 = 2·(precision·recall) / (precision+recall)
func f1Of(c confusion.Counts) float64 {
	p, r := precisionOf(c), recallOf(c)

	return safeRatio(2*p*r, p+r)
}

// evaluate is the single canonical kernel behind every public entry point.
//
// Implementation:
//   - Stage 1: nil guard and defensive invariant re-check (the matrix is
//     mutable between calls; failures surface the ErrInvalidMatrix family).
//   - Stage 2: resolve options; WithLabel overrides averaging.
//   - Stage 3: label mode — counts for that label, formula once.
//     Micro — formula once over pooled SumCounts.
//     Macro — unweighted mean of per-label values.
//     Weighted — per-label values weighted by predicted totals over the
//     grand total of predictions.
//
// Errors:
//   - confusion.ErrNilMatrix, confusion.ErrInvalidMatrix family,
//     confusion.ErrInvalidLabel / ErrUnknownLabel in label mode.
//
// Complexity: O(n²) label/micro, O(n³) macro/weighted.
func evaluate(m *confusion.Matrix, metric string, f formula, opts []Option) (float64, error) {
	// Stage 1: validation first; a stale or nil matrix never reaches a formula.
	if err := m.Validate(); err != nil {
		return 0, metricsErrorf(metric, err)
	}

	// Stage 2: resolve configuration.
	o := gatherOptions(opts)

	// Stage 3: single-label mode wins over any averaging option.
	if o.hasLabel {
		c, err := m.CountsFor(o.label)
		if err != nil {
			return 0, metricsErrorf(metric, err)
		}

		return f(c), nil
	}

	switch o.average {
	case Micro:
		return f(m.SumCounts()), nil

	case Macro:
		all := m.AllCounts()
		var sum float64
		for _, c := range all {
			sum += f(c)
		}

		return safeRatio(sum, float64(len(all))), nil

	default: // Weighted
		all := m.AllCounts()
		weights := m.PredictionSums()
		var sum float64
		for i, c := range all {
			sum += f(c) * weights[i]
		}

		return safeRatio(sum, m.TotalPredictions()), nil
	}
}
