// Package metrics — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points: one dispatcher per
//     metric family plus Label/Micro/Macro/Weighted facades.
//   - Avoid any logic duplication — every facade delegates to the family
//     dispatcher, which delegates to the canonical kernel in metrics.go.
//
// Policy:
//   - Dispatchers default to Weighted averaging; WithLabel overrides
//     averaging entirely.
//   - Every entry point revalidates the matrix and applies the shared
//     degenerate-result policy (0 on 0/0-style cases).

package metrics

import "github.com/katalvlaran/confmat/confusion"

// ---------- metric family tags for error wrapping ----------

const (
	tagAccuracy          = "Accuracy"
	tagMisclassification = "Misclassification"
	tagPrecision         = "Precision"
	tagRecall            = "Recall"
	tagSpecificity       = "Specificity"
	tagF1                = "F1"
)

// ---------- dispatchers (one per metric family) ----------

// Accuracy returns (TP+TN)/(TP+TN+FP+FN) under the configured mode:
// WithLabel for one label, else WithAverage (default Weighted).
func Accuracy(m *confusion.Matrix, opts ...Option) (float64, error) {
	return evaluate(m, tagAccuracy, accuracyOf, opts)
}

// Misclassification returns (FP+FN)/(TP+TN+FP+FN) — the complement of
// Accuracy — under the configured mode.
func Misclassification(m *confusion.Matrix, opts ...Option) (float64, error) {
	return evaluate(m, tagMisclassification, misclassificationOf, opts)
}

// Precision returns TP/(TP+FP) under the configured mode.
func Precision(m *confusion.Matrix, opts ...Option) (float64, error) {
	return evaluate(m, tagPrecision, precisionOf, opts)
}

// Recall returns TP/(TP+FN) under the configured mode.
func Recall(m *confusion.Matrix, opts ...Option) (float64, error) {
	return evaluate(m, tagRecall, recallOf, opts)
}

// Specificity returns TN/(TN+FP) under the configured mode.
func Specificity(m *confusion.Matrix, opts ...Option) (float64, error) {
	return evaluate(m, tagSpecificity, specificityOf, opts)
}

// F1 returns 2·(precision·recall)/(precision+recall) under the configured mode.
func F1(m *confusion.Matrix, opts ...Option) (float64, error) {
	return evaluate(m, tagF1, f1Of, opts)
}

// ---------- per-label facades ----------

// LabelAccuracy is Accuracy pinned to one label.
func LabelAccuracy(m *confusion.Matrix, label string) (float64, error) {
	return Accuracy(m, WithLabel(label))
}

// LabelMisclassification is Misclassification pinned to one label.
func LabelMisclassification(m *confusion.Matrix, label string) (float64, error) {
	return Misclassification(m, WithLabel(label))
}

// LabelPrecision is Precision pinned to one label.
func LabelPrecision(m *confusion.Matrix, label string) (float64, error) {
	return Precision(m, WithLabel(label))
}

// LabelRecall is Recall pinned to one label.
func LabelRecall(m *confusion.Matrix, label string) (float64, error) {
	return Recall(m, WithLabel(label))
}

// LabelSpecificity is Specificity pinned to one label.
func LabelSpecificity(m *confusion.Matrix, label string) (float64, error) {
	return Specificity(m, WithLabel(label))
}

// LabelF1 is F1 pinned to one label.
func LabelF1(m *confusion.Matrix, label string) (float64, error) {
	return F1(m, WithLabel(label))
}

// ---------- micro facades ----------

// MicroAccuracy pools counts across labels, then applies the accuracy formula once.
func MicroAccuracy(m *confusion.Matrix) (float64, error) {
	return Accuracy(m, WithAverage(Micro))
}

// MicroMisclassification pools counts, then applies the misclassification formula once.
func MicroMisclassification(m *confusion.Matrix) (float64, error) {
	return Misclassification(m, WithAverage(Micro))
}

// MicroPrecision pools counts, then applies the precision formula once.
func MicroPrecision(m *confusion.Matrix) (float64, error) {
	return Precision(m, WithAverage(Micro))
}

// MicroRecall pools counts, then applies the recall formula once.
func MicroRecall(m *confusion.Matrix) (float64, error) {
	return Recall(m, WithAverage(Micro))
}

// MicroSpecificity pools counts, then applies the specificity formula once.
func MicroSpecificity(m *confusion.Matrix) (float64, error) {
	return Specificity(m, WithAverage(Micro))
}

// MicroF1 pools counts, then applies the F1 formula once.
func MicroF1(m *confusion.Matrix) (float64, error) {
	return F1(m, WithAverage(Micro))
}

// ---------- macro facades ----------

// MacroAccuracy is the unweighted mean of per-label accuracy.
func MacroAccuracy(m *confusion.Matrix) (float64, error) {
	return Accuracy(m, WithAverage(Macro))
}

// MacroMisclassification is the unweighted mean of per-label misclassification rates.
func MacroMisclassification(m *confusion.Matrix) (float64, error) {
	return Misclassification(m, WithAverage(Macro))
}

// MacroPrecision is the unweighted mean of per-label precision.
func MacroPrecision(m *confusion.Matrix) (float64, error) {
	return Precision(m, WithAverage(Macro))
}

// MacroRecall is the unweighted mean of per-label recall.
func MacroRecall(m *confusion.Matrix) (float64, error) {
	return Recall(m, WithAverage(Macro))
}

// MacroSpecificity is the unweighted mean of per-label specificity.
func MacroSpecificity(m *confusion.Matrix) (float64, error) {
	return Specificity(m, WithAverage(Macro))
}

// MacroF1 is the unweighted mean of per-label F1.
func MacroF1(m *confusion.Matrix) (float64, error) {
	return F1(m, WithAverage(Macro))
}

// ---------- weighted facades ----------

// WeightedAccuracy is per-label accuracy weighted by predicted totals.
func WeightedAccuracy(m *confusion.Matrix) (float64, error) {
	return Accuracy(m, WithAverage(Weighted))
}

// WeightedMisclassification is per-label misclassification weighted by predicted totals.
func WeightedMisclassification(m *confusion.Matrix) (float64, error) {
	return Misclassification(m, WithAverage(Weighted))
}

// WeightedPrecision is per-label precision weighted by predicted totals.
func WeightedPrecision(m *confusion.Matrix) (float64, error) {
	return Precision(m, WithAverage(Weighted))
}

// WeightedRecall is per-label recall weighted by predicted totals.
func WeightedRecall(m *confusion.Matrix) (float64, error) {
	return Recall(m, WithAverage(Weighted))
}

// WeightedSpecificity is per-label specificity weighted by predicted totals.
func WeightedSpecificity(m *confusion.Matrix) (float64, error) {
	return Specificity(m, WithAverage(Weighted))
}

// WeightedF1 is per-label F1 weighted by predicted totals.
func WeightedF1(m *confusion.Matrix) (float64, error) {
	return F1(m, WithAverage(Weighted))
}
