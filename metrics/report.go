// Package metrics: aggregate reporting.
//
// Purpose:
//   - Compute every metric under every mode in a single call, shaped for
//     display layers (JSON-tagged, label order preserved).
//   - Delegate all numbers to the canonical kernel: a Report value is always
//     consistent with the individual dispatchers.

package metrics

import "github.com/katalvlaran/confmat/confusion"

const tagReport = "Report"

// LabelReport holds the counts and the six per-label metric values for one
// label. Support is the label's predicted total (its column sum).
type LabelReport struct {
	Label             string           `json:"label"`
	Counts            confusion.Counts `json:"counts"`
	Support           float64          `json:"support"`
	Accuracy          float64          `json:"accuracy"`
	Misclassification float64          `json:"misclassification_rate"`
	Precision         float64          `json:"precision"`
	Recall            float64          `json:"recall"`
	Specificity       float64          `json:"specificity"`
	F1                float64          `json:"f1"`
}

// Averaged holds one metric family's value under each averaging mode.
type Averaged struct {
	Micro    float64 `json:"micro"`
	Macro    float64 `json:"macro"`
	Weighted float64 `json:"weighted"`
}

// Report aggregates per-label and averaged metrics for one matrix snapshot.
type Report struct {
	Labels            []LabelReport `json:"labels"`
	Accuracy          Averaged      `json:"accuracy"`
	Misclassification Averaged      `json:"misclassification_rate"`
	Precision         Averaged      `json:"precision"`
	Recall            Averaged      `json:"recall"`
	Specificity       Averaged      `json:"specificity"`
	F1                Averaged      `json:"f1"`
	TotalPredictions  float64       `json:"total_predictions"`
}

// NewReport evaluates every metric family per label and under all three
// averaging modes. Values match the individual dispatchers exactly.
//
// Errors: confusion.ErrNilMatrix or the ErrInvalidMatrix family.
// Complexity: O(n³).
func NewReport(m *confusion.Matrix) (*Report, error) {
	if err := m.Validate(); err != nil {
		return nil, metricsErrorf(tagReport, err)
	}

	labels := m.Labels()
	all := m.AllCounts()
	supports := m.PredictionSums()

	rep := &Report{
		Labels:           make([]LabelReport, len(labels)),
		TotalPredictions: m.TotalPredictions(),
	}
	for i, c := range all {
		rep.Labels[i] = LabelReport{
			Label:             labels[i],
			Counts:            c,
			Support:           supports[i],
			Accuracy:          accuracyOf(c),
			Misclassification: misclassificationOf(c),
			Precision:         precisionOf(c),
			Recall:            recallOf(c),
			Specificity:       specificityOf(c),
			F1:                f1Of(c),
		}
	}

	var err error
	if rep.Accuracy, err = averagedOf(m, tagAccuracy, accuracyOf); err != nil {
		return nil, err
	}
	if rep.Misclassification, err = averagedOf(m, tagMisclassification, misclassificationOf); err != nil {
		return nil, err
	}
	if rep.Precision, err = averagedOf(m, tagPrecision, precisionOf); err != nil {
		return nil, err
	}
	if rep.Recall, err = averagedOf(m, tagRecall, recallOf); err != nil {
		return nil, err
	}
	if rep.Specificity, err = averagedOf(m, tagSpecificity, specificityOf); err != nil {
		return nil, err
	}
	if rep.F1, err = averagedOf(m, tagF1, f1Of); err != nil {
		return nil, err
	}

	return rep, nil
}

// averagedOf evaluates one formula under all three modes via the kernel.
func averagedOf(m *confusion.Matrix, tag string, f formula) (Averaged, error) {
	var out Averaged
	var err error
	if out.Micro, err = evaluate(m, tag, f, []Option{WithAverage(Micro)}); err != nil {
		return Averaged{}, err
	}
	if out.Macro, err = evaluate(m, tag, f, []Option{WithAverage(Macro)}); err != nil {
		return Averaged{}, err
	}
	if out.Weighted, err = evaluate(m, tag, f, []Option{WithAverage(Weighted)}); err != nil {
		return Averaged{}, err
	}

	return out, nil
}
