// Package metrics: averaging modes.

package metrics

// Average selects how a metric is aggregated across labels. The set is
// closed and stable; represent it as this tagged enumeration, never as
// strings.
type Average int

const (
	// Micro pools all labels' counts before computing the metric once.
	Micro Average = iota

	// Macro computes the per-label metric, then takes the unweighted mean.
	Macro

	// Weighted computes the per-label metric, then takes the mean weighted
	// by each label's share of total predictions. This is the dispatcher
	// default.
	Weighted
)

// valid reports whether a is a member of the closed set.
func (a Average) valid() bool {
	return a >= Micro && a <= Weighted
}

// String implements fmt.Stringer for logs and test diagnostics.
func (a Average) String() string {
	switch a {
	case Micro:
		return "Micro"
	case Macro:
		return "Macro"
	case Weighted:
		return "Weighted"
	default:
		return "Average(?)"
	}
}
