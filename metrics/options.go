// Package metrics: functional configuration for the metric dispatchers.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults in one place.
//   - Safe by construction: panic only on nonsensical enum values
//     (programmer error); empty labels flow through to ErrInvalidLabel at
//     evaluation time because they are a caller-data problem, not a
//     programming one.

package metrics

// DefaultAverage is applied when no WithAverage option is given.
const DefaultAverage = Weighted

const panicUnknownAverage = "metrics: WithAverage: unknown averaging mode"

// Option mutates dispatcher options. Public entry points accept ...Option
// and resolve them via gatherOptions.
type Option func(*options)

// options stores the effective dispatcher configuration.
type options struct {
	label    string  // target label when hasLabel
	hasLabel bool    // WithLabel seen; overrides averaging entirely
	average  Average // DefaultAverage unless WithAverage given
}

// WithLabel pins the metric to a single label; it overrides any WithAverage.
// An empty label is rejected at evaluation time with ErrInvalidLabel.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
		o.hasLabel = true
	}
}

// WithAverage selects the matrix-wide averaging mode.
// Panics when avg is outside the closed Micro/Macro/Weighted set.
func WithAverage(avg Average) Option {
	if !avg.valid() {
		panic(panicUnknownAverage)
	}

	return func(o *options) { o.average = avg }
}

// gatherOptions resolves defaults then applies setters in order.
func gatherOptions(opts []Option) options {
	o := options{average: DefaultAverage}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
