package recurrence

import (
	"math"

	"github.com/go-logr/logr"
)

// DefaultTolerance is the absolute tolerance used by every equality test
// between floating-point quantities (a vs b^k, p vs -1, e vs log ratio).
const DefaultTolerance = 1e-4

const panicToleranceInvalid = "recurrence: WithTolerance: tol must be finite and > 0"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective configuration of a decision.
type Options struct {
	tol    float64     // DefaultTolerance
	logger logr.Logger // logr.Discard()
}

// WithTolerance sets the absolute tolerance for equality tests.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or not positive.
//
// AI-Hints:
//   - Widening the tolerance moves relations from Case 1/3 into Case 2;
//     keep the default unless inputs carry measured (noisy) coefficients.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithLogger traces every decision at verbosity 1.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:    DefaultTolerance,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
