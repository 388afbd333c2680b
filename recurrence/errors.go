package recurrence

import "errors"

var (
	// ErrNilSpec indicates that Analyze or Decide received a nil Spec.
	ErrNilSpec = errors.New("recurrence: spec is nil")

	// ErrUnknownNotation indicates a notation outside O, Ω and Θ.
	ErrUnknownNotation = errors.New("recurrence: unknown notation")

	// ErrMusterCoefficient signals a Muster derivation requested for a != 1.
	// Solve never triggers it; only a direct ApplyMuster call can.
	ErrMusterCoefficient = errors.New("recurrence: muster method requires a == 1")
)
