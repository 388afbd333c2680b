package recurrence

import "fmt"

// Result bundles the three outputs of one analysis.
type Result struct {
	Equation string   // reconstructed relation text
	Method   string   // method and case label
	Bound    string   // notation-prefixed asymptotic expression
	Case     Case     // branch that produced Method and Bound
	Notation Notation // symbol used in Bound
}

// Decide runs case analysis for spec without rendering it.
//
// Errors:
//   - ErrNilSpec when spec is nil.
func Decide(spec Spec, opts ...Option) (Decision, error) {
	if spec == nil {
		return Decision{}, ErrNilSpec
	}
	o := gatherOptions(opts...)
	d := spec.decide(o.tol)
	o.logger.V(1).Info("recurrence decided",
		"relation", spec.Relation().String(),
		"equation", spec.Equation(),
		"shape", spec.Shape().String(),
		"case", d.Case.String(),
		"method", d.MethodName())

	return d, nil
}

// Analyze decides spec and renders its equation, method name and bound.
//
// Errors:
//   - ErrNilSpec when spec is nil.
//   - ErrUnknownNotation when n is not O, Ω or Θ.
func Analyze(spec Spec, n Notation, opts ...Option) (Result, error) {
	if !n.Valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownNotation, string(n))
	}
	d, err := Decide(spec, opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Equation: spec.Equation(),
		Method:   d.MethodName(),
		Bound:    d.Bound(n),
		Case:     d.Case,
		Notation: n,
	}, nil
}
