package recurrence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/recurrence/shape"
)

// decide selects the method for a decreasing relation:
// a = 1 → Muster, a < 1 → f(n) unchanged, a > 1 → Substitution.
func (s DecreasingSpec) decide(_ float64) Decision {
	switch {
	case s.a == 1:
		return s.muster()
	case s.a < 1:
		return Decision{Case: CasePassThrough, Term: s.f}
	}

	return s.substitute()
}

// ApplyMuster renders the Muster Theorem bound of s under notation n.
// It returns ErrMusterCoefficient when s.A() != 1; Solve never gets here
// with such a spec.
func ApplyMuster(s DecreasingSpec, n Notation) (string, error) {
	if s.a != 1 {
		return "", fmt.Errorf("%w: a = %s", ErrMusterCoefficient, number(s.a))
	}

	return s.muster().Bound(n), nil
}

// muster sums f over n levels of a single-branch recursion.
func (s DecreasingSpec) muster() Decision {
	switch s.shape.Kind {
	case shape.Constant:
		return Decision{Case: CaseMusterConstant}
	case shape.Polynomial:
		e := shape.PolynomialExponent(s.f, s.shape)
		return Decision{Case: CaseMusterPolynomial, Exponent: e + 1}
	case shape.Logarithmic:
		if s.shape.LogPower > 1.0 {
			return Decision{Case: CaseMusterLogPower, LogPower: s.shape.LogPower}
		}
		return Decision{Case: CaseMusterLog}
	case shape.Exponential:
		return Decision{Case: CaseMusterExponential, Base: s.shape.Base}
	}

	return Decision{Case: CaseMusterOther, Term: s.f}
}

// substitute expands a > 1 branches per level: a^(n/b) leaves, each
// weighted by f. An exponential f(n) competes with the recursion for the
// growth rate.
func (s DecreasingSpec) substitute() Decision {
	d := Decision{Base: s.a, Step: s.b}
	switch s.shape.Kind {
	case shape.Polynomial:
		d.Case = CaseSubstPolynomial
		d.Exponent = shape.PolynomialExponent(s.f, s.shape)
	case shape.Logarithmic:
		if s.shape.LogPower > 1.0 {
			d.Case, d.LogPower = CaseSubstLogPower, s.shape.LogPower
		} else {
			d.Case = CaseSubstLog
		}
	case shape.Exponential:
		d.Case = CaseSubstExponential
		d.Base = math.Max(s.a, math.Pow(s.shape.Base, s.b))
	default:
		d.Case = CaseSubstConstant
	}

	return d
}
