package recurrence

import (
	"math"
	"strings"

	"github.com/katalvlaran/recurrence/shape"
)

// doubleLogMarker flags f(n) = log log n. Descriptions are normalized, so
// "log log" arrives without its space.
const doubleLogMarker = "loglog"

// decide selects the method and case for a dividing relation.
//
// Implementation:
//   - Stage 1: different sizes → Approximation Method on the effective factor.
//   - Stage 2: exponential or doubly logarithmic f(n) → Extended Master Theorem,
//     when one of its branches applies.
//   - Stage 3: otherwise the Master Theorem, Case 2 first.
func (s DividingSpec) decide(tol float64) Decision {
	if s.differentSizes {
		return s.approximate(tol)
	}

	logAB := math.Log(s.a) / math.Log(s.b)
	k := shape.PolynomialExponent(s.f, s.shape)
	bPowerK := math.Pow(s.b, k)

	if s.shape.Kind == shape.Exponential || strings.Contains(s.f, doubleLogMarker) {
		if d, ok := s.extended(logAB); ok {
			return d
		}
	}

	return master(s.a, bPowerK, logAB, k, s.shape.LogPower, tol)
}

// approximate models T(n/b) + T(n/b') as two equal subproblems of the
// harmonic-mean size and compares f(n) against n^(log 2 / log b_eff).
func (s DividingSpec) approximate(tol float64) Decision {
	avgInverse := (1/s.b + 1/s.bPrime) / 2
	effectiveB := 1 / avgInverse
	effectiveA := 2.0
	logRatio := math.Log(effectiveA) / math.Log(effectiveB)

	d := Decision{Exponent: logRatio}
	switch s.shape.Kind {
	case shape.Constant:
		d.Case = CaseApproxConstant

	case shape.Polynomial:
		e := shape.PolynomialExponent(s.f, s.shape)
		switch {
		case e < logRatio:
			d.Case = CaseApproxPolyBelow
		case math.Abs(e-logRatio) < tol:
			d.Case = CaseApproxPolyTie
		default:
			d.Case, d.Exponent = CaseApproxPolyAbove, e
		}

	case shape.Logarithmic:
		if s.shape.LogPower > 1.0 {
			d.Case, d.LogPower = CaseApproxLogPower, s.shape.LogPower
		} else {
			d.Case = CaseApproxLog
		}

	case shape.Exponential:
		d.Case, d.Base = CaseApproxExponential, s.shape.Base

	default:
		d.Case = CaseApproxFallback
	}

	return d
}

// extended applies the Extended Master Theorem. ok is false when none of
// its branches fits and the ordinary Master Theorem must decide.
func (s DividingSpec) extended(logAB float64) (Decision, bool) {
	switch {
	case s.shape.Kind == shape.Exponential && s.shape.Base > 1.0:
		return Decision{Case: CaseExtendedExponential, Base: s.shape.Base}, true

	case s.shape.Kind == shape.Logarithmic && s.shape.LogPower > 1.0:
		return Decision{Case: CaseExtendedLogPower, Exponent: logAB, LogPower: s.shape.LogPower}, true

	case s.shape.Kind == shape.Logarithmic:
		return Decision{Case: CaseExtendedLogLog, Exponent: logAB}, true
	}

	return Decision{}, false
}

// master applies the Master Theorem comparing a against b^k with the log
// power p of f(n). Case 2 is tested first so that |a − b^k| < tol is
// never reported as Case 1 or 3. Incomparable (NaN) inputs end in CaseAdvanced.
func master(a, bPowerK, logAB, k, p, tol float64) Decision {
	switch {
	case math.Abs(a-bPowerK) < tol:
		switch {
		case p > -1:
			return Decision{Case: CaseMaster2a, Exponent: logAB, LogPower: p + 1}
		case math.Abs(p+1) < tol:
			return Decision{Case: CaseMaster2b, Exponent: logAB}
		default:
			return Decision{Case: CaseMaster2c, Exponent: logAB}
		}

	case a > bPowerK:
		return Decision{Case: CaseMaster1, Exponent: logAB}

	case a < bPowerK:
		if p >= 0 {
			return Decision{Case: CaseMaster3a, Exponent: k, LogPower: p}
		}
		return Decision{Case: CaseMaster3b, Exponent: k}
	}

	return Decision{Case: CaseAdvanced, Exponent: k, LogPower: p}
}
