package recurrence

import (
	"fmt"
	"strings"
)

// Case identifies the method and the branch of that method that produced
// a bound. It is the single source for both the method name and the bound.
type Case int

const (
	// CaseApproxConstant – different sizes, constant f(n): n^r.
	CaseApproxConstant Case = iota
	// CaseApproxPolyBelow – different sizes, n^e with e < r: n^r.
	CaseApproxPolyBelow
	// CaseApproxPolyTie – different sizes, n^e with e ≈ r: n^r · log(n).
	CaseApproxPolyTie
	// CaseApproxPolyAbove – different sizes, n^e with e > r: n^e.
	CaseApproxPolyAbove
	// CaseApproxLogPower – different sizes, log^p(n) with p > 1: n^r · log^p(n).
	CaseApproxLogPower
	// CaseApproxLog – different sizes, log^p(n) with p ≤ 1: n^r · log(n).
	CaseApproxLog
	// CaseApproxExponential – different sizes, k^n: k^n.
	CaseApproxExponential
	// CaseApproxFallback – different sizes, unknown shape: n^r.
	CaseApproxFallback

	// CaseExtendedExponential – k^n with k > 1: k^n.
	CaseExtendedExponential
	// CaseExtendedLogPower – doubly logarithmic marker, p > 1: n^logAB · log^p(n).
	CaseExtendedLogPower
	// CaseExtendedLogLog – doubly logarithmic marker, p ≤ 1: n^logAB · log log n.
	CaseExtendedLogLog

	// CaseMaster1 – a > b^k: n^logAB.
	CaseMaster1
	// CaseMaster2a – a ≈ b^k, p > −1: n^logAB · log^(p+1)(n).
	CaseMaster2a
	// CaseMaster2b – a ≈ b^k, p ≈ −1: n^logAB · log log n.
	CaseMaster2b
	// CaseMaster2c – a ≈ b^k, p < −1: n^logAB.
	CaseMaster2c
	// CaseMaster3a – a < b^k, p ≥ 0: n^k · log^p(n).
	CaseMaster3a
	// CaseMaster3b – a < b^k, p < 0: n^k.
	CaseMaster3b
	// CaseAdvanced – a and b^k are not comparable (NaN): rendered as Case 3.
	CaseAdvanced

	// CaseMusterConstant – a = 1, constant f(n): n.
	CaseMusterConstant
	// CaseMusterPolynomial – a = 1, n^e: n^(e+1).
	CaseMusterPolynomial
	// CaseMusterLogPower – a = 1, log^p(n) with p > 1: n · log^p(n).
	CaseMusterLogPower
	// CaseMusterLog – a = 1, log^p(n) with p ≤ 1: n · log(n).
	CaseMusterLog
	// CaseMusterExponential – a = 1, k^n: n · k^n.
	CaseMusterExponential
	// CaseMusterOther – a = 1, unknown shape: n · f(n).
	CaseMusterOther

	// CasePassThrough – a < 1: f(n) unchanged.
	CasePassThrough

	// CaseSubstConstant – a > 1, constant f(n): a^(n/b).
	CaseSubstConstant
	// CaseSubstPolynomial – a > 1, n^e: n^e · a^(n/b).
	CaseSubstPolynomial
	// CaseSubstLogPower – a > 1, log^p(n) with p > 1: log^p(n) · a^(n/b).
	CaseSubstLogPower
	// CaseSubstLog – a > 1, log^p(n) with p ≤ 1: log(n) · a^(n/b).
	CaseSubstLog
	// CaseSubstExponential – a > 1, k^n: max(a, k^b)^(n/b).
	CaseSubstExponential
)

var caseNames = [...]string{
	CaseApproxConstant:      "approximation-constant",
	CaseApproxPolyBelow:     "approximation-polynomial-below",
	CaseApproxPolyTie:       "approximation-polynomial-tie",
	CaseApproxPolyAbove:     "approximation-polynomial-above",
	CaseApproxLogPower:      "approximation-log-power",
	CaseApproxLog:           "approximation-log",
	CaseApproxExponential:   "approximation-exponential",
	CaseApproxFallback:      "approximation-fallback",
	CaseExtendedExponential: "extended-exponential",
	CaseExtendedLogPower:    "extended-log-power",
	CaseExtendedLogLog:      "extended-log-log",
	CaseMaster1:             "master-1",
	CaseMaster2a:            "master-2a",
	CaseMaster2b:            "master-2b",
	CaseMaster2c:            "master-2c",
	CaseMaster3a:            "master-3a",
	CaseMaster3b:            "master-3b",
	CaseAdvanced:            "advanced-master",
	CaseMusterConstant:      "muster-constant",
	CaseMusterPolynomial:    "muster-polynomial",
	CaseMusterLogPower:      "muster-log-power",
	CaseMusterLog:           "muster-log",
	CaseMusterExponential:   "muster-exponential",
	CaseMusterOther:         "muster-other",
	CasePassThrough:         "pass-through",
	CaseSubstConstant:       "substitution-constant",
	CaseSubstPolynomial:     "substitution-polynomial",
	CaseSubstLogPower:       "substitution-log-power",
	CaseSubstLog:            "substitution-log",
	CaseSubstExponential:    "substitution-exponential",
}

// String returns a stable identifier, e.g. "master-2a".
func (c Case) String() string {
	if c >= 0 && int(c) < len(caseNames) {
		return caseNames[c]
	}
	return fmt.Sprintf("case(%d)", int(c))
}

// Method names shared by the formatters.
const (
	MethodApproximation = "Approximation Method"
	MethodExtended      = "Extended Master Theorem"
	MethodAdvanced      = "Advanced Master Theorem"
	MethodMuster        = "Muster Theorem"
	MethodSubstitution  = "Substitution Method"
	methodMasterFormat  = "Master Theorem (Case %s)"
)

// Decision is the outcome of case analysis for one relation together with
// the numbers its bound is built from. Fields not used by Case are zero.
type Decision struct {
	Case     Case
	Exponent float64 // power of n: log_b a, the log ratio, k or e
	LogPower float64 // power of the log factor
	Base     float64 // base of the exponential factor or growth rate
	Step     float64 // b in ^(n/b)
	Term     string  // raw f(n) for pass-through and unknown shapes
}

// MethodName renders the method (and case) label.
func (d Decision) MethodName() string {
	switch d.Case {
	case CaseApproxConstant, CaseApproxPolyBelow, CaseApproxPolyTie, CaseApproxPolyAbove,
		CaseApproxLogPower, CaseApproxLog, CaseApproxExponential, CaseApproxFallback:
		return MethodApproximation
	case CaseExtendedExponential, CaseExtendedLogPower, CaseExtendedLogLog:
		return MethodExtended
	case CaseMaster1:
		return fmt.Sprintf(methodMasterFormat, "1")
	case CaseMaster2a:
		return fmt.Sprintf(methodMasterFormat, "2a")
	case CaseMaster2b:
		return fmt.Sprintf(methodMasterFormat, "2b")
	case CaseMaster2c:
		return fmt.Sprintf(methodMasterFormat, "2c")
	case CaseMaster3a:
		return fmt.Sprintf(methodMasterFormat, "3a")
	case CaseMaster3b:
		return fmt.Sprintf(methodMasterFormat, "3b")
	case CaseMusterConstant, CaseMusterPolynomial, CaseMusterLogPower, CaseMusterLog,
		CaseMusterExponential, CaseMusterOther:
		return MethodMuster
	case CasePassThrough, CaseSubstConstant, CaseSubstPolynomial, CaseSubstLogPower,
		CaseSubstLog, CaseSubstExponential:
		return MethodSubstitution
	}

	return MethodAdvanced
}

// Bound renders the asymptotic expression under notation n.
// The notation only prefixes the expression.
func (d Decision) Bound(n Notation) string {
	return string(n) + "(" + d.Expression() + ")"
}

// Expression renders the bound without the notation symbol.
func (d Decision) Expression() string {
	switch d.Case {
	case CaseApproxConstant, CaseApproxPolyBelow, CaseApproxPolyAbove, CaseApproxFallback,
		CaseMaster1, CaseMaster2c, CaseMaster3b:
		return power(d.Exponent)

	case CaseApproxPolyTie, CaseApproxLog:
		return join(power(d.Exponent), logTerm)

	case CaseApproxLogPower, CaseExtendedLogPower, CaseMaster2a, CaseMaster3a:
		return join(power(d.Exponent), logPower(d.LogPower))

	case CaseApproxExponential, CaseExtendedExponential:
		return exponential(d.Base)

	case CaseExtendedLogLog, CaseMaster2b:
		return join(power(d.Exponent), logLogTerm)

	case CaseAdvanced:
		if d.LogPower >= 0 {
			return join(power(d.Exponent), logPower(d.LogPower))
		}
		return power(d.Exponent)

	case CaseMusterConstant:
		return variableTerm
	case CaseMusterPolynomial:
		return power(d.Exponent)
	case CaseMusterLogPower:
		return join(variableTerm, logPower(d.LogPower))
	case CaseMusterLog:
		return join(variableTerm, logTerm)
	case CaseMusterExponential:
		return join(variableTerm, exponential(d.Base))
	case CaseMusterOther:
		return join(variableTerm, d.Term)

	case CasePassThrough:
		return d.Term

	case CaseSubstConstant, CaseSubstExponential:
		return stepped(d.Base, d.Step)
	case CaseSubstPolynomial:
		return join(power(d.Exponent), stepped(d.Base, d.Step))
	case CaseSubstLogPower:
		return join(logPower(d.LogPower), stepped(d.Base, d.Step))
	case CaseSubstLog:
		return join(logTerm, stepped(d.Base, d.Step))
	}

	return d.Term
}

// Fragments of the output grammar.
const (
	variableTerm = "n"
	logTerm      = "log(n)"
	logLogTerm   = "log log n"
	factorSep    = " · "
)

func decimal(v float64) string       { return fmt.Sprintf("%.2f", v) }
func power(e float64) string         { return "n^" + decimal(e) }
func logPower(p float64) string      { return "log^" + decimal(p) + "(n)" }
func exponential(k float64) string   { return decimal(k) + "^n" }
func stepped(k, step float64) string { return decimal(k) + "^(n/" + decimal(step) + ")" }
func join(factors ...string) string  { return strings.Join(factors, factorSep) }
