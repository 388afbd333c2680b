package recurrence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/recurrence/shape"
)

// Notation is the asymptotic symbol printed in front of a bound.
// It never influences which case fires.
type Notation string

const (
	// BigO marks an upper bound.
	BigO Notation = "O"

	// BigOmega marks a lower bound.
	BigOmega Notation = "Ω"

	// BigTheta marks a tight bound.
	BigTheta Notation = "Θ"
)

// Valid reports whether n is one of the three known symbols.
func (n Notation) Valid() bool {
	switch n {
	case BigO, BigOmega, BigTheta:
		return true
	}
	return false
}

// ParseNotation maps user text to a Notation. It accepts the symbols,
// their names and the menu digits 1 (O), 2 (Ω) and 3 (Θ).
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "o", "big-o", "bigo":
		return BigO, nil
	case "2", "ω", "omega", "big-omega", "bigomega":
		return BigOmega, nil
	case "3", "θ", "theta", "big-theta", "bigtheta":
		return BigTheta, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownNotation, s)
}

// Relation identifies the recurrence family.
type Relation int

const (
	// Dividing is T(n) = a·T(n/b) + f(n) and its two-term variant.
	Dividing Relation = iota

	// Decreasing is T(n) = a·T(n−b) + f(n).
	Decreasing
)

// String returns the lower-case family name used in logs and JSON.
func (r Relation) String() string {
	switch r {
	case Dividing:
		return "dividing"
	case Decreasing:
		return "decreasing"
	}
	return fmt.Sprintf("relation(%d)", int(r))
}

// Spec is a fully classified recurrence. The set of implementations is
// closed: DividingSpec and DecreasingSpec.
type Spec interface {
	// Relation reports the family.
	Relation() Relation
	// A is the subproblem count (dividing) or multiplier (decreasing).
	A() float64
	// B is the division factor (dividing) or the decrement (decreasing).
	B() float64
	// Description is the normalized f(n) text.
	Description() string
	// Shape is the classification of Description.
	Shape() shape.Shape
	// Equation reconstructs the relation as text.
	Equation() string

	decide(tol float64) Decision
}

// base carries the fields shared by both families.
type base struct {
	a, b  float64
	f     string
	shape shape.Shape
}

func newBase(a, b float64, f string) base {
	f = shape.Normalize(f)
	return base{a: a, b: b, f: f, shape: shape.Classify(f)}
}

func (s base) A() float64          { return s.a }
func (s base) B() float64          { return s.b }
func (s base) Description() string { return s.f }
func (s base) Shape() shape.Shape  { return s.shape }

// DividingSpec is T(n) = a·T(n/b) + f(n), or T(n) = T(n/b) + T(n/b') + f(n)
// when DifferentSizes reports true.
type DividingSpec struct {
	base
	differentSizes bool
	bPrime         float64
}

// NewDividingSpec builds T(n) = a·T(n/b) + f(n).
func NewDividingSpec(a, b float64, f string) DividingSpec {
	return DividingSpec{base: newBase(a, b, f)}
}

// NewSplitDividingSpec builds T(n) = T(n/b) + T(n/b') + f(n).
// The subproblem count is fixed at 2.
func NewSplitDividingSpec(b, bPrime float64, f string) DividingSpec {
	return DividingSpec{
		base:           newBase(2, b, f),
		differentSizes: true,
		bPrime:         bPrime,
	}
}

// Relation returns Dividing.
func (s DividingSpec) Relation() Relation { return Dividing }

// DifferentSizes reports the two-term form.
func (s DividingSpec) DifferentSizes() bool { return s.differentSizes }

// BPrime is the second division factor; zero unless DifferentSizes.
func (s DividingSpec) BPrime() float64 { return s.bPrime }

// Equation renders the relation, e.g. "T(n) = 2T(n/2) + n".
func (s DividingSpec) Equation() string {
	if s.differentSizes {
		return fmt.Sprintf("T(n) = T(n/%s) + T(n/%s) + %s", number(s.b), number(s.bPrime), s.f)
	}
	return fmt.Sprintf("T(n) = %sT(n/%s) + %s", number(s.a), number(s.b), s.f)
}

// Solve returns the bound under notation n using the default tolerance.
func (s DividingSpec) Solve(n Notation) string { return s.decide(DefaultTolerance).Bound(n) }

// MethodName names the method and case Solve applies.
func (s DividingSpec) MethodName() string { return s.decide(DefaultTolerance).MethodName() }

// DecreasingSpec is T(n) = a·T(n−b) + f(n).
type DecreasingSpec struct {
	base
}

// NewDecreasingSpec builds T(n) = a·T(n−b) + f(n).
func NewDecreasingSpec(a, b float64, f string) DecreasingSpec {
	return DecreasingSpec{base: newBase(a, b, f)}
}

// Relation returns Decreasing.
func (s DecreasingSpec) Relation() Relation { return Decreasing }

// Equation renders the relation, e.g. "T(n) = 1T(n-1) + n".
func (s DecreasingSpec) Equation() string {
	return fmt.Sprintf("T(n) = %sT(n-%s) + %s", number(s.a), number(s.b), s.f)
}

// Solve returns the bound under notation n using the default tolerance.
func (s DecreasingSpec) Solve(n Notation) string { return s.decide(DefaultTolerance).Bound(n) }

// MethodName names the method Solve applies.
func (s DecreasingSpec) MethodName() string { return s.decide(DefaultTolerance).MethodName() }

// number prints coefficients in equations without trailing zeros.
func number(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
