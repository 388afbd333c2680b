package shape

import "fmt"

// Kind enumerates the shape families of f(n).
type Kind int

const (
	// Constant represents Θ(1) terms.
	Constant Kind = iota

	// Logarithmic represents log^p(n).
	Logarithmic

	// Polynomial represents n^k, or n·log^p(n) when CombinedWithLog is set.
	Polynomial

	// Exponential represents base^n.
	Exponential
)

// Defaults applied when a description does not spell a parameter out.
const (
	DefaultLogPower = 1.0
	DefaultExponent = 1.0
	DefaultBase     = 2.0
)

// String returns the family name.
func (k Kind) String() string {
	switch k {
	case Constant:
		return "Constant"
	case Logarithmic:
		return "Logarithmic"
	case Polynomial:
		return "Polynomial"
	case Exponential:
		return "Exponential"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is the immutable classification result for one f(n) description.
//
// Only the fields relevant to Kind carry meaning; the others keep their
// defaults so that solvers may read them unconditionally:
//   - LogPower        – p in log^p(n); Logarithmic and combined Polynomial.
//   - Exponent        – k in n^k; Polynomial (fixed at 1.0 when combined).
//   - Base            – base of base^n; Exponential.
//   - CombinedWithLog – Polynomial of the form n·log^p(n).
type Shape struct {
	Kind            Kind
	LogPower        float64
	Exponent        float64
	Base            float64
	CombinedWithLog bool
}

// newShape returns a Shape of kind k with every parameter at its default.
func newShape(k Kind) Shape {
	return Shape{
		Kind:     k,
		LogPower: DefaultLogPower,
		Exponent: DefaultExponent,
		Base:     DefaultBase,
	}
}

// String renders the shape with its meaningful parameters.
func (s Shape) String() string {
	switch s.Kind {
	case Logarithmic:
		return fmt.Sprintf("Logarithmic(power=%.2f)", s.LogPower)
	case Polynomial:
		if s.CombinedWithLog {
			return fmt.Sprintf("Polynomial(n · log^%.2f(n))", s.LogPower)
		}
		return fmt.Sprintf("Polynomial(exponent=%.2f)", s.Exponent)
	case Exponential:
		return fmt.Sprintf("Exponential(base=%.2f)", s.Base)
	default:
		return s.Kind.String()
	}
}
