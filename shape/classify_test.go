package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recurrence/shape"
)

// TestClassify_Families walks the priority rules with one representative
// description per branch.
func TestClassify_Families(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		kind     shape.Kind
		combined bool
	}{
		{"unit", "1", shape.Constant, false},
		{"symbolic constant", "c", shape.Constant, false},
		{"zero", "0", shape.Constant, false},
		{"numeral", "42", shape.Constant, false},
		{"empty", "", shape.Constant, false},
		{"unrecognised", "xyz", shape.Constant, false},
		{"linear", "n", shape.Polynomial, false},
		{"cubic", "n^3", shape.Polynomial, false},
		{"log", "log(n)", shape.Logarithmic, false},
		{"log squared", "log^2(n)", shape.Logarithmic, false},
		{"bare log", "logn", shape.Logarithmic, false},
		{"double log", "loglog(n)", shape.Logarithmic, false},
		{"n log n", "n*log(n)", shape.Polynomial, true},
		{"n log n compact", "nlogn", shape.Polynomial, true},
		{"binary exponential", "2^n", shape.Exponential, false},
		{"ternary exponential", "3^n", shape.Exponential, false},
		{"natural exponential", "e^n", shape.Exponential, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := shape.Classify(tc.desc)
			assert.Equal(t, tc.kind, s.Kind, "kind of %q", tc.desc)
			assert.Equal(t, tc.combined, s.CombinedWithLog, "combined flag of %q", tc.desc)
		})
	}
}

// TestClassify_Parameters checks the numeric parameter extracted for each family.
func TestClassify_Parameters(t *testing.T) {
	s := shape.Classify("n^3")
	assert.InDelta(t, 3.0, s.Exponent, 1e-12)

	s = shape.Classify("n^1.5")
	assert.InDelta(t, 1.5, s.Exponent, 1e-12)

	s = shape.Classify("log^2(n)")
	assert.InDelta(t, 2.0, s.LogPower, 1e-12)

	s = shape.Classify("n*log^3(n)")
	assert.InDelta(t, 3.0, s.LogPower, 1e-12)
	assert.InDelta(t, 1.0, s.Exponent, 1e-12, "combined exponent is fixed")

	s = shape.Classify("3^n")
	assert.InDelta(t, 3.0, s.Base, 1e-12)

	s = shape.Classify("e^n")
	assert.InDelta(t, math.E, s.Base, 1e-12)

	s = shape.Classify("1.5^n")
	assert.InDelta(t, 1.5, s.Base, 1e-12)
}

// TestClassify_Defaults verifies the documented fallbacks when a number
// cannot be parsed.
func TestClassify_Defaults(t *testing.T) {
	s := shape.Classify("1")
	assert.Equal(t, shape.DefaultLogPower, s.LogPower)
	assert.Equal(t, shape.DefaultExponent, s.Exponent)
	assert.Equal(t, shape.DefaultBase, s.Base)

	s = shape.Classify("log^x(n)")
	assert.Equal(t, shape.Logarithmic, s.Kind)
	assert.Equal(t, shape.DefaultLogPower, s.LogPower, "unparseable power")

	s = shape.Classify("n^(1/2)")
	assert.Equal(t, shape.Polynomial, s.Kind)
	assert.Equal(t, shape.DefaultExponent, s.Exponent, "unparseable exponent")

	s = shape.Classify("k^n")
	assert.Equal(t, shape.Exponential, s.Kind)
	assert.Equal(t, shape.DefaultBase, s.Base, "unparseable base")
}

// TestClassify_NormalizesInput ensures case and whitespace do not matter.
func TestClassify_NormalizesInput(t *testing.T) {
	assert.Equal(t, shape.Classify("n*log(n)"), shape.Classify(" N * LOG( n ) "))
	assert.Equal(t, shape.Classify("n^2"), shape.Classify("N ^ 2"))
	assert.Equal(t, "nlog^2(n)", shape.Normalize(" N LOG^2 (N)\t"))
}

// TestPolynomialExponent covers every return path.
func TestPolynomialExponent(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want float64
	}{
		{"not polynomial", "log(n)", 0.0},
		{"constant", "1", 0.0},
		{"exponential", "2^n", 0.0},
		{"combined", "n*log^2(n)", 1.0},
		{"caret", "n^2", 2.0},
		{"fractional caret", "n^0.5", 0.5},
		{"unparseable caret", "n^k", 1.0},
		{"bare n", "n", 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := shape.PolynomialExponent(tc.desc, shape.Classify(tc.desc))
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestPolynomialExponent_NoVariable exercises the 0.0 tail for a polynomial
// shape whose text carries neither caret nor n.
func TestPolynomialExponent_NoVariable(t *testing.T) {
	s := shape.Shape{Kind: shape.Polynomial}
	assert.Equal(t, 0.0, shape.PolynomialExponent("x", s))
}

// TestClassify_Deterministic guards against hidden state between calls.
func TestClassify_Deterministic(t *testing.T) {
	for _, desc := range []string{"n", "log^2(n)", "3^n", "n*log(n)", "garbage"} {
		first := shape.Classify(desc)
		for i := 0; i < 3; i++ {
			require.Equal(t, first, shape.Classify(desc), "classification of %q changed", desc)
		}
	}
}

// TestShapeString checks the human-readable rendering used by the CLI.
func TestShapeString(t *testing.T) {
	assert.Equal(t, "Constant", shape.Classify("1").String())
	assert.Equal(t, "Logarithmic(power=2.00)", shape.Classify("log^2(n)").String())
	assert.Equal(t, "Polynomial(exponent=3.00)", shape.Classify("n^3").String())
	assert.Equal(t, "Polynomial(n · log^1.00(n))", shape.Classify("n*log(n)").String())
	assert.Equal(t, "Exponential(base=3.00)", shape.Classify("3^n").String())
	assert.Equal(t, "Kind(9)", shape.Kind(9).String())
}
