package recurrence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/recurrence/recurrence"
)

type solveCase struct {
	name   string
	spec   recurrence.Spec
	bound  string
	method string
	kase   recurrence.Case
}

func runSolveCases(t *testing.T, tests []solveCase) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := recurrence.Analyze(tc.spec, recurrence.BigTheta)
			assert.NoError(t, err)
			assert.Equal(t, tc.bound, res.Bound, "bound of %s", tc.spec.Equation())
			assert.Equal(t, tc.method, res.Method, "method of %s", tc.spec.Equation())
			assert.Equal(t, tc.kase, res.Case, "case of %s", tc.spec.Equation())
		})
	}
}

// TestMasterTheorem covers every Master Theorem case and sub-case.
func TestMasterTheorem(t *testing.T) {
	runSolveCases(t, []solveCase{
		{"case 1 linear", recurrence.NewDividingSpec(4, 2, "n"),
			"Θ(n^2.00)", "Master Theorem (Case 1)", recurrence.CaseMaster1},
		{"case 1 quadratic", recurrence.NewDividingSpec(8, 2, "n^2"),
			"Θ(n^3.00)", "Master Theorem (Case 1)", recurrence.CaseMaster1},
		{"case 1 logarithmic", recurrence.NewDividingSpec(2, 2, "log^2(n)"),
			"Θ(n^1.00)", "Master Theorem (Case 1)", recurrence.CaseMaster1},
		{"case 2a merge sort", recurrence.NewDividingSpec(2, 2, "n"),
			"Θ(n^1.00 · log^2.00(n))", "Master Theorem (Case 2a)", recurrence.CaseMaster2a},
		{"case 2a constant", recurrence.NewDividingSpec(1, 2, "1"),
			"Θ(n^0.00 · log^2.00(n))", "Master Theorem (Case 2a)", recurrence.CaseMaster2a},
		{"case 2a n log n", recurrence.NewDividingSpec(2, 2, "n*log(n)"),
			"Θ(n^1.00 · log^2.00(n))", "Master Theorem (Case 2a)", recurrence.CaseMaster2a},
		{"case 2a n log^2 n", recurrence.NewDividingSpec(2, 2, "n*log^2(n)"),
			"Θ(n^1.00 · log^3.00(n))", "Master Theorem (Case 2a)", recurrence.CaseMaster2a},
		{"case 2b", recurrence.NewDividingSpec(1, 2, "log^-1(n)"),
			"Θ(n^0.00 · log log n)", "Master Theorem (Case 2b)", recurrence.CaseMaster2b},
		{"case 2c", recurrence.NewDividingSpec(1, 2, "log^-2(n)"),
			"Θ(n^0.00)", "Master Theorem (Case 2c)", recurrence.CaseMaster2c},
		{"case 3a", recurrence.NewDividingSpec(2, 2, "n^2"),
			"Θ(n^2.00 · log^1.00(n))", "Master Theorem (Case 3a)", recurrence.CaseMaster3a},
		{"case 3b", recurrence.NewDividingSpec(1, 2, "n*log^-1(n)"),
			"Θ(n^1.00)", "Master Theorem (Case 3b)", recurrence.CaseMaster3b},
		{"exponential below one falls through", recurrence.NewDividingSpec(2, 2, "0.5^n"),
			"Θ(n^1.00)", "Master Theorem (Case 1)", recurrence.CaseMaster1},
	})
}

// TestExtendedMasterTheorem covers the exponential and doubly logarithmic branches.
func TestExtendedMasterTheorem(t *testing.T) {
	runSolveCases(t, []solveCase{
		{"exponential", recurrence.NewDividingSpec(2, 2, "2^n"),
			"Θ(2.00^n)", "Extended Master Theorem", recurrence.CaseExtendedExponential},
		{"natural exponential", recurrence.NewDividingSpec(3, 2, "e^n"),
			"Θ(2.72^n)", "Extended Master Theorem", recurrence.CaseExtendedExponential},
		{"log log", recurrence.NewDividingSpec(2, 2, "loglog(n)"),
			"Θ(n^1.00 · log log n)", "Extended Master Theorem", recurrence.CaseExtendedLogLog},
		{"log log spaced", recurrence.NewDividingSpec(2, 2, "log log n"),
			"Θ(n^1.00 · log log n)", "Extended Master Theorem", recurrence.CaseExtendedLogLog},
		{"log log power", recurrence.NewDividingSpec(4, 2, "loglog^2(n)"),
			"Θ(n^2.00 · log^2.00(n))", "Extended Master Theorem", recurrence.CaseExtendedLogPower},
	})
}

// TestApproximationMethod covers the different-sizes branch for every shape.
func TestApproximationMethod(t *testing.T) {
	runSolveCases(t, []solveCase{
		{"constant", recurrence.NewSplitDividingSpec(2, 3, "1"),
			"Θ(n^0.79)", "Approximation Method", recurrence.CaseApproxConstant},
		{"polynomial below", recurrence.NewSplitDividingSpec(2, 3, "n^0.5"),
			"Θ(n^0.79)", "Approximation Method", recurrence.CaseApproxPolyBelow},
		{"polynomial tie", recurrence.NewSplitDividingSpec(2, 2, "n"),
			"Θ(n^1.00 · log(n))", "Approximation Method", recurrence.CaseApproxPolyTie},
		{"polynomial above", recurrence.NewSplitDividingSpec(2, 3, "n"),
			"Θ(n^1.00)", "Approximation Method", recurrence.CaseApproxPolyAbove},
		{"log power", recurrence.NewSplitDividingSpec(2, 3, "log^2(n)"),
			"Θ(n^0.79 · log^2.00(n))", "Approximation Method", recurrence.CaseApproxLogPower},
		{"log", recurrence.NewSplitDividingSpec(2, 3, "log(n)"),
			"Θ(n^0.79 · log(n))", "Approximation Method", recurrence.CaseApproxLog},
		{"exponential", recurrence.NewSplitDividingSpec(2, 3, "3^n"),
			"Θ(3.00^n)", "Approximation Method", recurrence.CaseApproxExponential},
	})
}

// TestMusterTheorem covers a = 1 decreasing relations.
func TestMusterTheorem(t *testing.T) {
	runSolveCases(t, []solveCase{
		{"constant", recurrence.NewDecreasingSpec(1, 1, "1"),
			"Θ(n)", "Muster Theorem", recurrence.CaseMusterConstant},
		{"linear", recurrence.NewDecreasingSpec(1, 1, "n"),
			"Θ(n^2.00)", "Muster Theorem", recurrence.CaseMusterPolynomial},
		{"cubic", recurrence.NewDecreasingSpec(1, 2, "n^3"),
			"Θ(n^4.00)", "Muster Theorem", recurrence.CaseMusterPolynomial},
		{"log", recurrence.NewDecreasingSpec(1, 1, "log(n)"),
			"Θ(n · log(n))", "Muster Theorem", recurrence.CaseMusterLog},
		{"log power", recurrence.NewDecreasingSpec(1, 1, "log^2(n)"),
			"Θ(n · log^2.00(n))", "Muster Theorem", recurrence.CaseMusterLogPower},
		{"exponential", recurrence.NewDecreasingSpec(1, 1, "2^n"),
			"Θ(n · 2.00^n)", "Muster Theorem", recurrence.CaseMusterExponential},
	})
}

// TestSubstitutionMethod covers a > 1 decreasing relations and the a < 1 pass-through.
func TestSubstitutionMethod(t *testing.T) {
	runSolveCases(t, []solveCase{
		{"pass-through", recurrence.NewDecreasingSpec(0.5, 1, "n^2"),
			"Θ(n^2)", "Substitution Method", recurrence.CasePassThrough},
		{"constant", recurrence.NewDecreasingSpec(2, 1, "1"),
			"Θ(2.00^(n/1.00))", "Substitution Method", recurrence.CaseSubstConstant},
		{"polynomial", recurrence.NewDecreasingSpec(2, 1, "n"),
			"Θ(n^1.00 · 2.00^(n/1.00))", "Substitution Method", recurrence.CaseSubstPolynomial},
		{"log", recurrence.NewDecreasingSpec(2, 1, "log(n)"),
			"Θ(log(n) · 2.00^(n/1.00))", "Substitution Method", recurrence.CaseSubstLog},
		{"log power", recurrence.NewDecreasingSpec(2, 1, "log^3(n)"),
			"Θ(log^3.00(n) · 2.00^(n/1.00))", "Substitution Method", recurrence.CaseSubstLogPower},
		{"exponential dominates", recurrence.NewDecreasingSpec(2, 1, "3^n"),
			"Θ(3.00^(n/1.00))", "Substitution Method", recurrence.CaseSubstExponential},
		{"exponential over step", recurrence.NewDecreasingSpec(3, 2, "2^n"),
			"Θ(4.00^(n/2.00))", "Substitution Method", recurrence.CaseSubstExponential},
		{"recursion dominates", recurrence.NewDecreasingSpec(4, 1, "2^n"),
			"Θ(4.00^(n/1.00))", "Substitution Method", recurrence.CaseSubstExponential},
	})
}
