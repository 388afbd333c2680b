// Package recurrence derives asymptotic bounds for recurrence relations.
//
// 🚀 What does it solve?
//
//	Two families of recurrences describing the running time of an algorithm:
//	  • dividing    T(n) = a·T(n/b) + f(n)
//	                T(n) = T(n/b) + T(n/b') + f(n)   (different sizes)
//	  • decreasing  T(n) = a·T(n−b) + f(n)
//
//	For every relation the package picks an analysis method, the case of that
//	method which applies, and renders the closed-form bound:
//	  • Master Theorem (Cases 1, 2a, 2b, 2c, 3a, 3b)
//	  • Extended Master Theorem (exponential or doubly logarithmic f(n))
//	  • Approximation Method (two subproblems of different sizes)
//	  • Muster Theorem (decreasing, a = 1)
//	  • Substitution Method (decreasing, a > 1; and the degenerate a < 1)
//
// ✨ Key features:
//   - a closed union of relation kinds: DividingSpec | DecreasingSpec,
//     both immutable and safe to share between goroutines
//   - one Decision value per relation; the method name and the bound are
//     two pure renderings of it, so they can never disagree
//   - float64 arithmetic with an absolute tolerance (DefaultTolerance = 1e-4)
//     for every equality test; Case 2 is checked first so near-ties land in it
//   - the notation (O, Ω, Θ) only changes the printed symbol
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/recurrence/recurrence"
//
//	spec := recurrence.NewDividingSpec(2, 2, "n")
//	res, err := recurrence.Analyze(spec, recurrence.BigTheta)
//	if err != nil {
//	  // only ErrNilSpec or ErrUnknownNotation
//	}
//	fmt.Println(res.Equation) // T(n) = 2T(n/2) + n
//	fmt.Println(res.Method)   // Master Theorem (Case 2a)
//	fmt.Println(res.Bound)    // Θ(n^1.00 · log^2.00(n))
//
// Output grammar (all numbers with two decimals):
//
//	<N>(n^<e>)                     <N>(n^<e> · log^<p>(n))
//	<N>(n^<e> · log(n))            <N>(n^<e> · log log n)
//	<N>(<k>^n)                     <N>(n · <k>^n)
//	<N>(<k>^(n/<b>))               <N>(n^<e> · <k>^(n/<b>))
//	<N>(log(n) · <k>^(n/<b>))      <N>(log^<p>(n) · <k>^(n/<b>))
//	<N>(n)                         <N>(n · log(n))
//	<N>(n · log^<p>(n))            <N>(<f(n)>)
//
// Note on Case 2a: the log factor is raised to p+1 where p defaults to 1.0
// when f(n) carries no log factor, so 2T(n/2)+n renders log^2.00(n).
//
// Complexity: O(len(f)) per relation for classification, O(1) for the decision.
package recurrence
