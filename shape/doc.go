// Package shape infers the structural category of the non-recursive term f(n)
// of a recurrence from its textual description.
//
// 🚀 What is a shape?
//
//	A recurrence T(n) = a·T(n/b) + f(n) is analysed by comparing the growth of
//	the recursion against the growth of f(n). The analysis only needs to know
//	which family f(n) belongs to and the one or two numbers that pin it down:
//	  • Constant      – 1, c, 0, 42
//	  • Logarithmic   – log(n), log^2(n)
//	  • Polynomial    – n, n^3, and the combined n·log^p(n)
//	  • Exponential   – 2^n, e^n, 3^n
//
// ✨ Key features:
//   - total classification: every description maps to exactly one Kind,
//     unrecognised text falls back to Constant
//   - numeric parameters default to 1.0 (log power), 1.0 (exponent)
//     and 2.0 (base) when the text does not carry them
//   - deterministic substring rules with a fixed priority order; no
//     expression parser, no errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/recurrence/shape"
//
//	s := shape.Classify("n^3")
//	fmt.Println(s.Kind, s.Exponent) // Polynomial 3
//
//	k := shape.PolynomialExponent("n*log(n)", shape.Classify("n*log(n)")) // 1.0
//
// Priority order used by Classify:
//
//  1. "1", "c", "0" or all digits                    → Constant
//  2. contains "log" and an n outside the log term    → Polynomial (combined with log)
//  3. contains "log"                                  → Logarithmic
//  4. contains "n^", or "n" without any "^"           → Polynomial
//  5. contains "^n"                                   → Exponential
//  6. anything else                                   → Constant
//
// Complexity: O(len(desc)) time, O(len(desc)) memory for every call.
package shape
