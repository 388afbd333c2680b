// Package parser turns a typed recurrence equation into a recurrence.Spec.
//
// Accepted forms (case and whitespace are ignored):
//
//	T(n) = aT(n/b) + f(n)          dividing
//	T(n) = T(n/b) + f(n)           dividing, a = 1
//	T(n) = T(n/b) + T(n/b') + f(n) dividing, different sizes (a = 2)
//	T(n) = aT(n-b) + f(n)          decreasing
//	T(n) = T(n-b) + f(n)           decreasing, a = 1
//
// The coefficient may be written with or without '*' (2T or 2*T) and may be
// fractional. f(n) is the text after the '+' up to the next '+'.
package parser
