// Package recurrence is the root of a toolkit that derives asymptotic bounds
// for recurrence relations, the running-time equations of recursive algorithms.
//
// 🚀 What is recurrence?
//
//	A small, dependency-aware toolkit that brings together:
//		• Classification of driving functions f(n): constant, logarithmic, polynomial, exponential
//		• Master, Extended Master and Approximation methods for dividing relations
//		• Muster and Substitution methods for decreasing relations
//		• A text parser for equations such as "T(n) = 2T(n/2) + n"
//		• A CLI, a concurrent batch runner, an HTTP API and a history store
//
// ✨ Why choose recurrence?
//
//   - One decision, one answer: the method label and the bound never disagree
//   - Deterministic: identical input always yields identical text
//   - Explicit tolerance: equality checks use a configurable ε
//
// Packages:
//
//	shape/          classification of f(n) descriptions
//	recurrence/     relation specs, case decisions and bound rendering
//	parser/         equation text → Spec
//	batch/          concurrent solving of YAML batches
//	store/          badger-backed analysis history
//	report/         text, styled and JSON output
//	httpapi/        gin HTTP service with prometheus metrics
//	config/         viper configuration
//	logging/        zap-backed logr loggers
//	cmd/recurrence  the command-line driver
//
// Quick example:
//
//	spec, _ := parser.ParseSpec("T(n) = 2T(n/2) + n")
//	res, _ := recurrence.Analyze(spec, recurrence.BigTheta)
//	fmt.Println(res.Method, res.Bound)
//	// Master Theorem (Case 2a) Θ(n^1.00 · log^2.00(n))
package recurrence
