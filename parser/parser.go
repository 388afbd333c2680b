package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/recurrence/recurrence"
	"github.com/katalvlaran/recurrence/shape"
)

// Input is the structured form of an equation, before classification.
type Input struct {
	Relation       recurrence.Relation
	A              float64
	B              float64
	BPrime         float64 // second factor, set only when DifferentSizes
	DifferentSizes bool
	F              string // normalized f(n)
}

const (
	dividingMarker = "t(n/"
	splitCount     = 2
	splitA         = 2.0
)

var (
	dividingRe       = regexp.MustCompile(`^t\(n\)=(\d+(?:\.\d+)?)\*?t\(n/([^)]+)\)\+([^+]+)`)
	dividingUnitRe   = regexp.MustCompile(`^t\(n\)=t\(n/([^)]+)\)\+([^+]+)`)
	decreasingRe     = regexp.MustCompile(`^t\(n\)=(\d+(?:\.\d+)?)\*?t\(n-([^)]+)\)\+([^+]+)`)
	decreasingUnitRe = regexp.MustCompile(`^t\(n\)=t\(n-([^)]+)\)\+([^+]+)`)
	subproblemRe     = regexp.MustCompile(`t\(n/([^)]+)\)`)
	termSepRe        = regexp.MustCompile(`[+-]`)
)

// Parse reads equation into an Input.
//
// Errors:
//   - ErrEmptyEquation for blank text.
//   - ErrUnrecognized when no accepted form matches.
//   - ErrBadFactor when a coefficient or factor is not a finite number.
func Parse(equation string) (Input, error) {
	eq := shape.Normalize(equation)
	if eq == "" {
		return Input{}, ErrEmptyEquation
	}

	switch {
	case strings.Count(eq, dividingMarker) == splitCount:
		return parseSplit(eq)
	case strings.Contains(eq, dividingMarker):
		return parseSingle(eq, FormDividing, recurrence.Dividing, dividingRe, dividingUnitRe)
	}

	return parseSingle(eq, FormDecreasing, recurrence.Decreasing, decreasingRe, decreasingUnitRe)
}

// ParseSpec parses equation and classifies it in one step.
func ParseSpec(equation string) (recurrence.Spec, error) {
	in, err := Parse(equation)
	if err != nil {
		return nil, err
	}

	return in.Spec(), nil
}

// Spec builds the matching recurrence.Spec variant.
func (in Input) Spec() recurrence.Spec {
	switch {
	case in.Relation == recurrence.Decreasing:
		return recurrence.NewDecreasingSpec(in.A, in.B, in.F)
	case in.DifferentSizes:
		return recurrence.NewSplitDividingSpec(in.B, in.BPrime, in.F)
	}

	return recurrence.NewDividingSpec(in.A, in.B, in.F)
}

// parseSplit reads T(n) = T(n/b) + T(n/b') + f(n).
func parseSplit(eq string) (Input, error) {
	factors := subproblemRe.FindAllStringSubmatch(eq, -1)
	if len(factors) != splitCount {
		return Input{}, parserErrorf(FormSplit, ErrUnrecognized, "%q", eq)
	}
	b, err := factor(FormSplit, factors[0][1])
	if err != nil {
		return Input{}, err
	}
	bPrime, err := factor(FormSplit, factors[1][1])
	if err != nil {
		return Input{}, err
	}

	sums := strings.Split(eq, "+")
	terms := termSepRe.Split(sums[len(sums)-1], -1)
	f := terms[len(terms)-1]
	if f == "" || strings.Contains(f, dividingMarker) {
		return Input{}, parserErrorf(FormSplit, ErrUnrecognized, "missing f(n) in %q", eq)
	}

	return Input{
		Relation:       recurrence.Dividing,
		A:              splitA,
		B:              b,
		BPrime:         bPrime,
		DifferentSizes: true,
		F:              f,
	}, nil
}

// parseSingle tries the coefficient form of re, then the unit form.
func parseSingle(eq, form string, rel recurrence.Relation, re, unitRe *regexp.Regexp) (Input, error) {
	if m := re.FindStringSubmatch(eq); m != nil {
		a, err := factor(form, m[1])
		if err != nil {
			return Input{}, err
		}
		b, err := factor(form, m[2])
		if err != nil {
			return Input{}, err
		}
		return Input{Relation: rel, A: a, B: b, F: m[3]}, nil
	}

	if m := unitRe.FindStringSubmatch(eq); m != nil {
		b, err := factor(form, m[1])
		if err != nil {
			return Input{}, err
		}
		return Input{Relation: rel, A: 1, B: b, F: m[2]}, nil
	}

	return Input{}, parserErrorf(form, ErrUnrecognized, "%q", eq)
}

func factor(form, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, parserErrorf(form, ErrBadFactor, "%q", raw)
	}

	return v, nil
}
