package shape

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Tokens the classifier searches for.
const (
	logToken     = "log"
	caret        = "^"
	variable     = "n"
	polyMarker   = "n^"
	expMarker    = "^n"
	binaryExp    = "2^n"
	naturalExp   = "e^n"
	constantUnit = "1"
	constantName = "c"
	constantZero = "0"
	openParen    = '('
	closeParen   = ')'
	variableByte = 'n'
	caretByte    = '^'
	powerStops   = "(n*+/"
)

// Normalize lower-cases desc and removes every whitespace rune.
// Classify and PolynomialExponent normalize their input themselves,
// so calling Normalize first is never required.
func Normalize(desc string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, desc)
}

// Classify determines the Shape of the f(n) description desc.
//
// Implementation:
//   - Stage 1: normalize the text.
//   - Stage 2: walk the six rules in priority order (see package doc),
//     stopping at the first match.
//   - Stage 3: extract the numeric parameter of the matched family,
//     falling back to its default when the text is not a number.
//
// Classify never fails: unknown text is Constant.
func Classify(desc string) Shape {
	desc = Normalize(desc)

	switch {
	case isConstant(desc):
		return newShape(Constant)

	case strings.Contains(desc, logToken) && strings.Contains(stripLogTerms(desc), variable):
		s := newShape(Polynomial)
		s.CombinedWithLog = true
		s.LogPower = logPower(desc)
		s.Exponent = PolynomialExponent(desc, s)
		return s

	case strings.Contains(desc, logToken):
		s := newShape(Logarithmic)
		s.LogPower = logPower(desc)
		return s

	case strings.Contains(desc, polyMarker) ||
		(strings.Contains(desc, variable) && !strings.Contains(desc, caret)):
		s := newShape(Polynomial)
		s.Exponent = PolynomialExponent(desc, s)
		return s

	case strings.Contains(desc, expMarker):
		s := newShape(Exponential)
		s.Base = exponentialBase(desc)
		return s
	}

	return newShape(Constant)
}

// PolynomialExponent returns the exponent k of n^k for desc classified as s.
//
// Returns:
//   - 0.0 when s is not Polynomial.
//   - 1.0 for the combined n·log^p(n) form.
//   - the number after the first "^" when there is one (1.0 if it does not parse).
//   - 1.0 when desc mentions n without a caret, 0.0 otherwise.
func PolynomialExponent(desc string, s Shape) float64 {
	if s.Kind != Polynomial {
		return 0.0
	}
	if s.CombinedWithLog {
		return DefaultExponent
	}

	desc = Normalize(desc)
	if i := strings.Index(desc, caret); i >= 0 {
		if v, ok := parseReal(desc[i+1:]); ok {
			return v
		}
		return DefaultExponent
	}
	if strings.Contains(desc, variable) {
		return DefaultExponent
	}

	return 0.0
}

// isConstant reports rule 1: a fixed constant token or a plain numeral.
func isConstant(desc string) bool {
	switch desc {
	case constantUnit, constantName, constantZero:
		return true
	case "":
		return false
	}
	for i := 0; i < len(desc); i++ {
		if desc[i] < '0' || desc[i] > '9' {
			return false
		}
	}

	return true
}

// logPower parses the p of "log^p(" starting from the first log token.
// Without a "(" after the caret the whole tail is tried.
func logPower(desc string) float64 {
	i := strings.Index(desc, logToken)
	if i < 0 {
		return DefaultLogPower
	}
	rest := desc[i+len(logToken):]
	c := strings.Index(rest, caret)
	if c < 0 {
		return DefaultLogPower
	}
	raw := rest[c+1:]
	if p := strings.IndexByte(raw, openParen); p >= 0 {
		raw = raw[:p]
	}
	if v, ok := parseReal(raw); ok {
		return v
	}

	return DefaultLogPower
}

// exponentialBase extracts the base of base^n.
func exponentialBase(desc string) float64 {
	switch {
	case strings.Contains(desc, binaryExp):
		return 2.0
	case strings.Contains(desc, naturalExp):
		return math.E
	}
	if i := strings.Index(desc, caret); i > 0 {
		if v, ok := parseReal(desc[:i]); ok {
			return v
		}
	}

	return DefaultBase
}

// stripLogTerms removes every logarithm term from desc: the log token, an
// optional ^power and its argument, either parenthesised or a bare n.
// What is left tells whether n also appears as a factor outside the log.
func stripLogTerms(desc string) string {
	var b strings.Builder
	for {
		i := strings.Index(desc, logToken)
		if i < 0 {
			b.WriteString(desc)
			return b.String()
		}
		b.WriteString(desc[:i])
		desc = skipLogArgument(desc[i+len(logToken):])
	}
}

// skipLogArgument consumes the optional ^power and the argument that
// follow a log token and returns the remainder. The power runs until
// the argument starts or a product/sum operator appears.
func skipLogArgument(rest string) string {
	if len(rest) > 0 && rest[0] == caretByte {
		j := 1
		for j < len(rest) && !strings.ContainsRune(powerStops, rune(rest[j])) {
			j++
		}
		rest = rest[j:]
	}
	if len(rest) == 0 {
		return rest
	}

	switch rest[0] {
	case openParen:
		depth := 0
		for j := 0; j < len(rest); j++ {
			switch rest[j] {
			case openParen:
				depth++
			case closeParen:
				depth--
				if depth == 0 {
					return rest[j+1:]
				}
			}
		}
		return ""
	case variableByte:
		return rest[1:]
	}

	return rest
}

// parseReal parses s as a float64, rejecting NaN and infinities.
func parseReal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
