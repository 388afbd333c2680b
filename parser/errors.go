package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyEquation indicates blank input.
	ErrEmptyEquation = errors.New("parser: empty equation")

	// ErrUnrecognized indicates text matching none of the accepted forms.
	ErrUnrecognized = errors.New("parser: unrecognized recurrence")

	// ErrBadFactor indicates a coefficient or factor that is not a finite number.
	ErrBadFactor = errors.New("parser: invalid numeric factor")
)

// Form names used as error context.
const (
	FormDividing   = "Dividing"
	FormSplit      = "SplitDividing"
	FormDecreasing = "Decreasing"
)

// parserErrorf prefixes a sentinel with the form being parsed:
// "<Form>: <sentinel>: <detail>".
func parserErrorf(form string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", form, sentinel, fmt.Sprintf(format, args...))
}
