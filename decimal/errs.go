package decimal

import (
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of codec errors.
	Error = errs.Class("decimal")

	// FormatError is the class of errors for text that is not a decimal
	// literal. The wrapped *SyntaxError holds the offending input.
	FormatError = errs.Class("decimal format")

	// CapabilityError is the class of errors for operations this package
	// does not provide (division, bases other than ten).
	CapabilityError = errs.Class("decimal capability")

	// ErrScaleOverflow is the panic value of a product whose scale does not
	// fit in an int.
	ErrScaleOverflow = Error.New("scale overflow")
)

// SyntaxError records the text that failed to parse.
type SyntaxError struct {
	Input string
	Err   error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid decimal %q: %v", e.Input, e.Err)
	}

	return fmt.Sprintf("invalid decimal %q", e.Input)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(input string, err error) error {
	return FormatError.Wrap(&SyntaxError{
		Input: input,
		Err:   err,
	})
}
