package cronexpr

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is the kind shared by every error Parse returns.
var ErrInvalidExpression = errors.New("invalid expression")

// Parse errors.
var (
	ErrMalformedRequest  = fmt.Errorf("%w: expected five schedule fields followed by a command", ErrInvalidExpression)
	ErrInvalidFieldValue = fmt.Errorf("%w: invalid field value", ErrInvalidExpression)
	ErrEmptyCommand      = fmt.Errorf("%w: command cannot be empty", ErrInvalidExpression)
)

// Expander errors. These never escape Parse, which reports only the field.
var (
	errNoMatch    = errors.New("expression does not match any known form")
	errOutOfRange = errors.New("expression has values out of range")
)

// FieldError reports which schedule field could not be expanded.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: invalid %s value", ErrInvalidExpression, e.Field)
}

// Is makes a FieldError match ErrInvalidFieldValue and ErrInvalidExpression.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidFieldValue || target == ErrInvalidExpression
}
