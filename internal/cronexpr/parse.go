package cronexpr

import (
	"fmt"
	"strings"
)

// Parse splits expression into five schedule fields and a command and
// expands every field.
//
// Tokens are separated by exactly one space. Repeated spaces produce empty
// tokens, which fail as invalid field values (or as an empty command when
// they fall in the last position). Fields are expanded in order and the
// first failure is returned; errors name the field but not the cause.
func Parse(expression string) (Expression, error) {
	tokens := strings.Split(expression, " ")
	if len(tokens) != len(Fields)+1 {
		return Expression{}, fmt.Errorf("%w (got %d tokens)", ErrMalformedRequest, len(tokens))
	}

	var values [len(Fields)][]int
	for i, f := range Fields {
		v, err := Expand(tokens[i], f)
		if err != nil || len(v) == 0 {
			return Expression{}, &FieldError{Field: f.Name}
		}
		values[i] = v
	}

	command := tokens[commandIndex]
	if command == "" {
		return Expression{}, ErrEmptyCommand
	}

	var sources [len(Fields)]string
	copy(sources[:], tokens)

	return Expression{values: values, sources: sources, command: command}, nil
}
