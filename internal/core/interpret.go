package core

import (
	"fmt"
	"strings"
	"time"
)

// Parser converts a human date/time expression into an absolute instant.
// The anchor is the reference "now" relative phrases resolve against;
// implementations must express their result in the anchor's location.
type Parser interface {
	Parse(expression string, anchor time.Time) (time.Time, error)
}

// Interpret delegates the expression to the parsing capability and
// normalizes every failure, including empty input, to
// ErrInvalidDateFormat so downstream handling stays uniform.
func Interpret(parser Parser, expression string, anchor time.Time) (time.Time, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return time.Time{}, fmt.Errorf("%w: empty expression", ErrInvalidDateFormat)
	}

	instant, err := parser.Parse(expression, anchor)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, expression)
	}
	return instant, nil
}
