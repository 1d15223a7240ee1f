package manifest

import (
	"errors"
	"fmt"
)

// ErrInvariant matches every *InvariantError via errors.Is.
var ErrInvariant = errors.New("manifest invariant violated")

// InvariantError reports a manifest that must not be produced.
type InvariantError struct {
	Rule   string // short rule name, e.g. "link-last"
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvariant, e.Rule, e.Detail)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

func violation(rule, format string, args ...any) *InvariantError {
	return &InvariantError{Rule: rule, Detail: fmt.Sprintf(format, args...)}
}

// ParseError reports a malformed manifest line.
type ParseError struct {
	Line    int
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Message, e.Text)
}
