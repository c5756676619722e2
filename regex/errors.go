package regex

import (
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// MalformedPattern reports a pattern the parser cannot turn into an AST:
// unbalanced parentheses, an operator with no operand, a dangling escape,
// or a character class that isn't exactly the three-character lo-hyphen-hi
// shape.
type MalformedPattern struct {
	Pattern string
	err     error
}

func (e *MalformedPattern) Error() string { return e.err.Error() }
func (e *MalformedPattern) Unwrap() error { return e.err }

func newMalformedPattern(pattern, format string, args ...interface{}) *MalformedPattern {
	return &MalformedPattern{
		Pattern: pattern,
		err:     errorutil.NewWithTag("regex", fmt.Sprintf(format, args...)),
	}
}
