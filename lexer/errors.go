package lexer

import (
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// diagnostic renders the shared "No viable alternative" message both
// UnknownSymbolError and NoViableAlternativeError carry: the lexeme
// stream contract exposes one diagnostic shape regardless of which
// condition triggered it.
func diagnostic(line, col int) string {
	return fmt.Sprintf("No viable alternative at character %d, line %d", col, line)
}

// UnknownSymbolError reports a scanned character outside the union of
// every rule's alphabet.
type UnknownSymbolError struct {
	Char      rune
	Line, Col int
	err       error
}

func newUnknownSymbolError(c rune, line, col int) *UnknownSymbolError {
	return &UnknownSymbolError{
		Char: c, Line: line, Col: col,
		err: errorutil.NewWithTag("lexer", diagnostic(line, col)),
	}
}

func (e *UnknownSymbolError) Error() string      { return e.err.Error() }
func (e *UnknownSymbolError) Unwrap() error      { return e.err }
func (e *UnknownSymbolError) Diagnostic() string { return diagnostic(e.Line, e.Col) }

// NoViableAlternativeError reports a sink reached with no prior accept,
// or end of input reached with no prior accept.
type NoViableAlternativeError struct {
	Line, Col int
	err       error
}

func newNoViableAlternativeError(line, col int) *NoViableAlternativeError {
	return &NoViableAlternativeError{
		Line: line, Col: col,
		err: errorutil.NewWithTag("lexer", diagnostic(line, col)),
	}
}

func (e *NoViableAlternativeError) Error() string    { return e.err.Error() }
func (e *NoViableAlternativeError) Unwrap() error    { return e.err }
func (e *NoViableAlternativeError) Diagnostic() string { return diagnostic(e.Line, e.Col) }

// InvariantViolation signals a bug in the lexer compiler: a DFA state
// the subset construction marked accepting but whose originating NFA
// states carry no Final member to attribute a rule to. This must never
// be observable from a valid rule list; New panics with it instead of
// silently falling back to some default rule.
type InvariantViolation struct {
	err error
}

func (e *InvariantViolation) Error() string { return e.err.Error() }
func (e *InvariantViolation) Unwrap() error { return e.err }

func newInvariantViolation(format string, args ...interface{}) *InvariantViolation {
	return &InvariantViolation{err: errorutil.NewWithTag("lexer", fmt.Sprintf(format, args...))}
}
