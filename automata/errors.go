package automata

import (
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// InvariantViolation signals a bug in the automaton algebra itself — a
// non-total DFA transition, anything the spec
// this package implements says "must never be observable from valid
// inputs." It is never returned to a caller that only ever feeds the
// package well-formed NFAs; it exists so a broken invariant fails loudly
// instead of producing a silently wrong DFA.
type InvariantViolation struct {
	err error
}

func (e *InvariantViolation) Error() string { return e.err.Error() }
func (e *InvariantViolation) Unwrap() error { return e.err }

func newInvariantViolation(format string, args ...interface{}) *InvariantViolation {
	return &InvariantViolation{err: errorutil.NewWithTag("automata", fmt.Sprintf(format, args...))}
}

// CheckTotal panics with an *InvariantViolation if d is not total over
// States x Alphabet. SubsetConstruction always produces a total DFA;
// lexer.New still runs this check on every DFA it compiles.
func CheckTotal(d *DFA) {
	for state := range d.States {
		row := d.Delta[state]
		for a := range d.Alphabet {
			if _, ok := row[a]; !ok {
				panic(newInvariantViolation("dfa state %q has no transition on %q", state, string(a)))
			}
		}
	}
}
