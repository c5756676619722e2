package lexer

import (
	"fmt"

	"github.com/rexlex/rexlex/automata"
	"github.com/rexlex/rexlex/regex"
)

// mergedStart is the fresh start state the compiler links every rule's
// relabeled NFA into. Rule is never negative for a real rule, so it
// cannot collide with any StateID a rule's own states relabel to.
var mergedStart = StateID{Rule: -1}

func stateKey(s StateID) string {
	return fmt.Sprintf("%d|%d|%t", s.Rule, s.Num, s.Final)
}

// Lexer is a compiled, immutable rule set: a total DFA plus the table
// needed to attribute an accepting DFA state to the rule that produced
// it. A *Lexer is safe to share read-only across goroutines.
type Lexer struct {
	dfa        *automata.DFA
	ruleNames  []string
	acceptRule map[string]int
}

// New compiles rules into a Lexer: parse each pattern, Thompson-build
// its NFA, relabel its states to a StateID tagged with the rule's index,
// merge every rule's relabeled NFA under a shared epsilon-linked start
// state, and run subset construction to produce the scanner DFA.
func New(rules []Rule) (*Lexer, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexer: no rules provided")
	}

	merged := automata.NewGeneric(mergedStart)
	ruleNames := make([]string, len(rules))
	for i, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("lexer: rule %d has an empty name", i)
		}
		if r.Pattern == "" {
			return nil, fmt.Errorf("lexer: rule %q has an empty pattern", r.Name)
		}
		re, err := regex.Parse(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("lexer: rule %q: %w", r.Name, err)
		}
		nfa := re.Thompson()
		accept := nfa.Accept
		g := automata.Relabel(nfa.ToGeneric(), func(n int) StateID {
			return StateID{Rule: i, Num: n, Final: n == accept}
		})
		merged.Merge(g)
		merged.AddEpsilon(merged.Start, g.Start)
		ruleNames[i] = r.Name
	}

	dfa, members := automata.SubsetConstruction(merged, stateKey)
	automata.CheckTotal(dfa)

	acceptRule := make(map[string]int, len(dfa.AcceptStates))
	for label := range dfa.AcceptStates {
		idx, ok := minFinalRule(members[label])
		if !ok {
			panic(newInvariantViolation("dfa state %q is accepting but has no final member to attribute a rule to", label))
		}
		acceptRule[label] = idx
	}

	return &Lexer{dfa: dfa, ruleNames: ruleNames, acceptRule: acceptRule}, nil
}

// minFinalRule returns the smallest Rule index among members whose Final
// field is set, and false if none is. New never attributes an accepting
// DFA state without such a member to some fallback rule: it panics with
// an InvariantViolation instead.
func minFinalRule(members []StateID) (int, bool) {
	best := 0
	found := false
	for _, m := range members {
		if !m.Final {
			continue
		}
		if !found || m.Rule < best {
			best = m.Rule
			found = true
		}
	}
	return best, found
}
