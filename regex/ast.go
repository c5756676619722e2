// Package regex implements the regex surface syntax and the abstract
// tree it parses into, plus the Thompson construction that turns that
// tree into an automata.NFA.
package regex

import "github.com/rexlex/rexlex/automata"

// Node is the tagged sum every parsed pattern reduces to. Each variant
// owns its children by value — this is a tree, never a DAG — and each
// knows how to emit a freshly built NFA shaped per the Thompson template
// for its kind: contiguous integer states 0..n-1, start 0, and exactly
// one accept state at n-1.
type Node interface {
	Thompson() *automata.NFA
}

// Char matches exactly one occurrence of the rune c.
type Char struct {
	C rune
}

// CharClass matches any single rune in the inclusive range [Lo, Hi].
// Negation, multiple ranges, and individual-character lists are not
// part of this surface syntax: only the three-character [x-y] shorthand
// parses into one.
type CharClass struct {
	Lo, Hi rune
}

// Concat matches L immediately followed by R.
type Concat struct {
	L, R Node
}

// Union matches L or R.
type Union struct {
	L, R Node
}

// Star matches zero or more repetitions of E.
type Star struct {
	E Node
}

// Plus matches one or more repetitions of E.
type Plus struct {
	E Node
}

// Question matches zero or one occurrence of E.
type Question struct {
	E Node
}

// Thompson builds the two-state fragment start --c--> accept.
func (n Char) Thompson() *automata.NFA {
	nfa := automata.NewNFA()
	nfa.AddTransition(nfa.Start, n.C, nfa.Accept)
	return nfa
}

// Thompson builds start --x--> accept for every x in [Lo, Hi].
func (n CharClass) Thompson() *automata.NFA {
	nfa := automata.NewNFA()
	for r := n.Lo; r <= n.Hi; r++ {
		nfa.AddTransition(nfa.Start, r, nfa.Accept)
	}
	return nfa
}

// Thompson concatenates L and R: build L, shift R's states past L's,
// merge, and bridge L's accept to R's (now-shifted) start with an
// epsilon transition. The result's accept is R's accept.
func (n Concat) Thompson() *automata.NFA {
	left := n.L.Thompson()
	right := n.R.Thompson().ShiftBy(left.NumStates())

	left.Merge(right)
	left.AddEpsilon(left.Accept, right.Start)
	left.Accept = right.Accept
	return left
}

// Thompson builds the classic alternation fragment: a fresh start with
// epsilon branches into L and R (each shifted clear of state 0 and of
// each other), and a fresh accept both branches epsilon into.
func (n Union) Thompson() *automata.NFA {
	left := n.L.Thompson().ShiftBy(1)
	right := n.R.Thompson().ShiftBy(1 + left.NumStates())

	accept := left.NumStates() + right.NumStates() + 1
	out := automata.NewEmptyNFA(0, accept)
	out.EnsureState(out.Start)
	out.EnsureState(out.Accept)
	out.Merge(left)
	out.Merge(right)

	out.AddEpsilon(out.Start, left.Start)
	out.AddEpsilon(out.Start, right.Start)
	out.AddEpsilon(left.Accept, out.Accept)
	out.AddEpsilon(right.Accept, out.Accept)
	return out
}

// Thompson builds the zero-or-more fragment: a fresh start/accept pair
// bypassing E entirely (zero iterations), an epsilon into E, an epsilon
// from E's accept back out to the fresh accept, and an epsilon from E's
// accept back to E's start for repetition.
func (n Star) Thompson() *automata.NFA {
	body := n.E.Thompson().ShiftBy(1)

	out := automata.NewEmptyNFA(0, body.NumStates()+1)
	out.EnsureState(out.Start)
	out.EnsureState(out.Accept)
	out.Merge(body)

	out.AddEpsilon(out.Start, body.Start)
	out.AddEpsilon(out.Start, out.Accept)
	out.AddEpsilon(body.Accept, out.Accept)
	out.AddEpsilon(body.Accept, body.Start)
	return out
}

// Thompson builds the one-or-more fragment: like Star, but with no
// bypass epsilon from the fresh start to the fresh accept — the body
// must run at least once.
func (n Plus) Thompson() *automata.NFA {
	body := n.E.Thompson().ShiftBy(1)

	out := automata.NewEmptyNFA(0, body.NumStates()+1)
	out.EnsureState(out.Start)
	out.EnsureState(out.Accept)
	out.Merge(body)

	out.AddEpsilon(out.Start, body.Start)
	out.AddEpsilon(body.Accept, out.Accept)
	out.AddEpsilon(body.Accept, body.Start)
	return out
}

// Thompson builds the optional fragment: a fresh start/accept pair, an
// epsilon bypass from start straight to accept (zero occurrences), an
// epsilon into E, and an epsilon from E's accept to the fresh accept so
// one occurrence is reachable too.
func (n Question) Thompson() *automata.NFA {
	body := n.E.Thompson().ShiftBy(1)

	out := automata.NewEmptyNFA(0, body.NumStates()+1)
	out.EnsureState(out.Start)
	out.EnsureState(out.Accept)
	out.Merge(body)

	out.AddEpsilon(out.Start, body.Start)
	out.AddEpsilon(out.Start, out.Accept)
	out.AddEpsilon(body.Accept, out.Accept)
	return out
}
