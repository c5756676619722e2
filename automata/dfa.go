package automata

import (
	"sort"
	"strconv"
	"strings"
)

// DFA is a deterministic, total automaton: every (state, symbol) pair in
// States x Alphabet has exactly one entry in Delta. States are always
// strings — the canonical, sorted encoding of the frozen set of
// originating NFA states that SubsetConstruction folded into them.
type DFA struct {
	Start        string
	States       map[string]struct{}
	Delta        map[string]map[rune]string
	AcceptStates map[string]struct{}
	Alphabet     map[rune]struct{}
}

const sinkLabel = "∅" // the canonical empty NFA-state-set: "∅"

// SubsetConstruction converts g into an equivalent total DFA using the
// classic worklist algorithm: DFA states are epsilon-closed subsets of
// g's states, canonicalized to a string via keyFunc so that equal
// subsets always map to the same DFA state regardless of iteration
// order. Besides the DFA, it returns, for every reachable DFA state
// label, the set of originating g-states that subset folded together —
// callers that need to know *which* NFA accept states a DFA state
// derives from (the lexer compiler, to attribute rule priority) read
// this instead of re-deriving it from the label text.
func SubsetConstruction[S comparable](g *Generic[S], keyFunc func(S) string) (*DFA, map[string][]S) {
	startSet := EpsilonClosure(g, map[S]struct{}{g.Start: {}})
	startLabel := canonicalLabel(startSet, keyFunc)

	dfa := &DFA{
		Start:        startLabel,
		States:       make(map[string]struct{}),
		Delta:        make(map[string]map[rune]string),
		AcceptStates: make(map[string]struct{}),
		Alphabet:     make(map[rune]struct{}, len(g.Alphabet)),
	}
	for a := range g.Alphabet {
		dfa.Alphabet[a] = struct{}{}
	}

	members := map[string][]S{startLabel: setMembers(startSet)}
	queue := []map[S]struct{}{startSet}
	queued := map[string]bool{startLabel: true}
	visited := make(map[string]bool)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentLabel := canonicalLabel(current, keyFunc)
		if visited[currentLabel] {
			continue
		}
		visited[currentLabel] = true
		dfa.States[currentLabel] = struct{}{}
		if intersectsAccept(current, g.Accept) {
			dfa.AcceptStates[currentLabel] = struct{}{}
		}
		dfa.Delta[currentLabel] = make(map[rune]string, len(dfa.Alphabet))

		for a := range dfa.Alphabet {
			target := move(g, current, a)
			targetLabel := canonicalLabel(target, keyFunc)
			if _, ok := members[targetLabel]; !ok {
				members[targetLabel] = setMembers(target)
			}
			if !queued[targetLabel] {
				queued[targetLabel] = true
				queue = append(queue, target)
			}
			dfa.Delta[currentLabel][a] = targetLabel
		}
	}

	return dfa, members
}

func move[S comparable](g *Generic[S], set map[S]struct{}, a rune) map[S]struct{} {
	targets := make(map[S]struct{})
	for s := range set {
		for t := range g.Delta[s][a] {
			targets[t] = struct{}{}
		}
	}
	if len(targets) == 0 {
		return targets
	}
	return EpsilonClosure(g, targets)
}

func intersectsAccept[S comparable](set map[S]struct{}, accept map[S]struct{}) bool {
	for s := range set {
		if _, ok := accept[s]; ok {
			return true
		}
	}
	return false
}

func setMembers[S comparable](set map[S]struct{}) []S {
	out := make([]S, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

// canonicalLabel sorts the stringified members of set and joins them, so
// two calls on equal sets always produce the same label no matter the
// map iteration order. The empty set always canonicalizes to sinkLabel.
func canonicalLabel[S comparable](set map[S]struct{}, keyFunc func(S) string) string {
	if len(set) == 0 {
		return sinkLabel
	}
	keys := make([]string, 0, len(set))
	for s := range set {
		keys = append(keys, keyFunc(s))
	}
	sort.Strings(keys)
	return "{" + strings.Join(keys, ",") + "}"
}

// IntKey is the canonical keyFunc for Generic[int]-backed automata (a
// bare regex compiled on its own, outside a lexer).
func IntKey(s int) string { return strconv.Itoa(s) }

// Accept simulates word against the DFA from its start state, following
// exactly one transition per rune. Because Delta is total, this never
// gets stuck; a word containing a rune outside Alphabet is simply
// rejected rather than causing a lookup failure.
func (d *DFA) Accept(word string) bool {
	state := d.Start
	for _, r := range word {
		row, ok := d.Delta[state]
		if !ok {
			return false
		}
		next, ok := row[r]
		if !ok {
			return false
		}
		state = next
	}
	_, accepting := d.AcceptStates[state]
	return accepting
}

// IsSink reports whether state is dead: every transition it has loops
// back to itself and it is not an accept state. This is checked
// structurally, by walking Alphabet, rather than by comparing state to
// some remembered identity — a state can only be recognized as a sink by
// what it does, not by which string subset-construction happened to
// assign it.
func (d *DFA) IsSink(state string) bool {
	if _, accepting := d.AcceptStates[state]; accepting {
		return false
	}
	row, ok := d.Delta[state]
	if !ok {
		return false
	}
	for a := range d.Alphabet {
		if row[a] != state {
			return false
		}
	}
	return true
}
