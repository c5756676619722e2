// Package automata implements the automaton algebra the rest of the module
// compiles down to: Thompson-stage NFAs with contiguous integer states,
// generic epsilon-closure and subset construction over arbitrary state
// labels, and the resulting deterministic, total DFA.
package automata

// NFA is the output shape of Thompson's construction: states are small
// contiguous integers, there is exactly one start state and exactly one
// accept state, and every non-epsilon symbol used by a transition belongs
// to Alphabet. Composers (Concat, Union, Star, ...) renumber and merge
// NFAs of this shape to build larger ones; nothing here mutates an NFA
// after its emitter has returned it to the caller.
type NFA struct {
	Start    int
	Accept   int
	States   map[int]*NFAState
	Alphabet map[rune]struct{}
}

// NFAState holds one state's outgoing transitions.
type NFAState struct {
	ID          int
	Transitions map[rune]map[int]struct{}
	Epsilon     map[int]struct{}
}

// NewNFA returns a two-state fragment {0, 1} with 0 as start and 1 as
// accept, the shape every Thompson template starts from.
func NewNFA() *NFA {
	nfa := &NFA{
		Start:    0,
		Accept:   1,
		States:   make(map[int]*NFAState),
		Alphabet: make(map[rune]struct{}),
	}
	nfa.States[0] = newNFAState(0)
	nfa.States[1] = newNFAState(1)
	return nfa
}

// NewEmptyNFA returns an NFA with no states yet, but start/accept ids
// already chosen. Composers that assemble a fresh start/accept pair
// around a shifted inner fragment (Union, Star, Plus, Question) use this
// instead of NewNFA, since NewNFA's default {0,1} shape would only be
// thrown away.
func NewEmptyNFA(start, accept int) *NFA {
	return &NFA{
		Start:    start,
		Accept:   accept,
		States:   make(map[int]*NFAState),
		Alphabet: make(map[rune]struct{}),
	}
}

// EnsureState adds a state with no transitions if id is not already
// present; it is a no-op otherwise.
func (nfa *NFA) EnsureState(id int) {
	if _, ok := nfa.States[id]; !ok {
		nfa.States[id] = newNFAState(id)
	}
}

func newNFAState(id int) *NFAState {
	return &NFAState{
		ID:          id,
		Transitions: make(map[rune]map[int]struct{}),
		Epsilon:     make(map[int]struct{}),
	}
}

// AddState appends a fresh state and returns its id. Because NFAs of this
// shape are never built with gaps, the new id is always len(States).
func (nfa *NFA) AddState() int {
	id := len(nfa.States)
	nfa.States[id] = newNFAState(id)
	return id
}

// AddTransition records a transition from -> to on symbol a and widens
// the NFA's alphabet to include a. a must not be the epsilon symbol.
func (nfa *NFA) AddTransition(from int, a rune, to int) {
	state := nfa.States[from]
	if state.Transitions[a] == nil {
		state.Transitions[a] = make(map[int]struct{})
	}
	state.Transitions[a][to] = struct{}{}
	nfa.Alphabet[a] = struct{}{}
}

// AddEpsilon records an epsilon transition from -> to.
func (nfa *NFA) AddEpsilon(from, to int) {
	nfa.States[from].Epsilon[to] = struct{}{}
}

// ShiftBy returns a deep copy of nfa with every state id increased by
// offset. This is the renumbering step every binary Thompson composer
// (Concat, Union) uses before merging two fragments' state spaces.
func (nfa *NFA) ShiftBy(offset int) *NFA {
	shifted := &NFA{
		Start:    nfa.Start + offset,
		Accept:   nfa.Accept + offset,
		States:   make(map[int]*NFAState, len(nfa.States)),
		Alphabet: make(map[rune]struct{}, len(nfa.Alphabet)),
	}
	for a := range nfa.Alphabet {
		shifted.Alphabet[a] = struct{}{}
	}
	for id, state := range nfa.States {
		newID := id + offset
		newState := newNFAState(newID)
		for a, targets := range state.Transitions {
			newState.Transitions[a] = make(map[int]struct{}, len(targets))
			for t := range targets {
				newState.Transitions[a][t+offset] = struct{}{}
			}
		}
		for t := range state.Epsilon {
			newState.Epsilon[t+offset] = struct{}{}
		}
		shifted.States[newID] = newState
	}
	return shifted
}

// Merge copies every state of other into nfa. Callers are responsible for
// ensuring the two NFAs' state spaces are disjoint (ShiftBy guarantees
// this for a freshly shifted fragment) before wiring epsilon transitions
// between them.
func (nfa *NFA) Merge(other *NFA) {
	for id, state := range other.States {
		nfa.States[id] = state
	}
	for a := range other.Alphabet {
		nfa.Alphabet[a] = struct{}{}
	}
}

// NumStates reports how many states the NFA currently has.
func (nfa *NFA) NumStates() int {
	return len(nfa.States)
}
