package domain

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

type set map[string]struct{}

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s set) has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s set) sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Automaton is a nondeterministic finite automaton.
//
// The zero value is an empty automaton ready for use. Fields are unexported so the
// "no transition into the start state" invariant cannot be bypassed; accessors return
// sorted copies.
type Automaton struct {
	states      set
	alphabet    set
	transitions map[Key]set
	start       string
	accept      set
}

// New creates an automaton from explicit sets.
// The start state and every accept state must belong to states.
func New(states, alphabet []string, start string, accept []string) (*Automaton, error) {
	a := &Automaton{
		states:      newSet(states...),
		alphabet:    newSet(alphabet...),
		transitions: make(map[Key]set),
		start:       start,
		accept:      newSet(accept...),
	}

	var errs []error
	if !a.states.has(start) {
		errs = append(errs, fmt.Errorf("%w: start state %q", ErrUnknownState, start))
	}
	for _, s := range a.accept.sorted() {
		if !a.states.has(s) {
			errs = append(errs, fmt.Errorf("%w: accept state %q", ErrUnknownState, s))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return a, nil
}

func (a *Automaton) init() {
	if a.states == nil {
		a.states = make(set)
	}
	if a.alphabet == nil {
		a.alphabet = make(set)
	}
	if a.transitions == nil {
		a.transitions = make(map[Key]set)
	}
	if a.accept == nil {
		a.accept = make(set)
	}
}

// AddState registers a state. Adding an existing state is a no-op.
func (a *Automaton) AddState(id string) {
	a.init()
	a.states[id] = struct{}{}
}

// AddSymbol registers an input symbol. Adding an existing symbol is a no-op.
func (a *Automaton) AddSymbol(sym string) {
	a.init()
	a.alphabet[sym] = struct{}{}
}

// AddTransition unions targets into the transition set of (state, symbol).
// It does not check that the states are registered; see Validate.
func (a *Automaton) AddTransition(state, symbol string, targets ...string) error {
	if slices.Contains(targets, a.start) {
		return fmt.Errorf("%w: %s -%s-> %s targets the start state", ErrInvalidTransition, state, symbol, a.start)
	}
	if len(targets) == 0 {
		return nil
	}

	a.init()
	k := Key{State: state, Symbol: symbol}
	dst, ok := a.transitions[k]
	if !ok {
		dst = make(set, len(targets))
		a.transitions[k] = dst
	}
	for _, t := range targets {
		dst[t] = struct{}{}
	}
	return nil
}

// SetStart designates the start state. It fails with ErrInvalidTransition when some
// transition already targets the candidate.
func (a *Automaton) SetStart(id string) error {
	for k, dst := range a.transitions {
		if dst.has(id) {
			return fmt.Errorf("%w: %s -%s-> %s already targets the new start state", ErrInvalidTransition, k.State, k.Symbol, id)
		}
	}
	a.start = id
	return nil
}

// SetAccept marks states as accepting.
func (a *Automaton) SetAccept(ids ...string) {
	a.init()
	for _, id := range ids {
		a.accept[id] = struct{}{}
	}
}

// StateCount returns the number of registered states.
func (a *Automaton) StateCount() int {
	return len(a.states)
}

// Start returns the start state.
func (a *Automaton) Start() string {
	return a.start
}

// States returns the registered states in sorted order.
func (a *Automaton) States() []string {
	return a.states.sorted()
}

// Alphabet returns the input symbols in sorted order.
func (a *Automaton) Alphabet() []string {
	return a.alphabet.sorted()
}

// AcceptStates returns the accept states in sorted order.
func (a *Automaton) AcceptStates() []string {
	return a.accept.sorted()
}

// HasState reports whether id is registered.
func (a *Automaton) HasState(id string) bool {
	return a.states.has(id)
}

// HasSymbol reports whether sym belongs to the alphabet.
func (a *Automaton) HasSymbol(sym string) bool {
	return a.alphabet.has(sym)
}

// IsAccept reports whether id is an accept state.
func (a *Automaton) IsAccept(id string) bool {
	return a.accept.has(id)
}

// Targets returns the sorted destinations of (state, symbol), or nil.
func (a *Automaton) Targets(state, symbol string) []string {
	dst, ok := a.transitions[Key{State: state, Symbol: symbol}]
	if !ok {
		return nil
	}
	return dst.sorted()
}

// Transitions returns every transition entry ordered by source state then symbol.
func (a *Automaton) Transitions() []Transition {
	res := make([]Transition, 0, len(a.transitions))
	for k, dst := range a.transitions {
		res = append(res, Transition{From: k.State, Symbol: k.Symbol, To: dst.sorted()})
	}
	slices.SortFunc(res, func(x, y Transition) int {
		return cmp.Or(cmp.Compare(x.From, y.From), cmp.Compare(x.Symbol, y.Symbol))
	})
	return res
}

// TransitionCount returns the number of (state, symbol) entries.
func (a *Automaton) TransitionCount() int {
	return len(a.transitions)
}

// ReferencedStates returns every identifier the automaton mentions: registered
// states, transition sources and destinations, the start state and accept states.
func (a *Automaton) ReferencedStates() []string {
	ref := maps.Clone(a.states)
	if ref == nil {
		ref = make(set)
	}
	for k, dst := range a.transitions {
		ref[k.State] = struct{}{}
		for t := range dst {
			ref[t] = struct{}{}
		}
	}
	if a.start != "" {
		ref[a.start] = struct{}{}
	}
	for s := range a.accept {
		ref[s] = struct{}{}
	}
	return ref.sorted()
}

// Clone returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		states:      maps.Clone(a.states),
		alphabet:    maps.Clone(a.alphabet),
		transitions: make(map[Key]set, len(a.transitions)),
		start:       a.start,
		accept:      maps.Clone(a.accept),
	}
	for k, dst := range a.transitions {
		c.transitions[k] = maps.Clone(dst)
	}
	c.init()
	return c
}

// Equal reports whether both automata have the same states, alphabet, transition
// relation, start state and accept states.
func (a *Automaton) Equal(b *Automaton) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.start != b.start ||
		!equalSets(a.states, b.states) ||
		!equalSets(a.alphabet, b.alphabet) ||
		!equalSets(a.accept, b.accept) ||
		len(a.transitions) != len(b.transitions) {
		return false
	}
	for k, dst := range a.transitions {
		other, ok := b.transitions[k]
		if !ok || !equalSets(dst, other) {
			return false
		}
	}
	return true
}

func equalSets(x, y set) bool {
	if len(x) != len(y) {
		return false
	}
	for k := range x {
		if !y.has(k) {
			return false
		}
	}
	return true
}

// Validate checks that every state referenced by the start state, the accept states
// and the transition relation is registered. Symbols outside the alphabet are tolerated.
func (a *Automaton) Validate() error {
	var errs []error
	if !a.states.has(a.start) {
		errs = append(errs, fmt.Errorf("%w: start state %q", ErrUnknownState, a.start))
	}
	for _, s := range a.accept.sorted() {
		if !a.states.has(s) {
			errs = append(errs, fmt.Errorf("%w: accept state %q", ErrUnknownState, s))
		}
	}
	for _, t := range a.Transitions() {
		if !a.states.has(t.From) {
			errs = append(errs, fmt.Errorf("%w: transition source %q", ErrUnknownState, t.From))
		}
		for _, to := range t.To {
			if !a.states.has(to) {
				errs = append(errs, fmt.Errorf("%w: transition %s -%s-> %q", ErrUnknownState, t.From, t.Symbol, to))
			}
		}
	}
	return errors.Join(errs...)
}
