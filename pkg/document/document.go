package document

import (
	"errors"
	"fmt"

	"github.com/aretw0/nfa/pkg/domain"
)

// ErrMalformedDocument is returned when a document misses required keys, holds values
// of the wrong shape or describes an automaton that breaks an invariant.
var ErrMalformedDocument = errors.New("malformed document")

// ErrIO is returned when a document file cannot be written or read.
var ErrIO = errors.New("document i/o failed")

// Transition is one row of the transition table.
type Transition struct {
	FromState string   `json:"from_state" yaml:"from_state" mapstructure:"from_state" msgpack:"from_state"`
	Symbol    string   `json:"symbol" yaml:"symbol" mapstructure:"symbol" msgpack:"symbol"`
	ToStates  []string `json:"to_states" yaml:"to_states" mapstructure:"to_states" msgpack:"to_states"`
}

// Document is the serialized form of an automaton.
type Document struct {
	States          []string     `json:"states" yaml:"states" mapstructure:"states" msgpack:"states"`
	Alphabet        []string     `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet" msgpack:"alphabet"`
	TransitionTable []Transition `json:"transition_table" yaml:"transition_table" mapstructure:"transition_table" msgpack:"transition_table"`
	StartState      string       `json:"start_state" yaml:"start_state" mapstructure:"start_state" msgpack:"start_state"`
	AcceptStates    []string     `json:"accept_states" yaml:"accept_states" mapstructure:"accept_states" msgpack:"accept_states"`
}

// requiredKeys lists the keys a document must carry. The transition table may be
// omitted, meaning no transitions.
var requiredKeys = []string{"states", "alphabet", "start_state", "accept_states"}

// requiredTransitionKeys lists the keys every transition table row must carry.
var requiredTransitionKeys = []string{"from_state", "symbol", "to_states"}

// FromAutomaton captures a. Every list is sorted so equal automata give equal documents.
func FromAutomaton(a *domain.Automaton) Document {
	doc := Document{
		States:          a.States(),
		Alphabet:        a.Alphabet(),
		TransitionTable: []Transition{},
		StartState:      a.Start(),
		AcceptStates:    a.AcceptStates(),
	}
	for _, t := range a.Transitions() {
		doc.TransitionTable = append(doc.TransitionTable, Transition{
			FromState: t.From,
			Symbol:    t.Symbol,
			ToStates:  t.To,
		})
	}
	// Keep empty lists as [] rather than null.
	if doc.States == nil {
		doc.States = []string{}
	}
	if doc.Alphabet == nil {
		doc.Alphabet = []string{}
	}
	if doc.AcceptStates == nil {
		doc.AcceptStates = []string{}
	}
	return doc
}

// Automaton builds the automaton the document describes.
// The start and accept states must be listed in states; transitions may mention
// unlisted states and symbols, as the model tolerates them.
func (d Document) Automaton() (*domain.Automaton, error) {
	a, err := domain.New(d.States, d.Alphabet, d.StartState, d.AcceptStates)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	for i, t := range d.TransitionTable {
		if err := a.AddTransition(t.FromState, t.Symbol, t.ToStates...); err != nil {
			return nil, fmt.Errorf("%w: transition_table[%d]: %w", ErrMalformedDocument, i, err)
		}
	}
	return a, nil
}
