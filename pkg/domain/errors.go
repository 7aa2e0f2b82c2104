package domain

import "errors"

// ErrInvalidTransition is returned when a transition would target the start state.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrUnknownState is returned when a state is referenced but not registered in the automaton.
var ErrUnknownState = errors.New("unknown state")

// ErrInvalidConfig is returned when random generation knobs are out of range.
var ErrInvalidConfig = errors.New("invalid random config")
