package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
)

// MaxRandomStates bounds RandomConfig.States. Generation draws an edge candidate for
// every (state, symbol, target) triple.
const MaxRandomStates = 1000

// MaxRandomAlphabet bounds RandomConfig.AlphabetSize.
const MaxRandomAlphabet = 256

// RandomConfig enumerates the knobs of Random.
type RandomConfig struct {
	// States is the number of states, named q0..qN-1 with q0 as the start state.
	States int `yaml:"states" json:"states"`
	// AlphabetSize is the number of symbols, named a, b, c... (s26, s27... past z).
	AlphabetSize int `yaml:"alphabet_size" json:"alphabet_size"`
	// Density is the probability, in [0, 1], that a given (state, symbol, target) edge exists.
	Density float64 `yaml:"density" json:"density"`
	// AcceptRatio is the probability, in [0, 1], that a state accepts. At least one state always does.
	AcceptRatio float64 `yaml:"accept_ratio" json:"accept_ratio"`
	// Seed makes generation reproducible.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// DefaultRandomConfig returns the knobs used when none are given.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{
		States:       5,
		AlphabetSize: 2,
		Density:      0.3,
		AcceptRatio:  0.3,
		Seed:         1,
	}
}

// Validate reports knobs out of range as ErrInvalidConfig.
func (c RandomConfig) Validate() error {
	switch {
	case c.States < 1 || c.States > MaxRandomStates:
		return fmt.Errorf("%w: states must be within [1, %d], got %d", ErrInvalidConfig, MaxRandomStates, c.States)
	case c.AlphabetSize < 1 || c.AlphabetSize > MaxRandomAlphabet:
		return fmt.Errorf("%w: alphabet size must be within [1, %d], got %d", ErrInvalidConfig, MaxRandomAlphabet, c.AlphabetSize)
	case math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be within [0, 1], got %v", ErrInvalidConfig, c.Density)
	case math.IsNaN(c.AcceptRatio) || c.AcceptRatio < 0 || c.AcceptRatio > 1:
		return fmt.Errorf("%w: accept ratio must be within [0, 1], got %v", ErrInvalidConfig, c.AcceptRatio)
	}
	return nil
}

func symbolName(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return "s" + strconv.Itoa(i)
}

// Random synthesizes an automaton from cfg. The same config always yields the same automaton.
func Random(cfg RandomConfig) (*Automaton, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	a := &Automaton{}
	states := make([]string, cfg.States)
	for i := range states {
		states[i] = "q" + strconv.Itoa(i)
		a.AddState(states[i])
	}
	for i := 0; i < cfg.AlphabetSize; i++ {
		a.AddSymbol(symbolName(i))
	}
	a.start = states[0]

	for _, from := range states {
		for i := 0; i < cfg.AlphabetSize; i++ {
			sym := symbolName(i)
			// The start state is never a destination.
			for _, to := range states[1:] {
				if rng.Float64() < cfg.Density {
					if err := a.AddTransition(from, sym, to); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	for _, s := range states {
		if rng.Float64() < cfg.AcceptRatio {
			a.SetAccept(s)
		}
	}
	if len(a.accept) == 0 {
		a.SetAccept(states[rng.IntN(len(states))])
	}
	return a, nil
}
