package domain

// Key identifies one entry of the transition relation.
type Key struct {
	State  string
	Symbol string
}

// Transition is a flattened view of a transition relation entry.
// To is sorted and never empty.
type Transition struct {
	From   string   `json:"from_state" yaml:"from_state"`
	Symbol string   `json:"symbol" yaml:"symbol"`
	To     []string `json:"to_states" yaml:"to_states"`
}
