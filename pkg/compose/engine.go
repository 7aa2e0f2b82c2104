package compose

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/nfa/internal/logging"
	"github.com/aretw0/nfa/pkg/domain"
)

// ErrOverlappingStates is returned under OverlapReject when both operands use a state name.
var ErrOverlappingStates = errors.New("operands share state names")

// Operation names a composition, and labels logs and metrics.
type Operation string

const (
	OpConcatenation Operation = "concatenation"
	OpAlternation   Operation = "alternation"
	OpIteration     Operation = "iteration"
	OpIterationPlus Operation = "iteration_plus"
)

// OverlapPolicy decides what happens when two operands share state names.
type OverlapPolicy int

const (
	// OverlapRename gives the right operand's clashing states fresh names.
	OverlapRename OverlapPolicy = iota
	// OverlapReject fails with ErrOverlappingStates.
	OverlapReject
)

// Result is the outcome of a composition.
type Result struct {
	Automaton *domain.Automaton
	// Renamed maps right-operand states to the names they received in Automaton.
	// It is empty when the operands were disjoint.
	Renamed map[string]string
}

// Engine runs compositions. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	policy  OverlapPolicy
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithOverlapPolicy sets how clashing operand state names are handled (default: OverlapRename).
func WithOverlapPolicy(p OverlapPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics records every composition in m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		policy: OverlapRename,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) finish(op Operation, res *domain.Automaton, renamed map[string]string) *Result {
	e.logger.Debug("composed automaton",
		"operation", op,
		"states", res.StateCount(),
		"transitions", res.TransitionCount(),
		"renamed", len(renamed),
	)
	if e.metrics != nil {
		e.metrics.observe(op, res, len(renamed))
	}
	if renamed == nil {
		renamed = map[string]string{}
	}
	return &Result{Automaton: res, Renamed: renamed}
}

// merge copies the states, symbols and transitions of src into dst.
// Accept states are left to the caller.
func merge(dst, src *domain.Automaton) error {
	for _, s := range src.States() {
		dst.AddState(s)
	}
	for _, sym := range src.Alphabet() {
		dst.AddSymbol(sym)
	}
	for _, t := range src.Transitions() {
		if err := dst.AddTransition(t.From, t.Symbol, t.To...); err != nil {
			return fmt.Errorf("failed to merge transitions: %w", err)
		}
	}
	return nil
}

var defaultEngine = New()

// Concatenation composes a and b with the default engine. See Engine.Concatenation.
func Concatenation(a, b *domain.Automaton) (*domain.Automaton, error) {
	res, err := defaultEngine.Concatenation(a, b)
	if err != nil {
		return nil, err
	}
	return res.Automaton, nil
}

// Alternation composes a and b with the default engine. See Engine.Alternation.
func Alternation(a, b *domain.Automaton) (*domain.Automaton, error) {
	res, err := defaultEngine.Alternation(a, b)
	if err != nil {
		return nil, err
	}
	return res.Automaton, nil
}

// Iteration returns the Kleene star of a with the default engine.
func Iteration(a *domain.Automaton) (*domain.Automaton, error) {
	res, err := defaultEngine.Iteration(a)
	if err != nil {
		return nil, err
	}
	return res.Automaton, nil
}

// IterationPlus returns the Kleene plus of a with the default engine.
func IterationPlus(a *domain.Automaton) (*domain.Automaton, error) {
	res, err := defaultEngine.IterationPlus(a)
	if err != nil {
		return nil, err
	}
	return res.Automaton, nil
}
