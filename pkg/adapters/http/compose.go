package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aretw0/nfa/pkg/compose"
	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
)

// Operand names a stored automaton or carries one inline.
type Operand struct {
	Name      string          `json:"name,omitempty"`
	Automaton json.RawMessage `json:"automaton,omitempty"`
}

// ComposeRequest is the body of POST /compose. Right is ignored by the unary
// iteration operations. When SaveAs is set the result is also stored under it.
type ComposeRequest struct {
	Operation compose.Operation `json:"operation"`
	Left      Operand           `json:"left"`
	Right     *Operand          `json:"right,omitempty"`
	SaveAs    string            `json:"save_as,omitempty"`
}

// ComposeResponse carries the composed automaton and the renaming applied to the
// right operand.
type ComposeResponse struct {
	Automaton document.Document `json:"automaton"`
	Renamed   map[string]string `json:"renamed"`
}

// Compose handles POST /compose.
func (s *Server) Compose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ComposeRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	left, err := s.resolve(ctx, req.Left)
	if err != nil {
		s.fail(w, r, fmt.Errorf("left operand: %w", err))
		return
	}

	var res *compose.Result
	switch req.Operation {
	case compose.OpIteration:
		res, err = s.Engine.Iteration(left)
	case compose.OpIterationPlus:
		res, err = s.Engine.IterationPlus(left)
	case compose.OpConcatenation, compose.OpAlternation:
		if req.Right == nil {
			s.fail(w, r, fmt.Errorf("%w: %s needs a right operand", errBadRequest, req.Operation))
			return
		}
		right, rerr := s.resolve(ctx, *req.Right)
		if rerr != nil {
			s.fail(w, r, fmt.Errorf("right operand: %w", rerr))
			return
		}
		if req.Operation == compose.OpConcatenation {
			res, err = s.Engine.Concatenation(left, right)
		} else {
			res, err = s.Engine.Alternation(left, right)
		}
	default:
		s.fail(w, r, fmt.Errorf("%w: unknown operation %q", errBadRequest, req.Operation))
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if req.SaveAs != "" {
		release, err := s.lock(ctx, req.SaveAs)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		err = s.Store.Save(ctx, req.SaveAs, res.Automaton)
		release()
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.Streams.Broadcast(Event{Type: EventSaved, Name: req.SaveAs})
	}

	writeJSON(w, s.logger, http.StatusOK, ComposeResponse{
		Automaton: document.FromAutomaton(res.Automaton),
		Renamed:   res.Renamed,
	})
}

func (s *Server) resolve(ctx context.Context, op Operand) (*domain.Automaton, error) {
	switch {
	case op.Name != "" && len(op.Automaton) > 0:
		return nil, fmt.Errorf("%w: give either a name or an inline automaton", errBadRequest)
	case op.Name != "":
		return s.Store.Load(ctx, op.Name)
	case len(op.Automaton) > 0:
		return document.Unmarshal(op.Automaton, document.FormatJSON)
	default:
		return nil, fmt.Errorf("%w: empty operand", errBadRequest)
	}
}
