package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request documents.
const maxBodyBytes = 4 << 20

// ListAutomata handles GET /automata.
func (s *Server) ListAutomata(w http.ResponseWriter, r *http.Request) {
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, map[string][]string{"automata": names})
}

// GetAutomaton handles GET /automata/{name}. The format query parameter selects
// json (default), yaml, dot or mermaid.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	a, err := s.Store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, s.logger, http.StatusOK, document.FromAutomaton(a))
	case "yaml":
		data, err := document.Marshal(a, document.FormatYAML)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeText(w, "application/yaml", data)
	case "dot":
		writeText(w, "text/vnd.graphviz", []byte(graph.GenerateDOT(a)))
	case "mermaid":
		writeText(w, "text/plain; charset=utf-8", []byte(graph.GenerateMermaid(a)))
	default:
		s.fail(w, r, fmt.Errorf("%w: unknown format %q", errBadRequest, format))
	}
}

// PutAutomaton handles PUT /automata/{name}; the body is a JSON document.
func (s *Server) PutAutomaton(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	a, err := readAutomaton(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	release, err := s.lock(r.Context(), name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer release()

	if err := s.Store.Save(r.Context(), name, a); err != nil {
		s.fail(w, r, err)
		return
	}
	s.Streams.Broadcast(Event{Type: EventSaved, Name: name})
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAutomaton handles DELETE /automata/{name}.
func (s *Server) DeleteAutomaton(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	release, err := s.lock(r.Context(), name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer release()

	if err := s.Store.Delete(r.Context(), name); err != nil {
		s.fail(w, r, err)
		return
	}
	s.Streams.Broadcast(Event{Type: EventDeleted, Name: name})
	w.WriteHeader(http.StatusNoContent)
}

// GetUnreachable handles GET /automata/{name}/unreachable.
func (s *Server) GetUnreachable(w http.ResponseWriter, r *http.Request) {
	a, err := s.Store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, map[string][]string{"unreachable": nonNil(a.UnreachableStates())})
}

type pruneResponse struct {
	Removed   []string          `json:"removed"`
	Automaton document.Document `json:"automaton"`
}

// Prune handles POST /automata/{name}/prune. The stored automaton is pruned in place
// under the automaton's lock, which every write handler also takes.
func (s *Server) Prune(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	release, err := s.lock(ctx, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer release()

	a, err := s.Store.Load(ctx, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	removed := a.PruneUnreachable()
	if len(removed) > 0 {
		if err := s.Store.Save(ctx, name, a); err != nil {
			s.fail(w, r, err)
			return
		}
		s.Streams.Broadcast(Event{Type: EventSaved, Name: name})
	}
	writeJSON(w, s.logger, http.StatusOK, pruneResponse{
		Removed:   nonNil(removed),
		Automaton: document.FromAutomaton(a),
	})
}

type acceptsRequest struct {
	Input []string `json:"input"`
}

// Accepts handles POST /automata/{name}/accepts with a body {"input": ["a", "b"]}.
func (s *Server) Accepts(w http.ResponseWriter, r *http.Request) {
	var body acceptsRequest
	if err := decodeBody(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	a, err := s.Store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, map[string]bool{"accepted": a.Accepts(body.Input...)})
}

// lock takes the per-name lock guarding writes to a stored automaton.
func (s *Server) lock(ctx context.Context, name string) (func(), error) {
	unlock, err := s.Locker.Lock(ctx, name, lockTTL)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("failed to release lock", "name", name, "error", err)
		}
	}, nil
}

func readAutomaton(r *http.Request) (*domain.Automaton, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return document.Unmarshal(data, document.FormatJSON)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", errBadRequest, err)
	}
	return nil
}

func writeText(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
