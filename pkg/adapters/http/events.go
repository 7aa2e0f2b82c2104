package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/nfa/internal/logging"
)

// EventType tells what happened to a stored automaton.
type EventType string

const (
	EventSaved   EventType = "saved"
	EventDeleted EventType = "deleted"
)

// Event is pushed to /events subscribers when a stored automaton changes.
type Event struct {
	Type EventType `json:"type"`
	Name string    `json:"name"`
}

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	subscribers map[string]map[chan Event]struct{} // name ("" = all) -> set of channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		logger:      logging.NewNop(),
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers for events about name, or about every automaton when name is empty.
// The returned function unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(name string) (<-chan Event, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan Event, 10)
	if _, ok := sm.subscribers[name]; !ok {
		sm.subscribers[name] = make(map[chan Event]struct{})
	}
	sm.subscribers[name][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[name]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, name)
			}
		}
	}
}

// Broadcast delivers ev to its subscribers without blocking.
func (sm *StreamManager) Broadcast(ev Event) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for _, key := range []string{"", ev.Name} {
		for ch := range sm.subscribers[key] {
			select {
			case ch <- ev:
			default:
				// Drop message if channel is full (slow client)
				sm.logger.Warn("SSE: Client buffer full, dropping event", "name", ev.Name)
			}
		}
		if ev.Name == "" {
			break
		}
	}
}

// SubscribeEvents handles the GET /events request (SSE). The optional name query
// parameter restricts the stream to one automaton.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	name := r.URL.Query().Get("name")
	ch, cancel := s.Streams.Subscribe(name)
	defer cancel()
	s.logger.Info("SSE: client subscribed", "name", name)

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE: client disconnected", "name", name)
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
			flusher.Flush()
		}
	}
}
