// Package middleware wraps an AutomatonStore with cross-cutting behavior:
// validation, logging and Prometheus instrumentation.
package middleware

import "github.com/aretw0/nfa/pkg/ports"

// Middleware allows wrapping an AutomatonStore to add behavior.
type Middleware func(ports.AutomatonStore) ports.AutomatonStore

// Chain applies mws to store so that the first middleware is the outermost.
func Chain(store ports.AutomatonStore, mws ...Middleware) ports.AutomatonStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
