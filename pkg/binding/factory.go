package binding

import (
	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/store"
)

// Hook is a store bound at creation time. Reads through a Hook never
// consult providers.
type Hook[S any] struct {
	store *store.Store[S]
}

// Create builds a store with store.New and binds it to a Hook.
func Create[S any](initial S, reducer store.Reducer[S], opts ...store.Option) *Hook[S] {
	return &Hook[S]{store: store.New(initial, reducer, opts...)}
}

// Use subscribes s to the whole state, like UseState.
func (h *Hook[S]) Use(s core.StateHolder) *Selection[S] {
	return newSelection(s, h.store, identity[S], store.Never[S])
}

// Store returns the bound store.
func (h *Hook[S]) Store() *store.Store[S] {
	return h.store
}

// Dispatch dispatches action to the bound store.
func (h *Hook[S]) Dispatch(action store.Action) {
	h.store.Dispatch(action)
}

// Select subscribes s to selector applied to the bound store, like
// UseSelector.
func Select[S, T any](h *Hook[S], s core.StateHolder, selector func(S) T, equal ...store.EqualFunc[T]) *Selection[T] {
	return newSelection(s, h.store, selector, pickEqual(equal))
}
