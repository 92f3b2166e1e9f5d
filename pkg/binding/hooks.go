package binding

import (
	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/store"
)

// UseSelector subscribes s to selector applied to the ambient store's
// state. The element rebuilds when the selected value changes according to
// equal, which defaults to store.Identical.
//
// Call it from InitState. It panics with a configuration error when no
// Provider[S] is in scope.
func UseSelector[S, T any](s core.StateHolder, selector func(S) T, equal ...store.EqualFunc[T]) *Selection[T] {
	ctx := core.BaseOf(s).Context()
	st := StoreOf[S](ctx)
	sel := newSelection(s, st, selector, pickEqual(equal))
	sel.resolve = func() (any, func(func()) func(), func() T) {
		next := StoreOf[S](ctx)
		return next, subscribeTo(next), snapshotOf(next, selector)
	}
	return sel
}

// UseState subscribes s to the whole state of the ambient store. Every
// notification rebuilds, renames included.
func UseState[S any](s core.StateHolder) *Selection[S] {
	return UseSelector[S, S](s, identity[S], store.Never[S])
}

// UseDispatch returns the ambient store's dispatch function. The function
// is the same value for as long as the provider exposes the same store.
func UseDispatch[S any](s core.StateHolder) func(store.Action) {
	return StoreOf[S](core.BaseOf(s).Context()).Dispatcher()
}

func identity[S any](state S) S {
	return state
}
