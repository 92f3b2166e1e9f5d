package binding

import (
	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/store"
)

// Selection is a value derived from a store that keeps its state's element
// up to date. Read it with Value during Build.
type Selection[T any] struct {
	holder core.StateHolder
	equal  store.EqualFunc[T]
	source any
	ext    *core.ExternalStore[T]
	// resolve finds the current ambient source; nil for bound hooks.
	resolve func() (source any, subscribe func(func()) func(), snapshot func() T)
}

// Value returns the selected value. When the selection follows an ambient
// store and the provider now exposes a different one, the subscription
// moves to the new store first.
func (sel *Selection[T]) Value() T {
	if sel.resolve != nil && !sel.ext.Closed() {
		if source, subscribe, snapshot := sel.resolve(); source != sel.source {
			sel.bind(source, subscribe, snapshot)
		}
	}
	return sel.ext.Value()
}

// Close removes the store subscription. It also happens when the state is
// disposed.
func (sel *Selection[T]) Close() {
	sel.ext.Close()
}

func (sel *Selection[T]) bind(source any, subscribe func(func()) func(), snapshot func() T) {
	if sel.ext != nil {
		sel.ext.Close()
	}
	sel.source = source
	sel.ext = core.UseExternalStore(sel.holder, subscribe, snapshot, sel.equal)
}

func newSelection[S, T any](s core.StateHolder, st *store.Store[S], selector func(S) T, equal store.EqualFunc[T]) *Selection[T] {
	if selector == nil {
		panic(&errors.StoreError{
			Op:    "binding.UseSelector",
			Kind:  errors.KindConfig,
			Store: st.Name(),
			Err:   errors.New("nil selector"),
		})
	}
	sel := &Selection[T]{holder: s, equal: equal}
	sel.bind(st, subscribeTo(st), snapshotOf(st, selector))
	return sel
}

// subscribeTo adapts Store.Subscribe to the external store signature.
func subscribeTo[S any](st *store.Store[S]) func(func()) func() {
	return func(onChange func()) func() {
		unsubscribe := st.Subscribe(onChange)
		return func() { unsubscribe() }
	}
}

func snapshotOf[S, T any](st *store.Store[S], selector func(S) T) func() T {
	return func() T { return selector(st.State()) }
}

func pickEqual[T any](equal []store.EqualFunc[T]) store.EqualFunc[T] {
	if len(equal) > 0 && equal[0] != nil {
		return equal[0]
	}
	return store.Identical[T]
}
