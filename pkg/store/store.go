package store

import (
	"context"
	"slices"
	"time"

	"github.com/go-drift/driftstore/pkg/errors"
)

// ErrReducerFault is reported to observers when a reducer panics.
var ErrReducerFault = errors.New("reducer panicked")

// Reducer computes the next state from the current state and an action.
// It must be pure and return state unchanged for unknown action types.
type Reducer[S any] func(state S, action Action) S

// Store holds application state, a reducer and change listeners.
type Store[S any] struct {
	state     S
	name      string
	reducer   Reducer[S]
	listeners []*listenerEntry
	observers []Observer
	dispatch  func(Action)
}

type listenerEntry struct {
	fn      func()
	removed bool
}

// New creates a store and dispatches ActionInit through reducer before
// returning it. It panics with a KindConfig error when reducer is nil.
func New[S any](initial S, reducer Reducer[S], opts ...Option) *Store[S] {
	if reducer == nil {
		panic(&errors.StoreError{
			Op:   "store.New",
			Kind: errors.KindConfig,
			Err:  errors.New("nil reducer"),
		})
	}
	cfg := config{name: DefaultName}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store[S]{
		state:     initial,
		name:      cfg.name,
		reducer:   reducer,
		observers: cfg.observers,
	}
	s.dispatch = s.Dispatch
	s.Dispatch(Action{Type: ActionInit})
	return s
}

// State returns the current state.
func (s *Store[S]) State() S {
	return s.state
}

// Name returns the store name.
func (s *Store[S]) Name() string {
	return s.name
}

// SetName replaces the store name and notifies listeners, even though the
// state is unchanged.
func (s *Store[S]) SetName(name string) {
	s.setName(context.Background(), name)
}

// Dispatch applies action. See DispatchContext.
func (s *Store[S]) Dispatch(action Action) {
	s.DispatchContext(context.Background(), action)
}

// DispatchContext applies action and notifies listeners. A well-formed
// rename action renames the store; any other action replaces the state with
// the reducer's result. ctx is only passed to observers.
func (s *Store[S]) DispatchContext(ctx context.Context, action Action) {
	if name, ok := action.renameTarget(); ok {
		s.setName(ctx, name)
		return
	}

	finish := s.observe(ctx, action.Type)
	returned := false
	if finish != nil {
		defer func() {
			if !returned {
				finish(&errors.StoreError{
					Op:    "store.Dispatch",
					Kind:  errors.KindTransition,
					Store: s.name,
					Err:   ErrReducerFault,
				})
			}
		}()
	}

	next := s.reducer(s.state, action)
	returned = true
	s.state = next
	if finish != nil {
		finish(nil)
	}
	s.notify()
}

// TryDispatch dispatches action and converts a panic into an error.
// A reducer panic leaves the state unchanged. A listener panic is reported
// the same way, but the state has already been replaced by then.
func (s *Store[S]) TryDispatch(action Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.StoreError{
				Op:    "store.TryDispatch",
				Kind:  errors.KindTransition,
				Store: s.name,
				Err: &errors.PanicError{
					Op:         "store.Dispatch",
					Value:      r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				},
				Timestamp: time.Now(),
			}
		}
	}()
	s.Dispatch(action)
	return nil
}

// Dispatcher returns the store's dispatch function. The same function value
// is returned on every call, so it is safe to keep across rebuilds.
func (s *Store[S]) Dispatcher() func(Action) {
	return s.dispatch
}

// Subscribe registers listener and returns a function removing exactly this
// registration. The returned function reports whether it removed anything;
// calling it again returns false.
func (s *Store[S]) Subscribe(listener func()) func() bool {
	if listener == nil {
		return func() bool { return false }
	}
	entry := &listenerEntry{fn: listener}
	s.listeners = append(s.listeners, entry)
	return func() bool {
		i := slices.Index(s.listeners, entry)
		if i < 0 {
			return false
		}
		s.listeners = slices.Delete(s.listeners, i, i+1)
		entry.removed = true
		return true
	}
}

// ListenerCount returns the number of registered listeners.
func (s *Store[S]) ListenerCount() int {
	return len(s.listeners)
}

func (s *Store[S]) setName(ctx context.Context, name string) {
	old := s.name
	s.name = name
	for _, o := range s.observers {
		o.OnRename(ctx, old, name)
	}
	s.notify()
}

// notify runs one pass over the listeners registered when it starts.
func (s *Store[S]) notify() {
	if len(s.listeners) == 0 {
		return
	}
	pass := slices.Clone(s.listeners)
	for _, entry := range pass {
		if entry.removed {
			continue
		}
		entry.fn()
	}
}

// observe starts a dispatch on every observer and returns the function
// completing it, or nil when there are no observers.
func (s *Store[S]) observe(ctx context.Context, actionType string) func(error) {
	if len(s.observers) == 0 {
		return nil
	}
	name := s.name
	start := time.Now()
	ctxs := make([]context.Context, len(s.observers))
	for i, o := range s.observers {
		ctxs[i] = o.OnDispatchStart(ctx, name, actionType)
	}
	return func(err error) {
		d := time.Since(start)
		for i, o := range s.observers {
			o.OnDispatchComplete(ctxs[i], name, actionType, d, err)
		}
	}
}
