package core

import (
	"slices"
	"sync"
)

// StateHolder is satisfied by any struct that embeds StateBase.
// Hooks accept a StateHolder so callers can pass s directly.
type StateHolder interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// BaseOf returns the StateBase embedded in s.
func BaseOf(s StateHolder) *StateBase {
	return s.state()
}

// StateBase provides common functionality for stateful widget states.
// Embed this struct in your state to eliminate boilerplate.
//
// Example:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []*disposer
	disposed  bool
	mu        sync.Mutex
}

// SetElement stores the element reference for triggering rebuilds.
// This method is called automatically by the framework.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state.
// Returns nil if the state has not been mounted.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// Context returns the build context of the owning element, or nil before
// the state is mounted. It is available from InitState onward.
func (s *StateBase) Context() BuildContext {
	if s.element == nil {
		return nil
	}
	return s.element
}

// SetState executes the given function and schedules a rebuild.
// Safe to call even after disposal (becomes a no-op).
//
// SetState is NOT thread-safe. It must only be called from the UI goroutine.
func (s *StateBase) SetState(fn func()) {
	if s.IsDisposed() {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}

	entry := &disposer{fn: cleanup}
	s.disposers = append(s.disposers, entry)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.disposers = slices.DeleteFunc(s.disposers, func(d *disposer) bool { return d == entry })
	}
}

type disposer struct {
	fn func()
}

// RunDisposers executes all registered disposers in reverse order.
// This is called automatically by Dispose().
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	// Run disposers in reverse order (LIFO)
	for i := len(disposers) - 1; i >= 0; i-- {
		disposers[i].fn()
	}
}

// Dispose cleans up resources. Override this method if you need custom cleanup,
// but always call s.RunDisposers() or s.StateBase.Dispose() in your override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState is a no-op default implementation.
// Override this method to initialize your state.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation that returns nil.
// Override this method to build your widget tree.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidChangeDependencies is a no-op default implementation.
// Override this method to respond to inherited widget changes.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget is a no-op default implementation.
// Override this method to respond to widget configuration changes.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
