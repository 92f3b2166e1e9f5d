package core

// ExternalStore mirrors a value kept outside the widget tree.
// Create it with UseExternalStore.
type ExternalStore[T any] struct {
	base        *StateBase
	snapshot    func() T
	equal       func(a, b T) bool
	value       T
	unsubscribe func()
	release     func()
	closed      bool
}

// UseExternalStore subscribes s to an external source and triggers rebuilds
// when its snapshot changes.
//
// subscribe registers a change callback and returns the function removing
// it. snapshot reads the current value; it must be pure because it runs on
// every notification and on every Value call. equal decides whether two
// consecutive snapshots are the same; when it reports true no rebuild is
// scheduled. A nil equal treats every notification as a change.
//
// Call it once in InitState. The subscription is closed when the state is
// disposed.
//
// Example:
//
//	func (s *myState) InitState() {
//	    s.count = core.UseExternalStore(s, counter.Subscribe, counter.Value,
//	        func(a, b int) bool { return a == b })
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: strconv.Itoa(s.count.Value())}
//	}
func UseExternalStore[T any](s StateHolder, subscribe func(onChange func()) func(), snapshot func() T, equal func(a, b T) bool) *ExternalStore[T] {
	base := s.state()
	if equal == nil {
		equal = func(T, T) bool { return false }
	}
	es := &ExternalStore[T]{
		base:     base,
		snapshot: snapshot,
		equal:    equal,
		value:    snapshot(),
	}
	es.unsubscribe = subscribe(es.onChange)
	es.release = base.OnDispose(es.Close)
	return es
}

// Value returns the current snapshot. It re-reads the source so a value
// changed since the last notification is never missed; when the fresh
// snapshot equals the cached one the cached value is returned.
func (es *ExternalStore[T]) Value() T {
	if es.closed {
		return es.value
	}
	next := es.snapshot()
	if !es.equal(es.value, next) {
		es.value = next
	}
	return es.value
}

// Close removes the subscription and its disposer. Value keeps returning
// the last snapshot.
func (es *ExternalStore[T]) Close() {
	if es.closed {
		return
	}
	es.closed = true
	if es.unsubscribe != nil {
		es.unsubscribe()
	}
	if es.release != nil {
		es.release()
	}
}

// Closed reports whether the subscription has been removed.
func (es *ExternalStore[T]) Closed() bool {
	return es.closed
}

func (es *ExternalStore[T]) onChange() {
	if es.closed {
		return
	}
	next := es.snapshot()
	if es.equal(es.value, next) {
		return
	}
	es.value = next
	es.base.SetState(nil)
}
