package core

import "testing"

// fakeSource is a minimal external value with change callbacks.
type fakeSource struct {
	value     int
	listeners map[int]func()
	next      int
}

func newFakeSource(v int) *fakeSource {
	return &fakeSource{value: v, listeners: make(map[int]func())}
}

func (f *fakeSource) subscribe(fn func()) func() {
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() { delete(f.listeners, id) }
}

func (f *fakeSource) set(v int) {
	f.value = v
	for _, fn := range f.listeners {
		fn()
	}
}

func intEqual(a, b int) bool { return a == b }

func TestUseExternalStore_RebuildsOnChange(t *testing.T) {
	owner := NewBuildOwner()
	src := newFakeSource(1)
	var es *ExternalStore[int]
	var seen []int
	state := &testState{
		initFn: func(s *testState) {
			es = UseExternalStore(s, src.subscribe, func() int { return src.value }, intEqual)
		},
		buildFn: func(BuildContext) Widget {
			seen = append(seen, es.Value())
			return nil
		},
	}
	MountRoot(testStatefulWidget{createStateFn: func() State { return state }}, owner)

	src.set(1)
	owner.FlushBuild()
	if state.builds != 1 {
		t.Errorf("expected no rebuild for equal snapshot, got %d builds", state.builds)
	}

	src.set(2)
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("expected 2 builds, got %d", state.builds)
	}
	if seen[len(seen)-1] != 2 {
		t.Errorf("expected last value 2, got %d", seen[len(seen)-1])
	}
}

func TestUseExternalStore_ValueReadsLiveSnapshot(t *testing.T) {
	base := &StateBase{}
	value := 1
	es := UseExternalStore(base, func(func()) func() { return func() {} }, func() int { return value }, intEqual)

	value = 5
	if got := es.Value(); got != 5 {
		t.Errorf("Value() = %d, want 5", got)
	}
}

func TestUseExternalStore_NilEqualAlwaysRebuilds(t *testing.T) {
	owner := NewBuildOwner()
	src := newFakeSource(1)
	state := &testState{initFn: func(s *testState) {
		UseExternalStore(s, src.subscribe, func() int { return src.value }, nil)
	}}
	MountRoot(testStatefulWidget{createStateFn: func() State { return state }}, owner)

	src.set(1)
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("expected rebuild on every notification, got %d builds", state.builds)
	}
}

func TestUseExternalStore_DisposeUnsubscribes(t *testing.T) {
	base := &StateBase{}
	src := newFakeSource(0)
	es := UseExternalStore(base, src.subscribe, func() int { return src.value }, intEqual)

	if len(src.listeners) != 1 {
		t.Fatalf("expected 1 listener, got %d", len(src.listeners))
	}

	base.Dispose()

	if len(src.listeners) != 0 {
		t.Errorf("expected 0 listeners after dispose, got %d", len(src.listeners))
	}
	if !es.Closed() {
		t.Error("expected store to be closed")
	}
	es.Close()
}

func TestUseExternalStore_ClosedValueIsFrozen(t *testing.T) {
	base := &StateBase{}
	value := 3
	es := UseExternalStore(base, func(func()) func() { return func() {} }, func() int { return value }, intEqual)
	es.Close()

	value = 4
	if got := es.Value(); got != 3 {
		t.Errorf("Value() after Close = %d, want 3", got)
	}
}

func TestStateBase_OnDisposeAfterDisposeRunsImmediately(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	ran := false
	base.OnDispose(func() { ran = true })
	if !ran {
		t.Error("expected cleanup to run immediately after dispose")
	}
}

func TestStateBase_UnregisterDisposer(t *testing.T) {
	base := &StateBase{}
	ran := false
	unregister := base.OnDispose(func() { ran = true })
	unregister()
	base.Dispose()

	if ran {
		t.Error("expected unregistered disposer not to run")
	}
}

func TestStateBase_SetStateAfterDisposeIsNoop(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	called := false
	base.SetState(func() { called = true })
	if called {
		t.Error("expected SetState to be a no-op after dispose")
	}
}

func TestUseExternalStore_CloseReleasesDisposer(t *testing.T) {
	base := &StateBase{}
	src := newFakeSource(0)
	snapshot := func() int { return src.value }

	for range 5 {
		UseExternalStore(base, src.subscribe, snapshot, intEqual).Close()
	}
	if n := len(base.disposers); n != 0 {
		t.Errorf("expected closed stores to drop their disposers, got %d", n)
	}

	UseExternalStore(base, src.subscribe, snapshot, intEqual)
	if n := len(base.disposers); n != 1 {
		t.Errorf("expected 1 disposer for the open store, got %d", n)
	}
	base.Dispose()
	if n := len(src.listeners); n != 0 {
		t.Errorf("expected dispose to unsubscribe, got %d listeners", n)
	}
}

func TestStateBase_UnregisterKeepsOtherDisposers(t *testing.T) {
	base := &StateBase{}
	var order []int
	base.OnDispose(func() { order = append(order, 1) })
	unregister := base.OnDispose(func() { order = append(order, 2) })
	base.OnDispose(func() { order = append(order, 3) })

	unregister()
	unregister()
	base.Dispose()

	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("order = %v, want [3 1]", order)
	}
}
