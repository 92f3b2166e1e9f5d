// Package platform connects driftstore to the host's UI thread.
package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on
// the UI thread and returns the previously registered one. The host calls it
// once during initialization; the widget tester registers its own queue.
func RegisterDispatch(fn func(callback func())) func(callback func()) {
	dispatchMu.Lock()
	prev := dispatchFunc
	dispatchFunc = fn
	dispatchMu.Unlock()
	return prev
}

// Dispatch schedules a callback to run on the UI thread. It is safe to call
// from any goroutine. Returns true if the callback was successfully
// scheduled, false if no dispatch function is registered or the callback is
// nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
