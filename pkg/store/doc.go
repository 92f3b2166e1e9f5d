// Package store provides a minimal, synchronous state container.
//
// A Store holds one state value, a pure reducer computing the next state
// from the current state and an action, a descriptive name, and an ordered
// list of listeners notified after every change.
//
//	type counter struct{ Count int }
//
//	s := store.New(counter{}, func(c counter, a store.Action) counter {
//	    switch a.Type {
//	    case "INCREMENT":
//	        return counter{Count: c.Count + 1}
//	    }
//	    return c
//	})
//
//	unsubscribe := s.Subscribe(func() { fmt.Println(s.State().Count) })
//	s.Dispatch(store.Action{Type: "INCREMENT"}) // prints 1
//	unsubscribe()
//
// # Reserved Actions
//
// New dispatches [ActionInit] once through the reducer before returning, so
// reducers can special-case startup. Reducers must return the state
// unchanged for action types they do not recognize.
//
// [ActionRename] with a string "name" payload field renames the store and
// notifies listeners. It never reaches the reducer. A rename action without
// a well-formed name is dispatched like any other action.
//
// # Notification
//
// Dispatch is synchronous: the state is replaced, then every listener
// registered when the notification pass started is called in registration
// order before Dispatch returns. Listeners may dispatch again. A listener
// subscribed during a pass is first called on the next pass; a listener
// unsubscribed during a pass is skipped if it has not run yet.
//
// # Faults
//
// A panicking reducer propagates out of Dispatch and the state keeps its
// pre-dispatch value. TryDispatch converts the panic into a
// *errors.StoreError of kind KindTransition.
//
// # Equality
//
// Selections compare values with an [EqualFunc]. [Identical] is the default
// and compares maps, slices, pointers and funcs by reference. Use
// [ShallowEqual] or [DeepEqual] for structural comparison.
//
// A Store is not safe for concurrent use. Like widget state it belongs to
// the UI goroutine.
package store
