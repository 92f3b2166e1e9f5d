// Package core provides the widget and element tree that hosts driftstore
// bindings.
//
// This package defines the foundational types for building reactive user
// interfaces: Widget, Element, State, and BuildContext. Widgets describe what
// the UI should look like; elements are their instantiation at a position in
// the tree, and the BuildOwner rebuilds elements marked dirty.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: strconv.Itoa(s.count)}
//	}
//
// SetState schedules a rebuild of the owning element.
//
// # Inherited Widgets
//
// An InheritedWidget makes a value reachable by every descendant. Descendants
// call BuildContext.DependOnInherited to find the nearest one of a given type
// and register for DidChangeDependencies when it is replaced.
//
// # External Stores
//
// UseExternalStore subscribes a state to a value living outside the tree and
// rebuilds only when a freshly computed snapshot differs from the previous one:
//
//	func (s *myState) InitState() {
//	    s.count = core.UseExternalStore(s, subscribe, snapshot, equal)
//	}
//
// Call it once in InitState, not in Build. The subscription is closed when the
// state is disposed.
package core
