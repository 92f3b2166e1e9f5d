package core

import "reflect"

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	Key() any
}

// StatelessWidget builds its child purely from its configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates a State that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable data of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// InheritedWidget makes data available to all descendants.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must be told about the
	// replacement of oldWidget by the receiver.
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// MultiChildWidget lays out several children in order.
type MultiChildWidget interface {
	Widget
	ChildWidgets() []Widget
}

// BuildContext gives a widget access to its position in the tree.
type BuildContext interface {
	Widget() Widget
	// FindAncestor returns the nearest ancestor matching predicate.
	FindAncestor(predicate func(Element) bool) Element
	// DependOnInherited returns the nearest inherited widget of the given
	// type and registers the calling element as its dependent. It returns
	// nil when no such ancestor exists.
	DependOnInherited(inheritedType reflect.Type) any
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	Depth() int
	VisitChildren(visitor func(Element) bool)
}

// Disposable is implemented by resources released with their state.
type Disposable interface {
	Dispose()
}

// MountRoot inflates widget as the root of a new tree owned by owner.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	element.Mount(nil, nil)
	return element
}
