package core

import "reflect"

// InheritedElement is the element that hosts an [InheritedWidget] and
// tracks the descendants depending on it.
//
// When a descendant calls [BuildContext.DependOnInherited], it registers as
// a dependent of this element. When the InheritedWidget is replaced and
// [InheritedWidget.UpdateShouldNotify] returns true, every registered
// dependent is notified and scheduled for rebuild.
type InheritedElement struct {
	elementBase
	child      Element
	dependents map[Element]struct{}
}

// NewInheritedElement creates an InheritedElement.
// The widget and build owner are set later by the framework during inflation.
func NewInheritedElement() *InheritedElement {
	element := &InheritedElement{
		dependents: make(map[Element]struct{}),
	}
	element.setSelf(element)
	return element
}

func (e *InheritedElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.RebuildIfNeeded()
}

func (e *InheritedElement) Update(newWidget Widget) {
	oldWidget := e.widget.(InheritedWidget)
	e.widget = newWidget
	if newWidget.(InheritedWidget).UpdateShouldNotify(oldWidget) {
		for dependent := range e.dependents {
			notifyDependent(dependent)
		}
	}
	e.MarkNeedsBuild()
}

func (e *InheritedElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.dependents = nil
}

func (e *InheritedElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	childWidget := e.widget.(InheritedWidget).ChildWidget()
	e.child = updateChild(e.child, childWidget, e, e.buildOwner)
}

func (e *InheritedElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// AddDependent registers an element as depending on this inherited widget.
func (e *InheritedElement) AddDependent(dependent Element) {
	if e.dependents == nil {
		e.dependents = make(map[Element]struct{})
	}
	e.dependents[dependent] = struct{}{}
}

// RemoveDependent unregisters an element as depending on this inherited widget.
func (e *InheritedElement) RemoveDependent(dependent Element) {
	delete(e.dependents, dependent)
}

// DependentCount returns the number of registered dependents.
func (e *InheritedElement) DependentCount() int {
	return len(e.dependents)
}

// notifyDependent triggers DidChangeDependencies on the dependent element.
func notifyDependent(element Element) {
	if stateful, ok := element.(*StatefulElement); ok {
		if stateful.state != nil && stateful.mounted {
			stateful.state.DidChangeDependencies()
		}
		stateful.MarkNeedsBuild()
		return
	}
	element.MarkNeedsBuild()
}

// dependOnInherited walks up the element tree to find the nearest
// InheritedElement hosting a widget of the requested type.
func dependOnInherited(element Element, inheritedType reflect.Type) any {
	var current Element
	if base, ok := element.(interface{ parentElement() Element }); ok {
		current = base.parentElement()
	}

	for current != nil {
		if inherited, ok := current.(*InheritedElement); ok {
			widgetType := reflect.TypeOf(inherited.widget)
			if widgetType == inheritedType || (widgetType.Kind() == reflect.Pointer && widgetType.Elem() == inheritedType) {
				inherited.AddDependent(element)
				return inherited.widget
			}
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}
