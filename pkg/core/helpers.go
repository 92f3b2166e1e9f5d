package core

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// InheritedBase provides default CreateElement and Key implementations for
// inherited widgets. Embed it in your widget struct along with a Child field
// and implement [InheritedWidget.UpdateShouldNotify] and
// [InheritedWidget.ChildWidget]:
//
//	type UserScope struct {
//	    core.InheritedBase
//	    User  *User
//	    Child core.Widget
//	}
//
//	func (u UserScope) ChildWidget() core.Widget { return u.Child }
//
//	func (u UserScope) UpdateShouldNotify(old core.InheritedWidget) bool {
//	    return u.User != old.(UserScope).User
//	}
type InheritedBase struct{}

// CreateElement returns a new InheritedElement.
func (InheritedBase) CreateElement() Element { return NewInheritedElement() }

// Key returns nil (no key).
func (InheritedBase) Key() any { return nil }

// MultiChildBase provides default CreateElement and Key implementations for
// widgets with several children.
type MultiChildBase struct{}

// CreateElement returns a new MultiChildElement.
func (MultiChildBase) CreateElement() Element { return NewMultiChildElement() }

// Key returns nil (no key).
func (MultiChildBase) Key() any { return nil }
