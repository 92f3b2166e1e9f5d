package widgets

import "github.com/go-drift/driftstore/pkg/core"

// Column hosts its children in order.
type Column struct {
	core.MultiChildBase
	Children []core.Widget
}

// ColumnOf creates a Column from its children.
func ColumnOf(children ...core.Widget) Column {
	return Column{Children: children}
}

// ChildWidgets returns the children.
func (c Column) ChildWidgets() []core.Widget {
	return c.Children
}
