package widgets

import "github.com/go-drift/driftstore/pkg/core"

// Text displays a string.
type Text struct {
	core.StatelessBase
	// Content is the text string to display.
	Content string
	// ID optionally identifies the widget. It is returned by Key.
	ID any
}

// Key returns the widget's ID.
func (t Text) Key() any {
	return t.ID
}

// Build returns nil; Text is a leaf.
func (t Text) Build(ctx core.BuildContext) core.Widget {
	return nil
}
