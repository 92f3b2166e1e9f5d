// Package widgets provides the small set of widgets used to compose store
// consumers into a tree.
//
// Widgets are plain structs built with struct literals:
//
//	widgets.Column{Children: []core.Widget{
//	    widgets.Text{Content: "Hello"},
//	    widgets.Builder{Fn: func(ctx core.BuildContext) core.Widget {
//	        return widgets.Text{Content: greeting(ctx)}
//	    }},
//	}}
//
// Text is a leaf and builds nothing. Column hosts several children in order.
// Builder defers to a function and is handy for reading inherited values
// without declaring a new widget type.
package widgets
