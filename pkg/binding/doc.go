// Package binding connects stores to the widget tree.
//
// A [Provider] makes a store ambient for its subtree. Stateful widgets read
// it from InitState through the hooks:
//
//	type counterLabel struct {
//	    core.StateBase
//	    count    *binding.Selection[int]
//	    dispatch func(store.Action)
//	}
//
//	func (s *counterLabel) InitState() {
//	    s.count = binding.UseSelector(s, func(st appState) int { return st.Count })
//	    s.dispatch = binding.UseDispatch[appState](s)
//	}
//
//	func (s *counterLabel) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: strconv.Itoa(s.count.Value())}
//	}
//
// A selection rebuilds its element only when the selected value changes
// according to its comparator, which defaults to [store.Identical].
// [UseState] rebuilds on every store notification, including renames.
//
// Reading a store with no Provider in scope panics with a configuration
// error matching [errors.ErrNoStore]. During a build the panic is caught by
// the element tree and reported as a build error.
//
// [Create] builds a store bound to a [Hook] for code that does not need
// scoping; no lookup happens on that path.
package binding
