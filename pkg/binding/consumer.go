package binding

import (
	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/store"
)

// Consumer builds its child from a value selected out of the ambient
// Provider[S], without declaring a state type.
//
//	binding.Consumer[appState, int]{
//	    Select:  func(s appState) int { return s.Count },
//	    Builder: func(ctx core.BuildContext, n int) core.Widget {
//	        return widgets.Text{Content: strconv.Itoa(n)}
//	    },
//	}
type Consumer[S, T any] struct {
	core.StatefulBase
	Select  func(S) T
	Equal   store.EqualFunc[T]
	Builder func(ctx core.BuildContext, value T) core.Widget
}

func (c Consumer[S, T]) CreateState() core.State {
	return &consumerState[S, T]{}
}

type consumerState[S, T any] struct {
	core.StateBase
	selection *Selection[T]
}

func (s *consumerState[S, T]) InitState() {
	w := s.Element().Widget().(Consumer[S, T])
	s.selection = UseSelector(s, w.Select, w.Equal)
}

func (s *consumerState[S, T]) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(Consumer[S, T])
	if w.Builder == nil {
		return nil
	}
	return w.Builder(ctx, s.selection.Value())
}
