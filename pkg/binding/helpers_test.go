package binding

import (
	"maps"
	"strconv"

	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/store"
	"github.com/go-drift/driftstore/pkg/widgets"
)

type appState struct {
	Count int
	Label string
	Tags  map[string]bool
}

func appReducer(s appState, a store.Action) appState {
	switch a.Type {
	case "INCREMENT":
		s.Count++
	case "LABEL":
		s.Label, _ = a.String("label")
	case "TAG":
		tag, _ := a.String("tag")
		tags := maps.Clone(s.Tags)
		if tags == nil {
			tags = make(map[string]bool)
		}
		tags[tag] = true
		s.Tags = tags
	}
	return s
}

func newAppStore(opts ...store.Option) *store.Store[appState] {
	return store.New(appState{}, appReducer, opts...)
}

func increment() store.Action { return store.Action{Type: "INCREMENT"} }

func label(l string) store.Action { return store.Action{Type: "LABEL"}.With("label", l) }

// probe renders a selection as text and counts its builds.
type probe[T any] struct {
	core.StatefulBase
	use    func(core.StateHolder) *Selection[T]
	text   func(T) string
	builds *int
}

func (p probe[T]) CreateState() core.State {
	return &probeState[T]{}
}

type probeState[T any] struct {
	core.StateBase
	selection *Selection[T]
}

func (s *probeState[T]) widget() probe[T] {
	return s.Element().Widget().(probe[T])
}

func (s *probeState[T]) InitState() {
	s.selection = s.widget().use(s)
}

func (s *probeState[T]) Build(core.BuildContext) core.Widget {
	w := s.widget()
	if w.builds != nil {
		*w.builds++
	}
	return widgets.Text{Content: w.text(s.selection.Value())}
}

func countProbe(builds *int) probe[int] {
	return probe[int]{
		use: func(s core.StateHolder) *Selection[int] {
			return UseSelector(s, func(a appState) int { return a.Count })
		},
		text:   strconv.Itoa,
		builds: builds,
	}
}

func labelProbe() probe[string] {
	return probe[string]{
		use: func(s core.StateHolder) *Selection[string] {
			return UseSelector(s, func(a appState) string { return a.Label })
		},
		text: func(l string) string { return l },
	}
}

// switcher provides whichever store current points at.
type switcher struct {
	core.StatefulBase
	current **store.Store[appState]
	child   core.Widget
}

func (w switcher) CreateState() core.State {
	return &switcherState{}
}

type switcherState struct {
	core.StateBase
}

func (s *switcherState) Build(core.BuildContext) core.Widget {
	w := s.Element().Widget().(switcher)
	return Provider[appState]{Store: *w.current, Child: w.child}
}

// recoverError runs fn and returns the error it panicked with.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

type captureHandler struct {
	errs   []*errors.StoreError
	panics []*errors.PanicError
	build  []*errors.BuildError
}

func (h *captureHandler) HandleError(err *errors.StoreError) {
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func (h *captureHandler) HandleBuildError(err *errors.BuildError) {
	h.build = append(h.build, err)
}
