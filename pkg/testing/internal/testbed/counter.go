// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/widgets"
)

// Source is a minimal observable integer.
type Source struct {
	value     int
	next      int
	listeners map[int]func()
}

// NewSource creates a source holding initial.
func NewSource(initial int) *Source {
	return &Source{value: initial, listeners: make(map[int]func())}
}

// Value returns the current value.
func (s *Source) Value() int { return s.value }

// Increment adds one and notifies listeners.
func (s *Source) Increment() {
	s.value++
	for _, fn := range s.listeners {
		fn()
	}
}

// Subscribe registers fn and returns its removal function.
func (s *Source) Subscribe(fn func()) func() {
	id := s.next
	s.next++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Listeners returns the number of active subscriptions.
func (s *Source) Listeners() int { return len(s.listeners) }

// Counter displays the value of Source.
type Counter struct {
	core.StatefulBase
	Source *Source
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count *core.ExternalStore[int]
}

func (s *counterState) InitState() {
	src := s.Element().Widget().(Counter).Source
	s.count = core.UseExternalStore(s, src.Subscribe, src.Value, func(a, b int) bool { return a == b })
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	return widgets.Column{Children: []core.Widget{
		widgets.Text{Content: strconv.Itoa(s.count.Value()), ID: "count"},
	}}
}
