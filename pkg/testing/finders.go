package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/widgets"
)

// Finder locates elements in the widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root core.Element) []core.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Element {
	if len(r.elements) == 0 {
		panic("Finder found no elements: " + r.describe())
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.describe()))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists reports whether at least one element matched.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Widget returns the widget of the first match.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

// State returns the state of the first match, or nil when the element is
// not stateful.
func (r FinderResult) State() core.State {
	if e, ok := r.First().(*core.StatefulElement); ok {
		return e.State()
	}
	return nil
}

// matcher is a Finder testing each element on its own.
type matcher struct {
	desc  string
	match func(core.Element) bool
}

func (m matcher) Evaluate(root core.Element) []core.Element {
	var out []core.Element
	walkTree(root, func(e core.Element) {
		if m.match(e) {
			out = append(out, e)
		}
	})
	return out
}

func (m matcher) Description() string {
	return m.desc
}

// ByType matches elements whose widget is a T. Generic widgets need their
// full instantiation, e.g. ByType[binding.Provider[appState]]().
func ByType[T core.Widget]() Finder {
	return matcher{
		desc: fmt.Sprintf("ByType(%s)", reflect.TypeFor[T]()),
		match: func(e core.Element) bool {
			_, ok := e.Widget().(T)
			return ok
		},
	}
}

// ByKey matches elements whose widget key equals key.
func ByKey(key any) Finder {
	return matcher{
		desc: fmt.Sprintf("ByKey(%v)", key),
		match: func(e core.Element) bool {
			return reflect.DeepEqual(e.Widget().Key(), key)
		},
	}
}

// ByText matches [widgets.Text] with exactly this content.
func ByText(text string) Finder {
	return matcher{
		desc: fmt.Sprintf("ByText(%q)", text),
		match: func(e core.Element) bool {
			t, ok := e.Widget().(widgets.Text)
			return ok && t.Content == text
		},
	}
}

// ByPredicate matches elements satisfying fn.
func ByPredicate(fn func(core.Element) bool) Finder {
	return matcher{desc: "ByPredicate(...)", match: fn}
}

type descendantFinder struct {
	of, matching Finder
}

func (f descendantFinder) Evaluate(root core.Element) []core.Element {
	var out []core.Element
	seen := make(map[core.Element]bool)
	for _, scope := range f.of.Evaluate(root) {
		scope.VisitChildren(func(child core.Element) bool {
			for _, e := range f.matching.Evaluate(child) {
				if !seen[e] {
					seen[e] = true
					out = append(out, e)
				}
			}
			return true
		})
	}
	return out
}

func (f descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches elements satisfying matching that sit strictly below
// an element satisfying of. Nested scopes report each match once.
func Descendant(of, matching Finder) Finder {
	return descendantFinder{of: of, matching: matching}
}

func walkTree(root core.Element, visit func(core.Element)) {
	visit(root)
	root.VisitChildren(func(child core.Element) bool {
		walkTree(child, visit)
		return true
	})
}
