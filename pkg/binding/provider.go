package binding

import (
	"reflect"

	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/store"
)

// Provider makes Store available to every descendant of Child. The nearest
// enclosing Provider of a given state type wins. A Provider with a nil
// Store hides outer providers of the same type.
type Provider[S any] struct {
	core.InheritedBase
	Store *store.Store[S]
	Child core.Widget
}

func (p Provider[S]) ChildWidget() core.Widget {
	return p.Child
}

// UpdateShouldNotify reports whether the provided store changed.
func (p Provider[S]) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(Provider[S])
	return !ok || old.Store != p.Store
}

// StoreOf returns the store of the nearest enclosing Provider[S] and
// registers ctx as its dependent. It panics with a KindConfig
// *errors.StoreError wrapping errors.ErrNoStore when there is none.
func StoreOf[S any](ctx core.BuildContext) *store.Store[S] {
	if s := MaybeStoreOf[S](ctx); s != nil {
		return s
	}
	panic(&errors.StoreError{
		Op:   "binding.StoreOf",
		Kind: errors.KindConfig,
		Err:  errors.ErrNoStore,
	})
}

// MaybeStoreOf is like StoreOf but returns nil when no store is in scope.
func MaybeStoreOf[S any](ctx core.BuildContext) *store.Store[S] {
	if ctx == nil {
		return nil
	}
	p, ok := ctx.DependOnInherited(reflect.TypeFor[Provider[S]]()).(Provider[S])
	if !ok {
		return nil
	}
	return p.Store
}
