package script

import (
	"fmt"
	"maps"

	"github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/store"
)

// Action types understood by MapReducer.
const (
	ActionSet       = "SET"
	ActionUnset     = "UNSET"
	ActionIncrement = "INCREMENT"
	ActionDecrement = "DECREMENT"
	ActionReset     = "RESET"
)

// MapReducer returns a reducer over map state.
//
//   - SET merges the payload into the state.
//   - UNSET deletes the key named by the field payload entry.
//   - INCREMENT and DECREMENT adjust the numeric key named by field by the
//     optional by entry, default 1. A missing key counts as 0.
//   - RESET restores a copy of initial.
//
// Other types return the state unchanged. A non-numeric target panics with
// a KindScript error.
func MapReducer(initial map[string]any) store.Reducer[map[string]any] {
	return func(state map[string]any, action store.Action) map[string]any {
		switch action.Type {
		case ActionSet:
			next := maps.Clone(state)
			if next == nil {
				next = map[string]any{}
			}
			maps.Copy(next, action.Payload)
			return next
		case ActionUnset:
			field, ok := action.String("field")
			if !ok {
				return state
			}
			if _, exists := state[field]; !exists {
				return state
			}
			next := maps.Clone(state)
			delete(next, field)
			return next
		case ActionIncrement, ActionDecrement:
			return adjust(state, action)
		case ActionReset:
			return maps.Clone(initial)
		}
		return state
	}
}

func adjust(state map[string]any, action store.Action) map[string]any {
	field, ok := action.String("field")
	if !ok {
		return state
	}
	by := 1.0
	if raw, ok := action.Field("by"); ok {
		n, ok := toFloat(raw)
		if !ok {
			panic(reducerError(action.Type, fmt.Errorf("by must be numeric, got %T", raw)))
		}
		by = n
	}
	if action.Type == ActionDecrement {
		by = -by
	}

	current, exists := state[field]
	if !exists {
		current = 0
	}
	next := maps.Clone(state)
	if next == nil {
		next = map[string]any{}
	}
	switch v := current.(type) {
	case int:
		if by == float64(int(by)) {
			next[field] = v + int(by)
			return next
		}
		next[field] = float64(v) + by
	default:
		n, ok := toFloat(v)
		if !ok {
			panic(reducerError(action.Type, fmt.Errorf("field %q is not numeric (%T)", field, current)))
		}
		next[field] = n + by
	}
	return next
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func reducerError(actionType string, err error) error {
	return &errors.StoreError{
		Op:   "script.MapReducer(" + actionType + ")",
		Kind: errors.KindScript,
		Err:  err,
	}
}
