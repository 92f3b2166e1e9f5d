package store

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// EqualFunc reports whether two selected values should be treated as equal.
type EqualFunc[T any] func(a, b T) bool

// Identical reports whether a and b are the same value. Maps, slices,
// pointers, channels and funcs are compared by reference; structs and arrays
// member by member under the same rule; everything else with ==.
//
// Two distinct maps with equal contents are not identical.
func Identical[T any](a, b T) bool {
	return identical(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

// ShallowEqual compares one level below the top: map entries, slice and
// array elements, struct fields, or the pointee of a pointer, each with
// Identical.
func ShallowEqual[T any](a, b T) bool {
	x, y := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
	if identical(x, y) {
		return true
	}
	x, y = unwrapInterface(x), unwrapInterface(y)
	if !x.IsValid() || !y.IsValid() || x.Type() != y.Type() {
		return false
	}
	if x.Kind() == reflect.Pointer {
		if x.IsNil() || y.IsNil() {
			return false
		}
		x, y = x.Elem(), y.Elem()
	}

	switch x.Kind() {
	case reflect.Map:
		if x.IsNil() != y.IsNil() || x.Len() != y.Len() {
			return false
		}
		iter := x.MapRange()
		for iter.Next() {
			other := y.MapIndex(iter.Key())
			if !other.IsValid() || !identical(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.Len() {
			if !identical(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	default:
		return identical(x, y)
	}
}

// DeepEqual compares a and b structurally, including unexported fields.
func DeepEqual[T any](a, b T) bool {
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// Never reports every pair as different. Selections using it rebuild on
// every notification.
func Never[T any](T, T) bool {
	return false
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func identical(x, y reflect.Value) bool {
	x, y = unwrapInterface(x), unwrapInterface(y)
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	case reflect.Slice:
		return x.Pointer() == y.Pointer() && x.Len() == y.Len()
	case reflect.Struct:
		for i := range x.NumField() {
			if !identical(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range x.Len() {
			if !identical(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	default:
		return x.Equal(y)
	}
}
