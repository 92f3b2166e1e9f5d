package store

import "reflect"

func funcID(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
