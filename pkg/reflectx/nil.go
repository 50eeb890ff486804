package reflectx

import "reflect"

// IsNil reports whether v is nil or holds a nil value of a nillable kind.
//
// A typed nil pointer stored in an interface compares unequal to nil, so
// callers that accept interface values use this to reject them:
//
//	var evt *Started
//	IsNil(evt) // true, while any(evt) == nil is false
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return val.IsNil()
	}
	return false
}
