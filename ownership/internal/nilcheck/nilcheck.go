// Package nilcheck detects typed-nil values hiding behind interfaces, so
// finalizer dispatch never invokes Finalize on a nil concrete receiver.
package nilcheck

import "reflect"

// Interface reports whether value is nil, including a non-nil interface
// wrapping a nil pointer, map, slice, channel, or function.
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
