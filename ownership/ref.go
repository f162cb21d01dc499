package ownership

import "reflect"

// ref stores the raw payload reference shared by both handle kinds. It holds
// no release policy; Unique and Shared embed it and layer their ownership
// rules on top.
type ref[T any] struct {
	data *T
}

// Get returns the raw payload pointer, or nil when the handle is empty.
// The returned pointer must not outlive the owning handle.
func (r *ref[T]) Get() *T {
	return r.data
}

// Valid reports whether the handle currently references a payload.
//
// Example:
//
//	if !handle.Valid() {
//	    return ErrNotLoaded
//	}
func (r *ref[T]) Valid() bool {
	return r.data != nil
}

// Value dereferences the payload. Callers must check Valid first: Value
// panics when the handle is empty. The guard is deliberately the caller's
// responsibility so the hot path carries no conditional overhead beyond the
// nil check itself.
func (r *ref[T]) Value() T {
	if r.data == nil {
		panic("ownership: dereference of empty handle")
	}

	return *r.data
}

// ValueOr dereferences the payload, returning def when the handle is empty.
//
// Example:
//
//	size := handle.ValueOr(defaultWidget).Size
func (r *ref[T]) ValueOr(def T) T {
	if r.data == nil {
		return def
	}

	return *r.data
}

// Same reports identity equality: whether this handle references exactly the
// payload at address p. Compare two handles with a.Same(b.Get()). Two handles
// can reference equal-valued but distinct payloads, in which case Same is
// false while EqualValue is true; the two relations are intentionally kept as
// separately named operations.
func (r *ref[T]) Same(p *T) bool {
	return r.data == p
}

// EqualValue reports value equality: it dereferences both sides and compares
// the payload contents with reflect.DeepEqual. It returns false when either
// side is nil, since there is no payload to compare.
func (r *ref[T]) EqualValue(p *T) bool {
	if r.data == nil || p == nil {
		return false
	}

	return reflect.DeepEqual(*r.data, *p)
}
