package ownership

// MakeUnique heap-allocates a zero-valued T and wraps it in a Unique handle.
//
// Example:
//
//	u := ownership.MakeUnique[Widget]()
func MakeUnique[T any](opts ...Option[T]) *Unique[T] {
	return NewUnique(new(T), opts...)
}

// MakeUniqueOf heap-allocates a copy of value and wraps it in a Unique
// handle. Construct value with whatever constructor or literal the payload
// type provides.
//
// Declaring the handle over a base interface while passing a concrete value
// yields polymorphic ownership: finalization dispatches to the concrete
// type's Finalize through the interface.
//
// Example:
//
//	u := ownership.MakeUniqueOf[Shape](Circle{Radius: 2})
//	// u is *Unique[Shape]; destroying it runs Circle's Finalize
func MakeUniqueOf[T any](value T, opts ...Option[T]) *Unique[T] {
	return NewUnique(&value, opts...)
}

// MakeShared heap-allocates a zero-valued T and wraps it in a Shared handle
// with a fresh count of 1.
func MakeShared[T any](opts ...Option[T]) *Shared[T] {
	return NewShared(new(T), opts...)
}

// MakeSharedOf heap-allocates a copy of value and wraps it in a Shared handle
// with a fresh count of 1. As with MakeUniqueOf, instantiating over a base
// interface with a concrete value gives polymorphic finalization.
//
// Example:
//
//	a := ownership.MakeSharedOf(Widget{Size: 5})
//	b := a.Clone()
func MakeSharedOf[T any](value T, opts ...Option[T]) *Shared[T] {
	return NewShared(&value, opts...)
}
