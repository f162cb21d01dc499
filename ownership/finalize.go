package ownership

import "github.com/LerianStudio/lib-ownership/ownership/internal/nilcheck"

// Finalizer is implemented by payloads that carry teardown logic. When a
// handle destroys a payload and no explicit finalizer function was attached
// with WithFinalizer, the payload's own Finalize method runs instead.
//
// When the handle's type parameter is an interface, the lookup dispatches
// dynamically through the stored value, so a handle declared over a base
// interface still runs the concrete type's Finalize.
type Finalizer interface {
	Finalize()
}

// finalizePayload tears down a payload exactly once. Precedence: the explicit
// finalizer function, then a Finalize method on *T, then one on T. Typed-nil
// values are skipped so a Finalize call never lands on a nil receiver hidden
// behind an interface.
func finalizePayload[T any](data *T, fn func(*T)) {
	if data == nil {
		return
	}

	if fn != nil {
		fn(data)
		return
	}

	if f, ok := any(data).(Finalizer); ok {
		f.Finalize()
		return
	}

	if f, ok := any(*data).(Finalizer); ok && !nilcheck.Interface(*data) {
		f.Finalize()
	}
}
