package ownership

// Unique is an exclusive-ownership handle: at most one Unique can reach a
// payload at any time. Transfer always goes through Move or MoveFrom, which
// empty the source; there is deliberately no Clone. The payload is finalized
// exactly once, on Destroy or when it is replaced by Reset or MoveFrom.
//
// The zero value is an empty handle with no finalizer attached; prefer
// NewUnique or the factories so options are applied.
type Unique[T any] struct {
	noCopy noCopy

	ref[T]

	finalize func(*T)
	observer Observer
}

// NewUnique returns a handle taking exclusive ownership of data immediately.
// data may be nil, yielding an empty handle that still carries the options
// for payloads adopted later through Reset.
func NewUnique[T any](data *T, opts ...Option[T]) *Unique[T] {
	cfg := newConfig(opts)

	unique := &Unique[T]{
		finalize: cfg.finalize,
		observer: cfg.observer,
	}
	unique.data = data

	if data != nil && unique.observer != nil {
		unique.observer.OnAlloc(data)
	}

	return unique
}

// Reset replaces the owned payload with data, finalizing the previous payload
// first. Assigning the address already owned is a no-op, so a payload is
// never freed and then adopted again within the same call. data may be nil,
// which simply empties the handle.
func (u *Unique[T]) Reset(data *T) {
	if u.data == data {
		return
	}

	old := u.data
	u.data = data

	u.free(old)

	if data != nil && u.observer != nil {
		u.observer.OnAlloc(data)
	}
}

// Move transfers ownership into a freshly constructed handle and empties the
// receiver. No allocation of payload or count occurs.
//
// Example:
//
//	u2 := u1.Move()
//	// u1.Valid() == false, u2 owns the payload
func (u *Unique[T]) Move() *Unique[T] {
	moved := &Unique[T]{
		finalize: u.finalize,
		observer: u.observer,
	}
	moved.data = u.data
	u.data = nil

	return moved
}

// MoveFrom adopts src's payload, finalizer, and observer, then empties src.
// The receiver's previous payload, if any, is finalized. Moving a handle into
// itself, or between two handles that somehow reference the same payload, is
// a no-op.
func (u *Unique[T]) MoveFrom(src *Unique[T]) {
	if src == nil || src == u || u.data == src.data {
		return
	}

	old := u.data
	oldFinalize := u.finalize
	oldObserver := u.observer

	u.data = src.data
	u.finalize = src.finalize
	u.observer = src.observer
	src.data = nil

	if old == nil {
		return
	}

	// The replaced payload still belongs to the receiver's previous
	// configuration, so it is torn down with the finalizer it was adopted
	// under, not the one arriving with src.
	finalizePayload(old, oldFinalize)

	if oldObserver != nil {
		oldObserver.OnFree(old)
	}
}

// Release returns the raw payload pointer and empties the handle without
// finalizing. Responsibility for the payload's teardown transfers to the
// caller; a caller that drops the returned pointer leaks the payload.
func (u *Unique[T]) Release() *T {
	data := u.data
	u.data = nil

	return data
}

// Destroy finalizes the owned payload and empties the handle. It is a no-op
// on an empty handle, so calling it repeatedly is safe and a moved-from
// handle never frees anything.
func (u *Unique[T]) Destroy() {
	data := u.data
	u.data = nil

	u.free(data)
}

func (u *Unique[T]) free(data *T) {
	if data == nil {
		return
	}

	finalizePayload(data, u.finalize)

	if u.observer != nil {
		u.observer.OnFree(data)
	}
}
