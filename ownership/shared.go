package ownership

// Shared is a reference-counted shared-ownership handle. Every handle in a
// family references the same payload and the same separately allocated count:
// Clone and CopyFrom increment it, Destroy and reassignment away decrement
// it, and whichever handle drops the count to zero finalizes the payload and
// the count exactly once. No handle in a family is distinguished as "the
// owner"; deallocation is a property of the aggregate.
//
// The count is allocated lazily: an empty handle carries no count at all, and
// Count reports 0 for it.
//
// Count mutations are plain read-modify-writes. Sharing a family across
// goroutines without external synchronization is a correctness bug; ports to
// concurrent use must guard every count mutation.
type Shared[T any] struct {
	noCopy noCopy

	ref[T]

	refs     *int
	finalize func(*T)
	observer Observer
}

// NewShared returns a handle owning data with a fresh count of 1. data may be
// nil, yielding an empty handle (no count is allocated) that still carries
// the options for payloads adopted later through Reset.
func NewShared[T any](data *T, opts ...Option[T]) *Shared[T] {
	cfg := newConfig(opts)

	shared := &Shared[T]{
		finalize: cfg.finalize,
		observer: cfg.observer,
	}
	shared.adopt(data)

	return shared
}

// Clone returns a new handle sharing the payload and count, incrementing the
// count by 1. Cloning an empty handle yields an empty handle.
//
// Example:
//
//	b := a.Clone()
//	// a.Count() == 2 && b.Count() == 2
func (s *Shared[T]) Clone() *Shared[T] {
	clone := &Shared[T]{
		finalize: s.finalize,
		observer: s.observer,
	}

	if s.data != nil {
		clone.data = s.data
		clone.refs = s.refs
		*clone.refs++
	}

	return clone
}

// CopyFrom makes the receiver share src's payload and count, incrementing the
// count by 1. If the two handles already reference the same payload address
// the call is a no-op; the guard compares payloads rather than handle
// identity, so an alias created earlier by Clone never triggers a
// free-then-adopt of its own payload. Otherwise the receiver's current
// ownership is released first, under the usual last-reference rule.
func (s *Shared[T]) CopyFrom(src *Shared[T]) {
	if src == nil || src == s || s.data == src.data {
		return
	}

	s.Destroy()

	s.finalize = src.finalize
	s.observer = src.observer

	if src.data != nil {
		s.data = src.data
		s.refs = src.refs
		*s.refs++
	}
}

// Move transfers ownership into a freshly constructed handle without touching
// the count, then empties the receiver. This is the only adoption with no
// matching count mutation: the number of live references is unchanged, so the
// transient increment/decrement pair is skipped.
func (s *Shared[T]) Move() *Shared[T] {
	moved := &Shared[T]{
		finalize: s.finalize,
		observer: s.observer,
	}
	moved.data = s.data
	moved.refs = s.refs
	s.data = nil
	s.refs = nil

	return moved
}

// MoveFrom adopts src's payload and count without incrementing, then empties
// src. The receiver's current ownership is released first. Moving a handle
// into itself or into an alias of the same payload is a no-op.
func (s *Shared[T]) MoveFrom(src *Shared[T]) {
	if src == nil || src == s || s.data == src.data {
		return
	}

	s.Destroy()

	s.data = src.data
	s.refs = src.refs
	s.finalize = src.finalize
	s.observer = src.observer
	src.data = nil
	src.refs = nil
}

// Reset replaces the owned payload with data under a fresh count of 1,
// releasing the current ownership first. Assigning the payload address
// already owned is a no-op. data may be nil, which simply empties the handle.
func (s *Shared[T]) Reset(data *T) {
	if s.data == data {
		return
	}

	s.Destroy()
	s.adopt(data)
}

// Destroy releases this handle's participation in the family: the count is
// decremented, and if it reaches zero the payload and the count are freed
// exactly once. Either way the handle becomes empty and no longer
// participates. Destroy is a no-op on an empty handle, so repeated calls and
// moved-from handles never decrement twice.
func (s *Shared[T]) Destroy() {
	if s.data == nil {
		return
	}

	data := s.data
	refs := s.refs
	s.data = nil
	s.refs = nil

	*refs--
	if *refs > 0 {
		return
	}

	finalizePayload(data, s.finalize)

	if s.observer != nil {
		s.observer.OnFree(data)
	}
}

// Count returns the number of handles currently sharing the payload, or 0
// when the handle is empty. The count is never negative.
func (s *Shared[T]) Count() int {
	if s.refs == nil {
		return 0
	}

	return *s.refs
}

func (s *Shared[T]) adopt(data *T) {
	if data == nil {
		return
	}

	refs := 1
	s.data = data
	s.refs = &refs

	if s.observer != nil {
		s.observer.OnAlloc(data)
	}
}
