// Package ownership provides explicit ownership primitives for dynamically
// allocated payloads: an exclusive-ownership handle (Unique) and a
// reference-counted shared-ownership handle (Shared).
//
// Both handle kinds expose the same read-only base capabilities (Get, Value,
// Valid, Same, EqualValue) and differ only in their release policy. Unique is
// move-only: transferring a payload always empties the source handle, so at
// most one handle can reach a payload at any time. Shared maintains an
// external reference count: cloning increments it, destroying or reassigning
// decrements it, and the payload is finalized exactly once when the count
// drops to zero.
//
// Typical usage:
//
//	w := ownership.MakeSharedOf(Widget{Size: 5})
//	v := w.Clone()          // count is now 2
//	v.Destroy()             // count back to 1, payload still alive
//	w.Destroy()             // count 0, payload finalized exactly once
//
// Handles are not safe for concurrent use. A Shared family whose handles are
// touched from multiple goroutines requires external synchronization around
// every operation that mutates the count (Clone, CopyFrom, MoveFrom, Reset,
// Destroy); the count is a plain read-modify-write by design.
//
// Handles must not be copied as Go struct values; Clone and Move are the only
// sanctioned duplication and transfer operations. The types carry a vet
// marker so accidental copies are flagged by `go vet`.
package ownership
