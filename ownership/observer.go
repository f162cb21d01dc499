package ownership

// Observer receives payload lifecycle notifications. It is the seam used by
// the track package to account for live allocations, but any implementation
// can be attached with WithObserver.
//
// OnAlloc fires when a payload gains its first owning handle; OnFree fires
// after the payload has been finalized. For a given payload the two calls are
// paired exactly once regardless of how many handles shared it in between.
// The payload is passed as its raw pointer (*T boxed in any).
type Observer interface {
	OnAlloc(payload any)
	OnFree(payload any)
}
