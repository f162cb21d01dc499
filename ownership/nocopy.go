package ownership

// noCopy flags handle types for the copylocks vet check. Copying a handle as
// a plain struct value would duplicate ownership without adjusting the
// reference count; Clone and Move are the sanctioned operations.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
