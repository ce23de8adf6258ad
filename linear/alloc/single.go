package alloc

// SingleThreadToken is the unsafety acknowledgement required to expose
// a non-thread-safe allocator as Shared with no lock. Tokens are only
// valid when minted by UnsafeAssumeSingleThreaded.
type SingleThreadToken struct {
	acknowledged bool
}

// UnsafeAssumeSingleThreaded mints the acknowledgement that the process
// is single-threaded, or that external discipline serializes every call
// into the wrapped allocator. Nothing checks this at runtime; a wrong
// acknowledgement is a data race on the inner allocator's state.
func UnsafeAssumeSingleThreaded() SingleThreadToken {
	return SingleThreadToken{acknowledged: true}
}

// SingleThreaded forwards every operation to the inner allocator with
// zero overhead. The single-thread precondition is the caller's, by
// construction-time contract.
type SingleThreaded struct {
	inner Allocator
}

// AssumeSingleThreaded wraps inner. The token must come from
// UnsafeAssumeSingleThreaded; a zero token is rejected.
func AssumeSingleThreaded(inner Allocator, tok SingleThreadToken) (*SingleThreaded, error) {
	if !tok.acknowledged {
		return nil, ErrNotAcknowledged
	}
	return &SingleThreaded{inner: inner}, nil
}

// Alloc forwards to the inner allocator.
func (st *SingleThreaded) Alloc(size, align uint32) (uint32, error) {
	return st.inner.Alloc(size, align)
}

// Free forwards to the inner allocator.
func (st *SingleThreaded) Free(ptr, size, align uint32) error {
	return st.inner.Free(ptr, size, align)
}

// Realloc forwards to the inner allocator.
func (st *SingleThreaded) Realloc(ptr, oldSize, newSize, align uint32) (uint32, error) {
	return st.inner.Realloc(ptr, oldSize, newSize, align)
}

// Granted by the construction-time acknowledgement, not by a lock.
func (st *SingleThreaded) threadSafe() {}

var _ Shared = (*SingleThreaded)(nil)
