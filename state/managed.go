package state

// Managed ties a handle to the action that releases it. The release action
// runs at most once.
type Managed[T any] struct {
	raw      T
	release  func(T)
	released bool
}

// Manage wraps raw so that Release calls release(raw).
func Manage[T any](raw T, release func(T)) *Managed[T] {
	return &Managed[T]{raw: raw, release: release}
}

// Get returns the wrapped handle, or the zero value for a nil Managed.
func (m *Managed[T]) Get() T {
	if m == nil {
		var zero T
		return zero
	}
	return m.raw
}

// Release runs the release action if it has not run yet.
func (m *Managed[T]) Release() {
	if m == nil || m.released {
		return
	}
	m.released = true
	if m.release != nil {
		m.release(m.raw)
	}
}

type releaser interface {
	Release()
}

// releaseStack releases its entries in reverse push order.
type releaseStack []releaser

func (s *releaseStack) push(r releaser) {
	*s = append(*s, r)
}

func (s *releaseStack) releaseAll() {
	for i := len(*s) - 1; i >= 0; i-- {
		(*s)[i].Release()
	}
	*s = nil
}
