package conshash

// rwMutex defines the interface for read-write mutex operations.
// A Ring holds a *sync.RWMutex when built WithLocking, and a mutexMock otherwise.
type rwMutex interface {
	Lock()
	Unlock()

	RLock()
	RUnlock()
}

// mutexMock is a no-op implementation of rwMutex used when locking is disabled.
// It provides zero-cost mutex operations for single-owner usage.
type mutexMock struct{}

// Ensure mutexMock implements rwMutex interface.
var _ rwMutex = (*mutexMock)(nil)

func (f mutexMock) Lock()    {}
func (f mutexMock) Unlock()  {}
func (f mutexMock) RLock()   {}
func (f mutexMock) RUnlock() {}
