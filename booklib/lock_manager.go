package booklib

import (
	"sync"
)

// operationType defines whether an operation is read or write.
// Read operations may proceed concurrently; write operations are
// exclusive.
type operationType int

const (
	readOperation operationType = iota
	writeOperation
)

// lockManager centralizes locking for the Library so every operation
// consistently takes the right kind of lock. It wraps a sync.RWMutex:
// multiple concurrent readers, exclusive writers.
type lockManager struct {
	mu *sync.RWMutex
}

func newLockManager() *lockManager {
	return &lockManager{
		mu: &sync.RWMutex{},
	}
}

// execute runs fn under the lock appropriate for the operation type.
// The lock is released via defer, so cleanup happens even if fn panics.
func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
