package pipeline

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultStripes = 64

// keyedLocks serializes work per key over a fixed set of mutexes.
// Distinct keys may share a stripe, which only costs parallelism.
type keyedLocks struct {
	stripes []sync.Mutex
}

func newKeyedLocks(n int) *keyedLocks {
	if n < 1 {
		n = 1
	}
	return &keyedLocks{stripes: make([]sync.Mutex, n)}
}

func (l *keyedLocks) lock(key string) func() {
	mu := &l.stripes[xxhash.Sum64String(key)%uint64(len(l.stripes))]
	mu.Lock()
	return mu.Unlock
}
