// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// maxReaders bounds concurrent readers of one store. A writer acquires the
// full weight and so excludes readers and other writers.
const maxReaders = 1 << 30

// rwLock is a multi-reader/single-writer lock with a bounded wait.
// Waiters are served in FIFO order: once a writer is queued, later readers
// queue behind it, so writers never starve. As with sync.RWMutex, a holder
// of a read lock must not acquire the same lock again.
type rwLock struct {
	sem *semaphore.Weighted
}

func newRWLock() rwLock {
	return rwLock{sem: semaphore.NewWeighted(maxReaders)}
}

func lockWeight(mode LockMode) int64 {
	if mode == WriteLock {
		return maxReaders
	}
	return 1
}

// acquire blocks until the lock is held in mode. When s bounds the wait and
// it expires, the timeout is logged and counted, then acquire panics with
// *LockTimeoutError.
func (l rwLock) acquire(op string, mode LockMode, s *settings) {
	w := lockWeight(mode)
	if l.sem.TryAcquire(w) {
		return
	}

	ctx := context.Background()
	if s.lockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lockTimeout)
		defer cancel()
	}
	start := time.Now()
	err := l.sem.Acquire(ctx, w)
	waited := time.Since(start)
	if err != nil {
		s.metrics.observeLockTimeout(mode)
		s.logger.Error().
			Str("op", op).
			Stringer("mode", mode).
			Dur("timeout", s.lockTimeout).
			Dur("waited", waited).
			Msg("store lock wait timed out")
		panic(&LockTimeoutError{Op: op, Mode: mode, Timeout: s.lockTimeout})
	}
	s.metrics.observeLockWait(mode, waited)
}

func (l rwLock) release(mode LockMode) {
	l.sem.Release(lockWeight(mode))
}
