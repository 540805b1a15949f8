// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"slices"
	"sync"
)

// store is the backing buffer shared by every view of one lineage.
//
// Slots [0, len(items)) are never overwritten or removed; the store only
// grows. A view's end index captured at creation therefore stays valid
// forever, and a slice header read under the lock can be read after the
// lock is released: writers only touch slots at or beyond the current
// length, and a reallocation copies into a fresh array.
type store[T any] struct {
	lock  rwLock
	items []T

	settings
	hash  func(T) uint64
	enums sync.Pool
}

// newStore takes ownership of items.
func newStore[T any](items []T, cfg *config[T]) *store[T] {
	if cfg.capacity > 0 {
		items = slices.Grow(items, cfg.capacity)
	}
	s := &store[T]{
		lock:     newRWLock(),
		items:    items,
		settings: cfg.settings,
		hash:     cfg.hash,
	}
	s.enums.New = func() any { return new(Enumerator[T]) }
	return s
}

// get returns the element at physical index i.
// The caller guarantees 0 <= i < count().
func (s *store[T]) get(i int) T {
	s.lock.acquire("get", ReadLock, &s.settings)
	defer s.lock.release(ReadLock)
	return s.items[i]
}

// count returns the number of elements written so far.
func (s *store[T]) count() int {
	s.lock.acquire("count", ReadLock, &s.settings)
	defer s.lock.release(ReadLock)
	return len(s.items)
}

// add appends item and returns the new count.
func (s *store[T]) add(item T) int {
	s.lock.acquire("add", WriteLock, &s.settings)
	defer s.lock.release(WriteLock)
	return s.push(item)
}

// addRange appends items contiguously and returns the new count.
func (s *store[T]) addRange(items []T) int {
	s.lock.acquire("addRange", WriteLock, &s.settings)
	defer s.lock.release(WriteLock)
	return s.push(items...)
}

// appendAt writes items through when end is the current count, that is,
// when nothing has been written beyond the caller's view. It reports the
// new count and whether the write happened.
func (s *store[T]) appendAt(end int, items []T) (int, bool) {
	s.lock.acquire("append", WriteLock, &s.settings)
	defer s.lock.release(WriteLock)
	if len(s.items) != end {
		return len(s.items), false
	}
	return s.push(items...), true
}

// push is the single write path. The caller holds the write lock.
func (s *store[T]) push(items ...T) int {
	s.items = append(s.items, items...)
	return len(s.items)
}

// window returns the elements in [start, end) without copying. The result
// is capacity-clipped and must not be modified.
func (s *store[T]) window(start, end int) []T {
	s.lock.acquire("window", ReadLock, &s.settings)
	defer s.lock.release(ReadLock)
	return s.items[start:end:end]
}
