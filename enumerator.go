// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"fmt"
	"iter"
)

// Enumerator is a cursor over the fixed window of one List.
//
// It holds a read lock on the store from creation until Close. The window's
// end is fixed when the list was created and slots below it are never
// rewritten, so iteration is stable while other goroutines append to the
// same store: their elements lie outside the window.
//
// While an Enumerator is open, the goroutine holding it must not append to
// the same lineage or take a second read lock on it (ElementAt, Head, or
// another Enumerator): a writer queued in between would wait on this
// enumerator forever. Use ToSlice first when the loop body needs that.
type Enumerator[T any] struct {
	s      *store[T]
	items  []T
	cursor int
	held   affine
	pooled bool
}

// Enumerator opens an enumerator positioned before the first element.
// The caller must call Close, typically with defer.
func (l List[T]) Enumerator() *Enumerator[T] {
	e := new(Enumerator[T])
	e.open(l)
	return e
}

func (e *Enumerator[T]) open(l List[T]) {
	e.s = l.s
	e.cursor = -1
	e.items = nil
	e.held.arm()
	if l.s == nil {
		e.held.take()
		return
	}
	l.s.lock.acquire("enumerate", ReadLock, &l.s.settings)
	e.items = l.s.items[l.start:l.end:l.end]
}

// MoveNext advances to the next element and reports whether there is one.
func (e *Enumerator[T]) MoveNext() bool {
	if e.cursor < len(e.items) {
		e.cursor++
	}
	return e.cursor < len(e.items)
}

// Current returns the element under the cursor.
// Panics with ErrEnumeratorState before the first MoveNext or after
// MoveNext has returned false.
func (e *Enumerator[T]) Current() T {
	v, ok := e.TryCurrent()
	if !ok {
		panic(fmt.Errorf("Current at position %d of %d: %w", e.cursor, len(e.items), ErrEnumeratorState))
	}
	return v
}

// TryCurrent returns the element under the cursor and true, or zero and
// false when the cursor is not on an element.
func (e *Enumerator[T]) TryCurrent() (T, bool) {
	if e.cursor < 0 || e.cursor >= len(e.items) {
		var zero T
		return zero, false
	}
	return e.items[e.cursor], true
}

// Index returns the cursor position relative to the list: -1 before the
// first element, Count() after the last.
func (e *Enumerator[T]) Index() int {
	return e.cursor
}

// Count returns the number of elements the enumerator walks.
func (e *Enumerator[T]) Count() int {
	return len(e.items)
}

// Reset rewinds the cursor to before the first element.
func (e *Enumerator[T]) Reset() {
	e.cursor = -1
}

// Close releases the read lock. Calls after the first are no-ops.
func (e *Enumerator[T]) Close() {
	if e.s == nil || e.held.spent() {
		return
	}
	if e.held.take() {
		e.s.lock.release(ReadLock)
	}
}

// All returns an iterator over the elements. The read lock is held for the
// duration of the loop and released when it ends, breaks or panics.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.IsEmpty() {
			return
		}
		e := l.s.acquireEnumerator(l)
		defer l.s.releaseEnumerator(e)
		for e.MoveNext() {
			if !yield(e.items[e.cursor]) {
				return
			}
		}
	}
}

// Enumerate is All with the logical index of each element.
func (l List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.IsEmpty() {
			return
		}
		e := l.s.acquireEnumerator(l)
		defer l.s.releaseEnumerator(e)
		for e.MoveNext() {
			if !yield(e.cursor, e.items[e.cursor]) {
				return
			}
		}
	}
}

// Backward iterates from the last element to the first.
func (l List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.IsEmpty() {
			return
		}
		e := l.s.acquireEnumerator(l)
		defer l.s.releaseEnumerator(e)
		for i := len(e.items) - 1; i >= 0; i-- {
			if !yield(e.items[i]) {
				return
			}
		}
	}
}
