// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

// Enumerator pooling for the range-over-func iterators.
// Each store keeps its own pool, so the pool is typed without erasure.
// Pooled enumerators never escape All, Enumerate or Backward: the public
// Enumerator constructor allocates, because its result may be retained
// after Close.

// acquireEnumerator opens a pooled enumerator over l, whose store is s.
func (s *store[T]) acquireEnumerator(l List[T]) *Enumerator[T] {
	e := s.enums.Get().(*Enumerator[T])
	e.open(l)
	e.pooled = true
	return e
}

// releaseEnumerator closes e, zeroes it and returns it to the pool;
// for an unpooled enumerator it only closes.
func (s *store[T]) releaseEnumerator(e *Enumerator[T]) {
	e.Close()
	if !e.pooled {
		return
	}
	e.s = nil
	e.items = nil
	e.cursor = 0
	e.pooled = false
	s.enums.Put(e)
}
