// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

// Slicing never copies: the result is a narrower window over the same
// store, built in O(1) without taking the lock.

// Slice returns the elements from index to the end.
// Returns an error wrapping ErrOutOfRange if index < 0 or index > Count().
func (l List[T]) Slice(index int) (List[T], error) {
	if index < 0 || index > l.Count() {
		return List[T]{}, outOfRange("Slice", index, l.Count()-index, l.Count())
	}
	l.start += index
	return l, nil
}

// SliceN returns count elements starting at index.
// Returns an error wrapping ErrOutOfRange if the range is not inside
// [0, Count()).
func (l List[T]) SliceN(index, count int) (List[T], error) {
	if index < 0 || count < 0 || index > l.Count()-count {
		return List[T]{}, outOfRange("SliceN", index, count, l.Count())
	}
	l.start += index
	l.end = l.start + count
	return l, nil
}

// Take returns the first n elements, or the whole list if it is shorter.
// A negative n yields the empty list.
func (l List[T]) Take(n int) List[T] {
	n = min(max(n, 0), l.Count())
	l.end = l.start + n
	return l
}

// Skip returns the list without its first n elements, or the empty list if
// it is shorter. A negative n yields the whole list.
func (l List[T]) Skip(n int) List[T] {
	n = min(max(n, 0), l.Count())
	l.start += n
	return l
}
