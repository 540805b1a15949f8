// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Fold reduces the list from the left.
func Fold[T, A any](l List[T], init A, f func(A, T) A) A {
	acc := init
	for _, v := range l.items() {
		acc = f(acc, v)
	}
	return acc
}

// FoldRight reduces the list from the right.
func FoldRight[T, A any](l List[T], init A, f func(T, A) A) A {
	items := l.items()
	acc := init
	for i := len(items) - 1; i >= 0; i-- {
		acc = f(items[i], acc)
	}
	return acc
}

// TryFold is Fold with a fallible step. It stops at the first error and
// returns the accumulator so far together with the error.
func TryFold[T, A any](l List[T], init A, f func(A, T) (A, error)) (A, error) {
	acc := init
	for _, v := range l.items() {
		next, err := f(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// Filter returns the elements that satisfy keep, in order, in a new store.
// keep is called exactly once per element.
func (l List[T]) Filter(keep func(T) bool) List[T] {
	items := l.items()
	marks := bitset.New(uint(len(items)))
	for i, v := range items {
		if keep(v) {
			marks.Set(uint(i))
		}
	}
	out := make([]T, 0, marks.Count())
	for i, ok := marks.NextSet(0); ok; i, ok = marks.NextSet(i + 1) {
		out = append(out, items[i])
	}
	return l.fork(out)
}

// Reverse returns the elements in reverse order in a new store.
func (l List[T]) Reverse() List[T] {
	out := slices.Clone(l.items())
	slices.Reverse(out)
	return l.fork(out)
}
