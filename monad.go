// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import "code.hybscloud.com/plist/structeq"

// List monad operations.
//
// Minimal definition: Pure (unit) and FlatMap (bind). Map is derived but
// kept to avoid allocating a singleton list per element.
//
// Every result lives in a new, unshared store that inherits the source
// lineage's lock timeout, logger and metrics. The functions run against a
// snapshot of the source window with no lock held, so they may freely read
// or grow the source lineage.

// Pure returns the single-element list [v].
func Pure[T comparable](v T) List[T] {
	return Of(v)
}

// FlatMap applies f to every element and concatenates the results.
func FlatMap[T, U comparable](l List[T], f func(T) List[U]) List[U] {
	var out []U
	for _, v := range l.items() {
		out = append(out, f(v).items()...)
	}
	return derive(l.s, out, equalComparable[U], nil)
}

// Map applies f to every element.
func Map[T, U comparable](l List[T], f func(T) U) List[U] {
	return derive(l.s, mapItems(l.items(), f), equalComparable[U], nil)
}

// MapFunc is Map for result types without ==. A nil eq falls back to
// reflect.DeepEqual; a non-nil eq makes Hash of the result depend on the
// length only, as for [WithEqual].
func MapFunc[T, U any](l List[T], f func(T) U, eq func(a, b U) bool) List[U] {
	var hash func(U) uint64
	if eq == nil {
		eq = deepEqual[U]
	} else {
		hash = structeq.Zero[U]
	}
	return derive(l.s, mapItems(l.items(), f), eq, hash)
}

func mapItems[T, U any](items []T, f func(T) U) []U {
	out := make([]U, len(items))
	for i, v := range items {
		out[i] = f(v)
	}
	return out
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip pairs the elements of a and b positionally, stopping at the shorter.
func Zip[A, B comparable](a List[A], b List[B]) List[Pair[A, B]] {
	xs, ys := a.items(), b.items()
	n := min(len(xs), len(ys))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = Pair[A, B]{Fst: xs[i], Snd: ys[i]}
	}
	return derive(a.s, out, equalComparable[Pair[A, B]], nil)
}
