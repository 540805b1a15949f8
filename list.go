// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"code.hybscloud.com/plist/structeq"
)

// List is an immutable view over the window [start, end) of a shared
// backing store.
//
// A List is a small value and may be copied and shared between goroutines
// freely. The zero List is empty and compares elements with
// reflect.DeepEqual.
type List[T any] struct {
	s     *store[T]
	start int
	end   int
	eq    func(a, b T) bool
}

func equalComparable[T comparable](a, b T) bool { return a == b }

func deepEqual[T any](a, b T) bool { return reflect.DeepEqual(a, b) }

// Of returns a list holding items, compared with ==.
func Of[T comparable](items ...T) List[T] {
	return New(items)
}

// New copies items into a new store and returns a view over all of them.
// Elements are compared with == unless [WithEqual] says otherwise.
func New[T comparable](items []T, opts ...Option[T]) List[T] {
	cfg := newConfig(defaultSettings(), opts)
	if cfg.eq == nil {
		cfg.eq = equalComparable[T]
	}
	return fromOwned(slices.Clone(items), &cfg)
}

// Empty returns an empty list with its own store, ready to grow by appends.
func Empty[T comparable](opts ...Option[T]) List[T] {
	return New[T](nil, opts...)
}

// FromSeq adds the elements of seq to a new store, one at a time.
func FromSeq[T comparable](seq iter.Seq[T], opts ...Option[T]) List[T] {
	cfg := newConfig(defaultSettings(), opts)
	if cfg.eq == nil {
		cfg.eq = equalComparable[T]
	}
	l := fromOwned[T](nil, &cfg)
	for v := range seq {
		l.end = l.s.add(v)
	}
	return l
}

// NewFunc is New for element types without ==. A nil eq falls back to
// reflect.DeepEqual. A non-nil eq without [WithHasher] makes [List.Hash]
// depend on the length only, as for [WithEqual].
func NewFunc[T any](eq func(a, b T) bool, items []T, opts ...Option[T]) List[T] {
	if eq != nil {
		opts = append([]Option[T]{WithEqual(eq)}, opts...)
	}
	cfg := newConfig(defaultSettings(), opts)
	if cfg.eq == nil {
		cfg.eq = deepEqual[T]
	}
	return fromOwned(slices.Clone(items), &cfg)
}

// fromOwned takes ownership of items. A nil hasher becomes
// structeq.Default, the one every default equality agrees with.
func fromOwned[T any](items []T, cfg *config[T]) List[T] {
	if cfg.hash == nil {
		cfg.hash = structeq.Default[T]
	}
	s := newStore(items, cfg)
	return List[T]{s: s, start: 0, end: len(items), eq: cfg.eq}
}

// derive builds a list over a fresh store that inherits the lineage
// settings of src.
func derive[S, T any](src *store[S], items []T, eq func(a, b T) bool, hash func(T) uint64) List[T] {
	cfg := config[T]{settings: defaultSettings(), eq: eq, hash: hash}
	if src != nil {
		cfg.settings = src.settings
	}
	return fromOwned(items, &cfg)
}

// fork is derive within one element type, keeping the view's equality.
func (l List[T]) fork(items []T) List[T] {
	var hash func(T) uint64
	if l.s != nil {
		hash = l.s.hash
	}
	return derive(l.s, items, l.equal(), hash)
}

func (l List[T]) equal() func(a, b T) bool {
	if l.eq == nil {
		return deepEqual[T]
	}
	return l.eq
}

func (l List[T]) hasher() func(T) uint64 {
	if l.s == nil {
		return structeq.Default[T]
	}
	return l.s.hash
}

// items returns the window without copying; callers must not modify it.
func (l List[T]) items() []T {
	if l.s == nil || l.start == l.end {
		return nil
	}
	return l.s.window(l.start, l.end)
}

// Count returns the number of elements in the list.
func (l List[T]) Count() int {
	return l.end - l.start
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.end == l.start
}

// ElementAt returns the i-th element and true, or zero and false when i is
// outside [0, Count()).
func (l List[T]) ElementAt(i int) (T, bool) {
	if i < 0 || i >= l.Count() {
		var zero T
		return zero, false
	}
	return l.s.get(l.start + i), true
}

// Head returns the first element and true, or zero and false if the list
// is empty.
func (l List[T]) Head() (T, bool) {
	return l.ElementAt(0)
}

// MustHead returns the first element.
// Panics with ErrEmpty if the list is empty.
func (l List[T]) MustHead() T {
	v, ok := l.Head()
	if !ok {
		panic(fmt.Errorf("MustHead: %w", ErrEmpty))
	}
	return v
}

// Tail returns the list without its first element and true, or the empty
// list and false if the list is empty. The result shares the store.
func (l List[T]) Tail() (List[T], bool) {
	if l.IsEmpty() {
		return l, false
	}
	l.start++
	return l, true
}

// MustTail returns the list without its first element.
// Panics with ErrEmpty if the list is empty.
func (l List[T]) MustTail() List[T] {
	t, ok := l.Tail()
	if !ok {
		panic(fmt.Errorf("MustTail: %w", ErrEmpty))
	}
	return t
}

// Last returns the last element and true, or zero and false if the list is
// empty.
func (l List[T]) Last() (T, bool) {
	return l.ElementAt(l.Count() - 1)
}

// Init returns the list without its last element and true, or the empty
// list and false if the list is empty. The result shares the store, and
// since its end is no longer the tip, appending to it forks.
func (l List[T]) Init() (List[T], bool) {
	if l.IsEmpty() {
		return l, false
	}
	l.end--
	return l, true
}

// ToSlice returns a copy of the elements.
func (l List[T]) ToSlice() []T {
	return slices.Clone(l.items())
}

// String formats the list as [e0 e1 ...].
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.items() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
