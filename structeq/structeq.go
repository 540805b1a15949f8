// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package structeq provides content-based equality and order-sensitive
// hashing over sequences, independent of how the sequences are stored.
//
// Any container that exposes an [iter.Seq] can use it: two containers are
// structurally equal iff they yield the same number of pairwise-equal
// elements, and [Hash] of equal sequences is equal whenever the per-element
// hash agrees with the element equality.
package structeq

import (
	"encoding/binary"
	"hash/maphash"
	"iter"
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Equal reports whether a and b yield the same number of elements and
// every pair is equal under eq. Iteration stops at the first difference.
func Equal[T any](a, b iter.Seq[T], eq func(x, y T) bool) bool {
	next, stop := iter.Pull(b)
	defer stop()
	for x := range a {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	_, more := next()
	return !more
}

// EqualSlices is Equal for slices, without the pull iterator.
func EqualSlices[T any](a, b []T, eq func(x, y T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Hash combines the element hashes of seq in order.
func Hash[T any](seq iter.Seq[T], hash func(T) uint64) uint64 {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	n := uint64(0)
	for v := range seq {
		binary.LittleEndian.PutUint64(buf[:], hash(v))
		_, _ = d.Write(buf[:])
		n++
	}
	binary.LittleEndian.PutUint64(buf[:], n)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// Combine is Hash over already computed hashes.
func Combine(hashes ...uint64) uint64 {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	for _, h := range hashes {
		binary.LittleEndian.PutUint64(buf[:], h)
		_, _ = d.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(hashes)))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

var seed = maphash.MakeSeed()

// Comparable hashes v consistently with ==. The seed is fixed per process,
// so hashes must not be persisted.
func Comparable[T comparable](v T) uint64 {
	return maphash.Comparable(seed, v)
}

// Structural hashes v by walking its structure. Values hashstructure cannot
// walk (functions, channels) hash to zero.
func Structural[T any](v T) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}

// Default hashes v consistently with both == and reflect.DeepEqual, so it
// serves any element type whatever its static type parameter.
//
// Values of plain data types (booleans, numbers, strings, and arrays or
// structs built only from them) go through [Comparable] on the boxed value;
// for those types == and DeepEqual agree, and 0 and -0 hash alike.
// Everything else is hashed by [Structural].
func Default[T any](v T) uint64 {
	x := any(v)
	if t := reflect.TypeOf(x); t == nil || plain(t) {
		return Comparable(x)
	}
	return Structural(x)
}

var plainTypes sync.Map // reflect.Type -> bool

func plain(t reflect.Type) bool {
	if v, ok := plainTypes.Load(t); ok {
		return v.(bool)
	}
	p := plainKind(t)
	plainTypes.Store(t, p)
	return p
}

func plainKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return plainKind(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plainKind(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// Zero ignores v. A list hashed with it hashes by length alone, which is
// consistent with any element equality.
func Zero[T any](T) uint64 {
	return 0
}
