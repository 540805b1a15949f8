// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

// Bracket acquires a resource, passes it to use and releases it.
// Release runs exactly once whether use returns normally, returns an error
// or panics; a panic from use propagates after release.
func Bracket[R, A any](acquire func() R, release func(R), use func(R) (A, error)) (A, error) {
	r := acquire()
	defer release(r)
	return use(r)
}

// WithEnumerator runs use with an open enumerator over l and closes it
// afterwards.
func WithEnumerator[T, A any](l List[T], use func(*Enumerator[T]) (A, error)) (A, error) {
	return Bracket(l.Enumerator, (*Enumerator[T]).Close, use)
}
