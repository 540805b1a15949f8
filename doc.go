// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package plist provides a persistent list whose values are cheap,
// immutable views over a shared, append-only backing store.
//
// A [List] is a window [start, end) into a store. Many lists of one lineage
// alias the same store:
//
//   - [List.Head], [List.Tail], [List.Slice], [List.SliceN], [List.Take]
//     and [List.Skip] narrow the window in O(1) without copying or locking.
//   - [List.Append] writes through to the store in amortised O(1) when the
//     list ends at the store's tip. Lists already handed out never observe
//     the new elements, because they lie past every existing window.
//   - [List.Prepend] cannot write before index 0 of an append-only store,
//     so it always copies into a new store: O(n).
//
// # Backing Store
//
// The store is the only mutable state. It grows but never overwrites or
// removes a slot, guarded by a multi-reader/single-writer lock built on a
// weighted semaphore. Writers are exclusive and served in FIFO order.
// Element reads and the count share the reader side, so no reader ever sees
// an advanced count before its slots are written.
//
// Lock waits are unbounded by default. [WithLockTimeout] bounds them; an
// expired wait is fatal and panics with [*LockTimeoutError]. It is never
// retried.
//
// # Value Semantics
//
// Lists compare by content: [List.Equal] and [List.EqualSeq] walk the two
// sequences pairwise, and [List.Hash] combines element hashes in order.
// Which store or window backs a list does not matter, nor which constructor
// or derived operation built it: unless [WithHasher] is given, every store
// hashes elements with structeq.Default, which agrees with both == and
// reflect.DeepEqual. A custom equality without a hasher hashes by length.
// The helpers live in package structeq and work for any container that
// yields an iter.Seq.
//
// Constructors:
//
//   - [Of], [New], [FromSeq], [Empty]: comparable elements, compared with ==
//   - [NewFunc]: any element type, with an explicit equality
//
// # Enumeration
//
// [List.Enumerator] returns an [Enumerator] that holds a read lock until
// [Enumerator.Close]. [List.All], [List.Enumerate] and [List.Backward] wrap
// one in a range-over-func iterator that releases it when the loop ends,
// breaks or panics; [WithEnumerator] does the same for callback style.
//
// A goroutine holding an enumerator must not append to the same lineage or
// open a second reader on it inside the loop.
//
// # Derived Lists
//
// [Map], [MapFunc], [FlatMap], [Zip], [List.Filter] and [List.Reverse]
// build new, unshared stores. [Fold], [FoldRight] and [TryFold] reduce.
// All of them read a snapshot of the window, so the callbacks run with no
// lock held.
//
// # Errors
//
//   - [ErrOutOfRange]: returned by Slice and SliceN; bounds are never clamped
//   - [ErrEmpty]: panic value of MustHead and MustTail
//   - [ErrEnumeratorState]: panic value of Enumerator.Current
//   - [ErrLockTimeout]: matched by every [*LockTimeoutError]
//
// Prefer the comma-ok accessors ([List.Head], [List.Tail],
// [List.ElementAt]) to the Must forms.
//
// # Example
//
//	v0 := plist.Of(1, 2, 3)
//	v1 := v0.Append(4)       // shares v0's store
//	t, _ := v1.Tail()        // [2 3 4], same store
//	v2 := v0.Append(5)       // v0 is behind the tip: forks
//	fmt.Println(v0, v1, t, v2)
//	// [1 2 3] [1 2 3 4] [2 3 4] [1 2 3 5]
package plist
