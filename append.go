// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"iter"
	"slices"
)

// Append returns the list followed by items. The receiver is unchanged.
//
// When the receiver ends at the tip of its store the items are written
// through under the store's write lock and the result shares the store;
// views already handed out do not see them because the new slots lie past
// their end. Otherwise (some other view has already appended past the
// receiver's end) the receiver's elements and items are copied into a new
// store.
func (l List[T]) Append(items ...T) List[T] {
	if len(items) == 0 {
		return l
	}
	return l.appendItems(items)
}

// AppendSeq is Append for a sequence. seq is drained before any lock is
// taken, so it may itself read from this list's lineage.
func (l List[T]) AppendSeq(seq iter.Seq[T]) List[T] {
	return l.Append(slices.Collect(seq)...)
}

// AppendList returns the list followed by the elements of other.
func (l List[T]) AppendList(other List[T]) List[T] {
	return l.Append(other.items()...)
}

func (l List[T]) appendItems(items []T) List[T] {
	if l.s == nil {
		return l.fork(slices.Clone(items))
	}
	if end, ok := l.s.appendAt(l.end, items); ok {
		l.s.metrics.observeAppend(appendWriteThrough)
		l.end = end
		return l
	}

	window := l.items()
	l.s.metrics.observeAppend(appendFork)
	l.s.metrics.observeCopy(len(window))
	l.s.logger.Debug().
		Str("op", "append").
		Int("copied", len(window)).
		Msg("view is behind the store tip, forking")
	return l.forkWith(window, items)
}

// forkWith copies head into a new store sized for head and tail, then adds
// tail through the store's write path.
func (l List[T]) forkWith(head, tail []T) List[T] {
	buf := make([]T, len(head), len(head)+len(tail))
	copy(buf, head)
	f := l.fork(buf)
	f.end = f.s.addRange(tail)
	return f
}

// Prepend returns items followed by the list. The store only grows at its
// end, so Prepend always copies into a new store: O(Count()+len(items)).
func (l List[T]) Prepend(items ...T) List[T] {
	if len(items) == 0 {
		return l
	}
	window := l.items()
	if l.s != nil {
		n := len(items) + len(window)
		l.s.metrics.observePrepend()
		l.s.metrics.observeCopy(n)
		l.s.logger.Debug().
			Str("op", "prepend").
			Int("copied", n).
			Msg("prepend allocated a new store")
	}
	return l.forkWith(items, window)
}

// PrependSeq is Prepend for a sequence.
func (l List[T]) PrependSeq(seq iter.Seq[T]) List[T] {
	return l.Prepend(slices.Collect(seq)...)
}
