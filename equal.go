// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"iter"
	"slices"

	"code.hybscloud.com/plist/structeq"
)

// Equal reports whether other has the same count and pairwise-equal
// elements under the receiver's equality. Which stores or windows back the
// two lists does not matter, and eq is consulted even when both are the
// same view, so a list of NaN is not equal to itself.
func (l List[T]) Equal(other List[T]) bool {
	if l.Count() != other.Count() {
		return false
	}
	return structeq.EqualSlices(l.items(), other.items(), l.equal())
}

// EqualSeq reports whether seq yields exactly the elements of the list, in
// order, under the receiver's equality.
func (l List[T]) EqualSeq(seq iter.Seq[T]) bool {
	return structeq.Equal(slices.Values(l.items()), seq, l.equal())
}

// Hash returns an order-sensitive hash of the elements. Lists under the
// default equalities hash alike whenever they are Equal, however they were
// built. A lineage with a custom equality hashes by length unless
// [WithHasher] supplies a hash that agrees with it.
func (l List[T]) Hash() uint64 {
	return structeq.Hash(slices.Values(l.items()), l.hasher())
}
