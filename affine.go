// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"sync/atomic"
)

// affine is a one-shot token: take succeeds for exactly one caller until
// the token is re-armed.
//
// Enumerators guard their read lock with it. Close may run from a defer
// and again explicitly, possibly on another goroutine, and releasing the
// semaphore twice would hand out a phantom reader slot.
type affine struct {
	used atomic.Uintptr
}

// arm makes the token available again. The owner must not share the token
// while re-arming it.
func (a *affine) arm() {
	a.used.Store(0)
}

// take claims the token and reports whether this caller got it.
func (a *affine) take() bool {
	return a.used.Add(1) == 1
}

// spent reports whether the token has been taken.
func (a *affine) spent() bool {
	return a.used.Load() != 0
}
