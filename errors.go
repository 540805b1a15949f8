// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOutOfRange is returned by [List.Slice] and [List.SliceN] when the
	// requested window leaves the receiver's window. Bounds are never clamped.
	ErrOutOfRange = errors.New("plist: index out of range")

	// ErrEmpty is the panic value of [List.MustHead] and [List.MustTail]
	// on an empty list.
	ErrEmpty = errors.New("plist: empty list")

	// ErrEnumeratorState is the panic value of [Enumerator.Current] before
	// the first MoveNext or after exhaustion.
	ErrEnumeratorState = errors.New("plist: enumerator not positioned on an element")

	// ErrLockTimeout matches every [*LockTimeoutError].
	ErrLockTimeout = errors.New("plist: lock wait timed out")
)

// LockMode distinguishes shared (read) from exclusive (write) acquisition.
type LockMode uint8

const (
	ReadLock LockMode = iota
	WriteLock
)

func (m LockMode) String() string {
	if m == WriteLock {
		return "write"
	}
	return "read"
}

// LockTimeoutError is the panic value raised when a store lock could not be
// acquired within the lineage's configured timeout. It is fatal: the
// operation is abandoned and never retried.
type LockTimeoutError struct {
	Op      string
	Mode    LockMode
	Timeout time.Duration
}

func (e *LockTimeoutError) Error() string {
	return fmt.Sprintf("plist: %s: %s lock not acquired within %s", e.Op, e.Mode, e.Timeout)
}

// Is reports whether target is ErrLockTimeout.
func (e *LockTimeoutError) Is(target error) bool {
	return target == ErrLockTimeout
}

// Unwrap returns context.DeadlineExceeded.
func (e *LockTimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

func outOfRange(op string, index, count, length int) error {
	return fmt.Errorf("%s(%d, %d) on list of %d: %w", op, index, count, length, ErrOutOfRange)
}
