// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"time"

	"github.com/rs/zerolog"

	"code.hybscloud.com/plist/structeq"
)

const (
	// DefaultLockTimeout is the default bound on a store lock wait.
	// Zero waits forever.
	DefaultLockTimeout time.Duration = 0
	// DefaultCapacity is the default extra capacity reserved by a new store.
	DefaultCapacity = 0
)

// settings are the element-type independent parts of a lineage's
// configuration. Lists derived through Map, Filter or FlatMap inherit them.
type settings struct {
	lockTimeout time.Duration
	logger      zerolog.Logger
	metrics     *Metrics
}

func defaultSettings() settings {
	return settings{
		lockTimeout: DefaultLockTimeout,
		logger:      zerolog.Nop(),
	}
}

type config[T any] struct {
	settings
	eq       func(a, b T) bool
	hash     func(T) uint64
	capacity int
}

// Option configures a new lineage. Options are applied once, when the
// backing store is created; every view derived from it shares the result.
type Option[T any] func(*config[T])

func newConfig[T any](base settings, opts []Option[T]) config[T] {
	cfg := config[T]{settings: base, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.eq != nil && cfg.hash == nil {
		cfg.hash = structeq.Zero[T]
	}
	return cfg
}

// WithEqual sets the element equality used by [List.Equal] and
// [List.EqualSeq]. A nil function is ignored. Without [WithHasher],
// [List.Hash] of such a lineage depends on the length only, since no
// element hash can be assumed to agree with eq.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(c *config[T]) {
		if eq != nil {
			c.eq = eq
		}
	}
}

// WithHasher sets the per-element hash used by [List.Hash]. It must agree
// with the element equality: equal elements hash equally.
// A nil function is ignored.
func WithHasher[T any](hash func(T) uint64) Option[T] {
	return func(c *config[T]) {
		if hash != nil {
			c.hash = hash
		}
	}
}

// WithLockTimeout bounds every store lock wait in the lineage. A wait that
// exceeds d panics with [*LockTimeoutError]. Zero or a negative value waits
// forever.
func WithLockTimeout[T any](d time.Duration) Option[T] {
	return func(c *config[T]) {
		if d < 0 {
			d = DefaultLockTimeout
		}
		c.lockTimeout = d
	}
}

// WithLogger sets the lineage logger. The default discards everything.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = logger
	}
}

// WithMetrics attaches collectors created by [NewMetrics].
func WithMetrics[T any](m *Metrics) Option[T] {
	return func(c *config[T]) {
		c.metrics = m
	}
}

// WithCapacity reserves room for n further elements in the new store, so
// the first n appends from the tip do not reallocate.
func WithCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n < 0 {
			n = DefaultCapacity
		}
		c.capacity = n
	}
}
