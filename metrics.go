// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	appendWriteThrough = "write_through"
	appendFork         = "fork"
)

// Metrics holds the prometheus collectors a lineage reports to.
// A nil *Metrics reports nothing.
//
// One Metrics value may be shared by any number of lineages.
type Metrics struct {
	appends      *prometheus.CounterVec
	prepends     prometheus.Counter
	copied       prometheus.Counter
	lockWait     *prometheus.HistogramVec
	lockTimeouts *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		appends: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plist",
			Name:      "appends_total",
			Help:      "Append calls by path (write_through to the shared store, or fork to a new store)",
		}, []string{"path"}),
		prepends: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plist",
			Name:      "prepends_total",
			Help:      "Prepend calls (each allocates a new store)",
		}),
		copied: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plist",
			Name:      "elements_copied_total",
			Help:      "Elements copied into new stores by prepend and fork",
		}),
		lockWait: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "plist",
			Name:      "lock_wait_seconds",
			Help:      "Time spent waiting for a contended store lock",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"mode"}),
		lockTimeouts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plist",
			Name:      "lock_timeouts_total",
			Help:      "Store lock waits that exceeded the lineage timeout",
		}, []string{"mode"}),
	}
}

func (m *Metrics) observeAppend(path string) {
	if m == nil {
		return
	}
	m.appends.WithLabelValues(path).Inc()
}

func (m *Metrics) observePrepend() {
	if m == nil {
		return
	}
	m.prepends.Inc()
}

func (m *Metrics) observeCopy(n int) {
	if m == nil || n == 0 {
		return
	}
	m.copied.Add(float64(n))
}

func (m *Metrics) observeLockWait(mode LockMode, d time.Duration) {
	if m == nil {
		return
	}
	m.lockWait.WithLabelValues(mode.String()).Observe(d.Seconds())
}

func (m *Metrics) observeLockTimeout(mode LockMode) {
	if m == nil {
		return
	}
	m.lockTimeouts.WithLabelValues(mode.String()).Inc()
}
