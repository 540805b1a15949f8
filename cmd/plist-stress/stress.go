// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/plist"
)

// item tags every appended element with its writer and sequence number so
// lost, duplicated or reordered writes are detectable. Base elements carry
// writer -1.
type item struct {
	Writer int
	Seq    int
}

type stressConfig struct {
	writers     int
	items       int
	readers     int
	baseSize    int
	lockTimeout time.Duration
}

type stressReport struct {
	RunID        string
	Elapsed      time.Duration
	Appends      int
	ReaderPasses int64
}

var errVerify = errors.New("verification failed")

// guard turns a fatal store panic into an error so the tool can report it
// and exit non-zero.
func guard(f func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				var lte *plist.LockTimeoutError
				if e, ok := r.(error); ok && errors.As(e, &lte) {
					err = lte
					return
				}
				panic(r)
			}
		}()
		return f()
	}
}

func runStress(ctx context.Context, cfg stressConfig, logger zerolog.Logger, reg prometheus.Registerer) (stressReport, error) {
	report := stressReport{RunID: uuid.NewString()}
	logger = logger.With().Str("run", report.RunID).Logger()

	seed := make([]item, cfg.baseSize)
	for i := range seed {
		seed[i] = item{Writer: -1, Seq: i}
	}
	base := plist.New(seed,
		plist.WithLockTimeout[item](cfg.lockTimeout),
		plist.WithLogger[item](logger),
		plist.WithMetrics[item](plist.NewMetrics(reg, "stress")),
	)

	logger.Info().
		Int("writers", cfg.writers).
		Int("items", cfg.items).
		Int("readers", cfg.readers).
		Int("base", cfg.baseSize).
		Msg("stress run starting")
	start := time.Now()

	chains := make([]plist.List[item], cfg.writers)
	var writersLeft atomic.Int32
	writersLeft.Store(int32(cfg.writers))
	var passes atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.writers {
		g.Go(guard(func() error {
			defer writersLeft.Add(-1)
			tip := base
			for i := range cfg.items {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				tip = tip.Append(item{Writer: w, Seq: i})
			}
			chains[w] = tip
			return nil
		}))
	}
	for r := range cfg.readers {
		g.Go(guard(func() error {
			for writersLeft.Load() > 0 && ctx.Err() == nil {
				n := 0
				for i, v := range base.Enumerate() {
					if v != seed[i] {
						return fmt.Errorf("reader %d: element %d is %+v: %w", r, i, v, errVerify)
					}
					n++
				}
				if n != cfg.baseSize {
					return fmt.Errorf("reader %d: enumerated %d of %d: %w", r, n, cfg.baseSize, errVerify)
				}
				passes.Add(1)
			}
			return nil
		}))
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("stress run aborted")
		return report, err
	}

	for w, chain := range chains {
		if err := verifyChain(w, chain, seed, cfg.items); err != nil {
			logger.Error().Err(err).Int("writer", w).Msg("chain verification failed")
			return report, err
		}
		report.Appends += chain.Count() - cfg.baseSize
	}
	report.Elapsed = time.Since(start)
	report.ReaderPasses = passes.Load()

	logger.Info().
		Dur("elapsed", report.Elapsed).
		Int("appends", report.Appends).
		Int64("readerPasses", report.ReaderPasses).
		Msg("stress run verified")
	return report, nil
}

// verifyChain checks that chain is the base followed by exactly the items of
// writer w, in order.
func verifyChain(w int, chain plist.List[item], seed []item, items int) error {
	if want := len(seed) + items; chain.Count() != want {
		return fmt.Errorf("writer %d: chain has %d elements, want %d: %w", w, chain.Count(), want, errVerify)
	}
	if !chain.Take(len(seed)).EqualSeq(slices.Values(seed)) {
		return fmt.Errorf("writer %d: base prefix changed: %w", w, errVerify)
	}
	for i, v := range chain.Skip(len(seed)).Enumerate() {
		if v != (item{Writer: w, Seq: i}) {
			return fmt.Errorf("writer %d: position %d holds %+v: %w", w, i, v, errVerify)
		}
	}
	return nil
}
