// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command plist-stress grows many lineages from one shared list while other
// goroutines enumerate it, then verifies that no write was lost, duplicated
// or leaked into another view.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg         stressConfig
		logLevel    string
		dumpMetrics bool
	)
	cmd := &cobra.Command{
		Use:          "plist-stress",
		Short:        "Concurrent append/enumerate stress test for plist",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.writers < 1 || cfg.items < 0 || cfg.readers < 0 || cfg.baseSize < 0 {
				return fmt.Errorf("invalid sizes: writers=%d items=%d readers=%d base=%d",
					cfg.writers, cfg.items, cfg.readers, cfg.baseSize)
			}
			logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			report, err := runStress(cmd.Context(), cfg, logger, reg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok run=%s appends=%d reader_passes=%d elapsed=%s\n",
				report.RunID, report.Appends, report.ReaderPasses, report.Elapsed)
			if dumpMetrics {
				return writeMetrics(out, reg)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.writers, "writers", "w", 8, "goroutines appending to their own chain")
	flags.IntVarP(&cfg.items, "items", "n", 1000, "elements appended by each writer")
	flags.IntVarP(&cfg.readers, "readers", "r", 4, "goroutines enumerating the shared base")
	flags.IntVar(&cfg.baseSize, "base", 1000, "elements in the shared base list")
	flags.DurationVar(&cfg.lockTimeout, "lock-timeout", 5*time.Second, "bound on store lock waits (0 waits forever)")
	flags.StringVar(&logLevel, "log-level", "info", "zerolog level")
	flags.BoolVar(&dumpMetrics, "metrics", false, "print prometheus metrics after the run")
	return cmd
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
