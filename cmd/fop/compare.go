// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fast-option-pricer/fop/hwy"
	"github.com/fast-option-pricer/fop/hwy/contrib/workerpool"
	"github.com/fast-option-pricer/fop/internal/batchgen"
	"github.com/fast-option-pricer/fop/internal/config"
	"github.com/fast-option-pricer/fop/pricer"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Price a random batch on both engines and check they agree",
		Long: `compare generates a deterministic batch of valid options, prices it as
calls and as puts on the scalar engine and, concurrently, on the vector
engine sharded over a worker pool. It reports the largest difference per
output and the put-call parity gap, and fails when any difference
exceeds the tolerance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd)
		},
	}
	cmd.Flags().Int("n", 0, "Number of options (default from config)")
	cmd.Flags().Uint64("seed", 0, "Random seed (default from config)")
	cmd.Flags().Int("precision", 0, "Floating point precision: 32 or 64 (default from config)")
	cmd.Flags().Int("workers", 0, "Worker goroutines for the vector engine, 0 = GOMAXPROCS")
	cmd.Flags().Float64("tolerance", 0, "Maximum allowed absolute difference (default from config)")
	return cmd
}

type compareReport struct {
	Precision  pricer.Precision
	NumOptions int
	Engine     string
	Call       pricer.Agreement
	Put        pricer.Agreement
	ParityGap  float64
	ScalarTime time.Duration
	VectorTime time.Duration
}

func (a *app) runCompare(cmd *cobra.Command) error {
	c := a.cfg.Compare
	f := cmd.Flags()
	if f.Changed("n") {
		c.NumOptions, _ = f.GetInt("n")
	}
	if f.Changed("seed") {
		c.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("precision") {
		c.Precision, _ = f.GetInt("precision")
	}
	if f.Changed("workers") {
		c.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("tolerance") {
		c.Tolerance, _ = f.GetFloat64("tolerance")
	}
	a.cfg.Compare = c
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var (
		report compareReport
		err    error
	)
	if c.Precision == 32 {
		report, err = compareEngines[float32](cmd.Context(), c)
	} else {
		report, err = compareEngines[float64](cmd.Context(), c)
	}
	if err != nil {
		return err
	}

	a.log.Info("compared engines",
		"precision", report.Precision,
		"options", report.NumOptions,
		"engine", report.Engine,
		"scalar_time", report.ScalarTime,
		"vector_time", report.VectorTime,
		"max_diff", max(report.Call.Max(), report.Put.Max()),
	)
	printReport(cmd.OutOrStdout(), report)

	if !report.Call.Within(c.Tolerance) || !report.Put.Within(c.Tolerance) {
		return fmt.Errorf("engines disagree: max difference %g exceeds tolerance %g",
			max(report.Call.Max(), report.Put.Max()), c.Tolerance)
	}
	return nil
}

func compareEngines[T hwy.Floats](ctx context.Context, c config.CompareConfig) (compareReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	batch := batchgen.Generate[T](c.NumOptions, c.Seed, batchgen.DefaultRanges())

	pool := workerpool.New(c.Workers)
	defer pool.Close()

	scalar := pricer.NewScalarEngine[T]()
	vector := pricer.NewVectorEngine[T]()
	report := compareReport{
		Precision:  precisionOf[T](),
		NumOptions: c.NumOptions,
		Engine:     vector.Name(),
	}

	var priced [2][2]*pricer.OptionPricing[T] // [kind][scalar, vector]
	for i, kind := range []pricer.OptionType{pricer.Call, pricer.Put} {
		ref, got := newRecord(batch), newRecord(batch)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			scalar.Price(ref, kind)
			report.ScalarTime += time.Since(start)
			return nil
		})
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			pricer.PriceParallel(pool, vector, got, kind)
			report.VectorTime += time.Since(start)
			return nil
		})
		if err := g.Wait(); err != nil {
			return report, fmt.Errorf("pricing %ss: %w", kind, err)
		}
		priced[i] = [2]*pricer.OptionPricing[T]{ref, got}
	}

	report.Call = pricer.Compare(priced[0][0], priced[0][1])
	report.Put = pricer.Compare(priced[1][0], priced[1][1])
	report.ParityGap = pricer.ParityGap(priced[0][1], priced[1][1])
	return report, nil
}

func newRecord[T hwy.Floats](b batchgen.Batch[T]) *pricer.OptionPricing[T] {
	return pricer.NewOptionPricing(b.Underlyings, b.Strikes, b.RiskFreeRates, b.Volatilities, b.TimesToExpiry, b.DividendYields)
}

func printReport(w io.Writer, r compareReport) {
	fmt.Fprintf(w, "%d options, %s, scalar vs %s\n", r.NumOptions, r.Precision, r.Engine)
	fmt.Fprintf(w, "  call  %v\n", r.Call)
	fmt.Fprintf(w, "  put   %v\n", r.Put)
	fmt.Fprintf(w, "  put-call parity gap %.3g\n", r.ParityGap)
	fmt.Fprintf(w, "  scalar %v, vector %v\n", r.ScalarTime.Round(time.Microsecond), r.VectorTime.Round(time.Microsecond))
}
