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
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fast-option-pricer/fop/hwy"
	"github.com/fast-option-pricer/fop/internal/batchgen"
	"github.com/fast-option-pricer/fop/pricer"
)

type priceParams struct {
	spot, strike, rate, vol, expiry, div float64
	kind                                 pricer.OptionType
	engine                               string
	places                               int32
}

func newPriceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price one option and print its Greeks",
		Example: `  fop price --spot 110 --strike 120 --rate 0.02 --vol 0.15 --div 0.05 --days 25
  fop price --type put --precision 32 --engine scalar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrice(cmd)
		},
	}
	cmd.Flags().Float64("spot", 100, "Underlying spot price")
	cmd.Flags().Float64("strike", 100, "Strike price")
	cmd.Flags().Float64("rate", 0.02, "Risk-free rate (continuous, annual)")
	cmd.Flags().Float64("vol", 0.2, "Volatility (annual)")
	cmd.Flags().Float64("expiry", 1, "Time to expiry in years")
	cmd.Flags().Int("days", 0, "Time to expiry in trading days (overrides --expiry)")
	cmd.Flags().Float64("div", 0, "Dividend yield (continuous, annual)")
	cmd.Flags().String("type", "call", "Option type: call or put")
	cmd.Flags().String("precision", "64", "Floating point precision: 32 or 64")
	cmd.Flags().String("engine", "vector", "Engine: scalar or vector")
	cmd.Flags().Int32("places", 6, "Decimal places in the output")
	return cmd
}

func (a *app) runPrice(cmd *cobra.Command) error {
	f := cmd.Flags()
	var p priceParams
	p.spot, _ = f.GetFloat64("spot")
	p.strike, _ = f.GetFloat64("strike")
	p.rate, _ = f.GetFloat64("rate")
	p.vol, _ = f.GetFloat64("vol")
	p.expiry, _ = f.GetFloat64("expiry")
	p.div, _ = f.GetFloat64("div")
	p.engine, _ = f.GetString("engine")
	p.places, _ = f.GetInt32("places")
	if days, _ := f.GetInt("days"); days > 0 {
		p.expiry = float64(days) / batchgen.TradingDaysPerYear
	}

	typeName, _ := f.GetString("type")
	kind, err := pricer.ParseOptionType(typeName)
	if err != nil {
		return err
	}
	p.kind = kind

	precName, _ := f.GetString("precision")
	prec, err := pricer.ParsePrecision(precName)
	if err != nil {
		return err
	}

	switch prec {
	case pricer.Float32:
		return priceOne[float32](a, cmd.OutOrStdout(), p)
	default:
		return priceOne[float64](a, cmd.OutOrStdout(), p)
	}
}

func priceOne[T hwy.Floats](a *app, w io.Writer, p priceParams) error {
	op := pricer.NewOptionPricing(
		[]T{T(p.spot)}, []T{T(p.strike)}, []T{T(p.rate)},
		[]T{T(p.vol)}, []T{T(p.expiry)}, []T{T(p.div)},
	)
	if err := op.Validate(); err != nil {
		return fmt.Errorf("invalid option: %w", err)
	}

	engine, err := newEngine[T](p.engine)
	if err != nil {
		return err
	}
	engine.Price(op, p.kind)
	a.log.Debug("priced option", "engine", engine.Name(), "type", p.kind, "spot", p.spot, "strike", p.strike)

	rows := []struct {
		name  string
		value T
	}{
		{"price", op.Prices[0]},
		{"delta", op.Deltas[0]},
		{"gamma", op.Gammas[0]},
		{"vega", op.Vegas[0]},
		{"rho", op.Rhos[0]},
	}
	fmt.Fprintf(w, "%s via %s (%s)\n", p.kind, engine.Name(), precisionOf[T]())
	for _, r := range rows {
		fmt.Fprintf(w, "  %-6s %s\n", r.name, decimal.NewFromFloat(float64(r.value)).Round(p.places).String())
	}
	return nil
}

func newEngine[T hwy.Floats](name string) (pricer.Engine[T], error) {
	switch strings.ToLower(name) {
	case "scalar":
		return pricer.NewScalarEngine[T](), nil
	case "vector":
		return pricer.NewVectorEngine[T](), nil
	}
	return nil, fmt.Errorf("unknown engine %q (want scalar or vector)", name)
}

func precisionOf[T hwy.Floats]() pricer.Precision {
	if hwy.Is32Bit[T]() {
		return pricer.Float32
	}
	return pricer.Float64
}
