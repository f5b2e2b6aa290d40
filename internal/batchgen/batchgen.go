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

// Package batchgen generates deterministic batches of option inputs for
// tests, benchmarks and the CLI.
package batchgen

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/fast-option-pricer/fop/hwy"
)

// TradingDaysPerYear converts expiry in trading days to years.
const TradingDaysPerYear = 252

// Ranges bounds every generated input. Spot, strike and volatility are drawn
// uniformly from [Min, Max); expiry is a whole number of trading days in
// [MinDays, MaxDays].
type Ranges struct {
	SpotMin, SpotMax     float64
	StrikeMin, StrikeMax float64
	RateMin, RateMax     float64
	VolMin, VolMax       float64
	YieldMin, YieldMax   float64

	ExpiryMinDays, ExpiryMaxDays int
}

// DefaultRanges keeps every option comfortably inside the valid domain, far
// from the zero-volatility and zero-expiry limits.
func DefaultRanges() Ranges {
	return Ranges{
		SpotMin: 50, SpotMax: 150,
		StrikeMin: 50, StrikeMax: 150,
		RateMin: 0, RateMax: 0.10,
		VolMin: 0.10, VolMax: 0.40,
		YieldMin: 0, YieldMax: 0.10,
		ExpiryMinDays: 13, ExpiryMaxDays: TradingDaysPerYear,
	}
}

// Batch is one set of index-aligned option inputs.
type Batch[T hwy.Floats] struct {
	Underlyings    []T
	Strikes        []T
	RiskFreeRates  []T
	Volatilities   []T
	TimesToExpiry  []T
	DividendYields []T
}

// Len returns the number of options in b.
func (b Batch[T]) Len() int {
	return len(b.Underlyings)
}

// Generate draws n options from rg. The same seed always yields the same
// batch, for either precision.
func Generate[T hwy.Floats](n int, seed uint64, rg Ranges) Batch[T] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	uniform := func(from, to float64) func(int) T {
		return func(int) T { return T(from + (to-from)*rng.Float64()) }
	}
	days := func(int) T {
		d := rg.ExpiryMinDays + rng.IntN(max(1, rg.ExpiryMaxDays-rg.ExpiryMinDays+1))
		return T(d) / TradingDaysPerYear
	}
	return Batch[T]{
		Underlyings:    lo.Times(n, uniform(rg.SpotMin, rg.SpotMax)),
		Strikes:        lo.Times(n, uniform(rg.StrikeMin, rg.StrikeMax)),
		RiskFreeRates:  lo.Times(n, uniform(rg.RateMin, rg.RateMax)),
		Volatilities:   lo.Times(n, uniform(rg.VolMin, rg.VolMax)),
		TimesToExpiry:  lo.Times(n, days),
		DividendYields: lo.Times(n, uniform(rg.YieldMin, rg.YieldMax)),
	}
}

// Scenario returns four near-expiry out-of-the-money options: spot 110,
// strike 120, rate 2%, dividend yield 5%, 25 trading days, volatility
// 15%, 16%, 17% and 18%.
func Scenario[T hwy.Floats]() Batch[T] {
	vols := []T{0.15, 0.16, 0.17, 0.18}
	return Batch[T]{
		Underlyings:    lo.Map(vols, func(T, int) T { return 110 }),
		Strikes:        lo.Map(vols, func(T, int) T { return 120 }),
		RiskFreeRates:  lo.Map(vols, func(T, int) T { return 0.02 }),
		Volatilities:   vols,
		TimesToExpiry:  lo.Map(vols, func(T, int) T { return T(25) / TradingDaysPerYear }),
		DividendYields: lo.Map(vols, func(T, int) T { return 0.05 }),
	}
}

// Convert returns b at another precision.
func Convert[To, From hwy.Floats](b Batch[From]) Batch[To] {
	conv := func(xs []From) []To {
		return lo.Map(xs, func(x From, _ int) To { return To(x) })
	}
	return Batch[To]{
		Underlyings:    conv(b.Underlyings),
		Strikes:        conv(b.Strikes),
		RiskFreeRates:  conv(b.RiskFreeRates),
		Volatilities:   conv(b.Volatilities),
		TimesToExpiry:  conv(b.TimesToExpiry),
		DividendYields: conv(b.DividendYields),
	}
}
