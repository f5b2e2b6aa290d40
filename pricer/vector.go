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

package pricer

import (
	"fmt"

	"github.com/fast-option-pricer/fop/hwy"
	hmath "github.com/fast-option-pricer/fop/hwy/contrib/math"
)

// VectorEngine prices Lanes() options per iteration with hwy vector ops.
//
// A batch whose size is not a multiple of Lanes() finishes with one masked
// block: inactive lanes are loaded as 1.0 so every intermediate stays
// finite, and they are never stored. No element outside [0, NumOptions) is
// read or written.
type VectorEngine[T hwy.Floats] struct {
	lanes int
	name  string
}

// NewVectorEngine returns a vector engine using the widest lane count the
// CPU supports for T.
func NewVectorEngine[T hwy.Floats]() *VectorEngine[T] {
	return NewVectorEngineFor[T](hwy.ScalableTag[T]{})
}

// NewVectorEngineFor returns a vector engine with the lane count of tag.
// Fixed tags give the same lane count on every CPU.
func NewVectorEngineFor[T hwy.Floats](tag hwy.Tag[T]) *VectorEngine[T] {
	lanes := tag.MaxLanes()
	if lanes <= 0 || lanes > hwy.MaxLaneCount {
		panic(fmt.Sprintf("pricer: tag %s has unsupported lane count %d", tag.Name(), lanes))
	}
	return &VectorEngine[T]{
		lanes: lanes,
		name:  fmt.Sprintf("vector-%s-x%d", tag.Name(), lanes),
	}
}

// Lanes returns the number of options priced per iteration.
func (e *VectorEngine[T]) Lanes() int {
	return e.lanes
}

// Name identifies the engine in logs and reports.
func (e *VectorEngine[T]) Name() string {
	return e.name
}

// PriceCall prices every option in op as a European call.
func (e *VectorEngine[T]) PriceCall(op *OptionPricing[T]) {
	e.Price(op, Call)
}

// PricePut prices every option in op as a European put.
func (e *VectorEngine[T]) PricePut(op *OptionPricing[T]) {
	e.Price(op, Put)
}

// Price overwrites the five outputs of every option in op.
func (e *VectorEngine[T]) Price(op *OptionPricing[T], kind OptionType) {
	kern := kernel[T]{
		constants: newConstants[T](e.lanes),
		put:       kind == Put,
	}

	lanes := e.lanes
	hwy.ProcessWithTail(op.NumOptions, lanes,
		func(offset int) {
			in := block[T]{
				s: hwy.LoadN(op.Underlyings[offset:], lanes),
				k: hwy.LoadN(op.Strikes[offset:], lanes),
				r: hwy.LoadN(op.RiskFreeRates[offset:], lanes),
				v: hwy.LoadN(op.Volatilities[offset:], lanes),
				t: hwy.LoadN(op.TimesToExpiry[offset:], lanes),
				q: hwy.LoadN(op.DividendYields[offset:], lanes),
			}
			out := kern.price(&in)
			out.price.Store(op.Prices[offset:])
			out.delta.Store(op.Deltas[offset:])
			out.gamma.Store(op.Gammas[offset:])
			out.vega.Store(op.Vegas[offset:])
			out.rho.Store(op.Rhos[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMaskN[T](count, lanes)
			fill := kern.one
			in := block[T]{
				s: hwy.MaskLoadOr(mask, op.Underlyings[offset:], fill),
				k: hwy.MaskLoadOr(mask, op.Strikes[offset:], fill),
				r: hwy.MaskLoadOr(mask, op.RiskFreeRates[offset:], fill),
				v: hwy.MaskLoadOr(mask, op.Volatilities[offset:], fill),
				t: hwy.MaskLoadOr(mask, op.TimesToExpiry[offset:], fill),
				q: hwy.MaskLoadOr(mask, op.DividendYields[offset:], fill),
			}
			out := kern.price(&in)
			hwy.MaskStore(mask, out.price, op.Prices[offset:])
			hwy.MaskStore(mask, out.delta, op.Deltas[offset:])
			hwy.MaskStore(mask, out.gamma, op.Gammas[offset:])
			hwy.MaskStore(mask, out.vega, op.Vegas[offset:])
			hwy.MaskStore(mask, out.rho, op.Rhos[offset:])
		},
	)
}

// block is one lane group of inputs: spot, strike, rate, volatility,
// time to expiry and dividend yield.
type block[T hwy.Floats] struct {
	s, k, r, v, t, q hwy.Vec[T]
}

type greeks[T hwy.Floats] struct {
	price, delta, gamma, vega, rho hwy.Vec[T]
}

// kernel is the per-call pricing state. put is fixed for the whole batch.
// Payoffs are static methods so no lane block escapes to the heap.
type kernel[T hwy.Floats] struct {
	constants[T]
	put bool
}

func (c *kernel[T]) price(in *block[T]) greeks[T] {
	sqrtT := hwy.Sqrt(in.t)
	sigmaRootT := hwy.Mul(in.v, sqrtT)
	eqt := hmath.BaseExpVec(hwy.Neg(hwy.Mul(in.t, in.q)))
	ert := hmath.BaseExpVec(hwy.Neg(hwy.Mul(in.t, in.r)))

	// d1 = (ln(S/K) + r*T)/σ√T + 0.5*σ√T
	drift := hwy.MulAdd(in.r, in.t, hmath.BaseLogVec(hwy.Div(in.s, in.k)))
	d1 := hwy.MulAdd(c.half, sigmaRootT, hwy.Div(drift, sigmaRootT))
	d2 := hwy.Sub(d1, sigmaRootT)
	pdfD1 := c.pdf(d1)

	var out greeks[T]
	if c.put {
		out.price, out.delta, out.rho = c.putPayoff(in, eqt, ert, c.cdf(d1), c.cdf(d2))
	} else {
		out.price, out.delta, out.rho = c.callPayoff(in, eqt, ert, c.cdf(d1), c.cdf(d2))
	}
	out.gamma = hwy.Div(hwy.Mul(eqt, pdfD1), hwy.Mul(in.s, sigmaRootT))
	out.vega = hwy.Mul(hwy.Mul(hwy.Mul(hwy.Mul(c.hundredth, in.s), eqt), sqrtT), pdfD1)
	return out
}

// callPayoff returns price, delta and rho of a call.
func (c *kernel[T]) callPayoff(in *block[T], eqt, ert, nd1, nd2 hwy.Vec[T]) (price, delta, rho hwy.Vec[T]) {
	spot := hwy.Mul(in.s, eqt)
	strike := hwy.Mul(in.k, ert)
	price = hwy.Sub(hwy.Mul(spot, nd1), hwy.Mul(strike, nd2))
	delta = hwy.Mul(eqt, nd1)
	rho = hwy.Mul(hwy.Mul(hwy.Mul(hwy.Mul(c.hundredth, in.k), in.t), ert), nd2)
	return price, delta, rho
}

// putPayoff uses N(-d) = 1 - N(d) instead of evaluating the CDF again.
func (c *kernel[T]) putPayoff(in *block[T], eqt, ert, nd1, nd2 hwy.Vec[T]) (price, delta, rho hwy.Vec[T]) {
	nmd1 := hwy.Sub(c.one, nd1)
	nmd2 := hwy.Sub(c.one, nd2)
	spot := hwy.Mul(in.s, eqt)
	strike := hwy.Mul(in.k, ert)
	price = hwy.Sub(hwy.Mul(strike, nmd2), hwy.Mul(spot, nmd1))
	delta = hwy.Neg(hwy.Mul(eqt, nmd1))
	rho = hwy.Neg(hwy.Mul(hwy.Mul(hwy.Mul(hwy.Mul(c.hundredth, in.k), in.t), ert), nmd2))
	return price, delta, rho
}
