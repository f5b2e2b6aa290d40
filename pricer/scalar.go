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

import "github.com/fast-option-pricer/fop/hwy"

// ScalarEngine prices one option per iteration with scalar math. It is the
// reference the vector engine is checked against.
type ScalarEngine[T hwy.Floats] struct{}

// NewScalarEngine returns a scalar engine for precision T.
func NewScalarEngine[T hwy.Floats]() *ScalarEngine[T] {
	return &ScalarEngine[T]{}
}

// Name identifies the engine in logs and reports.
func (*ScalarEngine[T]) Name() string {
	return "scalar"
}

// PriceCall prices every option in op as a European call.
func (e *ScalarEngine[T]) PriceCall(op *OptionPricing[T]) {
	e.Price(op, Call)
}

// PricePut prices every option in op as a European put.
func (e *ScalarEngine[T]) PricePut(op *OptionPricing[T]) {
	e.Price(op, Put)
}

// Price overwrites the five outputs of every option in op.
func (*ScalarEngine[T]) Price(op *OptionPricing[T], kind OptionType) {
	payoff := scalarCall[T]
	if kind == Put {
		payoff = scalarPut[T]
	}

	half, hundredth := T(0.5), T(0.01)
	for i := range op.NumOptions {
		s, k := op.Underlyings[i], op.Strikes[i]
		r, t := op.RiskFreeRates[i], op.TimesToExpiry[i]
		sqrtT := sqrt(t)
		sigmaRootT := op.Volatilities[i] * sqrtT
		eqt := exp(-(t * op.DividendYields[i]))
		ert := exp(-(t * r))

		d1 := (log(s/k)+r*t)/sigmaRootT + half*sigmaRootT
		d2 := d1 - sigmaRootT
		pdfD1 := NormalPDF(d1)

		op.Prices[i], op.Deltas[i], op.Rhos[i] = payoff(s, k, t, eqt, ert, NormalCDF(d1), NormalCDF(d2))
		op.Gammas[i] = eqt * pdfD1 / (s * sigmaRootT)
		op.Vegas[i] = hundredth * s * eqt * sqrtT * pdfD1
	}
}

// scalarCall and scalarPut return price, delta and rho given N(d1), N(d2).
func scalarCall[T hwy.Floats](s, k, t, eqt, ert, nd1, nd2 T) (price, delta, rho T) {
	price = s*eqt*nd1 - k*ert*nd2
	delta = eqt * nd1
	rho = T(0.01) * k * t * ert * nd2
	return price, delta, rho
}

func scalarPut[T hwy.Floats](s, k, t, eqt, ert, nd1, nd2 T) (price, delta, rho T) {
	nmd1, nmd2 := 1-nd1, 1-nd2
	price = k*ert*nmd2 - s*eqt*nmd1
	delta = -(eqt * nmd1)
	rho = -(T(0.01) * k * t * ert * nmd2)
	return price, delta, rho
}
