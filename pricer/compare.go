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
	"math"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/fast-option-pricer/fop/hwy"
)

// Agreement holds the largest absolute difference per output between two
// priced records.
type Agreement struct {
	Price float64
	Delta float64
	Gamma float64
	Vega  float64
	Rho   float64
}

// Max returns the largest difference over all five outputs.
func (a Agreement) Max() float64 {
	return max(a.Price, a.Delta, a.Gamma, a.Vega, a.Rho)
}

// Within reports whether every output agrees to within tol.
// A NaN difference never agrees.
func (a Agreement) Within(tol float64) bool {
	for _, d := range []float64{a.Price, a.Delta, a.Gamma, a.Vega, a.Rho} {
		if math.IsNaN(d) || d > tol {
			return false
		}
	}
	return true
}

func (a Agreement) String() string {
	return fmt.Sprintf("price=%.3g delta=%.3g gamma=%.3g vega=%.3g rho=%.3g",
		a.Price, a.Delta, a.Gamma, a.Vega, a.Rho)
}

// Compare returns the per-output maximum absolute difference between a and
// b. Both records must hold the same number of options.
func Compare[T hwy.Floats](a, b *OptionPricing[T]) Agreement {
	if a.NumOptions != b.NumOptions {
		panic(fmt.Sprintf("pricer: comparing %d options with %d", a.NumOptions, b.NumOptions))
	}
	return Agreement{
		Price: maxAbsDiff(a.Prices, b.Prices),
		Delta: maxAbsDiff(a.Deltas, b.Deltas),
		Gamma: maxAbsDiff(a.Gammas, b.Gammas),
		Vega:  maxAbsDiff(a.Vegas, b.Vegas),
		Rho:   maxAbsDiff(a.Rhos, b.Rhos),
	}
}

// ParityGap returns max |C - P - (S*e^(-qT) - K*e^(-rT))| over a call
// record and a put record priced from the same inputs.
func ParityGap[T hwy.Floats](call, put *OptionPricing[T]) float64 {
	if call.NumOptions != put.NumOptions {
		panic(fmt.Sprintf("pricer: parity of %d calls with %d puts", call.NumOptions, put.NumOptions))
	}
	gap := 0.0
	for i := range call.NumOptions {
		s, k := float64(call.Underlyings[i]), float64(call.Strikes[i])
		t := float64(call.TimesToExpiry[i])
		forward := s*math.Exp(-t*float64(call.DividendYields[i])) - k*math.Exp(-t*float64(call.RiskFreeRates[i]))
		d := math.Abs(float64(call.Prices[i]) - float64(put.Prices[i]) - forward)
		if math.IsNaN(d) {
			return d
		}
		gap = max(gap, d)
	}
	return gap
}

func maxAbsDiff[T hwy.Floats](x, y []T) float64 {
	if len(x) == 0 {
		return 0
	}
	switch xs := any(x).(type) {
	case []float64:
		d := vek.Sub(xs, any(y).([]float64))
		vek.Abs_Inplace(d)
		return nanOr(d, vek.Max(d))
	case []float32:
		d := vek32.Sub(xs, any(y).([]float32))
		vek32.Abs_Inplace(d)
		return nanOr(d, float64(vek32.Max(d)))
	}
	m := 0.0
	for i := range x {
		d := math.Abs(float64(x[i]) - float64(y[i]))
		if math.IsNaN(d) {
			return d
		}
		m = max(m, d)
	}
	return m
}

// nanOr returns NaN when any difference is NaN, m otherwise. Ordered max
// reductions drop NaN lanes.
func nanOr[F float32 | float64](d []F, m float64) float64 {
	for _, v := range d {
		if v != v {
			return math.NaN()
		}
	}
	return m
}
