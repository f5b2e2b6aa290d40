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
	"errors"
	"fmt"
	"math"

	"github.com/fast-option-pricer/fop/hwy"
)

// OptionPricing is one homogeneous batch of independently priced options.
//
// The six input and five output slices are index aligned: position i across
// all of them describes one contract. All eleven have length NumOptions.
// An engine borrows the record for a single Price call and never retains it;
// concurrent Price calls on the same record are not supported.
type OptionPricing[T hwy.Floats] struct {
	NumOptions int

	Underlyings    []T
	Strikes        []T
	RiskFreeRates  []T
	Volatilities   []T
	TimesToExpiry  []T
	DividendYields []T

	Prices []T
	Deltas []T
	Gammas []T
	Vegas  []T
	Rhos   []T
}

// NewOptionPricing copies the six input sequences into a new record with
// zeroed outputs. It panics if any input length differs from the length of
// underlyings.
func NewOptionPricing[T hwy.Floats](underlyings, strikes, riskFreeRates, volatilities, timesToExpiry, dividendYields []T) *OptionPricing[T] {
	n := len(underlyings)
	for _, in := range []struct {
		name string
		len  int
	}{
		{"strikes", len(strikes)},
		{"risk-free rates", len(riskFreeRates)},
		{"volatilities", len(volatilities)},
		{"times to expiry", len(timesToExpiry)},
		{"dividend yields", len(dividendYields)},
	} {
		if in.len != n {
			panic(fmt.Sprintf("pricer: %s has %d elements, underlyings has %d", in.name, in.len, n))
		}
	}

	// One backing array keeps the batch contiguous in memory.
	buf := make([]T, 11*n)
	next := func(src []T) []T {
		s := buf[:n:n]
		buf = buf[n:]
		copy(s, src)
		return s
	}
	return &OptionPricing[T]{
		NumOptions:     n,
		Underlyings:    next(underlyings),
		Strikes:        next(strikes),
		RiskFreeRates:  next(riskFreeRates),
		Volatilities:   next(volatilities),
		TimesToExpiry:  next(timesToExpiry),
		DividendYields: next(dividendYields),
		Prices:         next(nil),
		Deltas:         next(nil),
		Gammas:         next(nil),
		Vegas:          next(nil),
		Rhos:           next(nil),
	}
}

// Slice returns a view of options [lo, hi) sharing storage with op.
// Pricing the view writes straight into op's outputs. It panics on an
// invalid range.
func (op *OptionPricing[T]) Slice(lo, hi int) *OptionPricing[T] {
	if lo < 0 || hi < lo || hi > op.NumOptions {
		panic(fmt.Sprintf("pricer: slice [%d, %d) out of range for %d options", lo, hi, op.NumOptions))
	}
	return &OptionPricing[T]{
		NumOptions:     hi - lo,
		Underlyings:    op.Underlyings[lo:hi:hi],
		Strikes:        op.Strikes[lo:hi:hi],
		RiskFreeRates:  op.RiskFreeRates[lo:hi:hi],
		Volatilities:   op.Volatilities[lo:hi:hi],
		TimesToExpiry:  op.TimesToExpiry[lo:hi:hi],
		DividendYields: op.DividendYields[lo:hi:hi],
		Prices:         op.Prices[lo:hi:hi],
		Deltas:         op.Deltas[lo:hi:hi],
		Gammas:         op.Gammas[lo:hi:hi],
		Vegas:          op.Vegas[lo:hi:hi],
		Rhos:           op.Rhos[lo:hi:hi],
	}
}

// ResetOutputs zeroes the five output sequences.
func (op *OptionPricing[T]) ResetOutputs() {
	clear(op.Prices)
	clear(op.Deltas)
	clear(op.Gammas)
	clear(op.Vegas)
	clear(op.Rhos)
}

// InputError reports one input value outside the domain the model is
// defined on.
type InputError struct {
	Index int
	Field string
	Value float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("option %d: invalid %s %v", e.Index, e.Field, e.Value)
}

// Validate checks every option against the valid input domain: spot,
// strike, volatility and time to expiry strictly positive and finite, rate
// and dividend yield finite. It returns nil or an errors.Join of
// *InputError values. Engines do not validate; this is for callers.
func (op *OptionPricing[T]) Validate() error {
	var errs []error
	check := func(field string, values []T, positive bool) {
		for i, v := range values {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) || (positive && f <= 0) {
				errs = append(errs, &InputError{Index: i, Field: field, Value: f})
			}
		}
	}
	check("underlying", op.Underlyings, true)
	check("strike", op.Strikes, true)
	check("risk-free rate", op.RiskFreeRates, false)
	check("volatility", op.Volatilities, true)
	check("time to expiry", op.TimesToExpiry, true)
	check("dividend yield", op.DividendYields, false)
	return errors.Join(errs...)
}
