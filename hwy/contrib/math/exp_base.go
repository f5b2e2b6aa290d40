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

package math

import (
	stdmath "math"

	"github.com/fast-option-pricer/fop/hwy"
)

// BaseExpVec computes e^x for a single vector, returning the result.
// This is the register-level building block for zero-allocation composition.
//
// Algorithm:
// 1. Range reduction: x = k*ln(2) + r, where |r| <= ln(2)/2
// 2. Polynomial approximation: e^r ≈ 1 + r + r²/2! + r³/3! + ...
// 3. Reconstruction: e^x = 2^k * e^r
//
// Lanes above the overflow bound return +Inf, lanes below the underflow
// bound return 0, NaN lanes stay NaN.
func BaseExpVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := expTable[T]()
	n := x.NumLanes()

	overflow := hwy.SetN(T(c.overflow), n)
	underflow := hwy.SetN(T(c.underflow), n)
	overflowMask := hwy.Greater(x, overflow)
	underflowMask := hwy.Less(x, underflow)
	nanMask := hwy.IsNaN(x)

	// Clamp so k stays a representable exponent; the masks restore the
	// saturated lanes afterwards.
	xc := hwy.Min(hwy.Max(x, underflow), overflow)
	xc = hwy.Merge(hwy.SetN(T(0), n), xc, nanMask)

	// k = round(x / ln(2)), r = x - k*ln(2) with a high/low split of ln(2)
	k := hwy.RoundToEven(hwy.Mul(xc, hwy.SetN(T(c.invLn2), n)))
	r := hwy.Sub(xc, hwy.Mul(k, hwy.SetN(T(c.ln2Hi), n)))
	r = hwy.Sub(r, hwy.Mul(k, hwy.SetN(T(c.ln2Lo), n)))

	result := hwy.Ldexp(horner(r, c.coeffs), k)

	result = hwy.Merge(hwy.SetN(T(stdmath.Inf(1)), n), result, overflowMask)
	result = hwy.Merge(hwy.SetN(T(0), n), result, underflowMask)
	result = hwy.Merge(x, result, nanMask)
	return result
}

// Exp computes e^x for each element of input, writing to output.
// It processes min(len(input), len(output)) elements.
func Exp[T hwy.Floats](input, output []T) {
	apply(input, output, BaseExpVec[T])
}

// apply runs a vector kernel over a slice in full vectors plus a short tail.
func apply[T hwy.Floats](input, output []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	size := min(len(input), len(output))
	lanes := hwy.MaxLanes[T]()
	hwy.ProcessWithTail(size, lanes,
		func(offset int) {
			fn(hwy.Load(input[offset:])).Store(output[offset:])
		},
		func(offset, count int) {
			fn(hwy.LoadN(input[offset:], count)).Store(output[offset:])
		},
	)
}
