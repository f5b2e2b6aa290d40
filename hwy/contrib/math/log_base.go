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

// BaseLogVec computes the natural logarithm for a single vector.
//
// Algorithm:
// 1. Split x = m * 2^e with m in [sqrt(1/2), sqrt(2))
// 2. y = (m-1)/(m+1), ln(m) = 2*atanh(y) = 2*(y + y³/3 + y⁵/5 + ...)
// 3. ln(x) = e*ln(2) + ln(m)
//
// Zero lanes return -Inf, negative lanes NaN, +Inf lanes +Inf.
func BaseLogVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := logTable[T]()
	n := x.NumLanes()
	zero := hwy.SetN(T(0), n)
	one := hwy.SetN(T(1), n)

	zeroMask := hwy.Equal(x, zero)
	negMask := hwy.Less(x, zero)
	infMask := hwy.IsInf(x, 1)
	nanMask := hwy.IsNaN(x)

	m, e := hwy.Frexp(x)
	// Frexp yields m in [0.5, 1); move the lower part up by one octave.
	small := hwy.Less(m, hwy.SetN(T(c.sqrtHalf), n))
	m = hwy.Merge(hwy.Add(m, m), m, small)
	e = hwy.Merge(hwy.Sub(e, one), e, small)

	y := hwy.Div(hwy.Sub(m, one), hwy.Add(m, one))
	lnM := hwy.Mul(y, horner(hwy.Mul(y, y), c.coeffs))

	result := hwy.MulAdd(e, hwy.SetN(T(c.ln2Lo), n), lnM)
	result = hwy.MulAdd(e, hwy.SetN(T(c.ln2Hi), n), result)

	result = hwy.Merge(hwy.SetN(T(stdmath.Inf(-1)), n), result, zeroMask)
	result = hwy.Merge(hwy.SetN(T(stdmath.NaN()), n), result, negMask)
	result = hwy.Merge(x, result, infMask)
	result = hwy.Merge(x, result, nanMask)
	return result
}

// Log computes ln(x) for each element of input, writing to output.
// It processes min(len(input), len(output)) elements.
func Log[T hwy.Floats](input, output []T) {
	apply(input, output, BaseLogVec[T])
}
