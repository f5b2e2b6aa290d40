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

import "github.com/fast-option-pricer/fop/hwy"

// =============================================================================
// Constants for mathematical functions
// =============================================================================
//
// Coefficient tables are kept in float64 and materialised at the lane type
// once per kernel call. The float32 tables are shorter: their extra terms
// fall below float32 resolution.

type expConstants struct {
	ln2Hi, ln2Lo, invLn2 float64
	overflow, underflow  float64
	// coeffs[i] multiplies r^i.
	coeffs []float64
}

type logConstants struct {
	ln2Hi, ln2Lo float64
	sqrtHalf     float64
	// coeffs[i] multiplies y^(2i+1) in the atanh series of ln(m).
	coeffs []float64
}

var exp32 = expConstants{
	ln2Hi:     0.693359375,
	ln2Lo:     -2.12194440e-4,
	invLn2:    1.44269504088896341,
	overflow:  88.72283905206835,
	underflow: -103.97207708,
	coeffs: []float64{
		1.0,
		1.0,
		0.5,
		0.16666666666666666,
		0.041666666666666664,
		0.008333333333333333,
		0.001388888888888889,
	},
}

var exp64 = expConstants{
	ln2Hi:     6.93147180369123816490e-01,
	ln2Lo:     1.90821492927058770002e-10,
	invLn2:    1.44269504088896338700e+00,
	overflow:  7.09782712893383973096e+02,
	underflow: -7.45133219101941108420e+02,
	coeffs: []float64{
		1.0,
		1.0,
		0.5,
		0.16666666666666666,
		0.041666666666666664,
		0.008333333333333333,
		0.001388888888888889,
		0.0001984126984126984,
		2.48015873015873e-05,
		2.7557319223985893e-06,
		2.755731922398589e-07,
		2.505210838544172e-08,
	},
}

var log32 = logConstants{
	ln2Hi:    0.693359375,
	ln2Lo:    -2.12194440e-4,
	sqrtHalf: 0.70710678118654752440,
	coeffs:   []float64{2.0, 2.0 / 3, 2.0 / 5, 2.0 / 7, 2.0 / 9},
}

var log64 = logConstants{
	ln2Hi:    6.93147180369123816490e-01,
	ln2Lo:    1.90821492927058770002e-10,
	sqrtHalf: 0.70710678118654752440,
	coeffs: []float64{
		2.0, 2.0 / 3, 2.0 / 5, 2.0 / 7, 2.0 / 9,
		2.0 / 11, 2.0 / 13, 2.0 / 15, 2.0 / 17, 2.0 / 19,
	},
}

func expTable[T hwy.Floats]() *expConstants {
	if hwy.Is32Bit[T]() {
		return &exp32
	}
	return &exp64
}

func logTable[T hwy.Floats]() *logConstants {
	if hwy.Is32Bit[T]() {
		return &log32
	}
	return &log64
}

// horner evaluates sum(coeffs[i] * x^i) lane-wise.
func horner[T hwy.Floats](x hwy.Vec[T], coeffs []float64) hwy.Vec[T] {
	n := x.NumLanes()
	last := len(coeffs) - 1
	p := hwy.SetN(T(coeffs[last]), n)
	for i := last - 1; i >= 0; i-- {
		p = hwy.MulAdd(p, x, hwy.SetN(T(coeffs[i]), n))
	}
	return p
}
