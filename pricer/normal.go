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
	"math"

	"github.com/chewxy/math32"

	"github.com/fast-option-pricer/fop/hwy"
)

const invSqrt2Pi = 0.3989422804014327

// NormalCDF returns the standard normal cumulative distribution
// Φ(x) = 0.5*erfc(-x/√2), computed at the precision of T.
func NormalCDF[T hwy.Floats](x T) T {
	return T(0.5) * erfc(-x/T(math.Sqrt2))
}

// NormalPDF returns the standard normal density φ(x) = exp(-x²/2)/√(2π).
func NormalPDF[T hwy.Floats](x T) T {
	return T(invSqrt2Pi) * exp(-x*x*T(0.5))
}

// Scalar math at the precision of T. float32 goes through math32.

func erfc[T hwy.Floats](x T) T {
	if hwy.Is32Bit[T]() {
		return T(math32.Erfc(float32(x)))
	}
	return T(math.Erfc(float64(x)))
}

func exp[T hwy.Floats](x T) T {
	if hwy.Is32Bit[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(math.Exp(float64(x)))
}

func log[T hwy.Floats](x T) T {
	if hwy.Is32Bit[T]() {
		return T(math32.Log(float32(x)))
	}
	return T(math.Log(float64(x)))
}

func sqrt[T hwy.Floats](x T) T {
	if hwy.Is32Bit[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}
