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

	"github.com/fast-option-pricer/fop/hwy"
	hmath "github.com/fast-option-pricer/fop/hwy/contrib/math"
)

// constants holds every literal of the pricing formulas broadcast to one
// lane count at precision T.
type constants[T hwy.Floats] struct {
	half       hwy.Vec[T]
	one        hwy.Vec[T]
	hundredth  hwy.Vec[T]
	sqrt2      hwy.Vec[T]
	invSqrt2Pi hwy.Vec[T]
}

func newConstants[T hwy.Floats](lanes int) constants[T] {
	return constants[T]{
		half:       hwy.SetN(T(0.5), lanes),
		one:        hwy.SetN(T(1), lanes),
		hundredth:  hwy.SetN(T(0.01), lanes),
		sqrt2:      hwy.SetN(T(math.Sqrt2), lanes),
		invSqrt2Pi: hwy.SetN(T(invSqrt2Pi), lanes),
	}
}

// NormalCDFVec evaluates Φ on every lane of x.
//
// There is no vector erfc, so the argument -x/√2 is spilled to a scalar
// buffer of exactly x.NumLanes() elements, erfc is applied per element and
// the buffer is reloaded in lane order.
func NormalCDFVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := newConstants[T](x.NumLanes())
	return c.cdf(x)
}

// NormalPDFVec evaluates φ on every lane of x with the vector exp kernel.
func NormalPDFVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := newConstants[T](x.NumLanes())
	return c.pdf(x)
}

func (c *constants[T]) cdf(x hwy.Vec[T]) hwy.Vec[T] {
	arg := hwy.Div(hwy.Neg(x), c.sqrt2)
	return hwy.Mul(c.half, hwy.MapLanes(arg, erfc[T]))
}

func (c *constants[T]) pdf(x hwy.Vec[T]) hwy.Vec[T] {
	arg := hwy.Neg(hwy.Mul(hwy.Mul(x, x), c.half))
	return hwy.Mul(c.invSqrt2Pi, hmath.BaseExpVec(arg))
}
