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

package hwy

import "math"

// This file provides the pure Go implementations of the Highway operations
// used by the pricing kernels. Binary operations work on the common lane
// count of their operands; every result is a value, nothing is allocated.
// Add, Sub, Mul, Div, MulAdd and Sqrt try the native archsimd path first
// (see NativeOps).

type binaryOp uint8

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

// Load creates a vector by loading MaxLanes[T]() elements from a slice.
// Fewer lanes are loaded when src is shorter.
func Load[T Floats](src []T) Vec[T] {
	return LoadN(src, MaxLanes[T]())
}

// LoadN creates a vector of n lanes from the first n elements of src.
// The lane count is clamped to len(src) and MaxLaneCount.
func LoadN[T Floats](src []T, n int) Vec[T] {
	n = max(0, min(n, len(src), MaxLaneCount))
	var v Vec[T]
	copy(v.data[:n], src[:n])
	v.n = n
	return v
}

// Store writes a vector's active lanes to dst, stopping at len(dst).
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all MaxLanes[T]() lanes set to the same value.
func Set[T Floats](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// SetN creates a vector of n lanes all set to value.
func SetN[T Floats](value T, n int) Vec[T] {
	n = max(0, min(n, MaxLaneCount))
	var v Vec[T]
	for i := range n {
		v.data[i] = value
	}
	v.n = n
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	if nativeBinary(opAdd, &r, &a, &b) {
		return r
	}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	if nativeBinary(opSub, &r, &a, &b) {
		return r
	}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	if nativeBinary(opMul, &r, &a, &b) {
		return r
	}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	if nativeBinary(opDiv, &r, &a, &b) {
		return r
	}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// MulAdd computes a*b + c element-wise. The native path fuses the
// multiply and add into one rounding.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	if nativeMulAdd(&r, &a, &b, &c) {
		return r
	}
	for i := range r.n {
		r.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return r
}

// Neg negates all lanes.
func Neg[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = -v.data[i]
	}
	return r
}

// Abs computes absolute value.
func Abs[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = T(math.Abs(float64(v.data[i])))
	}
	return r
}

// Sqrt computes square root.
// float32 lanes round correctly through the float64 root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	if nativeSqrt(&r, &v) {
		return r
	}
	for i := range v.n {
		r.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return r
}

// Min returns element-wise minimum.
func Min[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max returns element-wise maximum.
func Max[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// RoundToEven rounds to the nearest even integer (banker's rounding).
// This is the default IEEE 754 rounding mode.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = T(math.RoundToEven(float64(v.data[i])))
	}
	return r
}

// Frexp splits each lane into a fraction in [0.5, 1) and a power of two,
// returned as a float vector: v = frac * 2^exp.
func Frexp[T Floats](v Vec[T]) (frac, exp Vec[T]) {
	frac.n, exp.n = v.n, v.n
	for i := range v.n {
		f, e := math.Frexp(float64(v.data[i]))
		frac.data[i] = T(f)
		exp.data[i] = T(e)
	}
	return frac, exp
}

// Ldexp computes frac * 2^exp per lane; exp lanes must hold integers.
func Ldexp[T Floats](frac, exp Vec[T]) Vec[T] {
	r := Vec[T]{n: min(frac.n, exp.n)}
	for i := range r.n {
		r.data[i] = T(math.Ldexp(float64(frac.data[i]), int(exp.data[i])))
	}
	return r
}

// ReduceSum sums all lanes.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Floats](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = max(m, v.data[i])
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] == b.data[i]
	}
	return m
}

// Less performs element-wise less-than comparison.
func Less[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// Greater performs element-wise greater-than comparison.
func Greater[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] > b.data[i]
	}
	return m
}

// IsInf returns a mask of infinite lanes.
// sign > 0 selects +Inf, sign < 0 selects -Inf, sign == 0 selects both.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = math.IsInf(float64(v.data[i]), sign)
	}
	return m
}

// IsNaN returns a mask of NaN lanes.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = v.data[i] != v.data[i]
	}
	return m
}

// Merge selects elements from a where mask is true, from b otherwise.
func Merge[T Floats](a, b Vec[T], mask Mask[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, mask.n)}
	for i := range r.n {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}
