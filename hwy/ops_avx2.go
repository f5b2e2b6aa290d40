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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
	"unsafe"
)

// This file routes the element-wise float ops through 256-bit archsimd
// registers: Float64x4 for float64 and Float32x8 for float32. A Vec is
// backed by a [MaxLaneCount]T array, so the active lanes are covered in
// whole registers and the lanes past NumLanes() are cleared afterwards.

// NativeOps reports whether element-wise ops run on archsimd registers.
func NativeOps() bool {
	return currentLevel == DispatchAVX2 || currentLevel == DispatchAVX512
}

func lanes64[T Floats](v *Vec[T]) *[MaxLaneCount]float64 {
	return (*[MaxLaneCount]float64)(unsafe.Pointer(&v.data))
}

func lanes32[T Floats](v *Vec[T]) *[MaxLaneCount]float32 {
	return (*[MaxLaneCount]float32)(unsafe.Pointer(&v.data))
}

func nativeBinary[T Floats](op binaryOp, r, a, b *Vec[T]) bool {
	if !NativeOps() {
		return false
	}
	if Is32Bit[T]() {
		rd, ad, bd := lanes32(r), lanes32(a), lanes32(b)
		for i := 0; i < r.n; i += 8 {
			x := archsimd.LoadFloat32x8Slice(ad[i : i+8])
			y := archsimd.LoadFloat32x8Slice(bd[i : i+8])
			binary32(op, x, y).StoreSlice(rd[i : i+8])
		}
		clear(rd[r.n:])
		return true
	}
	rd, ad, bd := lanes64(r), lanes64(a), lanes64(b)
	for i := 0; i < r.n; i += 4 {
		x := archsimd.LoadFloat64x4Slice(ad[i : i+4])
		y := archsimd.LoadFloat64x4Slice(bd[i : i+4])
		binary64(op, x, y).StoreSlice(rd[i : i+4])
	}
	clear(rd[r.n:])
	return true
}

func binary32(op binaryOp, x, y archsimd.Float32x8) archsimd.Float32x8 {
	switch op {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func binary64(op binaryOp, x, y archsimd.Float64x4) archsimd.Float64x4 {
	switch op {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

// nativeMulAdd computes r = a*b + c with a fused multiply-add.
func nativeMulAdd[T Floats](r, a, b, c *Vec[T]) bool {
	if !NativeOps() {
		return false
	}
	if Is32Bit[T]() {
		rd, ad, bd, cd := lanes32(r), lanes32(a), lanes32(b), lanes32(c)
		for i := 0; i < r.n; i += 8 {
			x := archsimd.LoadFloat32x8Slice(ad[i : i+8])
			y := archsimd.LoadFloat32x8Slice(bd[i : i+8])
			z := archsimd.LoadFloat32x8Slice(cd[i : i+8])
			x.MulAdd(y, z).StoreSlice(rd[i : i+8])
		}
		clear(rd[r.n:])
		return true
	}
	rd, ad, bd, cd := lanes64(r), lanes64(a), lanes64(b), lanes64(c)
	for i := 0; i < r.n; i += 4 {
		x := archsimd.LoadFloat64x4Slice(ad[i : i+4])
		y := archsimd.LoadFloat64x4Slice(bd[i : i+4])
		z := archsimd.LoadFloat64x4Slice(cd[i : i+4])
		x.MulAdd(y, z).StoreSlice(rd[i : i+4])
	}
	clear(rd[r.n:])
	return true
}

// nativeSqrt uses VSQRTPS/VSQRTPD, which are correctly rounded.
func nativeSqrt[T Floats](r, v *Vec[T]) bool {
	if !NativeOps() {
		return false
	}
	if Is32Bit[T]() {
		rd, vd := lanes32(r), lanes32(v)
		for i := 0; i < r.n; i += 8 {
			archsimd.LoadFloat32x8Slice(vd[i : i+8]).Sqrt().StoreSlice(rd[i : i+8])
		}
		clear(rd[r.n:])
		return true
	}
	rd, vd := lanes64(r), lanes64(v)
	for i := 0; i < r.n; i += 4 {
		archsimd.LoadFloat64x4Slice(vd[i : i+4]).Sqrt().StoreSlice(rd[i : i+4])
	}
	clear(rd[r.n:])
	return true
}
