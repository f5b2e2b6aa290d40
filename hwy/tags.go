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

import "unsafe"

// Tag describes a vector size and thereby the lane count used for element
// type T. Algorithms take a Tag at setup and derive their stride from it.
type Tag[T Floats] interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("avx2", "128bit", etc.)
	Name() string

	// MaxLanes returns the number of T elements per vector.
	MaxLanes() int
}

// ScalableTag adapts to the widest SIMD width detected at runtime.
// This is the recommended tag for most use cases.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Floats] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentName
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// FixedTag128 forces 128-bit vectors (SSE, NEON) regardless of the CPU.
// Use this when you need consistent lane counts across platforms.
type FixedTag128[T Floats] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (FixedTag128[T]) MaxLanes() int {
	return lanesFor[T](16)
}

// FixedTag256 forces 256-bit vectors (AVX2).
type FixedTag256[T Floats] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (FixedTag256[T]) MaxLanes() int {
	return lanesFor[T](32)
}

// FixedTag512 forces 512-bit vectors (AVX-512).
type FixedTag512[T Floats] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (FixedTag512[T]) MaxLanes() int {
	return lanesFor[T](64)
}

func lanesFor[T Floats](widthBytes int) int {
	var dummy T
	return min(widthBytes/int(unsafe.Sizeof(dummy)), MaxLaneCount)
}

// Is32Bit reports whether T is a 32-bit float type.
func Is32Bit[T Floats]() bool {
	var dummy T
	return unsafe.Sizeof(dummy) == 4
}
