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

// Package hwy provides portable SIMD operations with runtime lane width dispatch.
//
// It follows the Highway C++ library's design: algorithms are written once
// against Vec[T] and a lane count that is queried at runtime, never
// hard-coded. The pure Go implementation processes every lane of a Vec in
// a tight loop over a fixed-size array, so vectors are plain values and
// element-wise ops never touch the heap.
//
// Basic usage:
//
//	import "github.com/fast-option-pricer/fop/hwy"
//
//	lanes := hwy.MaxLanes[float64]()
//	a := hwy.LoadN(data1, lanes)
//	b := hwy.LoadN(data2, lanes)
//	hwy.Store(hwy.Add(a, b), output)
package hwy

// MaxLaneCount is the capacity of a Vec: the lane count of the widest
// supported register (512 bits) for the narrowest supported element (32 bits).
const MaxLaneCount = 16

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Vec is a portable vector handle holding NumLanes() active lanes.
//
// Vec instances should not be created directly; use Load, LoadN, Set, SetN
// or Zero instead.
type Vec[T Floats] struct {
	data [MaxLaneCount]T
	n    int
}

// NumLanes returns the number of active lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value of lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Store writes the vector's active lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation or a tail selection.
// It can be used with Merge, MaskLoadOr and MaskStore.
type Mask[T Floats] struct {
	bits [MaxLaneCount]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for i := range m.n {
		if !m.bits[i] {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for i := range m.n {
		if m.bits[i] {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for i := range m.n {
		if m.bits[i] {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits[i]
}
