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

// TailMaskN creates a mask of the given lane count with the first count
// lanes active. This is useful for handling the tail (remainder) of an
// array when the size is not a multiple of the vector width.
func TailMaskN[T Floats](count, lanes int) Mask[T] {
	lanes = max(0, min(lanes, MaxLaneCount))
	count = max(0, min(count, lanes))
	m := Mask[T]{n: lanes}
	for i := range count {
		m.bits[i] = true
	}
	return m
}

// MaskLoadOr loads src[i] into lane i where the mask is active and takes
// lane i of fallback elsewhere. Inactive lanes never read src, so src may be
// shorter than the mask.
func MaskLoadOr[T Floats](mask Mask[T], src []T, fallback Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, fallback.n)}
	for i := range r.n {
		if mask.bits[i] && i < len(src) {
			r.data[i] = src[i]
		} else {
			r.data[i] = fallback.data[i]
		}
	}
	return r
}

// MaskStore stores lanes of v to dst only where the mask is active.
// Existing values in dst are preserved where the mask is inactive.
func MaskStore[T Floats](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), v.n, mask.n)
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of lanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data), hwy.MaxLanes[float32](),
//	    func(offset int) {
//	        v := hwy.Load(data[offset:])
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := hwy.TailMaskN[float32](count, hwy.MaxLanes[float32]())
//	        v := hwy.MaskLoadOr(mask, data[offset:], hwy.Zero[float32]())
//	        hwy.MaskStore(mask, hwy.Add(v, v), output[offset:])
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		panic("hwy: ProcessWithTail needs a positive lane count")
	}

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of the vector width for T.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize[T Floats](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned returns true if size is a multiple of the vector width for T.
func IsAligned[T Floats](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}
