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

import "testing"

func TestTailMaskN(t *testing.T) {
	tests := []struct {
		count, lanes int
		active       int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 4},
		{9, 4, 4},
		{-2, 4, 0},
		{5, 32, 5},
	}
	for _, tt := range tests {
		m := TailMaskN[float64](tt.count, tt.lanes)
		if m.CountTrue() != tt.active {
			t.Errorf("TailMaskN(%d, %d): %d active lanes, want %d", tt.count, tt.lanes, m.CountTrue(), tt.active)
		}
		for i := range tt.active {
			if !m.GetBit(i) {
				t.Errorf("TailMaskN(%d, %d): lane %d inactive", tt.count, tt.lanes, i)
			}
		}
	}
}

func TestMaskLoadOrDoesNotReadPastSource(t *testing.T) {
	src := []float64{10, 20}
	mask := TailMaskN[float64](2, 4)
	v := MaskLoadOr(mask, src, SetN[float64](1, 4))

	want := []float64{10, 20, 1, 1}
	if v.NumLanes() != 4 {
		t.Fatalf("got %d lanes, want 4", v.NumLanes())
	}
	for i, w := range want {
		if v.Lane(i) != w {
			t.Errorf("lane %d: got %v, want %v", i, v.Lane(i), w)
		}
	}
}

func TestMaskStorePreservesInactiveLanes(t *testing.T) {
	dst := []float64{-1, -1, -1, -1, -1}
	mask := TailMaskN[float64](3, 4)
	MaskStore(mask, SetN[float64](5, 4), dst)

	want := []float64{5, 5, 5, -1, -1}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	for _, size := range []int{0, 1, 3, 4, 5, 8, 11} {
		var fullOffsets []int
		tailOffset, tailCount := -1, 0
		ProcessWithTail(size, 4,
			func(offset int) { fullOffsets = append(fullOffsets, offset) },
			func(offset, count int) { tailOffset, tailCount = offset, count },
		)

		if len(fullOffsets) != size/4 {
			t.Errorf("size %d: %d full blocks, want %d", size, len(fullOffsets), size/4)
		}
		for i, off := range fullOffsets {
			if off != i*4 {
				t.Errorf("size %d: block %d at offset %d", size, i, off)
			}
		}
		if rem := size % 4; rem > 0 {
			if tailOffset != size-rem || tailCount != rem {
				t.Errorf("size %d: tail (%d, %d), want (%d, %d)", size, tailOffset, tailCount, size-rem, rem)
			}
		} else if tailOffset != -1 {
			t.Errorf("size %d: unexpected tail call", size)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	lanes := MaxLanes[float32]()
	if got := AlignedSize[float32](lanes + 1); got != 2*lanes {
		t.Errorf("AlignedSize(%d) = %d, want %d", lanes+1, got, 2*lanes)
	}
	if !IsAligned[float32](3 * lanes) {
		t.Errorf("IsAligned(%d) = false", 3*lanes)
	}
	if lanes > 1 && IsAligned[float32](lanes+1) {
		t.Errorf("IsAligned(%d) = true", lanes+1)
	}
}
