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

func TestDispatchWidth(t *testing.T) {
	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Fatalf("CurrentWidth() = %d, want 16, 32 or 64", CurrentWidth())
	}
	if CurrentName() == "" || CurrentName() == "unknown" {
		t.Errorf("CurrentName() = %q", CurrentName())
	}
	if got, want := MaxLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want)
	}
	if got, want := MaxLanes[float64](), CurrentWidth()/8; got != want {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, want)
	}
}

func TestFixedTags(t *testing.T) {
	tests := []struct {
		name string
		f32  int
		f64  int
		tag  func() (Tag[float32], Tag[float64])
	}{
		{"128bit", 4, 2, func() (Tag[float32], Tag[float64]) { return FixedTag128[float32]{}, FixedTag128[float64]{} }},
		{"256bit", 8, 4, func() (Tag[float32], Tag[float64]) { return FixedTag256[float32]{}, FixedTag256[float64]{} }},
		{"512bit", 16, 8, func() (Tag[float32], Tag[float64]) { return FixedTag512[float32]{}, FixedTag512[float64]{} }},
	}
	for _, tt := range tests {
		t32, t64 := tt.tag()
		if t32.Name() != tt.name {
			t.Errorf("Name() = %q, want %q", t32.Name(), tt.name)
		}
		if t32.MaxLanes() != tt.f32 || t64.MaxLanes() != tt.f64 {
			t.Errorf("%s: lanes (%d, %d), want (%d, %d)", tt.name, t32.MaxLanes(), t64.MaxLanes(), tt.f32, tt.f64)
		}
	}
	if (ScalableTag[float64]{}).MaxLanes() != MaxLanes[float64]() {
		t.Error("ScalableTag disagrees with MaxLanes")
	}
}

func TestWidthEnv(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"", 0},
		{"32", 32},
		{"64", 64},
		{"24", 0},
		{"wide", 0},
	}
	for _, tt := range tests {
		t.Setenv("HWY_WIDTH", tt.val)
		if got := widthEnv(); got != tt.want {
			t.Errorf("HWY_WIDTH=%q: widthEnv() = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("HWY_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("empty HWY_NO_SIMD reported as set")
	}
	t.Setenv("HWY_NO_SIMD", "false")
	if NoSimdEnv() {
		t.Error("HWY_NO_SIMD=false reported as set")
	}
	t.Setenv("HWY_NO_SIMD", "yes")
	if !NoSimdEnv() {
		t.Error("HWY_NO_SIMD=yes reported as unset")
	}
}

func TestIs32Bit(t *testing.T) {
	type price float32
	if !Is32Bit[float32]() || !Is32Bit[price]() {
		t.Error("Is32Bit false for 32-bit types")
	}
	if Is32Bit[float64]() {
		t.Error("Is32Bit true for float64")
	}
}
