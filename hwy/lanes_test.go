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

func TestMapLanesKeepsLanePositions(t *testing.T) {
	for _, lanes := range []int{1, 2, 4, 8, 16} {
		in := make([]float32, lanes)
		for i := range in {
			in[i] = float32(i)
		}
		got := MapLanes(LoadN(in, lanes), func(x float32) float32 { return 10*x + 1 })

		if got.NumLanes() != lanes {
			t.Fatalf("lanes=%d: result has %d lanes", lanes, got.NumLanes())
		}
		for i := range lanes {
			if want := float32(10*i + 1); got.Lane(i) != want {
				t.Errorf("lanes=%d: lane %d = %v, want %v", lanes, i, got.Lane(i), want)
			}
		}
	}
}

func BenchmarkMapLanes(b *testing.B) {
	v := Set[float64](0.25)
	var sink Vec[float64]
	for b.Loop() {
		sink = MapLanes(v, func(x float64) float64 { return x * x })
	}
	_ = sink
}
