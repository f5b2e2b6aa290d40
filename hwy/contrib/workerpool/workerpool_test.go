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

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAligned(t *testing.T) {
	tests := []struct {
		name     string
		workers  int
		n, align int
	}{
		{"even blocks", 4, 64, 8},
		{"ragged tail", 4, 101, 8},
		{"fewer blocks than workers", 8, 20, 8},
		{"single block", 4, 5, 8},
		{"align one", 3, 10, 1},
		{"non-positive align", 3, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := New(tt.workers)
			defer pool.Close()

			var mu sync.Mutex
			covered := make([]int, tt.n)
			align := max(tt.align, 1)
			pool.ParallelForAligned(tt.n, tt.align, func(start, end int) {
				if start%align != 0 {
					t.Errorf("range start %d not a multiple of %d", start, align)
				}
				mu.Lock()
				defer mu.Unlock()
				for i := start; i < end; i++ {
					covered[i]++
				}
			})

			for i, c := range covered {
				if c != 1 {
					t.Errorf("index %d covered %d times", i, c)
				}
			}
		})
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls atomic.Int32
	pool.ParallelFor(1, func(start, end int) {
		calls.Add(1)
		if start != 0 || end != 1 {
			t.Errorf("got range [%d, %d), want [0, 1)", start, end)
		}
	})
	if calls.Load() != 1 {
		t.Errorf("fn called %d times, want 1", calls.Load())
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("fn should not be called for n=0")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAligned(n, 8, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i
		}
	})

	for i := range n {
		if results[i] != i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i)
		}
	}
}

func BenchmarkParallelForAligned(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float64, 1<<16)
	for b.Loop() {
		pool.ParallelForAligned(len(data), 8, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}

func BenchmarkPoolOverhead(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(runtime.GOMAXPROCS(0), func(start, end int) {})
	}
}
