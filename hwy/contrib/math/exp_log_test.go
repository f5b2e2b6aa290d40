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

package math

import (
	stdmath "math"
	"testing"

	"github.com/fast-option-pricer/fop/hwy"
)

func TestExp_Float64(t *testing.T) {
	inputs := []float64{0, 1, -1, 0.5, -0.5, 2.3, -7.25, 20, -20, 300, -300, 700}
	output := make([]float64, len(inputs))
	Exp(inputs, output)

	for i, x := range inputs {
		want := stdmath.Exp(x)
		if rel := stdmath.Abs(output[i]-want) / want; rel > 5e-14 {
			t.Errorf("Exp(%v) = %v, want %v (rel err %g)", x, output[i], want, rel)
		}
	}
}

func TestExp_Float32(t *testing.T) {
	inputs := []float32{0, 1, -1, 0.5, -0.5, 2.3, -7.25, 10, -10, 80, -80}
	output := make([]float32, len(inputs))
	Exp(inputs, output)

	for i, x := range inputs {
		want := stdmath.Exp(float64(x))
		if rel := stdmath.Abs(float64(output[i])-want) / want; rel > 1e-6 {
			t.Errorf("Exp(%v) = %v, want %v (rel err %g)", x, output[i], want, rel)
		}
	}
}

func TestExpSpecialCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		check func(float64) bool
	}{
		{"overflow", 1000, func(v float64) bool { return stdmath.IsInf(v, 1) }},
		{"+Inf", stdmath.Inf(1), func(v float64) bool { return stdmath.IsInf(v, 1) }},
		{"underflow", -1000, func(v float64) bool { return v == 0 }},
		{"-Inf", stdmath.Inf(-1), func(v float64) bool { return v == 0 }},
		{"NaN", stdmath.NaN(), stdmath.IsNaN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseExpVec(hwy.SetN(tt.input, 2)).Lane(0)
			if !tt.check(got) {
				t.Errorf("Exp(%v) = %v", tt.input, got)
			}
		})
	}

	got32 := BaseExpVec(hwy.SetN[float32](100, 4)).Lane(0)
	if !stdmath.IsInf(float64(got32), 1) {
		t.Errorf("float32 Exp(100) = %v, want +Inf", got32)
	}
}

func TestLog_Float64(t *testing.T) {
	inputs := []float64{1, 2, 0.5, stdmath.E, 10, 0.1, 1e-10, 1e10, 0.7, 1.4142, 123.456}
	output := make([]float64, len(inputs))
	Log(inputs, output)

	for i, x := range inputs {
		want := stdmath.Log(x)
		if diff := stdmath.Abs(output[i] - want); diff > 1e-14*max(1, stdmath.Abs(want)) {
			t.Errorf("Log(%v) = %v, want %v (diff %g)", x, output[i], want, diff)
		}
	}
}

// math.Log is not accurate for subnormals on every GOARCH, so the reference
// is assembled from the normalized fraction and exponent.
func TestLogSubnormal(t *testing.T) {
	inputs := []float64{5e-320, 4.9e-324, 1e-310}
	output := make([]float64, len(inputs))
	Log(inputs, output)

	for i, x := range inputs {
		frac, exp := stdmath.Frexp(x)
		want := stdmath.Log(frac) + float64(exp)*stdmath.Ln2
		if diff := stdmath.Abs(output[i] - want); diff > 1e-14*stdmath.Abs(want) {
			t.Errorf("Log(%v) = %v, want %v (diff %g)", x, output[i], want, diff)
		}
	}
	if got, want := output[0], -735.2178029785398; stdmath.Abs(got-want) > 1e-11 {
		t.Errorf("Log(5e-320) = %v, want %v", got, want)
	}
}

func TestLog_Float32(t *testing.T) {
	inputs := []float32{1, 2, 0.5, 10, 0.1, 1e-10, 1e10, 0.7, 1.4142, 123.456}
	output := make([]float32, len(inputs))
	Log(inputs, output)

	for i, x := range inputs {
		want := stdmath.Log(float64(x))
		if diff := stdmath.Abs(float64(output[i]) - want); diff > 1e-6*max(1, stdmath.Abs(want)) {
			t.Errorf("Log(%v) = %v, want %v (diff %g)", x, output[i], want, diff)
		}
	}
}

func TestLogSpecialCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		check func(float64) bool
	}{
		{"zero", 0, func(v float64) bool { return stdmath.IsInf(v, -1) }},
		{"negative", -2, stdmath.IsNaN},
		{"+Inf", stdmath.Inf(1), func(v float64) bool { return stdmath.IsInf(v, 1) }},
		{"NaN", stdmath.NaN(), stdmath.IsNaN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseLogVec(hwy.SetN(tt.input, 2)).Lane(0)
			if !tt.check(got) {
				t.Errorf("Log(%v) = %v", tt.input, got)
			}
		})
	}
}

func TestExpLogInverse(t *testing.T) {
	in := make([]float64, 37)
	for i := range in {
		in[i] = 0.05 + float64(i)*3.7
	}
	logs := make([]float64, len(in))
	back := make([]float64, len(in))
	Log(in, logs)
	Exp(logs, back)

	for i, x := range in {
		if rel := stdmath.Abs(back[i]-x) / x; rel > 1e-13 {
			t.Errorf("Exp(Log(%v)) = %v", x, back[i])
		}
	}
}

func TestSliceKernelsHandleShortOutput(t *testing.T) {
	in := []float64{0, 0, 0, 0, 0}
	out := []float64{-1, -1, -1}
	Exp(in, out)
	for i, v := range out {
		if v != 1 {
			t.Errorf("out[%d] = %v, want 1", i, v)
		}
	}
}

func BenchmarkBaseExpVec_Float64(b *testing.B) {
	x := hwy.Set[float64](-0.75)
	var sink hwy.Vec[float64]
	for b.Loop() {
		sink = BaseExpVec(x)
	}
	_ = sink
}

func BenchmarkBaseLogVec_Float32(b *testing.B) {
	x := hwy.Set[float32](1.75)
	var sink hwy.Vec[float32]
	for b.Loop() {
		sink = BaseLogVec(x)
	}
	_ = sink
}
