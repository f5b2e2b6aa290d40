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

//go:build !(amd64 && goexperiment.simd)

package hwy

// NativeOps reports whether element-wise ops run on archsimd registers.
// Without GOEXPERIMENT=simd on amd64 every op is the pure Go loop.
func NativeOps() bool {
	return false
}

func nativeBinary[T Floats](binaryOp, *Vec[T], *Vec[T], *Vec[T]) bool {
	return false
}

func nativeMulAdd[T Floats](_, _, _, _ *Vec[T]) bool {
	return false
}

func nativeSqrt[T Floats](_, _ *Vec[T]) bool {
	return false
}
