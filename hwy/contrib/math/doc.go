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

// Package math provides SIMD transcendental math functions.
// This package corresponds to Google Highway's hwy/contrib/math directory.
//
// # Vector Functions
//
// Register-level kernels for composing larger vector algorithms without
// leaving hwy.Vec:
//   - BaseExpVec[T](x Vec[T]) Vec[T] - e^x
//   - BaseLogVec[T](x Vec[T]) Vec[T] - ln(x)
//
// # Slice Functions
//
// Bulk helpers that stride over slices and handle the tail:
//   - Exp[T](input, output []T)
//   - Log[T](input, output []T)
//
// Both precisions use their own coefficient tables: float64 kernels carry
// more polynomial terms than float32 kernels.
package math
