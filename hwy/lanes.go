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

// MapLanes applies a scalar function to every active lane of v.
//
// Operations with no vector form (erfc, for one) take this detour: the
// vector is spilled to a scratch buffer of exactly v.NumLanes() elements,
// fn runs on each element, and the buffer is reloaded. Lane i of the result
// is always fn(lane i of v). The buffer lives on the stack.
func MapLanes[T Floats](v Vec[T], fn func(T) T) Vec[T] {
	var scratch [MaxLaneCount]T
	buf := scratch[:v.NumLanes()]
	Store(v, buf)
	for i, x := range buf {
		buf[i] = fn(x)
	}
	return LoadN(buf, len(buf))
}
