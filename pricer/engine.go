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

package pricer

import "github.com/fast-option-pricer/fop/hwy"

// Engine prices a whole batch in place. Implementations are synchronous and
// hold no per-call state, so independent records may be priced from
// different goroutines.
type Engine[T hwy.Floats] interface {
	Price(op *OptionPricing[T], kind OptionType)
	Name() string
}

// laneAligned is implemented by engines that stride in fixed lane counts.
type laneAligned interface {
	Lanes() int
}

var (
	_ Engine[float32] = (*ScalarEngine[float32])(nil)
	_ Engine[float64] = (*ScalarEngine[float64])(nil)
	_ Engine[float32] = (*VectorEngine[float32])(nil)
	_ Engine[float64] = (*VectorEngine[float64])(nil)
)
