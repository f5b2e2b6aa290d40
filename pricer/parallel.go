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

import (
	"github.com/fast-option-pricer/fop/hwy"
	"github.com/fast-option-pricer/fop/hwy/contrib/workerpool"
)

// PriceParallel shards op into disjoint views and prices each on pool with
// engine. Shard boundaries fall on multiples of the engine's lane count,
// so only the final shard can end in a partial vector. It blocks until
// every shard is priced.
func PriceParallel[T hwy.Floats](pool *workerpool.Pool, engine Engine[T], op *OptionPricing[T], kind OptionType) {
	align := 1
	if la, ok := engine.(laneAligned); ok {
		align = la.Lanes()
	}
	pool.ParallelForAligned(op.NumOptions, align, func(start, end int) {
		engine.Price(op.Slice(start, end), kind)
	})
}
