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
	"github.com/fast-option-pricer/fop/internal/batchgen"
)

func newRecord[T hwy.Floats](b batchgen.Batch[T]) *OptionPricing[T] {
	return NewOptionPricing(b.Underlyings, b.Strikes, b.RiskFreeRates, b.Volatilities, b.TimesToExpiry, b.DividendYields)
}

func randomRecord[T hwy.Floats](n int, seed uint64) *OptionPricing[T] {
	return newRecord(batchgen.Generate[T](n, seed, batchgen.DefaultRanges()))
}

// batchSizes covers empty, sub-vector, exact and ragged batches for every
// lane count up to 16.
var batchSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 33, 100, 1001}
