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

// Package pricer prices batches of European options and their Greeks with
// the closed-form Black-Scholes model.
//
// A batch is an OptionPricing record of index-aligned input and output
// slices. Two engines fill the outputs in place: ScalarEngine walks one
// option at a time and serves as the reference; VectorEngine strides over
// the batch in hwy vectors and must agree with it to 1e-5 in float64.
// Both are generic over float32 and float64.
//
//	op := pricer.NewOptionPricing(spots, strikes, rates, vols, expiries, yields)
//	pricer.NewVectorEngine[float64]().PriceCall(op)
//	fmt.Println(op.Prices, op.Deltas)
//
// Engines never validate inputs; call OptionPricing.Validate first when the
// data is untrusted. Degenerate inputs such as zero volatility produce
// Inf or NaN outputs.
package pricer
