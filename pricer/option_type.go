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
	"errors"
	"fmt"
	"strings"
)

// OptionType selects the payoff of a whole batch. A batch is priced as all
// calls or all puts; mixed batches must be partitioned by the caller.
type OptionType int

const (
	Call OptionType = iota
	Put
)

func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("OptionType(%d)", int(t))
	}
}

// ErrUnknownOptionType is returned by ParseOptionType.
var ErrUnknownOptionType = errors.New("unknown option type")

// ParseOptionType parses "call"/"c" or "put"/"p", case-insensitively.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOptionType, s)
}

// Precision names the floating point width an engine is instantiated with.
type Precision int

const (
	Float32 Precision = 32
	Float64 Precision = 64
)

func (p Precision) String() string {
	switch p {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ErrUnknownPrecision is returned by ParsePrecision.
var ErrUnknownPrecision = errors.New("unknown precision")

// ParsePrecision accepts "32", "f32", "float32", "64", "f64" or "float64".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "32", "f32", "float32", "single":
		return Float32, nil
	case "64", "f64", "float64", "double":
		return Float64, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPrecision, s)
}
