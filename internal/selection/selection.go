// Copyright 2026 Blink Labs Software
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

// Package selection implements the four UTxO-selection strategies that pick
// inputs covering a required multi-asset value plus a fee/min-utxo
// threshold. All four are deterministic and stable: ties in sort order
// resolve by original pool order.
package selection

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

// Strategy names one of the four selection algorithms.
type Strategy int

const (
	// LargestFirst only considers lovelace: sort candidates by lovelace
	// descending, consume until the lovelace requirement is covered.
	LargestFirst Strategy = iota
	// LargestFirstMultiAsset handles each required non-ADA unit first (by
	// that unit's quantity descending), then lovelace.
	LargestFirstMultiAsset
	// KeepRelevant prefilters to UTxOs containing any required non-ADA
	// unit, then runs LargestFirst over the prefiltered set plus the rest.
	KeepRelevant
	// Experimental (the default) picks, for each required unit from
	// least-available to most-available, the smallest UTxO that fully
	// covers it, falling back to largest-first if none does. It tends to
	// produce fewer input UTxOs than the other strategies.
	Experimental
)

func (s Strategy) String() string {
	switch s {
	case LargestFirst:
		return "largestFirst"
	case LargestFirstMultiAsset:
		return "largestFirstMultiAsset"
	case KeepRelevant:
		return "keepRelevant"
	case Experimental:
		return "experimental"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a config/CLI string onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "largestFirst":
		return LargestFirst, nil
	case "largestFirstMultiAsset":
		return LargestFirstMultiAsset, nil
	case "keepRelevant":
		return KeepRelevant, nil
	case "experimental", "":
		return Experimental, nil
	default:
		return Experimental, fmt.Errorf("selection: unknown strategy %q", s)
	}
}

// UTxO is the minimal shape selection needs: an identity and a value. The
// txbuilder package converts its own UTxO type to this one via
// toSelectionUTxOs.
type UTxO struct {
	TxHash  string
	TxIndex uint32
	Address string
	Amount  value.Value
}

// Error is returned when the candidate pool cannot cover the required
// assets; it names the per-unit shortfall still outstanding.
type Error struct {
	Shortfall value.Value
}

func (e *Error) Error() string {
	units := e.Shortfall.Units()
	return fmt.Sprintf("selection: insufficient funds to cover units %v", units)
}

// Select runs strategy over pool to cover required (a possibly-signed
// per-unit requirement; only positive entries need covering), with
// threshold lovelace added on top of the lovelace requirement. It never
// evaluates fees itself — threshold is the caller's padded fee estimate.
func Select(
	strategy Strategy,
	pool []UTxO,
	required value.Value,
	threshold uint64,
) ([]UTxO, error) {
	req := positiveRequirement(required, threshold)
	if req.IsEmpty() {
		return nil, nil
	}

	switch strategy {
	case LargestFirst:
		return largestFirst(pool, req)
	case LargestFirstMultiAsset:
		return largestFirstMultiAsset(pool, req)
	case KeepRelevant:
		return keepRelevant(pool, req)
	case Experimental:
		return experimental(pool, req)
	default:
		return largestFirst(pool, req)
	}
}

// positiveRequirement clamps every unit's requirement to >= 0 and adds
// threshold to the lovelace requirement.
func positiveRequirement(required value.Value, threshold uint64) value.Value {
	out := value.New()
	for _, unit := range required.Units() {
		qty := required.Get(unit)
		if qty.Sign() <= 0 {
			continue
		}
		out.Amounts[unit] = qty
	}
	lovelace := out.Get(value.LovelaceUnit)
	lovelace.Add(lovelace, new(big.Int).SetUint64(threshold))
	out.Amounts[value.LovelaceUnit] = lovelace
	return out
}
