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

// Package value implements the multi-asset value algebra: addition,
// subtraction, and coverage comparison over bundles of Cardano assets keyed
// by unit ("lovelace" for ADA, policy-id+hex-name for everything else).
// Quantities are arbitrary-precision to avoid the float64 precision loss
// that would otherwise corrupt token supplies.
package value

import (
	"math/big"
	"sort"

	"github.com/mgpai22/cardano-txbuilder-go/internal/common"
)

// LovelaceUnit is the distinguished unit string for ADA.
const LovelaceUnit = "lovelace"

// Value is an immutable-by-convention bundle of asset quantities. Callers
// should treat the zero Value{} as empty and use Add/Sub to derive new
// values rather than mutating Amounts directly from outside this package.
type Value struct {
	Amounts map[string]*big.Int
}

// New returns an empty Value.
func New() Value {
	return Value{Amounts: map[string]*big.Int{}}
}

// NewLovelace returns a Value holding only the given lovelace quantity.
func NewLovelace(qty int64) Value {
	v := New()
	v.Amounts[LovelaceUnit] = big.NewInt(qty)
	return v
}

// NewFromAssets builds a Value from a unit -> quantity map. The input map is
// copied; it is safe to mutate it after this call.
func NewFromAssets(assets map[string]*big.Int) Value {
	v := New()
	for unit, qty := range assets {
		if qty == nil {
			continue
		}
		v.Amounts[unit] = new(big.Int).Set(qty)
	}
	return v
}

// Get returns the quantity of unit in v, or zero if absent.
func (v Value) Get(unit string) *big.Int {
	if qty, ok := v.Amounts[unit]; ok {
		return new(big.Int).Set(qty)
	}
	return big.NewInt(0)
}

// Lovelace returns the lovelace quantity in v as a uint64, clamped to zero
// if negative (negative lovelace only appears in intermediate "required"
// computations, never in a real balance).
func (v Value) Lovelace() uint64 {
	qty := v.Get(LovelaceUnit)
	if qty.Sign() <= 0 {
		return 0
	}
	return qty.Uint64()
}

// Units returns the sorted list of units present in v with a non-zero
// quantity. Sorting makes iteration order deterministic for tests and for
// any code that serializes a Value.
func (v Value) Units() []string {
	units := make([]string, 0, len(v.Amounts))
	for unit, qty := range v.Amounts {
		if qty != nil && qty.Sign() != 0 {
			units = append(units, unit)
		}
	}
	sort.Strings(units)
	return units
}

// IsEmpty returns true if every unit in v has a zero quantity.
func (v Value) IsEmpty() bool {
	return len(v.Units()) == 0
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	return NewFromAssets(v.Amounts)
}

// Add returns v + other, a new Value. Neither operand is mutated.
func (v Value) Add(other Value) Value {
	result := v.Clone()
	for unit, qty := range other.Amounts {
		cur, ok := result.Amounts[unit]
		if !ok {
			cur = big.NewInt(0)
		}
		result.Amounts[unit] = new(big.Int).Add(cur, qty)
	}
	return result
}

// Sub returns v - other, a new Value. Resulting quantities may be negative;
// callers computing a "required assets" vector rely on this (see
// internal/selection), but a Value representing an actual UTxO or output
// balance should never go negative.
func (v Value) Sub(other Value) Value {
	result := v.Clone()
	for unit, qty := range other.Amounts {
		cur, ok := result.Amounts[unit]
		if !ok {
			cur = big.NewInt(0)
		}
		result.Amounts[unit] = new(big.Int).Sub(cur, qty)
	}
	return result
}

// Negate returns -v, a new Value.
func (v Value) Negate() Value {
	result := New()
	for unit, qty := range v.Amounts {
		result.Amounts[unit] = new(big.Int).Neg(qty)
	}
	return result
}

// GreaterOrEqual returns true if v has at least as much of every unit in
// other. Units present in v but not in other are ignored (extra value is
// always allowed, matching apollo's Value.GreaterOrEqual semantics).
func (v Value) GreaterOrEqual(other Value) bool {
	for unit, qty := range other.Amounts {
		if qty.Sign() <= 0 {
			continue
		}
		if v.Get(unit).Cmp(qty) < 0 {
			return false
		}
	}
	return true
}

// HasAnyAsset reports whether v contains a positive quantity of any of the
// given units; lovelace in units is ignored. Used by the keepRelevant selection strategy to
// decide whether a candidate UTxO is "relevant".
func (v Value) HasAnyAsset(units map[string]struct{}) bool {
	for unit := range units {
		if unit == LovelaceUnit {
			continue
		}
		if v.Get(unit).Sign() > 0 {
			return true
		}
	}
	return false
}

// ToAssetClassMap decodes every non-lovelace unit in v into an AssetClass,
// returning a policy/name-keyed view of the same quantities. This is the
// shape the codec layer needs to group assets by policy when assembling a
// MultiAsset for the final CBOR transaction body.
func (v Value) ToAssetClassMap() (map[common.AssetClass]*big.Int, error) {
	out := map[common.AssetClass]*big.Int{}
	for unit, qty := range v.Amounts {
		if unit == LovelaceUnit || qty.Sign() == 0 {
			continue
		}
		ac, err := common.AssetClassFromUnit(unit)
		if err != nil {
			return nil, err
		}
		out[ac] = new(big.Int).Set(qty)
	}
	return out, nil
}

// MinUTxOLovelace estimates the minimum lovelace an output carrying v must
// hold, using the post-Alonzo coinsPerUTxOByte rule: minLovelace =
// coinsPerUtxoByte * (outputOverheadBytes + sizeOfAssets). This mirrors
// apollo's MinLovelacePostAlonzo helper but works from our Value rather
// than a fully serialized ledger output, since at builder time the output
// hasn't been CBOR-encoded yet; the exact byte count is the external
// Codec's job once the draft body is finalized.
func MinUTxOLovelace(v Value, coinsPerUTxOByte uint64, approxOutputOverheadBytes int64) uint64 {
	assetBytes := int64(0)
	for _, unit := range v.Units() {
		if unit == LovelaceUnit {
			continue
		}
		// Rough per-asset overhead: 28-byte policy id + name bytes + CBOR
		// framing.
		assetBytes += 28 + int64(len(unit)-56)/2 + 12
	}
	size := approxOutputOverheadBytes + assetBytes
	return coinsPerUTxOByte * uint64(size)
}
