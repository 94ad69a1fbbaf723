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

package selection

import (
	"math/big"
	"sort"

	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

// largestFirst only considers lovelace: sort candidates by lovelace
// descending (stable, so ties resolve by original pool order) and consume
// until the lovelace requirement is covered.
func largestFirst(pool []UTxO, req value.Value) ([]UTxO, error) {
	sorted := sortByUnitDesc(pool, value.LovelaceUnit)
	remaining := req.Get(value.LovelaceUnit)

	var selected []UTxO
	for _, u := range sorted {
		if remaining.Sign() <= 0 {
			break
		}
		selected = append(selected, u)
		remaining.Sub(remaining, u.Amount.Get(value.LovelaceUnit))
	}
	if remaining.Sign() > 0 {
		return nil, shortfallError(req, selected)
	}
	return selected, nil
}

// largestFirstMultiAsset handles every required unit except lovelace first
// (each sorted by that unit's own quantity descending), then lovelace.
// Selecting a UTxO reduces the requirement across all of its units, not
// just the one currently being satisfied.
func largestFirstMultiAsset(pool []UTxO, req value.Value) ([]UTxO, error) {
	remaining := req.Clone()
	available := append([]UTxO{}, pool...)
	var selected []UTxO

	for _, unit := range req.Units() {
		if unit == value.LovelaceUnit {
			continue
		}
		for remaining.Get(unit).Sign() > 0 {
			sorted := sortByUnitDesc(available, unit)
			if len(sorted) == 0 || sorted[0].Amount.Get(unit).Sign() <= 0 {
				break
			}
			u := sorted[0]
			selected = append(selected, u)
			remaining = remaining.Sub(u.Amount)
			available = removeUTxO(available, u)
		}
	}

	for remaining.Get(value.LovelaceUnit).Sign() > 0 {
		sorted := sortByUnitDesc(available, value.LovelaceUnit)
		if len(sorted) == 0 {
			break
		}
		u := sorted[0]
		selected = append(selected, u)
		remaining = remaining.Sub(u.Amount)
		available = removeUTxO(available, u)
	}

	if !coversAll(selected, req) {
		return nil, shortfallError(req, selected)
	}
	return selected, nil
}

// keepRelevant prefilters to UTxOs holding any required non-ADA unit, then
// runs lovelace-only largestFirst over the prefiltered set followed by the
// rest of the pool. It falls through from the relevant-prefilter step
// straight into largestFirst without separately covering non-ADA units;
// that is deliberate, not an oversight. Final coverage is still verified,
// so a pool that doesn't happen to satisfy every unit through this
// reordering fails with a SelectionError rather than silently returning an
// incomplete input set.
func keepRelevant(pool []UTxO, req value.Value) ([]UTxO, error) {
	requiredUnits := map[string]struct{}{}
	for _, unit := range req.Units() {
		if unit != value.LovelaceUnit {
			requiredUnits[unit] = struct{}{}
		}
	}

	var relevant, rest []UTxO
	for _, u := range pool {
		if u.Amount.HasAnyAsset(requiredUnits) {
			relevant = append(relevant, u)
		} else {
			rest = append(rest, u)
		}
	}
	ordered := append(sortByUnitDesc(relevant, value.LovelaceUnit), sortByUnitDesc(rest, value.LovelaceUnit)...)
	remaining := req.Get(value.LovelaceUnit)

	var selected []UTxO
	for _, u := range ordered {
		if remaining.Sign() <= 0 {
			break
		}
		selected = append(selected, u)
		remaining.Sub(remaining, u.Amount.Get(value.LovelaceUnit))
	}
	if !coversAll(selected, req) {
		return nil, shortfallError(req, selected)
	}
	return selected, nil
}

// experimental is the default strategy: for each required unit, smallest
// availability first, pick the smallest single UTxO that fully covers that
// unit's remaining requirement; if none does, fall back to consuming
// largest-first for that unit. This tends to minimize the number of inputs
// added relative to the other strategies. Lovelace is handled last via
// plain largestFirst.
func experimental(pool []UTxO, req value.Value) ([]UTxO, error) {
	remaining := req.Clone()
	available := append([]UTxO{}, pool...)
	var selected []UTxO

	nonAdaUnits := req.Units()
	sort.Slice(nonAdaUnits, func(i, j int) bool {
		return totalOf(pool, nonAdaUnits[i]).Cmp(totalOf(pool, nonAdaUnits[j])) < 0
	})

	for _, unit := range nonAdaUnits {
		if unit == value.LovelaceUnit {
			continue
		}
		for remaining.Get(unit).Sign() > 0 {
			need := remaining.Get(unit)
			candidate, ok := smallestCovering(available, unit, need)
			if ok {
				selected = append(selected, candidate)
				remaining = remaining.Sub(candidate.Amount)
				available = removeUTxO(available, candidate)
				continue
			}
			sorted := sortByUnitDesc(available, unit)
			if len(sorted) == 0 || sorted[0].Amount.Get(unit).Sign() <= 0 {
				break
			}
			u := sorted[0]
			selected = append(selected, u)
			remaining = remaining.Sub(u.Amount)
			available = removeUTxO(available, u)
		}
	}

	for remaining.Get(value.LovelaceUnit).Sign() > 0 {
		sorted := sortByUnitDesc(available, value.LovelaceUnit)
		if len(sorted) == 0 {
			break
		}
		u := sorted[0]
		selected = append(selected, u)
		remaining = remaining.Sub(u.Amount)
		available = removeUTxO(available, u)
	}

	if !coversAll(selected, req) {
		return nil, shortfallError(req, selected)
	}
	return selected, nil
}

// --- shared helpers ---

func sortByUnitDesc(pool []UTxO, unit string) []UTxO {
	sorted := append([]UTxO{}, pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.Get(unit).Cmp(sorted[j].Amount.Get(unit)) > 0
	})
	return sorted
}

// smallestCovering returns the candidate with the smallest quantity of unit
// that is still >= need, or ok=false if no single candidate covers it. Ties
// resolve by original pool order.
func smallestCovering(pool []UTxO, unit string, need *big.Int) (UTxO, bool) {
	var best UTxO
	found := false
	for _, u := range pool {
		qty := u.Amount.Get(unit)
		if qty.Cmp(need) < 0 {
			continue
		}
		if !found || qty.Cmp(best.Amount.Get(unit)) < 0 {
			best = u
			found = true
		}
	}
	return best, found
}

func removeUTxO(pool []UTxO, target UTxO) []UTxO {
	out := make([]UTxO, 0, len(pool))
	removed := false
	for _, u := range pool {
		if !removed && u.ID() == target.ID() {
			removed = true
			continue
		}
		out = append(out, u)
	}
	return out
}

func (u UTxO) ID() idKey {
	return idKey{TxHash: u.TxHash, TxIndex: u.TxIndex}
}

type idKey struct {
	TxHash  string
	TxIndex uint32
}

// totalOf sums a unit's quantity across the whole pool, used only to order
// required units from least-available to most-available.
func totalOf(pool []UTxO, unit string) *big.Int {
	total := big.NewInt(0)
	for _, u := range pool {
		total.Add(total, u.Amount.Get(unit))
	}
	return total
}

func coversAll(selected []UTxO, req value.Value) bool {
	total := value.New()
	for _, u := range selected {
		total = total.Add(u.Amount)
	}
	return total.GreaterOrEqual(req)
}

func shortfallError(req value.Value, selected []UTxO) error {
	total := value.New()
	for _, u := range selected {
		total = total.Add(u.Amount)
	}
	diff := req.Sub(total)
	shortfall := value.New()
	for _, unit := range diff.Units() {
		if qty := diff.Get(unit); qty.Sign() > 0 {
			shortfall.Amounts[unit] = qty
		}
	}
	return &Error{Shortfall: shortfall}
}
