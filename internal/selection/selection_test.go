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

package selection_test

import (
	"math/big"
	"testing"

	"github.com/mgpai22/cardano-txbuilder-go/internal/selection"
	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

func lovelaceUTxO(hash string, idx uint32, qty int64) selection.UTxO {
	return selection.UTxO{
		TxHash:  hash,
		TxIndex: idx,
		Amount:  value.NewLovelace(qty),
	}
}

func totalOf(selected []selection.UTxO) value.Value {
	total := value.New()
	for _, u := range selected {
		total = total.Add(u.Amount)
	}
	return total
}

// TestLargestFirstSingleUTxOSufficient covers required 6,000,000 lovelace,
// threshold 0, pool [3M, 5M, 10M] -> the single 10M UTxO covers it alone.
func TestLargestFirstSingleUTxOSufficient(t *testing.T) {
	pool := []selection.UTxO{
		lovelaceUTxO("u1", 0, 3_000_000),
		lovelaceUTxO("u2", 0, 5_000_000),
		lovelaceUTxO("u3", 0, 10_000_000),
	}
	required := value.NewLovelace(6_000_000)

	selected, err := selection.Select(selection.LargestFirst, pool, required, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 1 || selected[0].TxHash != "u3" {
		t.Fatalf("expected only u3 selected, got %+v", selected)
	}
}

// TestLargestFirstOrderOnTieBreak covers the pool [3M, 5M] case: selection
// should prefer 5M first, then 3M, in that order.
func TestLargestFirstOrdersByLovelaceDescending(t *testing.T) {
	pool := []selection.UTxO{
		lovelaceUTxO("a", 0, 3_000_000),
		lovelaceUTxO("b", 0, 5_000_000),
	}
	required := value.NewLovelace(6_000_000)

	selected, err := selection.Select(selection.LargestFirst, pool, required, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected both UTxOs selected, got %+v", selected)
	}
	if selected[0].TxHash != "b" || selected[1].TxHash != "a" {
		t.Fatalf("expected order [b, a], got [%s, %s]", selected[0].TxHash, selected[1].TxHash)
	}
}

// TestSelectionSufficiency checks that whenever Select succeeds, the
// selected set's total covers required per unit, for the three strategies
// that take native assets into account (LargestFirst is run but not
// asserted on).
func TestSelectionSufficiency(t *testing.T) {
	policy := "11111111111111111111111111111111111111111111111111111111"
	unit := policy + "74657374"

	pool := []selection.UTxO{
		{TxHash: "a", Amount: value.NewFromAssets(map[string]*big.Int{
			value.LovelaceUnit: big.NewInt(2_000_000),
		})},
		{TxHash: "b", Amount: value.NewFromAssets(map[string]*big.Int{
			value.LovelaceUnit: big.NewInt(3_000_000),
			unit:                big.NewInt(50),
		})},
		{TxHash: "c", Amount: value.NewFromAssets(map[string]*big.Int{
			value.LovelaceUnit: big.NewInt(10_000_000),
		})},
	}
	required := value.NewFromAssets(map[string]*big.Int{
		value.LovelaceUnit: big.NewInt(4_000_000),
		unit:                big.NewInt(10),
	})

	strategies := []selection.Strategy{
		selection.LargestFirst,
		selection.LargestFirstMultiAsset,
		selection.KeepRelevant,
		selection.Experimental,
	}
	for _, strat := range strategies {
		selected, err := selection.Select(strat, pool, required, 0)
		if strat == selection.LargestFirst {
			// largestFirst only ever looks at lovelace; it is not expected
			// to pick up the native-asset requirement from pool[b] unless
			// doing so is incidental to lovelace-only ordering, so it is not
			// asserted on here.
			_ = selected
			_ = err
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", strat, err)
		}
		total := totalOf(selected)
		if !total.GreaterOrEqual(required) {
			t.Fatalf("%s: selected total %+v does not cover required %+v", strat, total.Amounts, required.Amounts)
		}
	}
}

func TestInsufficientPoolFails(t *testing.T) {
	pool := []selection.UTxO{lovelaceUTxO("a", 0, 1_000_000)}
	required := value.NewLovelace(5_000_000)

	_, err := selection.Select(selection.Experimental, pool, required, 0)
	if err == nil {
		t.Fatal("expected a selection error")
	}
	var selErr *selection.Error
	if !asSelectionError(err, &selErr) {
		t.Fatalf("expected *selection.Error, got %T", err)
	}
}

func asSelectionError(err error, target **selection.Error) bool {
	se, ok := err.(*selection.Error)
	if !ok {
		return false
	}
	*target = se
	return true
}

func TestEmptyRequirementSelectsNothing(t *testing.T) {
	pool := []selection.UTxO{lovelaceUTxO("a", 0, 1_000_000)}
	selected, err := selection.Select(selection.Experimental, pool, value.New(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 0 {
		t.Fatalf("expected no selection, got %+v", selected)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]selection.Strategy{
		"largestFirst":           selection.LargestFirst,
		"largestFirstMultiAsset": selection.LargestFirstMultiAsset,
		"keepRelevant":           selection.KeepRelevant,
		"experimental":           selection.Experimental,
		"":                       selection.Experimental,
	}
	for in, want := range cases {
		got, err := selection.ParseStrategy(in)
		if err != nil {
			t.Fatalf("ParseStrategy(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseStrategy(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := selection.ParseStrategy("bogus"); err == nil {
		t.Fatal("expected an error for an unknown strategy name")
	}
}
