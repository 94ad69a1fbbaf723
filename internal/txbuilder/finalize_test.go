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

package txbuilder_test

import (
	"testing"

	"github.com/mgpai22/cardano-txbuilder-go/internal/selection"
	"github.com/mgpai22/cardano-txbuilder-go/internal/txbuilder"
	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

// TestSelectionCoversOutputShortfall wires UTxO Selection into Finalize: no
// inputs are listed explicitly, so the entire output value must be drawn
// from the extra-input pool.
func TestSelectionCoversOutputShortfall(t *testing.T) {
	pool := []txbuilder.UTxO{
		{TxHash: "p1", TxIndex: 0, Address: addrA, Amount: value.NewLovelace(3_000_000)},
		{TxHash: "p2", TxIndex: 0, Address: addrA, Amount: value.NewLovelace(10_000_000)},
	}

	body, err := txbuilder.New().
		ChangeAddress(addrA).
		TxOut(addrB, value.NewLovelace(6_000_000)).
		SelectUtxosFrom(pool, selection.LargestFirst, 0, true).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Inputs) != 1 || body.Inputs[0].TxHash != "p2" {
		t.Fatalf("expected selection to pick p2 alone, got %+v", body.Inputs)
	}
}

// TestSelectionShortfallSurfacesAsSelectionError covers the case where the
// extra-input pool cannot cover the output value.
func TestSelectionShortfallSurfacesAsSelectionError(t *testing.T) {
	pool := []txbuilder.UTxO{
		{TxHash: "p1", TxIndex: 0, Address: addrA, Amount: value.NewLovelace(1_000_000)},
	}

	_, err := txbuilder.New().
		TxOut(addrB, value.NewLovelace(6_000_000)).
		SelectUtxosFrom(pool, selection.LargestFirst, 0, true).
		Finalize()
	if err == nil {
		t.Fatal("expected a SelectionError")
	}
	if _, ok := err.(*txbuilder.SelectionError); !ok {
		t.Fatalf("expected *txbuilder.SelectionError, got %T: %v", err, err)
	}
}

// TestSelectionSkipsAlreadyCoveredRequirement ensures an explicitly-listed
// input that already covers the output leaves nothing for Selection to do.
func TestSelectionSkipsAlreadyCoveredRequirement(t *testing.T) {
	pool := []txbuilder.UTxO{
		{TxHash: "p1", TxIndex: 0, Address: addrA, Amount: value.NewLovelace(10_000_000)},
	}

	body, err := txbuilder.New().
		TxIn("explicit", 0, value.NewLovelace(8_000_000), addrA).
		TxOut(addrB, value.NewLovelace(2_000_000)).
		SelectUtxosFrom(pool, selection.LargestFirst, 0, true).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Inputs) != 1 || body.Inputs[0].TxHash != "explicit" {
		t.Fatalf("expected no additional selection, got %+v", body.Inputs)
	}
}
