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

package reconcile_test

import (
	"testing"

	"github.com/mgpai22/cardano-txbuilder-go/internal/reconcile"
	"github.com/mgpai22/cardano-txbuilder-go/internal/txbuilder"
)

func scriptInput() txbuilder.TxIn {
	return txbuilder.TxIn{
		TxHash: "deadbeef",
		Kind:   txbuilder.TxInScript,
		ScriptTxIn: &txbuilder.ScriptTxIn{
			Redeemer: txbuilder.NewDefaultRedeemer(txbuilder.BuilderData{}),
		},
	}
}

// TestReconcileOverwritesMatchingSlot covers a single SPEND action at index
// 0 overwriting that input's default execution units with the measured,
// multiplier-padded budget.
func TestReconcileOverwritesMatchingSlot(t *testing.T) {
	body := &txbuilder.BuilderBody{
		Inputs: []txbuilder.TxIn{scriptInput()},
	}
	actions := []reconcile.Action{
		{Tag: reconcile.Spend, Index: 0, Budget: txbuilder.ExecutionUnits{Mem: 1_000_000, Steps: 500_000_000}},
	}

	reconcile.Reconcile(body, actions, 1.10)

	got := body.Inputs[0].ScriptTxIn.Redeemer.ExUnits
	want := txbuilder.ExecutionUnits{Mem: 1_100_000, Steps: 550_000_000}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// TestReconcileSkipsNonMatchingSlot covers actions addressing a PubKey
// input (no redeemer slot) or an out-of-range index being skipped without
// error, leaving the default budget untouched.
func TestReconcileSkipsNonMatchingSlot(t *testing.T) {
	pubkeyIn := txbuilder.TxIn{TxHash: "abc", Kind: txbuilder.TxInPubKey}
	scriptIn := scriptInput()
	original := scriptIn.ScriptTxIn.Redeemer.ExUnits

	body := &txbuilder.BuilderBody{
		Inputs: []txbuilder.TxIn{pubkeyIn, scriptIn},
	}
	actions := []reconcile.Action{
		{Tag: reconcile.Spend, Index: 0, Budget: txbuilder.ExecutionUnits{Mem: 1, Steps: 1}},
		{Tag: reconcile.Spend, Index: 99, Budget: txbuilder.ExecutionUnits{Mem: 1, Steps: 1}},
	}

	reconcile.Reconcile(body, actions, 1.10)

	if body.Inputs[1].ScriptTxIn.Redeemer.ExUnits != original {
		t.Fatalf("non-matching action mutated an unrelated slot: got %+v", body.Inputs[1].ScriptTxIn.Redeemer.ExUnits)
	}
}

func TestReconcileDefaultMultiplier(t *testing.T) {
	body := &txbuilder.BuilderBody{
		Inputs: []txbuilder.TxIn{scriptInput()},
	}
	actions := []reconcile.Action{
		{Tag: reconcile.Spend, Index: 0, Budget: txbuilder.ExecutionUnits{Mem: 1_000_000, Steps: 1_000_000}},
	}

	reconcile.Reconcile(body, actions, 0)

	got := body.Inputs[0].ScriptTxIn.Redeemer.ExUnits
	want := txbuilder.ExecutionUnits{Mem: 1_100_000, Steps: 1_100_000}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestReconcileMintCertReward(t *testing.T) {
	body := &txbuilder.BuilderBody{
		Mints: []txbuilder.MintItem{
			{Type: txbuilder.MintPlutus, Redeemer: txbuilder.NewDefaultRedeemer(txbuilder.BuilderData{})},
		},
		Certificates: []txbuilder.Certificate{
			{Kind: txbuilder.CertificateScript, Redeemer: txbuilder.NewDefaultRedeemer(txbuilder.BuilderData{})},
		},
		Withdrawals: []txbuilder.Withdrawal{
			{Kind: txbuilder.WithdrawalScript, Redeemer: txbuilder.NewDefaultRedeemer(txbuilder.BuilderData{})},
		},
	}
	actions := []reconcile.Action{
		{Tag: reconcile.Mint, Index: 0, Budget: txbuilder.ExecutionUnits{Mem: 100, Steps: 200}},
		{Tag: reconcile.Cert, Index: 0, Budget: txbuilder.ExecutionUnits{Mem: 300, Steps: 400}},
		{Tag: reconcile.Reward, Index: 0, Budget: txbuilder.ExecutionUnits{Mem: 500, Steps: 600}},
	}

	reconcile.Reconcile(body, actions, 1.0)

	if body.Mints[0].Redeemer.ExUnits != (txbuilder.ExecutionUnits{Mem: 100, Steps: 200}) {
		t.Fatalf("mint redeemer not reconciled: %+v", body.Mints[0].Redeemer.ExUnits)
	}
	if body.Certificates[0].Redeemer.ExUnits != (txbuilder.ExecutionUnits{Mem: 300, Steps: 400}) {
		t.Fatalf("certificate redeemer not reconciled: %+v", body.Certificates[0].Redeemer.ExUnits)
	}
	if body.Withdrawals[0].Redeemer.ExUnits != (txbuilder.ExecutionUnits{Mem: 500, Steps: 600}) {
		t.Fatalf("withdrawal redeemer not reconciled: %+v", body.Withdrawals[0].Redeemer.ExUnits)
	}
}
