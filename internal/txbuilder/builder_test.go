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
	"math/big"
	"testing"

	"github.com/mgpai22/cardano-txbuilder-go/internal/txbuilder"
	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

const (
	addrA = "addr_test1qpalicealicealicealicealicealicealicealicealicealice"
	addrB = "addr_test1qpbobbobbobbobbobbobbobbobbobbobbobbobbobbobbobbob"
)

// TestPurePaymentFlushesSingleInputAndOutput covers a plain UTxO spent to a
// plain output with no scripts involved.
func TestPurePaymentFlushesSingleInputAndOutput(t *testing.T) {
	body, err := txbuilder.New().
		ChangeAddress(addrA).
		TxIn("aa", 0, value.NewLovelace(5_000_000), addrA).
		TxOut(addrB, value.NewLovelace(4_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Inputs) != 1 || body.Inputs[0].Kind != txbuilder.TxInPubKey {
		t.Fatalf("expected a single PubKey input, got %+v", body.Inputs)
	}
	if len(body.Outputs) != 1 || body.Outputs[0].Address != addrB {
		t.Fatalf("expected a single output to addrB, got %+v", body.Outputs)
	}
}

// TestPlutusSpendRequiresAllThreeFields covers a Script input needing a
// script, a datum, and a redeemer before it can flush.
func TestPlutusSpendRequiresAllThreeFields(t *testing.T) {
	redeemer, _ := txbuilder.NewJSONData(map[string]any{"int": 0})
	datum, _ := txbuilder.NewJSONData(map[string]any{"int": 1})

	body, err := txbuilder.New().
		SpendingPlutusScriptV2().
		TxIn("bb", 0, value.NewLovelace(5_000_000), addrA).
		TxInScript("4e4d01000033222220051200120011").
		TxInDatumValue(datum).
		TxInRedeemerValue(redeemer).
		TxOut(addrB, value.NewLovelace(2_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := body.Inputs[0]
	if in.Kind != txbuilder.TxInScript {
		t.Fatalf("expected a Script input, got kind %v", in.Kind)
	}
	if in.ScriptTxIn.Redeemer == nil || in.ScriptTxIn.DatumSource == nil {
		t.Fatalf("expected datum and redeemer set, got %+v", in.ScriptTxIn)
	}
}

// TestIncompleteScriptInputFails covers a Script input missing its
// redeemer: it must fail at Finalize with IncompleteItemError, naming what
// is missing.
func TestIncompleteScriptInputFails(t *testing.T) {
	datum, _ := txbuilder.NewJSONData(map[string]any{"int": 1})

	_, err := txbuilder.New().
		SpendingPlutusScriptV2().
		TxIn("cc", 0, value.NewLovelace(5_000_000), addrA).
		TxInScript("4e4d01000033222220051200120011").
		TxInDatumValue(datum).
		Finalize()
	if err == nil {
		t.Fatal("expected an IncompleteItemError")
	}
	var incomplete *txbuilder.IncompleteItemError
	if !errorsAsIncomplete(err, &incomplete) {
		t.Fatalf("expected *txbuilder.IncompleteItemError, got %T: %v", err, err)
	}
	if incomplete.Channel != "input" {
		t.Fatalf("expected channel 'input', got %q", incomplete.Channel)
	}
}

func errorsAsIncomplete(err error, target **txbuilder.IncompleteItemError) bool {
	ie, ok := err.(*txbuilder.IncompleteItemError)
	if !ok {
		return false
	}
	*target = ie
	return true
}

// TestMisuseOnWrongPendingState covers the MisuseError taxonomy: calling a
// script-only operation with no pending script input in progress.
func TestMisuseOnWrongPendingState(t *testing.T) {
	_, err := txbuilder.New().
		TxIn("dd", 0, value.NewLovelace(5_000_000), addrA).
		TxInRedeemerValue(txbuilder.NewCBORData("00")).
		Finalize()
	if err == nil {
		t.Fatal("expected a MisuseError")
	}
	if _, ok := err.(*txbuilder.MisuseError); !ok {
		t.Fatalf("expected *txbuilder.MisuseError, got %T: %v", err, err)
	}
}

// TestNativeMintFlushes covers a native-script mint, which requires no
// redeemer and flushes as soon as the next channel item starts or Finalize
// runs.
func TestNativeMintFlushes(t *testing.T) {
	body, err := txbuilder.New().
		Mint("11111111111111111111111111111111111111111111111111111111", "74657374", big.NewInt(100)).
		MintingScript("8200581c11111111111111111111111111111111111111111111111111111111").
		TxOut(addrA, value.NewLovelace(2_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Mints) != 1 || body.Mints[0].Type != txbuilder.MintNative {
		t.Fatalf("expected a single native mint, got %+v", body.Mints)
	}
}

// TestChannelFlushOnNewItem covers starting a second input flushing the
// first, in order, without requiring Finalize.
func TestChannelFlushOnNewItem(t *testing.T) {
	body, err := txbuilder.New().
		TxIn("ee", 0, value.NewLovelace(1_000_000), addrA).
		TxIn("ff", 1, value.NewLovelace(2_000_000), addrA).
		TxOut(addrB, value.NewLovelace(1_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Inputs) != 2 {
		t.Fatalf("expected both inputs flushed, got %+v", body.Inputs)
	}
	if body.Inputs[0].TxHash != "ee" || body.Inputs[1].TxHash != "ff" {
		t.Fatalf("expected order [ee, ff], got [%s, %s]", body.Inputs[0].TxHash, body.Inputs[1].TxHash)
	}
}

// TestDuplicateInputsAreDeduped covers an explicit input listed twice
// collapsing to a single entry, first occurrence wins.
func TestDuplicateInputsAreDeduped(t *testing.T) {
	body, err := txbuilder.New().
		TxIn("gg", 0, value.NewLovelace(3_000_000), addrA).
		TxIn("gg", 0, value.NewLovelace(3_000_000), addrA).
		TxOut(addrB, value.NewLovelace(1_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Inputs) != 1 {
		t.Fatalf("expected dedup to collapse to a single input, got %+v", body.Inputs)
	}
}

// TestResetIsIdempotent covers resetting twice in a row being equivalent
// to resetting once, and clearing any latched error.
func TestResetIsIdempotent(t *testing.T) {
	b := txbuilder.New().
		TxIn("hh", 0, value.NewLovelace(1_000_000), addrA).
		TxInRedeemerValue(txbuilder.NewCBORData("00")) // latches a MisuseError

	if b.Err() == nil {
		t.Fatal("expected a latched error before Reset")
	}

	b.Reset()
	b.Reset()

	body, err := b.TxIn("ii", 0, value.NewLovelace(1_000_000), addrA).
		TxOut(addrB, value.NewLovelace(500_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error after Reset: %v", err)
	}
	if len(body.Inputs) != 1 || body.Inputs[0].TxHash != "ii" {
		t.Fatalf("expected a clean single input after Reset, got %+v", body.Inputs)
	}
}

// TestTxInScriptPromotesPubKeyToSimpleScript covers calling TxInScript on a
// bare PubKey input (no SpendingPlutusScriptVN preceded it) promoting it to
// a SimpleScript input that flushes with no datum/redeemer requirement.
func TestTxInScriptPromotesPubKeyToSimpleScript(t *testing.T) {
	body, err := txbuilder.New().
		TxIn("jj", 0, value.NewLovelace(5_000_000), addrA).
		TxInScript("820058").
		TxOut(addrB, value.NewLovelace(1_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := body.Inputs[0]
	if in.Kind != txbuilder.TxInSimpleScript {
		t.Fatalf("expected a SimpleScript input, got kind %v", in.Kind)
	}
	if in.SimpleScriptSource == nil || in.SimpleScriptSource.ScriptCBORHex == "" {
		t.Fatalf("expected a simple script source attached, got %+v", in.SimpleScriptSource)
	}
}

// TestWithdrawalQueuedFlagOpensScriptKind covers WithdrawalPlutusScriptV2
// preceding Withdraw opening a Script-kind withdrawal at that version,
// matching the queued-flag ordering used for inputs and mints.
func TestWithdrawalQueuedFlagOpensScriptKind(t *testing.T) {
	redeemer, _ := txbuilder.NewJSONData(map[string]any{"int": 0})

	body, err := txbuilder.New().
		WithdrawalPlutusScriptV2().
		Withdraw("stake_test1uq", 1_000_000).
		WithdrawalScriptSource("4e4d01000033222220051200120011").
		WithdrawalRedeemerValue(redeemer).
		TxIn("kk", 0, value.NewLovelace(5_000_000), addrA).
		TxOut(addrB, value.NewLovelace(1_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := body.Withdrawals[0]
	if w.Kind != txbuilder.WithdrawalScript {
		t.Fatalf("expected a Script withdrawal, got kind %v", w.Kind)
	}
	if w.Redeemer == nil {
		t.Fatalf("expected a redeemer set, got %+v", w)
	}
}

// TestWithdrawalScriptSourcePromotesPubKeyToSimpleScript covers calling
// WithdrawalScriptSource on a bare PubKey withdrawal promoting it to a
// SimpleScript withdrawal, mirroring the input promotion path.
func TestWithdrawalScriptSourcePromotesPubKeyToSimpleScript(t *testing.T) {
	body, err := txbuilder.New().
		Withdraw("stake_test1uq", 2_000_000).
		WithdrawalScriptSource("820058").
		TxIn("ll", 0, value.NewLovelace(5_000_000), addrA).
		TxOut(addrB, value.NewLovelace(1_000_000)).
		Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := body.Withdrawals[0]
	if w.Kind != txbuilder.WithdrawalSimpleScript {
		t.Fatalf("expected a SimpleScript withdrawal, got kind %v", w.Kind)
	}
}

// TestCertificateScriptVariants covers CertificateScript called with no
// version producing a SimpleScript certificate, and with a version
// producing a Script certificate requiring a redeemer.
func TestCertificateScriptVariants(t *testing.T) {
	redeemer, _ := txbuilder.NewJSONData(map[string]any{"int": 0})

	b := txbuilder.New().
		RegisterStakeCertificate("stake_test1uq").
		CertificateScript("820058").
		DeregisterStakeCertificate("stake_test1uq").
		CertificateScript("820058", txbuilder.V2).
		CertificateRedeemerValue(redeemer).
		TxIn("mm", 0, value.NewLovelace(5_000_000), addrA).
		TxOut(addrB, value.NewLovelace(1_000_000))

	body, err := b.Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Certificates) != 2 {
		t.Fatalf("expected two certificates, got %+v", body.Certificates)
	}
	if body.Certificates[0].Kind != txbuilder.CertificateSimpleScript {
		t.Fatalf("expected a SimpleScript certificate, got kind %v", body.Certificates[0].Kind)
	}
	if body.Certificates[1].Kind != txbuilder.CertificateScript || body.Certificates[1].Redeemer == nil {
		t.Fatalf("expected a Script certificate with a redeemer, got %+v", body.Certificates[1])
	}
}

// TestMintTxInReferenceRejectsNativeMint covers MintTxInReference failing
// with a MisuseError when the pending mint is native, not Plutus.
func TestMintTxInReferenceRejectsNativeMint(t *testing.T) {
	_, err := txbuilder.New().
		Mint("11111111111111111111111111111111111111111111111111111111", "74657374", big.NewInt(50)).
		MintTxInReference("nn", 0, "deadbeef", "100").
		TxOut(addrA, value.NewLovelace(1_000_000)).
		Finalize()
	if err == nil {
		t.Fatal("expected a MisuseError")
	}
	if _, ok := err.(*txbuilder.MisuseError); !ok {
		t.Fatalf("expected *txbuilder.MisuseError, got %T: %v", err, err)
	}
}
