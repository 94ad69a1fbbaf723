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

package txbuilder

import "github.com/mgpai22/cardano-txbuilder-go/internal/value"

// TxIn starts a new pending input, flushing whatever input was previously
// pending. A bare TxIn with no further chained calls flushes as a PubKey
// input. If a spendingPlutusScriptVN call preceded this one, the new
// input opens already marked Script-kind with its ScriptTxIn slot
// initialized at that version.
func (b *TxBuilder) TxIn(txHash string, txIndex uint32, amount value.Value, address string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.flushInput()
	in := &TxIn{
		TxHash:  txHash,
		TxIndex: txIndex,
		Amount:  amount,
		Address: address,
		Kind:    TxInPubKey,
	}
	if b.nextInputScriptVersion != nil {
		in.Kind = TxInScript
		in.ScriptTxIn = &ScriptTxIn{ScriptSource: &ScriptSource{Version: *b.nextInputScriptVersion}}
		b.nextInputScriptVersion = nil
	}
	b.pendingInput = in
	return b
}

// spendingPlutusScript records v to be consumed by the next TxIn call,
// which opens that input already marked Script-kind at this version. Per
// the chaining convention, this precedes TxIn rather than following it.
func (b *TxBuilder) spendingPlutusScript(v PlutusVersion) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.nextInputScriptVersion = &v
	return b
}

// SpendingPlutusScriptV1 marks the next input opened as spent by a V1
// script.
func (b *TxBuilder) SpendingPlutusScriptV1() *TxBuilder {
	return b.spendingPlutusScript(V1)
}

// SpendingPlutusScriptV2 marks the next input opened as spent by a V2
// script.
func (b *TxBuilder) SpendingPlutusScriptV2() *TxBuilder {
	return b.spendingPlutusScript(V2)
}

// SpendingPlutusScriptV3 marks the next input opened as spent by a V3
// script.
func (b *TxBuilder) SpendingPlutusScriptV3() *TxBuilder {
	return b.spendingPlutusScript(V3)
}

// TxInScript attaches a script, provided inline as CBOR, to the pending
// input. On a PubKey pending input, this promotes it to a SimpleScript
// input; on a Script pending input (opened after a spendingPlutusScriptVN
// call), it sets that script's source instead.
func (b *TxBuilder) TxInScript(scriptCBORHex string) *TxBuilder {
	if b.err != nil {
		return b
	}
	if b.pendingInput == nil {
		return b.fail(&MisuseError{Op: "TxInScript", Channel: "input", State: "none"})
	}
	if b.pendingInput.Kind == TxInScript {
		sc := b.pendingInput.ScriptTxIn
		sc.ScriptSource.Kind = ScriptSourceProvided
		sc.ScriptSource.ScriptCBORHex = scriptCBORHex
		return b
	}
	b.pendingInput.Kind = TxInSimpleScript
	b.pendingInput.SimpleScriptSource = &ScriptSource{Kind: ScriptSourceProvided, ScriptCBORHex: scriptCBORHex}
	return b
}

// SpendingTxInReference points the pending input's script at an on-chain
// UTxO carrying it, instead of uploading it inline. On a PubKey pending
// input, this promotes it to a SimpleScript input referencing the UTxO;
// on a Script pending input, it sets that script's reference instead.
func (b *TxBuilder) SpendingTxInReference(txHash string, txIndex uint32, scriptHash string, scriptSize string) *TxBuilder {
	if b.err != nil {
		return b
	}
	if b.pendingInput == nil {
		return b.fail(&MisuseError{Op: "SpendingTxInReference", Channel: "input", State: "none"})
	}
	if b.pendingInput.Kind == TxInScript {
		sc := b.pendingInput.ScriptTxIn
		sc.ScriptSource.Kind = ScriptSourceInline
		sc.ScriptSource.RefTxHash = txHash
		sc.ScriptSource.RefTxIndex = txIndex
		sc.ScriptSource.ScriptHash = scriptHash
		sc.ScriptSource.ScriptSize = scriptSize
		return b
	}
	b.pendingInput.Kind = TxInSimpleScript
	b.pendingInput.SimpleScriptSource = &ScriptSource{
		Kind:       ScriptSourceInline,
		RefTxHash:  txHash,
		RefTxIndex: txIndex,
		ScriptHash: scriptHash,
		ScriptSize: scriptSize,
	}
	return b
}

// TxInDatumValue attaches a datum supplied alongside the transaction to the
// pending script input.
func (b *TxBuilder) TxInDatumValue(data BuilderData) *TxBuilder {
	if b.err != nil {
		return b
	}
	sc, err := b.currentScriptTxIn("TxInDatumValue")
	if err != nil {
		return b.fail(err)
	}
	sc.DatumSource = &DatumSource{Kind: DatumSourceProvided, Data: data}
	return b
}

// TxInInlineDatumPresent marks the pending script input's datum as already
// inlined in the UTxO being spent, so no separate datum needs supplying.
func (b *TxBuilder) TxInInlineDatumPresent() *TxBuilder {
	if b.err != nil {
		return b
	}
	sc, err := b.currentScriptTxIn("TxInInlineDatumPresent")
	if err != nil {
		return b.fail(err)
	}
	sc.DatumSource = &DatumSource{Kind: DatumSourceInline}
	return b
}

// TxInRedeemerValue attaches a redeemer to the pending script input. If
// exUnits is omitted, DefaultExecutionUnits is used until the Evaluation
// Reconciler overwrites it.
func (b *TxBuilder) TxInRedeemerValue(data BuilderData, exUnits ...ExecutionUnits) *TxBuilder {
	if b.err != nil {
		return b
	}
	sc, err := b.currentScriptTxIn("TxInRedeemerValue")
	if err != nil {
		return b.fail(err)
	}
	units := DefaultExecutionUnits
	if len(exUnits) > 0 {
		units = exUnits[0]
	}
	sc.Redeemer = &Redeemer{Data: data, ExUnits: units}
	return b
}

// currentScriptTxIn returns the pending input's ScriptTxIn slot, or a
// MisuseError naming op if there is no pending input or it isn't a Script
// kind.
func (b *TxBuilder) currentScriptTxIn(op string) (*ScriptTxIn, error) {
	if b.pendingInput == nil {
		return nil, &MisuseError{Op: op, Channel: "input", State: "none"}
	}
	if b.pendingInput.Kind != TxInScript || b.pendingInput.ScriptTxIn == nil {
		return nil, &MisuseError{Op: op, Channel: "input", State: "PubKey or SimpleScript"}
	}
	return b.pendingInput.ScriptTxIn, nil
}

// flushInput appends the pending input to the body if one exists, then
// clears it. It validates completeness for Script inputs: a script source,
// a datum source, and a redeemer are all required before a Script input
// can flush.
func (b *TxBuilder) flushInput() {
	if b.pendingInput == nil {
		return
	}
	in := b.pendingInput
	b.pendingInput = nil

	if in.Kind == TxInScript {
		var missing []string
		sc := in.ScriptTxIn
		if sc == nil || sc.ScriptSource == nil || (sc.ScriptSource.Kind == ScriptSourceProvided && sc.ScriptSource.ScriptCBORHex == "") {
			missing = append(missing, "script")
		}
		if sc == nil || sc.DatumSource == nil {
			missing = append(missing, "datum")
		}
		if sc == nil || sc.Redeemer == nil {
			missing = append(missing, "redeemer")
		}
		if len(missing) > 0 {
			b.fail(&IncompleteItemError{Channel: "input", Index: len(b.body.Inputs), Missing: missing})
			return
		}
	}

	b.body.Inputs = append(b.body.Inputs, *in)
}
