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

// Withdraw starts a new pending reward withdrawal, flushing whatever
// withdrawal was previously pending. If a withdrawalPlutusScriptVN call
// preceded this one, the new withdrawal opens already marked Script-kind
// at that version.
func (b *TxBuilder) Withdraw(rewardAddress string, coin uint64) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.flushWithdrawal()
	w := &Withdrawal{
		RewardAddress: rewardAddress,
		Coin:          coin,
		Kind:          WithdrawalPubKey,
	}
	if b.nextWithdrawalScriptVersion != nil {
		w.Kind = WithdrawalScript
		w.ScriptSource = &ScriptSource{Version: *b.nextWithdrawalScriptVersion}
		b.nextWithdrawalScriptVersion = nil
	}
	b.pendingWithdrawal = w
	return b
}

// withdrawalPlutusScript records v to be consumed by the next Withdraw
// call, which opens that withdrawal already marked Script-kind at this
// version.
func (b *TxBuilder) withdrawalPlutusScript(v PlutusVersion) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.nextWithdrawalScriptVersion = &v
	return b
}

// WithdrawalPlutusScriptV1 marks the next withdrawal opened as governed by
// a V1 script.
func (b *TxBuilder) WithdrawalPlutusScriptV1() *TxBuilder {
	return b.withdrawalPlutusScript(V1)
}

// WithdrawalPlutusScriptV2 marks the next withdrawal opened as governed by
// a V2 script.
func (b *TxBuilder) WithdrawalPlutusScriptV2() *TxBuilder {
	return b.withdrawalPlutusScript(V2)
}

// WithdrawalPlutusScriptV3 marks the next withdrawal opened as governed by
// a V3 script.
func (b *TxBuilder) WithdrawalPlutusScriptV3() *TxBuilder {
	return b.withdrawalPlutusScript(V3)
}

// WithdrawalScriptSource attaches a script, provided inline as CBOR, to
// the pending withdrawal. On a PubKey pending withdrawal, this promotes it
// to a SimpleScript withdrawal; on a Script pending withdrawal (opened
// after a withdrawalPlutusScriptVN call), it sets that script's source
// instead.
func (b *TxBuilder) WithdrawalScriptSource(scriptCBORHex string) *TxBuilder {
	if b.err != nil {
		return b
	}
	if b.pendingWithdrawal == nil {
		return b.fail(&MisuseError{Op: "WithdrawalScriptSource", Channel: "withdrawal", State: "none"})
	}
	if b.pendingWithdrawal.Kind == WithdrawalScript {
		w := b.pendingWithdrawal
		w.ScriptSource.Kind = ScriptSourceProvided
		w.ScriptSource.ScriptCBORHex = scriptCBORHex
		return b
	}
	b.pendingWithdrawal.Kind = WithdrawalSimpleScript
	b.pendingWithdrawal.ScriptSource = &ScriptSource{Kind: ScriptSourceProvided, ScriptCBORHex: scriptCBORHex}
	return b
}

// WithdrawalTxInReference points the pending withdrawal's script at an
// on-chain UTxO carrying it, instead of uploading it inline. On a PubKey
// pending withdrawal, this promotes it to a SimpleScript withdrawal
// referencing the UTxO; on a Script pending withdrawal, it sets that
// script's reference instead.
func (b *TxBuilder) WithdrawalTxInReference(txHash string, txIndex uint32, scriptHash string, scriptSize string) *TxBuilder {
	if b.err != nil {
		return b
	}
	if b.pendingWithdrawal == nil {
		return b.fail(&MisuseError{Op: "WithdrawalTxInReference", Channel: "withdrawal", State: "none"})
	}
	if b.pendingWithdrawal.Kind == WithdrawalScript {
		w := b.pendingWithdrawal
		w.ScriptSource.Kind = ScriptSourceInline
		w.ScriptSource.RefTxHash = txHash
		w.ScriptSource.RefTxIndex = txIndex
		w.ScriptSource.ScriptHash = scriptHash
		w.ScriptSource.ScriptSize = scriptSize
		return b
	}
	b.pendingWithdrawal.Kind = WithdrawalSimpleScript
	b.pendingWithdrawal.ScriptSource = &ScriptSource{
		Kind:       ScriptSourceInline,
		RefTxHash:  txHash,
		RefTxIndex: txIndex,
		ScriptHash: scriptHash,
		ScriptSize: scriptSize,
	}
	return b
}

// WithdrawalRedeemerValue attaches a redeemer to the pending script
// withdrawal.
func (b *TxBuilder) WithdrawalRedeemerValue(data BuilderData, exUnits ...ExecutionUnits) *TxBuilder {
	if b.err != nil {
		return b
	}
	w, err := b.currentScriptWithdrawal("WithdrawalRedeemerValue")
	if err != nil {
		return b.fail(err)
	}
	units := DefaultExecutionUnits
	if len(exUnits) > 0 {
		units = exUnits[0]
	}
	w.Redeemer = &Redeemer{Data: data, ExUnits: units}
	return b
}

func (b *TxBuilder) currentScriptWithdrawal(op string) (*Withdrawal, error) {
	if b.pendingWithdrawal == nil {
		return nil, &MisuseError{Op: op, Channel: "withdrawal", State: "none"}
	}
	if b.pendingWithdrawal.Kind != WithdrawalScript || b.pendingWithdrawal.ScriptSource == nil {
		return nil, &MisuseError{Op: op, Channel: "withdrawal", State: "PubKey or SimpleScript"}
	}
	return b.pendingWithdrawal, nil
}

// flushWithdrawal appends the pending withdrawal to the body if one
// exists, then clears it. A script withdrawal is incomplete without both a
// script and a redeemer.
func (b *TxBuilder) flushWithdrawal() {
	if b.pendingWithdrawal == nil {
		return
	}
	w := b.pendingWithdrawal
	b.pendingWithdrawal = nil

	if w.Kind == WithdrawalScript {
		var missing []string
		if w.ScriptSource == nil || (w.ScriptSource.Kind == ScriptSourceProvided && w.ScriptSource.ScriptCBORHex == "") {
			missing = append(missing, "script")
		}
		if w.Redeemer == nil {
			missing = append(missing, "redeemer")
		}
		if len(missing) > 0 {
			b.fail(&IncompleteItemError{Channel: "withdrawal", Index: len(b.body.Withdrawals), Missing: missing})
			return
		}
	}

	b.body.Withdrawals = append(b.body.Withdrawals, *w)
}
