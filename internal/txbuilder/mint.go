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

import "math/big"

// Mint starts a new pending mint item, flushing whatever mint was
// previously pending. amount may be negative, to burn. A bare Mint with no
// further chained calls flushes as a native-script mint. If a
// mintingPlutusScriptVN call preceded this one, the new mint opens already
// marked Plutus-governed at that version.
func (b *TxBuilder) Mint(policyId string, assetName string, amount *big.Int) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.flushMint()
	m := &MintItem{
		PolicyId:  policyId,
		AssetName: assetName,
		Amount:    amount,
		Type:      MintNative,
	}
	if b.nextMintScriptVersion != nil {
		m.Type = MintPlutus
		m.ScriptSource = &ScriptSource{Version: *b.nextMintScriptVersion}
		b.nextMintScriptVersion = nil
	}
	b.pendingMint = m
	return b
}

// mintingPlutusScript records v to be consumed by the next Mint call,
// which opens that mint already marked Plutus-governed at this version.
func (b *TxBuilder) mintingPlutusScript(v PlutusVersion) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.nextMintScriptVersion = &v
	return b
}

// MintingPlutusScriptV1 marks the next mint opened as governed by a V1
// script.
func (b *TxBuilder) MintingPlutusScriptV1() *TxBuilder {
	return b.mintingPlutusScript(V1)
}

// MintingPlutusScriptV2 marks the next mint opened as governed by a V2
// script.
func (b *TxBuilder) MintingPlutusScriptV2() *TxBuilder {
	return b.mintingPlutusScript(V2)
}

// MintingPlutusScriptV3 marks the next mint opened as governed by a V3
// script.
func (b *TxBuilder) MintingPlutusScriptV3() *TxBuilder {
	return b.mintingPlutusScript(V3)
}

// MintingScript attaches a script (native or Plutus, depending on what
// preceded it in the chain) to the pending mint, provided inline as CBOR.
func (b *TxBuilder) MintingScript(scriptCBORHex string) *TxBuilder {
	if b.err != nil {
		return b
	}
	m, err := b.currentMint("MintingScript")
	if err != nil {
		return b.fail(err)
	}
	if m.ScriptSource == nil {
		m.ScriptSource = &ScriptSource{}
	}
	m.ScriptSource.Kind = ScriptSourceProvided
	m.ScriptSource.ScriptCBORHex = scriptCBORHex
	return b
}

// MintTxInReference points the pending mint's script at an on-chain UTxO
// carrying it, instead of uploading it inline.
func (b *TxBuilder) MintTxInReference(txHash string, txIndex uint32, scriptHash string, scriptSize string) *TxBuilder {
	if b.err != nil {
		return b
	}
	m, err := b.currentMint("MintTxInReference")
	if err != nil {
		return b.fail(err)
	}
	if m.Type != MintPlutus {
		return b.fail(&MisuseError{Op: "MintTxInReference", Channel: "mint", State: "native (non-Plutus)"})
	}
	if m.ScriptSource == nil {
		m.ScriptSource = &ScriptSource{}
	}
	m.ScriptSource.Kind = ScriptSourceInline
	m.ScriptSource.RefTxHash = txHash
	m.ScriptSource.RefTxIndex = txIndex
	m.ScriptSource.ScriptHash = scriptHash
	m.ScriptSource.ScriptSize = scriptSize
	return b
}

// MintRedeemerValue attaches a redeemer to the pending Plutus mint.
func (b *TxBuilder) MintRedeemerValue(data BuilderData, exUnits ...ExecutionUnits) *TxBuilder {
	if b.err != nil {
		return b
	}
	m, err := b.currentMint("MintRedeemerValue")
	if err != nil {
		return b.fail(err)
	}
	if m.Type != MintPlutus {
		return b.fail(&MisuseError{Op: "MintRedeemerValue", Channel: "mint", State: "native (non-Plutus)"})
	}
	units := DefaultExecutionUnits
	if len(exUnits) > 0 {
		units = exUnits[0]
	}
	m.Redeemer = &Redeemer{Data: data, ExUnits: units}
	return b
}

func (b *TxBuilder) currentMint(op string) (*MintItem, error) {
	if b.pendingMint == nil {
		return nil, &MisuseError{Op: op, Channel: "mint", State: "none"}
	}
	return b.pendingMint, nil
}

// flushMint appends the pending mint to the body if one exists, then clears
// it. A Plutus mint is incomplete without both a script and a redeemer.
func (b *TxBuilder) flushMint() {
	if b.pendingMint == nil {
		return
	}
	m := b.pendingMint
	b.pendingMint = nil

	if m.Type == MintPlutus {
		var missing []string
		if m.ScriptSource == nil || (m.ScriptSource.Kind == ScriptSourceProvided && m.ScriptSource.ScriptCBORHex == "") {
			missing = append(missing, "script")
		}
		if m.Redeemer == nil {
			missing = append(missing, "redeemer")
		}
		if len(missing) > 0 {
			b.fail(&IncompleteItemError{Channel: "mint", Index: len(b.body.Mints), Missing: missing})
			return
		}
	}

	b.body.Mints = append(b.body.Mints, *m)
}
