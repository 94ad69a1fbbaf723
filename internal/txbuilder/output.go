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

// TxOut starts a new pending output, flushing whatever output was
// previously pending.
func (b *TxBuilder) TxOut(address string, amount value.Value) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.flushOutput()
	b.pendingOutput = &Output{Address: address, Amount: amount}
	return b
}

// TxOutDatumHashValue attaches a hashed datum to the pending output: the
// datum itself travels alongside the transaction, only its hash is placed
// in the output. A no-op if no output is pending.
func (b *TxBuilder) TxOutDatumHashValue(data BuilderData) *TxBuilder {
	if b.err != nil {
		return b
	}
	if b.pendingOutput == nil {
		return b
	}
	b.pendingOutput.Datum = &OutputDatum{Kind: DatumHash, Data: data}
	return b
}

// TxOutInlineDatumValue attaches an inline datum to the pending output: the
// full datum is placed directly in the output. A no-op if no output is
// pending.
func (b *TxBuilder) TxOutInlineDatumValue(data BuilderData) *TxBuilder {
	if b.err != nil {
		return b
	}
	if b.pendingOutput == nil {
		return b
	}
	b.pendingOutput.Datum = &OutputDatum{Kind: DatumInline, Data: data}
	return b
}

// TxOutReferenceScript attaches a reusable script to the pending output so
// later transactions can reference it instead of re-uploading its bytes. A
// no-op if no output is pending.
func (b *TxBuilder) TxOutReferenceScript(codeCBORHex string, version PlutusVersion) *TxBuilder {
	if b.err != nil {
		return b
	}
	if b.pendingOutput == nil {
		return b
	}
	b.pendingOutput.ReferenceScript = &ReferenceScript{CodeCBORHex: codeCBORHex, Version: version}
	return b
}

// flushOutput appends the pending output to the body if one exists, then
// clears it. Outputs carry no required subfields beyond address and
// amount, so there is nothing to validate before flushing.
func (b *TxBuilder) flushOutput() {
	if b.pendingOutput == nil {
		return
	}
	b.body.Outputs = append(b.body.Outputs, *b.pendingOutput)
	b.pendingOutput = nil
}
