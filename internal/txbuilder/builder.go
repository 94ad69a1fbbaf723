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

import "github.com/mgpai22/cardano-txbuilder-go/internal/selection"

// TxBuilder is the fluent transaction-builder state machine. Every channel
// (input, output, mint, withdrawal, certificate, collateral) holds at most
// one pending, not-yet-flushed item; starting a new item on a channel
// flushes whatever was pending there after validating it is complete.
//
// Operations never return an error directly - following the pattern the
// apollo builder this is modeled on uses, a chain keeps returning *TxBuilder
// so calls can be composed, and the first error encountered anywhere in the
// chain is latched in err and short-circuits every later call until
// Finalize is reached.
type TxBuilder struct {
	body *BuilderBody
	err  error

	pendingInput      *TxIn
	pendingOutput     *Output
	pendingMint       *MintItem
	pendingWithdrawal *Withdrawal
	pendingCollateral *TxIn

	// These record a Plutus version named by spendingPlutusScriptVN /
	// mintingPlutusScriptVN / withdrawalPlutusScriptVN before the channel's
	// next item is opened; TxIn/Mint/Withdraw consume and clear them when
	// initializing the new pending item as Script-kind.
	nextInputScriptVersion      *PlutusVersion
	nextMintScriptVersion       *PlutusVersion
	nextWithdrawalScriptVersion *PlutusVersion
}

// New returns an empty TxBuilder.
func New() *TxBuilder {
	return &TxBuilder{body: newBuilderBody()}
}

// Err returns the first error latched during the chain, if any. Finalize
// also returns this value, but Err lets a caller check state mid-chain.
func (b *TxBuilder) Err() error {
	return b.err
}

// fail latches the first error seen and is a no-op on subsequent calls.
func (b *TxBuilder) fail(err error) *TxBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// ChangeAddress sets the address leftover input value is returned to.
func (b *TxBuilder) ChangeAddress(address string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.ChangeAddress = address
	return b
}

// InvalidBefore sets the transaction's validity lower bound (inclusive).
func (b *TxBuilder) InvalidBefore(slot uint64) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.ValidityRange.InvalidBefore = &slot
	return b
}

// InvalidHereafter sets the transaction's validity upper bound (exclusive).
func (b *TxBuilder) InvalidHereafter(slot uint64) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.ValidityRange.InvalidHereafter = &slot
	return b
}

// MetadataValue attaches a metadata entry under label.
func (b *TxBuilder) MetadataValue(label uint64, data BuilderData) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.Metadata[label] = data
	return b
}

// SigningKey records a hex-encoded signing key the caller intends to sign
// with locally once the draft body is encoded.
func (b *TxBuilder) SigningKey(cborHex string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.SigningKeys = append(b.body.SigningKeys, cborHex)
	return b
}

// RequiredSignerHash adds a required-signer key hash to the transaction.
func (b *TxBuilder) RequiredSignerHash(keyHashHex string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.RequiredSignatures = append(b.body.RequiredSignatures, keyHashHex)
	return b
}

// ReadOnlyTxInReference adds a reference input that is visible to script
// execution but never spent.
func (b *TxBuilder) ReadOnlyTxInReference(txHash string, txIndex uint32) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.ReferenceInputs = append(b.body.ReferenceInputs, TxInRef{TxHash: txHash, TxIndex: txIndex})
	return b
}

// SelectUtxosFrom configures UTxO Selection: extraInputs is the candidate
// pool selection draws from to cover any shortfall between outputs/mints
// and explicitly listed inputs, strategy names one of the four selection
// algorithms (see internal/selection), threshold pads the lovelace
// requirement (typically an estimated fee), and includeTxFees marks whether
// that padding should be treated as fee coverage by the caller's
// downstream balancing step.
func (b *TxBuilder) SelectUtxosFrom(
	extraInputs []UTxO,
	strategy selection.Strategy,
	threshold uint64,
	includeTxFees bool,
) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.ExtraInputs = extraInputs
	b.body.SelectionConfig = SelectionConfig{
		Threshold:     threshold,
		Strategy:      strategy,
		IncludeTxFees: includeTxFees,
	}
	return b
}

// Reset clears the builder back to its zero state, discarding any pending,
// unflushed items and any latched error. Idempotent: calling it twice in a
// row is equivalent to calling it once.
func (b *TxBuilder) Reset() *TxBuilder {
	b.body = newBuilderBody()
	b.err = nil
	b.pendingInput = nil
	b.pendingOutput = nil
	b.pendingMint = nil
	b.pendingWithdrawal = nil
	b.pendingCollateral = nil
	b.nextInputScriptVersion = nil
	b.nextMintScriptVersion = nil
	b.nextWithdrawalScriptVersion = nil
	return b
}

// toSelectionUTxOs adapts txbuilder UTxOs to the shape internal/selection
// operates on, which is independent of txbuilder to avoid an import cycle.
func toSelectionUTxOs(in []UTxO) []selection.UTxO {
	out := make([]selection.UTxO, 0, len(in))
	for _, u := range in {
		out = append(out, selection.UTxO{
			TxHash:  u.TxHash,
			TxIndex: u.TxIndex,
			Address: u.Address,
			Amount:  u.Amount,
		})
	}
	return out
}

func fromSelectionUTxO(u selection.UTxO) UTxO {
	return UTxO{
		TxHash:  u.TxHash,
		TxIndex: u.TxIndex,
		Address: u.Address,
		Amount:  u.Amount,
	}
}
