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

// TxInCollateral starts a new pending collateral input, flushing whatever
// collateral was previously pending. Collateral inputs are always spent as
// plain PubKey UTxOs - a script cannot cover collateral - so there is
// nothing further to chain onto this one.
func (b *TxBuilder) TxInCollateral(txHash string, txIndex uint32, amount value.Value, address string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.flushCollateral()
	b.pendingCollateral = &TxIn{
		TxHash:  txHash,
		TxIndex: txIndex,
		Amount:  amount,
		Address: address,
		Kind:    TxInPubKey,
	}
	return b
}

// flushCollateral appends the pending collateral input to the body if one
// exists, then clears it.
func (b *TxBuilder) flushCollateral() {
	if b.pendingCollateral == nil {
		return
	}
	b.body.Collaterals = append(b.body.Collaterals, *b.pendingCollateral)
	b.pendingCollateral = nil
}
