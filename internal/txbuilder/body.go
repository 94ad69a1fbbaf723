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

// ValidityRange bounds the slots a transaction is valid within.
type ValidityRange struct {
	InvalidBefore    *uint64
	InvalidHereafter *uint64
}

// SelectionConfig carries the caller's UTxO-selection preferences, set via
// selectUtxosFrom.
type SelectionConfig struct {
	Threshold     uint64
	Strategy      selection.Strategy
	IncludeTxFees bool
}

// BuilderBody is the aggregate mutable descriptor assembled by the fluent
// builder core. It starts empty, is mutated only by TxBuilder and the
// Evaluation Reconciler, and is cleared on Reset.
type BuilderBody struct {
	Inputs             []TxIn
	Outputs            []Output
	Mints              []MintItem
	Withdrawals        []Withdrawal
	Certificates       []Certificate
	ReferenceInputs    []TxInRef
	Collaterals        []TxIn
	RequiredSignatures []string // hex key hashes
	SigningKeys        []string // hex signing keys, held for local signing convenience
	Metadata           map[uint64]BuilderData

	ChangeAddress   string
	ValidityRange   ValidityRange
	ExtraInputs     []UTxO
	SelectionConfig SelectionConfig
}

func newBuilderBody() *BuilderBody {
	return &BuilderBody{
		Metadata: map[uint64]BuilderData{},
		SelectionConfig: SelectionConfig{
			Strategy: selection.Experimental,
		},
	}
}
