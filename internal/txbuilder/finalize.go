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

import (
	"errors"
	"math/big"

	"github.com/mgpai22/cardano-txbuilder-go/internal/selection"
	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

// Finalize flushes every pending channel item, deduplicates inputs, runs
// UTxO Selection to cover any shortfall against the extra-input pool
// configured via SelectUtxosFrom, and returns the completed BuilderBody.
// Once an error (of any kind) has been latched, Finalize returns it
// immediately without doing further work.
func (b *TxBuilder) Finalize() (*BuilderBody, error) {
	if b.err != nil {
		return nil, b.err
	}

	b.queueAllLastItem()
	if b.err != nil {
		return nil, b.err
	}

	for i, c := range b.body.Certificates {
		if c.Kind == CertificateScript && c.Redeemer == nil {
			return nil, &IncompleteItemError{Channel: "certificate", Index: i, Missing: []string{"redeemer"}}
		}
	}

	b.body.Inputs = removeDuplicateInputs(b.body.Inputs)

	if len(b.body.ExtraInputs) > 0 {
		required := requiredValue(b.body)
		pool := toSelectionUTxOs(b.body.ExtraInputs)

		selected, err := selection.Select(
			b.body.SelectionConfig.Strategy,
			pool,
			required,
			b.body.SelectionConfig.Threshold,
		)
		if err != nil {
			var selErr *selection.Error
			if errors.As(err, &selErr) {
				missing := map[string]string{}
				for _, unit := range selErr.Shortfall.Units() {
					missing[unit] = selErr.Shortfall.Get(unit).String()
				}
				return nil, &SelectionError{Missing: missing}
			}
			return nil, err
		}

		for _, u := range selected {
			sel := fromSelectionUTxO(u)
			b.body.Inputs = append(b.body.Inputs, TxIn{
				TxHash:  sel.TxHash,
				TxIndex: sel.TxIndex,
				Amount:  sel.Amount,
				Address: sel.Address,
				Kind:    TxInPubKey,
			})
		}
		b.body.Inputs = removeDuplicateInputs(b.body.Inputs)
	}

	return b.body, nil
}

// queueAllLastItem flushes every channel's pending slot, in input / output
// / collateral / mint / withdrawal order. Certificates have no pending
// slot (see certificate.go) so there is nothing to flush for them.
func (b *TxBuilder) queueAllLastItem() {
	b.flushInput()
	if b.err != nil {
		return
	}
	b.flushOutput()
	if b.err != nil {
		return
	}
	b.flushCollateral()
	if b.err != nil {
		return
	}
	b.flushMint()
	if b.err != nil {
		return
	}
	b.flushWithdrawal()
}

// removeDuplicateInputs keeps only the first occurrence of each
// (txHash, txIndex) pair, preserving order - a TxIn selected both
// explicitly and by the selector (or listed twice by the caller) must
// never be spent twice.
func removeDuplicateInputs(inputs []TxIn) []TxIn {
	seen := make(map[TxInRef]struct{}, len(inputs))
	out := make([]TxIn, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, in)
	}
	return out
}

// requiredValue computes the net value Selection must still cover: every
// output, minus every already-listed input, minus every withdrawal (which
// supplies lovelace rather than consuming it), minus every mint delta
// (minting an asset supplies it, reducing the requirement; burning it
// consumes it, increasing the requirement).
func requiredValue(body *BuilderBody) value.Value {
	required := value.New()
	for _, o := range body.Outputs {
		required = required.Add(o.Amount)
	}
	for _, in := range body.Inputs {
		required = required.Sub(in.Amount)
	}
	for _, w := range body.Withdrawals {
		required = required.Sub(value.NewLovelace(int64(w.Coin)))
	}
	for _, m := range body.Mints {
		delta := value.NewFromAssets(map[string]*big.Int{m.Unit(): m.Amount})
		required = required.Sub(delta)
	}
	return required
}
