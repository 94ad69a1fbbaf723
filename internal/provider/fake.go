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

package provider

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Salvionied/apollo/serialization/Address"
	"github.com/Salvionied/apollo/serialization/PlutusData"
	"github.com/Salvionied/apollo/serialization/Redeemer"
	"github.com/Salvionied/apollo/serialization/TransactionInput"
	"github.com/Salvionied/apollo/serialization/TransactionOutput"
	"github.com/Salvionied/apollo/serialization/UTxO"
	"github.com/Salvionied/apollo/serialization/Value"
	"github.com/Salvionied/apollo/txBuilding/Backend/Base"
)

// Fake is an in-memory Provider for tests and the demo CLI: UTxOs are
// registered by hand instead of fetched from a real backend, submission
// only records the transaction it is handed, and evaluation returns
// whatever results were seeded with SetEvalResult.
type Fake struct {
	params     Base.ProtocolParameters
	genesis    Base.GenesisParameters
	network    int
	epoch      int
	tip        Tip
	byAddress  map[string][]UTxO.UTxO
	submitted  [][]byte
	evalResult map[string]Redeemer.ExecutionUnits
	datums     map[string]PlutusData.PlutusData
	scripts    map[string]string
}

// NewFake builds an empty Fake provider for the given network id (0 =
// testnet, 1 = mainnet).
func NewFake(network int, params Base.ProtocolParameters) *Fake {
	return &Fake{
		params:     params,
		network:    network,
		byAddress:  map[string][]UTxO.UTxO{},
		evalResult: map[string]Redeemer.ExecutionUnits{},
		datums:     map[string]PlutusData.PlutusData{},
		scripts:    map[string]string{},
	}
}

// AddUTxO registers a lovelace-only UTxO under an address, in the
// pre-Alonzo Shelley output shape (no datum, no reference script) — enough
// for the selection and balancing scenarios the demo CLI walks through.
func (f *Fake) AddUTxO(address string, txHash string, txIndex uint32, lovelace int64) error {
	txHashBytes, err := hex.DecodeString(txHash)
	if err != nil {
		return fmt.Errorf("provider: fake: invalid tx hash hex: %w", err)
	}
	addr, err := Address.DecodeAddress(address)
	if err != nil {
		return fmt.Errorf("provider: fake: invalid address: %w", err)
	}
	u := UTxO.UTxO{
		Input: TransactionInput.TransactionInput{
			TransactionId: txHashBytes,
			Index:         int(txIndex),
		},
		Output: TransactionOutput.TransactionOutput{
			IsPostAlonzo: false,
			PreAlonzo: TransactionOutput.TransactionOutputShelley{
				Address: addr,
				Amount:  Value.Value{Coin: lovelace, HasAssets: false},
			},
		},
	}
	f.byAddress[address] = append(f.byAddress[address], u)
	return nil
}

// SetEvalResult seeds the execution units EvaluateTx returns for a given
// "tag:index" key, letting tests drive the Evaluation Reconciler end to end.
func (f *Fake) SetEvalResult(key string, units Redeemer.ExecutionUnits) {
	f.evalResult[key] = units
}

func (f *Fake) GetProtocolParameters(ctx context.Context) (Base.ProtocolParameters, error) {
	return f.params, nil
}

func (f *Fake) GetGenesisParams(ctx context.Context) (Base.GenesisParameters, error) {
	return f.genesis, nil
}

func (f *Fake) Network() int {
	return f.network
}

func (f *Fake) Epoch(ctx context.Context) (int, error) {
	return f.epoch, nil
}

func (f *Fake) GetTip(ctx context.Context) (Tip, error) {
	return f.tip, nil
}

func (f *Fake) GetUtxosByAddress(ctx context.Context, addr string) ([]UTxO.UTxO, error) {
	return append([]UTxO.UTxO{}, f.byAddress[addr]...), nil
}

func (f *Fake) GetUtxosWithUnit(ctx context.Context, addr string, unit string) ([]UTxO.UTxO, error) {
	if unit == "lovelace" {
		return f.GetUtxosByAddress(ctx, addr)
	}
	return nil, fmt.Errorf("%w: fake provider only tracks lovelace-only utxos", ErrNotImplemented)
}

func (f *Fake) GetUtxoByUnit(ctx context.Context, unit string) (*UTxO.UTxO, error) {
	return nil, fmt.Errorf("%w: fake provider only tracks lovelace-only utxos", ErrNotImplemented)
}

func (f *Fake) GetUtxosByOutRef(ctx context.Context, outRefs []OutRef) ([]UTxO.UTxO, error) {
	wanted := map[OutRef]struct{}{}
	for _, r := range outRefs {
		wanted[r] = struct{}{}
	}
	var out []UTxO.UTxO
	for _, utxos := range f.byAddress {
		for _, u := range utxos {
			key := OutRef{TxHash: hex.EncodeToString(u.Input.TransactionId), Index: uint32(u.Input.Index)}
			if _, ok := wanted[key]; ok {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *Fake) GetDelegation(ctx context.Context, rewardAddress string) (Delegation, error) {
	return Delegation{}, fmt.Errorf("%w: reward address %s", ErrNotFound, rewardAddress)
}

func (f *Fake) GetDatum(ctx context.Context, datumHash string) (PlutusData.PlutusData, error) {
	d, ok := f.datums[datumHash]
	if !ok {
		return PlutusData.PlutusData{}, fmt.Errorf("%w: datum hash %s", ErrNotFound, datumHash)
	}
	return d, nil
}

func (f *Fake) AwaitTx(ctx context.Context, txHash string, checkInterval time.Duration) (bool, error) {
	for _, tx := range f.submitted {
		if hex.EncodeToString(tx) == txHash {
			return true, nil
		}
	}
	return false, nil
}

func (f *Fake) SubmitTx(ctx context.Context, tx []byte) (string, error) {
	f.submitted = append(f.submitted, tx)
	return hex.EncodeToString(tx), nil
}

func (f *Fake) EvaluateTx(ctx context.Context, tx []byte, additionalUTxOs []UTxO.UTxO) (map[string]Redeemer.ExecutionUnits, error) {
	if len(f.evalResult) == 0 {
		return nil, fmt.Errorf("%w: no evaluation seeded", ErrEvaluationFailed)
	}
	out := make(map[string]Redeemer.ExecutionUnits, len(f.evalResult))
	for k, v := range f.evalResult {
		out[k] = v
	}
	return out, nil
}

func (f *Fake) GetScriptCborByScriptHash(ctx context.Context, scriptHash string) (string, error) {
	s, ok := f.scripts[scriptHash]
	if !ok {
		return "", fmt.Errorf("%w: script hash %s", ErrNotFound, scriptHash)
	}
	return s, nil
}

var _ Provider = (*Fake)(nil)
