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

// Package provider defines the boundary interfaces the builder talks to
// for everything outside its own process: chain state, submission, and
// off-chain Plutus evaluation. These map onto the external Fetcher,
// Submitter and Evaluator collaborators; the builder only ever consumes
// this interface, never a concrete backend, so a caller can swap Blockfrost
// for Ogmios or a local node without touching txbuilder.
package provider

import (
	"context"
	"time"

	"github.com/Salvionied/apollo/serialization/PlutusData"
	"github.com/Salvionied/apollo/serialization/Redeemer"
	"github.com/Salvionied/apollo/serialization/UTxO"
	"github.com/Salvionied/apollo/txBuilding/Backend/Base"
)

// OutRef identifies a UTxO by its output reference.
type OutRef struct {
	TxHash string
	Index  uint32
}

// Delegation describes a reward address's current stake delegation.
type Delegation struct {
	Active  bool
	Rewards uint64
	PoolId  string
	Epoch   int
}

// EvalRedeemer is one entry from a provider's script-evaluation response:
// the execution units measured for the redeemer at (Tag, Index), the same
// triple the Evaluation Reconciler's Action carries. EvaluateTx itself
// returns a map keyed by "tag:index" rather than this type.
type EvalRedeemer struct {
	Tag     Redeemer.RedeemerTag
	Index   uint32
	ExUnits Redeemer.ExecutionUnits
}

// Tip describes the current chain tip.
type Tip struct {
	Slot   uint64
	Height uint64
	Hash   string
}

// Provider is the builder's entire view of the outside world: protocol
// parameters, UTxO lookups, submission, and off-chain evaluation. A
// concrete implementation (Blockfrost, Ogmios, a local node, or an
// in-memory fake for tests) satisfies this without the builder core ever
// depending on which one is in use.
type Provider interface {
	// GetProtocolParameters fetches the current protocol parameters.
	GetProtocolParameters(ctx context.Context) (Base.ProtocolParameters, error)

	// GetGenesisParams fetches the genesis parameters.
	GetGenesisParams(ctx context.Context) (Base.GenesisParameters, error)

	// Network returns the network id.
	Network() int

	// Epoch returns the current epoch.
	Epoch(ctx context.Context) (int, error)

	// GetTip fetches the current tip of the blockchain.
	GetTip(ctx context.Context) (Tip, error)

	// GetUtxosByAddress queries UTxOs by a Bech32 address.
	GetUtxosByAddress(ctx context.Context, addr string) ([]UTxO.UTxO, error)

	// GetUtxosWithUnit queries UTxOs by address, filtered by a specific
	// asset unit.
	GetUtxosWithUnit(ctx context.Context, addr string, unit string) ([]UTxO.UTxO, error)

	// GetUtxoByUnit queries a UTxO by a specific unit (an NFT, or a
	// fungible token whose entire supply sits in one UTxO). Returns
	// (nil, nil) if not found but no other error occurred.
	GetUtxoByUnit(ctx context.Context, unit string) (*UTxO.UTxO, error)

	// GetUtxosByOutRef queries UTxOs by their output references.
	GetUtxosByOutRef(ctx context.Context, outRefs []OutRef) ([]UTxO.UTxO, error)

	// GetDelegation fetches delegation information for a reward address.
	GetDelegation(ctx context.Context, rewardAddress string) (Delegation, error)

	// GetDatum fetches a datum by its hash.
	GetDatum(ctx context.Context, datumHash string) (PlutusData.PlutusData, error)

	// AwaitTx waits for a transaction to be confirmed, polling at
	// checkInterval (a zero or negative duration lets the provider use its
	// own default).
	AwaitTx(ctx context.Context, txHash string, checkInterval time.Duration) (bool, error)

	// SubmitTx submits a signed transaction to the network and returns its
	// hash.
	SubmitTx(ctx context.Context, tx []byte) (string, error)

	// EvaluateTx evaluates a transaction's scripts and returns the measured
	// execution units per redeemer, keyed by a "tag:index" string.
	// additionalUTxOs covers inputs not yet visible on-chain (e.g. from a
	// still-unsubmitted parent transaction).
	EvaluateTx(ctx context.Context, tx []byte, additionalUTxOs []UTxO.UTxO) (map[string]Redeemer.ExecutionUnits, error)

	// GetScriptCborByScriptHash fetches a script's CBOR by its hash.
	GetScriptCborByScriptHash(ctx context.Context, scriptHash string) (string, error)
}
