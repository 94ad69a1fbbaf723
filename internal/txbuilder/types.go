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

// Package txbuilder implements the fluent transaction-builder state
// machine: a sequence of chained operations assembles a BuilderBody one
// channel (input/output/mint/withdrawal/certificate/collateral) at a time.
package txbuilder

import (
	"encoding/json"
	"math/big"

	"github.com/Salvionied/apollo/serialization/PlutusData"

	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

// PlutusVersion names a Plutus script language version.
type PlutusVersion int

const (
	V1 PlutusVersion = iota + 1
	V2
	V3
)

func (v PlutusVersion) String() string {
	switch v {
	case V1:
		return "V1"
	case V2:
		return "V2"
	case V3:
		return "V3"
	default:
		return "unknown"
	}
}

// BuilderDataType names the encoding a BuilderData value carries.
type BuilderDataType int

const (
	// Native is an in-memory Plutus-Data tagged union.
	Native BuilderDataType = iota
	// JSON is "detailed schema" JSON, stringified with big-integer
	// preservation.
	JSON
	// CBOR is an opaque hex string, passed through verbatim.
	CBOR
)

// BuilderData is used uniformly for datums and redeemers: one tagged union
// over three wire encodings so callers can supply whichever is most
// convenient.
type BuilderData struct {
	Type BuilderDataType
	// NativeValue holds the Plutus-Data value when Type == Native.
	NativeValue PlutusData.PlutusData
	// JSONContent holds the big-integer-safe-stringified JSON when
	// Type == JSON.
	JSONContent string
	// CBORHex holds the opaque hex-encoded CBOR when Type == CBOR.
	CBORHex string
}

// NewNativeData wraps a Plutus-Data value as BuilderData.
func NewNativeData(d PlutusData.PlutusData) BuilderData {
	return BuilderData{Type: Native, NativeValue: d}
}

// NewCBORData wraps an opaque CBOR hex string as BuilderData.
func NewCBORData(hex string) BuilderData {
	return BuilderData{Type: CBOR, CBORHex: hex}
}

// NewJSONData stringifies v with big-integer preservation (via
// json.Number, never float64) and wraps it as BuilderData. Accepts any
// value encoding/json can marshal; big.Int fields should be passed as
// json.Number(value.String()) by the caller to survive the round trip
// losslessly.
func NewJSONData(v any) (BuilderData, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return BuilderData{}, &EncodingError{Op: "NewJSONData", Err: err}
	}
	return BuilderData{Type: JSON, JSONContent: string(buf)}, nil
}

// BigIntJSON renders a big.Int as a json.Number so it survives
// marshal/unmarshal without floating-point precision loss.
func BigIntJSON(i *big.Int) json.Number {
	if i == nil {
		return json.Number("0")
	}
	return json.Number(i.String())
}

// ExecutionUnits is a Plutus script's metered cost, in memory and CPU steps.
type ExecutionUnits struct {
	Mem   uint64
	Steps uint64
}

// DefaultExecutionUnits is the large pre-configured budget assigned to a new
// redeemer; the Evaluation Reconciler overwrites it once real evaluation
// results are available.
var DefaultExecutionUnits = ExecutionUnits{Mem: 14_000_000, Steps: 10_000_000_000}

// Redeemer pairs arbitrary script input data with an execution-unit budget.
type Redeemer struct {
	Data    BuilderData
	ExUnits ExecutionUnits
}

// NewDefaultRedeemer wraps data with DefaultExecutionUnits.
func NewDefaultRedeemer(data BuilderData) *Redeemer {
	return &Redeemer{Data: data, ExUnits: DefaultExecutionUnits}
}

// ScriptSourceKind distinguishes an inline-provided script from one
// referenced by an on-chain UTxO.
type ScriptSourceKind int

const (
	ScriptSourceProvided ScriptSourceKind = iota
	ScriptSourceInline
)

// ScriptSource is either a script provided inline as CBOR, or a reference to
// an on-chain UTxO carrying the script (avoiding re-uploading its bytes).
type ScriptSource struct {
	Kind ScriptSourceKind

	// Provided fields.
	ScriptCBORHex string
	Version       PlutusVersion // Native scripts leave this zero.

	// Inline fields.
	RefTxHash    string
	RefTxIndex   uint32
	ScriptHash   string
	ScriptSize   string
}

// DatumSourceKind distinguishes a datum supplied inline in the witness set
// from one that is inlined directly in the spent output.
type DatumSourceKind int

const (
	DatumSourceProvided DatumSourceKind = iota
	DatumSourceInline
)

// DatumSource is either a datum provided alongside the transaction, or a
// marker that the datum is already inlined in the UTxO being spent.
type DatumSource struct {
	Kind DatumSourceKind
	Data BuilderData // only meaningful when Kind == DatumSourceProvided
}

// TxInKind distinguishes the three kinds of transaction input.
type TxInKind int

const (
	TxInPubKey TxInKind = iota
	TxInSimpleScript
	TxInScript
)

// ScriptTxIn holds the three fields a Plutus-script input requires before
// it can be flushed: the script itself, the datum revealing its content,
// and the redeemer driving validation.
type ScriptTxIn struct {
	ScriptSource *ScriptSource
	DatumSource  *DatumSource
	Redeemer     *Redeemer
}

// TxIn is a single transaction input, tagged by kind per §3.
type TxIn struct {
	TxHash  string
	TxIndex uint32
	Amount  value.Value // optional; informational until selection/finalize needs it
	Address string      // optional

	Kind TxInKind

	// SimpleScript fields (Kind == TxInSimpleScript).
	SimpleScriptSource *ScriptSource

	// Script fields (Kind == TxInScript).
	ScriptTxIn *ScriptTxIn
}

// ID returns the (txHash, txIndex) identity used for dedup and for
// preventing double-selection.
func (t TxIn) ID() TxInRef {
	return TxInRef{TxHash: t.TxHash, TxIndex: t.TxIndex}
}

// TxInRef identifies a UTxO by its (txHash, txIndex) pair without carrying
// its value; used for reference inputs and collateral-free identity checks.
type TxInRef struct {
	TxHash  string
	TxIndex uint32
}

// MintType distinguishes a native-script mint (no redeemer) from a Plutus
// mint (script + redeemer both required).
type MintType int

const (
	MintNative MintType = iota
	MintPlutus
)

// MintItem is a single minted or burned asset entry. The pair
// (PolicyId, AssetName) forms the resulting asset's unit.
type MintItem struct {
	PolicyId  string // hex
	AssetName string // hex
	Amount    *big.Int
	Type      MintType

	ScriptSource *ScriptSource
	Redeemer     *Redeemer // Plutus only
}

// Unit returns the wire unit string for this mint's resulting asset.
func (m MintItem) Unit() string {
	return m.PolicyId + m.AssetName
}

// WithdrawalKind distinguishes the three kinds of reward withdrawal.
type WithdrawalKind int

const (
	WithdrawalPubKey WithdrawalKind = iota
	WithdrawalSimpleScript
	WithdrawalScript
)

// Withdrawal draws down a stake account balance.
type Withdrawal struct {
	RewardAddress string
	Coin          uint64
	Kind          WithdrawalKind

	ScriptSource *ScriptSource // script variants only
	Redeemer     *Redeemer     // Script variant only
}

// CertificateKind distinguishes the three kinds of certificate wrapper.
type CertificateKind int

const (
	CertificateBasic CertificateKind = iota
	CertificateSimpleScript
	CertificateScript
)

// CertType enumerates the stake/pool lifecycle operation a certificate
// performs.
type CertType int

const (
	CertRegisterPool CertType = iota
	CertRetirePool
	CertRegisterStake
	CertDeregisterStake
	CertDelegateStake
)

// Certificate wraps a stake/pool lifecycle operation, optionally behind a
// native or Plutus script requirement.
type Certificate struct {
	Kind CertificateKind
	Type CertType

	// RegisterPool
	PoolParams any
	// RetirePool
	PoolId string
	Epoch  uint64
	// RegisterStake / DeregisterStake / DelegateStake
	StakeAddress string
	DelegatedTo  string // DelegateStake only

	ScriptSource *ScriptSource // SimpleScript/Script only
	Version      PlutusVersion // Script only
	Redeemer     *Redeemer     // Script only
}

// DatumKind distinguishes a hashed output datum from an inline one.
type DatumKind int

const (
	DatumHash DatumKind = iota
	DatumInline
)

// OutputDatum attaches a datum to a transaction output.
type OutputDatum struct {
	Kind DatumKind
	Data BuilderData
}

// ReferenceScript attaches a reusable script to an output, letting later
// transactions reference it instead of re-uploading its bytes.
type ReferenceScript struct {
	CodeCBORHex string
	Version     PlutusVersion
}

// Output is a single transaction output.
type Output struct {
	Address         string
	Amount          value.Value
	Datum           *OutputDatum
	ReferenceScript *ReferenceScript
}

// UTxO is the builder's view of an unspent output: just enough to drive
// selection and to append as a PubKey input. The external Wallet/Fetcher
// collaborators are responsible for supplying these from chain state; see
// internal/provider for the richer, apollo-typed fetch interface.
type UTxO struct {
	TxHash  string
	TxIndex uint32
	Address string
	Amount  value.Value
}

func (u UTxO) ID() TxInRef {
	return TxInRef{TxHash: u.TxHash, TxIndex: u.TxIndex}
}
