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

// Package reconcile implements the Evaluation Reconciler: it folds an
// external Plutus-evaluator's measured execution units back into a
// BuilderBody's redeemers, padded by a safety multiplier, replacing the
// large default budget every new redeemer starts with.
package reconcile

import (
	"math/big"

	"github.com/mgpai22/cardano-txbuilder-go/internal/txbuilder"
)

// Tag names which redeemer-bearing channel an Action targets, following the
// four purposes a Plutus redeemer can serve.
type Tag int

const (
	Spend Tag = iota
	Mint
	Cert
	Reward
)

func (t Tag) String() string {
	switch t {
	case Spend:
		return "SPEND"
	case Mint:
		return "MINT"
	case Cert:
		return "CERT"
	case Reward:
		return "REWARD"
	default:
		return "UNKNOWN"
	}
}

// Action is one measured result from an external Plutus evaluator: the
// redeemer at (Tag, Index) cost Budget to run.
type Action struct {
	Tag    Tag
	Index  int
	Budget txbuilder.ExecutionUnits
}

// DefaultMultiplier is applied to every measured budget before it overwrites
// a redeemer's ExUnits, padding against the evaluator under-estimating due
// to execution-path differences between evaluation and submission.
const DefaultMultiplier = 1.10

// Reconcile overwrites the ExUnits of every redeemer slot addressed by
// actions with its measured (and multiplier-padded) budget. Actions whose
// (Tag, Index) does not address an existing, redeemer-bearing slot are
// skipped silently: the reconciler only ever tightens units it can locate,
// it never invents or removes redeemer slots. multiplier <= 0 is treated as
// DefaultMultiplier.
func Reconcile(body *txbuilder.BuilderBody, actions []Action, multiplier float64) {
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}

	for _, action := range actions {
		redeemer := locate(body, action)
		if redeemer == nil {
			continue
		}
		redeemer.ExUnits = scale(action.Budget, multiplier)
	}
}

// locate finds the redeemer slot an Action addresses, or nil if the index
// is out of range or the slot has no redeemer (e.g. a PubKey input, a
// native-script mint, or a basic certificate).
func locate(body *txbuilder.BuilderBody, action Action) *txbuilder.Redeemer {
	switch action.Tag {
	case Spend:
		if action.Index < 0 || action.Index >= len(body.Inputs) {
			return nil
		}
		in := body.Inputs[action.Index]
		if in.Kind != txbuilder.TxInScript || in.ScriptTxIn == nil {
			return nil
		}
		return in.ScriptTxIn.Redeemer
	case Mint:
		if action.Index < 0 || action.Index >= len(body.Mints) {
			return nil
		}
		m := body.Mints[action.Index]
		if m.Type != txbuilder.MintPlutus {
			return nil
		}
		return m.Redeemer
	case Cert:
		if action.Index < 0 || action.Index >= len(body.Certificates) {
			return nil
		}
		c := body.Certificates[action.Index]
		if c.Kind != txbuilder.CertificateScript {
			return nil
		}
		return c.Redeemer
	case Reward:
		if action.Index < 0 || action.Index >= len(body.Withdrawals) {
			return nil
		}
		w := body.Withdrawals[action.Index]
		if w.Kind != txbuilder.WithdrawalScript {
			return nil
		}
		return w.Redeemer
	default:
		return nil
	}
}

// scale multiplies a measured budget by multiplier and floors the result.
func scale(budget txbuilder.ExecutionUnits, multiplier float64) txbuilder.ExecutionUnits {
	return txbuilder.ExecutionUnits{
		Mem:   scaleUnit(budget.Mem, multiplier),
		Steps: scaleUnit(budget.Steps, multiplier),
	}
}

// scaleUnit computes floor(units * multiplier) using integer arithmetic
// scaled by 1e6 so the result is exact for any multiplier expressible with
// up to six decimal digits (1.10, 1.25, etc.), avoiding float64 rounding
// drift on the large uint64 budgets Plutus execution units reach.
func scaleUnit(units uint64, multiplier float64) uint64 {
	const scale = 1_000_000
	scaledMultiplier := new(big.Int).SetInt64(int64(multiplier * scale))
	product := new(big.Int).Mul(new(big.Int).SetUint64(units), scaledMultiplier)
	product.Div(product, big.NewInt(scale))
	return product.Uint64()
}
