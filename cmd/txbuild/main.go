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

// txbuild is a small demonstration CLI for the transaction-construction
// engine: it wires up config, logging and an in-memory Provider, then walks a draft transaction through the builder's channels,
// UTxO selection, and finalization.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Salvionied/apollo/txBuilding/Backend/Base"

	"github.com/mgpai22/cardano-txbuilder-go/internal/config"
	"github.com/mgpai22/cardano-txbuilder-go/internal/logging"
	"github.com/mgpai22/cardano-txbuilder-go/internal/provider"
	"github.com/mgpai22/cardano-txbuilder-go/internal/selection"
	"github.com/mgpai22/cardano-txbuilder-go/internal/txbuilder"
	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

var cmdlineFlags struct {
	configFile string
}

func main() {
	flag.StringVar(&cmdlineFlags.configFile, "config", "", "path to YAML config file")
	flag.Parse()

	if _, err := config.Load(cmdlineFlags.configFile); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	logging.Configure()
	logger := logging.GetLogger()

	const (
		changeAddr = "addr_test1qpchangechangechangechangechangechangechangechangechangechange"
		payeeAddr  = "addr_test1qppayeepayeepayeepayeepayeepayeepayeepayeepayeepayee"
	)

	fp := provider.NewFake(0, Base.ProtocolParameters{})
	if err := fp.AddUTxO(changeAddr, "aa00000000000000000000000000000000000000000000000000000000000000", 0, 3_000_000); err != nil {
		logger.Errorf("seeding fake utxo: %s", err)
		os.Exit(1)
	}
	if err := fp.AddUTxO(changeAddr, "bb00000000000000000000000000000000000000000000000000000000000000", 0, 10_000_000); err != nil {
		logger.Errorf("seeding fake utxo: %s", err)
		os.Exit(1)
	}

	ctx := context.Background()
	utxos, err := fp.GetUtxosByAddress(ctx, changeAddr)
	if err != nil {
		logger.Errorf("fetching utxos: %s", err)
		os.Exit(1)
	}
	logger.Infow("fetched candidate utxos", "address", changeAddr, "count", len(utxos))

	pool := make([]txbuilder.UTxO, 0, len(utxos))
	for _, u := range utxos {
		lovelace := u.Output.GetAmount().GetCoin()
		pool = append(pool, txbuilder.UTxO{
			TxHash:  fmt.Sprintf("%x", u.Input.TransactionId),
			TxIndex: uint32(u.Input.Index),
			Address: changeAddr,
			Amount:  value.NewLovelace(lovelace),
		})
	}

	body, err := txbuilder.New().
		ChangeAddress(changeAddr).
		TxOut(payeeAddr, value.NewLovelace(6_000_000)).
		SelectUtxosFrom(pool, selection.LargestFirst, 1_000_000, true).
		Finalize()
	if err != nil {
		logger.Errorf("finalizing draft transaction: %s", err)
		os.Exit(1)
	}

	logger.Infow("draft transaction finalized",
		"inputs", len(body.Inputs),
		"outputs", len(body.Outputs),
		"mints", len(body.Mints),
		"certificates", len(body.Certificates),
		"withdrawals", len(body.Withdrawals),
	)
	for _, in := range body.Inputs {
		fmt.Printf("input:  %s#%d (kind=%d)\n", in.TxHash, in.TxIndex, in.Kind)
	}
	for _, out := range body.Outputs {
		fmt.Printf("output: %s -> %d lovelace\n", out.Address, out.Amount.Lovelace())
	}
}
