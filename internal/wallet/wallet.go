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

// Package wallet derives a single payment/stake keypair from a mnemonic
// via bursa and exposes the signing surface the builder's SigningKey
// channel needs once a draft body reaches the external Codec for
// encoding and witnessing.
package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/bursa"
	"github.com/Salvionied/apollo/serialization/Key"

	"github.com/mgpai22/cardano-txbuilder-go/internal/config"
)

// Wallet wraps a derived bursa wallet with the apollo-typed verification
// and signing keys the Codec collaborator needs to witness a finalized
// transaction body.
type Wallet struct {
	inner bursa.Wallet
}

var global *Wallet

// Load derives the global wallet from the configured mnemonic.
func Load() error {
	cfg := config.GetConfig()
	if cfg.Wallet.Mnemonic == "" {
		return fmt.Errorf("wallet: no mnemonic configured")
	}
	w, err := New(cfg.Wallet.Mnemonic)
	if err != nil {
		return err
	}
	global = w
	return nil
}

// Get returns the global wallet, or nil if Load hasn't been called.
func Get() *Wallet {
	return global
}

// New derives a Wallet from a BIP-39 mnemonic.
func New(mnemonic string) (*Wallet, error) {
	w, err := bursa.NewWallet(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("wallet: deriving from mnemonic: %w", err)
	}
	return &Wallet{inner: w}, nil
}

// PaymentAddress is the bech32 payment address this wallet controls.
func (w *Wallet) PaymentAddress() string {
	return w.inner.PaymentAddress
}

// VerificationKey returns the apollo-typed payment verification key, with
// the CBOR wrapper bytes bursa's CborHex encoding carries stripped off.
func (w *Wallet) VerificationKey() (Key.VerificationKey, error) {
	raw, err := hex.DecodeString(w.inner.PaymentVKey.CborHex)
	if err != nil {
		return Key.VerificationKey{}, fmt.Errorf("wallet: decoding verification key: %w", err)
	}
	return Key.VerificationKey{Payload: raw[2:]}, nil
}

// SigningKey returns the apollo-typed payment signing key. bursa's
// extended signing key is 2 bytes of CBOR wrapper, a 64-byte scalar, a
// 32-byte chain code, and a 32-byte public key; the scalar plus public
// key is what apollo's ed25519 signer expects, so the chain-code bytes in
// the middle are dropped.
func (w *Wallet) SigningKey() (Key.SigningKey, error) {
	raw, err := hex.DecodeString(w.inner.PaymentExtendedSKey.CborHex)
	if err != nil {
		return Key.SigningKey{}, fmt.Errorf("wallet: decoding signing key: %w", err)
	}
	raw = raw[2:]
	if len(raw) < 96 {
		return Key.SigningKey{}, fmt.Errorf("wallet: extended signing key too short: %d bytes", len(raw))
	}
	payload := append(append([]byte{}, raw[:64]...), raw[96:]...)
	return Key.SigningKey{Payload: payload}, nil
}
