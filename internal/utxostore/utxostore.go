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

// Package utxostore is a badger-backed cache of known UTxOs, keyed by
// address, that SelectUtxosFrom callers can draw their candidate pool from
// instead of re-fetching from the chain on every builder run.
package utxostore

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/dgraph-io/badger/v4"

	"github.com/mgpai22/cardano-txbuilder-go/internal/config"
	"github.com/mgpai22/cardano-txbuilder-go/internal/logging"
	"github.com/mgpai22/cardano-txbuilder-go/internal/txbuilder"
	"github.com/mgpai22/cardano-txbuilder-go/internal/value"
)

// entry is the on-disk shape of a cached UTxO. Quantities are kept as
// decimal strings rather than *big.Int directly, since the cbor codec's
// handling of arbitrary-precision integers outside the ledger types it was
// built for isn't something this cache should depend on.
type entry struct {
	TxHash  string
	TxIndex uint32
	Address string
	Amounts map[string]string
}

// Store wraps a badger.DB with the address -> []UTxO access pattern the
// builder needs.
type Store struct {
	db *badger.DB
}

var global = &Store{}

// Open initializes the global store at the configured storage directory.
func Open() error {
	cfg := config.GetConfig()
	logger := logging.GetLogger()

	opts := badger.DefaultOptions(cfg.Storage.Directory).
		WithLogger(newBadgerLogger()).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("utxostore: opening badger at %s: %w", cfg.Storage.Directory, err)
	}
	global.db = db
	logger.Infow("utxo store opened", "dir", cfg.Storage.Directory)
	return nil
}

// Close releases the underlying badger handle.
func Close() error {
	if global.db == nil {
		return nil
	}
	return global.db.Close()
}

// Get returns the global store.
func Get() *Store {
	return global
}

func utxoKey(address string, txHash string, txIndex uint32) []byte {
	return []byte(fmt.Sprintf("utxo_%s_%s_%d", address, txHash, txIndex))
}

func addressIndexKey(address string) []byte {
	return []byte(fmt.Sprintf("address_%s", address))
}

// Put caches a single UTxO under its owning address.
func (s *Store) Put(u txbuilder.UTxO) error {
	e := entry{
		TxHash:  u.TxHash,
		TxIndex: u.TxIndex,
		Address: u.Address,
		Amounts: map[string]string{},
	}
	for _, unit := range u.Amount.Units() {
		e.Amounts[unit] = u.Amount.Get(unit).String()
	}

	buf, err := cbor.Encode(&e)
	if err != nil {
		return fmt.Errorf("utxostore: encoding entry: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(utxoKey(u.Address, u.TxHash, u.TxIndex), buf); err != nil {
			return err
		}
		return s.appendIndex(txn, u.Address, u.TxHash, u.TxIndex)
	})
}

// appendIndex records (txHash, txIndex) in the address's index entry,
// skipping if already present.
func (s *Store) appendIndex(txn *badger.Txn, address string, txHash string, txIndex uint32) error {
	var refs []string
	item, err := txn.Get(addressIndexKey(address))
	switch {
	case err == nil:
		if valErr := item.Value(func(v []byte) error {
			_, decErr := cbor.Decode(v, &refs)
			return decErr
		}); valErr != nil {
			refs = nil
		}
	case err == badger.ErrKeyNotFound:
		refs = nil
	default:
		return err
	}

	ref := fmt.Sprintf("%s.%d", txHash, txIndex)
	for _, r := range refs {
		if r == ref {
			return nil
		}
	}
	refs = append(refs, ref)

	buf, err := cbor.Encode(&refs)
	if err != nil {
		return err
	}
	return txn.Set(addressIndexKey(address), buf)
}

// GetUtxos returns every UTxO cached under address.
func (s *Store) GetUtxos(address string) ([]txbuilder.UTxO, error) {
	var refs []string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(addressIndexKey(address))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			_, decErr := cbor.Decode(v, &refs)
			return decErr
		})
	})
	if err != nil {
		return nil, fmt.Errorf("utxostore: reading address index: %w", err)
	}

	utxos := make([]txbuilder.UTxO, 0, len(refs))
	err = s.db.View(func(txn *badger.Txn) error {
		for _, ref := range refs {
			parts := strings.Split(ref, ".")
			if len(parts) != 2 {
				continue
			}
			txHash := parts[0]
			idx, err := strconv.ParseUint(parts[1], 10, 32)
			if err != nil {
				continue
			}
			txIndex := uint32(idx)
			item, err := txn.Get(utxoKey(address, txHash, txIndex))
			if err != nil {
				continue
			}
			var e entry
			if decErr := item.Value(func(v []byte) error {
				_, derr := cbor.Decode(v, &e)
				return derr
			}); decErr != nil {
				continue
			}
			amounts := map[string]*big.Int{}
			for unit, qty := range e.Amounts {
				n, ok := new(big.Int).SetString(qty, 10)
				if !ok {
					continue
				}
				amounts[unit] = n
			}
			utxos = append(utxos, txbuilder.UTxO{
				TxHash:  e.TxHash,
				TxIndex: e.TxIndex,
				Address: e.Address,
				Amount:  value.NewFromAssets(amounts),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return utxos, nil
}

// Remove evicts a spent UTxO from the cache.
func (s *Store) Remove(address string, txHash string, txIndex uint32) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(utxoKey(address, txHash, txIndex))
	})
}

// badgerLogger adapts the module's zap.SugaredLogger to badger's Logger
// interface (Errorf/Warningf/Infof/Debugf).
type badgerLogger struct {
	sugar interface {
		Errorf(string, ...any)
		Warnf(string, ...any)
		Infof(string, ...any)
		Debugf(string, ...any)
	}
}

func newBadgerLogger() *badgerLogger {
	return &badgerLogger{sugar: logging.GetLogger()}
}

func (l *badgerLogger) Errorf(msg string, args ...any)   { l.sugar.Errorf(msg, args...) }
func (l *badgerLogger) Warningf(msg string, args ...any) { l.sugar.Warnf(msg, args...) }
func (l *badgerLogger) Infof(msg string, args ...any)    { l.sugar.Infof(msg, args...) }
func (l *badgerLogger) Debugf(msg string, args ...any)   { l.sugar.Debugf(msg, args...) }
