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

import "fmt"

// MisuseError is raised immediately when an operation runs against the
// wrong channel state (e.g. txInDatumValue on a PubKey pending input). It
// names the offending operation and state; there is no recovery.
type MisuseError struct {
	Op      string
	Channel string
	State   string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf(
		"txbuilder: misuse: %s is not valid on a %s pending %s",
		e.Op,
		e.State,
		e.Channel,
	)
}

// IncompleteItemError is raised at finalize when a Script input, Plutus
// mint, or ScriptWithdrawal is missing a required subfield.
type IncompleteItemError struct {
	Channel string
	Index   int
	Missing []string
}

func (e *IncompleteItemError) Error() string {
	return fmt.Sprintf(
		"txbuilder: incomplete %s item at index %d: missing %v",
		e.Channel,
		e.Index,
		e.Missing,
	)
}

// SelectionError is raised at finalize when UTxO Selection cannot cover the
// required assets from the available pool. No partial inputs are appended
// when this occurs.
type SelectionError struct {
	Missing map[string]string // unit -> shortfall, as a decimal string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("txbuilder: selection could not cover required assets: %v", e.Missing)
}

// EncodingError wraps a failure from the encoding layer: malformed CBOR hex,
// or malformed JSON supplied as JSON/CBOR content.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("txbuilder: encoding error in %s: %s", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
