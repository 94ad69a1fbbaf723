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
	"errors"
	"fmt"
)

// Sentinel errors a Provider implementation wraps into an APIError, or
// returns bare, so callers can classify failures with errors.Is regardless
// of which backend is behind the interface.
var (
	ErrNotFound           = errors.New("provider: not found")
	ErrRateLimited        = errors.New("provider: rate limited")
	ErrTxSubmissionFailed = errors.New("provider: transaction submission failed")
	ErrEvaluationFailed   = errors.New("provider: script evaluation failed")
	ErrInvalidAddress     = errors.New("provider: invalid address")
	ErrInvalidUnit        = errors.New("provider: invalid unit")
	ErrNotImplemented     = errors.New("provider: not implemented")
	ErrInvalidInput       = errors.New("provider: invalid input")
	ErrProviderInternal   = errors.New("provider: internal error")
	ErrTimeout            = errors.New("provider: timeout")
	ErrTxTooLarge         = errors.New("provider: transaction too large")
	ErrValueNotConserved  = errors.New("provider: value not conserved")
	ErrBadInputs          = errors.New("provider: bad inputs")
	ErrMultipleUTXOs      = errors.New("provider: multiple utxos found for unit")
)

// APIError wraps a backend's raw error response with the sentinel it maps
// to, so callers can both classify it generically and inspect the
// backend-specific detail if they need to.
type APIError struct {
	StatusCode    int
	ProviderCode  string
	Message       string
	Details       interface{}
	UnderlyingErr error
}

func (e *APIError) Error() string {
	if e.ProviderCode != "" {
		return fmt.Sprintf("provider: %s (code=%s, status=%d): %s", e.Message, e.ProviderCode, e.StatusCode, e.UnderlyingErr)
	}
	return fmt.Sprintf("provider: %s (status=%d): %s", e.Message, e.StatusCode, e.UnderlyingErr)
}

func (e *APIError) Unwrap() error {
	return e.UnderlyingErr
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited reports whether err is or wraps ErrRateLimited.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsEvaluationFailed reports whether err is or wraps ErrEvaluationFailed.
func IsEvaluationFailed(err error) bool {
	return errors.Is(err, ErrEvaluationFailed)
}
