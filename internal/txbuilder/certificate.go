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

// Certificates have no partially-built pending slot the way inputs, mints
// and withdrawals do: each constructor below appends a complete Basic
// certificate immediately. CertificateScript, CertificateTxInReference and
// CertificateRedeemerValue instead pop the most recently appended
// certificate, upgrade it to a SimpleScript or Script certificate, and push
// it back - so a script requirement can only ever decorate the certificate
// that was just added.

// RegisterPoolCertificate appends a pool-registration certificate. The
// exact pool parameter payload (pledge, cost, margin, owners, relays, ...)
// is left as poolParams for the Codec collaborator to encode.
func (b *TxBuilder) RegisterPoolCertificate(poolParams any) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.Certificates = append(b.body.Certificates, Certificate{
		Kind:       CertificateBasic,
		Type:       CertRegisterPool,
		PoolParams: poolParams,
	})
	return b
}

// RetirePoolCertificate appends a pool-retirement certificate, effective at
// epoch.
func (b *TxBuilder) RetirePoolCertificate(poolId string, epoch uint64) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.Certificates = append(b.body.Certificates, Certificate{
		Kind:   CertificateBasic,
		Type:   CertRetirePool,
		PoolId: poolId,
		Epoch:  epoch,
	})
	return b
}

// RegisterStakeCertificate appends a stake-registration certificate for
// stakeAddress.
func (b *TxBuilder) RegisterStakeCertificate(stakeAddress string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.Certificates = append(b.body.Certificates, Certificate{
		Kind:         CertificateBasic,
		Type:         CertRegisterStake,
		StakeAddress: stakeAddress,
	})
	return b
}

// DeregisterStakeCertificate appends a stake-deregistration certificate for
// stakeAddress.
func (b *TxBuilder) DeregisterStakeCertificate(stakeAddress string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.Certificates = append(b.body.Certificates, Certificate{
		Kind:         CertificateBasic,
		Type:         CertDeregisterStake,
		StakeAddress: stakeAddress,
	})
	return b
}

// DelegateStakeCertificate appends a stake-delegation certificate sending
// stakeAddress's stake to delegatedTo (a pool ID or, post-Conway, a DRep).
func (b *TxBuilder) DelegateStakeCertificate(stakeAddress string, delegatedTo string) *TxBuilder {
	if b.err != nil {
		return b
	}
	b.body.Certificates = append(b.body.Certificates, Certificate{
		Kind:         CertificateBasic,
		Type:         CertDelegateStake,
		StakeAddress: stakeAddress,
		DelegatedTo:  delegatedTo,
	})
	return b
}

// CertificateScript upgrades the most recently appended certificate to
// require a script, provided inline as CBOR. With version given, the
// certificate becomes a Plutus Script certificate at that version;
// omitted, it becomes a native SimpleScript certificate.
func (b *TxBuilder) CertificateScript(scriptCBORHex string, version ...PlutusVersion) *TxBuilder {
	if b.err != nil {
		return b
	}
	cert, err := b.popLastCertificate("CertificateScript")
	if err != nil {
		return b.fail(err)
	}
	if len(version) > 0 {
		cert.Kind = CertificateScript
		cert.Version = version[0]
		cert.ScriptSource = &ScriptSource{
			Kind:          ScriptSourceProvided,
			Version:       version[0],
			ScriptCBORHex: scriptCBORHex,
		}
	} else {
		cert.Kind = CertificateSimpleScript
		cert.ScriptSource = &ScriptSource{
			Kind:          ScriptSourceProvided,
			ScriptCBORHex: scriptCBORHex,
		}
	}
	b.body.Certificates = append(b.body.Certificates, *cert)
	return b
}

// CertificateTxInReference upgrades the most recently appended certificate
// to require a script, referenced from an on-chain UTxO instead of
// uploaded inline. With version given, the certificate becomes a Plutus
// Script certificate at that version; omitted, it becomes a native
// SimpleScript certificate.
func (b *TxBuilder) CertificateTxInReference(txHash string, txIndex uint32, scriptHash string, scriptSize string, version ...PlutusVersion) *TxBuilder {
	if b.err != nil {
		return b
	}
	cert, err := b.popLastCertificate("CertificateTxInReference")
	if err != nil {
		return b.fail(err)
	}
	if len(version) > 0 {
		cert.Kind = CertificateScript
		cert.Version = version[0]
	} else {
		cert.Kind = CertificateSimpleScript
	}
	cert.ScriptSource = &ScriptSource{
		Kind:       ScriptSourceInline,
		RefTxHash:  txHash,
		RefTxIndex: txIndex,
		ScriptHash: scriptHash,
		ScriptSize: scriptSize,
	}
	if len(version) > 0 {
		cert.ScriptSource.Version = version[0]
	}
	b.body.Certificates = append(b.body.Certificates, *cert)
	return b
}

// CertificateRedeemerValue attaches a redeemer to the most recently
// appended certificate, which must already have been upgraded to a Plutus
// Script certificate via CertificateScript or CertificateTxInReference
// (called with a version).
func (b *TxBuilder) CertificateRedeemerValue(data BuilderData, exUnits ...ExecutionUnits) *TxBuilder {
	if b.err != nil {
		return b
	}
	cert, err := b.popLastCertificate("CertificateRedeemerValue")
	if err != nil {
		return b.fail(err)
	}
	if cert.Kind != CertificateScript {
		b.body.Certificates = append(b.body.Certificates, *cert)
		return b.fail(&MisuseError{Op: "CertificateRedeemerValue", Channel: "certificate", State: "Basic or SimpleScript (no Plutus script)"})
	}
	units := DefaultExecutionUnits
	if len(exUnits) > 0 {
		units = exUnits[0]
	}
	cert.Redeemer = &Redeemer{Data: data, ExUnits: units}
	b.body.Certificates = append(b.body.Certificates, *cert)
	return b
}

// popLastCertificate removes and returns the most recently appended
// certificate, or a MisuseError naming op if none exists.
func (b *TxBuilder) popLastCertificate(op string) (*Certificate, error) {
	n := len(b.body.Certificates)
	if n == 0 {
		return nil, &MisuseError{Op: op, Channel: "certificate", State: "none"}
	}
	cert := b.body.Certificates[n-1]
	b.body.Certificates = b.body.Certificates[:n-1]
	return &cert, nil
}
