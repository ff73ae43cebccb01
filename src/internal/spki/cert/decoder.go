// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkicert

import (
	"fmt"

	"github.com/levush/hipl-sub001/src/internal/spki/pattern"
)

// Extraction patterns for the three independently anchored clauses of a
// certificate blob. Field bodies use the wire alphabet (base64 characters
// plus the sequence delimiters); the closing runs `|)))`, `"))` and `|))`
// are part of the wire contract and terminate each clause.
const (
	publicKeyPattern = `\(public_key [ A-Za-z0-9+/()#=|-]+\|\)\)\)`
	statementPattern = `\(cert [ A-Za-z0-9:"_()-]+"\)\)`
	signaturePattern = `\(signature [ A-Za-z0-9+/()=|-]+\|\)\)`
)

// Decode splits a raw certificate blob into its three logical sequences
// and returns a fully populated Record.
//
// Decoding is all-or-nothing: each clause is extracted by its own anchored
// pattern and any missing clause fails the whole decode with the error
// naming that clause. A partially filled Record is never returned. The
// returned Record's Verified state is VerificationUnknown.
func Decode(raw string) (*Record, error) {
	if len(raw) > MaxCertificateSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCertificateTooLarge, len(raw))
	}

	publicKey, err := pattern.Extract(publicKeyPattern, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPublicKeyNotFound, err)
	}

	statement, err := pattern.Extract(statementPattern, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatementNotFound, err)
	}

	signature, err := pattern.Extract(signaturePattern, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureNotFound, err)
	}

	return &Record{
		PublicKey: publicKey,
		Statement: statement,
		Signature: signature,
		Verified:  VerificationUnknown,
	}, nil
}
