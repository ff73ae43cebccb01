// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkicert

import (
	"errors"

	"github.com/levush/hipl-sub001/src/internal/hit"
)

// MaxCertificateSize is the largest certificate blob the codec accepts.
// Certificates travel inside protocol packets, so anything above the
// maximum packet-equivalent size cannot be a valid peer certificate.
const MaxCertificateSize = 4096

// TimeLayout is the wire form of validity timestamps, rendered in local time.
const TimeLayout = "2006-01-02_15:04:05"

var (
	// ErrPublicKeyNotFound indicates that the public-key sequence is missing
	// from a certificate blob.
	ErrPublicKeyNotFound = errors.New("spkicert: public-key sequence not found")

	// ErrStatementNotFound indicates that the signed-statement sequence is
	// missing from a certificate blob.
	ErrStatementNotFound = errors.New("spkicert: cert statement sequence not found")

	// ErrSignatureNotFound indicates that the signature sequence is missing
	// from a certificate blob.
	ErrSignatureNotFound = errors.New("spkicert: signature sequence not found")

	// ErrAnchorNotFound indicates that a builder injection anchor does not
	// occur in the statement being assembled.
	ErrAnchorNotFound = errors.New("spkicert: injection anchor not found")

	// ErrCertificateTooLarge indicates that a blob exceeds MaxCertificateSize.
	ErrCertificateTooLarge = errors.New("spkicert: certificate exceeds maximum size")

	// ErrUnbalancedStatement indicates that an assembled statement has
	// unbalanced delimiters and must not be sent for signing.
	ErrUnbalancedStatement = errors.New("spkicert: statement delimiters are unbalanced")
)

// VerificationState is the tri-state outcome of signature verification.
// Only the verifier sets it; a freshly built or decoded record is
// VerificationUnknown.
type VerificationState int

const (
	// VerificationUnknown means the record has not been through the verifier.
	VerificationUnknown VerificationState = iota
	// VerificationSuccess means the signature verified against the statement.
	VerificationSuccess
	// VerificationFailure means verification was attempted and did not succeed.
	VerificationFailure
)

// String returns a human-readable form of the verification state.
func (s VerificationState) String() string {
	switch s {
	case VerificationSuccess:
		return "success"
	case VerificationFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Record is the unit passed between the builder, decoder, and verifier.
//
// Statement holds the exact bytes over which the signing digest is
// computed; PublicKey and Signature stay empty until an external signer
// (or the in-process signer) populates them. A Record is not safe for
// concurrent use by multiple goroutines without external synchronization,
// but distinct Records may be processed concurrently because no component
// holds state across calls.
type Record struct {
	// PublicKey is the textual public-key sequence.
	PublicKey string
	// Statement is the signed statement sequence ("(cert ...)").
	Statement string
	// Signature is the textual signature sequence.
	Signature string
	// IssuerHIT is the issuer identity copied in during build.
	IssuerHIT hit.HIT
	// Verified is set only by the verifier.
	Verified VerificationState
}

// balanced reports whether the parenthesis delimiters in s nest properly.
func balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
