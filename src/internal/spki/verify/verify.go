// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package spkiverify checks the authenticity of a decoded certificate
// record: it recomputes the statement digest, compares it against the
// digest embedded in the signature sequence, and verifies the signature
// itself with the key material reconstructed from the public-key
// sequence. Verification is a pure function of the record's text fields;
// the only side effect is setting the record's Verified state.
package spkiverify

import (
	"bytes"
	"crypto"
	"crypto/dsa"
	"crypto/rsa"
	"crypto/sha1"
	"errors"
	"fmt"
	"math/big"
	"strings"

	spkicert "github.com/levush/hipl-sub001/src/internal/spki/cert"
	"github.com/levush/hipl-sub001/src/internal/spki/keymat"
	"github.com/levush/hipl-sub001/src/internal/spki/pattern"
)

var (
	// ErrUnsupportedAlgorithm indicates that the public-key sequence names
	// no implemented signature suite. This covers both unrecognized tags
	// and the recognized-but-unimplemented ecdsa family.
	ErrUnsupportedAlgorithm = errors.New("spkiverify: unsupported algorithm")

	// ErrDigestMismatch indicates that the digest embedded in the signature
	// sequence does not match the recomputed statement digest. The
	// statement was tampered with after signing.
	ErrDigestMismatch = errors.New("spkiverify: statement digest mismatch")

	// ErrSignatureInvalid indicates that the signature does not verify
	// against the statement digest under the decoded public key.
	ErrSignatureInvalid = errors.New("spkiverify: signature invalid")
)

// Signature sequence field patterns. The embedded digest is the first
// pipe-delimited base64 field; the signature itself is anchored by the
// ")|" run closing the digest clause, and those two anchor characters are
// excluded from the decoded payload.
const (
	digestFieldPattern    = `\|[A-Za-z0-9+/=]+\|`
	signatureFieldPattern = `\)\|[A-Za-z0-9+/=]+\|`
)

// dsaHalfSize is the byte width of each half of a wire DSA signature,
// fixed by the 160-bit subgroup of the dsa-pkcs1-sha1 suite. The blob
// carries a one-byte format marker in front of the (r, s) pair.
const dsaHalfSize = 20

// Verify checks record's signature sequence against its statement and
// public-key sequence.
//
// On success it sets record.Verified to VerificationSuccess and returns
// nil. Any other outcome, including errors from the underlying
// cryptographic primitives, sets VerificationFailure and returns a typed
// error describing the first failing step.
func Verify(record *spkicert.Record) error {
	if err := verify(record); err != nil {
		record.Verified = spkicert.VerificationFailure
		return err
	}
	record.Verified = spkicert.VerificationSuccess
	return nil
}

func verify(record *spkicert.Record) error {
	algorithm := keymat.DetectAlgorithm(record.PublicKey)
	switch algorithm {
	case keymat.AlgorithmRSA, keymat.AlgorithmDSA:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}

	digest := sha1.Sum([]byte(record.Statement))

	embedded, err := extractDigest(record.Signature)
	if err != nil {
		return err
	}
	if !bytes.Equal(embedded, digest[:]) {
		return ErrDigestMismatch
	}

	signature, err := extractSignature(record.Signature)
	if err != nil {
		return err
	}

	switch algorithm {
	case keymat.AlgorithmRSA:
		return verifyRSA(record.PublicKey, digest[:], signature)
	default:
		return verifyDSA(record.PublicKey, digest[:], signature)
	}
}

// extractDigest returns the decoded statement digest embedded in the
// signature sequence.
func extractDigest(signature string) ([]byte, error) {
	field, err := pattern.Extract(digestFieldPattern, signature)
	if err != nil {
		return nil, fmt.Errorf("spkiverify: signature-hash field: %w", err)
	}
	return decodeField(strings.Trim(field, "|"))
}

// extractSignature returns the decoded raw signature bytes, skipping the
// two-character ")|" anchor in front of the base64 body.
func extractSignature(signature string) ([]byte, error) {
	field, err := pattern.Extract(signatureFieldPattern, signature)
	if err != nil {
		return nil, fmt.Errorf("spkiverify: signature field: %w", err)
	}
	return decodeField(strings.Trim(field[2:], "|"))
}

func decodeField(body string) ([]byte, error) {
	decoded, err := keymat.DecodeBase64(body)
	if err != nil {
		return nil, fmt.Errorf("spkiverify: %w", err)
	}
	return decoded, nil
}

// verifyRSA checks the signature under PKCS#1 v1.5 padding with the SHA-1
// hash identifier. The primitive's pass/fail result is the only success
// criterion.
func verifyRSA(publicKey string, digest, signature []byte) error {
	key, err := keymat.DecodeRSA(publicKey)
	if err != nil {
		return err
	}
	if err := rsa.VerifyPKCS1v15(key.PublicKey(), crypto.SHA1, digest, signature); err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}
	return nil
}

// verifyDSA checks the (r, s) pair carried in the signature blob. The
// blob is a one-byte format marker followed by two fixed-width halves.
func verifyDSA(publicKey string, digest, signature []byte) error {
	key, err := keymat.DecodeDSA(publicKey)
	if err != nil {
		return err
	}
	if len(signature) != 1+2*dsaHalfSize {
		return fmt.Errorf("%w: dsa signature is %d bytes, want %d",
			ErrSignatureInvalid, len(signature), 1+2*dsaHalfSize)
	}

	r := new(big.Int).SetBytes(signature[1 : 1+dsaHalfSize])
	s := new(big.Int).SetBytes(signature[1+dsaHalfSize:])
	if !dsa.Verify(key.PublicKey(), digest, r, s) {
		return ErrSignatureInvalid
	}
	return nil
}
