// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package spkisign populates the public-key and signature sequences of a
// certificate record from a local private key. It plays the role of the
// signing service: callers hand it an assembled statement and get back a
// record whose three sequences are ready to be wrapped into the outer
// wire blob.
package spkisign

import (
	"crypto"
	"crypto/dsa"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/levush/hipl-sub001/src/internal/helper/gc"
	spkicert "github.com/levush/hipl-sub001/src/internal/spki/cert"
)

var (
	// ErrUnsupportedKey indicates that the private key type matches no
	// implemented signature suite.
	ErrUnsupportedKey = errors.New("spkisign: unsupported private key type")

	// ErrSigningFailed indicates that the underlying signing primitive
	// reported an error.
	ErrSigningFailed = errors.New("spkisign: signing failed")
)

// dsaHalfSize is the byte width of each half of a wire DSA signature.
const dsaHalfSize = 20

// dsaFormatMarker is the single octet in front of the (r, s) pair,
// carried over from the DNS HI signature encoding for a 1024-bit group.
const dsaFormatMarker = byte(8)

// Sign digests record.Statement, signs the digest with key, and fills in
// record.PublicKey and record.Signature. The statement text itself is
// never modified.
func Sign(record *spkicert.Record, key crypto.PrivateKey) error {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return SignRSA(record, k)
	case *dsa.PrivateKey:
		return SignDSA(record, k)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}

// SignRSA signs the statement under PKCS#1 v1.5 with the SHA-1 hash
// identifier and renders the rsa-pkcs1-sha1 sequences.
func SignRSA(record *spkicert.Record, key *rsa.PrivateKey) error {
	digest := sha1.Sum([]byte(record.Statement))

	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA1, digest[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}

	record.PublicKey = fmt.Sprintf("(public_key (rsa-pkcs1-sha1 (e #%x#)(n |%s|)))",
		key.PublicKey.E,
		base64.StdEncoding.EncodeToString(key.PublicKey.N.Bytes()))
	record.Signature = renderSignatureSequence(digest[:], signature)
	return nil
}

// SignDSA signs the statement and renders the dsa-pkcs1-sha1 sequences.
// The wire signature blob is the one-byte format marker followed by the
// fixed-width r and s halves.
func SignDSA(record *spkicert.Record, key *dsa.PrivateKey) error {
	digest := sha1.Sum([]byte(record.Statement))

	r, s, err := dsa.Sign(rand.Reader, key, digest[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSigningFailed, err)
	}

	blob := make([]byte, 1+2*dsaHalfSize)
	blob[0] = dsaFormatMarker
	r.FillBytes(blob[1 : 1+dsaHalfSize])
	s.FillBytes(blob[1+dsaHalfSize:])

	record.PublicKey = fmt.Sprintf("(public_key (dsa-pkcs1-sha1 (p |%s|)(q |%s|)(g |%s|)(y |%s|)))",
		encodeBigInt(key.P), encodeBigInt(key.Q), encodeBigInt(key.G), encodeBigInt(key.Y))
	record.Signature = renderSignatureSequence(digest[:], blob)
	return nil
}

// Blob wraps the three populated sequences of record into the outer wire
// blob peers exchange.
func Blob(record *spkicert.Record) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString("(sequence ")
	buf.WriteString(record.PublicKey)
	buf.WriteString(record.Statement)
	buf.WriteString(record.Signature)
	buf.WriteByte(')')
	return string(buf.Bytes())
}

// renderSignatureSequence renders the signature sequence carrying the
// base64 statement digest and the base64 raw signature bytes.
func renderSignatureSequence(digest, signature []byte) string {
	return fmt.Sprintf("(signature (hash sha1 |%s|)|%s|)",
		base64.StdEncoding.EncodeToString(digest),
		base64.StdEncoding.EncodeToString(signature))
}

func encodeBigInt(v *big.Int) string {
	return base64.StdEncoding.EncodeToString(v.Bytes())
}
