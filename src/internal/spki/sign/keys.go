// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkisign

import (
	"crypto"
	"crypto/dsa"
	"crypto/rsa"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// LoadPrivateKey reads an unencrypted PEM private key from path and
// returns it when its type matches an implemented signature suite.
//
// Parsing goes through the ssh key parser because the standard x509
// package cannot read OpenSSL-format DSA keys, which existing HIP
// deployments still use.
func LoadPrivateKey(path string) (crypto.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spkisign: reading key file: %w", err)
	}

	key, err := ssh.ParseRawPrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("spkisign: parsing key file: %w", err)
	}

	switch k := key.(type) {
	case *rsa.PrivateKey:
		return k, nil
	case *dsa.PrivateKey:
		return k, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}
