// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package hit provides the 128-bit Host Identity Tag value used to name
// certificate issuers and subjects. A HIT is presented in the standard
// colon-hex (IPv6 textual) form on the wire.
package hit

import (
	"errors"
	"fmt"
	"net/netip"
)

// Size is the width of a Host Identity Tag in bytes.
const Size = 16

// ErrInvalidHIT indicates that a textual or binary value does not describe
// a 128-bit Host Identity Tag.
var ErrInvalidHIT = errors.New("hit: invalid host identity tag")

// HIT is a 128-bit cryptographic host identity value.
type HIT [Size]byte

// Parse parses a HIT from its colon-hex presentation form.
func Parse(s string) (HIT, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return HIT{}, fmt.Errorf("%w: %q", ErrInvalidHIT, s)
	}
	if !addr.Is6() || addr.Is4In6() {
		return HIT{}, fmt.Errorf("%w: %q is not a 128-bit value", ErrInvalidHIT, s)
	}
	return HIT(addr.As16()), nil
}

// FromBytes constructs a HIT from a 16-byte slice.
func FromBytes(b []byte) (HIT, error) {
	if len(b) != Size {
		return HIT{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHIT, len(b), Size)
	}
	var h HIT
	copy(h[:], b)
	return h, nil
}

// String returns the colon-hex presentation form of the HIT.
func (h HIT) String() string {
	return netip.AddrFrom16(h).String()
}

// IsZero reports whether the HIT is the all-zero value.
func (h HIT) IsZero() bool {
	return h == HIT{}
}
