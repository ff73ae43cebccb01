// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levush/hipl-sub001/src/internal/hit"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "Valid HIT",
			input: "2001:1b:63e0:fa41:883:9eb8:3b3:58b2",
		},
		{
			name:  "Valid Compressed Form",
			input: "2001:13::1",
		},
		{
			name:    "IPv4 Rejected",
			input:   "192.0.2.1",
			wantErr: true,
		},
		{
			name:    "IPv4-In-IPv6 Rejected",
			input:   "::ffff:192.0.2.1",
			wantErr: true,
		},
		{
			name:    "Garbage Rejected",
			input:   "not-a-hit",
			wantErr: true,
		},
		{
			name:    "Empty Rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := hit.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, hit.ErrInvalidHIT)
				return
			}
			require.NoError(t, err)
			assert.False(t, h.IsZero())
			// Presentation form round-trips through Parse.
			again, err := hit.Parse(h.String())
			require.NoError(t, err)
			assert.Equal(t, h, again)
		})
	}
}

func TestFromBytes(t *testing.T) {
	raw := []byte{
		0x20, 0x01, 0x00, 0x1b, 0x63, 0xe0, 0xfa, 0x41,
		0x08, 0x83, 0x9e, 0xb8, 0x03, 0xb3, 0x58, 0xb2,
	}
	h, err := hit.FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, "2001:1b:63e0:fa41:883:9eb8:3b3:58b2", h.String())

	_, err = hit.FromBytes(raw[:8])
	require.ErrorIs(t, err, hit.ErrInvalidHIT)
}

func TestIsZero(t *testing.T) {
	assert.True(t, hit.HIT{}.IsZero())

	h, err := hit.Parse("2001:13::1")
	require.NoError(t, err)
	assert.False(t, h.IsZero())
}
