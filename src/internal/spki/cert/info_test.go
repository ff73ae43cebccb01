// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkicert_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spkicert "github.com/levush/hipl-sub001/src/internal/spki/cert"
)

func TestParseStatement(t *testing.T) {
	info, err := spkicert.ParseStatement(testStatement)
	require.NoError(t, err)

	assert.Equal(t, "hit", info.IssuerType)
	assert.Equal(t, mustHIT(t, testIssuerHIT), info.Issuer)
	assert.Equal(t, "hit", info.SubjectType)
	assert.Equal(t, mustHIT(t, testSubjectHIT), info.Subject)
	assert.Equal(t, "2026-08-01_12:00:00", info.NotBefore.Format(spkicert.TimeLayout))
	assert.Equal(t, "2026-08-31_12:00:00", info.NotAfter.Format(spkicert.TimeLayout))
}

func TestParseStatement_MissingClauses(t *testing.T) {
	tests := []struct {
		name   string
		remove string
	}{
		{name: "Missing Issuer", remove: "(issuer (hash hit " + testIssuerHIT + "))"},
		{name: "Missing Subject", remove: "(subject (hash hit " + testSubjectHIT + "))"},
		{name: "Missing Not Before", remove: `(not-before "2026-08-01_12:00:00")`},
		{name: "Missing Not After", remove: `(not-after "2026-08-31_12:00:00")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement := strings.Replace(testStatement, tt.remove, "", 1)
			_, err := spkicert.ParseStatement(statement)
			require.Error(t, err)
		})
	}
}

func TestValidAt(t *testing.T) {
	info, err := spkicert.ParseStatement(testStatement)
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "Inside Window", at: info.NotBefore.Add(24 * time.Hour), want: true},
		{name: "At Not Before", at: info.NotBefore, want: true},
		{name: "At Not After", at: info.NotAfter, want: true},
		{name: "Before Window", at: info.NotBefore.Add(-time.Second), want: false},
		{name: "After Window", at: info.NotAfter.Add(time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, info.ValidAt(tt.at))
		})
	}
}

func TestRenderTable(t *testing.T) {
	record, err := spkicert.Decode(testBlob())
	require.NoError(t, err)

	out := spkicert.RenderTable(record, "rsa-pkcs1-sha1")
	assert.Contains(t, out, "hit "+testIssuerHIT)
	assert.Contains(t, out, "hit "+testSubjectHIT)
	assert.Contains(t, out, "2026-08-01_12:00:00")
	assert.Contains(t, out, "rsa-pkcs1-sha1")
	assert.Contains(t, out, "unknown")
}

func TestRenderTable_UnparsableStatement(t *testing.T) {
	record := &spkicert.Record{Statement: "(cert )"}
	out := spkicert.RenderTable(record, "unknown")
	// Unrecoverable fields render as the placeholder.
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "Issuer")
}
