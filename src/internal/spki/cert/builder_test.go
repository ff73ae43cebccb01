// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkicert_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levush/hipl-sub001/src/internal/hit"
	spkicert "github.com/levush/hipl-sub001/src/internal/spki/cert"
)

const (
	testIssuerHIT  = "2001:1b:63e0:fa41:883:9eb8:3b3:58b2"
	testSubjectHIT = "2001:1c:5a14:26de:a07c:30bd:a739:5a16"
)

func testWindow(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	notBefore, err := time.ParseInLocation(spkicert.TimeLayout, "2026-08-01_12:00:00", time.Local)
	require.NoError(t, err)
	return notBefore, notBefore.AddDate(0, 0, 30)
}

func mustHIT(t *testing.T, s string) hit.HIT {
	t.Helper()
	h, err := hit.Parse(s)
	require.NoError(t, err)
	return h
}

func TestBuildSkeleton(t *testing.T) {
	assert.Equal(t, "(cert )", spkicert.BuildSkeleton())
}

func TestInject(t *testing.T) {
	got, err := spkicert.Inject("(cert )", "cert ", "(subject )")
	require.NoError(t, err)
	assert.Equal(t, "(cert (subject ))", got)

	// Later injections at the same anchor land in front of earlier ones.
	got, err = spkicert.Inject(got, "cert ", "(issuer )")
	require.NoError(t, err)
	assert.Equal(t, "(cert (issuer )(subject ))", got)
}

func TestInject_AnchorNotFound(t *testing.T) {
	_, err := spkicert.Inject("(cert )", "subject ", "(hash hit x)")
	require.ErrorIs(t, err, spkicert.ErrAnchorNotFound)
}

func TestAssemble(t *testing.T) {
	notBefore, notAfter := testWindow(t)

	record, err := spkicert.Assemble(
		"", mustHIT(t, testIssuerHIT),
		"", mustHIT(t, testSubjectHIT),
		notBefore, notAfter)
	require.NoError(t, err)

	want := fmt.Sprintf(
		`(cert (issuer (hash hit %s))(subject (hash hit %s))(not-before %q)(not-after %q))`,
		testIssuerHIT, testSubjectHIT,
		notBefore.Format(spkicert.TimeLayout), notAfter.Format(spkicert.TimeLayout))
	assert.Equal(t, want, record.Statement)

	assert.Equal(t, mustHIT(t, testIssuerHIT), record.IssuerHIT)
	assert.Equal(t, spkicert.VerificationUnknown, record.Verified)
	assert.Empty(t, record.PublicKey)
	assert.Empty(t, record.Signature)
}

func TestAssemble_Deterministic(t *testing.T) {
	notBefore, notAfter := testWindow(t)
	issuer := mustHIT(t, testIssuerHIT)
	subject := mustHIT(t, testSubjectHIT)

	first, err := spkicert.Assemble("", issuer, "", subject, notBefore, notAfter)
	require.NoError(t, err)
	second, err := spkicert.Assemble("", issuer, "", subject, notBefore, notAfter)
	require.NoError(t, err)
	assert.Equal(t, first.Statement, second.Statement)
}

func TestAssemble_StatementShape(t *testing.T) {
	notBefore, notAfter := testWindow(t)

	record, err := spkicert.Assemble(
		"hit", mustHIT(t, testIssuerHIT),
		"hit", mustHIT(t, testSubjectHIT),
		notBefore, notAfter)
	require.NoError(t, err)

	// The statement must close with `"))` so the decoder's end anchor
	// can terminate it.
	assert.True(t, len(record.Statement) > 3)
	assert.Equal(t, `"))`, record.Statement[len(record.Statement)-3:])

	// Round-trip through the statement parser.
	info, err := spkicert.ParseStatement(record.Statement)
	require.NoError(t, err)
	assert.Equal(t, "hit", info.IssuerType)
	assert.Equal(t, mustHIT(t, testIssuerHIT), info.Issuer)
	assert.Equal(t, "hit", info.SubjectType)
	assert.Equal(t, mustHIT(t, testSubjectHIT), info.Subject)
	assert.True(t, notBefore.Equal(info.NotBefore))
	assert.True(t, notAfter.Equal(info.NotAfter))
}
