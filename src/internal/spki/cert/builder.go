// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkicert

import (
	"fmt"
	"time"

	"github.com/levush/hipl-sub001/src/internal/helper/gc"
	"github.com/levush/hipl-sub001/src/internal/hit"
	"github.com/levush/hipl-sub001/src/internal/spki/pattern"
)

// skeleton is the minimal signed statement every certificate grows from.
const skeleton = "(cert )"

// Builder injection anchors. An anchor is the clause tag plus its trailing
// space, so injected fragments land inside the clause body rather than
// against the tag itself. The trailing space of the skeleton is consumed
// by the first "cert " anchor match, which is what makes the finished
// statement close with `"))` as the wire contract requires.
const (
	anchorCert    = "cert "
	anchorSubject = "subject "
	anchorIssuer  = "issuer "
)

// identityTypeHIT is the identity type tag for Host Identity Tag subjects
// and issuers.
const identityTypeHIT = "hit"

// BuildSkeleton returns the minimal signed statement.
func BuildSkeleton() string { return skeleton }

// Inject inserts fragment immediately after the first occurrence of the
// anchor in statement, preserving all text following the insertion point.
//
// The anchor is matched as a literal substring. If it does not occur,
// Inject fails with ErrAnchorNotFound.
func Inject(statement, anchor, fragment string) (string, error) {
	m, err := pattern.FindLiteral(anchor, statement)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrAnchorNotFound, anchor)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(statement[:m.End])
	buf.WriteString(fragment)
	buf.WriteString(statement[m.End:])
	return string(buf.Bytes()), nil
}

// Assemble builds the unsigned statement binding the issuer to the subject
// over the validity window, and returns a Record carrying it.
//
// Injections all land immediately after their anchor, so clauses injected
// later at the shared "cert " anchor appear earlier in the final text. The
// sequence below deliberately injects not-after before not-before and
// fills the subject before creating the issuer clause; the finished
// statement always reads
//
//	(cert (issuer (hash hit ...))(subject (hash hit ...))(not-before "...")(not-after "..."))
//
// which is the byte order peers expect and the order the decoder's end
// anchors depend on. Timestamps render in local time.
func Assemble(issuerType string, issuer hit.HIT, subjectType string, subject hit.HIT, notBefore, notAfter time.Time) (*Record, error) {
	if issuerType == "" {
		issuerType = identityTypeHIT
	}
	if subjectType == "" {
		subjectType = identityTypeHIT
	}

	statement := BuildSkeleton()

	steps := []struct {
		anchor   string
		fragment string
	}{
		{anchorCert, fmt.Sprintf("(not-after %q)", notAfter.Format(TimeLayout))},
		{anchorCert, fmt.Sprintf("(not-before %q)", notBefore.Format(TimeLayout))},
		{anchorCert, "(subject )"},
		{anchorSubject, fmt.Sprintf("(hash %s %s)", subjectType, subject)},
		{anchorCert, "(issuer )"},
		{anchorIssuer, fmt.Sprintf("(hash %s %s)", issuerType, issuer)},
	}

	var err error
	for _, step := range steps {
		if statement, err = Inject(statement, step.anchor, step.fragment); err != nil {
			return nil, err
		}
	}

	if !balanced(statement) {
		return nil, ErrUnbalancedStatement
	}

	return &Record{
		Statement: statement,
		IssuerHIT: issuer,
		Verified:  VerificationUnknown,
	}, nil
}
