// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkicert

import (
	"fmt"
	"strings"
	"time"

	"github.com/levush/hipl-sub001/src/internal/hit"
	"github.com/levush/hipl-sub001/src/internal/spki/pattern"
)

// Statement field patterns. Identity clauses carry a one-word type tag and
// a colon-hex identity; time clauses carry a quoted local timestamp.
const (
	issuerClausePattern    = `\(issuer \(hash [a-z0-9]+ [0-9a-fA-F:]+\)\)`
	subjectClausePattern   = `\(subject \(hash [a-z0-9]+ [0-9a-fA-F:]+\)\)`
	notBeforeClausePattern = `\(not-before "[0-9:_-]+"\)`
	notAfterClausePattern  = `\(not-after "[0-9:_-]+"\)`
)

// Info holds the fields recovered from a signed statement. It is a
// read-only view used for display and validity checks; the statement text
// itself stays authoritative for digesting.
type Info struct {
	IssuerType  string
	Issuer      hit.HIT
	SubjectType string
	Subject     hit.HIT
	NotBefore   time.Time
	NotAfter    time.Time
}

// ParseStatement recovers the issuer, subject, and validity window from a
// signed statement. Each field is located by its own anchored pattern;
// a missing field fails with an error naming it.
func ParseStatement(statement string) (*Info, error) {
	info := &Info{}

	var err error
	if info.IssuerType, info.Issuer, err = parseIdentityClause(issuerClausePattern, "issuer", statement); err != nil {
		return nil, err
	}
	if info.SubjectType, info.Subject, err = parseIdentityClause(subjectClausePattern, "subject", statement); err != nil {
		return nil, err
	}
	if info.NotBefore, err = parseTimeClause(notBeforeClausePattern, "not-before", statement); err != nil {
		return nil, err
	}
	if info.NotAfter, err = parseTimeClause(notAfterClausePattern, "not-after", statement); err != nil {
		return nil, err
	}
	return info, nil
}

// ValidAt reports whether t falls inside the certificate validity window.
func (i *Info) ValidAt(t time.Time) bool {
	return !t.Before(i.NotBefore) && !t.After(i.NotAfter)
}

// parseIdentityClause extracts a "(x (hash <type> <identity>))" clause and
// splits it into the type tag and identity value.
func parseIdentityClause(expr, field, statement string) (string, hit.HIT, error) {
	clause, err := pattern.Extract(expr, statement)
	if err != nil {
		return "", hit.HIT{}, fmt.Errorf("spkicert: %s clause: %w", field, err)
	}

	// Clause shape is fixed by the pattern: strip the outer wrapping and
	// split the "hash <type> <identity>" body on spaces.
	body := strings.TrimSuffix(clause[strings.Index(clause, "(hash ")+1:], "))")
	parts := strings.Fields(body)
	if len(parts) != 3 {
		return "", hit.HIT{}, fmt.Errorf("spkicert: malformed %s clause %q", field, clause)
	}

	identity, err := hit.Parse(parts[2])
	if err != nil {
		return "", hit.HIT{}, fmt.Errorf("spkicert: %s clause: %w", field, err)
	}
	return parts[1], identity, nil
}

// parseTimeClause extracts a quoted local timestamp from a time clause.
func parseTimeClause(expr, field, statement string) (time.Time, error) {
	clause, err := pattern.Extract(expr, statement)
	if err != nil {
		return time.Time{}, fmt.Errorf("spkicert: %s clause: %w", field, err)
	}

	start := strings.IndexByte(clause, '"')
	end := strings.LastIndexByte(clause, '"')
	if start < 0 || end <= start {
		return time.Time{}, fmt.Errorf("spkicert: malformed %s clause %q", field, clause)
	}

	t, err := time.ParseInLocation(TimeLayout, clause[start+1:end], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("spkicert: %s timestamp: %w", field, err)
	}
	return t, nil
}
