// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pattern implements the single-field extractor underneath the
// certificate codec. The certificate wire format is a nested,
// delimiter-based text and therefore not a regular language; the codec
// never parses a whole blob in one pass but instead chains several
// single-field extractions against known anchor substrings. This package
// provides that one primitive: locate the first leftmost match of a
// pattern in a text buffer and report its span.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound indicates that a pattern did not occur in the given text.
// Absent or malformed fields are a normal condition for the codec, so
// callers are expected to test for this error and attach the field name
// they were looking for.
var ErrNotFound = errors.New("pattern: no match found")

// ErrBadPattern indicates that a pattern failed to compile.
var ErrBadPattern = errors.New("pattern: malformed pattern")

// Match is the span of a located field in the source text buffer.
// It is consumed immediately by the caller to slice sub-text and is
// never stored beyond one extraction step.
type Match struct {
	Start int
	End   int
}

// Find locates the first leftmost match of expr in text.
//
// Each call compiles expr fresh; there is no scanning position carried
// between calls. Callers re-invoke with a new pattern for every field.
func Find(expr, text string) (Match, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Match{}, fmt.Errorf("%w: %q: %v", ErrBadPattern, expr, err)
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return Match{}, fmt.Errorf("%w: %q", ErrNotFound, expr)
	}
	return Match{Start: loc[0], End: loc[1]}, nil
}

// Extract returns the text matched by the first leftmost occurrence of expr.
func Extract(expr, text string) (string, error) {
	m, err := Find(expr, text)
	if err != nil {
		return "", err
	}
	return text[m.Start:m.End], nil
}

// FindLiteral locates the first occurrence of the literal anchor in text.
// It quotes the anchor so delimiter characters such as "(", ")", "|" and
// "#" are matched verbatim.
func FindLiteral(anchor, text string) (Match, error) {
	re := regexp.MustCompile(regexp.QuoteMeta(anchor))
	loc := re.FindStringIndex(text)
	if loc == nil {
		return Match{}, fmt.Errorf("%w: %q", ErrNotFound, anchor)
	}
	return Match{Start: loc[0], End: loc[1]}, nil
}
