// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package spkicert

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders a decoded certificate record as a formatted markdown
// table of its fields.
//
// The algorithm column is passed in by the caller because algorithm
// detection belongs to the key-material decoder, not the record itself.
// Fields that cannot be recovered from the statement render as "-".
func RenderTable(record *Record, algorithm string) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Field", "Value"})

	issuer, subject, notBefore, notAfter := "-", "-", "-", "-"
	if info, err := ParseStatement(record.Statement); err == nil {
		issuer = info.IssuerType + " " + info.Issuer.String()
		subject = info.SubjectType + " " + info.Subject.String()
		notBefore = info.NotBefore.Format(TimeLayout)
		notAfter = info.NotAfter.Format(TimeLayout)
	}

	table.Bulk([][]string{
		{"Issuer", issuer},
		{"Subject", subject},
		{"Not Before", notBefore},
		{"Not After", notAfter},
		{"Algorithm", algorithm},
		{"Verified", record.Verified.String()},
	})
	table.Render()
	return buf.String()
}
