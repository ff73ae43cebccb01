// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/levush/hipl-sub001/src/internal/hit"
	spkicert "github.com/levush/hipl-sub001/src/internal/spki/cert"
	"github.com/levush/hipl-sub001/src/internal/spki/keymat"
	spkisign "github.com/levush/hipl-sub001/src/internal/spki/sign"
	spkiverify "github.com/levush/hipl-sub001/src/internal/spki/verify"
	"github.com/mark3labs/mcp-go/mcp"
)

// makeBuildHandler returns the build_certificate handler bound to the
// server configuration, which supplies the default validity window and
// signing key.
func makeBuildHandler(config *Config) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		issuerArg, err := request.RequireString("issuer")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("issuer parameter required: %v", err)), nil
		}
		subjectArg, err := request.RequireString("subject")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("subject parameter required: %v", err)), nil
		}

		days := request.GetInt("days", config.Defaults.ValidityDays)
		keyFile := request.GetString("key_file", config.Defaults.KeyFile)
		if keyFile == "" {
			return mcp.NewToolResultError("no key file: pass key_file or configure a default"), nil
		}

		issuer, err := hit.Parse(issuerArg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid issuer: %v", err)), nil
		}
		subject, err := hit.Parse(subjectArg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid subject: %v", err)), nil
		}

		key, err := spkisign.LoadPrivateKey(keyFile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load key: %v", err)), nil
		}

		notBefore := time.Now()
		record, err := spkicert.Assemble("", issuer, "", subject, notBefore, notBefore.AddDate(0, 0, days))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to assemble statement: %v", err)), nil
		}
		if err := spkisign.Sign(record, key); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to sign statement: %v", err)), nil
		}

		return mcp.NewToolResultText(spkisign.Blob(record)), nil
	}
}

// handleVerifyCertificate decodes a certificate blob and runs signature
// verification, reporting the resulting verification state.
func handleVerifyCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	record, result := decodeCertificateArg(request)
	if result != nil {
		return result, nil
	}

	if err := spkiverify.Verify(record); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("verification %s: %v", record.Verified, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("verification %s", record.Verified)), nil
}

// handleInspectCertificate decodes a certificate blob and renders its
// fields as a markdown table.
func handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	record, result := decodeCertificateArg(request)
	if result != nil {
		return result, nil
	}

	algorithm := keymat.DetectAlgorithm(record.PublicKey)
	return mcp.NewToolResultText(spkicert.RenderTable(record, algorithm.String())), nil
}

// decodeCertificateArg reads the "certificate" argument as a file path or
// raw certificate text and decodes it into a record. On failure it
// returns a nil record and a ready-made error result.
func decodeCertificateArg(request mcp.CallToolRequest) (*spkicert.Record, *mcp.CallToolResult) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err))
	}

	raw := certInput
	if data, err := os.ReadFile(certInput); err == nil {
		raw = string(data)
	}

	record, err := spkicert.Decode(raw)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err))
	}
	return record, nil
}
