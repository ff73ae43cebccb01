// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the MCP server surface for HIP SPKI
// certificate operations. It exposes the builder, decoder, and verifier
// as stdio tools so agent clients can drive the same code paths as the
// CLI; this is the request/response "verification request path" of the
// protocol given a concrete transport.
package mcpserver

import (
	"fmt"
	"os"

	"github.com/levush/hipl-sub001/src/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var serverName = "HIP SPKI Certificate Tool" // MCP server name
var appVersion = version.Version             // default version

// GetVersion returns the current version of the MCP server.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with the certificate build, verify, and
// inspect tools. It loads configuration from the HIPCERT_CONFIG_FILE
// environment variable.
func Run(version string) error {
	appVersion = version

	// Load configuration
	config, err := loadConfig(os.Getenv("HIPCERT_CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Create MCP server
	s := server.NewMCPServer(
		serverName,
		appVersion,
		server.WithToolCapabilities(true),
	)

	// Define certificate build tool
	buildCertificateTool := mcp.NewTool("build_certificate",
		mcp.WithDescription("Assemble and sign a HIP SPKI certificate binding an issuer HIT to a subject HIT over a validity window"),
		mcp.WithString("issuer",
			mcp.Required(),
			mcp.Description("Issuer Host Identity Tag in colon-hex form"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Subject Host Identity Tag in colon-hex form"),
		),
		mcp.WithNumber("days",
			mcp.Description(fmt.Sprintf("Validity window length in days (default: %d)", config.Defaults.ValidityDays)),
			mcp.DefaultNumber(float64(config.Defaults.ValidityDays)),
		),
		mcp.WithString("key_file",
			mcp.Description("Path to the PEM private key used for signing (default: configured key file)"),
		),
	)

	// Define certificate verification tool
	verifyCertificateTool := mcp.NewTool("verify_certificate",
		mcp.WithDescription("Decode a HIP SPKI certificate blob and verify its signature and statement digest"),
		mcp.WithString("certificate",
			mcp.Required(),
			mcp.Description("Certificate file path or raw certificate text"),
		),
	)

	// Define certificate inspection tool
	inspectCertificateTool := mcp.NewTool("inspect_certificate",
		mcp.WithDescription("Decode a HIP SPKI certificate blob and render its fields as a markdown table"),
		mcp.WithString("certificate",
			mcp.Required(),
			mcp.Description("Certificate file path or raw certificate text"),
		),
	)

	// Register tool handlers
	s.AddTool(buildCertificateTool, makeBuildHandler(config))
	s.AddTool(verifyCertificateTool, handleVerifyCertificate)
	s.AddTool(inspectCertificateTool, handleInspectCertificate)

	// Start stdio server
	return server.ServeStdio(s)
}
