// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the HIP SPKI
// certificate tool. It implements a Cobra-based CLI with subcommands for
// building and signing certificates, verifying certificate blobs, and
// inspecting decoded certificate fields. The package handles file I/O and
// integrates with the logger package for output and error reporting.
package cli
