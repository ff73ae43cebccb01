// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// hipcert is a command-line tool for building, verifying, and inspecting
// HIP SPKI certificates.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/levush/hipl-sub001/cmd/hipcert@latest
//
// # Usage
//
//	hipcert COMMAND [FLAGS]
//
// # Commands
//
//	build     Assemble a certificate statement and sign it with a local key
//	verify    Decode a certificate blob and verify its signature
//	inspect   Decode a certificate blob and print its fields
//
// # Examples
//
// Build a certificate valid for 30 days:
//
//	hipcert build --issuer 2001:1b:63e0:fa41:883:9eb8:3b3:58b2 \
//	  --subject 2001:1c:5a14:26de:a07c:30bd:a739:5a16 \
//	  -k issuer_key.pem -o cert.spki
//
// Verify a certificate blob:
//
//	hipcert verify cert.spki
//
// Inspect certificate fields as a markdown table:
//
//	hipcert inspect cert.spki
package main
