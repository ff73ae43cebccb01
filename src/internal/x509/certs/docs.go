// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides encoding and decoding operations for the
// binary [X.509] certificate blobs exchanged with the external issuance
// and verification service. It supports [PEM], DER, and [PKCS7] inputs.
// This side path is entirely independent of the textual SPKI certificate
// format handled elsewhere in the module.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
