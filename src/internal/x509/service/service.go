// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509service is the thin client for the external X.509
// issuance and verification service. The service operates on binary
// DER/PEM blobs only; the request/response exchange here is the whole
// interface, and no chain building or trust evaluation happens on this
// side.
package x509service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

var (
	// ErrRequestFailed indicates that the service could not be reached or
	// returned a malformed response.
	ErrRequestFailed = errors.New("x509service: request failed")

	// ErrVerificationRejected indicates that the service examined the
	// certificate and rejected it.
	ErrVerificationRejected = errors.New("x509service: certificate rejected")
)

// maxResponseSize caps issuance responses; certificates are small and an
// oversized body means a misbehaving endpoint.
const maxResponseSize = 64 << 10

// Client talks to the issuance/verification endpoints of the external
// service.
type Client struct {
	// BaseURL is the root of the service, without a trailing slash.
	BaseURL string
	// Timeout is the per-request timeout.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent when set.
	UserAgent string
	// Version is the application version reported in the default User-Agent.
	Version string

	mu     sync.Mutex
	client *http.Client
}

// NewClient creates a client for the service at baseURL with a default
// ten second timeout.
func NewClient(baseURL, version string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
		Version: version,
	}
}

// userAgent returns the User-Agent string, constructing it if not set.
func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("HIP-Certificate-Tool/%s", c.Version)
}

// httpClient returns an HTTP client configured with the current timeout.
//
// Thread Safety: Safe for concurrent use.
func (c *Client) httpClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil || c.client.Timeout != c.Timeout {
		c.client = &http.Client{Timeout: c.Timeout}
	}
	return c.client
}

// Issue sends a PEM certificate request blob to the service and returns
// the issued certificate blob (DER or PEM, as the service chooses).
func (c *Client) Issue(ctx context.Context, requestBlob []byte) ([]byte, error) {
	resp, err := c.post(ctx, "/issue", requestBlob)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: issue returned status %d", ErrRequestFailed, resp.StatusCode)
	}

	blob, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading issue response: %v", ErrRequestFailed, err)
	}
	return blob, nil
}

// Verify sends a certificate blob to the service and maps the response
// code to a success/failure outcome. A nil return means the service
// accepted the certificate.
func (c *Client) Verify(ctx context.Context, certBlob []byte) error {
	resp, err := c.post(ctx, "/verify", certBlob)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusForbidden, http.StatusUnprocessableEntity:
		return ErrVerificationRejected
	default:
		return fmt.Errorf("%w: verify returned status %d", ErrRequestFailed, resp.StatusCode)
	}
}

func (c *Client) post(ctx context.Context, path string, blob []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/pkix-cert")
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return resp, nil
}
