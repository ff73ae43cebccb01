// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509service "github.com/levush/hipl-sub001/src/internal/x509/service"
)

func TestIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/issue", r.URL.Path)
		assert.Equal(t, "application/pkix-cert", r.Header.Get("Content-Type"))
		assert.Equal(t, "HIP-Certificate-Tool/1.3.3.7-testing", r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("request blob"), body)

		w.Write([]byte("issued blob"))
	}))
	defer server.Close()

	client := x509service.NewClient(server.URL, "1.3.3.7-testing")
	blob, err := client.Issue(context.Background(), []byte("request blob"))
	require.NoError(t, err)
	assert.Equal(t, []byte("issued blob"), blob)
}

func TestIssue_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := x509service.NewClient(server.URL, "test")
	_, err := client.Issue(context.Background(), []byte("request blob"))
	require.ErrorIs(t, err, x509service.ErrRequestFailed)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "Accepted", status: http.StatusOK},
		{name: "Rejected Forbidden", status: http.StatusForbidden, wantErr: x509service.ErrVerificationRejected},
		{name: "Rejected Unprocessable", status: http.StatusUnprocessableEntity, wantErr: x509service.ErrVerificationRejected},
		{name: "Service Error", status: http.StatusBadGateway, wantErr: x509service.ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/verify", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := x509service.NewClient(server.URL, "test")
			err := client.Verify(context.Background(), []byte("cert blob"))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVerify_Unreachable(t *testing.T) {
	client := x509service.NewClient("http://127.0.0.1:1", "test")
	err := client.Verify(context.Background(), []byte("cert blob"))
	require.ErrorIs(t, err, x509service.ErrRequestFailed)
}

func TestUserAgentOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent/2.0", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := x509service.NewClient(server.URL, "test")
	client.UserAgent = "custom-agent/2.0"
	require.NoError(t, client.Verify(context.Background(), nil))
}
