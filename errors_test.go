package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"testing"
)

func TestTransportErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "dns failure",
			err:      &url.Error{Op: "Get", URL: "https://nope", Err: &net.OpError{Op: "dial", Err: &net.DNSError{Err: "no such host", Name: "nope"}}},
			expected: CodeResolveHost,
		},
		{
			name:     "connection refused",
			err:      &url.Error{Op: "Get", URL: "https://acme", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
			expected: CodeConnect,
		},
		{
			name:     "deadline exceeded",
			err:      &url.Error{Op: "Get", URL: "https://acme", Err: context.DeadlineExceeded},
			expected: CodeTimeout,
		},
		{
			name:     "canceled",
			err:      &url.Error{Op: "Get", URL: "https://acme", Err: context.Canceled},
			expected: CodeAborted,
		},
		{
			name:     "redirect loop",
			err:      &url.Error{Op: "Get", URL: "https://acme", Err: fmt.Errorf("stopped after 10 redirects: %w", errTooManyRedirects)},
			expected: CodeTooManyRedirects,
		},
		{
			name:     "unknown authority",
			err:      &url.Error{Op: "Get", URL: "https://acme", Err: x509.UnknownAuthorityError{}},
			expected: CodePeerVerification,
		},
		{
			name:     "not tls",
			err:      &url.Error{Op: "Get", URL: "https://acme", Err: tls.RecordHeaderError{Msg: "first record does not look like a TLS handshake"}},
			expected: CodeTLSConnect,
		},
		{
			name:     "malformed url",
			err:      &url.Error{Op: "parse", URL: "https://ac me", Err: errors.New("invalid character")},
			expected: CodeMalformedURL,
		},
		{
			name:     "other",
			err:      errors.New("unexpected EOF"),
			expected: CodeRecv,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if code := transportErrorCode(tt.err); code != tt.expected {
				t.Errorf("expected code=%d, got %d", tt.expected, code)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := &url.Error{Op: "Get", URL: "https://acme", Err: context.DeadlineExceeded}
	err := newTransportError(cause)

	if err.Message != cause.Error() {
		t.Errorf("expected message %q, got %q", cause.Error(), err.Message)
	}

	if err.Code != CodeTimeout {
		t.Errorf("expected code=%d, got %d", CodeTimeout, err.Code)
	}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected TransportError to unwrap to the cause")
	}

	if !strings.HasPrefix(err.Error(), "transport error 28: ") {
		t.Errorf("unexpected error string: %s", err.Error())
	}
}

func TestConnectivityError(t *testing.T) {
	t.Parallel()

	cause := newTransportError(errors.New("connection reset"))
	err := &ConnectivityError{Err: cause}

	if !strings.Contains(err.Error(), "cannot connect or authenticate") {
		t.Errorf("unexpected error string: %s", err.Error())
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Error("expected ConnectivityError to unwrap to TransportError")
	}
}
