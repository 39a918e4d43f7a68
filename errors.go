package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Transport error codes. The numbering follows libcurl's error codes so that
// callers porting from curl-based bindings see familiar values.
const (
	CodeMalformedURL     = 3
	CodeResolveHost      = 6
	CodeConnect          = 7
	CodeTimeout          = 28
	CodeTLSConnect       = 35
	CodeAborted          = 42
	CodeTooManyRedirects = 47
	CodeRecv             = 56
	CodePeerVerification = 60
)

var errTooManyRedirects = errors.New("too many redirects")

// ConnectivityError is returned by [New] when the self-test enabled with
// [WithTestOnConnect] fails.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot connect or authenticate with the ticketing API: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// TransportError is returned by [Client.Call] when no HTTP response was
// received. HTTP error statuses are not transport errors.
type TransportError struct {
	Message string
	Code    int
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error %d: %s", e.Code, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newTransportError(err error) *TransportError {
	return &TransportError{
		Message: err.Error(),
		Code:    transportErrorCode(err),
		Err:     err,
	}
}

func transportErrorCode(err error) int {
	if errors.Is(err, errTooManyRedirects) {
		return CodeTooManyRedirects
	}

	if errors.Is(err, context.Canceled) {
		return CodeAborted
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CodeTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CodeResolveHost
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CodeTimeout
	}

	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	if errors.As(err, &certErr) || errors.As(err, &unknownAuthority) || errors.As(err, &hostnameErr) {
		return CodePeerVerification
	}

	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return CodeTLSConnect
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return CodeConnect
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op == "parse" {
		return CodeMalformedURL
	}

	return CodeRecv
}
