package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultSuffix is the endpoint extension used when none is configured.
	DefaultSuffix = ".json"

	defaultTimeout      = 10 * time.Second
	defaultMaxRedirects = 10
	defaultUserAgent    = "MozillaXYZ/1.0"
)

type Option func(*Options)

type Options struct {
	suffix         string
	testOnConnect  bool
	timeout        time.Duration
	maxRedirects   int
	userAgent      string
	requestLogger  RequestLogger
	requestHeaders map[string]string
	transport      http.RoundTripper
}

func newClientOptions() *Options {
	return &Options{
		suffix:        DefaultSuffix,
		timeout:       defaultTimeout,
		maxRedirects:  defaultMaxRedirects,
		userAgent:     defaultUserAgent,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// Validate reports the first option value that cannot be used to build a client.
func (o *Options) Validate() error {
	if o.suffix == "" {
		return errors.New("suffix must not be empty")
	}

	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if o.timeout > 5*time.Minute {
		return fmt.Errorf("timeout must not exceed %v", 5*time.Minute)
	}

	if o.maxRedirects < 0 {
		return errors.New("maxRedirects must be non-negative")
	}

	if o.maxRedirects > 50 {
		return errors.New("maxRedirects must not exceed 50")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}

// WithSuffix sets the marker used to detect endpoints that already carry a
// format extension. Empty values are ignored.
func WithSuffix(suffix string) Option {
	return func(o *Options) {
		if suffix != "" {
			o.suffix = suffix
		}
	}
}

// WithTestOnConnect makes [New] issue a self-test request before returning.
func WithTestOnConnect(enabled bool) Option {
	return func(o *Options) {
		o.testOnConnect = enabled
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func WithMaxRedirects(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.maxRedirects = count
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. Content-Type, Accept and
// User-Agent are fixed and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "User-Agent") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithTransport replaces the underlying HTTP round tripper, e.g. to supply
// custom TLS settings or a proxy.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}
