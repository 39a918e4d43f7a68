package client

import "github.com/go-resty/resty/v2"

// RequestLogger receives the client's log output. [Client.Call] writes each
// method and URL plus the response status and size at debug level, a warning
// when a verb other than GET, POST, PUT or DELETE falls back to a plain GET,
// and an error for every transport failure before it is returned as a
// [*TransportError]. Credentials are never part of these messages.
//
// The logger is also handed to resty, which reports its own warnings through
// it, so the method set mirrors [resty.Logger]. The logadapter package
// bridges zerolog and zap.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

var _ resty.Logger = RequestLogger(nil)

// NoopLogger drops every message; [New] uses it unless [WithRequestLogger]
// supplies another logger.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
