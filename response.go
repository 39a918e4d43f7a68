package client

import (
	"encoding/json"
	"errors"
)

// Kind tells which side of a [Response] is populated.
type Kind int

const (
	// KindRaw means the body could not be decoded as JSON (or decoded to null).
	KindRaw Kind = iota
	// KindDecoded means the body was valid, non-null JSON.
	KindDecoded
)

func (k Kind) String() string {
	switch k {
	case KindDecoded:
		return "decoded"
	default:
		return "raw"
	}
}

// Response is the result of [Client.Call]: either a decoded JSON value or the
// raw body text. The HTTP status is reported alongside but never turned into
// an error.
type Response struct {
	kind       Kind
	value      any
	raw        string
	statusCode int
}

func newResponse(statusCode int, body []byte) *Response {
	r := &Response{
		kind:       KindRaw,
		raw:        string(body),
		statusCode: statusCode,
	}

	var value any
	if err := json.Unmarshal(body, &value); err == nil && value != nil {
		r.kind = KindDecoded
		r.value = value
	}

	return r
}

func (r *Response) Kind() Kind {
	return r.kind
}

// Value returns the decoded JSON value, or nil for raw responses. Objects are
// map[string]any, arrays []any and numbers float64.
func (r *Response) Value() any {
	return r.value
}

// Raw returns the response body as received, for both kinds.
func (r *Response) Raw() string {
	return r.raw
}

func (r *Response) StatusCode() int {
	return r.statusCode
}

// Decode unmarshals the body into target. It fails for raw responses.
func (r *Response) Decode(target any) error {
	if r.kind != KindDecoded {
		return errors.New("response body is not JSON")
	}

	return json.Unmarshal([]byte(r.raw), target)
}
