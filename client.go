package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	defaultHostSuffix = ".example-service.com"
	apiPath           = "/api/v2"
	selfTestEndpoint  = "/tickets"
)

// Client performs authenticated JSON requests against the ticketing API.
// Its configuration is fixed by [New]; a Client is safe for concurrent use.
type Client struct {
	apiKey  string
	user    string
	baseURL string
	options *Options
	http    *resty.Client
}

// New builds a client for the account identified by user and apiKey.
//
// domain is either a bare subdomain ("acme"), expanded to
// https://acme.example-service.com/api/v2, or a full host name
// ("support.acme.com"), used as https://support.acme.com/api/v2.
//
// When [WithTestOnConnect] is set, New issues [Client.Test] before returning
// and fails with a [*ConnectivityError] if it does not succeed.
func New(ctx context.Context, apiKey, user, domain string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key must be set")
	}

	if user == "" {
		return nil, errors.New("user must be set")
	}

	if domain == "" {
		return nil, errors.New("domain must be set")
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := &Client{
		apiKey:  apiKey,
		user:    user,
		baseURL: baseURLForDomain(domain),
		options: options,
	}

	c.http = c.newRestyClient()

	if options.testOnConnect {
		if err := c.Test(ctx); err != nil {
			return nil, &ConnectivityError{Err: err}
		}
	}

	return c, nil
}

func baseURLForDomain(domain string) string {
	if !strings.Contains(domain, ".") {
		return "https://" + domain + defaultHostSuffix + apiPath
	}

	return "https://" + domain + apiPath
}

func (c *Client) newRestyClient() *resty.Client {
	maxRedirects := c.options.maxRedirects

	r := resty.New().
		SetTimeout(c.options.timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(_ *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("stopped after %d redirects: %w", maxRedirects, errTooManyRedirects)
			}
			return nil
		})).
		SetBasicAuth(c.user+"/token", c.apiKey).
		SetHeaders(c.options.requestHeaders).
		SetHeader("User-Agent", c.options.userAgent).
		SetLogger(c.options.requestLogger).
		SetCookieJar(nil)

	if c.options.transport != nil {
		r.SetTransport(c.options.transport)
	}

	return r
}

// BaseURL returns the API root every endpoint is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Suffix returns the marker that tells whether an endpoint already names a format.
func (c *Client) Suffix() string {
	return c.options.suffix
}

// User returns the account name sent as "{user}/token" in basic auth.
func (c *Client) User() string {
	return c.user
}

// Call sends a request with the given verb to endpoint and returns the
// response body, decoded when it is JSON.
//
// An endpoint that does not contain the configured suffix gets ".json"
// appended. GET requests carry no body; POST, PUT and DELETE send body as
// given, JSON-encoding maps and structs and passing strings and byte slices
// through unchanged. Any other verb is sent as a plain GET without a body.
//
// Only failures to obtain a response are returned as errors (as
// [*TransportError]); HTTP error statuses come back as regular responses.
func (c *Client) Call(ctx context.Context, endpoint string, body any, verb string) (*Response, error) {
	if c == nil {
		return nil, errors.New("ticket client is nil")
	}

	url := c.baseURL + c.normalizeEndpoint(endpoint)

	req := c.http.R().SetContext(ctx)
	method := verb

	switch verb {
	case http.MethodGet:
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		if body != nil {
			req.SetBody(body)
		}
	default:
		c.options.requestLogger.Warnf("unsupported verb %q for %s, sending default request", verb, url)
		method = http.MethodGet
	}

	c.options.requestLogger.Debugf("%s %s", method, url)

	resp, err := req.Execute(method, url)
	if err != nil {
		c.options.requestLogger.Errorf("%s %s failed: %v", method, url, err)
		return nil, newTransportError(err)
	}

	c.options.requestLogger.Debugf("%s %s returned %d (%d bytes)", method, url, resp.StatusCode(), len(resp.Body()))

	return newResponse(resp.StatusCode(), resp.Body()), nil
}

// normalizeEndpoint appends ".json" when the endpoint lacks the configured
// suffix. The appended extension is always ".json", whatever the suffix.
func (c *Client) normalizeEndpoint(endpoint string) string {
	if !strings.Contains(endpoint, c.options.suffix) {
		return endpoint + ".json"
	}

	return endpoint
}

// Test checks connectivity and credentials with a GET of the tickets
// endpoint. Any response, whatever its status, counts as success.
func (c *Client) Test(ctx context.Context) error {
	if _, err := c.Call(ctx, selfTestEndpoint, "", http.MethodGet); err != nil {
		return fmt.Errorf("self-test failed: %w", err)
	}

	return nil
}
