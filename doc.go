// Package client is a minimal binding for the ticketing REST API.
//
// The client wraps [github.com/go-resty/resty/v2] and exposes a single
// generic call primitive plus an optional connectivity self-test. It does
// not model tickets, users or any other resource; callers work with the
// decoded JSON directly.
//
// # Basic Usage
//
//	c, err := client.New(ctx, apiKey, "agent@acme.com", "acme",
//	    client.WithTestOnConnect(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Call(ctx, "/tickets", nil, http.MethodGet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if resp.Kind() == client.KindDecoded {
//	    fmt.Println(resp.Value())
//	} else {
//	    fmt.Println(resp.Raw())
//	}
//
// # Domains and Endpoints
//
// A domain without a dot is treated as a subdomain of the hosted service;
// anything else is used as the host name verbatim. Endpoints are relative
// paths such as "/tickets" or "/tickets/42.json". An endpoint that does not
// contain the configured suffix (".json" by default) gets ".json" appended.
//
// # Responses
//
// [Client.Call] returns a [Response] holding either the decoded JSON value
// or, when the body is not JSON, the raw text. HTTP error statuses are not
// errors; inspect [Response.StatusCode] or the payload.
//
// # Errors
//
// [*TransportError] reports a request that never produced a response (DNS,
// connect, TLS, timeout, redirect loop). Its Code uses libcurl numbering.
// [*ConnectivityError] is returned by [New] when the self-test fails.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. The logadapter package provides zerolog and zap bridges.
package client
