package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/peteraglen/ticketdesk-go-client"
)

func setupServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("TICKETDESK_API_KEY", "secret")
	t.Setenv("TICKETDESK_USER", "agent@acme.com")
	t.Setenv("TICKETDESK_DOMAIN", strings.TrimPrefix(server.URL, "https://"))

	return server
}

func run(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(client.WithTransport(server.Client().Transport))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_GetPrintsDecodedJSON(t *testing.T) {
	var path string
	server := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"ticket":{"id":7}}`))
	})

	out, err := run(t, server, "/tickets/7")
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/tickets/7.json", path)
	assert.JSONEq(t, `{"ticket":{"id":7}}`, out)
}

func TestRootCmd_PostSendsData(t *testing.T) {
	var method string
	var body []byte
	server := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte("Created"))
	})

	out, err := run(t, server, "/tickets", "-X", "post", "-d", `{"ticket":{"subject":"Hi"}}`)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, `{"ticket":{"subject":"Hi"}}`, string(body))
	assert.Equal(t, "Created\n", out)
}

func TestRootCmd_SelfTest(t *testing.T) {
	var path string
	server := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	_, err := run(t, server, "--test")
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/tickets.json", path)
}

func TestRootCmd_MissingEndpoint(t *testing.T) {
	server := setupServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := run(t, server)
	assert.EqualError(t, err, "endpoint is required")
}

func TestRootCmd_MissingConfig(t *testing.T) {
	server := setupServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	t.Setenv("TICKETDESK_API_KEY", "")

	_, err := run(t, server, "/tickets")
	assert.EqualError(t, err, "TICKETDESK_API_KEY is required")
}
