package bnet_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/advdv/bfetch"
	"github.com/advdv/bfetch/bnet"
	"github.com/advdv/bfetch/bnet/bnettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		body, _ := io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{"path":"`+r.URL.Path+`","auth":"`+r.Header.Get("Authorization")+`","body":"`+string(body)+`"}`)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestApp_Fetch(t *testing.T) {
	ts := newServer(t)
	bnettest.SetBaseEnv(t).BaseURL(ts.URL + "/")

	var fetch bfetch.FetchFunc
	app := bnettest.New[bnet.BaseEnvironment](t, func(f bfetch.FetchFunc) { fetch = f },
		bnet.WithConfig(bfetch.Config{
			RequestReducers: []bfetch.Reducer[bfetch.Request]{
				bfetch.AddHeaders(bfetch.Headers{"Authorization": "Bearer test"}),
			},
			ResponseReducers: []bfetch.Reducer[bfetch.Response]{
				bnet.ExtractJSON("path"),
			},
		}))
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	resp, err := fetch(t.Context(), "/items/42", nil)
	require.NoError(t, err)
	assert.Equal(t, "/items/42", resp["body"])
	assert.Equal(t, http.StatusOK, resp.Status())
}

func TestApp_RequiresAbsolutePathWithBaseURL(t *testing.T) {
	ts := newServer(t)
	bnettest.SetBaseEnv(t).BaseURL(ts.URL)

	var client *bfetch.Client
	app := bnettest.New[bnet.BaseEnvironment](t, func(c *bfetch.Client) { client = c })
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	_, err := client.Fetch(t.Context(), "relative", nil)
	rerr, ok := bfetch.AsReducerError(err)
	require.True(t, ok)
	assert.Equal(t, "prependHost() requires an absolute path", rerr.Message())
}

func TestApp_RejectUnsuccessful(t *testing.T) {
	ts := newServer(t)

	t.Run("enabled", func(t *testing.T) {
		bnettest.SetBaseEnv(t).BaseURL(ts.URL).RejectUnsuccessful(true)

		var client *bfetch.Client
		app := bnettest.New[bnet.BaseEnvironment](t, func(c *bfetch.Client) { client = c })
		app.RequireStart()
		t.Cleanup(app.RequireStop)

		_, err := client.Fetch(t.Context(), "/missing", nil)
		rerr, ok := bfetch.AsReducerError(err)
		require.True(t, ok)
		resp, ok := rerr.Response()
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, resp.Status())
	})

	t.Run("disabled", func(t *testing.T) {
		bnettest.SetBaseEnv(t).BaseURL(ts.URL)

		var client *bfetch.Client
		app := bnettest.New[bnet.BaseEnvironment](t, func(c *bfetch.Client) { client = c })
		app.RequireStart()
		t.Cleanup(app.RequireStop)

		resp, err := client.Fetch(t.Context(), "/missing", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.Status())
	})
}

func TestApp_ConfigFromFx(t *testing.T) {
	ts := newServer(t)
	bnettest.SetBaseEnv(t).BaseURL(ts.URL)

	secrets := staticSecrets{"api-token": "Bearer from-secret"}

	var fetch bfetch.FetchFunc
	app := bnettest.New[bnet.BaseEnvironment](t, func(f bfetch.FetchFunc) { fetch = f },
		bnet.WithFx(
			fx.Provide(func() bnet.SecretReader { return secrets }),
			fx.Provide(func(sr bnet.SecretReader) bfetch.Config {
				return bfetch.Config{
					RequestReducers: []bfetch.Reducer[bfetch.Request]{
						bfetch.AddHeaders(bnet.SecretHeader(sr, "Authorization", "api-token")),
						bfetch.ProcessBody(func(_ context.Context, body any) (any, error) {
							return strings.ToUpper(body.(string)), nil
						}),
					},
					ResponseReducers: []bfetch.Reducer[bfetch.Response]{bnet.ExtractJSON("")},
				}
			}),
		))
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	resp, err := fetch(t.Context(), "/secure", bfetch.Request{"method": http.MethodPost, "body": "hello"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"path": "/secure",
		"auth": "Bearer from-secret",
		"body": "HELLO",
	}, resp["body"])
}

func TestApp_WithAWSSecrets(t *testing.T) {
	bnettest.SetBaseEnv(t)

	var reader bnet.SecretReader
	app := bnettest.New[bnet.BaseEnvironment](t, func(sr bnet.SecretReader) { reader = sr },
		bnet.WithAWSSecrets())
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	assert.IsType(t, &bnet.AWSSecretReader{}, reader)
}

type staticSecrets map[string]string

func (s staticSecrets) GetSecretString(_ context.Context, id string) (string, error) {
	return s[id], nil
}
