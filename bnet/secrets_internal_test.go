package bnet

import (
	"context"
	"testing"

	"github.com/advdv/bfetch"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSecretReader struct {
	secrets map[string]string
	reads   int
}

func (m *mockSecretReader) GetSecretString(_ context.Context, secretID string) (string, error) {
	m.reads++
	s, ok := m.secrets[secretID]
	if !ok {
		return "", errors.Newf("secret %q not found", secretID)
	}
	return s, nil
}

func TestSecretFromReader(t *testing.T) {
	reader := &mockSecretReader{secrets: map[string]string{
		"raw":  "plain-value",
		"json": `{"api":{"token":"abc"},"keys":["k0","k1"]}`,
	}}

	tests := []struct {
		name     string
		secretID string
		jsonPath []string
		want     string
		wantErr  string
	}{
		{name: "raw secret", secretID: "raw", want: "plain-value"},
		{name: "empty path returns raw", secretID: "raw", jsonPath: []string{""}, want: "plain-value"},
		{name: "nested path", secretID: "json", jsonPath: []string{"api.token"}, want: "abc"},
		{name: "array path", secretID: "json", jsonPath: []string{"keys.1"}, want: "k1"},
		{name: "missing path", secretID: "json", jsonPath: []string{"api.nope"}, wantErr: `secret path "api.nope" not found`},
		{name: "missing secret", secretID: "nope", wantErr: `secret "nope" not found`},
		{name: "too many paths", secretID: "json", jsonPath: []string{"a", "b"}, wantErr: "at most one jsonPath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := secretFromReader(t.Context(), reader, tt.secretID, tt.jsonPath...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecretHeader(t *testing.T) {
	reader := &mockSecretReader{secrets: map[string]string{"creds": `{"bearer":"Bearer abc"}`}}
	reducer := bfetch.AddHeaders(SecretHeader(reader, "Authorization", "creds", "bearer"))

	for range 2 {
		req, err := reducer.Reduce(t.Context(), bfetch.Request{"headers": bfetch.Headers{"Accept": "*/*"}})
		require.NoError(t, err)
		assert.Equal(t, bfetch.Headers{"Accept": "*/*", "Authorization": "Bearer abc"}, req.Headers())
	}
	assert.Equal(t, 2, reader.reads, "the secret should be read for every request")

	t.Run("request header wins", func(t *testing.T) {
		req, err := reducer.Reduce(t.Context(), bfetch.Request{"headers": bfetch.Headers{"Authorization": "mine"}})
		require.NoError(t, err)
		assert.Equal(t, "mine", req.Headers()["Authorization"])
	})

	t.Run("read errors are raised", func(t *testing.T) {
		_, err := bfetch.AddHeaders(SecretHeader(reader, "Authorization", "missing")).Reduce(t.Context(), bfetch.Request{})
		require.Error(t, err)
	})
}
