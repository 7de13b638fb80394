package keyring

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkarpovs/filevault/internal/common"
)

func TestHTTPGateway_Derive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req deriveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "file_key_1", req.KeyName)
		assert.NotEmpty(t, req.DerivationID)

		_ = json.NewEncoder(w).Encode(deriveResponse{
			EncryptedKey: base64.StdEncoding.EncodeToString([]byte("sealed-material")),
		})
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL)
	got, err := g.Derive(context.Background(), []byte("did"), "file_key_1", make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed-material"), got)
}

func TestHTTPGateway_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such key", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL)
	_, err := g.Derive(context.Background(), []byte("did"), "k", make([]byte, 32))
	assert.ErrorIs(t, err, common.ErrDerivationFailed)
}

func TestHTTPGateway_Unreachable(t *testing.T) {
	g := NewHTTPGateway("http://127.0.0.1:1")
	_, err := g.Derive(context.Background(), []byte("did"), "k", make([]byte, 32))
	assert.ErrorIs(t, err, common.ErrDerivationFailed)
}

func TestHTTPGateway_BadBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(deriveResponse{EncryptedKey: "%%%not-base64%%%"})
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL)
	_, err := g.Derive(context.Background(), []byte("did"), "k", make([]byte, 32))
	assert.ErrorIs(t, err, common.ErrDerivationFailed)
}
