package keyring

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vkarpovs/filevault/internal/common"
)

// HTTPGateway calls a remote key-derivation service over a JSON POST
// endpoint. Failures and timeouts surface as ErrDerivationFailed; the
// core never retries.
type HTTPGateway struct {
	endpoint string
	client   *http.Client
}

func NewHTTPGateway(endpoint string) *HTTPGateway {
	return &HTTPGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type deriveRequest struct {
	DerivationID        string `json:"derivation_id"`
	KeyName             string `json:"key_name"`
	EncryptionPublicKey string `json:"encryption_public_key"`
}

type deriveResponse struct {
	EncryptedKey string `json:"encrypted_key"`
}

func (g *HTTPGateway) Derive(ctx context.Context, derivationID []byte, keyName string, encryptionPublicKey []byte) ([]byte, error) {
	body, err := json.Marshal(deriveRequest{
		DerivationID:        base64.StdEncoding.EncodeToString(derivationID),
		KeyName:             keyName,
		EncryptionPublicKey: base64.StdEncoding.EncodeToString(encryptionPublicKey),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDerivationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDerivationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: gateway unreachable", common.ErrDerivationFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway status %d", common.ErrDerivationFailed, resp.StatusCode)
	}

	var dr deriveResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&dr); err != nil {
		return nil, fmt.Errorf("%w: bad gateway response", common.ErrDerivationFailed)
	}

	key, err := base64.StdEncoding.DecodeString(dr.EncryptedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: bad gateway response", common.ErrDerivationFailed)
	}
	return key, nil
}
