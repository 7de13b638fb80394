package keyring

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"github.com/vkarpovs/filevault/internal/common"
	"golang.org/x/crypto/nacl/box"
)

// LocalGateway derives key material from a process-local master secret.
// It stands in for the remote derivation service in development and tests,
// honoring the same contract: deterministic material per (derivation id,
// key name), returned encrypted to the requester's ephemeral public key.
type LocalGateway struct {
	masterSecret []byte
}

func NewLocalGateway(masterSecret []byte) *LocalGateway {
	return &LocalGateway{masterSecret: masterSecret}
}

func (g *LocalGateway) Derive(ctx context.Context, derivationID []byte, keyName string, encryptionPublicKey []byte) ([]byte, error) {
	if len(encryptionPublicKey) != 32 {
		return nil, fmt.Errorf("%w: bad encryption public key length", common.ErrDerivationFailed)
	}

	mac := hmac.New(sha256.New, g.masterSecret)
	mac.Write(derivationID)
	mac.Write([]byte{0})
	mac.Write([]byte(keyName))
	material := mac.Sum(nil)

	var pub [32]byte
	copy(pub[:], encryptionPublicKey)

	sealed, err := box.SealAnonymous(nil, material, &pub, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDerivationFailed, err)
	}
	return sealed, nil
}
