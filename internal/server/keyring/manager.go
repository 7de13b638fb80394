package keyring

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/box"
)

const (
	contentKeySize = 32
	gcmNonceSize   = 12
)

// hkdfInfo domain-separates content keys from any other use of the
// gateway's key material.
var hkdfInfo = []byte("filevault content key v1")

// Manager is the encryption manager: it turns plaintext into sealed
// envelopes bound to an owner and a shared set, reverses that for
// authorized readers, and mutates the shared set on demand.
type Manager struct {
	gateway Gateway
}

func NewManager(gateway Gateway) *Manager {
	return &Manager{gateway: gateway}
}

// DerivationID builds the unique derivation identifier for a (file, owner)
// pair: the fixed-width big-endian file id followed by the owner's identity
// bytes. Distinct pairs always map to distinct identifiers.
func DerivationID(fileID uint64, owner models.Principal) []byte {
	id := make([]byte, 8, 8+len(owner))
	binary.BigEndian.PutUint64(id, fileID)
	return append(id, []byte(owner)...)
}

// KeyName returns the gateway key name for a file.
func KeyName(fileID uint64) string {
	return fmt.Sprintf("file_key_%d", fileID)
}

// contentKey fetches key material from the gateway for the given config and
// expands it into an AES-256 key. The material travels encrypted to a fresh
// ephemeral X25519 key generated for this single call.
func (m *Manager) contentKey(ctx context.Context, cfg models.KeyConfig) ([]byte, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	sealed, err := m.gateway.Derive(ctx, cfg.DerivationID, cfg.KeyName, pub[:])
	if err != nil {
		return nil, err
	}

	material, ok := box.OpenAnonymous(nil, sealed, pub, priv)
	if !ok {
		return nil, common.ErrDerivationFailed
	}
	defer common.WipeByteArray(material)

	key := make([]byte, contentKeySize)
	kdf := hkdf.New(sha256.New, material, cfg.DerivationID, hkdfInfo)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Seal encrypts plaintext for owner and the initial shared set, producing a
// complete envelope or no envelope at all. Gateway failure surfaces as
// ErrEncryptionFailed; the error text never carries derivation identifiers.
func (m *Manager) Seal(ctx context.Context, plaintext []byte, fileID uint64, owner models.Principal, sharedWith []models.Principal, fileType string) (*models.Envelope, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, common.ErrEncryptionFailed
	}

	cfg := models.KeyConfig{
		DerivationID:        DerivationID(fileID, owner),
		KeyName:             KeyName(fileID),
		EncryptionPublicKey: pub[:],
	}

	sealed, err := m.gateway.Derive(ctx, cfg.DerivationID, cfg.KeyName, pub[:])
	if err != nil {
		return nil, common.ErrEncryptionFailed
	}
	material, ok := box.OpenAnonymous(nil, sealed, pub, priv)
	if !ok {
		return nil, common.ErrEncryptionFailed
	}
	defer common.WipeByteArray(material)

	key := make([]byte, contentKeySize)
	kdf := hkdf.New(sha256.New, material, cfg.DerivationID, hkdfInfo)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, common.ErrEncryptionFailed
	}
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.ErrEncryptionFailed
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.ErrEncryptionFailed
	}

	nonce := common.GenerateRandByteArray(gcmNonceSize)
	ciphertext := aesgcm.Seal(nil, nonce, plaintext, cfg.DerivationID)

	// Deduplicate the initial shared set, preserving insertion order, and
	// never list the owner as a share target.
	var shared []models.Principal
	for _, p := range sharedWith {
		if p == owner || p.IsAnonymous() {
			continue
		}
		dup := false
		for _, s := range shared {
			if s == p {
				dup = true
				break
			}
		}
		if !dup {
			shared = append(shared, p)
		}
	}

	return &models.Envelope{
		FileID:           fileID,
		EncryptedContent: ciphertext,
		Nonce:            nonce,
		FileType:         fileType,
		Owner:            owner,
		SharedWith:       shared,
		KeyConfig:        cfg,
	}, nil
}

// Unseal decrypts an envelope for requester. The membership check runs
// strictly before any gateway or cryptographic work, both to avoid the
// wasted call and to keep timing uncorrelated with key material.
func (m *Manager) Unseal(ctx context.Context, env *models.Envelope, requester models.Principal) ([]byte, error) {
	if !env.AccessibleBy(requester) {
		return nil, common.ErrPermissionDenied
	}

	key, err := m.contentKey(ctx, env.KeyConfig)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}

	plaintext, err := aesgcm.Open(nil, env.Nonce, env.EncryptedContent, env.KeyConfig.DerivationID)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	return plaintext, nil
}

// Grant adds targets to the envelope's shared set. Only the owner may
// extend the set; duplicates are ignored so the operation is idempotent.
func (m *Manager) Grant(env *models.Envelope, owner models.Principal, targets ...models.Principal) error {
	if owner != env.Owner {
		return common.ErrPermissionDenied
	}
	for _, t := range targets {
		if t == env.Owner || t.IsAnonymous() {
			continue
		}
		if !env.IsSharedWith(t) {
			env.SharedWith = append(env.SharedWith, t)
		}
	}
	return nil
}

// Revoke removes target from the shared set. Revoking a principal that is
// not currently shared is a no-op success.
func (m *Manager) Revoke(env *models.Envelope, owner models.Principal, target models.Principal) error {
	if owner != env.Owner {
		return common.ErrPermissionDenied
	}
	kept := env.SharedWith[:0]
	for _, s := range env.SharedWith {
		if s != target {
			kept = append(kept, s)
		}
	}
	env.SharedWith = kept
	return nil
}
