// Package vault implements the file lifecycle: registration, chunked
// upload, sharing, download, and deletion. Every operation is atomic with
// respect to every other one: mutations run behind a single write lock and
// reads observe either all of an operation's effects or none of them.
package vault

import (
	"context"
	"sync"
	"time"

	"github.com/vkarpovs/filevault/internal/logging"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

// Keyring seals and unseals file content and mutates envelope shared sets.
// Implemented by keyring.Manager.
type Keyring interface {
	Seal(ctx context.Context, plaintext []byte, fileID uint64, owner models.Principal, sharedWith []models.Principal, fileType string) (*models.Envelope, error)
	Unseal(ctx context.Context, env *models.Envelope, requester models.Principal) ([]byte, error)
	Grant(env *models.Envelope, owner models.Principal, targets ...models.Principal) error
	Revoke(env *models.Envelope, owner models.Principal, target models.Principal) error
}

// BlobSigner issues presigned URLs for payloads held by an external
// storage provider.
type BlobSigner interface {
	PresignUpload(ctx context.Context, key string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// Service is the vault core. The mutex serializes logical operations, not
// individual store calls; slow external work (the key-derivation gateway)
// runs outside the critical section.
type Service struct {
	mu    sync.RWMutex
	store store.Store
	keys  Keyring
	blobs BlobSigner
	log   logging.Logger

	// now stamps RequestedAt/UploadedAt, replaceable in tests.
	now func() uint64
}

// NewService wires the vault. blobs may be nil when no external storage
// provider is configured.
func NewService(st store.Store, keys Keyring, blobs BlobSigner, log logging.Logger) *Service {
	return &Service{
		store: st,
		keys:  keys,
		blobs: blobs,
		log:   log,
		now:   func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}
