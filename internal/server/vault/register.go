package vault

import (
	"context"

	"github.com/google/uuid"
	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

const (
	ProviderLocal = "local"
	ProviderS3    = "s3"
)

const aliasLength = 16

// RegisterRequest describes a file to register without content.
type RegisterRequest struct {
	FileName        string
	StorageProvider string
	// BlobRef names the external object for provider-stored payloads. When
	// empty and the provider is s3, a fresh object key is generated.
	BlobRef string
	// UploadedAt marks payloads that already live at the provider.
	UploadedAt *uint64
}

// Register inserts a Pending file owned by caller and returns its id. Any
// caller is accepted, including the anonymous one.
func (s *Service) Register(ctx context.Context, caller models.Principal, req RegisterRequest) (uint64, error) {
	if req.FileName == "" {
		return 0, common.ErrInvalidInput
	}
	switch req.StorageProvider {
	case "", ProviderLocal, ProviderS3:
	default:
		return 0, common.ErrUnsupportedProvider
	}

	provider := req.StorageProvider
	if provider == "" {
		provider = ProviderLocal
	}
	blobRef := req.BlobRef
	if provider == ProviderS3 && blobRef == "" {
		blobRef = uuid.NewString()
	}

	alias, err := common.MakeRandHexString(aliasLength)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fileID, err := s.store.AllocateFileID(ctx)
	if err != nil {
		return 0, err
	}

	file := &models.File{
		Metadata: models.FileMetadata{
			FileName:           req.FileName,
			RequesterPrincipal: caller,
			RequestedAt:        s.now(),
			UploadedAt:         req.UploadedAt,
			StorageProvider:    provider,
			BlobRef:            blobRef,
		},
		Content: models.ContentPending{Alias: alias},
	}

	err = s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		if err := tx.Files().Put(ctx, fileID, file); err != nil {
			return err
		}
		return tx.Owners().Add(ctx, caller, fileID)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info(ctx, "file registered", "file_id", fileID, "provider", provider)
	return fileID, nil
}
