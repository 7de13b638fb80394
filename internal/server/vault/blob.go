package vault

import (
	"context"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

// blobRef resolves the external object key for an owner-only URL request.
func (s *Service) blobRef(ctx context.Context, caller models.Principal, fileID uint64) (string, error) {
	if caller.IsAnonymous() {
		return "", common.ErrNotAuthenticated
	}
	if s.blobs == nil {
		return "", common.ErrUnsupportedProvider
	}

	var ref string
	s.mu.RLock()
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		file, err := tx.Files().Get(ctx, fileID)
		if err != nil {
			return err
		}
		if file.Metadata.RequesterPrincipal != caller {
			return common.ErrPermissionDenied
		}
		if file.Metadata.StorageProvider != ProviderS3 {
			return common.ErrUnsupportedProvider
		}
		ref = file.Metadata.BlobRef
		return nil
	})
	s.mu.RUnlock()
	if err != nil {
		return "", err
	}
	return ref, nil
}

// UploadURL returns a presigned URL the owner can PUT the payload of a
// provider-stored file to.
func (s *Service) UploadURL(ctx context.Context, caller models.Principal, fileID uint64) (string, error) {
	ref, err := s.blobRef(ctx, caller, fileID)
	if err != nil {
		return "", err
	}
	return s.blobs.PresignUpload(ctx, ref)
}

// DownloadURL returns a presigned URL the owner can GET the payload of a
// provider-stored file from.
func (s *Service) DownloadURL(ctx context.Context, caller models.Principal, fileID uint64) (string, error) {
	ref, err := s.blobRef(ctx, caller, fileID)
	if err != nil {
		return "", err
	}
	return s.blobs.PresignDownload(ctx, ref)
}
