package vault

import (
	"context"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

// DownloadResult is one chunk of a downloaded file plus the metadata a
// client needs to fetch the rest.
type DownloadResult struct {
	Contents  []byte
	FileType  string
	NumChunks uint64
}

// Download returns one chunk of an uploaded file. The envelope's access
// check and decryption gate every download: a caller that is neither the
// owner nor in the shared set gets ErrPermissionDenied without any
// cryptographic work being done.
func (s *Service) Download(ctx context.Context, caller models.Principal, fileID, chunkID uint64) (*DownloadResult, error) {
	if caller.IsAnonymous() {
		return nil, common.ErrNotAuthenticated
	}

	// Snapshot under the read lock, unseal outside it.
	var (
		env      *models.Envelope
		contents []byte
		fileType string
		chunks   uint64
	)

	s.mu.RLock()
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		file, err := tx.Files().Get(ctx, fileID)
		if err != nil {
			return err
		}

		switch c := file.Content.(type) {
		case models.ContentUploaded:
			env = c.Envelope.Clone()
			fileType = c.FileType
			chunks = c.NumChunks
		case models.ContentPartiallyUploaded:
			if c.Envelope != nil && !c.Envelope.AccessibleBy(caller) {
				return common.ErrPermissionDenied
			}
			return common.ErrFileNotUploaded
		default:
			return common.ErrFileNotUploaded
		}

		if !env.AccessibleBy(caller) {
			return common.ErrPermissionDenied
		}

		contents, err = tx.Chunks().Get(ctx, fileID, chunkID)
		return err
	})
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	if _, err := s.keys.Unseal(ctx, env, caller); err != nil {
		return nil, err
	}

	return &DownloadResult{Contents: contents, FileType: fileType, NumChunks: chunks}, nil
}
