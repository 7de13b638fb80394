package vault

import (
	"context"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

// UploadAtomic registers a file and stores its first chunk in one step.
// The content is sealed for caller and sharedWith before anything is
// committed, so a gateway failure leaves no trace besides a burned id.
// With numChunks == 1 the file is immediately Uploaded.
func (s *Service) UploadAtomic(ctx context.Context, caller models.Principal, fileName string, content []byte, fileType string, numChunks uint64, sharedWith []models.Principal) (uint64, error) {
	if caller.IsAnonymous() {
		return 0, common.ErrNotAuthenticated
	}
	if fileName == "" || numChunks == 0 {
		return 0, common.ErrInvalidInput
	}

	s.mu.Lock()
	fileID, err := s.store.AllocateFileID(ctx)
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}

	// Gateway round-trip outside the lock.
	env, err := s.keys.Seal(ctx, content, fileID, caller, sharedWith, fileType)
	if err != nil {
		return 0, err
	}

	now := s.now()
	file := &models.File{
		Metadata: models.FileMetadata{
			FileName:           fileName,
			RequesterPrincipal: caller,
			RequestedAt:        now,
			StorageProvider:    ProviderLocal,
			Encrypted:          true,
		},
	}
	if numChunks == 1 {
		file.Metadata.UploadedAt = &now
		file.Content = models.ContentUploaded{NumChunks: numChunks, FileType: fileType, Envelope: env}
	} else {
		file.Content = models.ContentPartiallyUploaded{NumChunks: numChunks, FileType: fileType, Envelope: env}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		if err := tx.Files().Put(ctx, fileID, file); err != nil {
			return err
		}
		if err := tx.Chunks().Put(ctx, fileID, 0, content); err != nil {
			return err
		}
		if err := tx.Owners().Add(ctx, caller, fileID); err != nil {
			return err
		}
		for _, p := range env.SharedWith {
			if err := tx.Shares().Add(ctx, p, fileID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info(ctx, "file uploaded", "file_id", fileID, "num_chunks", numChunks, "status", file.Status())
	return fileID, nil
}

// UploadContinue stores one more chunk of a partially uploaded file. Only
// the original requester may continue an upload. When the last missing
// chunk arrives the file transitions to Uploaded and UploadedAt is stamped.
func (s *Service) UploadContinue(ctx context.Context, caller models.Principal, fileID, chunkID uint64, contents []byte) error {
	if caller.IsAnonymous() {
		return common.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var completed bool
	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		file, err := tx.Files().Get(ctx, fileID)
		if err != nil {
			return err
		}
		if file.Metadata.RequesterPrincipal != caller {
			return common.ErrNotAuthenticated
		}

		partial, ok := file.Content.(models.ContentPartiallyUploaded)
		if !ok {
			return common.ErrUnexpectedState
		}
		if chunkID >= partial.NumChunks {
			return common.ErrChunkOutOfRange
		}

		exists, err := tx.Chunks().Has(ctx, fileID, chunkID)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrChunkExists
		}

		stored, err := tx.Chunks().Count(ctx, fileID)
		if err != nil {
			return err
		}
		last := stored+1 == partial.NumChunks
		if last && partial.Envelope == nil {
			return common.ErrInconsistentState
		}

		if err := tx.Chunks().Put(ctx, fileID, chunkID, contents); err != nil {
			return err
		}
		if !last {
			return nil
		}

		now := s.now()
		file.Metadata.UploadedAt = &now
		file.Content = models.ContentUploaded{
			NumChunks: partial.NumChunks,
			FileType:  partial.FileType,
			Envelope:  partial.Envelope,
		}
		completed = true
		return tx.Files().Put(ctx, fileID, file)
	})
	if err != nil {
		return err
	}

	if completed {
		s.log.Info(ctx, "upload complete", "file_id", fileID)
	}
	return nil
}
