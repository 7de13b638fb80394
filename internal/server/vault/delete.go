package vault

import (
	"context"
	"errors"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

// Delete removes a file the caller owns: the record, every stored chunk,
// the ownership entry, and all share-index entries, in one atomic step.
// Once ownership is confirmed the owned-list entry is pruned even when the
// record itself is already gone, so a dangling entry cannot survive; that
// case still reports ErrFileNotFound.
func (s *Service) Delete(ctx context.Context, caller models.Principal, fileID uint64) error {
	if caller.IsAnonymous() {
		return common.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var notFound bool
	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		owned, has, err := tx.Owners().List(ctx, caller)
		if err != nil {
			return err
		}
		if !has {
			return common.ErrPermissionDenied
		}

		owns := false
		for _, id := range owned {
			if id == fileID {
				owns = true
				break
			}
		}
		if !owns {
			if _, err := tx.Files().Get(ctx, fileID); errors.Is(err, common.ErrFileNotFound) {
				return common.ErrFileNotFound
			}
			return common.ErrPermissionDenied
		}

		if err := tx.Owners().Remove(ctx, caller, fileID); err != nil {
			return err
		}

		_, err = tx.Files().Get(ctx, fileID)
		if errors.Is(err, common.ErrFileNotFound) {
			// Commit the pruning, report the missing record afterwards.
			notFound = true
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Chunks().DeleteAll(ctx, fileID); err != nil {
			return err
		}
		if err := tx.Files().Delete(ctx, fileID); err != nil {
			return err
		}
		return tx.Shares().RemoveFile(ctx, fileID)
	})
	if err != nil {
		return err
	}
	if notFound {
		return common.ErrFileNotFound
	}

	s.log.Info(ctx, "file deleted", "file_id", fileID)
	return nil
}
