package vault

import (
	"context"
	"errors"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

// List returns summaries of the caller's owned files in id order.
func (s *Service) List(ctx context.Context, caller models.Principal) ([]models.FileSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.FileSummary
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		owned, _, err := tx.Owners().List(ctx, caller)
		if err != nil {
			return err
		}
		for _, id := range owned {
			file, err := tx.Files().Get(ctx, id)
			if errors.Is(err, common.ErrFileNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			result = append(result, models.FileSummary{
				FileID:   id,
				FileName: file.Metadata.FileName,
				Status:   file.Status(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SharedWithMe returns summaries of files other principals shared with the
// caller, in grant order.
func (s *Service) SharedWithMe(ctx context.Context, caller models.Principal) ([]models.FileSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.FileSummary
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		shared, err := tx.Shares().List(ctx, caller)
		if err != nil {
			return err
		}
		for _, id := range shared {
			file, err := tx.Files().Get(ctx, id)
			if errors.Is(err, common.ErrFileNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			result = append(result, models.FileSummary{
				FileID:   id,
				FileName: file.Metadata.FileName,
				Status:   file.Status(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
