package vault

import (
	"context"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

// shareableEnvelope runs the common share/unshare ladder: caller must own
// the file per both the ownership index and the file record, the target
// must be a plausible principal, and the file must carry an envelope.
func shareableEnvelope(ctx context.Context, tx store.Tx, caller models.Principal, fileID uint64, target models.Principal) (*models.File, *models.Envelope, error) {
	owned, has, err := tx.Owners().List(ctx, caller)
	if err != nil {
		return nil, nil, err
	}
	owns := false
	if has {
		for _, id := range owned {
			if id == fileID {
				owns = true
				break
			}
		}
	}
	if !owns {
		return nil, nil, common.ErrPermissionDenied
	}

	if target.IsAnonymous() {
		return nil, nil, common.ErrUserNotFound
	}
	if target == caller {
		return nil, nil, common.ErrInvalidInput
	}

	file, err := tx.Files().Get(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file.Metadata.RequesterPrincipal != caller {
		return nil, nil, common.ErrPermissionDenied
	}

	switch c := file.Content.(type) {
	case models.ContentUploaded:
		return file, c.Envelope, nil
	case models.ContentPartiallyUploaded:
		if c.Envelope == nil {
			return nil, nil, common.ErrFileNotUploaded
		}
		return file, c.Envelope, nil
	default:
		return nil, nil, common.ErrFilePending
	}
}

// Share grants target access to an uploaded file. The envelope's shared
// set is authoritative; the share index is updated in the same mutation so
// both views agree at every observable point. Sharing twice is a no-op.
func (s *Service) Share(ctx context.Context, caller models.Principal, fileID uint64, target models.Principal) error {
	if caller.IsAnonymous() {
		return common.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		file, env, err := shareableEnvelope(ctx, tx, caller, fileID, target)
		if err != nil {
			return err
		}
		if err := s.keys.Grant(env, caller, target); err != nil {
			return err
		}
		if err := tx.Files().Put(ctx, fileID, file); err != nil {
			return err
		}
		return tx.Shares().Add(ctx, target, fileID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "file shared", "file_id", fileID)
	return nil
}

// Unshare revokes target's access: the grant is removed from the envelope
// and the share index together. Revoking an absent grant succeeds.
func (s *Service) Unshare(ctx context.Context, caller models.Principal, fileID uint64, target models.Principal) error {
	if caller.IsAnonymous() {
		return common.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Update(ctx, func(ctx context.Context, tx store.Tx) error {
		file, env, err := shareableEnvelope(ctx, tx, caller, fileID, target)
		if err != nil {
			return err
		}
		if err := s.keys.Revoke(env, caller, target); err != nil {
			return err
		}
		if err := tx.Files().Put(ctx, fileID, file); err != nil {
			return err
		}
		return tx.Shares().Remove(ctx, target, fileID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "file unshared", "file_id", fileID)
	return nil
}

// AccessLists is a consistent snapshot of one principal's owned and
// shared-with-them file ids.
type AccessLists struct {
	Owned  []uint64
	Shared []uint64
}

// Query returns both access lists in one atomic read.
func (s *Service) Query(ctx context.Context, caller models.Principal) (*AccessLists, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := &AccessLists{}
	err := s.store.View(ctx, func(ctx context.Context, tx store.Tx) error {
		owned, _, err := tx.Owners().List(ctx, caller)
		if err != nil {
			return err
		}
		shared, err := tx.Shares().List(ctx, caller)
		if err != nil {
			return err
		}
		result.Owned = owned
		result.Shared = shared
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
