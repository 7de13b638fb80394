// Package store persists the file registry: metadata records, the ordered
// chunk store keyed by (file id, chunk id), and the ownership and share
// indexes. Two implementations exist: an in-memory store for development
// and tests, and a Postgres store for production.
package store

import (
	"context"

	"github.com/vkarpovs/filevault/internal/server/models"
)

// Chunk is one stored chunk of a file's payload.
type Chunk struct {
	ChunkID  uint64
	Contents []byte
}

// FileRepository holds the authoritative file records keyed by id.
type FileRepository interface {
	// Get returns the record for id, or common.ErrFileNotFound.
	Get(ctx context.Context, id uint64) (*models.File, error)
	// Put inserts or replaces the record for id.
	Put(ctx context.Context, id uint64, file *models.File) error
	// Delete removes the record for id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id uint64) error
}

// ChunkRepository maps (file id, chunk id) to raw chunk bytes. Keys are
// write-once; a contiguous scan for a file yields chunks in index order.
type ChunkRepository interface {
	// Put stores a chunk, failing with common.ErrChunkExists when the key
	// is already present.
	Put(ctx context.Context, fileID, chunkID uint64, contents []byte) error
	// Has reports whether the key is present.
	Has(ctx context.Context, fileID, chunkID uint64) (bool, error)
	// Get returns the chunk bytes, or common.ErrFileNotFound when absent.
	Get(ctx context.Context, fileID, chunkID uint64) ([]byte, error)
	// Count returns the number of chunks stored for fileID. Cost is
	// proportional to that file's chunks, not the whole store.
	Count(ctx context.Context, fileID uint64) (uint64, error)
	// Range returns all chunks for fileID in ascending chunk id order.
	Range(ctx context.Context, fileID uint64) ([]Chunk, error)
	// DeleteAll removes every chunk stored under fileID.
	DeleteAll(ctx context.Context, fileID uint64) error
}

// OwnerRepository maps principals to the ordered list of file ids they own.
// A principal that once owned a file keeps an (empty) list forever, which
// lets callers distinguish "never owned anything" from "owns nothing now".
type OwnerRepository interface {
	Add(ctx context.Context, p models.Principal, fileID uint64) error
	Remove(ctx context.Context, p models.Principal, fileID uint64) error
	// List returns the owned ids in insertion order and whether the
	// principal has an owned list at all.
	List(ctx context.Context, p models.Principal) ([]uint64, bool, error)
}

// ShareRepository maps principals to the file ids shared with them. It is a
// projection of the authoritative envelope shared sets, maintained in the
// same mutation, so both views agree at every observable point.
type ShareRepository interface {
	// Add records a grant; adding an existing grant is a no-op.
	Add(ctx context.Context, p models.Principal, fileID uint64) error
	// Remove drops a grant; removing an absent grant is a no-op.
	Remove(ctx context.Context, p models.Principal, fileID uint64) error
	// List returns the ids shared with p in grant order.
	List(ctx context.Context, p models.Principal) ([]uint64, error)
	// RemoveFile drops every grant of fileID across all principals.
	RemoveFile(ctx context.Context, fileID uint64) error
}

// Tx exposes the repositories of one store inside a unit of work.
type Tx interface {
	Files() FileRepository
	Chunks() ChunkRepository
	Owners() OwnerRepository
	Shares() ShareRepository
}

// Store is the persistence boundary of the registry. Update runs fn as a
// single all-or-nothing unit; View runs a read-only fn.
type Store interface {
	// AllocateFileID returns the next file id. Ids increase monotonically
	// and are never reused, including ids burned by failed operations.
	AllocateFileID(ctx context.Context) (uint64, error)
	Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	RunMigrations(ctx context.Context) error
	Close() error
}
