package store

import (
	"context"
	"sort"

	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
)

// MemoryStore keeps the whole registry in process memory. Callers (the
// vault) serialize access; the store itself performs no locking. Update
// offers no rollback, so callers must validate before mutating, which is
// how the vault's operations are written.
type MemoryStore struct {
	nextID uint64
	files  map[uint64]*models.File
	chunks map[uint64]map[uint64][]byte
	owners map[models.Principal][]uint64
	shares map[models.Principal][]uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files:  make(map[uint64]*models.File),
		chunks: make(map[uint64]map[uint64][]byte),
		owners: make(map[models.Principal][]uint64),
		shares: make(map[models.Principal][]uint64),
	}
}

func (s *MemoryStore) AllocateFileID(ctx context.Context) (uint64, error) {
	id := s.nextID
	s.nextID++
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return fn(ctx, memTx{s})
}

func (s *MemoryStore) View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return fn(ctx, memTx{s})
}

func (s *MemoryStore) RunMigrations(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

type memTx struct{ s *MemoryStore }

func (t memTx) Files() FileRepository   { return memFiles{t.s} }
func (t memTx) Chunks() ChunkRepository { return memChunks{t.s} }
func (t memTx) Owners() OwnerRepository { return memOwners{t.s} }
func (t memTx) Shares() ShareRepository { return memShares{t.s} }

type memFiles struct{ s *MemoryStore }

func (r memFiles) Get(ctx context.Context, id uint64) (*models.File, error) {
	f, ok := r.s.files[id]
	if !ok {
		return nil, common.ErrFileNotFound
	}
	return f, nil
}

func (r memFiles) Put(ctx context.Context, id uint64, file *models.File) error {
	r.s.files[id] = file
	return nil
}

func (r memFiles) Delete(ctx context.Context, id uint64) error {
	delete(r.s.files, id)
	return nil
}

type memChunks struct{ s *MemoryStore }

func (r memChunks) Put(ctx context.Context, fileID, chunkID uint64, contents []byte) error {
	perFile, ok := r.s.chunks[fileID]
	if !ok {
		perFile = make(map[uint64][]byte)
		r.s.chunks[fileID] = perFile
	}
	if _, exists := perFile[chunkID]; exists {
		return common.ErrChunkExists
	}
	perFile[chunkID] = append([]byte(nil), contents...)
	return nil
}

func (r memChunks) Has(ctx context.Context, fileID, chunkID uint64) (bool, error) {
	_, ok := r.s.chunks[fileID][chunkID]
	return ok, nil
}

func (r memChunks) Get(ctx context.Context, fileID, chunkID uint64) ([]byte, error) {
	contents, ok := r.s.chunks[fileID][chunkID]
	if !ok {
		return nil, common.ErrFileNotFound
	}
	return append([]byte(nil), contents...), nil
}

func (r memChunks) Count(ctx context.Context, fileID uint64) (uint64, error) {
	return uint64(len(r.s.chunks[fileID])), nil
}

func (r memChunks) Range(ctx context.Context, fileID uint64) ([]Chunk, error) {
	perFile := r.s.chunks[fileID]
	out := make([]Chunk, 0, len(perFile))
	for id, contents := range perFile {
		out = append(out, Chunk{ChunkID: id, Contents: append([]byte(nil), contents...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChunkID < out[j].ChunkID })
	return out, nil
}

func (r memChunks) DeleteAll(ctx context.Context, fileID uint64) error {
	delete(r.s.chunks, fileID)
	return nil
}

type memOwners struct{ s *MemoryStore }

func (r memOwners) Add(ctx context.Context, p models.Principal, fileID uint64) error {
	r.s.owners[p] = append(r.s.owners[p], fileID)
	return nil
}

func (r memOwners) Remove(ctx context.Context, p models.Principal, fileID uint64) error {
	ids, ok := r.s.owners[p]
	if !ok {
		return nil
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != fileID {
			kept = append(kept, id)
		}
	}
	// The (possibly empty) list stays: the principal has owned files before.
	r.s.owners[p] = kept
	return nil
}

func (r memOwners) List(ctx context.Context, p models.Principal) ([]uint64, bool, error) {
	ids, ok := r.s.owners[p]
	if !ok {
		return nil, false, nil
	}
	return append([]uint64(nil), ids...), true, nil
}

type memShares struct{ s *MemoryStore }

func (r memShares) Add(ctx context.Context, p models.Principal, fileID uint64) error {
	for _, id := range r.s.shares[p] {
		if id == fileID {
			return nil
		}
	}
	r.s.shares[p] = append(r.s.shares[p], fileID)
	return nil
}

func (r memShares) Remove(ctx context.Context, p models.Principal, fileID uint64) error {
	ids, ok := r.s.shares[p]
	if !ok {
		return nil
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != fileID {
			kept = append(kept, id)
		}
	}
	r.s.shares[p] = kept
	return nil
}

func (r memShares) List(ctx context.Context, p models.Principal) ([]uint64, error) {
	return append([]uint64(nil), r.s.shares[p]...), nil
}

func (r memShares) RemoveFile(ctx context.Context, fileID uint64) error {
	for p, ids := range r.s.shares {
		kept := ids[:0]
		for _, id := range ids {
			if id != fileID {
				kept = append(kept, id)
			}
		}
		r.s.shares[p] = kept
	}
	return nil
}
