package vault

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/logging"
	"github.com/vkarpovs/filevault/internal/server/keyring"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
)

const (
	alice = models.Principal("alice")
	bob   = models.Principal("bob")
	carol = models.Principal("carol")
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	keys := keyring.NewManager(keyring.NewLocalGateway([]byte("test master secret")))
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := NewService(st, keys, nil, log)
	svc.now = func() uint64 { return 1700000000 }
	return svc, st
}

func countChunks(t *testing.T, st *store.MemoryStore, fileID uint64) uint64 {
	t.Helper()
	var n uint64
	err := st.View(context.Background(), func(ctx context.Context, tx store.Tx) error {
		var err error
		n, err = tx.Chunks().Count(ctx, fileID)
		return err
	})
	require.NoError(t, err)
	return n
}

func getFile(t *testing.T, st *store.MemoryStore, fileID uint64) *models.File {
	t.Helper()
	var file *models.File
	err := st.View(context.Background(), func(ctx context.Context, tx store.Tx) error {
		var err error
		file, err = tx.Files().Get(ctx, fileID)
		return err
	})
	require.NoError(t, err)
	return file
}

func TestRegisterCreatesPendingFile(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	id, err := svc.Register(ctx, alice, RegisterRequest{FileName: "report.pdf"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)

	file := getFile(t, st, id)
	assert.Equal(t, models.StatusPending, file.Status())
	assert.Equal(t, alice, file.Metadata.RequesterPrincipal)
	assert.Equal(t, ProviderLocal, file.Metadata.StorageProvider)

	lists, err := svc.Query(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0}, lists.Owned)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, alice, RegisterRequest{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Register(ctx, alice, RegisterRequest{FileName: "x", StorageProvider: "ftp"})
	assert.ErrorIs(t, err, common.ErrUnsupportedProvider)
}

func TestRegisterS3GeneratesBlobRef(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	id, err := svc.Register(ctx, alice, RegisterRequest{FileName: "x", StorageProvider: ProviderS3})
	require.NoError(t, err)

	file := getFile(t, st, id)
	assert.Equal(t, ProviderS3, file.Metadata.StorageProvider)
	assert.NotEmpty(t, file.Metadata.BlobRef)
}

func TestUploadAtomicSingleChunk(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "notes.txt", []byte("hello"), "text/plain", 1, nil)
	require.NoError(t, err)

	file := getFile(t, st, id)
	assert.Equal(t, models.StatusUploaded, file.Status())
	require.NotNil(t, file.Metadata.UploadedAt)
	assert.True(t, file.Metadata.Encrypted)

	got, err := svc.Download(ctx, alice, id, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got.Contents)
	assert.Equal(t, "text/plain", got.FileType)
	assert.Equal(t, uint64(1), got.NumChunks)
}

func TestUploadAtomicAnonymousDoesNotAdvanceCounter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.UploadAtomic(ctx, models.Anonymous, "x", []byte("y"), "", 1, nil)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id, "rejected anonymous upload must not burn an id")
}

func TestUploadAtomicValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.UploadAtomic(ctx, alice, "", []byte("y"), "", 1, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 0, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUploadAtomicGatewayFailureCommitsNothing(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)
	svc.keys = failingKeyring{}

	_, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, nil)
	assert.ErrorIs(t, err, common.ErrEncryptionFailed)

	lists, err := svc.Query(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, lists.Owned)
	assert.Zero(t, countChunks(t, st, 0))
}

func TestThreeChunkUploadScenario(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "big.bin", []byte("aaa"), "application/octet-stream", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPartiallyUploaded, getFile(t, st, id).Status())

	require.NoError(t, svc.UploadContinue(ctx, alice, id, 1, []byte("bbb")))
	assert.Equal(t, models.StatusPartiallyUploaded, getFile(t, st, id).Status())

	// Duplicate chunk is rejected without disturbing the state.
	err = svc.UploadContinue(ctx, alice, id, 1, []byte("bbb"))
	assert.ErrorIs(t, err, common.ErrChunkExists)
	assert.Equal(t, models.StatusPartiallyUploaded, getFile(t, st, id).Status())
	assert.Equal(t, uint64(2), countChunks(t, st, id))

	require.NoError(t, svc.UploadContinue(ctx, alice, id, 2, []byte("ccc")))

	file := getFile(t, st, id)
	assert.Equal(t, models.StatusUploaded, file.Status())
	require.NotNil(t, file.Metadata.UploadedAt)
	assert.Equal(t, uint64(3), countChunks(t, st, id))

	for chunk, want := range map[uint64]string{0: "aaa", 1: "bbb", 2: "ccc"} {
		got, err := svc.Download(ctx, alice, id, chunk)
		require.NoError(t, err)
		assert.Equal(t, []byte(want), got.Contents)
	}
}

func TestUploadContinueErrorLadder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "big.bin", []byte("aaa"), "", 3, nil)
	require.NoError(t, err)

	done, err := svc.UploadAtomic(ctx, alice, "small.bin", []byte("zzz"), "", 1, nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		caller  models.Principal
		fileID  uint64
		chunkID uint64
		want    error
	}{
		{"anonymous", models.Anonymous, id, 1, common.ErrNotAuthenticated},
		{"unknown file", alice, 99, 1, common.ErrFileNotFound},
		{"not the requester", bob, id, 1, common.ErrNotAuthenticated},
		{"already uploaded", alice, done, 0, common.ErrUnexpectedState},
		{"chunk out of range", alice, id, 3, common.ErrChunkOutOfRange},
		{"chunk exists", alice, id, 0, common.ErrChunkExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UploadContinue(ctx, tt.caller, tt.fileID, tt.chunkID, []byte("x"))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDownloadErrorLadder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	pending, err := svc.Register(ctx, alice, RegisterRequest{FileName: "p"})
	require.NoError(t, err)
	partial, err := svc.UploadAtomic(ctx, alice, "partial", []byte("a"), "", 2, nil)
	require.NoError(t, err)
	uploaded, err := svc.UploadAtomic(ctx, alice, "done", []byte("a"), "", 1, nil)
	require.NoError(t, err)

	_, err = svc.Download(ctx, models.Anonymous, uploaded, 0)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = svc.Download(ctx, alice, 99, 0)
	assert.ErrorIs(t, err, common.ErrFileNotFound)

	_, err = svc.Download(ctx, bob, uploaded, 0)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	_, err = svc.Download(ctx, alice, pending, 0)
	assert.ErrorIs(t, err, common.ErrFileNotUploaded)

	_, err = svc.Download(ctx, alice, partial, 0)
	assert.ErrorIs(t, err, common.ErrFileNotUploaded)

	_, err = svc.Download(ctx, alice, uploaded, 5)
	assert.ErrorIs(t, err, common.ErrFileNotFound)
}

func TestShareAndCrossPrincipalDownload(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "shared.txt", []byte("secret"), "text/plain", 1, nil)
	require.NoError(t, err)

	_, err = svc.Download(ctx, bob, id, 0)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	require.NoError(t, svc.Share(ctx, alice, id, bob))

	got, err := svc.Download(ctx, bob, id, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got.Contents)

	lists, err := svc.Query(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []uint64{id}, lists.Shared)

	// Carol was never granted anything.
	_, err = svc.Download(ctx, carol, id, 0)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)
}

func TestShareIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Share(ctx, alice, id, bob))
	require.NoError(t, svc.Share(ctx, alice, id, bob))

	lists, err := svc.Query(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []uint64{id}, lists.Shared)
}

func TestShareErrorLadder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, nil)
	require.NoError(t, err)
	pending, err := svc.Register(ctx, alice, RegisterRequest{FileName: "p"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Share(ctx, models.Anonymous, id, bob), common.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Share(ctx, bob, id, carol), common.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Share(ctx, alice, id, models.Anonymous), common.ErrUserNotFound)
	assert.ErrorIs(t, svc.Share(ctx, alice, id, alice), common.ErrInvalidInput)
	assert.ErrorIs(t, svc.Share(ctx, alice, 99, bob), common.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Share(ctx, alice, pending, bob), common.ErrFilePending)
}

func TestUnshareRevokesAccess(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, []models.Principal{bob})
	require.NoError(t, err)

	_, err = svc.Download(ctx, bob, id, 0)
	require.NoError(t, err)

	require.NoError(t, svc.Unshare(ctx, alice, id, bob))

	_, err = svc.Download(ctx, bob, id, 0)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	lists, err := svc.Query(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, lists.Shared)

	// Revoking an absent grant is a no-op success.
	require.NoError(t, svc.Unshare(ctx, alice, id, bob))
	require.NoError(t, svc.Unshare(ctx, alice, id, carol))
}

func TestUploadAtomicInitialSharedSet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1,
		[]models.Principal{bob, bob, alice, models.Anonymous, carol})
	require.NoError(t, err)

	for _, p := range []models.Principal{bob, carol} {
		lists, err := svc.Query(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, []uint64{id}, lists.Shared)
	}

	lists, err := svc.Query(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, lists.Shared, "the owner is never a share target")
}

func TestListOwnedFiles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	a, err := svc.Register(ctx, alice, RegisterRequest{FileName: "first"})
	require.NoError(t, err)
	b, err := svc.UploadAtomic(ctx, alice, "second", []byte("y"), "", 2, nil)
	require.NoError(t, err)
	c, err := svc.UploadAtomic(ctx, alice, "third", []byte("y"), "", 1, nil)
	require.NoError(t, err)
	_, err = svc.UploadAtomic(ctx, bob, "not mine", []byte("y"), "", 1, nil)
	require.NoError(t, err)

	got, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []models.FileSummary{
		{FileID: a, FileName: "first", Status: models.StatusPending},
		{FileID: b, FileName: "second", Status: models.StatusPartiallyUploaded},
		{FileID: c, FileName: "third", Status: models.StatusUploaded},
	}, got)

	empty, err := svc.List(ctx, carol)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSharedWithMe(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, []models.Principal{bob})
	require.NoError(t, err)

	got, err := svc.SharedWithMe(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []models.FileSummary{
		{FileID: id, FileName: "x", Status: models.StatusUploaded},
	}, got)
}

func TestDeleteRemovesEverything(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("aaa"), "", 2, []models.Principal{bob})
	require.NoError(t, err)
	require.NoError(t, svc.UploadContinue(ctx, alice, id, 1, []byte("bbb")))

	require.NoError(t, svc.Delete(ctx, alice, id))

	err = st.View(ctx, func(ctx context.Context, tx store.Tx) error {
		_, err := tx.Files().Get(ctx, id)
		assert.ErrorIs(t, err, common.ErrFileNotFound)
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, countChunks(t, st, id))

	lists, err := svc.Query(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, lists.Owned)

	lists, err = svc.Query(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, lists.Shared, "delete drops share-index entries")

	// Second delete: the owned list exists but no longer holds the id.
	assert.ErrorIs(t, svc.Delete(ctx, alice, id), common.ErrFileNotFound)
}

func TestDeleteErrorLadder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, models.Anonymous, id), common.ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Delete(ctx, carol, id), common.ErrPermissionDenied,
		"a principal that never owned anything")
	assert.ErrorIs(t, svc.Delete(ctx, bob, id), common.ErrPermissionDenied)
}

func TestDeletedIDIsNeverReused(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, alice, first))

	second, err := svc.UploadAtomic(ctx, alice, "x", []byte("y"), "", 1, nil)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestBlobURLs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.blobs = fakeSigner{}

	s3file, err := svc.Register(ctx, alice, RegisterRequest{FileName: "x", StorageProvider: ProviderS3, BlobRef: "obj-1"})
	require.NoError(t, err)
	local, err := svc.Register(ctx, alice, RegisterRequest{FileName: "y"})
	require.NoError(t, err)

	url, err := svc.UploadURL(ctx, alice, s3file)
	require.NoError(t, err)
	assert.Equal(t, "put://obj-1", url)

	url, err = svc.DownloadURL(ctx, alice, s3file)
	require.NoError(t, err)
	assert.Equal(t, "get://obj-1", url)

	_, err = svc.UploadURL(ctx, bob, s3file)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)

	_, err = svc.UploadURL(ctx, alice, local)
	assert.ErrorIs(t, err, common.ErrUnsupportedProvider)

	_, err = svc.UploadURL(ctx, models.Anonymous, s3file)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	svc.blobs = nil
	_, err = svc.UploadURL(ctx, alice, s3file)
	assert.ErrorIs(t, err, common.ErrUnsupportedProvider)
}

type failingKeyring struct{}

func (failingKeyring) Seal(ctx context.Context, plaintext []byte, fileID uint64, owner models.Principal, sharedWith []models.Principal, fileType string) (*models.Envelope, error) {
	return nil, common.ErrEncryptionFailed
}

func (failingKeyring) Unseal(ctx context.Context, env *models.Envelope, requester models.Principal) ([]byte, error) {
	return nil, common.ErrDecryptionFailed
}

func (failingKeyring) Grant(env *models.Envelope, owner models.Principal, targets ...models.Principal) error {
	return common.ErrEncryptionFailed
}

func (failingKeyring) Revoke(env *models.Envelope, owner models.Principal, target models.Principal) error {
	return common.ErrEncryptionFailed
}

type fakeSigner struct{}

func (fakeSigner) PresignUpload(ctx context.Context, key string) (string, error) {
	return "put://" + key, nil
}

func (fakeSigner) PresignDownload(ctx context.Context, key string) (string, error) {
	return "get://" + key, nil
}
