package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkarpovs/filevault/internal/common"
	pb "github.com/vkarpovs/filevault/internal/proto"
	"github.com/vkarpovs/filevault/internal/server/keyring"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/store"
	"github.com/vkarpovs/filevault/internal/server/vault"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newHandlerServer(t *testing.T) *GRPCServer {
	t.Helper()
	keys := keyring.NewManager(keyring.NewLocalGateway([]byte("handler test secret")))
	v := vault.NewService(store.NewMemoryStore(), keys, nil, nopLogger{})
	s, err := NewGRPCServer(":0", nopLogger{}, v, "secret", time.Hour)
	require.NoError(t, err)
	return s
}

func asPrincipal(p models.Principal) context.Context {
	return context.WithValue(context.Background(), principalKey, p)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrNotAuthenticated, codes.Unauthenticated},
		{common.ErrPermissionDenied, codes.PermissionDenied},
		{common.ErrFileNotFound, codes.NotFound},
		{common.ErrUserNotFound, codes.NotFound},
		{common.ErrFilePending, codes.FailedPrecondition},
		{common.ErrFileNotUploaded, codes.FailedPrecondition},
		{common.ErrUnexpectedState, codes.FailedPrecondition},
		{common.ErrChunkExists, codes.FailedPrecondition},
		{common.ErrChunkOutOfRange, codes.FailedPrecondition},
		{common.ErrUnsupportedProvider, codes.FailedPrecondition},
		{common.ErrInvalidInput, codes.InvalidArgument},
		{common.ErrDecryptionFailed, codes.Internal},
		{errors.New("anything else"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Code(statusFromError(tt.err)), "for %v", tt.err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newHandlerServer(t)

	resp, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{Principal: "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = s.Authenticate(context.Background(), &pb.AuthenticateRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	s := newHandlerServer(t)
	ctx := asPrincipal("alice")

	up, err := s.UploadFileAtomic(ctx, &pb.UploadFileAtomicRequest{
		FileName:  "notes.txt",
		Content:   []byte("hello"),
		FileType:  "text/plain",
		NumChunks: 1,
	})
	require.NoError(t, err)

	down, err := s.DownloadFile(ctx, &pb.DownloadFileRequest{FileId: up.FileId})
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), down.Contents)
	assert.Equal(t, "text/plain", down.FileType)
	assert.Equal(t, uint64(1), down.NumChunks)
}

func TestUploadFileAtomic_Anonymous(t *testing.T) {
	s := newHandlerServer(t)

	_, err := s.UploadFileAtomic(context.Background(), &pb.UploadFileAtomicRequest{
		FileName: "x", Content: []byte("y"), NumChunks: 1,
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestShareUnshareFlow(t *testing.T) {
	s := newHandlerServer(t)
	alice := asPrincipal("alice")
	bob := asPrincipal("bob")

	up, err := s.UploadFileAtomic(alice, &pb.UploadFileAtomicRequest{
		FileName: "x", Content: []byte("y"), NumChunks: 1,
	})
	require.NoError(t, err)

	_, err = s.DownloadFile(bob, &pb.DownloadFileRequest{FileId: up.FileId})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = s.ShareFile(alice, &pb.ShareFileRequest{FileId: up.FileId, TargetPrincipal: "bob"})
	require.NoError(t, err)

	down, err := s.DownloadFile(bob, &pb.DownloadFileRequest{FileId: up.FileId})
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), down.Contents)

	shared, err := s.GetSharedFiles(bob, &pb.GetSharedFilesRequest{})
	require.NoError(t, err)
	require.Len(t, shared.Files, 1)
	assert.Equal(t, up.FileId, shared.Files[0].FileId)

	_, err = s.UnshareFile(alice, &pb.UnshareFileRequest{FileId: up.FileId, TargetPrincipal: "bob"})
	require.NoError(t, err)

	_, err = s.DownloadFile(bob, &pb.DownloadFileRequest{FileId: up.FileId})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestRegisterListDeleteFlow(t *testing.T) {
	s := newHandlerServer(t)
	alice := asPrincipal("alice")

	reg, err := s.RegisterFile(alice, &pb.RegisterFileRequest{FileName: "report.pdf"})
	require.NoError(t, err)

	list, err := s.ListFiles(alice, &pb.ListFilesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Files, 1)
	assert.Equal(t, "report.pdf", list.Files[0].FileName)
	assert.Equal(t, models.StatusPending, list.Files[0].Status)

	_, err = s.DeleteFile(alice, &pb.DeleteFileRequest{FileId: reg.FileId})
	require.NoError(t, err)

	list, err = s.ListFiles(alice, &pb.ListFilesRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Files)

	_, err = s.DeleteFile(alice, &pb.DeleteFileRequest{FileId: reg.FileId})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUploadContinueChunkErrors(t *testing.T) {
	s := newHandlerServer(t)
	alice := asPrincipal("alice")

	up, err := s.UploadFileAtomic(alice, &pb.UploadFileAtomicRequest{
		FileName: "big", Content: []byte("a"), NumChunks: 3,
	})
	require.NoError(t, err)

	_, err = s.UploadFileContinue(alice, &pb.UploadFileContinueRequest{
		FileId: up.FileId, ChunkId: 0, Contents: []byte("dup"),
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = s.UploadFileContinue(alice, &pb.UploadFileContinueRequest{
		FileId: up.FileId, ChunkId: 7, Contents: []byte("x"),
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestPing(t *testing.T) {
	s := newHandlerServer(t)

	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}
