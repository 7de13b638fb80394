package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkarpovs/filevault/internal/common"
	pb "github.com/vkarpovs/filevault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastAuthenticateReq *pb.AuthenticateRequest
	lastRegisterReq     *pb.RegisterFileRequest
	atomicReqs          []*pb.UploadFileAtomicRequest
	continueReqs        []*pb.UploadFileContinueRequest
	downloadReqs        []*pb.DownloadFileRequest
	lastShareReq        *pb.ShareFileRequest
	lastUnshareReq      *pb.UnshareFileRequest
	lastDeleteReq       *pb.DeleteFileRequest
	lastUploadURLReq    *pb.GetUploadURLRequest
	lastDownloadURLReq  *pb.GetDownloadURLRequest

	// outputs preset
	authenticateResp *pb.AuthenticateResponse
	authenticateErr  error

	registerResp *pb.RegisterFileResponse
	registerErr  error

	atomicResp *pb.UploadFileAtomicResponse
	atomicErr  error

	continueErr error

	downloadResps []*pb.DownloadFileResponse
	downloadErr   error

	shareErr   error
	unshareErr error

	listResp *pb.ListFilesResponse
	listErr  error

	sharedResp *pb.GetSharedFilesResponse
	sharedErr  error

	deleteErr error

	uploadURLResp *pb.GetUploadURLResponse
	uploadURLErr  error

	downloadURLResp *pb.GetDownloadURLResponse
	downloadURLErr  error

	pingResp *pb.PingResponse
	pingErr  error
}

func (f *fakePB) Authenticate(ctx context.Context, in *pb.AuthenticateRequest, opts ...grpc.CallOption) (*pb.AuthenticateResponse, error) {
	f.lastAuthenticateReq = in
	return f.authenticateResp, f.authenticateErr
}
func (f *fakePB) RegisterFile(ctx context.Context, in *pb.RegisterFileRequest, opts ...grpc.CallOption) (*pb.RegisterFileResponse, error) {
	f.lastRegisterReq = in
	return f.registerResp, f.registerErr
}
func (f *fakePB) UploadFileAtomic(ctx context.Context, in *pb.UploadFileAtomicRequest, opts ...grpc.CallOption) (*pb.UploadFileAtomicResponse, error) {
	f.atomicReqs = append(f.atomicReqs, in)
	return f.atomicResp, f.atomicErr
}
func (f *fakePB) UploadFileContinue(ctx context.Context, in *pb.UploadFileContinueRequest, opts ...grpc.CallOption) (*pb.UploadFileContinueResponse, error) {
	f.continueReqs = append(f.continueReqs, in)
	return &pb.UploadFileContinueResponse{}, f.continueErr
}
func (f *fakePB) DownloadFile(ctx context.Context, in *pb.DownloadFileRequest, opts ...grpc.CallOption) (*pb.DownloadFileResponse, error) {
	f.downloadReqs = append(f.downloadReqs, in)
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	resp := f.downloadResps[len(f.downloadReqs)-1]
	return resp, nil
}
func (f *fakePB) ShareFile(ctx context.Context, in *pb.ShareFileRequest, opts ...grpc.CallOption) (*pb.ShareFileResponse, error) {
	f.lastShareReq = in
	return &pb.ShareFileResponse{}, f.shareErr
}
func (f *fakePB) UnshareFile(ctx context.Context, in *pb.UnshareFileRequest, opts ...grpc.CallOption) (*pb.UnshareFileResponse, error) {
	f.lastUnshareReq = in
	return &pb.UnshareFileResponse{}, f.unshareErr
}
func (f *fakePB) ListFiles(ctx context.Context, in *pb.ListFilesRequest, opts ...grpc.CallOption) (*pb.ListFilesResponse, error) {
	return f.listResp, f.listErr
}
func (f *fakePB) GetSharedFiles(ctx context.Context, in *pb.GetSharedFilesRequest, opts ...grpc.CallOption) (*pb.GetSharedFilesResponse, error) {
	return f.sharedResp, f.sharedErr
}
func (f *fakePB) DeleteFile(ctx context.Context, in *pb.DeleteFileRequest, opts ...grpc.CallOption) (*pb.DeleteFileResponse, error) {
	f.lastDeleteReq = in
	return &pb.DeleteFileResponse{}, f.deleteErr
}
func (f *fakePB) GetUploadURL(ctx context.Context, in *pb.GetUploadURLRequest, opts ...grpc.CallOption) (*pb.GetUploadURLResponse, error) {
	f.lastUploadURLReq = in
	return f.uploadURLResp, f.uploadURLErr
}
func (f *fakePB) GetDownloadURL(ctx context.Context, in *pb.GetDownloadURLRequest, opts ...grpc.CallOption) (*pb.GetDownloadURLResponse, error) {
	f.lastDownloadURLReq = in
	return f.downloadURLResp, f.downloadURLErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_AttachesToken(t *testing.T) {
	c := &GRPCClient{accessToken: "T1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)
		require.Equal(t, "T1", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
}

func TestInterceptor_NoTokenGoesAnonymous(t *testing.T) {
	c := &GRPCClient{}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			require.Empty(t, md.Get(common.AccessTokenHeaderName))
		}
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	require.Equal(t, ErrNotFound, c.mapError(status.Error(codes.NotFound, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.FailedPrecondition, "x")), ErrRejected)
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "x")), ErrRejected)
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
}

/*************
 * Login / Ping tests
 *************/

func TestLogin_SetsToken(t *testing.T) {
	f := &fakePB{authenticateResp: &pb.AuthenticateResponse{AccessToken: "A"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Login(context.Background(), "alice"))
	require.Equal(t, "A", c.accessToken)
	require.Equal(t, "alice", f.lastAuthenticateReq.Principal)
}

func TestPing_OK(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

/*************
 * Upload tests
 *************/

func TestUpload_SingleChunk(t *testing.T) {
	f := &fakePB{atomicResp: &pb.UploadFileAtomicResponse{FileId: 7}}
	c := &GRPCClient{client: f, chunkSize: 8}

	id, err := c.Upload(context.Background(), "a.txt", []byte("hello"), "text/plain", []string{"bob"})
	require.NoError(t, err)
	require.EqualValues(t, 7, id)

	require.Len(t, f.atomicReqs, 1)
	require.Empty(t, f.continueReqs)
	require.Equal(t, "a.txt", f.atomicReqs[0].FileName)
	require.Equal(t, []byte("hello"), f.atomicReqs[0].Content)
	require.EqualValues(t, 1, f.atomicReqs[0].NumChunks)
	require.Equal(t, []string{"bob"}, f.atomicReqs[0].SharedWith)
}

func TestUpload_SplitsIntoChunks(t *testing.T) {
	f := &fakePB{atomicResp: &pb.UploadFileAtomicResponse{FileId: 3}}
	c := &GRPCClient{client: f, chunkSize: 4}

	_, err := c.Upload(context.Background(), "big", []byte("abcdefghij"), "", nil)
	require.NoError(t, err)

	require.Len(t, f.atomicReqs, 1)
	require.Equal(t, []byte("abcd"), f.atomicReqs[0].Content)
	require.EqualValues(t, 3, f.atomicReqs[0].NumChunks)

	require.Len(t, f.continueReqs, 2)
	require.EqualValues(t, 1, f.continueReqs[0].ChunkId)
	require.Equal(t, []byte("efgh"), f.continueReqs[0].Contents)
	require.EqualValues(t, 2, f.continueReqs[1].ChunkId)
	require.Equal(t, []byte("ij"), f.continueReqs[1].Contents)
}

func TestUpload_MapsError(t *testing.T) {
	f := &fakePB{atomicErr: status.Error(codes.Unauthenticated, "x")}
	c := &GRPCClient{client: f, chunkSize: 4}
	_, err := c.Upload(context.Background(), "a", []byte("b"), "", nil)
	require.ErrorIs(t, err, ErrUnauthorized)
}

/*************
 * Download tests
 *************/

func TestDownload_ReassemblesChunks(t *testing.T) {
	f := &fakePB{
		downloadResps: []*pb.DownloadFileResponse{
			{Contents: []byte("abcd"), FileType: "text/plain", NumChunks: 3},
			{Contents: []byte("efgh"), FileType: "text/plain", NumChunks: 3},
			{Contents: []byte("ij"), FileType: "text/plain", NumChunks: 3},
		},
	}
	c := &GRPCClient{client: f}

	content, fileType, err := c.Download(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, []byte("abcdefghij"), content)
	require.Equal(t, "text/plain", fileType)

	require.Len(t, f.downloadReqs, 3)
	require.EqualValues(t, 3, f.downloadReqs[1].FileId)
	require.EqualValues(t, 1, f.downloadReqs[1].ChunkId)
}

func TestDownload_MapsError(t *testing.T) {
	f := &fakePB{downloadErr: status.Error(codes.NotFound, "x")}
	c := &GRPCClient{client: f}
	_, _, err := c.Download(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}

/*************
 * Share / list / delete / URL tests
 *************/

func TestShareUnshare(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	require.NoError(t, c.Share(context.Background(), 5, "bob"))
	require.EqualValues(t, 5, f.lastShareReq.FileId)
	require.Equal(t, "bob", f.lastShareReq.TargetPrincipal)

	require.NoError(t, c.Unshare(context.Background(), 5, "bob"))
	require.EqualValues(t, 5, f.lastUnshareReq.FileId)
}

func TestList_MapsSummaries(t *testing.T) {
	f := &fakePB{listResp: &pb.ListFilesResponse{Files: []*pb.FileSummary{
		{FileId: 1, FileName: "a", Status: "Uploaded"},
		{FileId: 2, FileName: "b", Status: "Pending"},
	}}}
	c := &GRPCClient{client: f}

	files, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.EqualValues(t, 1, files[0].ID)
	require.Equal(t, "a", files[0].Name)
	require.Equal(t, "Pending", files[1].Status)
}

func TestSharedWithMe_MapsError(t *testing.T) {
	f := &fakePB{sharedErr: status.Error(codes.Unavailable, "x")}
	c := &GRPCClient{client: f}
	_, err := c.SharedWithMe(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDelete_MapsError(t *testing.T) {
	f := &fakePB{deleteErr: status.Error(codes.NotFound, "x")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Delete(context.Background(), 9), ErrNotFound)
	require.EqualValues(t, 9, f.lastDeleteReq.FileId)
}

func TestUploadURL_Success(t *testing.T) {
	f := &fakePB{uploadURLResp: &pb.GetUploadURLResponse{Url: "https://up"}}
	c := &GRPCClient{client: f}
	url, err := c.UploadURL(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "https://up", url)
	require.EqualValues(t, 4, f.lastUploadURLReq.FileId)
}

func TestDownloadURL_MapsError(t *testing.T) {
	f := &fakePB{downloadURLErr: status.Error(codes.FailedPrecondition, "not s3")}
	c := &GRPCClient{client: f}
	_, err := c.DownloadURL(context.Background(), 4)
	require.ErrorIs(t, err, ErrRejected)
}
