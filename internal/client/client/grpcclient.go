package client

import (
	"context"
	"fmt"

	"github.com/vkarpovs/filevault/internal/client/models"
	"github.com/vkarpovs/filevault/internal/common"
	pb "github.com/vkarpovs/filevault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// defaultChunkSize is how the atomic upload call splits content that does
// not fit a single request.
const defaultChunkSize = 1 << 20

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FileVaultServiceClient
	accessToken string
	chunkSize   int
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the session token to every outgoing
// call. Before Login the token is empty and requests go out anonymous;
// the server decides which operations allow that.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewFileVaultClientService(endpointURL string, chunkSize int) (*GRPCClient, error) {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	c := &GRPCClient{endpointURL: endpointURL, chunkSize: chunkSize}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFileVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, principal string) error {

	resp, err := s.client.Authenticate(ctx, &pb.AuthenticateRequest{Principal: principal})
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken

	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, fileName string, provider string, blobRef string) (uint64, error) {

	req := &pb.RegisterFileRequest{FileName: fileName, StorageProvider: provider, BlobRef: blobRef}

	resp, err := s.client.RegisterFile(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}

	return resp.FileId, nil
}

// Upload sends content in chunkSize pieces: the first piece goes with the
// metadata in one atomic call, the rest follow one request per chunk.
func (s *GRPCClient) Upload(ctx context.Context, fileName string, content []byte, fileType string, sharedWith []string) (uint64, error) {

	numChunks := uint64(1)
	if len(content) > s.chunkSize {
		numChunks = uint64((len(content) + s.chunkSize - 1) / s.chunkSize)
	}

	first := content
	if len(content) > s.chunkSize {
		first = content[:s.chunkSize]
	}

	resp, err := s.client.UploadFileAtomic(ctx, &pb.UploadFileAtomicRequest{
		FileName:   fileName,
		Content:    first,
		FileType:   fileType,
		NumChunks:  numChunks,
		SharedWith: sharedWith,
	})
	if err != nil {
		return 0, s.mapError(err)
	}

	for i := uint64(1); i < numChunks; i++ {
		start := int(i) * s.chunkSize
		end := start + s.chunkSize
		if end > len(content) {
			end = len(content)
		}
		_, err := s.client.UploadFileContinue(ctx, &pb.UploadFileContinueRequest{
			FileId:   resp.FileId,
			ChunkId:  i,
			Contents: content[start:end],
		})
		if err != nil {
			return resp.FileId, s.mapError(err)
		}
	}

	return resp.FileId, nil
}

// Download fetches every chunk of the file and returns the reassembled
// content along with its declared type.
func (s *GRPCClient) Download(ctx context.Context, fileID uint64) ([]byte, string, error) {

	resp, err := s.client.DownloadFile(ctx, &pb.DownloadFileRequest{FileId: fileID, ChunkId: 0})
	if err != nil {
		return nil, "", s.mapError(err)
	}

	content := resp.Contents
	for i := uint64(1); i < resp.NumChunks; i++ {
		next, err := s.client.DownloadFile(ctx, &pb.DownloadFileRequest{FileId: fileID, ChunkId: i})
		if err != nil {
			return nil, "", s.mapError(err)
		}
		content = append(content, next.Contents...)
	}

	return content, resp.FileType, nil
}

func (s *GRPCClient) Share(ctx context.Context, fileID uint64, target string) error {

	_, err := s.client.ShareFile(ctx, &pb.ShareFileRequest{FileId: fileID, TargetPrincipal: target})
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Unshare(ctx context.Context, fileID uint64, target string) error {

	_, err := s.client.UnshareFile(ctx, &pb.UnshareFileRequest{FileId: fileID, TargetPrincipal: target})
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) List(ctx context.Context) ([]models.FileInfo, error) {

	resp, err := s.client.ListFiles(ctx, &pb.ListFilesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return fileInfos(resp.Files), nil
}

func (s *GRPCClient) SharedWithMe(ctx context.Context) ([]models.FileInfo, error) {

	resp, err := s.client.GetSharedFiles(ctx, &pb.GetSharedFilesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return fileInfos(resp.Files), nil
}

func (s *GRPCClient) Delete(ctx context.Context, fileID uint64) error {

	_, err := s.client.DeleteFile(ctx, &pb.DeleteFileRequest{FileId: fileID})
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) UploadURL(ctx context.Context, fileID uint64) (string, error) {

	resp, err := s.client.GetUploadURL(ctx, &pb.GetUploadURLRequest{FileId: fileID})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Url, nil
}

func (s *GRPCClient) DownloadURL(ctx context.Context, fileID uint64) (string, error) {

	resp, err := s.client.GetDownloadURL(ctx, &pb.GetDownloadURLRequest{FileId: fileID})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Url, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func fileInfos(files []*pb.FileSummary) []models.FileInfo {
	result := make([]models.FileInfo, 0, len(files))
	for _, f := range files {
		result = append(result, models.FileInfo{ID: f.FileId, Name: f.FileName, Status: f.Status})
	}
	return result
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return ErrNotFound
	case codes.FailedPrecondition, codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
