package grpc

import (
	"context"
	"errors"

	"github.com/vkarpovs/filevault/internal/common"
	pb "github.com/vkarpovs/filevault/internal/proto"
	"github.com/vkarpovs/filevault/internal/server/auth"
	"github.com/vkarpovs/filevault/internal/server/models"
	"github.com/vkarpovs/filevault/internal/server/vault"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps the core's sentinel errors to gRPC status codes.
// Anything unmapped surfaces as Internal with a generic message so
// internals never leak to clients.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrFileNotFound), errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrFilePending),
		errors.Is(err, common.ErrFileNotUploaded),
		errors.Is(err, common.ErrUnexpectedState),
		errors.Is(err, common.ErrChunkExists),
		errors.Is(err, common.ErrChunkOutOfRange),
		errors.Is(err, common.ErrUnsupportedProvider):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	if req.Principal == "" {
		return nil, status.Error(codes.InvalidArgument, "empty principal")
	}

	token, err := auth.GenerateToken(models.Principal(req.Principal), s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AuthenticateResponse{AccessToken: token}, nil
}

func (s *GRPCServer) RegisterFile(ctx context.Context, req *pb.RegisterFileRequest) (*pb.RegisterFileResponse, error) {

	r := vault.RegisterRequest{
		FileName:        req.FileName,
		StorageProvider: req.StorageProvider,
		BlobRef:         req.BlobRef,
	}
	if req.UploadedAt != 0 {
		at := req.UploadedAt
		r.UploadedAt = &at
	}

	fileID, err := s.vault.Register(ctx, principalFromContext(ctx), r)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.RegisterFileResponse{FileId: fileID}, nil
}

func (s *GRPCServer) UploadFileAtomic(ctx context.Context, req *pb.UploadFileAtomicRequest) (*pb.UploadFileAtomicResponse, error) {

	sharedWith := make([]models.Principal, 0, len(req.SharedWith))
	for _, p := range req.SharedWith {
		sharedWith = append(sharedWith, models.Principal(p))
	}

	fileID, err := s.vault.UploadAtomic(ctx, principalFromContext(ctx),
		req.FileName, req.Content, req.FileType, req.NumChunks, sharedWith)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UploadFileAtomicResponse{FileId: fileID}, nil
}

func (s *GRPCServer) UploadFileContinue(ctx context.Context, req *pb.UploadFileContinueRequest) (*pb.UploadFileContinueResponse, error) {

	err := s.vault.UploadContinue(ctx, principalFromContext(ctx), req.FileId, req.ChunkId, req.Contents)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UploadFileContinueResponse{}, nil
}

func (s *GRPCServer) DownloadFile(ctx context.Context, req *pb.DownloadFileRequest) (*pb.DownloadFileResponse, error) {

	result, err := s.vault.Download(ctx, principalFromContext(ctx), req.FileId, req.ChunkId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.DownloadFileResponse{
		Contents:  result.Contents,
		FileType:  result.FileType,
		NumChunks: result.NumChunks,
	}, nil
}

func (s *GRPCServer) ShareFile(ctx context.Context, req *pb.ShareFileRequest) (*pb.ShareFileResponse, error) {

	err := s.vault.Share(ctx, principalFromContext(ctx), req.FileId, models.Principal(req.TargetPrincipal))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ShareFileResponse{}, nil
}

func (s *GRPCServer) UnshareFile(ctx context.Context, req *pb.UnshareFileRequest) (*pb.UnshareFileResponse, error) {

	err := s.vault.Unshare(ctx, principalFromContext(ctx), req.FileId, models.Principal(req.TargetPrincipal))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.UnshareFileResponse{}, nil
}

func (s *GRPCServer) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {

	files, err := s.vault.List(ctx, principalFromContext(ctx))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ListFilesResponse{Files: summaries(files)}, nil
}

func (s *GRPCServer) GetSharedFiles(ctx context.Context, req *pb.GetSharedFilesRequest) (*pb.GetSharedFilesResponse, error) {

	files, err := s.vault.SharedWithMe(ctx, principalFromContext(ctx))
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetSharedFilesResponse{Files: summaries(files)}, nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *pb.DeleteFileRequest) (*pb.DeleteFileResponse, error) {

	err := s.vault.Delete(ctx, principalFromContext(ctx), req.FileId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.DeleteFileResponse{}, nil
}

func (s *GRPCServer) GetUploadURL(ctx context.Context, req *pb.GetUploadURLRequest) (*pb.GetUploadURLResponse, error) {

	url, err := s.vault.UploadURL(ctx, principalFromContext(ctx), req.FileId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetUploadURLResponse{Url: url}, nil
}

func (s *GRPCServer) GetDownloadURL(ctx context.Context, req *pb.GetDownloadURLRequest) (*pb.GetDownloadURLResponse, error) {

	url, err := s.vault.DownloadURL(ctx, principalFromContext(ctx), req.FileId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetDownloadURLResponse{Url: url}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}

func summaries(files []models.FileSummary) []*pb.FileSummary {
	out := make([]*pb.FileSummary, 0, len(files))
	for _, f := range files {
		out = append(out, &pb.FileSummary{
			FileId:   f.FileID,
			FileName: f.FileName,
			Status:   f.Status,
		})
	}
	return out
}
