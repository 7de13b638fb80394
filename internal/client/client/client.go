package client

import (
	"context"

	"github.com/vkarpovs/filevault/internal/client/models"
)

type Client interface {
	Close() error
	Login(ctx context.Context, principal string) error
	Ping(ctx context.Context) error
	Register(ctx context.Context, fileName string, provider string, blobRef string) (uint64, error)
	Upload(ctx context.Context, fileName string, content []byte, fileType string, sharedWith []string) (uint64, error)
	Download(ctx context.Context, fileID uint64) ([]byte, string, error)
	Share(ctx context.Context, fileID uint64, target string) error
	Unshare(ctx context.Context, fileID uint64, target string) error
	List(ctx context.Context) ([]models.FileInfo, error)
	SharedWithMe(ctx context.Context) ([]models.FileInfo, error)
	Delete(ctx context.Context, fileID uint64) error
	UploadURL(ctx context.Context, fileID uint64) (string, error)
	DownloadURL(ctx context.Context, fileID uint64) (string, error)
}
