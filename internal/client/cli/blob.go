package cli

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/vkarpovs/filevault/internal/netx"
)

// Offload registers a file with the external storage provider and PUTs
// its content straight to object storage through a presigned URL. Only
// the metadata record goes through the vault.
func (a *App) Offload(ctx context.Context) error {

	path, err := GetSimpleText(a.reader, "Enter path of the file to offload", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file: %v", err)
		return err
	}

	id, err := a.client.Register(ctx, filepath.Base(path), "s3", "")
	if err != nil {
		log.Printf("register error: %s", err.Error())
		return err
	}

	url, err := a.client.UploadURL(ctx, id)
	if err != nil {
		log.Printf("error obtaining upload url: %s", err.Error())
		return err
	}

	if err := netx.UploadToPresignedURL(url, content); err != nil {
		log.Printf("upload error: %v", err)
		return err
	}

	printlnFn("Offloaded, file id:", id)
	return nil
}

// Fetch downloads content of an offloaded file from object storage via a
// presigned URL.
func (a *App) Fetch(ctx context.Context) error {

	id, err := a.promptFileID("Enter file id to fetch")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := GetSimpleText(a.reader, "Save to", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	url, err := a.client.DownloadURL(ctx, id)
	if err != nil {
		log.Printf("error obtaining download url: %s", err.Error())
		return err
	}

	content, err := netx.DownloadFromPresignedURL(url)
	if err != nil {
		log.Printf("download error: %v", err)
		return err
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		log.Printf("error writing file: %v", err)
		return err
	}

	printlnFn("Saved", len(content), "bytes to", path)
	return nil
}
