package cli

import (
	"context"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vkarpovs/filevault/internal/common"
)

func (a *App) promptFileID(prompt string) (uint64, error) {
	s, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(s, 10, 64)
}

// Upload reads a local file and sends it to the vault, optionally sharing
// it with other principals in the same operation.
func (a *App) Upload(ctx context.Context) error {

	path, err := GetSimpleText(a.reader, "Enter path of the file to upload", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file: %v", err)
		return err
	}

	shareWith, err := GetSimpleText(a.reader, "Share with (comma-separated principals, empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	var sharedWith []string
	for _, p := range strings.Split(shareWith, ",") {
		if p = strings.TrimSpace(p); p != "" {
			sharedWith = append(sharedWith, p)
		}
	}

	fileType := mime.TypeByExtension(filepath.Ext(path))

	id, err := a.client.Upload(ctx, filepath.Base(path), content, fileType, sharedWith)
	if err != nil {
		log.Printf("upload error: %s", err.Error())
		return err
	}

	printlnFn("Uploaded, file id:", id)
	return nil
}

// PutSecret uploads a value typed without terminal echo, for storing
// credentials and similar material that should not land in scrollback.
func (a *App) PutSecret(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter a name for the secret", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	secret, err := GetSecret("Enter secret value", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(secret)

	id, err := a.client.Upload(ctx, name, secret, "application/octet-stream", nil)
	if err != nil {
		log.Printf("upload error: %s", err.Error())
		return err
	}

	printlnFn("Stored, file id:", id)
	return nil
}

func (a *App) Download(ctx context.Context) error {

	id, err := a.promptFileID("Enter file id to download")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := GetSimpleText(a.reader, "Save to (empty prints to stdout)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, fileType, err := a.client.Download(ctx, id)
	if err != nil {
		log.Printf("download error: %s", err.Error())
		return err
	}

	if path == "" {
		printlnFn(string(content))
		return nil
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		log.Printf("error writing file: %v", err)
		return err
	}

	printlnFn("Saved", len(content), "bytes of", fileType, "to", path)
	return nil
}

func (a *App) List(ctx context.Context) error {

	files, err := a.client.List(ctx)
	if err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}

	for _, f := range files {
		printlnFn(f)
	}
	return nil
}

func (a *App) Shared(ctx context.Context) error {

	files, err := a.client.SharedWithMe(ctx)
	if err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}

	for _, f := range files {
		printlnFn(f)
	}
	return nil
}

func (a *App) Delete(ctx context.Context) error {

	id, err := a.promptFileID("Enter file id to delete")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Delete(ctx, id); err != nil {
		log.Printf("delete error: %s", err.Error())
		return err
	}

	printlnFn("Deleted")
	return nil
}
