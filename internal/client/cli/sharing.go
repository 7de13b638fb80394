package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Share(ctx context.Context) error {

	id, err := a.promptFileID("Enter file id to share")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	target, err := GetSimpleText(a.reader, "Share with principal", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Share(ctx, id, target); err != nil {
		log.Printf("share error: %s", err.Error())
		return err
	}

	printlnFn("Shared with", target)
	return nil
}

func (a *App) Unshare(ctx context.Context) error {

	id, err := a.promptFileID("Enter file id to unshare")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	target, err := GetSimpleText(a.reader, "Revoke access from principal", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Unshare(ctx, id, target); err != nil {
		log.Printf("unshare error: %s", err.Error())
		return err
	}

	printlnFn("Access revoked from", target)
	return nil
}
