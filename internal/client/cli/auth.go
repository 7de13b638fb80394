package cli

import (
	"context"
	"log"
	"os"
)

// Login obtains an access token for the entered principal. Every later
// call carries the token; before login the client acts anonymously.
func (a *App) Login(ctx context.Context) error {

	principal, err := GetSimpleText(a.reader, "Enter principal name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.client.Login(ctx, principal); err != nil {
		log.Printf("login error: %s", err.Error())
		return err
	}

	a.principal = principal
	printlnFn("Logged in as", principal)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}
	printlnFn("Server is up")
	return nil
}
