// Package cli implements the interactive FileVault client: a small REPL
// over the gRPC API with commands for uploading, downloading, sharing and
// offloading files to external object storage.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/vkarpovs/filevault/internal/client/client"
	"github.com/vkarpovs/filevault/internal/client/config"
)

type App struct {
	config    *config.Config
	client    client.Client
	principal string
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewFileVaultClientService(c.ServerEndpointAddr, c.ChunkSize)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.principal != ""
}

func (a *App) getStatus() string {
	if a.principal == "" {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s)", a.principal)
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("Welcome to FileVault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
