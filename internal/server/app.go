// Package server initializes and runs the FileVault server application.
// It selects the storage backend and key-derivation gateway from
// configuration, runs migrations, handles graceful shutdown, and starts
// the gRPC endpoint.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/vkarpovs/filevault/internal/logging"
	"github.com/vkarpovs/filevault/internal/server/blob"
	"github.com/vkarpovs/filevault/internal/server/config"
	"github.com/vkarpovs/filevault/internal/server/keyring"
	"github.com/vkarpovs/filevault/internal/server/store"
	"github.com/vkarpovs/filevault/internal/server/vault"

	gs "github.com/vkarpovs/filevault/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  store.Store
	vault  *vault.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	var st store.Store
	if c.DatabaseDSN != "" {
		pg, err := store.NewPostgresStore(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := pg.RunMigrations(ctx); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
		st = pg
	} else {
		logger.Warn(ctx, "No database DSN configured, using in-memory store")
		st = store.NewMemoryStore()
	}

	var gateway keyring.Gateway
	if c.GatewayEndpoint != "" {
		gateway = keyring.NewHTTPGateway(c.GatewayEndpoint)
	} else {
		logger.Warn(ctx, "No gateway endpoint configured, using local key derivation")
		gateway = keyring.NewLocalGateway([]byte(c.GatewayMasterSecret))
	}

	var blobs vault.BlobSigner
	if c.S3Bucket != "" {
		blobs = blob.NewS3Signer(blob.Config{
			Region:       c.S3Region,
			Bucket:       c.S3Bucket,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
	}

	v := vault.NewService(st, keyring.NewManager(gateway), blobs, logger)

	return &App{config: c, logger: logger, store: st, vault: v}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.vault,
		app.config.SecretKey, app.config.AccessTokenValidityDuration)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
