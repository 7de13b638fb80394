package grpc

import (
	"context"
	"net"
	"time"

	"github.com/vkarpovs/filevault/internal/logging"
	pb "github.com/vkarpovs/filevault/internal/proto"
	"github.com/vkarpovs/filevault/internal/server/vault"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedFileVaultServiceServer
	address       string
	vault         *vault.Service
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewGRPCServer(a string, l logging.Logger, v *vault.Service, secretKey string, tokenValidity time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		vault:         v,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterFileVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
