package grpc

import (
	"context"

	"github.com/vkarpovs/filevault/internal/common"
	pb "github.com/vkarpovs/filevault/internal/proto"
	"github.com/vkarpovs/filevault/internal/server/auth"
	"github.com/vkarpovs/filevault/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const principalKey ctxKey = "principal"

// accessTokenInterceptor resolves the caller principal from the access
// token and stores it in the context. A request without a token proceeds
// as the anonymous principal; the core decides which operations allow
// that. A present-but-invalid token is rejected outright.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	switch info.FullMethod {
	case pb.FileVaultService_Authenticate_FullMethodName, pb.FileVaultService_Ping_FullMethodName:
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}

	principal := models.Anonymous
	if len(accessToken) > 0 {
		p, err := auth.GetPrincipalFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		principal = p
	}

	ctx = context.WithValue(ctx, principalKey, principal)

	return handler(ctx, req)
}

// principalFromContext returns the principal the interceptor resolved,
// or the anonymous principal when the interceptor did not run.
func principalFromContext(ctx context.Context) models.Principal {
	if p, ok := ctx.Value(principalKey).(models.Principal); ok {
		return p
	}
	return models.Anonymous
}
