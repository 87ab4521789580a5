package discovery

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ServiceConnection resolves the filter against the registry and opens
// a gRPC client connection to the matched instance. Traffic inside the
// fleet is cleartext; the otelgrpc stats handler traces every call.
func ServiceConnection(ctx context.Context, filter Filter, registry Registry) (*grpc.ClientConn, error) {
	service, err := registry.Resolve(ctx, filter)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(
		service.Endpoint(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", service.Endpoint(), err)
	}

	return conn, nil
}
