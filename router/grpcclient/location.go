package grpcclient

import (
	"context"

	"google.golang.org/grpc"

	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
)

// LocationClient resolves keys against the coordinator.
type LocationClient struct {
	client protos.LocationServiceClient
}

func NewLocationClient(cc grpc.ClientConnInterface) *LocationClient {
	return &LocationClient{
		client: protos.NewLocationServiceClient(cc),
	}
}

func (l *LocationClient) ResolveLocation(ctx context.Context, key []byte) (*eg.Location, error) {
	reply, err := l.client.ResolveLocation(ctx, &protos.ResolveLocationRequest{Key: key})
	if err != nil {
		return nil, egerror.FromGRPC(err)
	}
	if reply.Group == nil {
		return nil, egerror.Newf(egerror.EGKV_NO_ENTITY_GROUP, "no entity group covers key %q", key)
	}
	return eg.LocationFromProto(reply.Group), nil
}

// Service exposes the raw coordinator client for administrative calls.
func (l *LocationClient) Service() protos.LocationServiceClient {
	return l.client
}
