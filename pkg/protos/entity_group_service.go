package protos

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const EntityGroupServiceName = "egkv.EntityGroupService"

// EntityGroupServiceServer is the data plane of an entity-group server.
type EntityGroupServiceServer interface {
	Get(context.Context, *GetRequest) (*GetReply, error)
	Put(context.Context, *PutRequest) (*PutReply, error)
	Delete(context.Context, *DeleteRequest) (*DeleteReply, error)
	OpenScan(context.Context, *OpenScanRequest) (*OpenScanReply, error)
	Next(context.Context, *NextRequest) (*NextReply, error)
	CloseScan(context.Context, *CloseScanRequest) (*CloseScanReply, error)
}

type UnimplementedEntityGroupServiceServer struct{}

func (UnimplementedEntityGroupServiceServer) Get(context.Context, *GetRequest) (*GetReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedEntityGroupServiceServer) Put(context.Context, *PutRequest) (*PutReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Put not implemented")
}
func (UnimplementedEntityGroupServiceServer) Delete(context.Context, *DeleteRequest) (*DeleteReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedEntityGroupServiceServer) OpenScan(context.Context, *OpenScanRequest) (*OpenScanReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenScan not implemented")
}
func (UnimplementedEntityGroupServiceServer) Next(context.Context, *NextRequest) (*NextReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Next not implemented")
}
func (UnimplementedEntityGroupServiceServer) CloseScan(context.Context, *CloseScanRequest) (*CloseScanReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseScan not implemented")
}

var EntityGroupService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: EntityGroupServiceName,
	HandlerType: (*EntityGroupServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(EntityGroupServiceName, "Get", EntityGroupServiceServer.Get),
		unaryMethod(EntityGroupServiceName, "Put", EntityGroupServiceServer.Put),
		unaryMethod(EntityGroupServiceName, "Delete", EntityGroupServiceServer.Delete),
		unaryMethod(EntityGroupServiceName, "OpenScan", EntityGroupServiceServer.OpenScan),
		unaryMethod(EntityGroupServiceName, "Next", EntityGroupServiceServer.Next),
		unaryMethod(EntityGroupServiceName, "CloseScan", EntityGroupServiceServer.CloseScan),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "egkv/entity_group.proto",
}

func RegisterEntityGroupServiceServer(s grpc.ServiceRegistrar, srv EntityGroupServiceServer) {
	s.RegisterService(&EntityGroupService_ServiceDesc, srv)
}

type EntityGroupServiceClient interface {
	Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetReply, error)
	Put(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*PutReply, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteReply, error)
	OpenScan(ctx context.Context, in *OpenScanRequest, opts ...grpc.CallOption) (*OpenScanReply, error)
	Next(ctx context.Context, in *NextRequest, opts ...grpc.CallOption) (*NextReply, error)
	CloseScan(ctx context.Context, in *CloseScanRequest, opts ...grpc.CallOption) (*CloseScanReply, error)
}

type entityGroupServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEntityGroupServiceClient(cc grpc.ClientConnInterface) EntityGroupServiceClient {
	return &entityGroupServiceClient{cc}
}

func (c *entityGroupServiceClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetReply, error) {
	return invoke[GetRequest, GetReply](ctx, c.cc, EntityGroupServiceName, "Get", in, opts...)
}

func (c *entityGroupServiceClient) Put(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*PutReply, error) {
	return invoke[PutRequest, PutReply](ctx, c.cc, EntityGroupServiceName, "Put", in, opts...)
}

func (c *entityGroupServiceClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*DeleteReply, error) {
	return invoke[DeleteRequest, DeleteReply](ctx, c.cc, EntityGroupServiceName, "Delete", in, opts...)
}

func (c *entityGroupServiceClient) OpenScan(ctx context.Context, in *OpenScanRequest, opts ...grpc.CallOption) (*OpenScanReply, error) {
	return invoke[OpenScanRequest, OpenScanReply](ctx, c.cc, EntityGroupServiceName, "OpenScan", in, opts...)
}

func (c *entityGroupServiceClient) Next(ctx context.Context, in *NextRequest, opts ...grpc.CallOption) (*NextReply, error) {
	return invoke[NextRequest, NextReply](ctx, c.cc, EntityGroupServiceName, "Next", in, opts...)
}

func (c *entityGroupServiceClient) CloseScan(ctx context.Context, in *CloseScanRequest, opts ...grpc.CallOption) (*CloseScanReply, error) {
	return invoke[CloseScanRequest, CloseScanReply](ctx, c.cc, EntityGroupServiceName, "CloseScan", in, opts...)
}
