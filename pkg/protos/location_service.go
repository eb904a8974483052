package protos

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const LocationServiceName = "egkv.LocationService"

// LocationServiceServer is the coordinator API: the authoritative
// key -> entity group -> server mapping and its administration.
type LocationServiceServer interface {
	ResolveLocation(context.Context, *ResolveLocationRequest) (*ResolveLocationReply, error)
	ListEntityGroups(context.Context, *ListEntityGroupsRequest) (*ListEntityGroupsReply, error)
	RegisterServer(context.Context, *RegisterServerRequest) (*ModifyReply, error)
	ListServers(context.Context, *ListServersRequest) (*ListServersReply, error)
	CreateEntityGroup(context.Context, *CreateEntityGroupRequest) (*ModifyReply, error)
	SplitEntityGroup(context.Context, *SplitEntityGroupRequest) (*ModifyReply, error)
	UniteEntityGroups(context.Context, *UniteEntityGroupsRequest) (*ModifyReply, error)
	MoveEntityGroup(context.Context, *MoveEntityGroupRequest) (*ModifyReply, error)
}

type UnimplementedLocationServiceServer struct{}

func (UnimplementedLocationServiceServer) ResolveLocation(context.Context, *ResolveLocationRequest) (*ResolveLocationReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveLocation not implemented")
}
func (UnimplementedLocationServiceServer) ListEntityGroups(context.Context, *ListEntityGroupsRequest) (*ListEntityGroupsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEntityGroups not implemented")
}
func (UnimplementedLocationServiceServer) RegisterServer(context.Context, *RegisterServerRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterServer not implemented")
}
func (UnimplementedLocationServiceServer) ListServers(context.Context, *ListServersRequest) (*ListServersReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListServers not implemented")
}
func (UnimplementedLocationServiceServer) CreateEntityGroup(context.Context, *CreateEntityGroupRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateEntityGroup not implemented")
}
func (UnimplementedLocationServiceServer) SplitEntityGroup(context.Context, *SplitEntityGroupRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SplitEntityGroup not implemented")
}
func (UnimplementedLocationServiceServer) UniteEntityGroups(context.Context, *UniteEntityGroupsRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UniteEntityGroups not implemented")
}
func (UnimplementedLocationServiceServer) MoveEntityGroup(context.Context, *MoveEntityGroupRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MoveEntityGroup not implemented")
}

var LocationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: LocationServiceName,
	HandlerType: (*LocationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(LocationServiceName, "ResolveLocation", LocationServiceServer.ResolveLocation),
		unaryMethod(LocationServiceName, "ListEntityGroups", LocationServiceServer.ListEntityGroups),
		unaryMethod(LocationServiceName, "RegisterServer", LocationServiceServer.RegisterServer),
		unaryMethod(LocationServiceName, "ListServers", LocationServiceServer.ListServers),
		unaryMethod(LocationServiceName, "CreateEntityGroup", LocationServiceServer.CreateEntityGroup),
		unaryMethod(LocationServiceName, "SplitEntityGroup", LocationServiceServer.SplitEntityGroup),
		unaryMethod(LocationServiceName, "UniteEntityGroups", LocationServiceServer.UniteEntityGroups),
		unaryMethod(LocationServiceName, "MoveEntityGroup", LocationServiceServer.MoveEntityGroup),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "egkv/location.proto",
}

func RegisterLocationServiceServer(s grpc.ServiceRegistrar, srv LocationServiceServer) {
	s.RegisterService(&LocationService_ServiceDesc, srv)
}

type LocationServiceClient interface {
	ResolveLocation(ctx context.Context, in *ResolveLocationRequest, opts ...grpc.CallOption) (*ResolveLocationReply, error)
	ListEntityGroups(ctx context.Context, in *ListEntityGroupsRequest, opts ...grpc.CallOption) (*ListEntityGroupsReply, error)
	RegisterServer(ctx context.Context, in *RegisterServerRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	ListServers(ctx context.Context, in *ListServersRequest, opts ...grpc.CallOption) (*ListServersReply, error)
	CreateEntityGroup(ctx context.Context, in *CreateEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	SplitEntityGroup(ctx context.Context, in *SplitEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	UniteEntityGroups(ctx context.Context, in *UniteEntityGroupsRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	MoveEntityGroup(ctx context.Context, in *MoveEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error)
}

type locationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLocationServiceClient(cc grpc.ClientConnInterface) LocationServiceClient {
	return &locationServiceClient{cc}
}

func (c *locationServiceClient) ResolveLocation(ctx context.Context, in *ResolveLocationRequest, opts ...grpc.CallOption) (*ResolveLocationReply, error) {
	return invoke[ResolveLocationRequest, ResolveLocationReply](ctx, c.cc, LocationServiceName, "ResolveLocation", in, opts...)
}

func (c *locationServiceClient) ListEntityGroups(ctx context.Context, in *ListEntityGroupsRequest, opts ...grpc.CallOption) (*ListEntityGroupsReply, error) {
	return invoke[ListEntityGroupsRequest, ListEntityGroupsReply](ctx, c.cc, LocationServiceName, "ListEntityGroups", in, opts...)
}

func (c *locationServiceClient) RegisterServer(ctx context.Context, in *RegisterServerRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[RegisterServerRequest, ModifyReply](ctx, c.cc, LocationServiceName, "RegisterServer", in, opts...)
}

func (c *locationServiceClient) ListServers(ctx context.Context, in *ListServersRequest, opts ...grpc.CallOption) (*ListServersReply, error) {
	return invoke[ListServersRequest, ListServersReply](ctx, c.cc, LocationServiceName, "ListServers", in, opts...)
}

func (c *locationServiceClient) CreateEntityGroup(ctx context.Context, in *CreateEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[CreateEntityGroupRequest, ModifyReply](ctx, c.cc, LocationServiceName, "CreateEntityGroup", in, opts...)
}

func (c *locationServiceClient) SplitEntityGroup(ctx context.Context, in *SplitEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[SplitEntityGroupRequest, ModifyReply](ctx, c.cc, LocationServiceName, "SplitEntityGroup", in, opts...)
}

func (c *locationServiceClient) UniteEntityGroups(ctx context.Context, in *UniteEntityGroupsRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[UniteEntityGroupsRequest, ModifyReply](ctx, c.cc, LocationServiceName, "UniteEntityGroups", in, opts...)
}

func (c *locationServiceClient) MoveEntityGroup(ctx context.Context, in *MoveEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[MoveEntityGroupRequest, ModifyReply](ctx, c.cc, LocationServiceName, "MoveEntityGroup", in, opts...)
}
