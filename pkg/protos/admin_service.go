package protos

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServerAdminServiceName = "egkv.ServerAdminService"

// ServerAdminServiceServer is driven by the coordinator to change which
// entity groups a server hosts and to move rows between servers.
type ServerAdminServiceServer interface {
	AssignEntityGroup(context.Context, *AssignEntityGroupRequest) (*ModifyReply, error)
	ReleaseEntityGroup(context.Context, *ReleaseEntityGroupRequest) (*ModifyReply, error)
	ReplaceEntityGroups(context.Context, *ReplaceEntityGroupsRequest) (*ModifyReply, error)
	ListEntityGroups(context.Context, *ListEntityGroupsRequest) (*ListEntityGroupsReply, error)
	ExportRows(context.Context, *ExportRowsRequest) (*ExportRowsReply, error)
	ImportRows(context.Context, *ImportRowsRequest) (*ModifyReply, error)
	DropRows(context.Context, *DropRowsRequest) (*DropRowsReply, error)
}

type UnimplementedServerAdminServiceServer struct{}

func (UnimplementedServerAdminServiceServer) AssignEntityGroup(context.Context, *AssignEntityGroupRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignEntityGroup not implemented")
}
func (UnimplementedServerAdminServiceServer) ReleaseEntityGroup(context.Context, *ReleaseEntityGroupRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReleaseEntityGroup not implemented")
}
func (UnimplementedServerAdminServiceServer) ReplaceEntityGroups(context.Context, *ReplaceEntityGroupsRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReplaceEntityGroups not implemented")
}
func (UnimplementedServerAdminServiceServer) ListEntityGroups(context.Context, *ListEntityGroupsRequest) (*ListEntityGroupsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEntityGroups not implemented")
}
func (UnimplementedServerAdminServiceServer) ExportRows(context.Context, *ExportRowsRequest) (*ExportRowsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportRows not implemented")
}
func (UnimplementedServerAdminServiceServer) ImportRows(context.Context, *ImportRowsRequest) (*ModifyReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportRows not implemented")
}
func (UnimplementedServerAdminServiceServer) DropRows(context.Context, *DropRowsRequest) (*DropRowsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DropRows not implemented")
}

var ServerAdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServerAdminServiceName,
	HandlerType: (*ServerAdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(ServerAdminServiceName, "AssignEntityGroup", ServerAdminServiceServer.AssignEntityGroup),
		unaryMethod(ServerAdminServiceName, "ReleaseEntityGroup", ServerAdminServiceServer.ReleaseEntityGroup),
		unaryMethod(ServerAdminServiceName, "ReplaceEntityGroups", ServerAdminServiceServer.ReplaceEntityGroups),
		unaryMethod(ServerAdminServiceName, "ListEntityGroups", ServerAdminServiceServer.ListEntityGroups),
		unaryMethod(ServerAdminServiceName, "ExportRows", ServerAdminServiceServer.ExportRows),
		unaryMethod(ServerAdminServiceName, "ImportRows", ServerAdminServiceServer.ImportRows),
		unaryMethod(ServerAdminServiceName, "DropRows", ServerAdminServiceServer.DropRows),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "egkv/server_admin.proto",
}

func RegisterServerAdminServiceServer(s grpc.ServiceRegistrar, srv ServerAdminServiceServer) {
	s.RegisterService(&ServerAdminService_ServiceDesc, srv)
}

type ServerAdminServiceClient interface {
	AssignEntityGroup(ctx context.Context, in *AssignEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	ReleaseEntityGroup(ctx context.Context, in *ReleaseEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	ReplaceEntityGroups(ctx context.Context, in *ReplaceEntityGroupsRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	ListEntityGroups(ctx context.Context, in *ListEntityGroupsRequest, opts ...grpc.CallOption) (*ListEntityGroupsReply, error)
	ExportRows(ctx context.Context, in *ExportRowsRequest, opts ...grpc.CallOption) (*ExportRowsReply, error)
	ImportRows(ctx context.Context, in *ImportRowsRequest, opts ...grpc.CallOption) (*ModifyReply, error)
	DropRows(ctx context.Context, in *DropRowsRequest, opts ...grpc.CallOption) (*DropRowsReply, error)
}

type serverAdminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewServerAdminServiceClient(cc grpc.ClientConnInterface) ServerAdminServiceClient {
	return &serverAdminServiceClient{cc}
}

func (c *serverAdminServiceClient) AssignEntityGroup(ctx context.Context, in *AssignEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[AssignEntityGroupRequest, ModifyReply](ctx, c.cc, ServerAdminServiceName, "AssignEntityGroup", in, opts...)
}

func (c *serverAdminServiceClient) ReleaseEntityGroup(ctx context.Context, in *ReleaseEntityGroupRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[ReleaseEntityGroupRequest, ModifyReply](ctx, c.cc, ServerAdminServiceName, "ReleaseEntityGroup", in, opts...)
}

func (c *serverAdminServiceClient) ReplaceEntityGroups(ctx context.Context, in *ReplaceEntityGroupsRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[ReplaceEntityGroupsRequest, ModifyReply](ctx, c.cc, ServerAdminServiceName, "ReplaceEntityGroups", in, opts...)
}

func (c *serverAdminServiceClient) ListEntityGroups(ctx context.Context, in *ListEntityGroupsRequest, opts ...grpc.CallOption) (*ListEntityGroupsReply, error) {
	return invoke[ListEntityGroupsRequest, ListEntityGroupsReply](ctx, c.cc, ServerAdminServiceName, "ListEntityGroups", in, opts...)
}

func (c *serverAdminServiceClient) ExportRows(ctx context.Context, in *ExportRowsRequest, opts ...grpc.CallOption) (*ExportRowsReply, error) {
	return invoke[ExportRowsRequest, ExportRowsReply](ctx, c.cc, ServerAdminServiceName, "ExportRows", in, opts...)
}

func (c *serverAdminServiceClient) ImportRows(ctx context.Context, in *ImportRowsRequest, opts ...grpc.CallOption) (*ModifyReply, error) {
	return invoke[ImportRowsRequest, ModifyReply](ctx, c.cc, ServerAdminServiceName, "ImportRows", in, opts...)
}

func (c *serverAdminServiceClient) DropRows(ctx context.Context, in *DropRowsRequest, opts ...grpc.CallOption) (*DropRowsReply, error) {
	return invoke[DropRowsRequest, DropRowsReply](ctx, c.cc, ServerAdminServiceName, "DropRows", in, opts...)
}
