package provider

import (
	"context"

	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/pkg/storage"
)

const defaultExportLimit = 512

type AdminService struct {
	protos.UnimplementedServerAdminServiceServer

	srv *Server
}

var _ protos.ServerAdminServiceServer = &AdminService{}

func NewAdminService(srv *Server) protos.ServerAdminServiceServer {
	return &AdminService{
		srv: srv,
	}
}

func (a *AdminService) AssignEntityGroup(ctx context.Context, request *protos.AssignEntityGroupRequest) (*protos.ModifyReply, error) {
	if request.Group == nil {
		return nil, egerror.ToStatus(egerror.New(egerror.EGKV_INVALID_REQUEST, "entity group is not set"))
	}
	if err := a.srv.Hosts.Assign(eg.EntityGroupFromProto(request.Group)); err != nil {
		return nil, egerror.ToStatus(err)
	}
	return &protos.ModifyReply{Operation: "assign"}, nil
}

func (a *AdminService) ReleaseEntityGroup(ctx context.Context, request *protos.ReleaseEntityGroupRequest) (*protos.ModifyReply, error) {
	group, err := a.srv.Hosts.Release(request.Id)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	if request.DropRows {
		a.srv.Engine.DeleteRange(group.LowerBound, group.UpperBound)
	}
	return &protos.ModifyReply{Operation: "release"}, nil
}

func (a *AdminService) ReplaceEntityGroups(ctx context.Context, request *protos.ReplaceEntityGroupsRequest) (*protos.ModifyReply, error) {
	add := make([]*eg.EntityGroup, 0, len(request.Add))
	for _, g := range request.Add {
		add = append(add, eg.EntityGroupFromProto(g))
	}
	if err := a.srv.Hosts.Replace(request.Remove, add); err != nil {
		return nil, egerror.ToStatus(err)
	}
	return &protos.ModifyReply{Operation: "replace"}, nil
}

func (a *AdminService) ListEntityGroups(ctx context.Context, request *protos.ListEntityGroupsRequest) (*protos.ListEntityGroupsReply, error) {
	groups := a.srv.Hosts.List()
	ret := make([]*protos.EntityGroupInfo, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, g.ToProto())
	}
	return &protos.ListEntityGroupsReply{Groups: ret}, nil
}

func (a *AdminService) ExportRows(ctx context.Context, request *protos.ExportRowsRequest) (*protos.ExportRowsReply, error) {
	limit := int(request.Limit)
	if limit <= 0 {
		limit = defaultExportLimit
	}
	rows, more := a.srv.Engine.Export(request.LowerBound, request.UpperBound, request.After, limit)

	ret := make([]*protos.Row, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, &protos.Row{Key: r.Key, Value: r.Value})
	}
	return &protos.ExportRowsReply{
		Rows: ret,
		More: more,
	}, nil
}

func (a *AdminService) ImportRows(ctx context.Context, request *protos.ImportRowsRequest) (*protos.ModifyReply, error) {
	rows := make([]storage.Row, 0, len(request.Rows))
	for _, r := range request.Rows {
		rows = append(rows, storage.Row{Key: r.Key, Value: r.Value})
	}
	a.srv.Engine.Import(rows)
	return &protos.ModifyReply{Operation: "import"}, nil
}

func (a *AdminService) DropRows(ctx context.Context, request *protos.DropRowsRequest) (*protos.DropRowsReply, error) {
	dropped := a.srv.Engine.DeleteRange(request.LowerBound, request.UpperBound)
	return &protos.DropRowsReply{Dropped: int64(dropped)}, nil
}
