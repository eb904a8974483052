package provider

import (
	"context"

	"github.com/egkv/egkv/coordinator"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	"github.com/egkv/egkv/pkg/models/topology"
	protos "github.com/egkv/egkv/pkg/protos"
)

type LocationService struct {
	protos.UnimplementedLocationServiceServer

	impl coordinator.Coordinator
}

var _ protos.LocationServiceServer = &LocationService{}

func NewLocationService(impl coordinator.Coordinator) protos.LocationServiceServer {
	return &LocationService{
		impl: impl,
	}
}

// ResolveLocation returns the entity group covering the key together with
// its server address.
func (l *LocationService) ResolveLocation(ctx context.Context, request *protos.ResolveLocationRequest) (*protos.ResolveLocationReply, error) {
	loc, err := l.impl.ResolveLocation(ctx, request.Key)
	if err != nil {
		egkvlog.Zero.Debug().Err(err).Bytes("key", request.Key).Msg("location service: resolve failed")
		return nil, egerror.ToStatus(err)
	}
	return &protos.ResolveLocationReply{Group: loc.ToProto()}, nil
}

func (l *LocationService) ListEntityGroups(ctx context.Context, _ *protos.ListEntityGroupsRequest) (*protos.ListEntityGroupsReply, error) {
	groups, err := l.impl.ListEntityGroups(ctx)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}

	servers, err := l.impl.ListServers(ctx)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	addrs := make(map[string]string, len(servers))
	for _, s := range servers {
		addrs[s.ID] = s.Address
	}

	reply := &protos.ListEntityGroupsReply{}
	for _, g := range groups {
		info := g.ToProto()
		info.ServerAddress = addrs[g.ServerID]
		reply.Groups = append(reply.Groups, info)
	}
	return reply, nil
}

func (l *LocationService) RegisterServer(ctx context.Context, request *protos.RegisterServerRequest) (*protos.ModifyReply, error) {
	if err := l.impl.RegisterServer(ctx, topology.ServerFromProto(request.Server)); err != nil {
		return nil, egerror.ToStatus(err)
	}
	return &protos.ModifyReply{Operation: "register server"}, nil
}

func (l *LocationService) ListServers(ctx context.Context, _ *protos.ListServersRequest) (*protos.ListServersReply, error) {
	servers, err := l.impl.ListServers(ctx)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	reply := &protos.ListServersReply{}
	for _, s := range servers {
		reply.Servers = append(reply.Servers, s.ToProto())
	}
	return reply, nil
}

func (l *LocationService) CreateEntityGroup(ctx context.Context, request *protos.CreateEntityGroupRequest) (*protos.ModifyReply, error) {
	group := eg.EntityGroupFromProto(request.Group)
	if group == nil {
		return nil, egerror.ToStatus(egerror.New(egerror.EGKV_INVALID_REQUEST, "entity group is required"))
	}
	if err := l.impl.CreateEntityGroup(ctx, group); err != nil {
		return nil, egerror.ToStatus(err)
	}
	return &protos.ModifyReply{Operation: "create entity group " + group.ID}, nil
}

func (l *LocationService) SplitEntityGroup(ctx context.Context, request *protos.SplitEntityGroupRequest) (*protos.ModifyReply, error) {
	right, err := l.impl.Split(ctx, &eg.SplitEntityGroup{
		SourceID: request.SourceId,
		NewID:    request.NewId,
		Bound:    request.Bound,
	})
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	return &protos.ModifyReply{Operation: "split into " + right.ID}, nil
}

func (l *LocationService) UniteEntityGroups(ctx context.Context, request *protos.UniteEntityGroupsRequest) (*protos.ModifyReply, error) {
	united, err := l.impl.Unite(ctx, &eg.UniteEntityGroups{
		LeftID:  request.LeftId,
		RightID: request.RightId,
	})
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	return &protos.ModifyReply{Operation: "unite into " + united.ID}, nil
}

func (l *LocationService) MoveEntityGroup(ctx context.Context, request *protos.MoveEntityGroupRequest) (*protos.ModifyReply, error) {
	if err := l.impl.Move(ctx, &eg.MoveEntityGroup{
		ID:       request.Id,
		ServerID: request.ServerId,
	}); err != nil {
		return nil, egerror.ToStatus(err)
	}
	return &protos.ModifyReply{Operation: "move " + request.Id + " to " + request.ServerId}, nil
}
