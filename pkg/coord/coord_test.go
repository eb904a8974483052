package coord_test

import (
	"context"
	"testing"

	"github.com/egkv/egkv/pkg/coord"
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	"github.com/egkv/egkv/pkg/models/topology"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/pkg/protos/mock"
	"github.com/egkv/egkv/qdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
)

type connector map[string]protos.ServerAdminServiceClient

func (c connector) Admin(addr string) (protos.ServerAdminServiceClient, error) {
	cl, ok := c[addr]
	if !ok {
		return nil, egerror.Newf(egerror.EGKV_TRANSPORT, "no connection to %s", addr)
	}
	return cl, nil
}

type fixture struct {
	coord *coord.Coordinator
	db    *qdb.MemQDB
	s1    *mock.MockServerAdminServiceClient
	s2    *mock.MockServerAdminServiceClient
}

func prepare(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	db, err := qdb.NewMemQDB("")
	require.NoError(t, err)

	f := &fixture{
		db: db,
		s1: mock.NewMockServerAdminServiceClient(ctrl),
		s2: mock.NewMockServerAdminServiceClient(ctrl),
	}
	f.coord = coord.NewCoordinator(db, connector{"x:1": f.s1, "y:1": f.s2}, 2)

	require.NoError(t, f.coord.RegisterServer(ctx, topology.NewServer("s1", "x:1")))
	require.NoError(t, f.coord.RegisterServer(ctx, topology.NewServer("s2", "y:1")))
	return f
}

func group(id, lo, hi, server string) *eg.EntityGroup {
	g := &eg.EntityGroup{ID: id, LowerBound: []byte(lo), ServerID: server}
	if hi != "" {
		g.UpperBound = []byte(hi)
	}
	return g
}

func (f *fixture) create(t *testing.T, g *eg.EntityGroup) {
	t.Helper()
	cl := f.s1
	if g.ServerID == "s2" {
		cl = f.s2
	}
	cl.EXPECT().AssignEntityGroup(gomock.Any(), &protos.AssignEntityGroupRequest{Group: g.ToProto()}).Return(&protos.ModifyReply{}, nil)
	require.NoError(t, f.coord.CreateEntityGroup(context.Background(), g))
}

func TestRegisterServer(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	servers, err := f.coord.ListServers(ctx)
	require.NoError(t, err)
	assert.Equal([]*topology.Server{topology.NewServer("s1", "x:1"), topology.NewServer("s2", "y:1")}, servers)

	assert.True(egerror.Is(f.coord.RegisterServer(ctx, &topology.Server{ID: "s3"}), egerror.EGKV_INVALID_REQUEST))
}

func TestCreateEntityGroup(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "a", "m", "s1"))
	f.create(t, group("eg2", "m", "", "s2"))

	for _, g := range []*eg.EntityGroup{
		group("eg1", "x", "y", "s1"),
		group("eg3", "b", "c", "s1"),
		group("eg3", "", "b", "s1"),
		group("eg3", "z", "", "s2"),
	} {
		err := f.coord.CreateEntityGroup(ctx, g)
		assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_ERROR), "%s: %v", g, err)
	}

	assert.Error(f.coord.CreateEntityGroup(ctx, group("eg3", "", "a", "s9")))
	assert.Error(f.coord.CreateEntityGroup(ctx, group("eg3", "b", "b", "s1")))

	groups, err := f.coord.ListEntityGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal("eg1", groups[0].ID)
	assert.Equal("eg2", groups[1].ID)
}

func TestCreateEntityGroupRollsBackOnAssignFailure(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	f.s1.EXPECT().AssignEntityGroup(gomock.Any(), gomock.Any()).
		Return(nil, egerror.New(egerror.EGKV_TRANSPORT, "connection refused"))

	err := f.coord.CreateEntityGroup(ctx, group("eg1", "a", "m", "s1"))
	assert.True(egerror.Is(err, egerror.EGKV_TRANSPORT))

	_, err = f.db.GetEntityGroup(ctx, "eg1")
	assert.Error(err)
}

func TestResolveLocation(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "b", "g", "s1"))
	f.create(t, group("eg2", "g", "m", "s2"))
	f.create(t, group("eg3", "p", "", "s1"))

	for _, tt := range []struct {
		key    string
		group  string
		server string
	}{
		{"b", "eg1", "x:1"},
		{"f", "eg1", "x:1"},
		{"g", "eg2", "y:1"},
		{"lzzz", "eg2", "y:1"},
		{"p", "eg3", "x:1"},
		{"zzzz", "eg3", "x:1"},
	} {
		loc, err := f.coord.ResolveLocation(ctx, []byte(tt.key))
		require.NoError(t, err, tt.key)
		assert.Equal(tt.group, loc.Group.ID, tt.key)
		assert.Equal(tt.server, loc.ServerAddress, tt.key)
	}

	for _, key := range []string{"", "a", "m", "o"} {
		_, err := f.coord.ResolveLocation(ctx, []byte(key))
		assert.True(egerror.Is(err, egerror.EGKV_NO_ENTITY_GROUP), key)
	}
}

func TestSplit(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "a", "m", "s1"))

	f.s1.EXPECT().ReplaceEntityGroups(gomock.Any(), &protos.ReplaceEntityGroupsRequest{
		Remove: []string{"eg1"},
		Add: []*protos.EntityGroupInfo{
			group("eg1", "a", "g", "s1").ToProto(),
			group("eg2", "g", "m", "s1").ToProto(),
		},
	}).Return(&protos.ModifyReply{}, nil)

	right, err := f.coord.Split(ctx, &eg.SplitEntityGroup{SourceID: "eg1", NewID: "eg2", Bound: []byte("g")})
	require.NoError(t, err)
	assert.Equal("eg2", right.ID)

	loc, err := f.coord.ResolveLocation(ctx, []byte("h"))
	require.NoError(t, err)
	assert.Equal("eg2", loc.Group.ID)
	loc, err = f.coord.ResolveLocation(ctx, []byte("f"))
	require.NoError(t, err)
	assert.Equal("eg1", loc.Group.ID)
	assert.Equal([]byte("g"), loc.Group.UpperBound)

	// the source lock is released
	_, err = f.db.LockEntityGroup(ctx, "eg1")
	assert.NoError(err)
}

func TestSplitGeneratesID(t *testing.T) {
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "a", "", "s1"))
	f.s1.EXPECT().ReplaceEntityGroups(gomock.Any(), gomock.Any()).Return(&protos.ModifyReply{}, nil)

	right, err := f.coord.Split(ctx, &eg.SplitEntityGroup{SourceID: "eg1", Bound: []byte("k")})
	require.NoError(t, err)
	assert.NotEmpty(t, right.ID)
	assert.Empty(t, right.UpperBound)
}

func TestSplitRejectsBound(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "b", "m", "s1"))
	for _, bound := range []string{"a", "b", "m", "z"} {
		_, err := f.coord.Split(ctx, &eg.SplitEntityGroup{SourceID: "eg1", NewID: "eg2", Bound: []byte(bound)})
		assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_ERROR), bound)
	}
}

func TestSplitServerFailureLeavesMapping(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "a", "m", "s1"))
	f.s1.EXPECT().ReplaceEntityGroups(gomock.Any(), gomock.Any()).
		Return(nil, egerror.New(egerror.EGKV_TRANSPORT, "connection refused"))

	_, err := f.coord.Split(ctx, &eg.SplitEntityGroup{SourceID: "eg1", NewID: "eg2", Bound: []byte("g")})
	assert.Error(err)

	loc, err := f.coord.ResolveLocation(ctx, []byte("h"))
	require.NoError(t, err)
	assert.Equal("eg1", loc.Group.ID)
}

func TestUnite(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "a", "g", "s1"))
	f.create(t, group("eg2", "g", "m", "s1"))
	f.create(t, group("eg3", "m", "p", "s2"))
	f.create(t, group("eg4", "q", "", "s2"))

	_, err := f.coord.Unite(ctx, &eg.UniteEntityGroups{LeftID: "eg2", RightID: "eg3"})
	assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_ERROR))
	_, err = f.coord.Unite(ctx, &eg.UniteEntityGroups{LeftID: "eg3", RightID: "eg4"})
	assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_ERROR))
	_, err = f.coord.Unite(ctx, &eg.UniteEntityGroups{LeftID: "eg2", RightID: "eg1"})
	assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_ERROR))

	f.s1.EXPECT().ReplaceEntityGroups(gomock.Any(), &protos.ReplaceEntityGroupsRequest{
		Remove: []string{"eg1", "eg2"},
		Add:    []*protos.EntityGroupInfo{group("eg1", "a", "m", "s1").ToProto()},
	}).Return(&protos.ModifyReply{}, nil)

	united, err := f.coord.Unite(ctx, &eg.UniteEntityGroups{LeftID: "eg1", RightID: "eg2"})
	require.NoError(t, err)
	assert.Equal([]byte("m"), united.UpperBound)

	groups, err := f.coord.ListEntityGroups(ctx)
	require.NoError(t, err)
	assert.Len(groups, 3)

	_, err = f.db.LockEntityGroup(ctx, "eg1")
	assert.NoError(err)
	_, err = f.db.LockEntityGroup(ctx, "eg3")
	assert.NoError(err)
}

func TestMove(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	g := group("eg1", "a", "m", "s1")
	f.create(t, g)

	moved := group("eg1", "a", "m", "s2")
	rows := []*protos.Row{{Key: []byte("b"), Value: []byte("1")}}

	gomock.InOrder(
		f.s1.EXPECT().ReleaseEntityGroup(gomock.Any(), &protos.ReleaseEntityGroupRequest{Id: "eg1"}).Return(&protos.ModifyReply{}, nil),
		f.s1.EXPECT().ExportRows(gomock.Any(), gomock.Any()).Return(&protos.ExportRowsReply{Rows: rows}, nil),
		f.s2.EXPECT().ImportRows(gomock.Any(), &protos.ImportRowsRequest{Rows: rows}).Return(&protos.ModifyReply{}, nil),
		f.s2.EXPECT().AssignEntityGroup(gomock.Any(), &protos.AssignEntityGroupRequest{Group: moved.ToProto()}).Return(&protos.ModifyReply{}, nil),
		f.s1.EXPECT().DropRows(gomock.Any(), &protos.DropRowsRequest{LowerBound: []byte("a"), UpperBound: []byte("m")}).Return(&protos.DropRowsReply{Dropped: 1}, nil),
	)

	require.NoError(t, f.coord.Move(ctx, &eg.MoveEntityGroup{ID: "eg1", ServerID: "s2"}))

	loc, err := f.coord.ResolveLocation(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Equal("y:1", loc.ServerAddress)

	// moving to the current owner is a no-op
	require.NoError(t, f.coord.Move(ctx, &eg.MoveEntityGroup{ID: "eg1", ServerID: "s2"}))
}

func TestMoveRestoresSourceOnTransferFailure(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	g := group("eg1", "a", "m", "s1")
	f.create(t, g)

	gomock.InOrder(
		f.s1.EXPECT().ReleaseEntityGroup(gomock.Any(), gomock.Any()).Return(&protos.ModifyReply{}, nil),
		f.s1.EXPECT().ExportRows(gomock.Any(), gomock.Any()).
			Return(nil, egerror.New(egerror.EGKV_TRANSPORT, "connection reset")),
		f.s2.EXPECT().DropRows(gomock.Any(), gomock.Any()).Return(&protos.DropRowsReply{}, nil),
		f.s1.EXPECT().AssignEntityGroup(gomock.Any(), &protos.AssignEntityGroupRequest{Group: g.ToProto()}).Return(&protos.ModifyReply{}, nil),
	)

	err := f.coord.Move(ctx, &eg.MoveEntityGroup{ID: "eg1", ServerID: "s2"})
	assert.True(egerror.Is(err, egerror.EGKV_TRANSPORT))

	loc, err := f.coord.ResolveLocation(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Equal("x:1", loc.ServerAddress)
}

func TestMoveAbortedWhenLockLost(t *testing.T) {
	assert := assert.New(t)
	f := prepare(t)
	ctx := context.Background()

	g := group("eg1", "a", "m", "s1")
	f.create(t, g)

	gomock.InOrder(
		f.s1.EXPECT().ReleaseEntityGroup(gomock.Any(), &protos.ReleaseEntityGroupRequest{Id: "eg1"}).Return(&protos.ModifyReply{}, nil),
		f.s1.EXPECT().ExportRows(gomock.Any(), gomock.Any()).Return(&protos.ExportRowsReply{}, nil),
		f.s2.EXPECT().AssignEntityGroup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ *protos.AssignEntityGroupRequest, _ ...grpc.CallOption) (*protos.ModifyReply, error) {
				// someone else released the lock while rows were copied
				require.NoError(t, f.db.UnlockEntityGroup(ctx, "eg1"))
				return &protos.ModifyReply{}, nil
			}),
		f.s2.EXPECT().ReleaseEntityGroup(gomock.Any(), &protos.ReleaseEntityGroupRequest{Id: "eg1", DropRows: true}).Return(&protos.ModifyReply{}, nil),
		f.s1.EXPECT().AssignEntityGroup(gomock.Any(), &protos.AssignEntityGroupRequest{Group: g.ToProto()}).Return(&protos.ModifyReply{}, nil),
	)

	err := f.coord.Move(ctx, &eg.MoveEntityGroup{ID: "eg1", ServerID: "s2"})
	assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_ERROR))

	loc, err := f.coord.ResolveLocation(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Equal("x:1", loc.ServerAddress)
}

func TestMoveUnknownServer(t *testing.T) {
	f := prepare(t)
	ctx := context.Background()

	f.create(t, group("eg1", "a", "m", "s1"))
	assert.Error(t, f.coord.Move(ctx, &eg.MoveEntityGroup{ID: "eg1", ServerID: "s9"}))
}
