package coord

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/egkv/egkv/coordinator/statistics"
	"github.com/egkv/egkv/pkg/datatransfers"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	"github.com/egkv/egkv/pkg/models/topology"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/qdb"
)

// Connector hands out admin clients of entity group servers.
type Connector interface {
	Admin(addr string) (protos.ServerAdminServiceClient, error)
}

type Coordinator struct {
	qdb       qdb.QDB
	conns     Connector
	batchSize int

	moveMu sync.Mutex
}

var _ eg.EntityGroupMgr = &Coordinator{}

func NewCoordinator(db qdb.QDB, conns Connector, transferBatchSize int) *Coordinator {
	return &Coordinator{
		qdb:       db,
		conns:     conns,
		batchSize: transferBatchSize,
	}
}

func (c *Coordinator) QDB() qdb.QDB {
	return c.qdb
}

// RegisterServer implements eg.EntityGroupMgr.
func (c *Coordinator) RegisterServer(ctx context.Context, server *topology.Server) error {
	if server == nil || server.ID == "" || server.Address == "" {
		return egerror.New(egerror.EGKV_INVALID_REQUEST, "server id and address are required")
	}
	egkvlog.Zero.Info().Str("server", server.ID).Str("address", server.Address).Msg("coordinator: register server")
	return c.qdb.AddServer(ctx, server.ToDB())
}

// ListServers implements eg.EntityGroupMgr.
func (c *Coordinator) ListServers(ctx context.Context) ([]*topology.Server, error) {
	servers, err := c.qdb.ListServers(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]*topology.Server, 0, len(servers))
	for _, s := range servers {
		ret = append(ret, topology.ServerFromDB(s))
	}
	return ret, nil
}

// ListEntityGroups implements eg.EntityGroupMgr.
func (c *Coordinator) ListEntityGroups(ctx context.Context) ([]*eg.EntityGroup, error) {
	groups, err := c.qdb.ListEntityGroups(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]*eg.EntityGroup, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, eg.EntityGroupFromDB(g))
	}
	return ret, nil
}

func (c *Coordinator) admin(ctx context.Context, serverID string) (protos.ServerAdminServiceClient, error) {
	server, err := c.qdb.GetServer(ctx, serverID)
	if err != nil {
		return nil, err
	}
	return c.conns.Admin(server.Address)
}

// CreateEntityGroup implements eg.EntityGroupMgr.
func (c *Coordinator) CreateEntityGroup(ctx context.Context, group *eg.EntityGroup) error {
	if err := group.Validate(); err != nil {
		return err
	}
	if _, err := c.qdb.GetServer(ctx, group.ServerID); err != nil {
		return err
	}

	groups, err := c.ListEntityGroups(ctx)
	if err != nil {
		return err
	}
	for _, other := range groups {
		if other.ID == group.ID {
			return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %s already exists", group.ID)
		}
		if other.Overlaps(group) {
			return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %s intersects with %s", group, other)
		}
	}

	if err := c.qdb.CreateEntityGroup(ctx, group.ToDB()); err != nil {
		return err
	}

	cl, err := c.admin(ctx, group.ServerID)
	if err == nil {
		_, err = cl.AssignEntityGroup(ctx, &protos.AssignEntityGroupRequest{Group: group.ToProto()})
	}
	if err != nil {
		if dropErr := c.qdb.DropEntityGroup(ctx, group.ID); dropErr != nil {
			egkvlog.Zero.Error().Err(dropErr).Str("entity-group", group.ID).Msg("coordinator: failed to roll back entity group")
		}
		return egerror.FromGRPC(err)
	}

	egkvlog.Zero.Info().Str("entity-group", group.String()).Str("server", group.ServerID).Msg("coordinator: created entity group")
	return nil
}

// ResolveLocation implements eg.EntityGroupMgr.
func (c *Coordinator) ResolveLocation(ctx context.Context, key []byte) (*eg.Location, error) {
	groups, err := c.qdb.ListEntityGroups(ctx)
	if err != nil {
		return nil, err
	}

	// groups are ordered by lower bound, the candidate is the last one
	// starting at or before key
	i := sort.Search(len(groups), func(i int) bool {
		return bytes.Compare(groups[i].LowerBound, key) > 0
	})
	if i == 0 {
		return nil, egerror.Newf(egerror.EGKV_NO_ENTITY_GROUP, "no entity group covers key %q", key)
	}
	group := eg.EntityGroupFromDB(groups[i-1])
	if !group.Contains(key) {
		return nil, egerror.Newf(egerror.EGKV_NO_ENTITY_GROUP, "no entity group covers key %q", key)
	}

	server, err := c.qdb.GetServer(ctx, group.ServerID)
	if err != nil {
		return nil, egerror.Wrap(egerror.EGKV_METADATA_CORRUPTION, err)
	}
	return &eg.Location{Group: group, ServerAddress: server.Address}, nil
}

func (c *Coordinator) unlock(ctx context.Context, id string) {
	if err := c.qdb.UnlockEntityGroup(ctx, id); err != nil {
		egkvlog.Zero.Error().Err(err).Str("entity-group", id).Msg("coordinator: failed to unlock entity group")
	}
}

// Split implements eg.EntityGroupMgr. The source keeps the lower part of
// its range and the new group takes [bound, upper) on the same server.
func (c *Coordinator) Split(ctx context.Context, req *eg.SplitEntityGroup) (*eg.EntityGroup, error) {
	if req.NewID == "" {
		req.NewID = uuid.NewString()
	}
	if _, err := c.qdb.GetEntityGroup(ctx, req.NewID); err == nil {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %s already exists", req.NewID)
	}

	sourceDB, err := c.qdb.LockEntityGroup(ctx, req.SourceID)
	if err != nil {
		return nil, err
	}
	defer c.unlock(ctx, req.SourceID)

	source := eg.EntityGroupFromDB(sourceDB)
	if bytes.Compare(req.Bound, source.LowerBound) <= 0 || !eg.KeyBelowUpper(req.Bound, source.UpperBound) {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "bound %q is not strictly inside %s", req.Bound, source)
	}

	left := source.Clone()
	left.UpperBound = bytes.Clone(req.Bound)
	right := &eg.EntityGroup{
		ID:         req.NewID,
		LowerBound: bytes.Clone(req.Bound),
		UpperBound: bytes.Clone(source.UpperBound),
		ServerID:   source.ServerID,
	}

	cl, err := c.admin(ctx, source.ServerID)
	if err != nil {
		return nil, err
	}
	if err := c.replace(ctx, cl, []*eg.EntityGroup{source}, []*eg.EntityGroup{left, right}); err != nil {
		return nil, err
	}

	if err := c.qdb.UpdateEntityGroup(ctx, left.ToDB()); err != nil {
		c.revert(ctx, cl, []*eg.EntityGroup{left, right}, []*eg.EntityGroup{source})
		return nil, err
	}
	if err := c.qdb.CreateEntityGroup(ctx, right.ToDB()); err != nil {
		if rbErr := c.qdb.UpdateEntityGroup(ctx, source.ToDB()); rbErr != nil {
			egkvlog.Zero.Error().Err(rbErr).Str("entity-group", source.ID).Msg("coordinator: failed to roll back split")
		}
		c.revert(ctx, cl, []*eg.EntityGroup{left, right}, []*eg.EntityGroup{source})
		return nil, err
	}

	egkvlog.Zero.Info().
		Str("source", left.String()).
		Str("new", right.String()).
		Msg("coordinator: split entity group")
	return right, nil
}

// Unite implements eg.EntityGroupMgr. The left group survives with the
// union of both ranges.
func (c *Coordinator) Unite(ctx context.Context, req *eg.UniteEntityGroups) (*eg.EntityGroup, error) {
	if req.LeftID == req.RightID {
		return nil, egerror.New(egerror.EGKV_INVALID_REQUEST, "cannot unite an entity group with itself")
	}

	leftDB, err := c.qdb.LockEntityGroup(ctx, req.LeftID)
	if err != nil {
		return nil, err
	}
	defer c.unlock(ctx, req.LeftID)

	rightDB, err := c.qdb.LockEntityGroup(ctx, req.RightID)
	if err != nil {
		return nil, err
	}
	rightLocked := true
	defer func() {
		if rightLocked {
			c.unlock(ctx, req.RightID)
		}
	}()

	left, right := eg.EntityGroupFromDB(leftDB), eg.EntityGroupFromDB(rightDB)
	if !left.Adjacent(right) {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "failed to unite non-adjacent entity groups %s and %s", left, right)
	}
	if left.ServerID != right.ServerID {
		return nil, egerror.New(egerror.EGKV_ENTITY_GROUP_ERROR, "failed to unite entity groups hosted on different servers")
	}

	united := left.Clone()
	united.UpperBound = bytes.Clone(right.UpperBound)

	cl, err := c.admin(ctx, left.ServerID)
	if err != nil {
		return nil, err
	}
	if err := c.replace(ctx, cl, []*eg.EntityGroup{left, right}, []*eg.EntityGroup{united}); err != nil {
		return nil, err
	}

	if err := c.qdb.UpdateEntityGroup(ctx, united.ToDB()); err != nil {
		c.revert(ctx, cl, []*eg.EntityGroup{united}, []*eg.EntityGroup{left, right})
		return nil, err
	}
	// dropping the group removes its lock as well
	if err := c.qdb.DropEntityGroup(ctx, right.ID); err != nil {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "failed to drop an old entity group: %s", err.Error())
	}
	rightLocked = false

	egkvlog.Zero.Info().Str("entity-group", united.String()).Str("absorbed", right.ID).Msg("coordinator: united entity groups")
	return united, nil
}

// Move implements eg.EntityGroupMgr.
func (c *Coordinator) Move(ctx context.Context, req *eg.MoveEntityGroup) error {
	c.moveMu.Lock()
	defer c.moveMu.Unlock()

	groupDB, err := c.qdb.LockEntityGroup(ctx, req.ID)
	if err != nil {
		return err
	}
	defer c.unlock(ctx, req.ID)

	group := eg.EntityGroupFromDB(groupDB)
	if group.ServerID == req.ServerID {
		return nil
	}

	from, err := c.admin(ctx, group.ServerID)
	if err != nil {
		return err
	}
	to, err := c.admin(ctx, req.ServerID)
	if err != nil {
		return err
	}

	if err := statistics.RecordMoveStart(time.Now()); err != nil {
		egkvlog.Zero.Debug().Err(err).Msg("coordinator: move statistics")
	}
	moved, err := c.move(ctx, group, req.ServerID, from, to)
	if statErr := statistics.RecordMoveFinish(time.Now(), moved, err == nil); statErr != nil {
		egkvlog.Zero.Debug().Err(statErr).Msg("coordinator: move statistics")
	}
	return err
}

func (c *Coordinator) move(ctx context.Context, group *eg.EntityGroup, serverID string, from, to protos.ServerAdminServiceClient) (int, error) {
	moved := group.Clone()
	moved.ServerID = serverID

	egkvlog.Zero.Info().
		Str("entity-group", group.ID).
		Str("from", group.ServerID).
		Str("to", serverID).
		Msg("coordinator: move entity group")

	start := time.Now()
	if _, err := from.ReleaseEntityGroup(ctx, &protos.ReleaseEntityGroupRequest{Id: group.ID}); err != nil {
		return 0, egerror.FromGRPC(err)
	}
	statistics.RecordServerOperation(time.Since(start))

	restoreSource := func() {
		if _, err := from.AssignEntityGroup(ctx, &protos.AssignEntityGroupRequest{Group: group.ToProto()}); err != nil {
			egkvlog.Zero.Error().Err(err).Str("entity-group", group.ID).Msg("coordinator: failed to restore entity group on source")
		}
	}

	start = time.Now()
	rows, err := datatransfers.MoveRows(ctx, from, to, group, c.batchSize)
	statistics.RecordTransfer(time.Since(start))
	if err != nil {
		c.dropRows(ctx, to, group)
		restoreSource()
		return rows, err
	}

	start = time.Now()
	if _, err := to.AssignEntityGroup(ctx, &protos.AssignEntityGroupRequest{Group: moved.ToProto()}); err != nil {
		c.dropRows(ctx, to, group)
		restoreSource()
		return rows, egerror.FromGRPC(err)
	}
	statistics.RecordServerOperation(time.Since(start))

	// the new owner is published only while the move still holds the lock
	start = time.Now()
	_, err = c.qdb.CheckLockedEntityGroup(ctx, group.ID)
	if err == nil {
		err = c.qdb.UpdateEntityGroup(ctx, moved.ToDB())
	}
	if err != nil {
		if _, relErr := to.ReleaseEntityGroup(ctx, &protos.ReleaseEntityGroupRequest{Id: group.ID, DropRows: true}); relErr != nil {
			egkvlog.Zero.Error().Err(relErr).Str("entity-group", group.ID).Msg("coordinator: failed to release entity group on destination")
		}
		restoreSource()
		return rows, err
	}
	statistics.RecordQDBOperation(time.Since(start))

	c.dropRows(ctx, from, group)

	egkvlog.Zero.Info().
		Str("entity-group", group.ID).
		Str("server", serverID).
		Int("rows", rows).
		Msg("coordinator: moved entity group")
	return rows, nil
}

func (c *Coordinator) dropRows(ctx context.Context, cl protos.ServerAdminServiceClient, group *eg.EntityGroup) {
	if _, err := cl.DropRows(ctx, &protos.DropRowsRequest{
		LowerBound: group.LowerBound,
		UpperBound: group.UpperBound,
	}); err != nil {
		egkvlog.Zero.Error().Err(err).Str("entity-group", group.ID).Msg("coordinator: failed to drop rows")
	}
}

func groupIDs(groups []*eg.EntityGroup) []string {
	ret := make([]string, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, g.ID)
	}
	return ret
}

func groupInfos(groups []*eg.EntityGroup) []*protos.EntityGroupInfo {
	ret := make([]*protos.EntityGroupInfo, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, g.ToProto())
	}
	return ret
}

func (c *Coordinator) replace(ctx context.Context, cl protos.ServerAdminServiceClient, remove, add []*eg.EntityGroup) error {
	start := time.Now()
	_, err := cl.ReplaceEntityGroups(ctx, &protos.ReplaceEntityGroupsRequest{
		Remove: groupIDs(remove),
		Add:    groupInfos(add),
	})
	statistics.RecordServerOperation(time.Since(start))
	return egerror.FromGRPC(err)
}

func (c *Coordinator) revert(ctx context.Context, cl protos.ServerAdminServiceClient, remove, add []*eg.EntityGroup) {
	if err := c.replace(ctx, cl, remove, add); err != nil {
		egkvlog.Zero.Error().Err(err).Strs("entity-groups", groupIDs(add)).Msg("coordinator: failed to revert entity groups on server")
	}
}
