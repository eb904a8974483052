package eg

import (
	"context"

	"github.com/egkv/egkv/pkg/models/topology"
)

type SplitEntityGroup struct {
	SourceID string
	NewID    string
	Bound    []byte
}

type UniteEntityGroups struct {
	LeftID  string
	RightID string
}

type MoveEntityGroup struct {
	ID       string
	ServerID string
}

// EntityGroupMgr is the administrative surface of the authoritative mapping.
type EntityGroupMgr interface {
	RegisterServer(ctx context.Context, server *topology.Server) error
	ListServers(ctx context.Context) ([]*topology.Server, error)

	CreateEntityGroup(ctx context.Context, group *EntityGroup) error
	ListEntityGroups(ctx context.Context) ([]*EntityGroup, error)
	ResolveLocation(ctx context.Context, key []byte) (*Location, error)

	Split(ctx context.Context, split *SplitEntityGroup) (*EntityGroup, error)
	Unite(ctx context.Context, unite *UniteEntityGroups) (*EntityGroup, error)
	Move(ctx context.Context, move *MoveEntityGroup) error
}
