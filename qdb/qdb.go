package qdb

import (
	"context"
	"fmt"
)

// QDB is the authoritative entity group -> server mapping.
type QDB interface {
	CreateEntityGroup(ctx context.Context, group *EntityGroup) error
	GetEntityGroup(ctx context.Context, id string) (*EntityGroup, error)
	UpdateEntityGroup(ctx context.Context, group *EntityGroup) error
	DropEntityGroup(ctx context.Context, id string) error
	// ListEntityGroups returns all groups ordered by lower bound.
	ListEntityGroups(ctx context.Context) ([]*EntityGroup, error)

	LockEntityGroup(ctx context.Context, id string) (*EntityGroup, error)
	UnlockEntityGroup(ctx context.Context, id string) error
	CheckLockedEntityGroup(ctx context.Context, id string) (*EntityGroup, error)

	AddServer(ctx context.Context, server *Server) error
	GetServer(ctx context.Context, id string) (*Server, error)
	ListServers(ctx context.Context) ([]*Server, error)
}

// NewQDB opens the QDB implementation named by qdbType.
func NewQDB(qdbType string, addr string, backupPath string) (QDB, error) {
	switch qdbType {
	case "etcd":
		return NewEtcdQDB(addr)
	case "mem", "":
		return RestoreQDB(backupPath)
	default:
		return nil, fmt.Errorf("qdb implementation %s is invalid", qdbType)
	}
}
