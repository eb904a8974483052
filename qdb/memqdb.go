package qdb

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
)

const (
	groupsTable  = "entity_groups"
	locksTable   = "freq"
	serversTable = "servers"
)

type MemQDB struct {
	mu sync.RWMutex

	Freq    map[string]bool         `json:"freq"`
	Groups  map[string]*EntityGroup `json:"entity_groups"`
	Servers map[string]*Server      `json:"servers"`

	backupPath string
}

var _ QDB = &MemQDB{}

func NewMemQDB(backupPath string) (*MemQDB, error) {
	return &MemQDB{
		Freq:    map[string]bool{},
		Groups:  map[string]*EntityGroup{},
		Servers: map[string]*Server{},

		backupPath: backupPath,
	}, nil
}

// RestoreQDB loads the state dumped into backupPath. A missing file is
// created empty.
func RestoreQDB(backupPath string) (*MemQDB, error) {
	qdb, err := NewMemQDB(backupPath)
	if err != nil {
		return nil, err
	}
	if backupPath == "" {
		return qdb, nil
	}
	if _, err := os.Stat(backupPath); err != nil {
		egkvlog.Zero.Info().Err(err).Msg("memqdb backup file not exists. Creating new one.")
		f, err := os.Create(backupPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return qdb, nil
	}
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return qdb, nil
	}
	if err := json.Unmarshal(data, qdb); err != nil {
		return nil, err
	}
	return qdb, nil
}

func (q *MemQDB) DumpState() error {
	if q.backupPath == "" {
		return nil
	}
	tmpPath := q.backupPath + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	state, err := json.MarshalIndent(q, "", "	")
	if err != nil {
		return err
	}

	if _, err = f.Write(state); err != nil {
		return err
	}
	f.Close()

	return os.Rename(tmpPath, q.backupPath)
}

// ==============================================================================
//                                ENTITY GROUPS
// ==============================================================================

func (q *MemQDB) CreateEntityGroup(_ context.Context, group *EntityGroup) error {
	egkvlog.Zero.Debug().Interface("entity-group", group).Msg("memqdb: create entity group")
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.Groups[group.EntityGroupID]; ok {
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %s already present in qdb", group.EntityGroupID)
	}

	return executeCommands("create entity group", q.DumpState,
		newPutCommand(groupsTable, q.Groups, group.EntityGroupID, group.Clone()),
		newPutCommand(locksTable, q.Freq, group.EntityGroupID, false))
}

func (q *MemQDB) GetEntityGroup(_ context.Context, id string) (*EntityGroup, error) {
	egkvlog.Zero.Debug().Str("entity-group", id).Msg("memqdb: get entity group")
	q.mu.RLock()
	defer q.mu.RUnlock()

	group, ok := q.Groups[id]
	if !ok {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "there is no entity group %s", id)
	}
	return group.Clone(), nil
}

func (q *MemQDB) UpdateEntityGroup(_ context.Context, group *EntityGroup) error {
	egkvlog.Zero.Debug().Interface("entity-group", group).Msg("memqdb: update entity group")
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.Groups[group.EntityGroupID]; !ok {
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "there is no entity group %s", group.EntityGroupID)
	}

	return executeCommands("update entity group", q.DumpState, newPutCommand(groupsTable, q.Groups, group.EntityGroupID, group.Clone()))
}

func (q *MemQDB) DropEntityGroup(_ context.Context, id string) error {
	egkvlog.Zero.Debug().Str("entity-group", id).Msg("memqdb: drop entity group")
	q.mu.Lock()
	defer q.mu.Unlock()

	return executeCommands("drop entity group", q.DumpState,
		newDeleteCommand(groupsTable, q.Groups, id),
		newDeleteCommand(locksTable, q.Freq, id))
}

func (q *MemQDB) ListEntityGroups(_ context.Context) ([]*EntityGroup, error) {
	egkvlog.Zero.Debug().Msg("memqdb: list entity groups")
	q.mu.RLock()
	defer q.mu.RUnlock()

	ret := make([]*EntityGroup, 0, len(q.Groups))
	for _, g := range q.Groups {
		ret = append(ret, g.Clone())
	}
	sortEntityGroups(ret)

	return ret, nil
}

func (q *MemQDB) LockEntityGroup(_ context.Context, id string) (*EntityGroup, error) {
	egkvlog.Zero.Debug().Str("entity-group", id).Msg("memqdb: lock entity group")
	q.mu.Lock()
	defer q.mu.Unlock()

	group, ok := q.Groups[id]
	if !ok {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group '%s' does not exist", id)
	}
	if q.Freq[id] {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %s is locked", id)
	}

	if err := executeCommands("lock entity group", q.DumpState, newPutCommand(locksTable, q.Freq, id, true)); err != nil {
		return nil, err
	}
	return group.Clone(), nil
}

func (q *MemQDB) UnlockEntityGroup(_ context.Context, id string) error {
	egkvlog.Zero.Debug().Str("entity-group", id).Msg("memqdb: unlock entity group")
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.Freq[id] {
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v not locked", id)
	}

	return executeCommands("unlock entity group", q.DumpState, newPutCommand(locksTable, q.Freq, id, false))
}

func (q *MemQDB) CheckLockedEntityGroup(_ context.Context, id string) (*EntityGroup, error) {
	egkvlog.Zero.Debug().Str("entity-group", id).Msg("memqdb: check locked entity group")
	q.mu.RLock()
	defer q.mu.RUnlock()

	group, ok := q.Groups[id]
	if !ok {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "there is no entity group %s", id)
	}
	if !q.Freq[id] {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v not locked", id)
	}
	return group.Clone(), nil
}

// ==============================================================================
//                                   SERVERS
// ==============================================================================

func (q *MemQDB) AddServer(_ context.Context, server *Server) error {
	egkvlog.Zero.Debug().Interface("server", server).Msg("memqdb: add server")
	q.mu.Lock()
	defer q.mu.Unlock()

	return executeCommands("add server", q.DumpState, newPutCommand(serversTable, q.Servers, server.ID, server))
}

func (q *MemQDB) GetServer(_ context.Context, id string) (*Server, error) {
	egkvlog.Zero.Debug().Str("server", id).Msg("memqdb: get server")
	q.mu.RLock()
	defer q.mu.RUnlock()

	server, ok := q.Servers[id]
	if !ok {
		return nil, egerror.Newf(egerror.EGKV_INVALID_REQUEST, "unknown server %s", id)
	}
	return server, nil
}

func (q *MemQDB) ListServers(_ context.Context) ([]*Server, error) {
	egkvlog.Zero.Debug().Msg("memqdb: list servers")
	q.mu.RLock()
	defer q.mu.RUnlock()

	ret := make([]*Server, 0, len(q.Servers))
	for _, s := range q.Servers {
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].ID < ret[j].ID
	})
	return ret, nil
}
