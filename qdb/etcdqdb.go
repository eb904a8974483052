package qdb

import (
	"context"
	"encoding/json"
	"path"
	"sort"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/clientv3util"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"

	retry "github.com/sethvargo/go-retry"
)

type EtcdQDB struct {
	cli *clientv3.Client
}

var _ QDB = &EtcdQDB{}

func NewEtcdQDB(addr string) (*EtcdQDB, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   []string{addr},
		DialTimeout: 5 * time.Second,
		DialOptions: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
	})
	if err != nil {
		return nil, err
	}

	egkvlog.Zero.Debug().
		Str("address", addr).
		Uint("client", egkvlog.GetPointer(cli)).
		Msg("etcdqdb: NewEtcdQDB")

	return &EtcdQDB{
		cli: cli,
	}, nil
}

const (
	entityGroupsNamespace = "/entity_groups/"
	serversNamespace      = "/servers/"
)

func keyLockPath(key string) string {
	return path.Join("/lock", key)
}

func entityGroupNodePath(key string) string {
	return path.Join(entityGroupsNamespace, key)
}

func serverNodePath(key string) string {
	return path.Join(serversNamespace, key)
}

func (q *EtcdQDB) Client() *clientv3.Client {
	return q.cli
}

func (q *EtcdQDB) Close() error {
	return q.cli.Close()
}

// ==============================================================================
//                                ENTITY GROUPS
// ==============================================================================

func (q *EtcdQDB) CreateEntityGroup(ctx context.Context, group *EntityGroup) error {
	egkvlog.Zero.Debug().
		Interface("entity-group", group).
		Msg("etcdqdb: create entity group")

	raw, err := json.Marshal(group)
	if err != nil {
		return err
	}

	nodePath := entityGroupNodePath(group.EntityGroupID)
	resp, err := q.cli.Txn(ctx).
		If(clientv3util.KeyMissing(nodePath)).
		Then(clientv3.OpPut(nodePath, string(raw))).
		Commit()
	if err != nil {
		return err
	}
	if !resp.Succeeded {
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v already present in qdb", group.EntityGroupID)
	}

	egkvlog.Zero.Debug().
		Int64("revision", resp.Header.GetRevision()).
		Msg("etcdqdb: put entity group to qdb")
	return nil
}

func (q *EtcdQDB) fetchEntityGroup(ctx context.Context, nodePath string) (*EntityGroup, error) {
	raw, err := q.cli.Get(ctx, nodePath)
	if err != nil {
		return nil, err
	}

	switch len(raw.Kvs) {
	case 0:
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "no entity group found at %v", nodePath)

	case 1:
		ret := EntityGroup{}
		if err := json.Unmarshal(raw.Kvs[0].Value, &ret); err != nil {
			return nil, err
		}
		return &ret, nil

	default:
		return nil, egerror.Newf(egerror.EGKV_METADATA_CORRUPTION, "possible data corruption: multiple key-value pairs found for %v", nodePath)
	}
}

func (q *EtcdQDB) GetEntityGroup(ctx context.Context, id string) (*EntityGroup, error) {
	egkvlog.Zero.Debug().
		Str("id", id).
		Msg("etcdqdb: get entity group")

	return q.fetchEntityGroup(ctx, entityGroupNodePath(id))
}

func (q *EtcdQDB) UpdateEntityGroup(ctx context.Context, group *EntityGroup) error {
	egkvlog.Zero.Debug().
		Interface("entity-group", group).
		Msg("etcdqdb: update entity group")

	raw, err := json.Marshal(group)
	if err != nil {
		return err
	}

	nodePath := entityGroupNodePath(group.EntityGroupID)
	resp, err := q.cli.Txn(ctx).
		If(clientv3util.KeyExists(nodePath)).
		Then(clientv3.OpPut(nodePath, string(raw))).
		Commit()
	if err != nil {
		return err
	}
	if !resp.Succeeded {
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "there is no entity group %s", group.EntityGroupID)
	}
	return nil
}

func (q *EtcdQDB) DropEntityGroup(ctx context.Context, id string) error {
	egkvlog.Zero.Debug().
		Str("id", id).
		Msg("etcdqdb: drop entity group")

	resp, err := q.cli.Delete(ctx, entityGroupNodePath(id))
	if err != nil {
		return err
	}
	if _, err := q.cli.Delete(ctx, keyLockPath(entityGroupNodePath(id))); err != nil {
		return err
	}

	egkvlog.Zero.Debug().
		Int64("deleted", resp.Deleted).
		Msg("etcdqdb: drop entity group")
	return nil
}

func (q *EtcdQDB) ListEntityGroups(ctx context.Context) ([]*EntityGroup, error) {
	egkvlog.Zero.Debug().Msg("etcdqdb: list entity groups")

	resp, err := q.cli.Get(ctx, entityGroupsNamespace, clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}

	groups := make([]*EntityGroup, 0, len(resp.Kvs))
	for _, e := range resp.Kvs {
		var group EntityGroup
		if err := json.Unmarshal(e.Value, &group); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}
	sortEntityGroups(groups)

	return groups, nil
}

func (q *EtcdQDB) LockEntityGroup(ctx context.Context, id string) (*EntityGroup, error) {
	egkvlog.Zero.Debug().
		Str("id", id).
		Msg("etcdqdb: lock entity group")

	lockPath := keyLockPath(entityGroupNodePath(id))

	if err := retry.Do(ctx, retry.WithMaxRetries(7, retry.NewFibonacci(500*time.Millisecond)), func(ctx context.Context) error {
		resp, err := q.cli.Txn(ctx).
			If(clientv3util.KeyMissing(lockPath)).
			Then(clientv3.OpPut(lockPath, "locked")).
			Commit()
		if err != nil {
			return retry.RetryableError(err)
		}
		if !resp.Succeeded {
			return retry.RetryableError(egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v is locked", id))
		}
		return nil
	}); err != nil {
		return nil, err
	}

	group, err := q.GetEntityGroup(ctx, id)
	if err != nil {
		if _, derr := q.cli.Delete(ctx, lockPath); derr != nil {
			egkvlog.Zero.Error().Err(derr).Str("id", id).Msg("etcdqdb: failed to release lock")
		}
		return nil, err
	}
	return group, nil
}

func (q *EtcdQDB) UnlockEntityGroup(ctx context.Context, id string) error {
	egkvlog.Zero.Debug().
		Str("id", id).
		Msg("etcdqdb: unlock entity group")

	lockPath := keyLockPath(entityGroupNodePath(id))

	return retry.Do(ctx, retry.WithMaxRetries(7, retry.NewFibonacci(500*time.Millisecond)), func(ctx context.Context) error {
		resp, err := q.cli.Get(ctx, lockPath, clientv3.WithCountOnly())
		if err != nil {
			return retry.RetryableError(err)
		}

		switch resp.Count {
		case 0:
			return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v not locked", id)
		case 1:
			if _, err := q.cli.Delete(ctx, lockPath); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		default:
			return egerror.Newf(egerror.EGKV_METADATA_CORRUPTION, "too many locks matched: %d", resp.Count)
		}
	})
}

func (q *EtcdQDB) CheckLockedEntityGroup(ctx context.Context, id string) (*EntityGroup, error) {
	egkvlog.Zero.Debug().
		Str("id", id).
		Msg("etcdqdb: check locked entity group")

	resp, err := q.cli.Get(ctx, keyLockPath(entityGroupNodePath(id)), clientv3.WithCountOnly())
	if err != nil {
		return nil, err
	}
	if resp.Count == 0 {
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v not locked", id)
	}

	return q.GetEntityGroup(ctx, id)
}

// ==============================================================================
//                                   SERVERS
// ==============================================================================

func (q *EtcdQDB) AddServer(ctx context.Context, server *Server) error {
	egkvlog.Zero.Debug().
		Interface("server", server).
		Msg("etcdqdb: add server")

	raw, err := json.Marshal(server)
	if err != nil {
		return err
	}

	_, err = q.cli.Put(ctx, serverNodePath(server.ID), string(raw))
	return err
}

func (q *EtcdQDB) GetServer(ctx context.Context, id string) (*Server, error) {
	egkvlog.Zero.Debug().
		Str("id", id).
		Msg("etcdqdb: get server")

	resp, err := q.cli.Get(ctx, serverNodePath(id))
	if err != nil {
		return nil, err
	}
	if len(resp.Kvs) == 0 {
		return nil, egerror.Newf(egerror.EGKV_INVALID_REQUEST, "unknown server %s", id)
	}

	var server Server
	if err := json.Unmarshal(resp.Kvs[0].Value, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

func (q *EtcdQDB) ListServers(ctx context.Context) ([]*Server, error) {
	egkvlog.Zero.Debug().Msg("etcdqdb: list servers")

	resp, err := q.cli.Get(ctx, serversNamespace, clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}

	servers := make([]*Server, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		var server Server
		if err := json.Unmarshal(kv.Value, &server); err != nil {
			return nil, err
		}
		servers = append(servers, &server)
	}
	sort.Slice(servers, func(i, j int) bool {
		return servers[i].ID < servers[j].ID
	})
	return servers, nil
}
