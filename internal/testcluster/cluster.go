// Package testcluster runs a coordinator and entity group servers in process
// over bufconn listeners.
package testcluster

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	coordapp "github.com/egkv/egkv/coordinator/app"
	serverapp "github.com/egkv/egkv/egserver/app"
	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/coord"
	"github.com/egkv/egkv/pkg/egkvlog"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/qdb"
	"github.com/egkv/egkv/router"
	"github.com/egkv/egkv/router/grpcclient"
)

const (
	bufSize         = 1 << 20
	coordinatorAddr = "egkv-coordinator"
)

type Options struct {
	Servers       []string
	LeaseDuration time.Duration
	SweepInterval time.Duration
	MaxScanBatch  int
	Router        config.Router
}

type Cluster struct {
	Coordinator *coord.Coordinator
	QDB         *qdb.MemQDB
	Servers     map[string]*serverapp.App
	Client      *router.Client

	listeners map[string]*bufconn.Listener
	pool      *grpcclient.Pool
}

func ServerAddr(id string) string {
	return "egkv-" + id
}

func (c *Cluster) dialer() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, addr string) (net.Conn, error) {
		l, ok := c.listeners[addr]
		if !ok {
			return nil, &net.OpError{Op: "dial", Net: "bufconn", Err: net.UnknownNetworkError(addr)}
		}
		return l.DialContext(ctx)
	})
}

// Start brings up the cluster and waits until every server is registered.
// Everything is stopped when the test ends.
func Start(t testing.TB, opts Options) *Cluster {
	t.Helper()
	require.NoError(t, egkvlog.UpdateZeroLogLevel("error"))

	c := &Cluster{
		Servers:   map[string]*serverapp.App{},
		listeners: map[string]*bufconn.Listener{},
	}
	c.listeners[coordinatorAddr] = bufconn.Listen(bufSize)
	for _, id := range opts.Servers {
		c.listeners[ServerAddr(id)] = bufconn.Listen(bufSize)
	}

	db, err := qdb.NewMemQDB("")
	require.NoError(t, err)
	c.QDB = db
	c.pool = grpcclient.NewPool(grpcclient.WithDialOptions(c.dialer()))
	c.Coordinator = coord.NewCoordinator(db, c.pool, 0)

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return coordapp.NewApp(c.Coordinator).Serve(gctx, c.listeners[coordinatorAddr])
	})

	coordConn, err := grpcclient.Dial(coordinatorAddr, c.dialer())
	require.NoError(t, err)
	location := protos.NewLocationServiceClient(coordConn)

	for _, id := range opts.Servers {
		app := serverapp.NewApp(config.Server{
			ServerID:             id,
			AdvertiseAddr:        ServerAddr(id),
			CoordinatorAddr:      coordinatorAddr,
			ScannerLeaseDuration: opts.LeaseDuration,
			SweeperInterval:      opts.SweepInterval,
			MaxScanBatch:         opts.MaxScanBatch,
		})
		c.Servers[id] = app
		lis := c.listeners[ServerAddr(id)]
		g.Go(func() error {
			return app.Serve(gctx, lis, location)
		})
	}

	rcfg := opts.Router
	rcfg.CoordinatorAddr = coordinatorAddr
	c.Client, err = router.NewClient(rcfg, c.dialer())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Client.Close()
		cancel()
		require.NoError(t, g.Wait())
		_ = coordConn.Close()
		_ = c.pool.Close()
	})

	require.Eventually(t, func() bool {
		servers, err := c.Coordinator.ListServers(context.Background())
		return err == nil && len(servers) == len(opts.Servers)
	}, 5*time.Second, 10*time.Millisecond)

	return c
}

// Conn returns a client connection to the server with the given id.
func (c *Cluster) Conn(id string) protos.EntityGroupServiceClient {
	cc, err := c.pool.Conn(ServerAddr(id))
	if err != nil {
		panic(err)
	}
	return protos.NewEntityGroupServiceClient(cc)
}

// Pool is the connection pool the coordinator uses.
func (c *Cluster) Pool() *grpcclient.Pool {
	return c.pool
}
