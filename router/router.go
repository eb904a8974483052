package router

import (
	"google.golang.org/grpc"

	"github.com/egkv/egkv/pkg/config"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/router/directory"
	"github.com/egkv/egkv/router/dispatch"
	"github.com/egkv/egkv/router/grpcclient"
)

var _ dispatch.Transport = &grpcclient.Pool{}

// Client is the client-side routing stack: a location directory fed by the
// coordinator and a router sending requests over pooled connections.
type Client struct {
	*dispatch.Router

	Directory *directory.Directory
	Location  *grpcclient.LocationClient
	Pool      *grpcclient.Pool

	coordinator *grpc.ClientConn
}

// NewClient connects to cfg.CoordinatorAddr. opts are applied to the
// coordinator connection and to every server connection.
func NewClient(cfg config.Router, opts ...grpc.DialOption) (*Client, error) {
	cfg.ApplyDefaults()

	cc, err := grpcclient.Dial(cfg.CoordinatorAddr, opts...)
	if err != nil {
		return nil, err
	}

	location := grpcclient.NewLocationClient(cc)
	pool := grpcclient.NewPool(grpcclient.WithDialOptions(opts...))
	dir := directory.New(location, directory.WithResolveTimeout(cfg.ResolveTimeout))

	egkvlog.Zero.Debug().
		Str("coordinator", cfg.CoordinatorAddr).
		Int("max-retries", cfg.MaxRetries).
		Msg("router: client created")

	return &Client{
		Router:      dispatch.NewRouter(dir, pool, cfg),
		Directory:   dir,
		Location:    location,
		Pool:        pool,
		coordinator: cc,
	}, nil
}

func (c *Client) Close() error {
	err := c.Pool.Close()
	if cerr := c.coordinator.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
