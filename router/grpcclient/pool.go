package grpcclient

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
)

// Pool keeps one client connection per server address.
type Pool struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
	opts  []grpc.DialOption
}

type Option func(*Pool)

func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(p *Pool) {
		p.opts = append(p.opts, opts...)
	}
}

func NewPool(opts ...Option) *Pool {
	p := &Pool{
		conns: map[string]*grpc.ClientConn{},
		opts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dial opens a standalone connection to addr with grpc.Dial target
// semantics.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	return grpc.NewClient("passthrough:///"+addr, opts...)
}

func (p *Pool) Conn(addr string) (*grpc.ClientConn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cc, ok := p.conns[addr]; ok {
		return cc, nil
	}
	cc, err := grpc.NewClient("passthrough:///"+addr, p.opts...)
	if err != nil {
		return nil, egerror.Wrap(egerror.EGKV_TRANSPORT, err)
	}
	p.conns[addr] = cc

	egkvlog.Zero.Debug().Str("address", addr).Msg("grpcclient: new connection")
	return cc, nil
}

// Admin returns the administrative client of the server at addr.
func (p *Pool) Admin(addr string) (protos.ServerAdminServiceClient, error) {
	cc, err := p.Conn(addr)
	if err != nil {
		return nil, err
	}
	return protos.NewServerAdminServiceClient(cc), nil
}

func (p *Pool) entityGroups(addr string) (protos.EntityGroupServiceClient, error) {
	cc, err := p.Conn(addr)
	if err != nil {
		return nil, err
	}
	return protos.NewEntityGroupServiceClient(cc), nil
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var ret error
	for addr, cc := range p.conns {
		if err := cc.Close(); err != nil && ret == nil {
			ret = err
		}
		delete(p.conns, addr)
	}
	return ret
}

// Get, Put, Delete, OpenScan, Next and CloseScan call the entity-group
// service of the server at addr and restore egkv errors from the reply.

func (p *Pool) Get(ctx context.Context, addr string, in *protos.GetRequest) (*protos.GetReply, error) {
	c, err := p.entityGroups(addr)
	if err != nil {
		return nil, err
	}
	reply, err := c.Get(ctx, in)
	return reply, egerror.FromGRPC(err)
}

func (p *Pool) Put(ctx context.Context, addr string, in *protos.PutRequest) (*protos.PutReply, error) {
	c, err := p.entityGroups(addr)
	if err != nil {
		return nil, err
	}
	reply, err := c.Put(ctx, in)
	return reply, egerror.FromGRPC(err)
}

func (p *Pool) Delete(ctx context.Context, addr string, in *protos.DeleteRequest) (*protos.DeleteReply, error) {
	c, err := p.entityGroups(addr)
	if err != nil {
		return nil, err
	}
	reply, err := c.Delete(ctx, in)
	return reply, egerror.FromGRPC(err)
}

func (p *Pool) OpenScan(ctx context.Context, addr string, in *protos.OpenScanRequest) (*protos.OpenScanReply, error) {
	c, err := p.entityGroups(addr)
	if err != nil {
		return nil, err
	}
	reply, err := c.OpenScan(ctx, in)
	return reply, egerror.FromGRPC(err)
}

func (p *Pool) Next(ctx context.Context, addr string, in *protos.NextRequest) (*protos.NextReply, error) {
	c, err := p.entityGroups(addr)
	if err != nil {
		return nil, err
	}
	reply, err := c.Next(ctx, in)
	return reply, egerror.FromGRPC(err)
}

func (p *Pool) CloseScan(ctx context.Context, addr string, in *protos.CloseScanRequest) (*protos.CloseScanReply, error) {
	c, err := p.entityGroups(addr)
	if err != nil {
		return nil, err
	}
	reply, err := c.CloseScan(ctx, in)
	return reply, egerror.FromGRPC(err)
}
