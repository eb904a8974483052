package dispatch

import (
	"context"

	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/router/directory"
)

// Transport delivers one request to the server at addr. Errors carry egkv
// codes; it never retries on its own.
type Transport interface {
	Get(ctx context.Context, addr string, in *protos.GetRequest) (*protos.GetReply, error)
	Put(ctx context.Context, addr string, in *protos.PutRequest) (*protos.PutReply, error)
	Delete(ctx context.Context, addr string, in *protos.DeleteRequest) (*protos.DeleteReply, error)
	OpenScan(ctx context.Context, addr string, in *protos.OpenScanRequest) (*protos.OpenScanReply, error)
	Next(ctx context.Context, addr string, in *protos.NextRequest) (*protos.NextReply, error)
	CloseScan(ctx context.Context, addr string, in *protos.CloseScanRequest) (*protos.CloseScanReply, error)
}

// Directory resolves keys to cached locations.
type Directory interface {
	Resolve(ctx context.Context, key []byte) (directory.Entry, error)
	Invalidate(entry directory.Entry) bool
}

var _ Directory = &directory.Directory{}
