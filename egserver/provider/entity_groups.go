package provider

import (
	"context"

	"github.com/egkv/egkv/egserver/scanner"
	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/pkg/storage"
)

type EntityGroupService struct {
	protos.UnimplementedEntityGroupServiceServer

	srv *Server
}

var _ protos.EntityGroupServiceServer = &EntityGroupService{}

func NewEntityGroupService(srv *Server) protos.EntityGroupServiceServer {
	return &EntityGroupService{
		srv: srv,
	}
}

func (s *EntityGroupService) Get(ctx context.Context, request *protos.GetRequest) (*protos.GetReply, error) {
	_, done, err := s.srv.Hosts.Guard(request.EntityGroupId, request.Key)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	defer done()

	value, ok := s.srv.Engine.Get(request.Key)
	return &protos.GetReply{
		Value: value,
		Found: ok,
	}, nil
}

func (s *EntityGroupService) Put(ctx context.Context, request *protos.PutRequest) (*protos.PutReply, error) {
	_, done, err := s.srv.Hosts.Guard(request.EntityGroupId, request.Key)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	defer done()

	s.srv.Engine.Put(request.Key, request.Value)
	return &protos.PutReply{}, nil
}

func (s *EntityGroupService) Delete(ctx context.Context, request *protos.DeleteRequest) (*protos.DeleteReply, error) {
	_, done, err := s.srv.Hosts.Guard(request.EntityGroupId, request.Key)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	defer done()

	return &protos.DeleteReply{
		Existed: s.srv.Engine.Delete(request.Key),
	}, nil
}

type emptyCursor struct{}

func (emptyCursor) Next() (storage.Row, bool) { return storage.Row{}, false }
func (emptyCursor) Close() error              { return nil }

// OpenScan validates the start key against the group and clamps the scan to
// the group range.
func (s *EntityGroupService) OpenScan(ctx context.Context, request *protos.OpenScanRequest) (*protos.OpenScanReply, error) {
	group, done, err := s.srv.Hosts.Guard(request.EntityGroupId, request.StartKey)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}
	defer done()

	var filter scanner.Filter
	if request.Filter != nil {
		filter.KeyPrefix = request.Filter.KeyPrefix
		filter.KeysOnly = request.Filter.KeysOnly
	}

	var cursor scanner.Cursor = emptyCursor{}
	if lo, hi, ok := group.Clamp(request.StartKey, request.StopKey); ok {
		cursor = s.srv.Engine.Snapshot().Iterator(lo, hi)
	}
	sc := s.srv.Scanners.Open(group.ID, cursor, filter)

	egkvlog.Zero.Debug().
		Uint64("scanner", sc.ID).
		Str("entity-group", group.ID).
		Bytes("start", request.StartKey).
		Bytes("stop", request.StopKey).
		Msg("provider: open scan")

	return &protos.OpenScanReply{
		ScannerId:  sc.ID,
		LeaseMs:    sc.LeaseDuration.Milliseconds(),
		UpperBound: group.UpperBound,
	}, nil
}

func (s *EntityGroupService) Next(ctx context.Context, request *protos.NextRequest) (*protos.NextReply, error) {
	batch, err := s.srv.Scanners.Next(request.ScannerId, int(request.BatchSize), request.CallSeq)
	if err != nil {
		return nil, egerror.ToStatus(err)
	}

	rows := make([]*protos.Row, 0, len(batch.Rows))
	for _, r := range batch.Rows {
		rows = append(rows, &protos.Row{
			Key:   r.Key,
			Value: r.Value,
		})
	}
	return &protos.NextReply{
		Rows:      rows,
		EndOfData: batch.EndOfData,
	}, nil
}

func (s *EntityGroupService) CloseScan(ctx context.Context, request *protos.CloseScanRequest) (*protos.CloseScanReply, error) {
	s.srv.Scanners.Close(request.ScannerId)
	return &protos.CloseScanReply{}, nil
}
