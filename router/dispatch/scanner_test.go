package dispatch_test

import (
	"context"
	"testing"

	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/router/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func rows(keys ...string) []*protos.Row {
	ret := make([]*protos.Row, 0, len(keys))
	for _, k := range keys {
		ret = append(ret, &protos.Row{Key: []byte(k), Value: []byte("v" + k)})
	}
	return ret
}

func keys(rs []dispatch.Row) []string {
	ret := make([]string, 0, len(rs))
	for _, r := range rs {
		ret = append(ret, string(r.Key))
	}
	return ret
}

func TestScannerCrossesGroups(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	r, source, transport, _ := newRouter(ctrl, fastConfig())
	ctx := context.Background()

	source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).Return(location("eg1", "a", "g", "X"), nil)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("g")).Return(location("eg2", "g", "", "Y"), nil)

	gomock.InOrder(
		transport.EXPECT().OpenScan(gomock.Any(), "X", &protos.OpenScanRequest{EntityGroupId: "eg1", StartKey: []byte("b"), StopKey: []byte("k")}).
			Return(&protos.OpenScanReply{ScannerId: 1, LeaseMs: 1000, UpperBound: []byte("g")}, nil),
		transport.EXPECT().Next(gomock.Any(), "X", &protos.NextRequest{ScannerId: 1, BatchSize: 2, CallSeq: 1}).
			Return(&protos.NextReply{Rows: rows("b", "c")}, nil),
		transport.EXPECT().Next(gomock.Any(), "X", &protos.NextRequest{ScannerId: 1, BatchSize: 2, CallSeq: 2}).
			Return(&protos.NextReply{Rows: rows("f"), EndOfData: true}, nil),
		transport.EXPECT().OpenScan(gomock.Any(), "Y", &protos.OpenScanRequest{EntityGroupId: "eg2", StartKey: []byte("g"), StopKey: []byte("k")}).
			Return(&protos.OpenScanReply{ScannerId: 2, LeaseMs: 1000}, nil),
		transport.EXPECT().Next(gomock.Any(), "Y", &protos.NextRequest{ScannerId: 2, BatchSize: 2, CallSeq: 1}).
			Return(&protos.NextReply{Rows: rows("h"), EndOfData: true}, nil),
	)

	got, err := r.Scan([]byte("b"), []byte("k"), nil, 2).All(ctx)
	require.NoError(t, err)
	assert.Equal([]string{"b", "c", "f", "h"}, keys(got))
	assert.Equal([]byte("vf"), got[2].Value)
}

func TestScannerRestartsAfterLostScanner(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	r, source, transport, _ := newRouter(ctrl, fastConfig())
	ctx := context.Background()

	source.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Return(location("eg1", "", "", "X"), nil).Times(1)

	gomock.InOrder(
		transport.EXPECT().OpenScan(gomock.Any(), "X", &protos.OpenScanRequest{EntityGroupId: "eg1"}).
			Return(&protos.OpenScanReply{ScannerId: 1}, nil),
		transport.EXPECT().Next(gomock.Any(), "X", gomock.Any()).
			Return(&protos.NextReply{Rows: rows("a", "b")}, nil),
		transport.EXPECT().Next(gomock.Any(), "X", gomock.Any()).
			Return(nil, egerror.New(egerror.EGKV_UNKNOWN_SCANNER, "scanner 1 expired")),
		// resumes right after the last row handed out
		transport.EXPECT().OpenScan(gomock.Any(), "X", &protos.OpenScanRequest{EntityGroupId: "eg1", StartKey: []byte("b\x00")}).
			Return(&protos.OpenScanReply{ScannerId: 2}, nil),
		transport.EXPECT().Next(gomock.Any(), "X", &protos.NextRequest{ScannerId: 2, BatchSize: 2, CallSeq: 1}).
			Return(&protos.NextReply{Rows: rows("c"), EndOfData: true}, nil),
	)

	s := r.Scan(nil, nil, nil, 2)
	got, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal([]string{"a", "b", "c"}, keys(got))
	assert.Equal(1, s.Restarts())
}

func TestScannerRestartBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := fastConfig()
	cfg.MaxScanRestarts = -1
	r, source, transport, _ := newRouter(ctrl, cfg)
	ctx := context.Background()

	source.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Return(location("eg1", "", "", "X"), nil)
	transport.EXPECT().OpenScan(gomock.Any(), "X", gomock.Any()).Return(&protos.OpenScanReply{ScannerId: 1}, nil)
	transport.EXPECT().Next(gomock.Any(), "X", gomock.Any()).
		Return(nil, egerror.New(egerror.EGKV_UNKNOWN_SCANNER, "scanner 1 expired"))

	s := r.Scan(nil, nil, nil, 2)
	_, _, err := s.Next(ctx)
	require.Error(t, err)
	assert.True(t, egerror.Is(err, egerror.EGKV_UNKNOWN_SCANNER))
}

func TestScannerCloseReleasesCursor(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	r, source, transport, _ := newRouter(ctrl, fastConfig())
	ctx := context.Background()

	source.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Return(location("eg1", "", "", "X"), nil)
	transport.EXPECT().OpenScan(gomock.Any(), "X", gomock.Any()).Return(&protos.OpenScanReply{ScannerId: 9}, nil)
	transport.EXPECT().Next(gomock.Any(), "X", gomock.Any()).Return(&protos.NextReply{Rows: rows("a", "b")}, nil)
	transport.EXPECT().CloseScan(gomock.Any(), "X", &protos.CloseScanRequest{ScannerId: 9}).Return(&protos.CloseScanReply{}, nil)

	s := r.Scan(nil, nil, nil, 2)
	row, ok, err := s.Next(ctx)
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal("a", string(row.Key))

	require.NoError(t, s.Close(ctx))
	require.NoError(t, s.Close(ctx))

	_, ok, err = s.Next(ctx)
	require.NoError(t, err)
	assert.False(ok)
}
