package datatransfers

import (
	"bytes"
	"context"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	protos "github.com/egkv/egkv/pkg/protos"
)

const DefaultBatchSize = 512

/*
MoveRows copies the rows of group from one server to another.
It is assumed that group is already released on the source server, so no
writes to its range happen while the copy is running.

Steps:
  - page through the group's range on the source with ExportRows
  - write every page to the destination with ImportRows

Rows are left on the source; the caller drops them once the destination
owns the group.
*/
func MoveRows(ctx context.Context, from, to protos.ServerAdminServiceClient, group *eg.EntityGroup, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var (
		after []byte
		moved int
	)
	for {
		page, err := from.ExportRows(ctx, &protos.ExportRowsRequest{
			LowerBound: group.LowerBound,
			UpperBound: group.UpperBound,
			After:      after,
			Limit:      int32(batchSize),
		})
		if err != nil {
			egkvlog.Zero.Error().Err(err).Str("entity-group", group.ID).Msg("datatransfers: export failed")
			return moved, egerror.FromGRPC(err)
		}

		if len(page.Rows) > 0 {
			last := page.Rows[len(page.Rows)-1].Key
			if after != nil && bytes.Compare(last, after) <= 0 {
				return moved, egerror.Newf(egerror.EGKV_UNEXPECTED, "export of %s did not advance past %q", group.ID, after)
			}
			if _, err := to.ImportRows(ctx, &protos.ImportRowsRequest{Rows: page.Rows}); err != nil {
				egkvlog.Zero.Error().Err(err).Str("entity-group", group.ID).Msg("datatransfers: import failed")
				return moved, egerror.FromGRPC(err)
			}
			moved += len(page.Rows)
			after = last
		}

		egkvlog.Zero.Debug().
			Str("entity-group", group.ID).
			Int("rows", len(page.Rows)).
			Int("moved", moved).
			Msg("datatransfers: copied page")

		if !page.More || len(page.Rows) == 0 {
			return moved, nil
		}
	}
}
