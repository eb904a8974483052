package coordinator

import (
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/qdb"
)

type Coordinator interface {
	eg.EntityGroupMgr

	QDB() qdb.QDB
}
