package eg

import (
	"bytes"
	"fmt"

	"github.com/egkv/egkv/pkg/models/egerror"
	proto "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/qdb"
)

// EntityGroup is a contiguous key range [LowerBound, UpperBound) owned by
// exactly one server. An empty UpperBound means the range is unbounded above.
type EntityGroup struct {
	ID         string
	LowerBound []byte
	UpperBound []byte
	ServerID   string
}

// CmpUpper compares two upper bounds, treating an empty bound as +inf.
func CmpUpper(a, b []byte) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}
	return bytes.Compare(a, b)
}

// KeyBelowUpper reports key < upper.
func KeyBelowUpper(key, upper []byte) bool {
	return len(upper) == 0 || bytes.Compare(key, upper) < 0
}

func (g *EntityGroup) Contains(key []byte) bool {
	return bytes.Compare(g.LowerBound, key) <= 0 && KeyBelowUpper(key, g.UpperBound)
}

func (g *EntityGroup) Overlaps(other *EntityGroup) bool {
	return KeyBelowUpper(other.LowerBound, g.UpperBound) && KeyBelowUpper(g.LowerBound, other.UpperBound)
}

// Adjacent reports whether other starts exactly where g ends.
func (g *EntityGroup) Adjacent(other *EntityGroup) bool {
	return len(g.UpperBound) != 0 && bytes.Equal(g.UpperBound, other.LowerBound)
}

// Clamp intersects [start, stop) with the group range. An empty stop means
// unbounded. ok is false when the intersection is empty.
func (g *EntityGroup) Clamp(start, stop []byte) (lo, hi []byte, ok bool) {
	lo = start
	if bytes.Compare(lo, g.LowerBound) < 0 {
		lo = g.LowerBound
	}
	hi = stop
	if CmpUpper(g.UpperBound, hi) < 0 {
		hi = g.UpperBound
	}
	if !KeyBelowUpper(lo, hi) {
		return nil, nil, false
	}
	return lo, hi, true
}

func (g *EntityGroup) Validate() error {
	if g.ID == "" {
		return egerror.New(egerror.EGKV_INVALID_REQUEST, "entity group id is empty")
	}
	if !KeyBelowUpper(g.LowerBound, g.UpperBound) {
		return egerror.Newf(egerror.EGKV_INVALID_REQUEST, "entity group %s has empty range [%q, %q)", g.ID, g.LowerBound, g.UpperBound)
	}
	return nil
}

func (g *EntityGroup) String() string {
	if len(g.UpperBound) == 0 {
		return fmt.Sprintf("%s[%q, +inf)@%s", g.ID, g.LowerBound, g.ServerID)
	}
	return fmt.Sprintf("%s[%q, %q)@%s", g.ID, g.LowerBound, g.UpperBound, g.ServerID)
}

func (g *EntityGroup) Clone() *EntityGroup {
	return &EntityGroup{
		ID:         g.ID,
		LowerBound: bytes.Clone(g.LowerBound),
		UpperBound: bytes.Clone(g.UpperBound),
		ServerID:   g.ServerID,
	}
}

func EntityGroupFromDB(g *qdb.EntityGroup) *EntityGroup {
	return &EntityGroup{
		ID:         g.EntityGroupID,
		LowerBound: g.LowerBound,
		UpperBound: g.UpperBound,
		ServerID:   g.ServerID,
	}
}

func EntityGroupFromProto(g *proto.EntityGroupInfo) *EntityGroup {
	if g == nil {
		return nil
	}
	return &EntityGroup{
		ID:         g.Id,
		LowerBound: g.LowerBound,
		UpperBound: g.UpperBound,
		ServerID:   g.ServerId,
	}
}

func (g *EntityGroup) ToDB() *qdb.EntityGroup {
	return &qdb.EntityGroup{
		EntityGroupID: g.ID,
		LowerBound:    g.LowerBound,
		UpperBound:    g.UpperBound,
		ServerID:      g.ServerID,
	}
}

func (g *EntityGroup) ToProto() *proto.EntityGroupInfo {
	return &proto.EntityGroupInfo{
		Id:         g.ID,
		LowerBound: g.LowerBound,
		UpperBound: g.UpperBound,
		ServerId:   g.ServerID,
	}
}

// Location is a resolved entity group together with the address of its
// owning server.
type Location struct {
	Group         *EntityGroup
	ServerAddress string
}

func LocationFromProto(g *proto.EntityGroupInfo) *Location {
	if g == nil {
		return nil
	}
	return &Location{
		Group:         EntityGroupFromProto(g),
		ServerAddress: g.ServerAddress,
	}
}

func (l *Location) ToProto() *proto.EntityGroupInfo {
	info := l.Group.ToProto()
	info.ServerAddress = l.ServerAddress
	return info
}
