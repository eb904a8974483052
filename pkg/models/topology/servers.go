package topology

import (
	proto "github.com/egkv/egkv/pkg/protos"
	"github.com/egkv/egkv/qdb"
)

// Server is an entity-group server registered with the coordinator.
type Server struct {
	ID      string
	Address string
}

func NewServer(id, address string) *Server {
	return &Server{
		ID:      id,
		Address: address,
	}
}

func ServerFromDB(s *qdb.Server) *Server {
	return NewServer(s.ID, s.Address)
}

func ServerFromProto(s *proto.ServerInfo) *Server {
	if s == nil {
		return nil
	}
	return NewServer(s.Id, s.Address)
}

func (s *Server) ToDB() *qdb.Server {
	return qdb.NewServer(s.ID, s.Address)
}

func (s *Server) ToProto() *proto.ServerInfo {
	return &proto.ServerInfo{
		Id:      s.ID,
		Address: s.Address,
	}
}
