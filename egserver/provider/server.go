package provider

import (
	"github.com/egkv/egkv/egserver/hosting"
	"github.com/egkv/egkv/egserver/scanner"
	"github.com/egkv/egkv/pkg/storage"
)

// Server is the state of one entity-group server shared by its services.
type Server struct {
	ID string

	Hosts    *hosting.Table
	Scanners *scanner.Table
	Engine   *storage.Engine
}

func NewServer(id string, scanners *scanner.Table) *Server {
	s := &Server{
		ID:       id,
		Hosts:    hosting.NewTable(),
		Scanners: scanners,
		Engine:   storage.NewEngine(),
	}
	s.Hosts.OnRelease(func(groupID string) {
		scanners.CloseGroup(groupID)
	})
	return s
}

// Shutdown closes every scanner and stops hosting every group.
func (s *Server) Shutdown() {
	s.Scanners.Shutdown()
	s.Hosts.ReleaseAll()
}
