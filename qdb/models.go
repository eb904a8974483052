package qdb

type EntityGroup struct {
	EntityGroupID string `json:"entity_group_id"`
	LowerBound    []byte `json:"lower_bound"`
	UpperBound    []byte `json:"upper_bound"`
	ServerID      string `json:"server_id"`
}

type Server struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

func NewServer(id, address string) *Server {
	return &Server{
		ID:      id,
		Address: address,
	}
}

func (g *EntityGroup) Clone() *EntityGroup {
	return &EntityGroup{
		EntityGroupID: g.EntityGroupID,
		LowerBound:    append([]byte(nil), g.LowerBound...),
		UpperBound:    append([]byte(nil), g.UpperBound...),
		ServerID:      g.ServerID,
	}
}
