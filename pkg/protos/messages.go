package protos

type EntityGroupInfo struct {
	Id            string `json:"id"`
	LowerBound    []byte `json:"lower_bound,omitempty"`
	UpperBound    []byte `json:"upper_bound,omitempty"`
	ServerId      string `json:"server_id"`
	ServerAddress string `json:"server_address,omitempty"`
}

type ServerInfo struct {
	Id      string `json:"id"`
	Address string `json:"address"`
}

type Row struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value,omitempty"`
}

type FilterSpec struct {
	KeyPrefix []byte `json:"key_prefix,omitempty"`
	KeysOnly  bool   `json:"keys_only,omitempty"`
}

type GetRequest struct {
	EntityGroupId string `json:"entity_group_id"`
	Key           []byte `json:"key"`
}

type GetReply struct {
	Value []byte `json:"value,omitempty"`
	Found bool   `json:"found"`
}

type PutRequest struct {
	EntityGroupId string `json:"entity_group_id"`
	Key           []byte `json:"key"`
	Value         []byte `json:"value"`
}

type PutReply struct{}

type DeleteRequest struct {
	EntityGroupId string `json:"entity_group_id"`
	Key           []byte `json:"key"`
}

type DeleteReply struct {
	Existed bool `json:"existed"`
}

type OpenScanRequest struct {
	EntityGroupId string      `json:"entity_group_id"`
	StartKey      []byte      `json:"start_key,omitempty"`
	StopKey       []byte      `json:"stop_key,omitempty"`
	Filter        *FilterSpec `json:"filter,omitempty"`
}

type OpenScanReply struct {
	ScannerId  uint64 `json:"scanner_id"`
	LeaseMs    int64  `json:"lease_ms"`
	UpperBound []byte `json:"upper_bound,omitempty"`
}

type NextRequest struct {
	ScannerId uint64 `json:"scanner_id"`
	BatchSize int32  `json:"batch_size"`
	CallSeq   uint64 `json:"call_seq"`
}

type NextReply struct {
	Rows      []*Row `json:"rows,omitempty"`
	EndOfData bool   `json:"end_of_data"`
}

type CloseScanRequest struct {
	ScannerId uint64 `json:"scanner_id"`
}

type CloseScanReply struct{}

type AssignEntityGroupRequest struct {
	Group *EntityGroupInfo `json:"group"`
}

type ReleaseEntityGroupRequest struct {
	Id       string `json:"id"`
	DropRows bool   `json:"drop_rows"`
}

type ReplaceEntityGroupsRequest struct {
	Remove []string           `json:"remove"`
	Add    []*EntityGroupInfo `json:"add"`
}

type ListEntityGroupsRequest struct{}

type ListEntityGroupsReply struct {
	Groups []*EntityGroupInfo `json:"groups"`
}

type ExportRowsRequest struct {
	LowerBound []byte `json:"lower_bound,omitempty"`
	UpperBound []byte `json:"upper_bound,omitempty"`
	After      []byte `json:"after,omitempty"`
	Limit      int32  `json:"limit"`
}

type ExportRowsReply struct {
	Rows []*Row `json:"rows,omitempty"`
	More bool   `json:"more"`
}

type ImportRowsRequest struct {
	Rows []*Row `json:"rows"`
}

type DropRowsRequest struct {
	LowerBound []byte `json:"lower_bound,omitempty"`
	UpperBound []byte `json:"upper_bound,omitempty"`
}

type DropRowsReply struct {
	Dropped int64 `json:"dropped"`
}

type ResolveLocationRequest struct {
	Key []byte `json:"key"`
}

type ResolveLocationReply struct {
	Group *EntityGroupInfo `json:"group"`
}

type RegisterServerRequest struct {
	Server *ServerInfo `json:"server"`
}

type ListServersRequest struct{}

type ListServersReply struct {
	Servers []*ServerInfo `json:"servers"`
}

type CreateEntityGroupRequest struct {
	Group *EntityGroupInfo `json:"group"`
}

type SplitEntityGroupRequest struct {
	SourceId string `json:"source_id"`
	NewId    string `json:"new_id,omitempty"`
	Bound    []byte `json:"bound"`
}

type UniteEntityGroupsRequest struct {
	LeftId  string `json:"left_id"`
	RightId string `json:"right_id"`
}

type MoveEntityGroupRequest struct {
	Id       string `json:"id"`
	ServerId string `json:"server_id"`
}

type ModifyReply struct {
	Operation string `json:"operation,omitempty"`
}
