package protos

import "google.golang.org/protobuf/encoding/protowire"

func (m *EntityGroupInfo) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendBytes(b, 2, m.LowerBound)
	b = appendBytes(b, 3, m.UpperBound)
	b = appendString(b, 4, m.ServerId)
	b = appendString(b, 5, m.ServerAddress)
	return b
}

func (m *EntityGroupInfo) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Id)
	case 2:
		return consumeBytes(typ, b, &m.LowerBound)
	case 3:
		return consumeBytes(typ, b, &m.UpperBound)
	case 4:
		return consumeString(typ, b, &m.ServerId)
	case 5:
		return consumeString(typ, b, &m.ServerAddress)
	}
	return skipField(num, typ, b)
}

func (m *ServerInfo) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Address)
	return b
}

func (m *ServerInfo) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Id)
	case 2:
		return consumeString(typ, b, &m.Address)
	}
	return skipField(num, typ, b)
}

func (m *Row) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.Key)
	b = appendBytes(b, 2, m.Value)
	return b
}

func (m *Row) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeBytes(typ, b, &m.Key)
	case 2:
		return consumeBytes(typ, b, &m.Value)
	}
	return skipField(num, typ, b)
}

func (m *FilterSpec) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.KeyPrefix)
	b = appendBool(b, 2, m.KeysOnly)
	return b
}

func (m *FilterSpec) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeBytes(typ, b, &m.KeyPrefix)
	case 2:
		return consumeBool(typ, b, &m.KeysOnly)
	}
	return skipField(num, typ, b)
}

func (m *GetRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.EntityGroupId)
	b = appendBytes(b, 2, m.Key)
	return b
}

func (m *GetRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.EntityGroupId)
	case 2:
		return consumeBytes(typ, b, &m.Key)
	}
	return skipField(num, typ, b)
}

func (m *GetReply) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.Value)
	b = appendBool(b, 2, m.Found)
	return b
}

func (m *GetReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeBytes(typ, b, &m.Value)
	case 2:
		return consumeBool(typ, b, &m.Found)
	}
	return skipField(num, typ, b)
}

func (m *PutRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.EntityGroupId)
	b = appendBytes(b, 2, m.Key)
	b = appendBytes(b, 3, m.Value)
	return b
}

func (m *PutRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.EntityGroupId)
	case 2:
		return consumeBytes(typ, b, &m.Key)
	case 3:
		return consumeBytes(typ, b, &m.Value)
	}
	return skipField(num, typ, b)
}

func (m *PutReply) appendTo(b []byte) []byte {
	return b
}

func (m *PutReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

func (m *DeleteRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.EntityGroupId)
	b = appendBytes(b, 2, m.Key)
	return b
}

func (m *DeleteRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.EntityGroupId)
	case 2:
		return consumeBytes(typ, b, &m.Key)
	}
	return skipField(num, typ, b)
}

func (m *DeleteReply) appendTo(b []byte) []byte {
	b = appendBool(b, 1, m.Existed)
	return b
}

func (m *DeleteReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeBool(typ, b, &m.Existed)
	}
	return skipField(num, typ, b)
}

func (m *OpenScanRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.EntityGroupId)
	b = appendBytes(b, 2, m.StartKey)
	b = appendBytes(b, 3, m.StopKey)
	if m.Filter != nil {
		b = appendMessage(b, 4, m.Filter)
	}
	return b
}

func (m *OpenScanRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.EntityGroupId)
	case 2:
		return consumeBytes(typ, b, &m.StartKey)
	case 3:
		return consumeBytes(typ, b, &m.StopKey)
	case 4:
		m.Filter = &FilterSpec{}
		return consumeMessage(typ, b, m.Filter)
	}
	return skipField(num, typ, b)
}

func (m *OpenScanReply) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.ScannerId)
	b = appendVarint(b, 2, uint64(m.LeaseMs))
	b = appendBytes(b, 3, m.UpperBound)
	return b
}

func (m *OpenScanReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeUint64(typ, b, &m.ScannerId)
	case 2:
		return consumeInt64(typ, b, &m.LeaseMs)
	case 3:
		return consumeBytes(typ, b, &m.UpperBound)
	}
	return skipField(num, typ, b)
}

func (m *NextRequest) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.ScannerId)
	b = appendVarint(b, 2, int32Varint(m.BatchSize))
	b = appendVarint(b, 3, m.CallSeq)
	return b
}

func (m *NextRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeUint64(typ, b, &m.ScannerId)
	case 2:
		return consumeInt32(typ, b, &m.BatchSize)
	case 3:
		return consumeUint64(typ, b, &m.CallSeq)
	}
	return skipField(num, typ, b)
}

func (m *NextReply) appendTo(b []byte) []byte {
	for _, v := range m.Rows {
		b = appendMessage(b, 1, v)
	}
	b = appendBool(b, 2, m.EndOfData)
	return b
}

func (m *NextReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		v := &Row{}
		m.Rows = append(m.Rows, v)
		return consumeMessage(typ, b, v)
	case 2:
		return consumeBool(typ, b, &m.EndOfData)
	}
	return skipField(num, typ, b)
}

func (m *CloseScanRequest) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, m.ScannerId)
	return b
}

func (m *CloseScanRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeUint64(typ, b, &m.ScannerId)
	}
	return skipField(num, typ, b)
}

func (m *CloseScanReply) appendTo(b []byte) []byte {
	return b
}

func (m *CloseScanReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

func (m *AssignEntityGroupRequest) appendTo(b []byte) []byte {
	if m.Group != nil {
		b = appendMessage(b, 1, m.Group)
	}
	return b
}

func (m *AssignEntityGroupRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		m.Group = &EntityGroupInfo{}
		return consumeMessage(typ, b, m.Group)
	}
	return skipField(num, typ, b)
}

func (m *ReleaseEntityGroupRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendBool(b, 2, m.DropRows)
	return b
}

func (m *ReleaseEntityGroupRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Id)
	case 2:
		return consumeBool(typ, b, &m.DropRows)
	}
	return skipField(num, typ, b)
}

func (m *ReplaceEntityGroupsRequest) appendTo(b []byte) []byte {
	for _, v := range m.Remove {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	for _, v := range m.Add {
		b = appendMessage(b, 2, v)
	}
	return b
}

func (m *ReplaceEntityGroupsRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		var v string
		n, err := consumeString(typ, b, &v)
		m.Remove = append(m.Remove, v)
		return n, err
	case 2:
		v := &EntityGroupInfo{}
		m.Add = append(m.Add, v)
		return consumeMessage(typ, b, v)
	}
	return skipField(num, typ, b)
}

func (m *ListEntityGroupsRequest) appendTo(b []byte) []byte {
	return b
}

func (m *ListEntityGroupsRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

func (m *ListEntityGroupsReply) appendTo(b []byte) []byte {
	for _, v := range m.Groups {
		b = appendMessage(b, 1, v)
	}
	return b
}

func (m *ListEntityGroupsReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		v := &EntityGroupInfo{}
		m.Groups = append(m.Groups, v)
		return consumeMessage(typ, b, v)
	}
	return skipField(num, typ, b)
}

func (m *ExportRowsRequest) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.LowerBound)
	b = appendBytes(b, 2, m.UpperBound)
	b = appendBytes(b, 3, m.After)
	b = appendVarint(b, 4, int32Varint(m.Limit))
	return b
}

func (m *ExportRowsRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeBytes(typ, b, &m.LowerBound)
	case 2:
		return consumeBytes(typ, b, &m.UpperBound)
	case 3:
		return consumeBytes(typ, b, &m.After)
	case 4:
		return consumeInt32(typ, b, &m.Limit)
	}
	return skipField(num, typ, b)
}

func (m *ExportRowsReply) appendTo(b []byte) []byte {
	for _, v := range m.Rows {
		b = appendMessage(b, 1, v)
	}
	b = appendBool(b, 2, m.More)
	return b
}

func (m *ExportRowsReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		v := &Row{}
		m.Rows = append(m.Rows, v)
		return consumeMessage(typ, b, v)
	case 2:
		return consumeBool(typ, b, &m.More)
	}
	return skipField(num, typ, b)
}

func (m *ImportRowsRequest) appendTo(b []byte) []byte {
	for _, v := range m.Rows {
		b = appendMessage(b, 1, v)
	}
	return b
}

func (m *ImportRowsRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		v := &Row{}
		m.Rows = append(m.Rows, v)
		return consumeMessage(typ, b, v)
	}
	return skipField(num, typ, b)
}

func (m *DropRowsRequest) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.LowerBound)
	b = appendBytes(b, 2, m.UpperBound)
	return b
}

func (m *DropRowsRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeBytes(typ, b, &m.LowerBound)
	case 2:
		return consumeBytes(typ, b, &m.UpperBound)
	}
	return skipField(num, typ, b)
}

func (m *DropRowsReply) appendTo(b []byte) []byte {
	b = appendVarint(b, 1, uint64(m.Dropped))
	return b
}

func (m *DropRowsReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeInt64(typ, b, &m.Dropped)
	}
	return skipField(num, typ, b)
}

func (m *ResolveLocationRequest) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.Key)
	return b
}

func (m *ResolveLocationRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeBytes(typ, b, &m.Key)
	}
	return skipField(num, typ, b)
}

func (m *ResolveLocationReply) appendTo(b []byte) []byte {
	if m.Group != nil {
		b = appendMessage(b, 1, m.Group)
	}
	return b
}

func (m *ResolveLocationReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		m.Group = &EntityGroupInfo{}
		return consumeMessage(typ, b, m.Group)
	}
	return skipField(num, typ, b)
}

func (m *RegisterServerRequest) appendTo(b []byte) []byte {
	if m.Server != nil {
		b = appendMessage(b, 1, m.Server)
	}
	return b
}

func (m *RegisterServerRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		m.Server = &ServerInfo{}
		return consumeMessage(typ, b, m.Server)
	}
	return skipField(num, typ, b)
}

func (m *ListServersRequest) appendTo(b []byte) []byte {
	return b
}

func (m *ListServersRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return skipField(num, typ, b)
}

func (m *ListServersReply) appendTo(b []byte) []byte {
	for _, v := range m.Servers {
		b = appendMessage(b, 1, v)
	}
	return b
}

func (m *ListServersReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		v := &ServerInfo{}
		m.Servers = append(m.Servers, v)
		return consumeMessage(typ, b, v)
	}
	return skipField(num, typ, b)
}

func (m *CreateEntityGroupRequest) appendTo(b []byte) []byte {
	if m.Group != nil {
		b = appendMessage(b, 1, m.Group)
	}
	return b
}

func (m *CreateEntityGroupRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		m.Group = &EntityGroupInfo{}
		return consumeMessage(typ, b, m.Group)
	}
	return skipField(num, typ, b)
}

func (m *SplitEntityGroupRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.SourceId)
	b = appendString(b, 2, m.NewId)
	b = appendBytes(b, 3, m.Bound)
	return b
}

func (m *SplitEntityGroupRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.SourceId)
	case 2:
		return consumeString(typ, b, &m.NewId)
	case 3:
		return consumeBytes(typ, b, &m.Bound)
	}
	return skipField(num, typ, b)
}

func (m *UniteEntityGroupsRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.LeftId)
	b = appendString(b, 2, m.RightId)
	return b
}

func (m *UniteEntityGroupsRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.LeftId)
	case 2:
		return consumeString(typ, b, &m.RightId)
	}
	return skipField(num, typ, b)
}

func (m *MoveEntityGroupRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.ServerId)
	return b
}

func (m *MoveEntityGroupRequest) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Id)
	case 2:
		return consumeString(typ, b, &m.ServerId)
	}
	return skipField(num, typ, b)
}

func (m *ModifyReply) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Operation)
	return b
}

func (m *ModifyReply) field(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch num {
	case 1:
		return consumeString(typ, b, &m.Operation)
	}
	return skipField(num, typ, b)
}
