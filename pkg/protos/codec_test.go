package protos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestWireLayout(t *testing.T) {
	// field 1 string, field 2 bytes; zero values are not written
	var want []byte
	want = protowire.AppendTag(want, 1, protowire.BytesType)
	want = protowire.AppendString(want, "eg1")
	want = protowire.AppendTag(want, 2, protowire.BytesType)
	want = protowire.AppendBytes(want, []byte("k"))

	got, err := wireCodec{}.Marshal(&GetRequest{EntityGroupId: "eg1", Key: []byte("k")})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = wireCodec{}.Marshal(&PutReply{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNestedAndRepeated(t *testing.T) {
	assert := assert.New(t)

	in := &ReplaceEntityGroupsRequest{
		Remove: []string{"eg1", "eg2"},
		Add: []*EntityGroupInfo{
			{Id: "eg1", UpperBound: []byte("g"), ServerId: "s1"},
			{Id: "eg3", LowerBound: []byte("g"), ServerId: "s1"},
		},
	}
	data, err := wireCodec{}.Marshal(in)
	require.NoError(t, err)

	out := &ReplaceEntityGroupsRequest{}
	require.NoError(t, wireCodec{}.Unmarshal(data, out))
	assert.Equal(in.Remove, out.Remove)
	require.Len(t, out.Add, 2)
	assert.Nil(out.Add[0].LowerBound)
	assert.Equal([]byte("g"), out.Add[0].UpperBound)
	assert.Nil(out.Add[1].UpperBound, "unbounded above")
}

func TestNegativeInt32(t *testing.T) {
	data, err := wireCodec{}.Marshal(&NextRequest{ScannerId: 7, BatchSize: -1, CallSeq: 3})
	require.NoError(t, err)

	out := &NextRequest{}
	require.NoError(t, wireCodec{}.Unmarshal(data, out))
	assert.Equal(t, &NextRequest{ScannerId: 7, BatchSize: -1, CallSeq: 3}, out)
}

func TestEmptyEmbeddedMessageIsPresent(t *testing.T) {
	data, err := wireCodec{}.Marshal(&OpenScanRequest{EntityGroupId: "eg1", Filter: &FilterSpec{}})
	require.NoError(t, err)

	out := &OpenScanRequest{}
	require.NoError(t, wireCodec{}.Unmarshal(data, out))
	assert.NotNil(t, out.Filter)
}

func TestUnknownFieldsSkipped(t *testing.T) {
	data := protowire.AppendTag(nil, 9, protowire.VarintType)
	data = protowire.AppendVarint(data, 42)
	data = protowire.AppendTag(data, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 5)

	out := &CloseScanRequest{}
	require.NoError(t, wireCodec{}.Unmarshal(data, out))
	assert.Equal(t, uint64(5), out.ScannerId)
}

func TestMalformedInput(t *testing.T) {
	// field 1 of GetRequest is a string, a varint is rejected
	data := protowire.AppendTag(nil, 1, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	assert.ErrorIs(t, wireCodec{}.Unmarshal(data, &GetRequest{}), errWireType)

	// truncated length-delimited value
	data = protowire.AppendTag(nil, 2, protowire.BytesType)
	data = protowire.AppendVarint(data, 10)
	assert.Error(t, wireCodec{}.Unmarshal(data, &GetRequest{}))

	_, err := wireCodec{}.Marshal("not a message")
	assert.Error(t, err)
}
