package eg_test

import (
	"testing"

	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert := assert.New(t)

	bounded := &eg.EntityGroup{ID: "eg1", LowerBound: []byte("a"), UpperBound: []byte("m")}
	unbounded := &eg.EntityGroup{ID: "eg2", LowerBound: []byte("m")}

	for i, c := range []struct {
		group    *eg.EntityGroup
		key      string
		expected bool
	}{
		{bounded, "a", true},
		{bounded, "b", true},
		{bounded, "lzzz", true},
		{bounded, "m", false},
		{bounded, "", false},
		{unbounded, "m", true},
		{unbounded, "zzzz", true},
		{unbounded, "l", false},
	} {
		assert.Equal(c.expected, c.group.Contains([]byte(c.key)), "test case %d", i)
	}
}

func TestOverlapsAndAdjacent(t *testing.T) {
	assert := assert.New(t)

	left := &eg.EntityGroup{ID: "l", LowerBound: []byte("a"), UpperBound: []byte("g")}
	right := &eg.EntityGroup{ID: "r", LowerBound: []byte("g"), UpperBound: []byte("m")}
	tail := &eg.EntityGroup{ID: "t", LowerBound: []byte("k")}

	assert.False(left.Overlaps(right))
	assert.False(right.Overlaps(left))
	assert.True(right.Overlaps(tail))
	assert.True(tail.Overlaps(right))
	assert.False(left.Overlaps(tail))

	assert.True(left.Adjacent(right))
	assert.False(right.Adjacent(left))
	assert.False(tail.Adjacent(left))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)

	g := &eg.EntityGroup{ID: "eg1", LowerBound: []byte("c"), UpperBound: []byte("m")}

	lo, hi, ok := g.Clamp([]byte("a"), nil)
	assert.True(ok)
	assert.Equal([]byte("c"), lo)
	assert.Equal([]byte("m"), hi)

	lo, hi, ok = g.Clamp([]byte("d"), []byte("f"))
	assert.True(ok)
	assert.Equal([]byte("d"), lo)
	assert.Equal([]byte("f"), hi)

	_, _, ok = g.Clamp([]byte("m"), nil)
	assert.False(ok)

	_, _, ok = g.Clamp([]byte("a"), []byte("c"))
	assert.False(ok)
}

func TestCmpUpper(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, eg.CmpUpper(nil, []byte{}))
	assert.Equal(1, eg.CmpUpper(nil, []byte("z")))
	assert.Equal(-1, eg.CmpUpper([]byte("z"), nil))
	assert.Equal(-1, eg.CmpUpper([]byte("a"), []byte("b")))
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	assert.NoError((&eg.EntityGroup{ID: "eg1", LowerBound: []byte("a")}).Validate())
	assert.Error((&eg.EntityGroup{LowerBound: []byte("a")}).Validate())
	assert.Error((&eg.EntityGroup{ID: "eg1", LowerBound: []byte("m"), UpperBound: []byte("a")}).Validate())
	assert.Error((&eg.EntityGroup{ID: "eg1", LowerBound: []byte("a"), UpperBound: []byte("a")}).Validate())
}

func TestConversions(t *testing.T) {
	assert := assert.New(t)

	g := &eg.EntityGroup{ID: "eg1", LowerBound: []byte("a"), UpperBound: []byte("m"), ServerID: "srv1"}

	assert.Equal(g, eg.EntityGroupFromDB(g.ToDB()))
	assert.Equal(g, eg.EntityGroupFromProto(g.ToProto()))

	loc := &eg.Location{Group: g, ServerAddress: "localhost:7001"}
	assert.Equal(loc, eg.LocationFromProto(loc.ToProto()))
}
