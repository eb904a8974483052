package directory_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	"github.com/egkv/egkv/router/directory"
	"github.com/egkv/egkv/router/directory/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func location(id, lo, hi, addr string) *eg.Location {
	g := &eg.EntityGroup{ID: id, LowerBound: []byte(lo)}
	if hi != "" {
		g.UpperBound = []byte(hi)
	}
	return &eg.Location{Group: g, ServerAddress: addr}
}

func assertNoOverlap(t *testing.T, entries []directory.Entry) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		require.NotEmpty(t, prev.End, "unbounded entry %s is not last", prev.EntityGroupID)
		assert.LessOrEqual(t, bytes.Compare(prev.End, cur.Start), 0, "%s overlaps %s", prev.EntityGroupID, cur.EntityGroupID)
	}
}

func TestResolveCachesEntry(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("c")).Return(location("eg1", "a", "m", "x:1"), nil).Times(1)

	dir := directory.New(source)

	e, err := dir.Resolve(ctx, []byte("c"))
	require.NoError(t, err)
	assert.Equal("eg1", e.EntityGroupID)
	assert.Equal("x:1", e.ServerAddress)
	assert.Equal(uint64(1), e.Generation)
	assert.Equal([]byte("a"), e.Start)
	assert.Equal([]byte("m"), e.End)

	for _, k := range []string{"a", "c", "lzz"} {
		e, err = dir.Resolve(ctx, []byte(k))
		require.NoError(t, err)
		assert.Equal("eg1", e.EntityGroupID)
	}
	assert.Equal(1, dir.Len())
}

func TestResolveBoundaryKeys(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).Return(location("eg1", "a", "m", "x:1"), nil)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("m")).Return(location("eg2", "m", "", "y:1"), nil)

	dir := directory.New(source)

	_, err := dir.Resolve(ctx, []byte("b"))
	require.NoError(t, err)

	e, err := dir.Resolve(ctx, []byte("m"))
	require.NoError(t, err)
	assert.Equal("eg2", e.EntityGroupID)

	e, err = dir.Resolve(ctx, []byte("zzzz"))
	require.NoError(t, err)
	assert.Equal("eg2", e.EntityGroupID)

	_, ok := dir.Lookup([]byte("0"))
	assert.False(ok)
	assertNoOverlap(t, dir.Entries())
}

func TestInvalidateIsCompareAndSwap(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	source := mock.NewMockLocationSource(ctrl)
	gomock.InOrder(
		source.EXPECT().ResolveLocation(gomock.Any(), []byte("c")).Return(location("eg1", "a", "m", "x:1"), nil),
		source.EXPECT().ResolveLocation(gomock.Any(), []byte("c")).Return(location("eg1", "a", "m", "y:1"), nil),
	)

	dir := directory.New(source)

	first, err := dir.Resolve(ctx, []byte("c"))
	require.NoError(t, err)

	assert.True(dir.Invalidate(first))
	assert.False(dir.Invalidate(first), "already stale")

	stale, ok := dir.Lookup([]byte("c"))
	assert.True(ok)
	assert.True(stale.Stale)

	second, err := dir.Resolve(ctx, []byte("c"))
	require.NoError(t, err)
	assert.Equal(uint64(2), second.Generation)
	assert.Equal("y:1", second.ServerAddress)

	// a late invalidation of the old generation must not clobber the new one
	assert.False(dir.Invalidate(first))
	cur, ok := dir.Lookup([]byte("c"))
	assert.True(ok)
	assert.False(cur.Stale)
	assert.Equal(uint64(2), cur.Generation)
}

func TestSplitReplacesWiderEntry(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("c")).Return(location("eg1", "a", "m", "x:1"), nil)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("h")).Return(location("eg2", "g", "m", "y:1"), nil)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).Return(location("eg1", "a", "g", "x:1"), nil)

	dir := directory.New(source)

	wide, err := dir.Resolve(ctx, []byte("c"))
	require.NoError(t, err)
	require.True(t, dir.Invalidate(wide))

	right, err := dir.Resolve(ctx, []byte("h"))
	require.NoError(t, err)
	assert.Equal("eg2", right.EntityGroupID)
	assert.Equal(uint64(2), right.Generation)

	// the wide entry is gone, it must not keep claiming [a, g)
	_, ok := dir.Lookup([]byte("b"))
	assert.False(ok)

	left, err := dir.Resolve(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Equal("eg1", left.EntityGroupID)
	assert.Equal([]byte("g"), left.End)

	entries := dir.Entries()
	assert.Len(entries, 2)
	assertNoOverlap(t, entries)
}

func TestUniteReplacesNarrowEntries(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).Return(location("eg1", "a", "g", "x:1"), nil)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("h")).Return(location("eg2", "g", "m", "x:1"), nil)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).Return(location("eg1", "a", "m", "x:1"), nil)

	dir := directory.New(source)

	left, err := dir.Resolve(ctx, []byte("b"))
	require.NoError(t, err)
	right, err := dir.Resolve(ctx, []byte("h"))
	require.NoError(t, err)
	require.True(t, dir.Invalidate(left))

	united, err := dir.Resolve(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Equal([]byte("m"), united.End)
	assert.Greater(united.Generation, right.Generation)

	entries := dir.Entries()
	assert.Len(entries, 1)
}

func TestMinimumLowerBound(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	source := mock.NewMockLocationSource(ctrl)
	gomock.InOrder(
		source.EXPECT().ResolveLocation(gomock.Any(), []byte("")).Return(location("eg1", "", "g", "x:1"), nil),
		source.EXPECT().ResolveLocation(gomock.Any(), []byte("h")).Return(location("eg2", "g", "m", "x:1"), nil),
		source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).Return(location("eg1", "", "m", "x:1"), nil),
	)

	dir := directory.New(source)

	first, err := dir.Resolve(ctx, []byte(""))
	require.NoError(t, err)
	assert.Equal(uint64(1), first.Generation)

	// served from the cache
	for _, k := range []string{"", "a", "f"} {
		e, err := dir.Resolve(ctx, []byte(k))
		require.NoError(t, err)
		assert.Equal("eg1", e.EntityGroupID)
	}

	right, err := dir.Resolve(ctx, []byte("h"))
	require.NoError(t, err)
	require.True(t, dir.Invalidate(first))

	united, err := dir.Resolve(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Empty(united.Start)
	assert.Equal([]byte("m"), united.End)
	assert.Greater(united.Generation, right.Generation)

	entries := dir.Entries()
	assert.Len(entries, 1)
	assertNoOverlap(t, entries)

	assert.False(dir.Invalidate(first), "old generation")
	cur, ok := dir.Lookup([]byte(""))
	require.True(t, ok)
	assert.False(cur.Stale)
	assert.Equal(united.Generation, cur.Generation)
}

func TestConcurrentRefreshesCoalesce(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gate := make(chan struct{})
	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, key []byte) (*eg.Location, error) {
			<-gate
			return location("eg1", "a", "m", "x:1"), nil
		}).Times(1)

	dir := directory.New(source)

	var wg sync.WaitGroup
	results := make(chan directory.Entry, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := dir.Resolve(ctx, []byte("c"))
			assert.NoError(t, err)
			results <- e
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()
	close(results)

	for e := range results {
		assert.Equal(t, uint64(1), e.Generation)
	}
	assert.Equal(t, 1, dir.Len())
}

func TestSharedRangeRefreshRedoneForOtherKey(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gate := make(chan struct{})
	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("c")).Return(location("eg1", "a", "m", "x:1"), nil)
	source.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, key []byte) (*eg.Location, error) {
			<-gate
			if bytes.Compare(key, []byte("g")) < 0 {
				return location("eg1", "a", "g", "x:1"), nil
			}
			return location("eg2", "g", "m", "y:1"), nil
		}).AnyTimes()

	dir := directory.New(source)
	wide, err := dir.Resolve(ctx, []byte("c"))
	require.NoError(t, err)
	require.True(t, dir.Invalidate(wide))

	var wg sync.WaitGroup
	got := map[string]directory.Entry{}
	var mu sync.Mutex
	for _, k := range []string{"b", "h"} {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			e, err := dir.Resolve(ctx, []byte(k))
			assert.NoError(err)
			mu.Lock()
			got[k] = e
			mu.Unlock()
		}(k)
	}
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal("eg1", got["b"].EntityGroupID)
	assert.Equal("eg2", got["h"].EntityGroupID)
	assertNoOverlap(t, dir.Entries())
}

func TestOutdatedRefreshDiscarded(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	entered := make(chan struct{})
	gate := make(chan struct{})
	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).DoAndReturn(
		func(ctx context.Context, key []byte) (*eg.Location, error) {
			close(entered)
			<-gate
			return location("eg1", "a", "m", "old:1"), nil
		})
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("c")).Return(location("eg1", "a", "m", "new:1"), nil)

	dir := directory.New(source)

	slow := make(chan directory.Entry, 1)
	go func() {
		e, err := dir.Resolve(ctx, []byte("b"))
		assert.NoError(err)
		slow <- e
	}()
	<-entered

	fresh, err := dir.Resolve(ctx, []byte("c"))
	require.NoError(t, err)
	assert.Equal("new:1", fresh.ServerAddress)

	close(gate)
	late := <-slow
	assert.Equal("new:1", late.ServerAddress)

	cur, ok := dir.Lookup([]byte("b"))
	assert.True(ok)
	assert.Equal("new:1", cur.ServerAddress)
	assert.Equal(fresh.Generation, cur.Generation)
}

func TestSourceErrors(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("a")).Return(nil, errors.New("connection refused"))
	source.EXPECT().ResolveLocation(gomock.Any(), []byte("b")).Return(nil, egerror.New(egerror.EGKV_NO_ENTITY_GROUP, "no group"))

	dir := directory.New(source)

	_, err := dir.Resolve(ctx, []byte("a"))
	assert.True(egerror.Is(err, egerror.EGKV_DIRECTORY_UNAVAILABLE))
	assert.True(egerror.Retryable(err))

	_, err = dir.Resolve(ctx, []byte("b"))
	assert.True(egerror.Is(err, egerror.EGKV_NO_ENTITY_GROUP))
	assert.False(egerror.Retryable(err))

	assert.Zero(dir.Len())
}

func TestResolveHonoursCallerContext(t *testing.T) {
	ctrl := gomock.NewController(t)

	gate := make(chan struct{})
	defer close(gate)
	source := mock.NewMockLocationSource(ctrl)
	source.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, key []byte) (*eg.Location, error) {
			<-gate
			return location("eg1", "a", "m", "x:1"), nil
		}).AnyTimes()

	dir := directory.New(source)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := dir.Resolve(ctx, []byte("c"))
	assert.True(t, egerror.Is(err, egerror.EGKV_TIMEOUT))
}

// topology is a location source whose groups are split at random.
type topology struct {
	mu     sync.Mutex
	groups []*eg.EntityGroup
	rnd    *rand.Rand
	nextID int
}

func (tp *topology) ResolveLocation(_ context.Context, key []byte) (*eg.Location, error) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	for _, g := range tp.groups {
		if g.Contains(key) {
			return &eg.Location{Group: g.Clone(), ServerAddress: g.ServerID}, nil
		}
	}
	return nil, egerror.New(egerror.EGKV_NO_ENTITY_GROUP, "no group")
}

func (tp *topology) split() {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	i := tp.rnd.Intn(len(tp.groups))
	g := tp.groups[i]
	lo := byte('a')
	if len(g.LowerBound) > 0 {
		lo = g.LowerBound[0]
	}
	hi := byte('z')
	if len(g.UpperBound) > 0 {
		hi = g.UpperBound[0]
	}
	if hi-lo < 2 {
		return
	}
	bound := []byte{lo + 1 + byte(tp.rnd.Intn(int(hi-lo-1)))}
	tp.nextID++
	right := &eg.EntityGroup{ID: fmt.Sprintf("eg%d", tp.nextID), LowerBound: bound, UpperBound: g.UpperBound, ServerID: fmt.Sprintf("srv%d", tp.rnd.Intn(3))}
	left := &eg.EntityGroup{ID: g.ID, LowerBound: g.LowerBound, UpperBound: bound, ServerID: g.ServerID}
	tp.groups = append(tp.groups[:i], append([]*eg.EntityGroup{left, right}, tp.groups[i+1:]...)...)
}

func TestNoOverlapUnderRandomSplits(t *testing.T) {
	tp := &topology{
		groups: []*eg.EntityGroup{{ID: "eg0", LowerBound: []byte("a"), ServerID: "srv0"}},
		rnd:    rand.New(rand.NewSource(42)),
	}
	dir := directory.New(tp)
	ctx := context.Background()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < 200; i++ {
				key := []byte{byte('a' + rnd.Intn(26))}
				e, err := dir.Resolve(ctx, key)
				if !assert.NoError(t, err) {
					return
				}
				assert.True(t, e.Contains(key))
				if rnd.Intn(3) == 0 {
					dir.Invalidate(e)
				}
			}
		}(int64(w))
	}
	for i := 0; i < 20; i++ {
		tp.split()
		time.Sleep(time.Millisecond)
		assertNoOverlap(t, dir.Entries())
	}
	wg.Wait()
	assertNoOverlap(t, dir.Entries())
}
