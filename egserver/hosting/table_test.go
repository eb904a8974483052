package hosting_test

import (
	"sync"
	"testing"
	"time"

	"github.com/egkv/egkv/egserver/hosting"
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(id, lo, hi string) *eg.EntityGroup {
	g := &eg.EntityGroup{ID: id, LowerBound: []byte(lo), ServerID: "srv1"}
	if hi != "" {
		g.UpperBound = []byte(hi)
	}
	return g
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	table := hosting.NewTable()
	require.NoError(t, table.Assign(group("eg1", "a", "m")))

	assert.NoError(table.Validate("eg1", []byte("a")))
	assert.NoError(table.Validate("eg1", []byte("h")))

	for _, c := range []struct {
		id  string
		key string
	}{
		{"eg1", "m"},
		{"eg1", "0"},
		{"eg2", "b"},
	} {
		err := table.Validate(c.id, []byte(c.key))
		assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_MISMATCH), "%s/%s: %v", c.id, c.key, err)
		assert.True(egerror.Retryable(err))
	}
}

func TestAssignRejectsOverlap(t *testing.T) {
	assert := assert.New(t)

	table := hosting.NewTable()
	require.NoError(t, table.Assign(group("eg1", "a", "m")))

	assert.NoError(table.Assign(group("eg1", "a", "m")))
	assert.Error(table.Assign(group("eg1", "a", "g")))
	assert.Error(table.Assign(group("eg2", "l", "")))
	assert.NoError(table.Assign(group("eg2", "m", "")))

	groups := table.List()
	require.Len(t, groups, 2)
	assert.Equal("eg1", groups[0].ID)
	assert.Equal("eg2", groups[1].ID)
}

func TestSplitReplace(t *testing.T) {
	assert := assert.New(t)

	table := hosting.NewTable()
	require.NoError(t, table.Assign(group("eg1", "a", "m")))

	var released []string
	table.OnRelease(func(id string) { released = append(released, id) })

	require.NoError(t, table.Replace([]string{"eg1"}, []*eg.EntityGroup{
		group("eg1", "a", "g"),
		group("eg2", "g", "m"),
	}))
	assert.Equal([]string{"eg1"}, released)

	assert.True(egerror.Is(table.Validate("eg1", []byte("h")), egerror.EGKV_ENTITY_GROUP_MISMATCH))
	assert.NoError(table.Validate("eg2", []byte("h")))

	err := table.Replace([]string{"eg2"}, []*eg.EntityGroup{group("eg3", "f", "m")})
	assert.Error(err)
	assert.NoError(table.Validate("eg2", []byte("h")))

	err = table.Replace([]string{"missing"}, nil)
	assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_MISMATCH))
}

func TestReleaseWaitsForInFlight(t *testing.T) {
	assert := assert.New(t)

	table := hosting.NewTable()
	require.NoError(t, table.Assign(group("eg1", "a", "m")))

	_, done, err := table.Guard("eg1", []byte("b"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	releasedAt := make(chan time.Time, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := table.Release("eg1")
		assert.NoError(err)
		releasedAt <- time.Now()
	}()

	time.Sleep(50 * time.Millisecond)
	doneAt := time.Now()
	done()
	wg.Wait()

	assert.False((<-releasedAt).Before(doneAt))

	_, _, err = table.Guard("eg1", []byte("b"))
	assert.True(egerror.Is(err, egerror.EGKV_ENTITY_GROUP_MISMATCH))

	_, err = table.Release("eg1")
	assert.Error(err)
}

func TestGuardConcurrentWithRelease(t *testing.T) {
	table := hosting.NewTable()
	require.NoError(t, table.Assign(group("eg1", "a", "m")))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		released bool
		late     int
	)
	table.OnRelease(func(string) {
		mu.Lock()
		released = true
		mu.Unlock()
	})

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, done, err := table.Guard("eg1", []byte("c"))
				if err != nil {
					continue
				}
				mu.Lock()
				if released {
					late++
				}
				mu.Unlock()
				done()
			}
		}()
	}
	_, err := table.Release("eg1")
	require.NoError(t, err)
	wg.Wait()

	assert.Zero(t, late)
}
