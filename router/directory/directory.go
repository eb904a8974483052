package directory

import (
	"bytes"
	"context"
	"encoding/hex"
	"sync"
	"time"

	iradix "github.com/hashicorp/go-immutable-radix"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
)

// LocationSource is the authoritative mapping the directory refreshes from.
type LocationSource interface {
	ResolveLocation(ctx context.Context, key []byte) (*eg.Location, error)
}

// Entry is a cached location of one entity group. An empty End means the
// range is unbounded above.
type Entry struct {
	Start         []byte
	End           []byte
	EntityGroupID string
	ServerAddress string
	Generation    uint64
	Stale         bool

	// value of Directory.installs when the entry was installed
	epoch uint64
}

func (e *Entry) Contains(key []byte) bool {
	return bytes.Compare(e.Start, key) <= 0 && eg.KeyBelowUpper(key, e.End)
}

func (e *Entry) overlaps(start, end []byte) bool {
	return eg.KeyBelowUpper(start, e.End) && eg.KeyBelowUpper(e.Start, end)
}

// Entries are indexed by their end bound so that a lower-bound seek on the
// key lands on the only entry that may cover it.
const (
	boundedTag   = 0x01
	unboundedTag = 0x02
)

func indexKey(end []byte) []byte {
	if len(end) == 0 {
		return []byte{unboundedTag}
	}
	return append([]byte{boundedTag}, end...)
}

// seekKey is the index position of key taken as a point, not an end bound.
// The minimum key sorts before every bounded entry.
func seekKey(key []byte) []byte {
	return append([]byte{boundedTag}, key...)
}

type Option func(*Directory)

// WithResolveTimeout bounds a single request to the location source.
func WithResolveTimeout(d time.Duration) Option {
	return func(dir *Directory) {
		dir.resolveTimeout = d
	}
}

// Directory is the client-side cache of entity group locations. Reads never
// take a lock; installs and invalidations are serialized.
type Directory struct {
	source         LocationSource
	resolveTimeout time.Duration

	mu       sync.Mutex
	tree     atomic.Pointer[iradix.Tree]
	installs uint64

	flights singleflight.Group
}

func New(source LocationSource, opts ...Option) *Directory {
	d := &Directory{
		source:         source,
		resolveTimeout: 5 * time.Second,
	}
	d.tree.Store(iradix.New())
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func lookup(tree *iradix.Tree, key []byte) *Entry {
	it := tree.Root().Iterator()
	it.SeekLowerBound(seekKey(key))
	for {
		_, v, ok := it.Next()
		if !ok {
			return nil
		}
		e := v.(*Entry)
		if len(e.End) != 0 && bytes.Equal(e.End, key) {
			continue
		}
		if !e.Contains(key) {
			return nil
		}
		return e
	}
}

// overlapping returns the entries intersecting [start, end) in key order.
func overlapping(tree *iradix.Tree, start, end []byte) []*Entry {
	var ret []*Entry
	it := tree.Root().Iterator()
	it.SeekLowerBound(seekKey(start))
	for {
		_, v, ok := it.Next()
		if !ok {
			return ret
		}
		e := v.(*Entry)
		if !eg.KeyBelowUpper(e.Start, end) {
			return ret
		}
		if e.overlaps(start, end) {
			ret = append(ret, e)
		}
	}
}

func (d *Directory) snapshot() *iradix.Tree {
	return d.tree.Load()
}

// Lookup returns the cached entry covering key, stale or not.
func (d *Directory) Lookup(key []byte) (Entry, bool) {
	e := lookup(d.snapshot(), key)
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

// Resolve returns a live cached entry covering key, refreshing from the
// location source on a miss or when the cached entry is stale.
func (d *Directory) Resolve(ctx context.Context, key []byte) (Entry, error) {
	if e := lookup(d.snapshot(), key); e != nil && !e.Stale {
		return *e, nil
	}
	return d.Refresh(ctx, key)
}

// Invalidate marks the entry stale if the cache still holds the same
// generation for its range. A newer generation is left untouched.
func (d *Directory) Invalidate(entry Entry) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	tree := d.snapshot()
	v, ok := tree.Get(indexKey(entry.End))
	if !ok {
		return false
	}
	cur := v.(*Entry)
	if !bytes.Equal(cur.Start, entry.Start) || cur.Generation != entry.Generation || cur.Stale {
		return false
	}

	stale := *cur
	stale.Stale = true
	tree, _, _ = tree.Insert(indexKey(stale.End), &stale)
	d.tree.Store(tree)

	egkvlog.Zero.Debug().
		Str("entity-group", cur.EntityGroupID).
		Uint64("generation", cur.Generation).
		Msg("directory: invalidated entry")
	return true
}

func flightKey(key []byte, stale *Entry) string {
	if stale != nil {
		return "range:" + hex.EncodeToString(stale.Start) + ":" + hex.EncodeToString(stale.End)
	}
	return "key:" + hex.EncodeToString(key)
}

// Refresh queries the location source for the group covering key and
// installs the result. Concurrent refreshes of the same stale range or of
// the same missing key share one source request.
func (d *Directory) Refresh(ctx context.Context, key []byte) (Entry, error) {
	var stale *Entry
	if e := lookup(d.snapshot(), key); e != nil {
		stale = e
	}

	e, err := d.await(ctx, flightKey(key, stale), key)
	if err != nil {
		return Entry{}, err
	}
	if e.Contains(key) {
		return *e, nil
	}

	// a shared refresh of the old range resolved a different part of it
	e, err = d.await(ctx, flightKey(key, nil), key)
	if err != nil {
		return Entry{}, err
	}
	if !e.Contains(key) {
		return Entry{}, egerror.Newf(egerror.EGKV_DIRECTORY_UNAVAILABLE, "location source returned %s which does not cover key %q", e.EntityGroupID, key)
	}
	return *e, nil
}

func (d *Directory) await(ctx context.Context, flight string, key []byte) (*Entry, error) {
	ch := d.flights.DoChan(flight, func() (any, error) {
		return d.fetch(key)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Entry), nil
	case <-ctx.Done():
		return nil, egerror.Wrap(egerror.EGKV_TIMEOUT, ctx.Err())
	}
}

func (d *Directory) fetch(key []byte) (*Entry, error) {
	d.mu.Lock()
	epoch := d.installs
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), d.resolveTimeout)
	defer cancel()

	loc, err := d.source.ResolveLocation(ctx, key)
	if err != nil {
		egkvlog.Zero.Debug().Err(err).Bytes("key", key).Msg("directory: resolve failed")
		switch egerror.Code(err) {
		case egerror.EGKV_NO_ENTITY_GROUP, egerror.EGKV_INVALID_REQUEST:
			return nil, err
		default:
			return nil, egerror.Wrap(egerror.EGKV_DIRECTORY_UNAVAILABLE, err)
		}
	}
	if loc == nil || loc.Group == nil {
		return nil, egerror.New(egerror.EGKV_DIRECTORY_UNAVAILABLE, "location source returned no entity group")
	}

	return d.install(key, loc, epoch), nil
}

// install replaces every entry overlapping the resolved group with one
// entry for it, unless a refresh that started later already did so.
func (d *Directory) install(key []byte, loc *eg.Location, epoch uint64) *Entry {
	d.mu.Lock()
	defer d.mu.Unlock()

	g := loc.Group
	tree := d.snapshot()
	previous := overlapping(tree, g.LowerBound, g.UpperBound)

	next := &Entry{
		Start:         bytes.Clone(g.LowerBound),
		End:           bytes.Clone(g.UpperBound),
		EntityGroupID: g.ID,
		ServerAddress: loc.ServerAddress,
		Generation:    1,
	}
	for _, e := range previous {
		if e.epoch > epoch {
			// installed while this refresh was in flight, keep the newer data
			egkvlog.Zero.Debug().
				Str("entity-group", g.ID).
				Uint64("generation", e.Generation).
				Msg("directory: discarded outdated refresh")
			if c := lookup(tree, key); c != nil && !c.Stale {
				return c
			}
			return next
		}
		if e.Generation >= next.Generation {
			next.Generation = e.Generation + 1
		}
	}

	txn := tree.Txn()
	for _, e := range previous {
		txn.Delete(indexKey(e.End))
	}
	d.installs++
	next.epoch = d.installs
	txn.Insert(indexKey(next.End), next)
	d.tree.Store(txn.Commit())

	egkvlog.Zero.Debug().
		Str("entity-group", g.ID).
		Str("server", loc.ServerAddress).
		Uint64("generation", next.Generation).
		Int("replaced", len(previous)).
		Msg("directory: installed entry")
	return next
}

// Entries returns a copy of every cached entry in key order.
func (d *Directory) Entries() []Entry {
	var ret []Entry
	it := d.snapshot().Root().Iterator()
	for {
		_, v, ok := it.Next()
		if !ok {
			return ret
		}
		ret = append(ret, *v.(*Entry))
	}
}

func (d *Directory) Len() int {
	return d.snapshot().Len()
}
