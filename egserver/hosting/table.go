package hosting

import (
	"bytes"
	"sort"
	"sync"

	"github.com/egkv/egkv/pkg/egkvlog"
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
)

type hostedGroup struct {
	group *eg.EntityGroup

	// held shared by every served operation, exclusively by release
	mu       sync.RWMutex
	released bool
}

// Table holds the entity groups hosted by this server.
type Table struct {
	mu     sync.RWMutex
	groups map[string]*hostedGroup

	onRelease []func(groupID string)
}

func NewTable() *Table {
	return &Table{
		groups: map[string]*hostedGroup{},
	}
}

// OnRelease registers a hook invoked after a group stops being hosted.
func (t *Table) OnRelease(f func(groupID string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onRelease = append(t.onRelease, f)
}

func (t *Table) overlapsLocked(g *eg.EntityGroup, skip map[string]struct{}) *eg.EntityGroup {
	for id, h := range t.groups {
		if _, ok := skip[id]; ok {
			continue
		}
		if h.group.Overlaps(g) {
			return h.group
		}
	}
	return nil
}

// Assign starts hosting g. Assigning the same group twice is a no-op.
func (t *Table) Assign(g *eg.EntityGroup) error {
	if err := g.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.groups[g.ID]; ok {
		if bytes.Equal(h.group.LowerBound, g.LowerBound) && bytes.Equal(h.group.UpperBound, g.UpperBound) {
			return nil
		}
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %s is already hosted as %v", g.ID, h.group)
	}
	if other := t.overlapsLocked(g, nil); other != nil {
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v overlaps hosted %v", g, other)
	}

	t.groups[g.ID] = &hostedGroup{group: g.Clone()}

	egkvlog.Zero.Info().
		Str("entity-group", g.ID).
		Bytes("lower", g.LowerBound).
		Bytes("upper", g.UpperBound).
		Msg("hosting: assigned entity group")
	return nil
}

// Release stops hosting the group. It waits for in-flight operations on the
// group to finish; nothing is served for the group afterwards.
func (t *Table) Release(id string) (*eg.EntityGroup, error) {
	t.mu.Lock()
	h, ok := t.groups[id]
	if !ok {
		t.mu.Unlock()
		return nil, egerror.Newf(egerror.EGKV_ENTITY_GROUP_MISMATCH, "entity group %s is not hosted", id)
	}
	delete(t.groups, id)
	hooks := t.onRelease
	t.mu.Unlock()

	h.mu.Lock()
	h.released = true
	h.mu.Unlock()

	for _, f := range hooks {
		f(id)
	}

	egkvlog.Zero.Info().
		Str("entity-group", id).
		Msg("hosting: released entity group")
	return h.group.Clone(), nil
}

// Replace atomically swaps the groups named by remove for add. The resulting
// set must stay non-overlapping.
func (t *Table) Replace(remove []string, add []*eg.EntityGroup) error {
	for _, g := range add {
		if err := g.Validate(); err != nil {
			return err
		}
	}

	t.mu.Lock()
	skip := map[string]struct{}{}
	removed := make([]*hostedGroup, 0, len(remove))
	for _, id := range remove {
		h, ok := t.groups[id]
		if !ok {
			t.mu.Unlock()
			return egerror.Newf(egerror.EGKV_ENTITY_GROUP_MISMATCH, "entity group %s is not hosted", id)
		}
		skip[id] = struct{}{}
		removed = append(removed, h)
	}
	for i, g := range add {
		if _, ok := skip[g.ID]; !ok {
			if _, ok := t.groups[g.ID]; ok {
				t.mu.Unlock()
				return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %s is already hosted", g.ID)
			}
		}
		if other := t.overlapsLocked(g, skip); other != nil {
			t.mu.Unlock()
			return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity group %v overlaps hosted %v", g, other)
		}
		for _, prev := range add[:i] {
			if prev.Overlaps(g) {
				t.mu.Unlock()
				return egerror.Newf(egerror.EGKV_ENTITY_GROUP_ERROR, "entity groups %v and %v overlap", prev, g)
			}
		}
	}

	// Readers that already picked a removed group observe released after
	// the swap and reject.
	for _, h := range removed {
		h.mu.Lock()
		h.released = true
		h.mu.Unlock()
		delete(t.groups, h.group.ID)
	}
	for _, g := range add {
		t.groups[g.ID] = &hostedGroup{group: g.Clone()}
	}
	hooks := t.onRelease
	t.mu.Unlock()

	for _, h := range removed {
		for _, f := range hooks {
			f(h.group.ID)
		}
	}

	egkvlog.Zero.Info().
		Strs("removed", remove).
		Int("added", len(add)).
		Msg("hosting: replaced entity groups")
	return nil
}

func (t *Table) Lookup(id string) (*eg.EntityGroup, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h, ok := t.groups[id]
	if !ok {
		return nil, false
	}
	return h.group.Clone(), true
}

// List returns hosted groups ordered by lower bound.
func (t *Table) List() []*eg.EntityGroup {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ret := make([]*eg.EntityGroup, 0, len(t.groups))
	for _, h := range t.groups {
		ret = append(ret, h.group.Clone())
	}
	sort.Slice(ret, func(i, j int) bool {
		return bytes.Compare(ret[i].LowerBound, ret[j].LowerBound) < 0
	})
	return ret
}

// ReleaseAll stops hosting every group.
func (t *Table) ReleaseAll() {
	for _, g := range t.List() {
		if _, err := t.Release(g.ID); err != nil {
			egkvlog.Zero.Debug().Err(err).Str("entity-group", g.ID).Msg("hosting: release on shutdown")
		}
	}
}
