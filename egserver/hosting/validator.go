package hosting

import (
	"github.com/egkv/egkv/pkg/models/eg"
	"github.com/egkv/egkv/pkg/models/egerror"
)

// Validator decides whether a request for groupID and key may be served
// here. It never mutates hosting state.
type Validator interface {
	Validate(groupID string, key []byte) error
}

var _ Validator = &Table{}

func (t *Table) find(groupID string) *hostedGroup {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.groups[groupID]
}

func mismatch(groupID string, key []byte, h *hostedGroup) error {
	if h == nil {
		return egerror.Newf(egerror.EGKV_ENTITY_GROUP_MISMATCH, "entity group %s is not hosted here", groupID)
	}
	return egerror.Newf(egerror.EGKV_ENTITY_GROUP_MISMATCH, "key %q is outside of entity group %v", key, h.group)
}

// Validate fails with EntityGroupMismatch unless groupID is hosted and its
// range contains key.
func (t *Table) Validate(groupID string, key []byte) error {
	h := t.find(groupID)
	if h == nil || !h.group.Contains(key) {
		return mismatch(groupID, key, h)
	}
	return nil
}

// Guard validates the request and pins the group so it cannot be released
// until done is called.
func (t *Table) Guard(groupID string, key []byte) (group *eg.EntityGroup, done func(), err error) {
	h := t.find(groupID)
	if h == nil || !h.group.Contains(key) {
		return nil, nil, mismatch(groupID, key, h)
	}

	h.mu.RLock()
	if h.released {
		h.mu.RUnlock()
		return nil, nil, mismatch(groupID, key, nil)
	}
	return h.group, h.mu.RUnlock, nil
}
