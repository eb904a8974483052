package qdb

import (
	"bytes"
	"sort"
)

func sortEntityGroups(groups []*EntityGroup) {
	sort.Slice(groups, func(i, j int) bool {
		return bytes.Compare(groups[i].LowerBound, groups[j].LowerBound) < 0
	})
}
