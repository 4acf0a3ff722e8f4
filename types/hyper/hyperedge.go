package hyper

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/types"
)

// HyperEdge is one occurrence of a pattern: the host vertex id occupying each
// pattern vertex position. It is immutable; Extend returns a new tuple.
type HyperEdge struct {
	ids  []int
	hash int
}

func New(ids ...int) HyperEdge {
	cp := make([]int, len(ids))
	copy(cp, ids)
	return HyperEdge{ids: cp, hash: hash(cp)}
}

func hash(ids []int) int {
	h := 0
	for _, id := range ids {
		h = h*31 + id + 1
	}
	return h
}

func (he HyperEdge) Extend(id int) HyperEdge {
	ids := make([]int, len(he.ids)+1)
	copy(ids, he.ids)
	ids[len(he.ids)] = id
	return HyperEdge{ids: ids, hash: he.hash*31 + id + 1}
}

func (he HyperEdge) Len() int {
	return len(he.ids)
}

func (he HyperEdge) At(i int) int {
	return he.ids[i]
}

// Ids returns a copy of the tuple.
func (he HyperEdge) Ids() []int {
	cp := make([]int, len(he.ids))
	copy(cp, he.ids)
	return cp
}

func (he HyperEdge) Contains(id int) bool {
	for _, x := range he.ids {
		if x == id {
			return true
		}
	}
	return false
}

func (he HyperEdge) Equals(o types.Equatable) bool {
	switch b := o.(type) {
	case HyperEdge:
		return he.equals(b)
	case *HyperEdge:
		return he.equals(*b)
	default:
		return false
	}
}

func (he HyperEdge) equals(b HyperEdge) bool {
	if he.hash != b.hash || len(he.ids) != len(b.ids) {
		return false
	}
	for i := range he.ids {
		if he.ids[i] != b.ids[i] {
			return false
		}
	}
	return true
}

func (he HyperEdge) Less(o types.Sortable) bool {
	var b HyperEdge
	switch x := o.(type) {
	case HyperEdge:
		b = x
	case *HyperEdge:
		b = *x
	default:
		return false
	}
	for i := 0; i < len(he.ids) && i < len(b.ids); i++ {
		if he.ids[i] != b.ids[i] {
			return he.ids[i] < b.ids[i]
		}
	}
	return len(he.ids) < len(b.ids)
}

func (he HyperEdge) Hash() int {
	return he.hash
}

func (he HyperEdge) String() string {
	ids := make([]string, 0, len(he.ids))
	for _, id := range he.ids {
		ids = append(ids, fmt.Sprint(id))
	}
	return fmt.Sprintf("<%v>", strings.Join(ids, " "))
}
