package hyper

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/hashtable"
)

// Set is the occurrence set of a pattern. Iteration follows insertion order so
// the greedy support measures are reproducible.
type Set struct {
	items []HyperEdge
	index *hashtable.LinearHash
}

func NewSet(expected int) *Set {
	return &Set{
		items: make([]HyperEdge, 0, expected),
		index: hashtable.NewLinearHash(),
	}
}

func SetOf(hes ...HyperEdge) *Set {
	s := NewSet(len(hes))
	for _, he := range hes {
		s.Add(he)
	}
	return s
}

// Add reports whether he was not already present.
func (s *Set) Add(he HyperEdge) bool {
	if s.index.Has(he) {
		return false
	}
	if err := s.index.Put(he, nil); err != nil {
		panic(err)
	}
	s.items = append(s.items, he)
	return true
}

func (s *Set) Has(he HyperEdge) bool {
	return s.index.Has(he)
}

func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items must not be modified by the caller.
func (s *Set) Items() []HyperEdge {
	if s == nil {
		return nil
	}
	return s.items
}

// Width is the tuple length shared by every member, 0 for an empty set.
func (s *Set) Width() int {
	if s.Size() == 0 {
		return 0
	}
	return s.items[0].Len()
}

// Vertices returns the distinct host ids touched by the set in ascending
// order.
func (s *Set) Vertices() []int {
	seen := make(map[int]bool)
	ids := make([]int, 0, s.Size())
	for _, he := range s.Items() {
		for _, id := range he.ids {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}

func (s *Set) Copy() *Set {
	c := NewSet(s.Size())
	for _, he := range s.Items() {
		c.Add(he)
	}
	return c
}

func (s *Set) String() string {
	items := make([]string, 0, s.Size())
	for _, he := range s.Items() {
		items = append(items, he.String())
	}
	return fmt.Sprintf("{%v}", strings.Join(items, ", "))
}
