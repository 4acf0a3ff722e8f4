package graph

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// PairMatrix counts edges per unordered pair of vertex labels. It is sparse:
// only pairs that were seen hold an entry, keyed by (smaller, larger) label.
// Pairs involving a label outside the frequent set are never counted.
type PairMatrix struct {
	labels map[int]bool
	counts *treemap.Map
}

type labelPair struct {
	a, b int
}

func comparePairs(x, y interface{}) int {
	p := x.(labelPair)
	q := y.(labelPair)
	switch {
	case p.a < q.a:
		return -1
	case p.a > q.a:
		return 1
	case p.b < q.b:
		return -1
	case p.b > q.b:
		return 1
	}
	return 0
}

func NewPairMatrix(labels []int) *PairMatrix {
	set := make(map[int]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return &PairMatrix{
		labels: set,
		counts: treemap.NewWith(comparePairs),
	}
}

func (m *PairMatrix) key(a, b int) (labelPair, bool) {
	if !m.labels[a] || !m.labels[b] {
		return labelPair{}, false
	}
	if b < a {
		a, b = b, a
	}
	return labelPair{a, b}, true
}

func (m *PairMatrix) Inc(a, b int) {
	k, ok := m.key(a, b)
	if !ok {
		return
	}
	c, _ := m.counts.Get(k)
	if c == nil {
		c = 0
	}
	m.counts.Put(k, c.(int)+1)
}

func (m *PairMatrix) Count(a, b int) int {
	k, ok := m.key(a, b)
	if !ok {
		return 0
	}
	c, found := m.counts.Get(k)
	if !found {
		return 0
	}
	return c.(int)
}

// Halve corrects for every edge having been counted from both endpoints.
func (m *PairMatrix) Halve() {
	for _, k := range m.counts.Keys() {
		c, _ := m.counts.Get(k)
		m.counts.Put(k, c.(int)/2)
	}
}

// RemoveInfrequent drops the entries below minSup and returns how many
// non-empty entries were dropped.
func (m *PairMatrix) RemoveInfrequent(minSup int) int {
	dropped := 0
	for _, k := range m.counts.Keys() {
		c, _ := m.counts.Get(k)
		if c.(int) < minSup {
			m.counts.Remove(k)
			if c.(int) > 0 {
				dropped++
			}
		}
	}
	return dropped
}

// Size is the number of label pairs holding a count.
func (m *PairMatrix) Size() int {
	return m.counts.Size()
}
