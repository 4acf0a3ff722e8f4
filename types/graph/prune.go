package graph

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/chenghe-take/MiningByHypertree/stats"
)

// Pruned is what survives the pre-search pruning: the frequent vertex labels
// in ascending order and, for each of them, the vertices that carried it.
type Pruned struct {
	Labels   []int
	Vertices map[int]*set.SortedSet
}

func (p *Pruned) Support(label int) int {
	s, has := p.Vertices[label]
	if !has {
		return 0
	}
	return s.Size()
}

// Prune strips every vertex and edge that cannot be part of a pattern with
// support >= minSup. Vertices are kept per frequent label; an edge is kept
// only if both its label pair and its edge label occur on at least minSup
// edges. The counters of rec are updated and the indices rebuilt.
func Prune(g *Graph, minSup int, rec *stats.Record) (*Pruned, error) {
	p, err := pruneVertices(g, minSup, rec)
	if err != nil {
		return nil, err
	}
	pruneEdges(g, minSup, p.Labels, rec)
	if err := g.Reindex(); err != nil {
		return nil, err
	}
	return p, nil
}

func pruneVertices(g *Graph, minSup int, rec *stats.Record) (*Pruned, error) {
	byLabel := make(map[int]*set.SortedSet)
	for _, v := range g.Vertices() {
		if len(v.edges) == 0 {
			continue
		}
		s, has := byLabel[v.Label]
		if !has {
			s = set.NewSortedSet(10)
			byLabel[v.Label] = s
		}
		if err := s.Add(types.Int(v.Id)); err != nil {
			return nil, err
		}
	}
	labels := make(map[int]bool)
	for _, v := range g.V {
		labels[v.Label] = true
	}
	p := &Pruned{
		Labels:   make([]int, 0, len(byLabel)),
		Vertices: make(map[int]*set.SortedSet, len(byLabel)),
	}
	removed := 0
	for label := range labels {
		s, has := byLabel[label]
		if has && s.Size() >= minSup {
			p.Labels = append(p.Labels, label)
			p.Vertices[label] = s
		} else {
			removed += g.RemoveLabel(label)
		}
	}
	sort.Ints(p.Labels)
	rec.InfrequentVerticesRemoved += removed
	if removed > 0 {
		errors.Logf("INFO", "removed %v vertices with infrequent labels", removed)
		if err := g.Reindex(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func pruneEdges(g *Graph, minSup int, labels []int, rec *stats.Record) {
	pairs := NewPairMatrix(labels)
	edgeLabels := make(map[int]int)
	vertices := g.Vertices()
	for _, v := range vertices {
		for _, idx := range v.edges {
			e := g.E[idx]
			if e.V1 == e.V2 {
				continue
			}
			pairs.Inc(v.Label, g.Label(e.Another(v.Id)))
			edgeLabels[e.Label]++
		}
	}
	pairs.Halve()
	for l := range edgeLabels {
		edgeLabels[l] /= 2
	}
	dropped := pairs.RemoveInfrequent(minSup)

	byPair := 0
	byLabel := 0
	for _, v := range vertices {
		for _, idx := range append([]int(nil), v.edges...) {
			e := g.E[idx]
			if e.V1 == e.V2 {
				continue
			}
			if pairs.Count(v.Label, g.Label(e.Another(v.Id))) < minSup {
				g.RemoveIncidence(v.Id, idx)
				byPair++
			} else if edgeLabels[e.Label] < minSup {
				g.RemoveIncidence(v.Id, idx)
				byLabel++
			}
		}
	}
	rec.InfrequentPairsRemoved += byPair / 2
	rec.EdgesRemovedByLabel += byLabel / 2
	errors.Logf("DEBUG", "pruning matrix dropped %v label pairs, %v edges by pair, %v edges by label",
		dropped, byPair/2, byLabel/2)
}
