package hyper

import (
	"math/rand"
)

import (
	"github.com/chenghe-take/MiningByHypertree/stats"
)

// Hypertree grows a random spanning hypertree over the occurrence hypergraph
// (host ids are vertices, tuples are hyperedges) starting from a uniformly
// chosen vertex. A frontier hyperedge is accepted only when it reaches a
// vertex not yet visited. Only the component of the start vertex is spanned.
func Hypertree(occ *Set, rnd *rand.Rand) *Set {
	if occ.Size() == 0 {
		return NewSet(0)
	}
	items := occ.Items()
	incident := make(map[int][]int)
	for i, he := range items {
		for _, id := range he.ids {
			incident[id] = append(incident[id], i)
		}
	}
	vertices := occ.Vertices()
	start := vertices[rnd.Intn(len(vertices))]

	visited := map[int]bool{start: true}
	accepted := make([]bool, len(items))
	queued := make([]bool, len(items))
	frontier := make([]int, 0, len(incident[start]))
	push := func(id int) {
		for _, i := range incident[id] {
			if !accepted[i] && !queued[i] {
				queued[i] = true
				frontier = append(frontier, i)
			}
		}
	}
	push(start)

	tree := NewSet(len(vertices))
	for len(frontier) > 0 {
		var i int
		frontier, i = stats.Pick(rnd, frontier)
		he := items[i]
		fresh := false
		for _, id := range he.ids {
			if !visited[id] {
				fresh = true
				break
			}
		}
		if !fresh {
			continue
		}
		accepted[i] = true
		tree.Add(he)
		for _, id := range he.ids {
			if !visited[id] {
				visited[id] = true
				push(id)
			}
		}
	}
	return tree
}
