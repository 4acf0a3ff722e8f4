package support

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/chenghe-take/MiningByHypertree/stats"
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

// PositionSets returns, for each pattern vertex position, the distinct host
// ids seen there across the occurrence set.
func PositionSets(occ *hyper.Set) []*set.SortedSet {
	sets := make([]*set.SortedSet, 0, occ.Width())
	for i := 0; i < occ.Width(); i++ {
		sets = append(sets, set.NewSortedSet(occ.Size()))
	}
	for _, he := range occ.Items() {
		for i := range sets {
			if err := sets[i].Add(types.Int(he.At(i))); err != nil {
				panic(err)
			}
		}
	}
	return sets
}

// MinNodeImage is the MNI support: the smallest number of distinct host
// vertices mapped to any one pattern vertex.
func MinNodeImage(occ *hyper.Set) int {
	if occ.Size() == 0 {
		return 0
	}
	sets := PositionSets(occ)
	_, size := stats.Min(stats.Srange(len(sets)), func(i int) float64 {
		return float64(sets[i].Size())
	})
	return int(size)
}

// MinInstance refines MNI: for every pair of positions carrying the same
// vertex label it counts the distinct ordered (t[i], t[j]) pairs, and the
// result is the minimum of MNI and all of those counts.
func MinInstance(occ *hyper.Set, code *dfscode.Code) int {
	mni := MinNodeImage(occ)
	if occ.Size() == 0 {
		return mni
	}
	labels := code.VertexLabels()
	width := occ.Width()
	if len(labels) != width {
		panic(errors.Errorf("pattern %v has %v vertices but its occurrences have width %v", code, len(labels), width))
	}
	min := mni
	for i := 0; i < width; i++ {
		for j := i + 1; j < width; j++ {
			if labels[i] != labels[j] {
				continue
			}
			pairs := hyper.NewSet(occ.Size())
			for _, he := range occ.Items() {
				pairs.Add(hyper.New(he.At(i), he.At(j)))
			}
			if pairs.Size() < min {
				min = pairs.Size()
			}
		}
	}
	return min
}

// MinVertexCover is the greedy approximation of the smallest set of host
// vertices touching every occurrence. Each round takes the vertex covering the
// most uncovered occurrences, the smallest id on ties.
func MinVertexCover(occ *hyper.Set) int {
	if occ.Size() == 0 {
		return 0
	}
	items := occ.Items()
	incident := make(map[int][]int)
	count := make(map[int]int)
	for i, he := range items {
		for _, id := range distinct(he) {
			incident[id] = append(incident[id], i)
			count[id]++
		}
	}
	candidates := occ.Vertices()
	covered := make([]bool, len(items))
	uncovered := len(items)
	cover := 0
	for uncovered > 0 {
		arg, _ := stats.Max(candidates, func(id int) float64 {
			return float64(count[id])
		})
		cover++
		for _, i := range incident[arg] {
			if covered[i] {
				continue
			}
			covered[i] = true
			uncovered--
			for _, id := range distinct(items[i]) {
				count[id]--
			}
		}
		candidates = remove(candidates, arg)
	}
	return cover
}

// MaxIndependentSet is the greedy approximation of the largest set of
// pairwise vertex disjoint occurrences, scanned in insertion order.
func MaxIndependentSet(occ *hyper.Set) int {
	if occ.Size() == 0 {
		return 0
	}
	used := set.NewSortedSet(occ.Size() * occ.Width())
	independent := 0
outer:
	for _, he := range occ.Items() {
		for i := 0; i < he.Len(); i++ {
			if used.Has(types.Int(he.At(i))) {
				continue outer
			}
		}
		independent++
		for i := 0; i < he.Len(); i++ {
			if err := used.Add(types.Int(he.At(i))); err != nil {
				panic(err)
			}
		}
	}
	return independent
}

func distinct(he hyper.HyperEdge) []int {
	ids := make([]int, 0, he.Len())
	for i := 0; i < he.Len(); i++ {
		dup := false
		for _, id := range ids {
			if id == he.At(i) {
				dup = true
				break
			}
		}
		if !dup {
			ids = append(ids, he.At(i))
		}
	}
	return ids
}

func remove(ids []int, id int) []int {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
