package gspan

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

import (
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

// Extensions maps every rightmost path extension of a pattern onto the
// occurrence tuples realising it. Iteration follows the ExtendedEdge order.
type Extensions struct {
	tree *redblacktree.Tree
}

func newExtensions() *Extensions {
	return &Extensions{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return dfscode.Compare(a.(dfscode.ExtendedEdge), b.(dfscode.ExtendedEdge))
		}),
	}
}

func (x *Extensions) add(ee dfscode.ExtendedEdge, he hyper.HyperEdge) {
	var occ *hyper.Set
	if o, found := x.tree.Get(ee); found {
		occ = o.(*hyper.Set)
	} else {
		occ = hyper.NewSet(10)
		x.tree.Put(ee, occ)
	}
	occ.Add(he)
}

func (x *Extensions) Size() int {
	return x.tree.Size()
}

func (x *Extensions) Get(ee dfscode.ExtendedEdge) (*hyper.Set, bool) {
	o, found := x.tree.Get(ee)
	if !found {
		return nil, false
	}
	return o.(*hyper.Set), true
}

// Do visits the extensions in order and stops at the first error.
func (x *Extensions) Do(do func(ee dfscode.ExtendedEdge, occ *hyper.Set) error) error {
	it := x.tree.Iterator()
	for it.Next() {
		if err := do(it.Key().(dfscode.ExtendedEdge), it.Value().(*hyper.Set)); err != nil {
			return err
		}
	}
	return nil
}

// FindExtensions computes the extensions of code over g. For the empty code
// these are all the distinct first edges. Otherwise every embedding whose
// tuple is in occ contributes its backward edges from the rightmost vertex and
// its forward edges from the rightmost path. A forward edge extends the parent
// tuple by the new host vertex, a backward edge keeps it.
func FindExtensions(code *dfscode.Code, occ *hyper.Set, g *graph.Graph) (*Extensions, error) {
	exts := newExtensions()
	err := visitExtensions(code, occ, g, func(ee dfscode.ExtendedEdge, he hyper.HyperEdge) {
		exts.add(ee, he)
	})
	if err != nil {
		return nil, err
	}
	return exts, nil
}

// visitExtensions is shared by the support computation and the canonical
// test. A nil occ accepts every embedding.
func visitExtensions(code *dfscode.Code, occ *hyper.Set, g *graph.Graph, do func(dfscode.ExtendedEdge, hyper.HyperEdge)) error {
	if code.Empty() {
		for _, u := range g.Vertices() {
			for _, e := range g.Incident(u.Id) {
				w := e.Another(u.Id)
				if w == u.Id {
					continue
				}
				lw := g.Label(w)
				if u.Label > lw {
					continue
				}
				do(dfscode.NewEdge(0, 1, u.Label, lw, e.Label), hyper.New(u.Id, w))
			}
		}
		return nil
	}
	if code.IsSingleVertex() {
		return nil
	}
	labels := code.VertexLabels()
	rm := code.RightMost()
	next := code.VertexCount()
	path := code.RightMostPath()
	return Isomorphisms(code, g, func(emb []int) error {
		parent := hyper.New(emb...)
		if occ != nil && !occ.Has(parent) {
			return nil
		}
		index := make(map[int]int, len(emb))
		for i, id := range emb {
			index[id] = i
		}
		u := emb[rm]
		for _, e := range g.Incident(u) {
			w := e.Another(u)
			j, mapped := index[w]
			if !mapped || j == rm || !code.OnRightMostPath(j) {
				continue
			}
			if !code.NotPredecessorOfRightMost(j) || code.HasEdge(rm, j) {
				continue
			}
			do(dfscode.NewEdge(rm, j, labels[rm], labels[j], e.Label), parent)
		}
		for _, i := range path {
			u := emb[i]
			for _, e := range g.Incident(u) {
				w := e.Another(u)
				if w == u {
					continue
				}
				if _, mapped := index[w]; mapped {
					continue
				}
				do(dfscode.NewEdge(i, next, labels[i], g.Label(w), e.Label), parent.Extend(w))
			}
		}
		return nil
	})
}
