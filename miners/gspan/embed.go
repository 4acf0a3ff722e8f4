package gspan

import (
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
)

// Isomorphisms calls do with every embedding of code in g. An embedding maps
// pattern vertex i onto host vertex emb[i]; the slice is reused between calls
// so do must copy it to keep it.
func Isomorphisms(code *dfscode.Code, g *graph.Graph, do func(emb []int) error) error {
	if code.Empty() {
		return nil
	}
	first := code.At(0)
	seeds, err := g.VerticesWithLabel(first.L1)
	if err != nil {
		return err
	}
	m := &matcher{
		code: code,
		g:    g,
		emb:  make([]int, code.VertexCount()),
		used: make(map[int]bool, code.VertexCount()),
		do:   do,
	}
	for _, u := range seeds {
		m.emb[0] = u
		m.used[u] = true
		err := m.match(0)
		delete(m.used, u)
		if err != nil {
			return err
		}
	}
	return nil
}

type matcher struct {
	code *dfscode.Code
	g    *graph.Graph
	emb  []int
	used map[int]bool
	do   func([]int) error
}

func (m *matcher) match(i int) error {
	if i >= m.code.Len() {
		return m.do(m.emb)
	}
	ee := m.code.At(i)
	if ee.V1 == ee.V2 {
		return m.match(i + 1)
	}
	u := m.emb[ee.V1]
	if ee.Backward() {
		v := m.emb[ee.V2]
		for _, e := range m.g.Incident(u) {
			if e.Label == ee.E && e.Another(u) == v && e.V1 != e.V2 {
				return m.match(i + 1)
			}
		}
		return nil
	}
	for _, e := range m.g.Incident(u) {
		v := e.Another(u)
		if e.Label != ee.E || v == u || m.used[v] || m.g.Label(v) != ee.L2 {
			continue
		}
		m.emb[ee.V2] = v
		m.used[v] = true
		err := m.match(i + 1)
		delete(m.used, v)
		if err != nil {
			return err
		}
	}
	return nil
}
