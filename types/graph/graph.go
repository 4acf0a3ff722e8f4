package graph

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
)

type Vertex struct {
	Id    int
	Label int
	edges []int // indices into Graph.E
}

// Edge is an undirected labeled edge. Two edges are equal when they join the
// same vertices with the same label, regardless of the order the endpoints
// were given in.
type Edge struct {
	V1, V2 int
	Label  int
}

func NewEdge(v1, v2, label int) Edge {
	if v2 < v1 {
		v1, v2 = v2, v1
	}
	return Edge{V1: v1, V2: v2, Label: label}
}

func (e Edge) Another(v int) int {
	if v == e.V1 {
		return e.V2
	}
	return e.V1
}

// Graph is the single host graph. Vertices own lists of indices into the edge
// arena so an edge is shared by both of its endpoints. The neighbor and label
// indices are rebuilt lazily after any removal.
type Graph struct {
	Id       int
	Support  int // set for pattern blocks read back from a report, -1 otherwise
	V        map[int]*Vertex
	E        []Edge
	stale    bool
	nbrs     map[int][]int
	edgeSet  map[Edge]bool
	labels   LabelIndex
	newIndex IndexFactory
}

func New(id int) *Graph {
	return &Graph{
		Id:       id,
		Support:  -1,
		V:        make(map[int]*Vertex),
		E:        make([]Edge, 0, 10),
		stale:    true,
		newIndex: MemoryIndex,
	}
}

// FromCode builds a graph out of a pattern's own edges: pattern vertex i
// becomes host vertex i.
func FromCode(c *dfscode.Code) (*Graph, error) {
	g := New(0)
	for i, l := range c.VertexLabels() {
		if err := g.AddVertex(i, l); err != nil {
			return nil, err
		}
	}
	for _, ee := range c.Edges() {
		if ee.V1 == ee.V2 {
			continue
		}
		if err := g.AddEdge(ee.V1, ee.V2, ee.E); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// SetLabelIndex changes the backing store of the label index. The index is
// rebuilt on the next query.
func (g *Graph) SetLabelIndex(f IndexFactory) error {
	if err := g.closeIndex(); err != nil {
		return err
	}
	g.newIndex = f
	g.stale = true
	return nil
}

func (g *Graph) AddVertex(id, label int) error {
	if _, has := g.V[id]; has {
		return errors.Errorf("duplicate vertex id %v", id)
	}
	g.V[id] = &Vertex{Id: id, Label: label, edges: make([]int, 0, 5)}
	g.stale = true
	return nil
}

func (g *Graph) AddEdge(v1, v2, label int) error {
	u, has := g.V[v1]
	if !has {
		return errors.Errorf("edge (%v, %v) references unknown vertex %v", v1, v2, v1)
	}
	v, has := g.V[v2]
	if !has {
		return errors.Errorf("edge (%v, %v) references unknown vertex %v", v1, v2, v2)
	}
	idx := len(g.E)
	g.E = append(g.E, Edge{V1: v1, V2: v2, Label: label})
	u.edges = append(u.edges, idx)
	if v1 != v2 {
		v.edges = append(v.edges, idx)
	}
	g.stale = true
	return nil
}

func (g *Graph) Vertex(id int) (*Vertex, bool) {
	v, has := g.V[id]
	return v, has
}

// Vertices returns the live vertices ordered by id.
func (g *Graph) Vertices() []*Vertex {
	ids := make([]int, 0, len(g.V))
	for id := range g.V {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	vs := make([]*Vertex, 0, len(ids))
	for _, id := range ids {
		vs = append(vs, g.V[id])
	}
	return vs
}

func (g *Graph) Label(id int) int {
	return g.V[id].Label
}

// Incident returns the live edges touching vertex id.
func (g *Graph) Incident(id int) []Edge {
	v, has := g.V[id]
	if !has {
		return nil
	}
	edges := make([]Edge, 0, len(v.edges))
	for _, idx := range v.edges {
		edges = append(edges, g.E[idx])
	}
	return edges
}

func (g *Graph) Degree(id int) int {
	v, has := g.V[id]
	if !has {
		return 0
	}
	return len(v.edges)
}

func (g *Graph) Neighbors(id int) ([]int, error) {
	if err := g.index(); err != nil {
		return nil, err
	}
	return g.nbrs[id], nil
}

func (g *Graph) HasEdge(u, v, label int) (bool, error) {
	if err := g.index(); err != nil {
		return false, err
	}
	return g.edgeSet[NewEdge(u, v, label)], nil
}

func (g *Graph) Connected(u, v int) bool {
	_, has := g.EdgeLabel(u, v)
	return has
}

// EdgeLabel returns the label of the first live edge joining u and v.
func (g *Graph) EdgeLabel(u, v int) (int, bool) {
	vertex, has := g.V[u]
	if !has {
		return 0, false
	}
	for _, idx := range vertex.edges {
		e := g.E[idx]
		if (e.V1 == u && e.V2 == v) || (e.V1 == v && e.V2 == u) {
			return e.Label, true
		}
	}
	return 0, false
}

func (g *Graph) VerticesWithLabel(label int) ([]int, error) {
	if err := g.index(); err != nil {
		return nil, err
	}
	ids := make([]int, 0, 10)
	err := g.labels.DoFind(int32(label), func(_, id int32) error {
		ids = append(ids, int(id))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// RemoveIncidence detaches edge idx from vertex id only. The other endpoint
// keeps its reference until it is removed there as well.
func (g *Graph) RemoveIncidence(id, idx int) {
	v := g.V[id]
	for i, e := range v.edges {
		if e == idx {
			copy(v.edges[i:], v.edges[i+1:])
			v.edges = v.edges[:len(v.edges)-1]
			break
		}
	}
	g.stale = true
}

// RemoveEdge detaches edge idx from both endpoints.
func (g *Graph) RemoveEdge(idx int) {
	e := g.E[idx]
	if _, has := g.V[e.V1]; has {
		g.RemoveIncidence(e.V1, idx)
	}
	if _, has := g.V[e.V2]; has && e.V1 != e.V2 {
		g.RemoveIncidence(e.V2, idx)
	}
}

// RemoveLabel deletes every vertex carrying label together with its edges
// and returns how many vertices were removed.
func (g *Graph) RemoveLabel(label int) int {
	removed := 0
	for _, v := range g.Vertices() {
		if v.Label != label {
			continue
		}
		for _, idx := range append([]int(nil), v.edges...) {
			g.RemoveEdge(idx)
		}
		delete(g.V, v.Id)
		removed++
	}
	if removed > 0 {
		g.stale = true
	}
	return removed
}

// Reindex recomputes the neighbor, edge and label indices now.
func (g *Graph) Reindex() error {
	g.stale = true
	return g.index()
}

func (g *Graph) index() error {
	if !g.stale {
		return nil
	}
	if err := g.closeIndex(); err != nil {
		return err
	}
	labels, err := g.newIndex()
	if err != nil {
		return err
	}
	g.nbrs = make(map[int][]int, len(g.V))
	g.edgeSet = make(map[Edge]bool, len(g.E))
	for _, v := range g.Vertices() {
		if err := labels.Add(int32(v.Label), int32(v.Id)); err != nil {
			return err
		}
		seen := make(map[int]bool, len(v.edges))
		nbrs := make([]int, 0, len(v.edges))
		for _, idx := range v.edges {
			e := g.E[idx]
			g.edgeSet[NewEdge(e.V1, e.V2, e.Label)] = true
			u := e.Another(v.Id)
			if !seen[u] {
				seen[u] = true
				nbrs = append(nbrs, u)
			}
		}
		sort.Ints(nbrs)
		g.nbrs[v.Id] = nbrs
	}
	g.labels = labels
	g.stale = false
	return nil
}

func (g *Graph) closeIndex() error {
	if g.labels == nil {
		return nil
	}
	err := g.labels.Close()
	g.labels = nil
	return err
}

func (g *Graph) Close() error {
	return g.closeIndex()
}

// Edges returns every live edge once, ordered by arena index.
func (g *Graph) Edges() []Edge {
	live := make(map[int]bool)
	for _, v := range g.V {
		for _, idx := range v.edges {
			live[idx] = true
		}
	}
	edges := make([]Edge, 0, len(live))
	for idx, e := range g.E {
		if live[idx] {
			edges = append(edges, e)
		}
	}
	return edges
}

func (g *Graph) String() string {
	V := make([]string, 0, len(g.V))
	E := make([]string, 0, len(g.E))
	for _, v := range g.Vertices() {
		V = append(V, fmt.Sprintf("(%v:%v)", v.Id, v.Label))
	}
	for _, e := range g.Edges() {
		E = append(E, fmt.Sprintf("[%v-%v:%v]", e.V1, e.V2, e.Label))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(E), len(V), strings.Join(V, ""), strings.Join(E, ""))
}
