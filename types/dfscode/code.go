package dfscode

import (
	"fmt"
	"strings"
)

// NoEdge is the edge label of the placeholder edge that encodes a single
// vertex pattern.
const NoEdge = -1

// Code is a DFS code: the ordered edges of a pattern plus the rightmost
// vertex and the rightmost path, both maintained on Append.
type Code struct {
	edges     []ExtendedEdge
	rightMost int
	rmPath    []int
}

func New() *Code {
	return &Code{
		edges:     make([]ExtendedEdge, 0, 10),
		rightMost: -1,
		rmPath:    make([]int, 0, 10),
	}
}

func FromEdges(edges ...ExtendedEdge) *Code {
	c := New()
	for _, ee := range edges {
		c.Append(ee)
	}
	return c
}

// SingleVertex encodes a one vertex pattern as the edge (0, 0, l, l, NoEdge).
func SingleVertex(label int) *Code {
	return FromEdges(NewEdge(0, 0, label, label, NoEdge))
}

func (c *Code) IsSingleVertex() bool {
	return len(c.edges) == 1 && c.edges[0].V1 == c.edges[0].V2
}

func (c *Code) Append(ee ExtendedEdge) {
	if len(c.edges) == 0 {
		c.rightMost = 1
		c.rmPath = append(c.rmPath, 0, 1)
	} else if ee.Forward() {
		c.rightMost = ee.V2
		for len(c.rmPath) > 0 && c.rmPath[len(c.rmPath)-1] > ee.V1 {
			c.rmPath = c.rmPath[:len(c.rmPath)-1]
		}
		c.rmPath = append(c.rmPath, ee.V2)
	}
	c.edges = append(c.edges, ee)
}

// Copy never shares backing arrays with c, sibling branches of the search
// append to their own copies.
func (c *Code) Copy() *Code {
	edges := make([]ExtendedEdge, len(c.edges), len(c.edges)+1)
	copy(edges, c.edges)
	path := make([]int, len(c.rmPath), len(c.rmPath)+1)
	copy(path, c.rmPath)
	return &Code{
		edges:     edges,
		rightMost: c.rightMost,
		rmPath:    path,
	}
}

func (c *Code) Len() int {
	return len(c.edges)
}

func (c *Code) Empty() bool {
	return len(c.edges) == 0
}

func (c *Code) At(i int) ExtendedEdge {
	return c.edges[i]
}

func (c *Code) Edges() []ExtendedEdge {
	return c.edges
}

func (c *Code) RightMost() int {
	return c.rightMost
}

func (c *Code) RightMostPath() []int {
	return c.rmPath
}

func (c *Code) OnRightMostPath(v int) bool {
	for _, u := range c.rmPath {
		if u == v {
			return true
		}
	}
	return false
}

// NotPredecessorOfRightMost is false only for the vertex directly before the
// rightmost vertex on the rightmost path.
func (c *Code) NotPredecessorOfRightMost(v int) bool {
	if len(c.rmPath) <= 1 {
		return true
	}
	return v != c.rmPath[len(c.rmPath)-2]
}

// HasEdge ignores edge direction and labels.
func (c *Code) HasEdge(a, b int) bool {
	for _, ee := range c.edges {
		if (ee.V1 == a && ee.V2 == b) || (ee.V1 == b && ee.V2 == a) {
			return true
		}
	}
	return false
}

// VertexLabels returns the label of every pattern vertex indexed by its
// discovery position.
func (c *Code) VertexLabels() []int {
	labels := make(map[int]int, len(c.edges)+1)
	for _, ee := range c.edges {
		labels[ee.V1] = ee.L1
		labels[ee.V2] = ee.L2
	}
	list := make([]int, 0, len(labels))
	for i := 0; ; i++ {
		l, has := labels[i]
		if !has {
			break
		}
		list = append(list, l)
	}
	return list
}

func (c *Code) VertexCount() int {
	if len(c.edges) == 0 {
		return 0
	}
	max := 0
	for _, ee := range c.edges {
		if ee.V1 > max {
			max = ee.V1
		}
		if ee.V2 > max {
			max = ee.V2
		}
	}
	return max + 1
}

func (c *Code) Equals(o *Code) bool {
	if len(c.edges) != len(o.edges) {
		return false
	}
	for i := range c.edges {
		if c.edges[i] != o.edges[i] {
			return false
		}
	}
	return true
}

func (c *Code) String() string {
	E := make([]string, 0, len(c.edges))
	for _, ee := range c.edges {
		E = append(E, ee.String())
	}
	return fmt.Sprintf("DFSCode{%v}", strings.Join(E, " "))
}
