package dfscode

import "testing"
import "github.com/stretchr/testify/assert"

func TestRightMostPath(t *testing.T) {
	x := assert.New(t)
	c := New()
	c.Append(NewEdge(0, 1, 1, 2, 0))
	x.Equal(1, c.RightMost())
	x.Equal([]int{0, 1}, c.RightMostPath())
	c.Append(NewEdge(1, 2, 2, 3, 0))
	x.Equal(2, c.RightMost())
	x.Equal([]int{0, 1, 2}, c.RightMostPath())
	c.Append(NewEdge(2, 0, 3, 1, 0))
	x.Equal(2, c.RightMost(), "backward edges do not move the rightmost vertex")
	x.Equal([]int{0, 1, 2}, c.RightMostPath())
	c.Append(NewEdge(1, 3, 2, 4, 0))
	x.Equal(3, c.RightMost())
	x.Equal([]int{0, 1, 3}, c.RightMostPath())
	c.Append(NewEdge(0, 4, 1, 5, 0))
	x.Equal([]int{0, 4}, c.RightMostPath())
	x.True(c.OnRightMostPath(0))
	x.False(c.OnRightMostPath(3))
	x.False(c.NotPredecessorOfRightMost(0))
	x.True(c.NotPredecessorOfRightMost(4))
	x.Equal([]int{1, 2, 3, 4, 5}, c.VertexLabels())
	x.Equal(5, c.VertexCount())
}

func TestCopyIsolated(t *testing.T) {
	x := assert.New(t)
	c := FromEdges(NewEdge(0, 1, 1, 1, 0), NewEdge(1, 2, 1, 1, 0))
	a := c.Copy()
	b := c.Copy()
	a.Append(NewEdge(2, 0, 1, 1, 0))
	b.Append(NewEdge(0, 3, 1, 1, 0))
	x.Equal(2, c.Len())
	x.Equal(NewEdge(2, 0, 1, 1, 0), a.At(2))
	x.Equal(NewEdge(0, 3, 1, 1, 0), b.At(2))
	x.Equal([]int{0, 1, 2}, a.RightMostPath())
	x.Equal([]int{0, 3}, b.RightMostPath())
	x.Equal([]int{0, 1, 2}, c.RightMostPath())
}

func TestSingleVertex(t *testing.T) {
	x := assert.New(t)
	c := SingleVertex(7)
	x.True(c.IsSingleVertex())
	x.Equal([]int{7}, c.VertexLabels())
	x.Equal(1, c.VertexCount())
	x.False(FromEdges(NewEdge(0, 1, 7, 7, 1)).IsSingleVertex())
}

func TestHasEdge(t *testing.T) {
	x := assert.New(t)
	c := FromEdges(NewEdge(0, 1, 1, 2, 0), NewEdge(1, 2, 2, 3, 0))
	x.True(c.HasEdge(1, 0))
	x.True(c.HasEdge(1, 2))
	x.False(c.HasEdge(0, 2))
}

func TestOrderBackwardBeforeForward(t *testing.T) {
	x := assert.New(t)
	back := NewEdge(3, 0, 9, 9, 9)
	fwd := NewEdge(3, 4, 0, 0, 0)
	x.True(back.Less(fwd))
	x.False(fwd.Less(back))
	x.True(NewEdge(3, 0, 1, 1, 1).Less(NewEdge(3, 1, 1, 1, 1)))
	x.True(NewEdge(3, 4, 1, 1, 1).Less(NewEdge(1, 4, 1, 1, 1)), "deeper growth point first")
	x.True(NewEdge(0, 1, 5, 1, 3).Less(NewEdge(0, 1, 1, 2, 0)), "L2 before E and L1")
	x.True(NewEdge(0, 1, 5, 2, 0).Less(NewEdge(0, 1, 1, 2, 1)), "E before L1")
	x.True(NewEdge(0, 1, 1, 2, 1).Less(NewEdge(0, 1, 5, 2, 1)))
}

func TestOrderIsTotal(t *testing.T) {
	x := assert.New(t)
	edges := make([]ExtendedEdge, 0, 200)
	for _, vs := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 0}, {2, 1}, {3, 1}, {3, 0}} {
		for l1 := 0; l1 < 2; l1++ {
			for l2 := 0; l2 < 2; l2++ {
				for e := 0; e < 2; e++ {
					edges = append(edges, NewEdge(vs[0], vs[1], l1, l2, e))
				}
			}
		}
	}
	for _, a := range edges {
		x.False(a.Less(a))
		for _, b := range edges {
			if a != b {
				x.True(a.Less(b) != b.Less(a), "%v %v", a, b)
			}
			for _, c := range edges {
				if a.Less(b) && b.Less(c) {
					x.True(a.Less(c), "%v %v %v", a, b, c)
				}
			}
		}
	}
}
