package graph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
)

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

func TestFormatRoundTrip(t *testing.T) {
	x := assert.New(t)
	tri := lattice.NewPattern(0, dfscode.FromEdges(
		dfscode.NewEdge(0, 1, 1, 1, 2),
		dfscode.NewEdge(1, 2, 1, 3, 4),
		dfscode.NewEdge(2, 0, 3, 1, 5),
	), hyper.SetOf(hyper.New(10, 11, 12), hyper.New(13, 14, 15)), 2)
	single := lattice.NewPattern(1, dfscode.SingleVertex(6), hyper.SetOf(hyper.New(3)), 1)

	f := NewFormatter()
	var buf bytes.Buffer
	x.Nil(f.FormatPattern(&buf, tri))
	x.Nil(f.FormatPattern(&buf, single))
	x.Equal("g # 0 * 2\nv 0 1\nv 1 1\nv 2 3\ne 0 1 2\ne 1 2 4\ne 2 0 5\n\ng # 1 * 1\nv 0 6\n\n", buf.String())

	gs, err := LoadAll(&buf)
	x.Nil(err)
	x.Len(gs, 2)
	x.Equal(2, gs[0].Support)
	x.Len(gs[0].V, 3)
	x.Len(gs[0].Edges(), 3)
	l, ok := gs[0].EdgeLabel(0, 2)
	x.True(ok)
	x.Equal(5, l)
	x.Equal(6, gs[1].Label(0))
	x.Empty(gs[1].Edges())
}

func TestFormatEmbeddings(t *testing.T) {
	x := assert.New(t)
	p := lattice.NewPattern(4, dfscode.FromEdges(dfscode.NewEdge(0, 1, 1, 2, 0)),
		hyper.SetOf(hyper.New(7, 8), hyper.New(9, 8)), 1)
	var buf bytes.Buffer
	x.Nil(NewFormatter().FormatEmbeddings(&buf, p))
	x.Equal("g # 4 * 1\no 7 8\no 9 8\n\n", buf.String())
	x.Equal("g4", NewFormatter().PatternName(p))
}

func TestWriteLoads(t *testing.T) {
	x := assert.New(t)
	g := New(7)
	x.Nil(g.AddVertex(3, 1))
	x.Nil(g.AddVertex(5, 2))
	x.Nil(g.AddVertex(9, 2))
	x.Nil(g.AddEdge(5, 3, 4))
	x.Nil(g.AddEdge(5, 9, 0))
	var buf bytes.Buffer
	x.Nil(Write(&buf, g))
	x.Equal("t # 7\nv 3 1\nv 5 2\nv 9 2\ne 5 3 4\ne 5 9 0\n", buf.String())
	h, err := Load(&buf)
	x.Nil(err)
	x.Equal(g.String(), h.String())
}
