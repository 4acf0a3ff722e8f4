package support

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"math/rand"
)

import (
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

func TestParseMeasure(t *testing.T) {
	x := assert.New(t)
	for _, name := range []string{"MNI", "mi", " MVC ", "Mis"} {
		m, err := ParseMeasure(name)
		x.Nil(err)
		x.NotEqual("", m.String())
	}
	m, err := ParseMeasure("mvc")
	x.Nil(err)
	x.Equal(MVC, m)
	_, err = ParseMeasure("MAX")
	x.NotNil(err)
	_, ok := err.(*UnknownMeasureError)
	x.True(ok)
}

func TestEmpty(t *testing.T) {
	x := assert.New(t)
	code := dfscode.FromEdges(dfscode.NewEdge(0, 1, 1, 1, 0))
	for _, m := range []Measure{MNI, MI, MVC, MIS} {
		x.Equal(0, Compute(m, hyper.NewSet(0), code))
		x.Equal(0, Compute(m, nil, code))
	}
}

func TestMeasures(t *testing.T) {
	x := assert.New(t)
	occ := hyper.SetOf(hyper.New(0, 1), hyper.New(0, 2), hyper.New(3, 2), hyper.New(4, 5))
	code := dfscode.FromEdges(dfscode.NewEdge(0, 1, 1, 1, 0))
	x.Equal(3, MinNodeImage(occ))
	x.Equal(3, MinInstance(occ, code))
	x.Equal(3, MaxIndependentSet(occ))
	x.Equal(3, MinVertexCover(occ))
}

func TestVertexCoverPrefersHubs(t *testing.T) {
	x := assert.New(t)
	// a star: the center covers everything
	occ := hyper.SetOf(hyper.New(0, 1), hyper.New(0, 2), hyper.New(0, 3), hyper.New(0, 4))
	x.Equal(1, MinVertexCover(occ))
	x.Equal(1, MaxIndependentSet(occ))
	x.Equal(1, MinNodeImage(occ))
}

func TestIndependentSetFollowsInsertionOrder(t *testing.T) {
	x := assert.New(t)
	// a path 0-1-2-3: taking <1 2> first blocks both ends
	a := hyper.SetOf(hyper.New(1, 2), hyper.New(0, 1), hyper.New(2, 3))
	b := hyper.SetOf(hyper.New(0, 1), hyper.New(1, 2), hyper.New(2, 3))
	x.Equal(1, MaxIndependentSet(a))
	x.Equal(2, MaxIndependentSet(b))
}

func TestMinInstanceWidthMismatch(t *testing.T) {
	x := assert.New(t)
	occ := hyper.SetOf(hyper.New(0, 1, 2))
	code := dfscode.FromEdges(dfscode.NewEdge(0, 1, 1, 1, 0))
	x.Panics(func() { MinInstance(occ, code) })
}

func TestSingleVertexSupport(t *testing.T) {
	x := assert.New(t)
	occ := hyper.SetOf(hyper.New(4), hyper.New(7), hyper.New(9))
	code := dfscode.SingleVertex(2)
	for _, m := range []Measure{MNI, MI, MVC, MIS} {
		x.Equal(3, Compute(m, occ, code), m.String())
	}
}

func TestBounds(t *testing.T) {
	x := assert.New(t)
	rnd := rand.New(rand.NewSource(7))
	code := dfscode.FromEdges(
		dfscode.NewEdge(0, 1, 1, 2, 0),
		dfscode.NewEdge(1, 2, 2, 1, 0),
	)
	for trial := 0; trial < 100; trial++ {
		occ := hyper.NewSet(10)
		n := 1 + rnd.Intn(15)
		for occ.Size() < n {
			a := rnd.Intn(12)
			b := rnd.Intn(12)
			c := rnd.Intn(12)
			if a == b || b == c || a == c {
				continue
			}
			occ.Add(hyper.New(a, b, c))
		}
		mni := MinNodeImage(occ)
		mi := MinInstance(occ, code)
		mvc := MinVertexCover(occ)
		mis := MaxIndependentSet(occ)
		x.True(mi <= mni, "MI %v > MNI %v", mi, mni)
		x.True(1 <= mis, "MIS %v", mis)
		x.True(mis <= mvc, "MIS %v > MVC %v for %v", mis, mvc, occ)
		x.True(mvc <= len(occ.Vertices()))
		x.True(mni <= occ.Size())
	}
}
