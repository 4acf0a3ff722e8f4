package gspan

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

// IsCanonical rebuilds the minimal code of the pattern described by c, one
// smallest extension at a time, using the pattern itself as the host graph.
// c is canonical when the rebuilt code matches it edge for edge; the rebuild
// stops at the first position where it does not.
func IsCanonical(c *dfscode.Code) (bool, error) {
	canonical := true
	_, err := rebuild(c, func(i int, min dfscode.ExtendedEdge) bool {
		if min != c.At(i) {
			canonical = false
		}
		return canonical
	})
	if err != nil {
		return false, err
	}
	return canonical, nil
}

// MinCode returns the canonical code of the pattern described by c.
func MinCode(c *dfscode.Code) (*dfscode.Code, error) {
	return rebuild(c, func(int, dfscode.ExtendedEdge) bool { return true })
}

func rebuild(c *dfscode.Code, keep func(i int, min dfscode.ExtendedEdge) bool) (*dfscode.Code, error) {
	if c.Empty() || c.IsSingleVertex() {
		return c.Copy(), nil
	}
	g, err := graph.FromCode(c)
	if err != nil {
		return nil, err
	}
	defer g.Close()
	can := dfscode.New()
	for i := 0; i < c.Len(); i++ {
		min, found, err := minExtension(can, g)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errors.Errorf("no extension of %v inside %v", can, c)
		}
		if !keep(i, min) {
			return can, nil
		}
		can.Append(min)
	}
	return can, nil
}

func minExtension(code *dfscode.Code, g *graph.Graph) (min dfscode.ExtendedEdge, found bool, err error) {
	err = visitExtensions(code, nil, g, func(ee dfscode.ExtendedEdge, _ hyper.HyperEdge) {
		if !found || ee.Less(min) {
			min = ee
			found = true
		}
	})
	return min, found, err
}
