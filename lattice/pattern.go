package lattice

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

// Pattern is one frequent subgraph of the host graph: its canonical code, the
// occurrence tuples it was counted from and its support. A Pattern is never
// modified after it is reported.
type Pattern struct {
	Id          int
	Code        *dfscode.Code
	Occurrences *hyper.Set
	Support     int
}

func NewPattern(id int, code *dfscode.Code, occ *hyper.Set, support int) *Pattern {
	return &Pattern{
		Id:          id,
		Code:        code.Copy(),
		Occurrences: occ,
		Support:     support,
	}
}

// Label is the code's string form; two patterns share a label exactly when
// they were grown through the same sequence of edges.
func (p *Pattern) Label() []byte {
	return []byte(p.Code.String())
}

func (p *Pattern) Hash() int {
	return types.ByteSlice(p.Label()).Hash()
}

func (p *Pattern) Equals(o types.Equatable) bool {
	b, ok := o.(*Pattern)
	if !ok {
		return false
	}
	return p.Code.Equals(b.Code)
}

func (p *Pattern) Less(o types.Sortable) bool {
	b, ok := o.(*Pattern)
	if !ok {
		return false
	}
	return string(p.Label()) < string(b.Label())
}

// Level is the number of edges, 0 for a single vertex.
func (p *Pattern) Level() int {
	if p.Code.IsSingleVertex() {
		return 0
	}
	return p.Code.Len()
}

func (p *Pattern) VertexLabels() []int {
	return p.Code.VertexLabels()
}

// Edges skips the placeholder edge of a single vertex pattern.
func (p *Pattern) Edges() []dfscode.ExtendedEdge {
	if p.Code.IsSingleVertex() {
		return nil
	}
	return p.Code.Edges()
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern %v support: %v occurrences: %v %v>", p.Id, p.Support, p.Occurrences.Size(), p.Code)
}
