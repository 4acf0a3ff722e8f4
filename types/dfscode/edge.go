package dfscode

import (
	"fmt"
)

// ExtendedEdge is one edge of a pattern in growth coordinates. V1 and V2 are
// pattern vertex indices in discovery order, not host graph ids.
type ExtendedEdge struct {
	V1, V2 int
	L1, L2 int // vertex labels of V1 and V2
	E      int // edge label
}

func NewEdge(v1, v2, l1, l2, e int) ExtendedEdge {
	return ExtendedEdge{V1: v1, V2: v2, L1: l1, L2: l2, E: e}
}

// Forward edges introduce a new pattern vertex.
func (ee ExtendedEdge) Forward() bool {
	return ee.V1 < ee.V2
}

func (ee ExtendedEdge) Backward() bool {
	return ee.V1 > ee.V2
}

// Less is the total order used both to pick the minimal extension during the
// canonical test and to order the extension map. Backward edges precede
// forward edges. Backward edges compare by (V1, V2) ascending, forward edges
// by V2 ascending then V1 descending (deeper growth point first). Equal
// coordinates fall back to L2, then E, then L1.
func (ee ExtendedEdge) Less(o ExtendedEdge) bool {
	return Compare(ee, o) < 0
}

func Compare(a, b ExtendedEdge) int {
	if c := comparePair(a, b); c != 0 {
		return c
	}
	if c := compareInt(a.L2, b.L2); c != 0 {
		return c
	}
	if c := compareInt(a.E, b.E); c != 0 {
		return c
	}
	return compareInt(a.L1, b.L1)
}

func comparePair(a, b ExtendedEdge) int {
	af, bf := a.Forward(), b.Forward()
	switch {
	case !af && bf:
		return -1
	case af && !bf:
		return 1
	case !af && !bf:
		if c := compareInt(a.V1, b.V1); c != 0 {
			return c
		}
		return compareInt(a.V2, b.V2)
	}
	if c := compareInt(a.V2, b.V2); c != 0 {
		return c
	}
	return compareInt(b.V1, a.V1)
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func (ee ExtendedEdge) String() string {
	return fmt.Sprintf("(%v,%v,%v,%v,%v)", ee.V1, ee.V2, ee.L1, ee.L2, ee.E)
}
