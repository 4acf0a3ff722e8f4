package support

import (
	"fmt"
	"strings"
)

import (
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

type Measure int

const (
	MNI Measure = iota
	MI
	MVC
	MIS
)

var measureNames = map[string]Measure{
	"MNI": MNI,
	"MI":  MI,
	"MVC": MVC,
	"MIS": MIS,
}

func (m Measure) String() string {
	switch m {
	case MNI:
		return "MNI"
	case MI:
		return "MI"
	case MVC:
		return "MVC"
	case MIS:
		return "MIS"
	}
	return fmt.Sprintf("Measure(%d)", int(m))
}

type UnknownMeasureError struct {
	Name string
}

func (e *UnknownMeasureError) Error() string {
	return fmt.Sprintf("unknown support measure %q (expected one of MNI, MI, MVC, MIS)", e.Name)
}

// ParseMeasure is case insensitive.
func ParseMeasure(name string) (Measure, error) {
	m, has := measureNames[strings.ToUpper(strings.TrimSpace(name))]
	if !has {
		return 0, &UnknownMeasureError{Name: name}
	}
	return m, nil
}

// Compute returns the support of the pattern code given its occurrence set.
func Compute(m Measure, occ *hyper.Set, code *dfscode.Code) int {
	switch m {
	case MNI:
		return MinNodeImage(occ)
	case MI:
		return MinInstance(occ, code)
	case MVC:
		return MinVertexCover(occ)
	case MIS:
		return MaxIndependentSet(occ)
	}
	panic(&UnknownMeasureError{Name: m.String()})
}
