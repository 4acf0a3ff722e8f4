package reporters

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/miners"
)

// Skip forwards every Skip-th pattern. It keeps logging quiet on large runs.
type Skip struct {
	Skip     int
	Reporter miners.Reporter
	count    int
}

func NewSkip(n int, rptr miners.Reporter) *Skip {
	if n < 1 {
		n = 1
	}
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) Report(p *lattice.Pattern) error {
	r.count++
	if r.count%r.Skip == 0 {
		return r.Reporter.Report(p)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
