package reporters

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/miners"
)

type Chain struct {
	Reporters []miners.Reporter
}

func NewChain(rptrs ...miners.Reporter) *Chain {
	return &Chain{Reporters: rptrs}
}

func (r *Chain) Report(p *lattice.Pattern) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes every reporter and returns the first error.
func (r *Chain) Close() error {
	var first error
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}
