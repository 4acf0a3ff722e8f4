package miners

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
)

// Note: the miner's Close function should close the reporter that was passed
// into Mine.
type Miner interface {
	Mine(*graph.Graph, Reporter) error
	Close() error
}

type Reporter interface {
	Report(*lattice.Pattern) error
	Close() error
}
