package stats

import (
	"fmt"
	"strings"
)

// Record collects the counters of one mining run. It is reset at the start of
// every run and handed by pointer to the pruning and search phases.
type Record struct {
	InfrequentVerticesRemoved int
	InfrequentPairsRemoved    int
	EdgesRemovedByLabel       int
	EmptyExtensions           int
	Infrequent                int
	NonCanonical              int
	MaxEdgesReached           int
	Patterns                  int
	PeakMemory                float64 // MB
}

func (r *Record) Reset() {
	*r = Record{}
}

func (r *Record) String() string {
	lines := []string{
		fmt.Sprintf("patterns: %d", r.Patterns),
		fmt.Sprintf("infrequent vertices pruned: %d", r.InfrequentVerticesRemoved),
		fmt.Sprintf("infrequent vertex pairs pruned: %d", r.InfrequentPairsRemoved),
		fmt.Sprintf("infrequent edge labels pruned: %d", r.EdgesRemovedByLabel),
		fmt.Sprintf("empty extensions: %d", r.EmptyExtensions),
		fmt.Sprintf("infrequent extensions: %d", r.Infrequent),
		fmt.Sprintf("non-canonical extensions: %d", r.NonCanonical),
		fmt.Sprintf("nodes at max edges: %d", r.MaxEdgesReached),
		fmt.Sprintf("peak memory: %.2f mb", r.PeakMemory),
	}
	return strings.Join(lines, "\n")
}
