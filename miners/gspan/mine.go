package gspan

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"math/rand"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/chenghe-take/MiningByHypertree/config"
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/miners"
	"github.com/chenghe-take/MiningByHypertree/stats"
	"github.com/chenghe-take/MiningByHypertree/support"
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
)

// Miner grows patterns depth first from the empty code. Every reported
// pattern is canonical and has support >= Config.Support under
// Config.Measure.
type Miner struct {
	Config  *config.Config
	Stats   stats.Record
	Runtime time.Duration
	rnd     *rand.Rand
	mem     stats.MemorySampler
	rptr    miners.Reporter
	count   int
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{Config: conf}
}

func (m *Miner) Close() error {
	if m.rptr == nil {
		return nil
	}
	return m.rptr.Close()
}

func (m *Miner) Mine(g *graph.Graph, rptr miners.Reporter) error {
	start := time.Now()
	m.Stats.Reset()
	m.mem.Reset()
	m.rnd = m.Config.Rand()
	m.rptr = rptr
	m.count = 0
	defer func() {
		m.Runtime = time.Since(start)
		m.mem.Sample()
		m.Stats.PeakMemory = m.mem.PeakMB()
	}()
	if m.Config.MaxEdges <= 0 {
		errors.Logf("INFO", "max edges is %v, nothing to mine", m.Config.MaxEdges)
		return nil
	}
	if err := g.SetLabelIndex(m.Config.LabelIndex()); err != nil {
		return err
	}
	errors.Logf("INFO", "pruning the host graph, support %v", m.Config.Support)
	pruned, err := graph.Prune(g, m.Config.Support, &m.Stats)
	if err != nil {
		return err
	}
	m.mem.Check()
	errors.Logf("INFO", "frequent vertex labels %v", pruned.Labels)
	if len(pruned.Labels) == 0 {
		return nil
	}
	if m.Config.SingleVertices {
		if err := m.singles(pruned); err != nil {
			return err
		}
	}
	errors.Logf("INFO", "starting search, measure %v, max edges %v, hypertree %v",
		m.Config.Measure, m.Config.MaxEdges, m.Config.Hypertree)
	if err := m.dfs(dfscode.New(), nil, g); err != nil {
		return err
	}
	errors.Logf("INFO", "finished search, %v patterns", m.Stats.Patterns)
	return nil
}

func (m *Miner) singles(pruned *graph.Pruned) error {
	for _, label := range pruned.Labels {
		vertices := pruned.Vertices[label]
		occ := hyper.NewSet(vertices.Size())
		for v, next := vertices.Items()(); next != nil; v, next = next() {
			occ.Add(hyper.New(int(v.(types.Int))))
		}
		if err := m.report(dfscode.SingleVertex(label), occ, occ.Size()); err != nil {
			return err
		}
	}
	return nil
}

func (m *Miner) dfs(code *dfscode.Code, occ *hyper.Set, g *graph.Graph) error {
	m.mem.Check()
	if code.Len() >= m.Config.MaxEdges {
		m.Stats.MaxEdgesReached++
		return nil
	}
	exts, err := FindExtensions(code, occ, g)
	if err != nil {
		return err
	}
	errors.Logf("DEBUG", "%v has %v extensions", code, exts.Size())
	return exts.Do(func(ee dfscode.ExtendedEdge, eocc *hyper.Set) error {
		if eocc.Size() == 0 {
			m.Stats.EmptyExtensions++
			return nil
		}
		child := code.Copy()
		child.Append(ee)
		sup := m.supportOf(child, eocc)
		if sup < m.Config.Support {
			m.Stats.Infrequent++
			return nil
		}
		canonical, err := IsCanonical(child)
		if err != nil {
			return err
		}
		if !canonical {
			m.Stats.NonCanonical++
			return nil
		}
		if err := m.report(child, eocc, sup); err != nil {
			return err
		}
		return m.dfs(child, eocc, g)
	})
}

// supportOf estimates over a sampled hypertree when configured. The sample is
// only counted, the full occurrence set is reported and extended.
func (m *Miner) supportOf(code *dfscode.Code, occ *hyper.Set) int {
	if m.Config.Hypertree {
		tree := hyper.Hypertree(occ, m.rnd)
		return support.Compute(m.Config.Measure, tree, code)
	}
	return support.Compute(m.Config.Measure, occ, code)
}

func (m *Miner) report(code *dfscode.Code, occ *hyper.Set, sup int) error {
	p := lattice.NewPattern(m.count, code, occ, sup)
	m.count++
	m.Stats.Patterns++
	if m.rptr == nil {
		return nil
	}
	return m.rptr.Report(p)
}
