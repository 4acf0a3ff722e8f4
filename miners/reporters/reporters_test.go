package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

import (
	"github.com/chenghe-take/MiningByHypertree/config"
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/types/dfscode"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
	"github.com/chenghe-take/MiningByHypertree/types/hyper"
	"github.com/chenghe-take/MiningByHypertree/viz"
)

func patterns() []*lattice.Pattern {
	edge := dfscode.FromEdges(dfscode.NewEdge(0, 1, 1, 2, 0))
	path := dfscode.FromEdges(dfscode.NewEdge(0, 1, 1, 2, 0), dfscode.NewEdge(1, 2, 2, 2, 3))
	return []*lattice.Pattern{
		lattice.NewPattern(0, dfscode.SingleVertex(1), hyper.SetOf(hyper.New(0), hyper.New(4)), 2),
		lattice.NewPattern(1, edge, hyper.SetOf(hyper.New(0, 1), hyper.New(4, 5)), 2),
		lattice.NewPattern(2, path, hyper.SetOf(hyper.New(0, 1, 2), hyper.New(4, 5, 6)), 2),
	}
}

func TestChainCollects(t *testing.T) {
	x := assert.New(t)
	a := &Collector{}
	b := &Collector{}
	c := NewChain(a, NewSkip(2, b))
	for _, p := range patterns() {
		x.Nil(c.Report(p))
	}
	x.Nil(c.Close())
	x.Len(a.Patterns, 3)
	x.Len(b.Patterns, 1)
	x.Equal(1, b.Patterns[0].Id)
}

func TestUnique(t *testing.T) {
	x := assert.New(t)
	c := &Collector{}
	u := NewUnique(c)
	ps := patterns()
	dup := lattice.NewPattern(9, ps[1].Code, ps[1].Occurrences, ps[1].Support)
	for _, p := range append(ps, dup) {
		x.Nil(u.Report(p))
	}
	x.Nil(u.Close())
	x.Len(c.Patterns, 3)
	x.Equal(3, u.Seen.Size())
}

func TestLog(t *testing.T) {
	x := assert.New(t)
	lr := NewLog("", "test")
	x.Nil(lr.Report(patterns()[1]))
	x.Equal(1, lr.count)
	x.Equal("INFO", lr.level)
	x.Nil(lr.Close())
}

func TestFile(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "reporters")
	x.Nil(err)
	defer os.RemoveAll(dir)
	conf := &config.Config{Output: dir}
	fr, err := NewFile(conf, graph.NewFormatter(), "patterns", "occurrences")
	x.Nil(err)
	for _, p := range patterns() {
		x.Nil(fr.Report(p))
	}
	x.Nil(fr.Close())

	f, err := os.Open(conf.OutputFile("patterns.txt"))
	x.Nil(err)
	defer f.Close()
	graphs, err := graph.LoadAll(f)
	x.Nil(err)
	x.Len(graphs, 3)
	x.Equal(2, graphs[2].Id)
	x.Equal(2, graphs[2].Support)
	x.Len(graphs[2].Edges(), 2)
	x.Len(graphs[0].Edges(), 0)

	occ, err := ioutil.ReadFile(conf.OutputFile("occurrences.txt"))
	x.Nil(err)
	x.Equal(6, strings.Count(string(occ), "o "))
	x.Contains(string(occ), "o 4 5 6\n")
}

func TestFileWithoutOccurrences(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "reporters")
	x.Nil(err)
	defer os.RemoveAll(dir)
	conf := &config.Config{Output: dir}
	fr, err := NewFile(conf, graph.NewFormatter(), "patterns", "")
	x.Nil(err)
	x.Nil(fr.Report(patterns()[1]))
	x.Nil(fr.Close())
	files, err := ioutil.ReadDir(dir)
	x.Nil(err)
	x.Len(files, 1)
}

func TestDirWritesDot(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "reporters")
	x.Nil(err)
	defer os.RemoveAll(dir)
	conf := &config.Config{Output: dir}
	dr, err := NewDir(conf.DotDir(), viz.NewFormatter())
	x.Nil(err)
	for _, p := range patterns() {
		x.Nil(dr.Report(p))
	}
	x.Nil(dr.Close())
	x.Equal(3, dr.Count())
	text, err := ioutil.ReadFile(filepath.Join(dir, "patterns_dotfile", "g1.dot"))
	x.Nil(err)
	x.Equal("graph G {\n0[label=\"0:1\"]\n1[label=\"1:2\"]\n0--1[label=\"0\"]\n}\n", string(text))
}

func TestHeapProfile(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "reporters")
	x.Nil(err)
	defer os.RemoveAll(dir)
	hp, err := NewHeapProfile(filepath.Join(dir, "heap.pprof"))
	x.Nil(err)
	x.Nil(hp.Report(patterns()[0]))
	x.Nil(hp.Close())
	fi, err := os.Stat(filepath.Join(dir, "heap.pprof"))
	x.Nil(err)
	x.True(fi.Size() > 0)
}
