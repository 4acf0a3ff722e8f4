package config

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/chenghe-take/MiningByHypertree/stores/intint"
	"github.com/chenghe-take/MiningByHypertree/support"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
)

type Config struct {
	Cache          string
	Output         string
	Support        int
	Measure        support.Measure
	MaxEdges       int
	SingleVertices bool
	Hypertree      bool
	Seed           int64
	Dot            bool
	Occurrences    bool
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:          c.Cache,
		Output:         c.Output,
		Support:        c.Support,
		Measure:        c.Measure,
		MaxEdges:       c.MaxEdges,
		SingleVertices: c.SingleVertices,
		Hypertree:      c.Hypertree,
		Seed:           c.Seed,
		Dot:            c.Dot,
		Occurrences:    c.Occurrences,
	}
}

// Rand is the random source of one mining run. The same seed reproduces the
// same hypertree samples.
func (c *Config) Rand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) DotDir() string {
	return c.OutputFile("patterns_dotfile")
}

// LabelIndex keeps the host label index in memory unless a cache directory
// is configured, in which case every rebuild goes to a fresh B+ tree file
// that is removed when the index is closed.
func (c *Config) LabelIndex() graph.IndexFactory {
	if c.Cache == "" {
		return graph.MemoryIndex
	}
	return func() (graph.LabelIndex, error) {
		bpt, err := intint.NewBpTree(c.CacheFile("labels-" + c.Randstr() + ".bptree"))
		if err != nil {
			return nil, err
		}
		return &fileIndex{bpt}, nil
	}
}

type fileIndex struct {
	*intint.BpTree
}

func (f *fileIndex) Close() error {
	return f.BpTree.Delete()
}
