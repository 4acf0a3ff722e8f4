package config

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

import (
	"github.com/chenghe-take/MiningByHypertree/support"
)

func TestCopy(t *testing.T) {
	x := assert.New(t)
	c := &Config{Output: "out", Support: 3, Measure: support.MIS, MaxEdges: 4, Hypertree: true, Seed: 9}
	d := c.Copy()
	x.Equal(c, d)
	d.Support = 5
	x.Equal(3, c.Support)
	x.Equal(filepath.Join("out", "patterns.txt"), c.OutputFile("patterns.txt"))
}

func TestRandIsSeeded(t *testing.T) {
	x := assert.New(t)
	c := &Config{Seed: 42}
	a := c.Rand()
	b := c.Rand()
	for i := 0; i < 10; i++ {
		x.Equal(a.Int63(), b.Int63())
	}
}

func TestFileLabelIndex(t *testing.T) {
	x := assert.New(t)
	dir, err := ioutil.TempDir("", "labels")
	x.Nil(err)
	defer os.RemoveAll(dir)
	c := &Config{Cache: dir}
	idx, err := c.LabelIndex()()
	x.Nil(err)
	x.Nil(idx.Add(3, 10))
	x.Nil(idx.Add(3, 11))
	x.Nil(idx.Add(4, 12))
	ids := make([]int32, 0)
	x.Nil(idx.DoFind(3, func(_, id int32) error {
		ids = append(ids, id)
		return nil
	}))
	x.ElementsMatch([]int32{10, 11}, ids)
	files, err := ioutil.ReadDir(dir)
	x.Nil(err)
	x.Len(files, 1)
	x.Nil(idx.Close())
	files, err = ioutil.ReadDir(dir)
	x.Nil(err)
	x.Len(files, 0)
}

func TestMemoryLabelIndex(t *testing.T) {
	x := assert.New(t)
	idx, err := (&Config{}).LabelIndex()()
	x.Nil(err)
	x.Nil(idx.Add(1, 2))
	x.Nil(idx.Close())
}
