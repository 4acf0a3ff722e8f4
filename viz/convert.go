package viz

import (
	"fmt"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
)

// Convert reads a patterns file in the line format and writes every graph in
// it to <dir>/g<id>.dot. It returns the number of files written.
func Convert(input lattice.Input, dir string) (int, error) {
	r, closer := input()
	graphs, err := graph.LoadAll(r)
	closer()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0775); err != nil {
		return 0, err
	}
	count := 0
	for _, g := range graphs {
		err := writeFile(filepath.Join(dir, fmt.Sprintf("g%d.dot", g.Id)), g)
		g.Close()
		if err != nil {
			return count, err
		}
		count++
	}
	errors.Logf("DEBUG", "wrote %v dot files to %v", count, dir)
	return count, nil
}

func writeFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteGraph(f, g)
}
