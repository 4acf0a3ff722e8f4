package reporters

import (
	"os"
	"path/filepath"
)

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
)

// Dir writes every pattern to its own file, named by the formatter, inside
// one directory.
type Dir struct {
	fmt   lattice.Formatter
	dir   string
	count int
}

func NewDir(dir string, fmt lattice.Formatter) (*Dir, error) {
	err := os.MkdirAll(dir, 0775)
	if err != nil {
		return nil, err
	}
	r := &Dir{
		fmt: fmt,
		dir: dir,
	}
	return r, nil
}

func (r *Dir) Path(p *lattice.Pattern) string {
	return filepath.Join(r.dir, r.fmt.PatternName(p)+r.fmt.FileExt())
}

func (r *Dir) Report(p *lattice.Pattern) error {
	f, err := os.Create(r.Path(p))
	if err != nil {
		return err
	}
	defer f.Close()
	r.count++
	return r.fmt.FormatPattern(f, p)
}

func (r *Dir) Count() int {
	return r.count
}

func (r *Dir) Close() error {
	return nil
}
