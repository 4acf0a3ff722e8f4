package reporters

import (
	"io"
	"os"
)

import (
	"github.com/chenghe-take/MiningByHypertree/config"
	"github.com/chenghe-take/MiningByHypertree/lattice"
)

// File appends every pattern to one patterns file and, when an occurrences
// file name is given, its occurrence tuples to a second file.
type File struct {
	config      *config.Config
	fmt         lattice.Formatter
	patterns    io.WriteCloser
	occurrences io.WriteCloser
}

func NewFile(c *config.Config, fmt lattice.Formatter, patternsFilename, occurrencesFilename string) (*File, error) {
	if err := os.MkdirAll(c.Output, 0775); err != nil {
		return nil, err
	}
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	var occurrences io.WriteCloser
	if occurrencesFilename != "" {
		occurrences, err = os.Create(c.OutputFile(occurrencesFilename + fmt.FileExt()))
		if err != nil {
			patterns.Close()
			return nil, err
		}
	}
	r := &File{
		config:      c,
		fmt:         fmt,
		patterns:    patterns,
		occurrences: occurrences,
	}
	return r, nil
}

func (r *File) Report(p *lattice.Pattern) error {
	err := r.fmt.FormatPattern(r.patterns, p)
	if err != nil {
		return err
	}
	if r.occurrences != nil {
		return r.fmt.FormatEmbeddings(r.occurrences, p)
	}
	return nil
}

func (r *File) Close() error {
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	if r.occurrences != nil {
		return r.occurrences.Close()
	}
	return nil
}
