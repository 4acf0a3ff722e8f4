package lattice

import (
	"io"
)

type Input func() (reader io.Reader, closer func())

// Formatter writes reported patterns. FormatPattern writes the pattern
// itself, FormatEmbeddings the occurrence tuples it was counted from.
type Formatter interface {
	FileExt() string
	PatternName(*Pattern) string
	FormatPattern(io.Writer, *Pattern) error
	FormatEmbeddings(io.Writer, *Pattern) error
}
