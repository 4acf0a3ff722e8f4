package graph

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
)

// Formatter writes patterns in the same line format Load reads, headed by
// "g # <id> * <support>" and followed by a blank line.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) FileExt() string {
	return ".txt"
}

func (f *Formatter) PatternName(p *lattice.Pattern) string {
	return fmt.Sprintf("g%d", p.Id)
}

func (f *Formatter) FormatPattern(w io.Writer, p *lattice.Pattern) error {
	_, err := fmt.Fprintf(w, "g # %d * %d\n%s\n", p.Id, p.Support, f.body(p))
	return err
}

func (f *Formatter) body(p *lattice.Pattern) string {
	lines := make([]string, 0, p.Code.Len()*2)
	for i, l := range p.VertexLabels() {
		lines = append(lines, fmt.Sprintf("v %d %d\n", i, l))
	}
	for _, ee := range p.Edges() {
		lines = append(lines, fmt.Sprintf("e %d %d %d\n", ee.V1, ee.V2, ee.E))
	}
	return strings.Join(lines, "")
}

// FormatEmbeddings lists every occurrence tuple as an "o" line.
func (f *Formatter) FormatEmbeddings(w io.Writer, p *lattice.Pattern) error {
	if _, err := fmt.Fprintf(w, "g # %d * %d\n", p.Id, p.Support); err != nil {
		return err
	}
	for _, he := range p.Occurrences.Items() {
		ids := make([]string, 0, he.Len())
		for i := 0; i < he.Len(); i++ {
			ids = append(ids, fmt.Sprint(he.At(i)))
		}
		if _, err := fmt.Fprintf(w, "o %s\n", strings.Join(ids, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Write writes g as a "t # <id>" block that Load reads back.
func Write(w io.Writer, g *Graph) error {
	if _, err := fmt.Fprintf(w, "t # %d\n", g.Id); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "v %d %d\n", v.Id, v.Label); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "e %d %d %d\n", e.V1, e.V2, e.Label); err != nil {
			return err
		}
	}
	return nil
}
