package viz

import (
	"fmt"
	"io"
)

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
)

// Formatter writes each pattern as an undirected GraphViz graph. Vertices are
// labelled "<index>:<label>" and edges by their edge label.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) FileExt() string {
	return ".dot"
}

func (f *Formatter) PatternName(p *lattice.Pattern) string {
	return fmt.Sprintf("g%d", p.Id)
}

func (f *Formatter) FormatPattern(w io.Writer, p *lattice.Pattern) error {
	edges := make([]graph.Edge, 0, p.Code.Len())
	for _, ee := range p.Edges() {
		edges = append(edges, graph.Edge{V1: ee.V1, V2: ee.V2, Label: ee.E})
	}
	labels := p.VertexLabels()
	ids := make([]int, len(labels))
	for i := range ids {
		ids[i] = i
	}
	return write(w, "G", ids, labels, edges)
}

// FormatEmbeddings draws one graph per occurrence, with the host ids in the
// vertex labels.
func (f *Formatter) FormatEmbeddings(w io.Writer, p *lattice.Pattern) error {
	labels := p.VertexLabels()
	for i, he := range p.Occurrences.Items() {
		if _, err := fmt.Fprintf(w, "graph occ%d {\n", i); err != nil {
			return err
		}
		for v := 0; v < he.Len() && v < len(labels); v++ {
			if _, err := fmt.Fprintf(w, "%d[label=\"%d:%d\"]\n", v, he.At(v), labels[v]); err != nil {
				return err
			}
		}
		for _, ee := range p.Edges() {
			if _, err := fmt.Fprintf(w, "%d--%d[label=\"%d\"]\n", ee.V1, ee.V2, ee.E); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}
	return nil
}

// WriteGraph writes a graph loaded from the line format, keeping its vertex
// ids.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	vertices := g.Vertices()
	ids := make([]int, 0, len(vertices))
	labels := make([]int, 0, len(vertices))
	for _, v := range vertices {
		ids = append(ids, v.Id)
		labels = append(labels, v.Label)
	}
	return write(w, "G", ids, labels, g.Edges())
}

func write(w io.Writer, name string, ids, labels []int, edges []graph.Edge) error {
	if _, err := fmt.Fprintf(w, "graph %s {\n", name); err != nil {
		return err
	}
	for i, l := range labels {
		if _, err := fmt.Fprintf(w, "%d[label=\"%d:%d\"]\n", ids[i], ids[i], l); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d--%d[label=\"%d\"]\n", e.V1, e.V2, e.Label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
