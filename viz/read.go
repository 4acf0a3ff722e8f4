package viz

import (
	"io/ioutil"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/dot"
)

import (
	"github.com/chenghe-take/MiningByHypertree/lattice"
	"github.com/chenghe-take/MiningByHypertree/types/graph"
)

// Read parses every top level graph in a DOT document. Vertex labels are
// read from "<id>:<label>" (or a bare "<label>") and edge labels default
// to 0. Subgraphs are skipped.
func Read(input lattice.Input) ([]*graph.Graph, error) {
	r, closer := input()
	text, err := ioutil.ReadAll(r)
	closer()
	if err != nil {
		return nil, err
	}
	p := &dotParse{
		vids: make(map[string]int),
	}
	err = dot.StreamParse(text, p)
	if err != nil {
		return nil, err
	}
	return p.graphs, nil
}

type dotParse struct {
	graphs   []*graph.Graph
	cur      *graph.Graph
	subgraph int
	nextId   int
	vids     map[string]int
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "SubGraph" {
		p.subgraph++
		return nil
	}
	p.cur = graph.New(len(p.graphs))
	p.graphs = append(p.graphs, p.cur)
	p.nextId = 0
	p.vids = make(map[string]int)
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.subgraph > 0 || p.cur == nil {
		return nil
	}
	switch n.Label {
	case "Node":
		return p.vertex(n)
	case "Edge":
		return p.edge(n)
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
		return nil
	}
	p.cur = nil
	return nil
}

func attrs(n *combos.Node) map[string]string {
	a := make(map[string]string)
	for _, attr := range n.Children {
		name := unquote(attr.Get(0).Value.(string))
		a[name] = unquote(attr.Get(1).Value.(string))
	}
	return a
}

func unquote(s string) string {
	return strings.Trim(s, "\"")
}

func (p *dotParse) vid(sid string) int {
	if vid, has := p.vids[sid]; has {
		return vid
	}
	vid, err := strconv.Atoi(sid)
	if err != nil {
		vid = p.nextId
	}
	if vid >= p.nextId {
		p.nextId = vid + 1
	}
	p.vids[sid] = vid
	return vid
}

func (p *dotParse) vertex(n *combos.Node) error {
	sid := unquote(n.Get(0).Value.(string))
	a := attrs(n.Get(1))
	text, has := a["label"]
	if !has {
		return errors.Errorf("vertex %v has no label", sid)
	}
	if i := strings.LastIndex(text, ":"); i >= 0 {
		text = text[i+1:]
	}
	label, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return errors.Errorf("vertex %v has a label that is not an int: %v", sid, a["label"])
	}
	return p.cur.AddVertex(p.vid(sid), label)
}

func (p *dotParse) edge(n *combos.Node) error {
	src := unquote(n.Get(0).Value.(string))
	targ := unquote(n.Get(1).Value.(string))
	for _, sid := range []string{src, targ} {
		if _, has := p.vids[sid]; !has {
			return errors.Errorf("edge %v--%v names the undeclared vertex %v", src, targ, sid)
		}
	}
	label := 0
	if text, has := attrs(n.Get(2))["label"]; has {
		l, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return errors.Errorf("edge %v--%v has a label that is not an int: %v", src, targ, text)
		}
		label = l
	}
	return p.cur.AddEdge(p.vids[src], p.vids[targ], label)
}
