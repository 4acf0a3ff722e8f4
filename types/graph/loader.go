package graph

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type ErrorList []error

func (self ErrorList) Error() string {
	var s []string
	for _, err := range self {
		s = append(s, err.Error())
	}
	return "Errors [" + strings.Join(s, ", ") + "]"
}

// Load reads the first graph block of in. Only one host graph is mined so any
// further blocks are ignored.
func Load(in io.Reader) (*Graph, error) {
	graphs, err := LoadAll(in)
	if err != nil {
		return nil, err
	}
	if len(graphs) == 0 {
		return nil, errors.Errorf("the input contains no graph")
	}
	for _, g := range graphs[1:] {
		g.Close()
	}
	return graphs[0], nil
}

// LoadAll reads every block of the line format
//
//	t # <id>              (or g # <id> * <support> in pattern files)
//	v <id> <label>
//	e <v1> <v2> <label>
//
// Edge labels may be decimals and are truncated. Malformed lines are collected
// into an ErrorList.
func LoadAll(in io.Reader) ([]*Graph, error) {
	var errs ErrorList
	graphs := make([]*Graph, 0, 1)
	var cur *Graph
	lineno := 0
	err := processLines(in, func(line []byte) {
		lineno++
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			return
		}
		fields := strings.Fields(string(line))
		switch fields[0] {
		case "t", "g":
			g, err := parseHeader(fields)
			if err != nil {
				errs = append(errs, errors.Errorf("line %v: %v", lineno, err))
				return
			}
			graphs = append(graphs, g)
			cur = g
		case "v":
			if cur == nil {
				errs = append(errs, errors.Errorf("line %v: vertex outside of a graph block", lineno))
				return
			}
			if err := loadVertex(cur, fields); err != nil {
				errs = append(errs, errors.Errorf("line %v: %v", lineno, err))
			}
		case "e":
			if cur == nil {
				errs = append(errs, errors.Errorf("line %v: edge outside of a graph block", lineno))
				return
			}
			if err := loadEdge(cur, fields); err != nil {
				errs = append(errs, errors.Errorf("line %v: %v", lineno, err))
			}
		default:
			errs = append(errs, errors.Errorf("line %v: unknown line type %v", lineno, fields[0]))
		}
	})
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errs
	}
	errors.Logf("DEBUG", "loaded %v graphs", len(graphs))
	return graphs, nil
}

func parseHeader(fields []string) (*Graph, error) {
	if len(fields) < 3 || fields[1] != "#" {
		return nil, errors.Errorf("malformed graph header %v", fields)
	}
	id, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, err
	}
	g := New(id)
	if len(fields) >= 5 && fields[3] == "*" {
		sup, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, err
		}
		g.Support = sup
	}
	return g, nil
}

func loadVertex(g *Graph, fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("malformed vertex %v", fields)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return err
	}
	label, err := strconv.Atoi(fields[2])
	if err != nil {
		return err
	}
	return g.AddVertex(id, label)
}

func loadEdge(g *Graph, fields []string) error {
	if len(fields) < 4 {
		return errors.Errorf("malformed edge %v", fields)
	}
	v1, err := strconv.Atoi(fields[1])
	if err != nil {
		return err
	}
	v2, err := strconv.Atoi(fields[2])
	if err != nil {
		return err
	}
	label, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return err
	}
	return g.AddEdge(v1, v2, int(label))
}

func processLines(in io.Reader, process func([]byte)) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		unsafe := scanner.Bytes()
		line := make([]byte, len(unsafe))
		copy(line, unsafe)
		process(line)
	}
	return scanner.Err()
}
