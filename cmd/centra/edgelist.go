package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/centra/core"
)

// edgeList is the parsed form of an input file: topology plus an
// optional explicit weight matrix (nil when every line was unweighted).
type edgeList struct {
	graph   *core.AdjacencyGraph
	weights *core.Dense
}

// loadEdgeList reads "u v [w]" lines from path. Vertex count is the
// highest index seen plus one. Mixing weighted and unweighted lines is
// allowed; unweighted lines default to weight 1 once any weight appears.
func loadEdgeList(path string, directed bool) (*edgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()

	return parseEdgeList(f, directed)
}

func parseEdgeList(r io.Reader, directed bool) (*edgeList, error) {
	type edge struct {
		u, v     int
		w        float64
		weighted bool
	}
	var (
		edges    []edge
		maxIdx   = -1
		weighted bool
		lineNo   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want \"u v\" or \"u v w\", got %q", lineNo, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex %q: %w", lineNo, fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad vertex %q: %w", lineNo, fields[1], err)
		}
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("line %d: negative vertex index in %q", lineNo, line)
		}
		e := edge{u: u, v: v, w: 1}
		if len(fields) == 3 {
			if e.w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q: %w", lineNo, fields[2], err)
			}
			e.weighted = true
			weighted = true
		}
		if u > maxIdx {
			maxIdx = u
		}
		if v > maxIdx {
			maxIdx = v
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	n := maxIdx + 1
	out := &edgeList{graph: core.NewGraph(n, core.WithDirected(directed))}
	if weighted {
		out.weights = core.NewDense(n)
	}
	for _, e := range edges {
		if err := out.graph.AddEdge(e.u, e.v); err != nil {
			return nil, err
		}
		if out.weights == nil {
			continue
		}
		if err := out.weights.Set(e.u, e.v, e.w); err != nil {
			return nil, err
		}
		if !directed {
			if err := out.weights.Set(e.v, e.u, e.w); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
