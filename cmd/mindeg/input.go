// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mindeg/builder"
	"github.com/katalvlaran/mindeg/csr"
)

// loadGraph builds the graph selected by cfg.
func loadGraph(cfg *orderConfig) (*csr.Graph, error) {
	switch {
	case cfg.Grid != "":
		var rows, cols int
		if _, err := fmt.Sscanf(cfg.Grid, "%dx%d", &rows, &cols); err != nil {
			return nil, fmt.Errorf("--grid %q: want ROWSxCOLS: %w", cfg.Grid, err)
		}

		return builder.BuildGraph(nil, builder.Grid(rows, cols))
	case cfg.Path > 0:
		return builder.BuildGraph(nil, builder.Path(cfg.Path))
	default:
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return readEdgeList(f)
	}
}

// maxVertexID bounds the ids accepted from an edge list, since n is derived
// from the largest id.
const maxVertexID = 1<<24 - 1

// readEdgeList parses one "u v" pair of 0-based vertex ids per line. Blank
// lines and lines starting with '#' are skipped; n is the largest id + 1.
func readEdgeList(r io.Reader) (*csr.Graph, error) {
	var (
		edges [][2]int
		n     int
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 fields, got %d", line, len(fields))
		}
		var e [2]int
		for i, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil || id < 0 {
				return nil, fmt.Errorf("line %d: bad vertex id %q", line, f)
			}
			if id > maxVertexID {
				return nil, fmt.Errorf("line %d: vertex id %d exceeds %d", line, id, maxVertexID)
			}
			e[i] = id
			n = max(n, id+1)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return csr.FromEdges(n, edges, nil)
}
