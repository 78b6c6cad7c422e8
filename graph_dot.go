// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package poa

import (
	"fmt"
	"io"
)

// WriteDOT renders the POG as a Graphviz digraph: one coloured node per
// base, one edge per (begin,end) pair labelled with its sequence count, and
// a same-rank cluster plus dashed mismatch lines for every aligned-set
// (spec §6). Grounded on original_source/src/graph.c's po_graph_to_dot.
func (g *Graph) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "// WFPOA graph dot file.\n// %d nodes.\n", len(g.nodes)); err != nil {
		return pathIOf("graph: writing DOT comment: %v", err)
	}
	if _, err := fmt.Fprintf(w, "digraph WFPOA_graph {\n\tgraph [rankdir=\"LR\"];\n"+
		"\tnode [width=1.2, style=filled, fixedsize=true, shape=circle];\n"); err != nil {
		return pathIOf("graph: writing DOT header: %v", err)
	}

	label := func(id int) string { return fmt.Sprintf("\"%c\\n%d\"", g.nodes[id].Char, g.rank[id]) }

	for _, id := range g.rankToNode {
		if _, err := fmt.Fprintf(w, "%s [color=%s, fontsize=22]\n", label(id), DotColor(g.nodes[id].Char)); err != nil {
			return pathIOf("graph: writing DOT node %d: %v", id, err)
		}
	}

	var maxAlignedRank int64 = -1
	for i, id := range g.rankToNode {
		for _, eid := range g.nodes[id].OutEdges {
			e := &g.edges[eid]
			weight := len(e.Labels)
			if _, err := fmt.Fprintf(w, "\t%s -> %s [label=\"%d\", penwidth=%d]\n",
				label(id), label(e.End), weight, weight+1); err != nil {
				return pathIOf("graph: writing DOT edge %d->%d: %v", id, e.End, err)
			}
		}

		aligned := g.alignedSet(id)
		if len(aligned) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\t{rank=same; %s ", label(id)); err != nil {
			return pathIOf("graph: writing DOT rank cluster: %v", err)
		}
		for _, sib := range aligned {
			fmt.Fprintf(w, "%s ", label(sib))
		}
		fmt.Fprintf(w, "};\n")

		if int64(i) > maxAlignedRank {
			maxAlignedRank = int64(i)
			fmt.Fprintf(w, "\t{ edge [style=dashed, arrowhead=none]; %s ", label(id))
			for _, sib := range aligned {
				fmt.Fprintf(w, "-> %s ", label(sib))
				if r := int64(g.rank[sib]); r > maxAlignedRank {
					maxAlignedRank = r
				}
			}
			fmt.Fprintf(w, "}\n")
		}
	}

	if _, err := fmt.Fprint(w, "}\n"); err != nil {
		return pathIOf("graph: writing DOT footer: %v", err)
	}
	return nil
}
