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

// branchCompletion disables score propagation on every sibling predecessor
// of rank's out-neighbors, then recomputes scores for every later rank,
// returning the new maximum-score node id. Grounded on
// original_source/src/graph.c's po_graph_branch_completion.
func (g *Graph) branchCompletion(scores, predecessors []int64, rank int) int {
	nodeID := g.rankToNode[rank]
	for _, eid := range g.nodes[nodeID].OutEdges {
		end := g.edges[eid].End
		for _, inEid := range g.nodes[end].InEdges {
			if g.edges[inEid].Begin != nodeID {
				scores[g.edges[inEid].Begin] = -1
			}
		}
	}

	var maxScore int64
	maxID := 0
	for i := rank + 1; i < len(g.nodes); i++ {
		id := g.rankToNode[i]
		scores[id] = -1
		predecessors[id] = -1
		for _, inEid := range g.nodes[id].InEdges {
			e := &g.edges[inEid]
			if scores[e.Begin] == -1 {
				continue
			}
			if scores[id] < e.TotalWeight ||
				(scores[id] == e.TotalWeight && scores[predecessors[id]] <= scores[e.Begin]) {
				scores[id] = e.TotalWeight
				predecessors[id] = int64(e.Begin)
			}
		}
		if predecessors[id] != -1 {
			scores[id] += scores[predecessors[id]]
		}
		if maxScore < scores[id] {
			maxScore = scores[id]
			maxID = id
		}
	}
	return maxID
}

// TraverseHeaviestBundle computes the POG's consensus path via the
// heaviest-bundle traversal (spec §4.4), leaving the result in g.consensus.
// Grounded on original_source/src/graph.c's po_graph_traverse_heaviest_bundle.
func (g *Graph) TraverseHeaviestBundle() {
	n := len(g.nodes)
	predecessors := make([]int64, n)
	scores := make([]int64, n)
	for i := range scores {
		predecessors[i] = -1
		scores[i] = -1
	}

	maxID := 0
	for i := 0; i < n; i++ {
		id := g.rankToNode[i]
		for _, inEid := range g.nodes[id].InEdges {
			e := &g.edges[inEid]
			if scores[id] < e.TotalWeight ||
				(scores[id] == e.TotalWeight && scores[predecessors[id]] <= scores[e.Begin]) {
				scores[id] = e.TotalWeight
				predecessors[id] = int64(e.Begin)
			}
		}
		if predecessors[id] != -1 {
			scores[id] += scores[predecessors[id]]
		}
		if scores[maxID] < scores[id] {
			maxID = id
		}
	}

	if len(g.nodes[maxID].OutEdges) != 0 {
		for i := 0; i < n; i++ {
			g.rank[g.rankToNode[i]] = i
		}
		for {
			maxID = g.branchCompletion(scores, predecessors, g.rank[maxID])
			if len(g.nodes[maxID].OutEdges) == 0 {
				break
			}
		}
	}

	g.consensus = g.consensus[:0]
	for predecessors[maxID] != -1 {
		g.consensus = append(g.consensus, maxID)
		maxID = int(predecessors[maxID])
	}
	g.consensus = append(g.consensus, maxID)
	for i, j := 0, len(g.consensus)-1; i < j; i, j = i+1, j-1 {
		g.consensus[i], g.consensus[j] = g.consensus[j], g.consensus[i]
	}
}

// Consensus returns the rank-ordered node ids on the heaviest-bundle
// consensus path (valid after TraverseHeaviestBundle).
func (g *Graph) Consensus() []int {
	return g.consensus
}
