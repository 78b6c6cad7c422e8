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

// nodeMark is one of the three DFS marks used by TopologicalSort.
type nodeMark uint8

const (
	markUnvisited nodeMark = iota
	markOnStack
	markDone
)

// TopologicalSort rebuilds g.rankToNode via an iterative DFS with three node
// marks and a per-node "skip-aligned" flag (spec §4.2). When a node is
// emitted, every member of its aligned-set is emitted immediately after it so
// that an entire MSA column shares one rank cluster. Grounded on
// original_source/src/graph.c's topological_sort / is_topologically_sorted.
func (g *Graph) TopologicalSort() error {
	n := len(g.nodes)
	marks := make([]nodeMark, n)
	skipAligned := make([]bool, n)

	rank := make([]int, 0, n)
	stack := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if marks[start] != markUnvisited {
			continue
		}
		stack = append(stack, start)
		for len(stack) > 0 {
			id := stack[len(stack)-1]

			valid := true
			if marks[id] != markDone {
				for _, eid := range g.nodes[id].InEdges {
					pred := g.edges[eid].Begin
					if marks[pred] != markDone {
						if marks[pred] == markOnStack {
							return invariantf("graph: cycle detected through node %d -> %d, graph is not a DAG", pred, id)
						}
						stack = append(stack, pred)
						valid = false
					}
				}

				if !skipAligned[id] {
					for _, sib := range g.alignedSet(id) {
						if marks[sib] != markDone {
							stack = append(stack, sib)
							skipAligned[sib] = true
							valid = false
						}
					}
				}

				if valid {
					marks[id] = markDone
					if !skipAligned[id] {
						rank = append(rank, id)
						for _, sib := range g.alignedSet(id) {
							rank = append(rank, sib)
						}
					}
				} else {
					marks[id] = markOnStack
				}
			}

			if valid {
				stack = stack[:len(stack)-1]
			}
		}
	}

	g.rankToNode = rank
	g.rank = make([]int, n)
	for r, id := range rank {
		g.rank[id] = r
	}
	return nil
}

// IsTopologicallySorted reports whether every edge (u -> v) satisfies
// rank(u) < rank(v), i.e. every predecessor precedes its successor.
func (g *Graph) IsTopologicallySorted() bool {
	if len(g.rank) != len(g.nodes) {
		return false
	}
	visited := make([]bool, len(g.nodes))
	for _, id := range g.rankToNode {
		for _, eid := range g.nodes[id].InEdges {
			if !visited[g.edges[eid].Begin] {
				return false
			}
		}
		visited[id] = true
	}
	return true
}
