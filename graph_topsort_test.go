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
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// gonumRankOf builds an independent gonum DirectedGraph mirroring g's node
// and edge set, runs topo.Sort on it, and returns the rank each node id
// ends up at in *that* sort. Used as an external oracle for the
// topological-soundness property (§8.1), not to reproduce this package's
// own DFS order (gonum's Kahn-based sort need not agree on tie-breaks).
func gonumRankOf(t *testing.T, g *Graph) map[int64]int {
	t.Helper()
	gg := simple.NewDirectedGraph()
	for id := 0; id < g.NumNodes(); id++ {
		gg.AddNode(simple.Node(int64(id)))
	}
	for _, e := range g.edges {
		gg.SetEdge(simple.Edge{F: simple.Node(int64(e.Begin)), T: simple.Node(int64(e.End))})
	}
	sorted, err := topo.Sort(gg)
	require.NoError(t, err, "gonum detected a cycle in a graph this package considers acyclic")

	rank := make(map[int64]int, len(sorted))
	for i, n := range sorted {
		rank[n.ID()] = i
	}
	return rank
}

// TestTopologicalSortAgreesWithGonumOracle cross-validates this package's
// own DFS-based TopologicalSort against gonum's independent Kahn-based
// implementation: both must agree that every edge respects its endpoints'
// relative order, on a graph built up over several incremental additions
// (the scenario most likely to desync the two if either sort were wrong).
func TestTopologicalSortAgreesWithGonumOracle(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddAlignment(nil, "CAAATAAGT", weightsOf(9)))
	require.NoError(t, g.AddAlignment([]Pair{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, -1}, {8, 7},
	}, "CCAATAAT", weightsOf(8)))
	require.NoError(t, g.AddAlignment([]Pair{
		{0, 0}, {9, 1}, {2, -1}, {3, -1}, {4, 2}, {5, 3}, {6, 4}, {8, 5},
	}, "CCTATC", weightsOf(6)))

	assertTopologicallySound(t, g)

	gonumRank := gonumRankOf(t, g)
	for id := 0; id < g.NumNodes(); id++ {
		for _, eid := range g.nodes[id].OutEdges {
			e := g.edges[eid]
			require.Less(t, gonumRank[int64(e.Begin)], gonumRank[int64(e.End)],
				"gonum's independent sort disagrees that %d precedes %d", e.Begin, e.End)
		}
	}
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	g := NewGraph()
	a := g.newNode('A')
	b := g.newNode('C')
	g.addEdge(a, b, 0, 1)
	g.addEdge(b, a, 0, 1)

	err := g.TopologicalSort()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvariant)
}
