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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func weightsOf(n int) []int64 {
	w := make([]int64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// assertTopologicallySound checks testable property §8.1: for every edge
// (u -> v), rank(u) < rank(v).
func assertTopologicallySound(t *testing.T, g *Graph) {
	t.Helper()
	require.True(t, g.IsTopologicallySorted())
	require.Len(t, g.rankToNode, g.NumNodes())
	for id := 0; id < g.NumNodes(); id++ {
		for _, eid := range g.nodes[id].OutEdges {
			e := g.edges[eid]
			require.Less(t, g.RankOf(e.Begin), g.RankOf(e.End))
		}
	}
}

// assertAlignedSetColumnIdentity checks testable property §8.2: every
// aligned-set member shares its node's MSA column.
func assertAlignedSetColumnIdentity(t *testing.T, g *Graph) {
	t.Helper()
	columns, _ := g.msaColumns()
	for id := 0; id < g.NumNodes(); id++ {
		for _, sib := range g.alignedSet(id) {
			require.Equal(t, columns[id], columns[sib], "node %d and aligned sibling %d in different columns", id, sib)
		}
	}
}

// assertMSARoundTrips checks testable property §8.4: stripping '-' from
// each MSA row reproduces the original embedded sequence.
func assertMSARoundTrips(t *testing.T, g *Graph, sequences []string) {
	t.Helper()
	msa := g.MSA(false)
	require.Len(t, msa, len(sequences))
	for i, seq := range sequences {
		require.Equal(t, seq, strings.ReplaceAll(msa[i], "-", ""))
	}
}

// S1 — empty alignment then a single sequence (spec §8).
func TestAddAlignmentS1SingleSequence(t *testing.T) {
	g := NewGraph()
	seq := "CAAATAAGT"
	require.NoError(t, g.AddAlignment(nil, seq, weightsOf(len(seq))))

	require.Equal(t, 9, g.NumNodes())
	require.Len(t, g.edges, 8)
	require.Equal(t, 1, g.NumSequences())
	for i, id := range g.rankToNode {
		require.Equal(t, i, id)
	}
	assertTopologicallySound(t, g)
	assertMSARoundTrips(t, g, []string{seq})
	require.Equal(t, seq, g.MSA(false)[0])
}

// S2 — second sequence with one insertion (gap opposite the new sequence).
func TestAddAlignmentS2WithInsertion(t *testing.T) {
	g := NewGraph()
	seq1 := "CAAATAAGT"
	require.NoError(t, g.AddAlignment(nil, seq1, weightsOf(len(seq1))))

	seq2 := "CCAATAAT"
	pairs := []Pair{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, -1}, {8, 7},
	}
	require.NoError(t, g.AddAlignment(pairs, seq2, weightsOf(len(seq2))))

	require.Equal(t, 2, g.NumSequences())
	assertTopologicallySound(t, g)
	assertAlignedSetColumnIdentity(t, g)

	msa := g.MSA(false)
	require.Equal(t, "CAAATAAGT", msa[0])
	require.Equal(t, "CCAATAA-T", msa[1])
	assertMSARoundTrips(t, g, []string{seq1, seq2})

	// The freshly created node (column 2, character 'C') must be aligned
	// with node 1's 'A'.
	newNodeID := 9
	require.Equal(t, byte('C'), g.nodes[newNodeID].Char)
	sib, ok := g.findAlignedWithChar(newNodeID, 'A')
	require.True(t, ok)
	require.Equal(t, byte('A'), g.nodes[sib].Char)
}

// S3 — third sequence introducing a branch with a trailing base.
func TestAddAlignmentS3Branch(t *testing.T) {
	g := NewGraph()
	seq1 := "CAAATAAGT"
	require.NoError(t, g.AddAlignment(nil, seq1, weightsOf(len(seq1))))
	seq2 := "CCAATAAT"
	require.NoError(t, g.AddAlignment([]Pair{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, -1}, {8, 7},
	}, seq2, weightsOf(len(seq2))))

	seq3 := "CCTATC"
	pairs := []Pair{
		{0, 0}, {9, 1}, {2, -1}, {3, -1}, {4, 2}, {5, 3}, {6, 4}, {8, 5},
	}
	require.NoError(t, g.AddAlignment(pairs, seq3, weightsOf(len(seq3))))

	require.Equal(t, 3, g.NumSequences())
	assertTopologicallySound(t, g)
	assertAlignedSetColumnIdentity(t, g)

	sequences := []string{seq1, seq2, seq3}
	msa := g.MSA(false)
	require.Len(t, msa, 3)
	colWidth := len(msa[0])
	for _, row := range msa {
		require.Len(t, row, colWidth)
	}
	assertMSARoundTrips(t, g, sequences)
	for _, row := range msa {
		for _, c := range row {
			require.True(t, c == '-' || strings.ContainsRune("ACGT", c))
		}
	}
}

func TestAddAlignmentEmptySequenceIsNoOp(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddAlignment(nil, "", nil))
	require.Equal(t, 0, g.NumNodes())
	require.Equal(t, 0, g.NumSequences())
}

func TestAddAlignmentWeightsLengthMismatchFails(t *testing.T) {
	g := NewGraph()
	err := g.AddAlignment(nil, "ACGT", weightsOf(2))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInputMisuse)
}

func TestAddAlignmentOutOfRangePairFails(t *testing.T) {
	g := NewGraph()
	err := g.AddAlignment([]Pair{{-1, 5}}, "ACGT", weightsOf(4))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvariant)
}

// Edge uniqueness and weight accumulation (testable property §8.3): two
// sequences sharing a transition must coalesce onto one edge whose label
// count and total weight both reflect both contributions.
func TestEdgeUniquenessAndWeightAccumulation(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddAlignment(nil, "AC", []int64{1, 1}))
	require.NoError(t, g.AddAlignment([]Pair{{0, 0}, {1, 1}}, "AC", []int64{2, 3}))

	require.Len(t, g.edges, 1)
	e := g.edges[0]
	require.Equal(t, 0, e.Begin)
	require.Equal(t, 1, e.End)
	require.ElementsMatch(t, []int{0, 1}, e.Labels)
	// seq0: weights[0]+weights[1] = 1+1 = 2; seq1: 2+3 = 5.
	require.Equal(t, int64(7), e.TotalWeight)
}

func TestHeaviestBundleConsensusFollowsStrongerPath(t *testing.T) {
	g := NewGraph()
	// Three identical copies of "AAGT" reinforce one path; a single
	// divergent "AACT" should not move the consensus off the majority.
	for i := 0; i < 3; i++ {
		seq := "AAGT"
		var alignment []Pair
		if i > 0 {
			alignment = []Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
		}
		require.NoError(t, g.AddAlignment(alignment, seq, weightsOf(len(seq))))
	}
	require.NoError(t, g.AddAlignment([]Pair{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, "AACT", weightsOf(4)))

	g.TraverseHeaviestBundle()
	var consensus strings.Builder
	for _, id := range g.Consensus() {
		consensus.WriteByte(g.nodes[id].Char)
	}
	require.Equal(t, "AAGT", consensus.String())
}

func TestMSAWithConsensusRow(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddAlignment(nil, "ACGT", weightsOf(4)))
	msa := g.MSA(true)
	require.Len(t, msa, 2)
	require.Equal(t, "ACGT", msa[0])
	require.Equal(t, "ACGT", msa[1])
}
