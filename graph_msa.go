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

// msaColumns assigns every node the MSA column shared by its whole
// aligned-set cluster: nodes at the same rank position that belong to one
// cluster all receive the rank's column, and the column counter advances
// once per rank position rather than once per node. Grounded on
// original_source/src/graph.c's initialize_multiple_sequence_alignment.
func (g *Graph) msaColumns() (columns []int, numColumns int) {
	columns = make([]int, len(g.nodes))
	seen := make([]bool, len(g.nodes))

	column := 0
	for _, id := range g.rankToNode {
		if seen[id] {
			continue
		}
		columns[id] = column
		seen[id] = true
		for _, sib := range g.alignedSet(id) {
			columns[sib] = column
			seen[sib] = true
		}
		column++
	}
	return columns, column
}

// MSA renders the embedded sequences (and, when includeConsensus is true,
// the heaviest-bundle consensus) as equal-width rows over a shared column
// space, gap-filled with '-'. Grounded on original_source/src/graph.c's
// generate_multiple_sequence_alignment.
func (g *Graph) MSA(includeConsensus bool) []string {
	columns, numColumns := g.msaColumns()

	numRows := g.numSequences
	if includeConsensus {
		numRows++
	}

	rows := make([][]byte, numRows)
	for i := range rows {
		row := make([]byte, numColumns)
		for j := range row {
			row[j] = '-'
		}
		rows[i] = row
	}

	for seqIdx := 0; seqIdx < g.numSequences; seqIdx++ {
		id := g.sequencesBeginNode[seqIdx]
		for {
			rows[seqIdx][columns[id]] = g.nodes[id].Char
			next, ok := g.nodeSuccessor(id, seqIdx)
			if !ok {
				break
			}
			id = next
		}
	}

	if includeConsensus {
		g.TraverseHeaviestBundle()
		for _, id := range g.consensus {
			rows[g.numSequences][columns[id]] = g.nodes[id].Char
		}
	}

	out := make([]string, numRows)
	for i, row := range rows {
		out[i] = string(row)
	}
	return out
}
