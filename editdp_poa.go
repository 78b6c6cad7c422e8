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

// EditDPPOA computes the exact edit-distance alignment of pattern against
// every path through dag via dynamic programming, one score matrix per
// segment threaded together at segment boundaries. This is WFPOA's
// correctness oracle (spec §4.7): same answer, no wavefronts, quadratic in
// pattern length times total text length. Grounded on
// original_source/projects/edit-wfpoa/edit/edit_dp_poa.c's
// edit_dp_poa_compute/edit_dp_poa_backtrace.
func EditDPPOA(pattern string, dag *TextDAG) *CIGAR {
	p := len(pattern)
	ranks := dag.RankToSegmentID()
	n := len(ranks)

	rankOf := make([]int, n)
	for r, id := range ranks {
		rankOf[id] = r
	}

	matrices := make([][][]int, n)
	for r, id := range ranks {
		text := dag.RawSegmentSequence(id)
		h := len(text)
		matrix := newScoreMatrix(h, p)

		if r == 0 {
			for v := 0; v <= p; v++ {
				matrix[0][v] = v
			}
			for hh := 0; hh <= h; hh++ {
				matrix[hh][0] = hh
			}
		} else {
			for v := 0; v <= p; v++ {
				matrix[0][v] = poison
			}
			for _, prevID := range dag.Predecessors(id) {
				prevMatrix := matrices[rankOf[prevID]]
				prevLen := len(prevMatrix) - 1
				for v := 0; v <= p; v++ {
					if prevMatrix[prevLen][v] < matrix[0][v] {
						matrix[0][v] = prevMatrix[prevLen][v]
					}
				}
			}
			for hh := 0; hh <= h; hh++ {
				matrix[hh][0] = matrix[0][0] + hh
			}
		}

		for hh := 1; hh <= h; hh++ {
			for v := 1; v <= p; v++ {
				sub := matrix[hh-1][v-1]
				if text[hh-1] != pattern[v-1] {
					sub++
				}
				min := sub
				if ins := matrix[hh-1][v] + 1; ins < min {
					min = ins
				}
				if del := matrix[hh][v-1] + 1; del < min {
					min = del
				}
				matrix[hh][v] = min
			}
		}
		matrices[r] = matrix
	}

	return backtraceDAG(matrices, ranks, rankOf, pattern, dag)
}

// backtraceDAG walks the last segment's matrix backward, and on exhausting
// one segment region (h reaches 0), jumps to whichever predecessor segment's
// final column matches the boundary score exactly, continuing until no
// predecessor matches (start of the DAG). Grounded on edit_dp_poa.c's
// edit_dp_poa_backtrace.
func backtraceDAG(matrices [][][]int, ranks, rankOf []int, pattern string, dag *TextDAG) *CIGAR {
	c := NewCIGAR()
	v := len(pattern)
	r := len(ranks) - 1
	for r >= 0 {
		id := ranks[r]
		matrix := matrices[r]
		h := len(matrix) - 1

		for h > 0 && v > 0 {
			switch {
			case matrix[h][v] == matrix[h][v-1]+1:
				c.prepend(OpDelete, 1)
				v--
			case matrix[h][v] == matrix[h-1][v]+1:
				c.prepend(OpInsert, 1)
				h--
			case matrix[h][v] == matrix[h-1][v-1]:
				c.prepend(OpMatch, 1)
				h--
				v--
			default:
				c.prepend(OpMismatch, 1)
				h--
				v--
			}
		}
		if h > 0 {
			c.prepend(OpInsert, h)
		}
		c.prependSegment(id)

		next := -1
		for _, prevID := range dag.Predecessors(id) {
			prevMatrix := matrices[rankOf[prevID]]
			prevLen := len(prevMatrix) - 1
			if prevMatrix[prevLen][v] == matrix[0][v] {
				next = rankOf[prevID]
				break
			}
		}
		r = next
	}

	if v > 0 {
		c.prepend(OpDelete, v)
	}
	c.Score = matrices[len(matrices)-1][len(matrices[len(matrices)-1])-1][len(pattern)]
	return c
}
