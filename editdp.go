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

// poison marks an out-of-band score-matrix cell in EditDPBanded: any cell
// a banded column never touches reads back as "too expensive to ever win a
// MIN against", mirroring the reference's INT16_MAX sentinel.
const poison = 1 << 30

// EditDP computes the full Levenshtein edit-distance alignment of pattern
// against text via classic O(|pattern|*|text|) dynamic programming: the
// straight-line reference oracle underneath EditDPPOA and WFPOA's
// correctness tests (spec §4.6). Grounded on
// original_source/projects/edit-wfpoa/edit/edit_dp.c's edit_dp_compute.
func EditDP(pattern, text string) *CIGAR {
	p, t := len(pattern), len(text)
	matrix := newScoreMatrix(t, p)
	for v := 0; v <= p; v++ {
		matrix[0][v] = v
	}
	for h := 0; h <= t; h++ {
		matrix[h][0] = h
	}
	for h := 1; h <= t; h++ {
		for v := 1; v <= p; v++ {
			sub := matrix[h-1][v-1]
			if text[h-1] != pattern[v-1] {
				sub++
			}
			min := sub
			if ins := matrix[h-1][v] + 1; ins < min {
				min = ins
			}
			if del := matrix[h][v-1] + 1; del < min {
				min = del
			}
			matrix[h][v] = min
		}
	}
	return backtraceScoreMatrix(matrix, pattern, text, t, p)
}

// EditDPBanded computes the same alignment restricted to a diagonal band of
// half-width max(bandwidth, |len(text)-len(pattern)|+1), trading
// correctness on far-apart sequences for linear-ish memory and time on
// near-diagonal ones. Grounded on edit_dp.c's edit_dp_compute_banded.
func EditDPBanded(pattern, text string, bandwidth int) *CIGAR {
	p, t := len(pattern), len(text)
	kEnd := t - p
	if kEnd < 0 {
		kEnd = -kEnd
	}
	kEnd++
	band := bandwidth
	if kEnd > band {
		band = kEnd
	}

	matrix := newScoreMatrix(t, p)
	matrix[0][0] = 0
	for v := 1; v <= band && v <= p; v++ {
		matrix[0][v] = v
	}

	for h := 1; h <= t; h++ {
		loBand := h <= band
		lo := 1
		if !loBand {
			lo = h - band
		}
		if lo-1 >= 0 {
			if loBand {
				matrix[h][lo-1] = h
			} else {
				matrix[h][lo-1] = poison
			}
		}

		hi := p
		if band+h-1 < hi {
			hi = band + h - 1
		}
		if h > 1 && hi < len(matrix[h-1]) {
			matrix[h-1][hi] = poison
		}

		for v := lo; v <= hi; v++ {
			sub := matrix[h-1][v-1]
			if text[h-1] != pattern[v-1] {
				sub++
			}
			ins := matrix[h-1][v]
			del := matrix[h][v-1]
			min := ins
			if del < min {
				min = del
			}
			min++
			if sub < min {
				min = sub
			}
			matrix[h][v] = min
		}
	}
	return backtraceScoreMatrix(matrix, pattern, text, t, p)
}

// newScoreMatrix allocates a (t+1)x(p+1) score matrix, every cell poisoned
// so a banded caller's untouched cells never accidentally win a MIN.
func newScoreMatrix(t, p int) [][]int {
	matrix := make([][]int, t+1)
	for h := range matrix {
		row := make([]int, p+1)
		for v := range row {
			row[v] = poison
		}
		matrix[h] = row
	}
	return matrix
}

// backtraceScoreMatrix walks matrix from (text_length, pattern_length) back
// to the origin, preferring D (pattern-only step) over I (text-only step)
// over M/X (diagonal), then pads any leading unconsumed prefix as a
// leading insertion/deletion run. Grounded on edit_dp.c's
// edit_backtrace_score_matrix plus cigar.c's cigar_add_leading_insertion/
// cigar_add_leading_deletion.
func backtraceScoreMatrix(matrix [][]int, pattern, text string, h, v int) *CIGAR {
	c := NewCIGAR()
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
		default: // matrix[h][v] == matrix[h-1][v-1]+1
			c.prepend(OpMismatch, 1)
			h--
			v--
		}
	}
	if h > 0 {
		c.prepend(OpInsert, h)
	}
	if v > 0 {
		c.prepend(OpDelete, v)
	}
	c.Score = matrix[len(matrix)-1][len(matrix[0])-1]
	return c
}
