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

import "github.com/biogo/biogo/alphabet"

// baseOther is the index used for any byte that is not one of A, C, G, T
// (this covers N and any other non-ACGT byte), mirroring the reference
// from_base_to_index_table's catch-all slot.
const baseOther = 4

// baseIndexTable maps the five DOT/consensus colour slots {A,C,G,T,other}
// to a small index, built once from biogo's DNA alphabet rather than a
// bespoke switch statement: each of A, C, G, T that biogo's alphabet.DNA
// reports valid via IsValid is folded, in both cases, into our 5-slot
// table; everything else (including N) lands in baseOther.
var baseIndexTable = func() [256]int {
	var tbl [256]int
	for i := range tbl {
		tbl[i] = baseOther
	}
	order := []byte{'A', 'C', 'G', 'T'}
	for i, b := range order {
		upper := alphabet.Letter(b)
		lower := alphabet.Letter(b - 'A' + 'a')
		if alphabet.DNA.IsValid(upper) {
			tbl[upper] = i
			tbl[lower] = i
		} else {
			// Fallback if the linked biogo alphabet ever rejects a
			// canonical base: keep the ACGT ordering anyway.
			tbl[b] = i
			tbl[b-'A'+'a'] = i
		}
	}
	return tbl
}()

// BaseIndex returns the ACGTN-style palette index for a base byte,
// case-insensitively. Any byte other than A/C/G/T (including N) maps to
// baseOther. Grounded on original_source/src/graph.c's
// from_base_to_index_table.
func BaseIndex(b byte) int {
	return baseIndexTable[b]
}

// dotPalette are Graphviz fill colours for the five BaseIndex slots, used
// by Graph.WriteDOT.
var dotPalette = [5]string{"palegreen", "lightskyblue", "khaki1", "lightpink", "white"}

// DotColor returns the Graphviz fill colour for a base byte.
func DotColor(b byte) string {
	return dotPalette[BaseIndex(b)]
}

// isReservedSentinel reports whether b is one of the two bytes this
// package reserves as framing sentinels (X for text-DAG segments, Y for
// patterns); neither may appear inside real sequence data.
func isReservedSentinel(b byte) bool {
	return b == segmentSentinel || b == patternSentinel
}
