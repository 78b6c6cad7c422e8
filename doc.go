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

// Package poa implements a partial-order alignment (POA) core: a weighted,
// topologically sorted graph (Graph) that supports incremental insertion of
// aligned sequences and yields a multiple sequence alignment plus a
// heaviest-bundle consensus, and a wavefront partial-order aligner (Aligner)
// that computes an edit-distance alignment of a pattern against a text-DAG
// of segments (TextDAG) by propagating diagonal-wavefront offsets across
// branches, then backtraces a segment-annotated CIGAR.
//
// A reference DP aligner (EditDP, EditDPPOA) is included as Aligner's
// correctness oracle.
package poa
