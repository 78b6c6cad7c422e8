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
	"strings"
)

// WriteGFA writes a minimal GFA 1.0 dump of the text-DAG (spec §6):
// one header line, one S line per segment, one L line per predecessor edge,
// one P line per traversed sequence rank, and (only when addConsensus is
// true) a final "Consensus_sequence" path line.
func (d *TextDAG) WriteGFA(w io.Writer, addConsensus bool) error {
	numLinks := 0
	for _, s := range d.segments {
		numLinks += len(s.prev)
	}

	numPaths := d.numSequences + boolToInt(addConsensus)
	if _, err := fmt.Fprintf(w, "H\tVN:Z:1.0\tNS:i:%d\tNL:i:%d\tNP:i:%d\n",
		len(d.segments), numLinks, numPaths); err != nil {
		return pathIOf("textdag: writing GFA header: %v", err)
	}

	for id, s := range d.segments {
		if _, err := fmt.Fprintf(w, "S\t%d\t%s\n", id, s.rawSequence()); err != nil {
			return pathIOf("textdag: writing GFA segment %d: %v", id, err)
		}
	}

	for id, s := range d.segments {
		for _, prevID := range s.prev {
			if _, err := fmt.Fprintf(w, "L\t%d\t+\t%d\t+\t0M\n", prevID, id); err != nil {
				return pathIOf("textdag: writing GFA link %d->%d: %v", prevID, id, err)
			}
		}
	}

	for s := 0; s < d.numSequences; s++ {
		path := d.sequencePath(s)
		if _, err := fmt.Fprintf(w, "P\t%d\t%s\t*\n", s, gfaPath(path)); err != nil {
			return pathIOf("textdag: writing GFA path for sequence %d: %v", s, err)
		}
	}

	if addConsensus {
		d.TraverseHeaviestBundle()
		if _, err := fmt.Fprintf(w, "P\tConsensus_sequence\t%s\t*\n", gfaPath(d.consensus)); err != nil {
			return pathIOf("textdag: writing GFA consensus path: %v", err)
		}
	}

	return nil
}

// sequencePath returns, in topological order, the segment ids that sequence
// seqIdx traverses (membership recorded via AddSequenceRank).
func (d *TextDAG) sequencePath(seqIdx int) []int {
	var path []int
	for _, id := range d.rankToSegment {
		for _, r := range d.segments[id].seqRank {
			if r == seqIdx {
				path = append(path, id)
				break
			}
		}
	}
	return path
}

func gfaPath(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d+", id)
	}
	return strings.Join(parts, ",")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
