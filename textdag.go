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

// segmentSentinel ('X') and patternSentinel ('Y') flank every stored text-DAG
// segment and pattern respectively (spec §3.2, §6). Neither may appear inside
// real sequence data.
const (
	segmentSentinel byte = 'X'
	patternSentinel byte = 'Y'
)

// segment is one text-DAG node: a sentinel-padded sequence plus predecessor
// and successor segment ids. There is no reserved END segment id (resolved
// ambiguity, see DESIGN.md and SPEC_FULL.md §3.2) — a segment with no
// successors is a DAG sink and plays the END role implicitly.
type segment struct {
	sequence   []byte // padded buffer: sentinel + raw sequence + sentinel
	rawLen     int    // length of the sequence, excluding the two sentinels
	prev       []int
	prevWeight []int64
	next       []int
	seqRank    []int // sequence ranks that traverse this segment (optional)
}

// rawSequence returns the unpadded sequence bytes (between the two
// sentinels).
func (s *segment) rawSequence() []byte {
	return s.sequence[1 : 1+s.rawLen]
}

// TextDAG is a topologically sorted DAG of sentinel-padded segments, the
// reference structure WFPOA aligns a pattern against (spec §3.2).
type TextDAG struct {
	segments      []*segment
	rankToSegment []int
	consensus     []int
	numSequences  int
}

// NewTextDAG returns an empty text-DAG.
func NewTextDAG() *TextDAG {
	return &TextDAG{}
}

// NumSegments returns the number of segments added so far.
func (d *TextDAG) NumSegments() int { return len(d.segments) }

// AddSegment appends a new segment holding sequence, padded on both sides by
// segmentSentinel, and returns its id. Grounded on
// original_source/src/utils/text_dag.c's text_dag_add_segment.
func (d *TextDAG) AddSegment(sequence string) (int, error) {
	for i := 0; i < len(sequence); i++ {
		if isReservedSentinel(sequence[i]) {
			return -1, inputMisusef("textdag: segment sequence contains reserved sentinel byte %q", sequence[i])
		}
	}
	buf := make([]byte, len(sequence)+2)
	buf[0] = segmentSentinel
	copy(buf[1:], sequence)
	buf[len(buf)-1] = segmentSentinel
	id := len(d.segments)
	d.segments = append(d.segments, &segment{sequence: buf, rawLen: len(sequence)})
	return id, nil
}

// AddConnection links segment a -> b with the given weight (spec §4.5). If
// the connection already exists, the weight is added to the existing one
// instead of creating a duplicate.
func (d *TextDAG) AddConnection(a, b int, weight int64) error {
	if a < 0 || a >= len(d.segments) || b < 0 || b >= len(d.segments) {
		return invariantf("textdag: connection (%d -> %d) references an unknown segment", a, b)
	}
	segB := d.segments[b]
	for i, p := range segB.prev {
		if p == a {
			segB.prevWeight[i] += weight
			return nil
		}
	}
	d.segments[a].next = append(d.segments[a].next, b)
	segB.prev = append(segB.prev, a)
	segB.prevWeight = append(segB.prevWeight, weight)
	return nil
}

// AddSequenceRank records that sequence seqIdx traverses segment id, used by
// WriteGFA to emit one P path line per input sequence (spec §6).
func (d *TextDAG) AddSequenceRank(id, seqIdx int) error {
	if id < 0 || id >= len(d.segments) {
		return invariantf("textdag: AddSequenceRank references unknown segment %d", id)
	}
	d.segments[id].seqRank = append(d.segments[id].seqRank, seqIdx)
	if seqIdx+1 > d.numSequences {
		d.numSequences = seqIdx + 1
	}
	return nil
}

// IsSink reports whether segment id has no successors: the implicit
// end-of-graph predicate WFPOA's segment_extend uses (SPEC_FULL.md §3.2).
func (d *TextDAG) IsSink(id int) bool {
	return len(d.segments[id].next) == 0
}

// SegmentLength returns the raw (unpadded) sequence length of segment id.
func (d *TextDAG) SegmentLength(id int) int {
	return d.segments[id].rawLen
}

// SegmentSequence returns the padded sequence buffer (sentinel-framed) of
// segment id.
func (d *TextDAG) SegmentSequence(id int) []byte {
	return d.segments[id].sequence
}

// RawSegmentSequence returns segment id's sequence with both flanking
// sentinels stripped, the form the DP oracle aligns against.
func (d *TextDAG) RawSegmentSequence(id int) []byte {
	return d.segments[id].rawSequence()
}

// Successors returns the successor segment ids of id, in insertion order.
func (d *TextDAG) Successors(id int) []int {
	return d.segments[id].next
}

// Predecessors returns the predecessor segment ids of id, in insertion order.
func (d *TextDAG) Predecessors(id int) []int {
	return d.segments[id].prev
}

// RankToSegmentID returns the rank-ordered segment id slice (valid after
// TopologicalSort).
func (d *TextDAG) RankToSegmentID() []int {
	return d.rankToSegment
}
