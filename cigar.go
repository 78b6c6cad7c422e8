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
	"strconv"
	"strings"
	"sync"
)

// OpKind is one CIGAR operation kind.
type OpKind byte

// The four edit operations, plus a non-operation SegmentMark used to stamp
// which text-DAG segment the following run belongs to.
const (
	OpMatch    OpKind = 'M'
	OpMismatch OpKind = 'X'
	OpInsert   OpKind = 'I'
	OpDelete   OpKind = 'D'
	opSegment  OpKind = 0 // internal: Segment field is the payload
)

// Op is one run-length-coalesced CIGAR entry, or (when Kind == opSegment) a
// marker recording which text-DAG segment id the following run(s) visit.
//
// This replaces the reference implementation's single-byte segment stamp
// (segment_idx + ASCII '0', ambiguous past 10 segments, see spec §9) with a
// structured tag+index entry, per spec §9's own recommendation.
type Op struct {
	Kind    OpKind
	N       int
	Segment int // valid only when Kind == opSegment
}

// CIGAR is a segment-annotated edit script, built by prepending during
// backtrace (ops are appended to an internal slice in backtrace order, i.e.
// from the alignment's end towards its start, then reversed once on first
// read) and then coalesced into runs. This mirrors the teacher's
// wfa_cigar.go AlignmentResult: construction is backtrace-ordered and a
// single process() pass reverses, merges adjacent runs of the same kind,
// and computes statistics.
type CIGAR struct {
	ops        []Op
	Score      int
	processed  bool
	matches    int
	mismatches int
	alignLen   int
}

var poolCIGAR = sync.Pool{New: func() interface{} { return &CIGAR{} }}

// NewCIGAR returns a pooled, empty CIGAR ready for backtrace construction.
func NewCIGAR() *CIGAR {
	c := poolCIGAR.Get().(*CIGAR)
	c.ops = c.ops[:0]
	c.Score = 0
	c.processed = false
	c.matches, c.mismatches, c.alignLen = 0, 0, 0
	return c
}

// RecycleCIGAR returns c to the pool. Callers must not use c afterwards.
func RecycleCIGAR(c *CIGAR) {
	if c == nil {
		return
	}
	poolCIGAR.Put(c)
}

// prepend appends one run in backtrace order (i.e. logically "before" the
// ops already added); String()/process() handle the final reversal.
func (c *CIGAR) prepend(kind OpKind, n int) {
	if n <= 0 {
		return
	}
	c.ops = append(c.ops, Op{Kind: kind, N: n})
}

// prependSegment records, in backtrace order, that the ops added so far
// (until the next segment marker) belong to text-DAG segment idx.
func (c *CIGAR) prependSegment(idx int) {
	c.ops = append(c.ops, Op{Kind: opSegment, Segment: idx})
}

// process reverses the backtrace-order ops into alignment order and merges
// adjacent same-kind runs, exactly as the teacher's AlignmentResult.process
// does for its packed uint64 ops.
func (c *CIGAR) process() {
	if c.processed {
		return
	}
	c.processed = true

	// reverse
	for i, j := 0, len(c.ops)-1; i < j; i, j = i+1, j-1 {
		c.ops[i], c.ops[j] = c.ops[j], c.ops[i]
	}

	merged := c.ops[:0:0]
	for _, op := range c.ops {
		if op.Kind != opSegment && len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.Kind == op.Kind {
				last.N += op.N
				continue
			}
		}
		merged = append(merged, op)
	}
	c.ops = merged

	for _, op := range c.ops {
		switch op.Kind {
		case OpMatch:
			c.matches += op.N
			c.alignLen += op.N
		case OpMismatch, OpInsert, OpDelete:
			c.mismatches += op.N
			c.alignLen += op.N
		}
	}
}

// Ops returns the coalesced, alignment-ordered operation list.
func (c *CIGAR) Ops() []Op {
	c.process()
	return c.ops
}

// Matches returns the number of M-operation bases after coalescing.
func (c *CIGAR) Matches() int {
	c.process()
	return c.matches
}

// EditDistance returns the sum of X, I, and D run lengths: the edit score
// of the alignment this CIGAR encodes.
func (c *CIGAR) EditDistance() int {
	c.process()
	return c.mismatches
}

// String renders the CIGAR the way the reference cigar_print does: runs as
// "<n><op>" and segment markers as "(<idx>)".
func (c *CIGAR) String() string {
	c.process()
	var b strings.Builder
	for _, op := range c.ops {
		if op.Kind == opSegment {
			b.WriteByte('(')
			b.WriteString(strconv.Itoa(op.Segment))
			b.WriteByte(')')
			continue
		}
		b.WriteString(strconv.Itoa(op.N))
		b.WriteByte(byte(op.Kind))
	}
	return b.String()
}

// AlignmentText renders the classic three-row (query / markers / text)
// pretty-print, mirroring both the reference cigar_print_pretty and the
// teacher's AlignmentResult.AlignmentText. Supplemented feature (not a new
// module — carried from both grounding sources' debug pretty-printers; see
// SPEC_FULL.md).
func (c *CIGAR) AlignmentText(pattern, text string) string {
	c.process()
	var top, mid, bot strings.Builder
	pi, ti := 0, 0
	for _, op := range c.ops {
		switch op.Kind {
		case opSegment:
			continue
		case OpMatch:
			top.WriteString(pattern[pi : pi+op.N])
			bot.WriteString(text[ti : ti+op.N])
			for i := 0; i < op.N; i++ {
				mid.WriteByte('|')
			}
			pi += op.N
			ti += op.N
		case OpMismatch:
			top.WriteString(pattern[pi : pi+op.N])
			bot.WriteString(text[ti : ti+op.N])
			for i := 0; i < op.N; i++ {
				mid.WriteByte('X')
			}
			pi += op.N
			ti += op.N
		case OpInsert:
			for i := 0; i < op.N; i++ {
				top.WriteByte('-')
				mid.WriteByte(' ')
			}
			bot.WriteString(text[ti : ti+op.N])
			ti += op.N
		case OpDelete:
			top.WriteString(pattern[pi : pi+op.N])
			for i := 0; i < op.N; i++ {
				bot.WriteByte('-')
				mid.WriteByte(' ')
			}
			pi += op.N
		}
	}
	return fmt.Sprintf("%s\n%s\n%s\n", top.String(), mid.String(), bot.String())
}

// Validate checks this CIGAR against the (pattern, dag) pair it was
// supposedly derived from: the segment markers must name a path through
// dag, and the consumed pattern/text byte counts must match exactly.
// Realizes testable property §8.5 and the reference cigar_check_alignment.
func (c *CIGAR) Validate(pattern string, dag *TextDAG) error {
	c.process()
	pi, segIdx, ti := 0, -1, 0
	var textBuf []byte
	for _, op := range c.ops {
		switch op.Kind {
		case opSegment:
			if op.Segment < 0 || op.Segment >= len(dag.segments) {
				return invariantf("cigar: segment index %d out of range", op.Segment)
			}
			if segIdx >= 0 {
				if ti != len(textBuf) {
					return invariantf("cigar: consumed %d of %d text bytes in segment %d", ti, len(textBuf), segIdx)
				}
				follows := false
				for _, s := range dag.Successors(segIdx) {
					follows = follows || s == op.Segment
				}
				if !follows {
					return invariantf("cigar: segment %d does not follow segment %d", op.Segment, segIdx)
				}
			}
			segIdx = op.Segment
			textBuf = dag.segments[segIdx].rawSequence()
			ti = 0
		case OpMatch, OpMismatch:
			if pi+op.N > len(pattern) {
				return invariantf("cigar: pattern overrun at op %s", string(op.Kind))
			}
			if segIdx < 0 || ti+op.N > len(textBuf) {
				return invariantf("cigar: text overrun at op %s", string(op.Kind))
			}
			pi += op.N
			ti += op.N
		case OpInsert:
			if segIdx < 0 || ti+op.N > len(textBuf) {
				return invariantf("cigar: text overrun at insertion")
			}
			ti += op.N
		case OpDelete:
			if pi+op.N > len(pattern) {
				return invariantf("cigar: pattern overrun at deletion")
			}
			pi += op.N
		default:
			return invariantf("cigar: unknown operation %v", op.Kind)
		}
	}
	if pi != len(pattern) {
		return invariantf("cigar: consumed %d of %d pattern bytes", pi, len(pattern))
	}
	if segIdx >= 0 && ti != len(textBuf) {
		return invariantf("cigar: consumed %d of %d text bytes in segment %d", ti, len(textBuf), segIdx)
	}
	return nil
}
