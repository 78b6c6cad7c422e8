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

// segmentWavefronts holds every distance's wavefront for one text-DAG
// segment, plus the per-diagonal control state WFPOA's connect/backtrace
// steps need. The root segment's is created when Align starts; every other
// one is created lazily the first time some other segment's extend step
// connects into it. The wavefronts-by-distance slice grows by
// amortized doubling, the same idiom the teacher's wfa_component.go uses
// for its score-indexed Component.WaveFronts, generalized from "indexed by
// score" to "indexed by distance" (spec §3.3/§5).
//
// Grounded on edit_wavefront_poa.c's edit_wavefront_segment_t /
// edit_wavefront_segment_new / edit_wavefront_segment_is_active.
type segmentWavefronts struct {
	index         int // this segment's id in the text-DAG
	pattern       []byte // pattern-length+1 bytes: pattern + trailing patternSentinel
	patternLength int    // unpadded pattern length
	text          []byte // raw segment sequence + trailing segmentSentinel
	textLength    int    // unpadded segment length

	wavefronts      []*wavefront // indexed by distance
	distMin         int
	distMax         int
	control         []diagControl // indexed by k+patternLength (centered at k=0)
	numValidOffsets int
}

func newSegmentWavefronts(pattern []byte, patternLength int, dag *TextDAG, segmentID int) *segmentWavefronts {
	rawText := dag.RawSegmentSequence(segmentID)
	text := make([]byte, len(rawText)+1)
	copy(text, rawText)
	text[len(rawText)] = segmentSentinel

	return &segmentWavefronts{
		index:         segmentID,
		pattern:       pattern,
		patternLength: patternLength,
		text:          text,
		textLength:    dag.SegmentLength(segmentID),
		control:       make([]diagControl, patternLength+dag.SegmentLength(segmentID)+1),
		distMin:       -1,
		distMax:       -1,
	}
}

// isActive reports whether this segment has an open wavefront at distance
// and has at least one valid (non-retired) diagonal left to extend.
// Grounded on edit_wavefront_poa.c's edit_wavefront_segment_is_active.
func (sw *segmentWavefronts) isActive(distance int) bool {
	if sw == nil || sw.numValidOffsets == 0 {
		return false
	}
	return sw.wavefrontAt(distance) != nil
}

func (sw *segmentWavefronts) wavefrontAt(distance int) *wavefront {
	if distance < 0 || distance >= len(sw.wavefronts) {
		return nil
	}
	return sw.wavefronts[distance]
}

func (sw *segmentWavefronts) setWavefront(distance int, wf *wavefront) {
	for len(sw.wavefronts) <= distance {
		sw.wavefronts = append(sw.wavefronts, nil)
	}
	sw.wavefronts[distance] = wf
	if sw.distMin == -1 || distance < sw.distMin {
		sw.distMin = distance
	}
	if distance > sw.distMax {
		sw.distMax = distance
	}
}

// ctl returns the control slot for diagonal k, centered at k=0.
func (sw *segmentWavefronts) ctl(k int) *diagControl {
	return &sw.control[k+sw.patternLength]
}

func (sw *segmentWavefronts) loMax() int { return -sw.patternLength }
func (sw *segmentWavefronts) hiMax() int { return sw.textLength }
