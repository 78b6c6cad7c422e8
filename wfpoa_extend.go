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

// segmentExtend walks every diagonal of sw's wavefront at distance forward
// through exact matches. A diagonal that runs into the segment's trailing
// sentinel either connects into every successor segment (opening their
// wavefronts at this same distance) or, at a sink segment with the
// pattern's trailing sentinel also reached, reports the alignment as
// complete; a sink diagonal with pattern bases still left stays open, so
// later distances can delete them. Grounded on edit_wavefront_poa_extend.c's
// edit_wavefront_poa_segment_extend.
func segmentExtend(segs []*segmentWavefronts, dag *TextDAG, sw *segmentWavefronts, distance int) (wfLocator, bool) {
	wf := sw.wavefrontAt(distance)
	for k := wf.lo; k <= wf.hi; k++ {
		ctl := sw.ctl(k)
		if ctl.disabled {
			wf.set(k, offsetNull)
			continue
		}

		offset := wf.get(k)
		v := offsetToV(k, offset)
		h := offsetToH(offset)
		if offset < 0 || h > sw.textLength || v > sw.patternLength {
			wf.set(k, offsetNull)
			continue
		}
		for v < sw.patternLength && h < sw.textLength && sw.pattern[v] == sw.text[h] {
			offset++
			v++
			h++
		}
		wf.set(k, offset)

		if sw.text[h] == segmentSentinel {
			if dag.IsSink(sw.index) {
				if sw.pattern[v] == patternSentinel {
					return wfLocator{segment: sw.index, distance: distance, k: k, offset: offset}, true
				}
				continue
			} else {
				connectOffset(segs, dag, sw, distance, k, offset)
			}
			wf.set(k, offsetNull)
			ctl.disabled = true
			sw.numValidOffsets--
		}
	}
	return wfLocator{}, false
}
