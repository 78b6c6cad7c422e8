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

// connectOffset propagates a diagonal that just ran into sw's trailing
// sentinel into every successor segment, at the same distance: h restarts
// at 0, v carries over from where the exhausted diagonal left off, and the
// landing diagonal is k' = diagonal(0, v). Successor segmentWavefronts are
// created lazily. Grounded on edit_wavefront_poa_connect.c's
// edit_wavefront_poa_connect_offset.
func connectOffset(segs []*segmentWavefronts, dag *TextDAG, sw *segmentWavefronts, distance, k, offset int) {
	v := offsetToV(k, offset)
	nextK := diagonal(0, v)
	const nextOffset = 0

	for _, nextID := range dag.Successors(sw.index) {
		next := segs[nextID]
		if next == nil {
			next = newSegmentWavefronts(sw.pattern, sw.patternLength, dag, nextID)
			next.distMin = distance
			segs[nextID] = next
		}

		nextWF := next.wavefrontAt(distance)
		wfNew := false
		if nextWF == nil {
			nextWF = newWavefront(next.loMax(), next.hiMax(), nextK, nextK)
			next.setWavefront(distance, nextWF)
			wfNew = true
		}

		setOffset := wfNew
		if !wfNew {
			if nextK < nextWF.lo || nextK > nextWF.hi || nextWF.get(nextK) < nextOffset {
				setOffset = true
			}
		}

		if setOffset {
			nextWF.set(nextK, nextOffset)
			next.numValidOffsets++
			ctl := next.ctl(nextK)
			ctl.previousWFEnd = wfLocator{segment: sw.index, distance: distance, k: k, offset: offset}
			ctl.currentWFBegin = wfLocator{segment: nextID, distance: distance, k: nextK, offset: nextOffset}
			ctl.hasPrevious = true
		}

		if nextK > nextWF.hi {
			nextWF.growHi(nextK)
		} else if nextK < nextWF.lo {
			nextWF.growLo(nextK)
		}
	}
}
