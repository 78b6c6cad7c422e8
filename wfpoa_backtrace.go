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

// backtraceWFPOA walks the wavefront chain backward from end, one segment
// at a time, and builds the CIGAR that explains it. Within a segment it
// alternates between consuming a run of free matches and, when a match run
// runs dry, choosing which distance-1 diagonal explains the current point
// under a delete-over-insert-over-mismatch preference (mirroring the D > I
// > M > X preference used elsewhere, with M implicit since matches are
// already peeled off before this choice is made). Reaching h == 0 with
// pattern still left to place means this segment's wavefront was seeded by
// a connection from a predecessor; the per-diagonal control slot records
// exactly where. Grounded on
// original_source/src/edit/wfe_poa/edit_wavefront_poa_backtrace.c's
// edit_wavefront_poa_backtrace_segment/edit_wavefront_poa_backtrace.
func backtraceWFPOA(segs []*segmentWavefronts, dag *TextDAG, end wfLocator) *CIGAR {
	c := NewCIGAR()
	loc := end

	for {
		sw := segs[loc.segment]
		d, k, offset := loc.distance, loc.k, loc.offset
		h := offsetToH(offset)
		v := offsetToV(k, offset)

		jumped := false
		for v > 0 {
			for h > 0 && v > 0 && sw.text[h-1] == sw.pattern[v-1] {
				c.prepend(OpMatch, 1)
				h--
				v--
			}
			if v == 0 {
				break
			}
			if h == 0 {
				ctl := sw.ctl(k)
				if !ctl.hasPrevious || ctl.currentWFBegin.distance != d {
					// True start of the alignment: nothing upstream placed
					// this diagonal at this distance.
					break
				}
				c.prependSegment(sw.index)
				loc = ctl.previousWFEnd
				jumped = true
				break
			}

			prev := sw.wavefrontAt(d - 1)
			if prev == nil {
				break
			}
			switch {
			case prev.get(k+1) == h:
				c.prepend(OpDelete, 1)
				v--
				k++
			case prev.get(k-1)+1 == h:
				c.prepend(OpInsert, 1)
				h--
				k--
			default:
				c.prepend(OpMismatch, 1)
				h--
				v--
			}
			d--
		}

		if jumped {
			continue
		}
		c.prependSegment(sw.index)
		if v > 0 {
			// No predecessor and no more pattern-side wavefront to chase:
			// this is the true start of the alignment, with v pattern
			// bases left unplaced against any text.
			c.prepend(OpDelete, v)
		}
		break
	}

	c.Score = end.distance
	return c
}
