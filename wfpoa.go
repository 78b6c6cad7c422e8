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

// Options configures an Aligner.
type Options struct {
	// MaxDistance caps the edit distance WFPOA will search before giving
	// up with ErrOverflow. Zero means unbounded.
	MaxDistance int
}

// Aligner computes the wavefront edit-distance alignment of a pattern
// against a text-DAG. Grounded on
// original_source/src/edit/wfe_poa/edit_wavefront_poa_align.c's
// edit_wavefront_poa_align_init/edit_wavefront_poa_align.
type Aligner struct {
	opts Options
}

// NewAligner returns an Aligner configured by opts.
func NewAligner(opts Options) *Aligner {
	return &Aligner{opts: opts}
}

// Align finds the minimum-edit-distance alignment of pattern against every
// path through dag, returning its CIGAR. dag must already be topologically
// sorted (TopologicalSort).
func (a *Aligner) Align(pattern string, dag *TextDAG) (*CIGAR, error) {
	if dag.NumSegments() == 0 {
		return nil, inputMisusef("wfpoa: text-DAG has no segments")
	}
	for i := 0; i < len(pattern); i++ {
		if isReservedSentinel(pattern[i]) {
			return nil, inputMisusef("wfpoa: pattern contains reserved sentinel byte %q", pattern[i])
		}
	}

	padded := make([]byte, len(pattern)+1)
	copy(padded, pattern)
	padded[len(pattern)] = patternSentinel
	patternLength := len(pattern)

	ranks := dag.RankToSegmentID()
	segs := make([]*segmentWavefronts, dag.NumSegments())

	root := ranks[0]
	rootSW := newSegmentWavefronts(padded, patternLength, dag, root)
	rootSW.distMin = 0
	segs[root] = rootSW
	wf0 := newWavefront(rootSW.loMax(), rootSW.hiMax(), 0, 0)
	wf0.set(0, 0)
	rootSW.setWavefront(0, wf0)
	rootSW.numValidOffsets = 1

	var endLoc wfLocator
	for distance := 0; ; distance++ {
		if a.opts.MaxDistance > 0 && distance > a.opts.MaxDistance {
			return nil, overflowf("wfpoa: exceeded max distance %d aligning pattern of length %d", a.opts.MaxDistance, patternLength)
		}

		aligned := false
		anyActive := false
		for _, id := range ranks {
			sw := segs[id]
			if !sw.isActive(distance) {
				continue
			}
			anyActive = true

			loc, ok := segmentExtend(segs, dag, sw, distance)
			if ok {
				endLoc = loc
				aligned = true
				break
			}
			sw.computeNext(distance + 1)
		}
		if aligned {
			break
		}
		if !anyActive {
			return nil, invariantf("wfpoa: no active wavefronts left at distance %d before alignment completed", distance)
		}
	}

	return backtraceWFPOA(segs, dag, endLoc), nil
}

// computeNext derives sw's wavefront at distance from its wavefront at
// distance-1 by peeling the two boundary diagonals (each either extends
// the band by one or, if its neighbor was never reached or the band already
// sits at loMax/hiMax, does not) and
// computing every interior diagonal as the best of a substitution, an
// insertion and a deletion. Grounded on edit_wavefront_poa_align.c's
// edit_wavefront_segment_compute_next.
func (sw *segmentWavefronts) computeNext(distance int) {
	if sw.numValidOffsets == 0 {
		return
	}
	prev := sw.wavefrontAt(distance - 1)
	if prev == nil {
		return
	}

	lo, hi := prev.lo, prev.hi
	next := newWavefront(sw.loMax(), sw.hiMax(), lo-1, hi+1)
	sw.setWavefront(distance, next)

	if prev.get(lo) < 0 || lo-1 < sw.loMax() {
		next.lo = lo
	} else {
		next.set(lo-1, prev.get(lo))
		sw.numValidOffsets++
	}

	next.set(lo, max(prev.get(lo)+1, prev.get(lo+1)))

	for k := lo + 1; k <= hi-1; k++ {
		next.set(k, max(max(prev.get(k), prev.get(k-1))+1, prev.get(k+1)))
	}

	if hi > lo {
		next.set(hi, max(prev.get(hi), prev.get(hi-1))+1)
	}

	if prev.get(hi)+1 < 0 || hi+1 > sw.hiMax() {
		next.hi = hi
	} else {
		next.set(hi+1, prev.get(hi)+1)
		sw.numValidOffsets++
	}
}
