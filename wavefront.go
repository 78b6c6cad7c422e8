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

import "sync"

// offsetNull marks a diagonal with no valid offset at the current distance
// (EWAVEFRONT_OFFSET_NULL in the reference).
const offsetNull = -10

// diagonal translates a wavefront coordinate pair to its diagonal number:
// k = h - v, matching EWAVEFRONT_DIAGONAL.
func diagonal(h, v int) int { return h - v }

// offsetToH/offsetToV translate an offset on diagonal k back to h,v
// (EWAVEFRONT_H / EWAVEFRONT_V): h is the offset itself, v = offset - k.
func offsetToH(offset int) int    { return offset }
func offsetToV(k, offset int) int { return offset - k }

// wavefront is one (segment, distance) edit wavefront: the highest offset
// reached so far on every diagonal k in [loMax, hiMax]. Unlike the
// teacher's wfa_wavefront.go (a semi-infinite zigzag-indexed array, since a
// classic WFA diagonal range is unbounded until observed), every wavefront
// here has a conservative bound known up front — no h can exceed the
// segment's length, no v can exceed the pattern's length — so offsets is a
// direct contiguous array indexed by k-loMax (mirroring the reference's
// `offsets = offsets_mem - lo_max` pointer trick) rather than a growable
// zigzag-ordered one.
type wavefront struct {
	loMax, hiMax int // allocated diagonal bounds (inclusive)
	lo, hi       int // effective diagonal bounds currently in use (inclusive)
	offsets      []int
}

var poolWavefront = sync.Pool{New: func() interface{} { return &wavefront{} }}

// newWavefront returns a pooled wavefront covering diagonals [loMax, hiMax],
// with its effective range initialized to [lo, hi] and every offset reset
// to offsetNull. Grounded on edit_wavefront_poa.c's edit_wavefront_new.
func newWavefront(loMax, hiMax, lo, hi int) *wavefront {
	wf := poolWavefront.Get().(*wavefront)
	n := hiMax - loMax + 1
	if cap(wf.offsets) < n {
		wf.offsets = make([]int, n)
	} else {
		wf.offsets = wf.offsets[:n]
	}
	for i := range wf.offsets {
		wf.offsets[i] = offsetNull
	}
	wf.loMax, wf.hiMax = loMax, hiMax
	wf.lo, wf.hi = lo, hi
	return wf
}

func recycleWavefront(wf *wavefront) {
	if wf != nil {
		poolWavefront.Put(wf)
	}
}

// inBounds reports whether diagonal k falls within the allocated range.
func (w *wavefront) inBounds(k int) bool { return k >= w.loMax && k <= w.hiMax }

// get returns the offset on diagonal k, or offsetNull if k is outside the
// wavefront's effective [lo, hi] range.
func (w *wavefront) get(k int) int {
	if k < w.lo || k > w.hi {
		return offsetNull
	}
	return w.offsets[k-w.loMax]
}

// set stores the offset on diagonal k. k must be within [loMax, hiMax];
// callers that would overshoot the allocated range (the reference's
// acknowledged off-by-one at the extreme diagonals, see
// edit_wavefront_segment_compute_next's "TODO Proper boundary check")
// silently clamp instead of expanding past it, since a diagonal beyond
// [loMax, hiMax] can never correspond to a valid (h, v) pair.
func (w *wavefront) set(k, offset int) {
	if !w.inBounds(k) {
		return
	}
	w.offsets[k-w.loMax] = offset
}

// growLo extends the effective range down to k, nulling any newly exposed
// diagonal strictly between the old lo and k.
func (w *wavefront) growLo(k int) {
	if !w.inBounds(k) {
		return
	}
	for j := k + 1; j < w.lo; j++ {
		w.offsets[j-w.loMax] = offsetNull
	}
	if k < w.lo {
		w.lo = k
	}
}

// growHi extends the effective range up to k, nulling any newly exposed
// diagonal strictly between the old hi and k.
func (w *wavefront) growHi(k int) {
	if !w.inBounds(k) {
		return
	}
	for j := w.hi + 1; j < k; j++ {
		w.offsets[j-w.loMax] = offsetNull
	}
	if k > w.hi {
		w.hi = k
	}
}
