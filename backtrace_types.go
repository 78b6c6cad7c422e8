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

// wfLocator names one exact wavefront point: which segment, at what
// distance, on which diagonal, at what offset. Used both to record where
// an inter-segment connection landed and to report where the pattern's
// end was finally reached. Mirrors edit_wavefront_poa.h's
// edit_wavefront_locator_t.
type wfLocator struct {
	segment  int
	distance int
	k        int
	offset   int
}

// diagControl is the per-diagonal bookkeeping a segmentWavefronts carries
// alongside its offsets: where (in the predecessor segment) this diagonal
// was opened from, where (in this segment) it begins, and whether it has
// been permanently retired (closed on hitting the segment sentinel).
// Mirrors edit_wavefront_poa.h's edit_wavefront_control_t.
type diagControl struct {
	previousWFEnd  wfLocator
	currentWFBegin wfLocator
	hasPrevious    bool // previousWFEnd/currentWFBegin have been set at least once
	disabled       bool
}
