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
	"sync"
)

var poolPlotRow = sync.Pool{New: func() interface{} {
	return make([]int32, 0, 128)
}}

// PlotWavefronts dumps sw's full wavefront history for one segment as a
// tab-delimited (pattern row) x (segment text column) table: each cell
// holds the lowest distance at which that (v, h) cell was ever reached, or
// a dot if it was never reached. A debugging aid, not used by Align.
// Grounded on the teacher's wfa_component_plot.go Aligner.Plot, simplified
// since there is no affine gap-open/extend distinction to recolor here —
// every reached cell already fully determines its operation from sw.pattern
// and sw.text alone.
func (sw *segmentWavefronts) PlotWavefronts(w io.Writer) {
	rows := make([][]int32, sw.patternLength)
	for v := range rows {
		row := poolPlotRow.Get().([]int32)[:0]
		for h := 0; h < sw.textLength; h++ {
			row = append(row, -1)
		}
		rows[v] = row
	}
	defer func() {
		for _, row := range rows {
			poolPlotRow.Put(row)
		}
	}()

	for d, wf := range sw.wavefronts {
		if wf == nil {
			continue
		}
		for k := wf.lo; k <= wf.hi; k++ {
			offset := wf.get(k)
			if offset < 0 {
				continue
			}
			h := offsetToH(offset)
			v := offsetToV(k, offset)
			if v <= 0 || h <= 0 || v > sw.patternLength || h > sw.textLength {
				continue
			}
			if rows[v-1][h-1] >= 0 {
				continue
			}
			rows[v-1][h-1] = int32(d)
		}
	}

	fmt.Fprint(w, "   \t ")
	for h := 0; h < sw.textLength; h++ {
		fmt.Fprintf(w, "\t%3c", sw.text[h])
	}
	fmt.Fprintln(w)

	for v := 0; v < sw.patternLength; v++ {
		fmt.Fprintf(w, "%3d\t%c", v+1, sw.pattern[v])
		for _, s := range rows[v] {
			if s < 0 {
				fmt.Fprint(w, "\t  .")
			} else {
				fmt.Fprintf(w, "\t%3d", s)
			}
		}
		fmt.Fprintln(w)
	}
}
