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

// TopologicalSort orders segments via Kahn's algorithm, per spec §4.5.
// Grounded on original_source/src/utils/text_dag.c's
// text_dag_topological_sort.
func (d *TextDAG) TopologicalSort() error {
	n := len(d.segments)
	inDegree := make([]int, n)
	for i, s := range d.segments {
		inDegree[i] = len(s.prev)
	}

	stack := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			stack = append(stack, i)
		}
	}

	rank := make([]int, 0, n)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rank = append(rank, id)
		for _, next := range d.segments[id].next {
			inDegree[next]--
			if inDegree[next] == 0 {
				stack = append(stack, next)
			}
		}
	}

	if len(rank) != n {
		return invariantf("textdag: graph is not a DAG (%d of %d segments reachable)", len(rank), n)
	}
	d.rankToSegment = rank
	return nil
}
