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

// branchCompletion mirrors Graph's branch-completion phase at segment
// granularity: disable score propagation on every sibling predecessor of
// rank's successors, recompute scores past rank, and return the new
// maximum-score segment id. Grounded on
// original_source/src/utils/text_dag.c's text_dag_branch_completion.
func (d *TextDAG) branchCompletion(scores, predecessors []int64, rank int) int {
	segID := d.rankToSegment[rank]
	for _, nextID := range d.segments[segID].next {
		for _, prevID := range d.segments[nextID].prev {
			if prevID != segID {
				scores[prevID] = -1
			}
		}
	}

	var maxScore int64
	maxID := 0
	for i := rank + 1; i < len(d.segments); i++ {
		id := d.rankToSegment[i]
		s := d.segments[id]
		scores[id] = -1
		predecessors[id] = -1
		for j, prevID := range s.prev {
			if scores[prevID] == -1 {
				continue
			}
			w := s.prevWeight[j]
			if scores[id] < w || (scores[id] == w && scores[predecessors[id]] <= scores[prevID]) {
				scores[id] = w
				predecessors[id] = int64(prevID)
			}
		}
		if predecessors[id] != -1 {
			scores[id] += scores[predecessors[id]]
		}
		if maxScore < scores[id] {
			maxScore = scores[id]
			maxID = id
		}
	}
	return maxID
}

// TraverseHeaviestBundle computes the consensus path via the heaviest-bundle
// traversal (spec §4.4, mirrored at segment granularity per §4.5). Grounded
// on original_source/src/utils/text_dag.c's text_dag_traverse_heaviest_bundle.
func (d *TextDAG) TraverseHeaviestBundle() {
	n := len(d.segments)
	predecessors := make([]int64, n)
	scores := make([]int64, n)
	for i := range scores {
		predecessors[i] = -1
		scores[i] = -1
	}

	maxID := 0
	for i := 0; i < n; i++ {
		id := d.rankToSegment[i]
		s := d.segments[id]
		for j, prevID := range s.prev {
			w := s.prevWeight[j]
			if scores[id] < w || (scores[id] == w && scores[predecessors[id]] <= scores[prevID]) {
				scores[id] = w
				predecessors[id] = int64(prevID)
			}
		}
		if predecessors[id] != -1 {
			scores[id] += scores[predecessors[id]]
		}
		if scores[maxID] < scores[id] {
			maxID = id
		}
	}

	if !d.IsSink(maxID) {
		rankOf := make([]int, n)
		for i := 0; i < n; i++ {
			rankOf[d.rankToSegment[i]] = i
		}
		for {
			maxID = d.branchCompletion(scores, predecessors, rankOf[maxID])
			if d.IsSink(maxID) {
				break
			}
		}
	}

	d.consensus = d.consensus[:0]
	for predecessors[maxID] != -1 {
		d.consensus = append(d.consensus, maxID)
		maxID = int(predecessors[maxID])
	}
	d.consensus = append(d.consensus, maxID)
	for i, j := 0, len(d.consensus)-1; i < j; i, j = i+1, j-1 {
		d.consensus[i], d.consensus[j] = d.consensus[j], d.consensus[i]
	}
}

// Consensus returns the rank-ordered segment ids on the heaviest-bundle
// consensus path (valid after TraverseHeaviestBundle).
func (d *TextDAG) Consensus() []int {
	return d.consensus
}
