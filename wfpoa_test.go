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
	"testing"

	"github.com/stretchr/testify/require"
)

// S4 — perfect match through the "GT" branch of buildBranchDAG.
func TestWFPOAAlignS4PerfectMatch(t *testing.T) {
	dag := buildBranchDAG(t)
	a := NewAligner(Options{})

	c, err := a.Align("ACTGTACT", dag)
	require.NoError(t, err)
	defer RecycleCIGAR(c)

	require.Equal(t, 0, c.Score)
	require.Equal(t, "(0)3M(2)2M(3)3M", c.String())
	require.NoError(t, c.Validate("ACTGTACT", dag))
}

// S5 — the same route, with mismatches scattered through every segment.
func TestWFPOAAlignS5WithMismatches(t *testing.T) {
	dag := buildBranchDAG(t)
	a := NewAligner(Options{})

	c, err := a.Align("AGTGGAGT", dag)
	require.NoError(t, err)
	defer RecycleCIGAR(c)

	require.Equal(t, 3, c.Score)
	require.Equal(t, "(0)1M1X1M(2)1M1X(3)1M1X1M", c.String())
	require.NoError(t, c.Validate("AGTGGAGT", dag))
}

// S6 — a short pattern forcing insertions around the branch.
func TestWFPOAAlignS6WithInsertions(t *testing.T) {
	dag := buildBranchDAG(t)
	a := NewAligner(Options{})

	c, err := a.Align("GT", dag)
	require.NoError(t, err)
	defer RecycleCIGAR(c)

	require.Equal(t, 6, c.Score)
	require.Equal(t, "(0)3I(2)2M(3)3I", c.String())
	require.NoError(t, c.Validate("GT", dag))
}

func TestWFPOAAlignLinearTextMatchesEditDP(t *testing.T) {
	dag := NewTextDAG()
	id, err := dag.AddSegment("GATTACA")
	require.NoError(t, err)
	require.NoError(t, dag.TopologicalSort())
	_ = id

	a := NewAligner(Options{})
	for _, pattern := range []string{"GATTACA", "GATTCA", "GATTACAA", "CCCCCCC"} {
		c, err := a.Align(pattern, dag)
		require.NoError(t, err)

		oracle := EditDP(pattern, "GATTACA")
		require.Equal(t, oracle.Score, c.Score, "pattern %q", pattern)
		require.NoError(t, c.Validate(pattern, dag))

		RecycleCIGAR(c)
		RecycleCIGAR(oracle)
	}
}

// Property §8.6: WFPOA's edit score must equal the EditDPPOA oracle's score
// for every (pattern, text-DAG) pair, across both the branch fixture and a
// handful of deliberately awkward patterns (empty, all-mismatch, longer
// than the DAG's longest path, shorter than its shortest).
func TestWFPOAMatchesEditDPPOAOracle(t *testing.T) {
	dag := buildBranchDAG(t)
	a := NewAligner(Options{})

	patterns := []string{
		"ACTGTACT",
		"ACTACCTGACT",
		"",
		"GGGGGGGGGGGG",
		"ACT",
		"ACTGTACTACTGTACT",
		"TTTGTTT",
		// A junk prefix ("GGG") that matches nothing in segment 0 forces
		// the wavefront's lo-boundary diagonal into the insertion-heavy
		// regime where a computeNext off-by-one would surface (see
		// TestComputeNextLoBoundaryMatchesOracle for the isolated case).
		"GGGACTGTACT",
	}
	for _, pattern := range patterns {
		got, err := a.Align(pattern, dag)
		require.NoError(t, err, "pattern %q", pattern)
		want := EditDPPOA(pattern, dag)

		require.Equal(t, want.Score, got.Score, "pattern %q: wfpoa=%d oracle=%d", pattern, got.Score, want.Score)
		require.NoError(t, got.Validate(pattern, dag), "pattern %q", pattern)

		RecycleCIGAR(got)
		RecycleCIGAR(want)
	}
}

// Property §8.6 on a larger, denser DAG (two branch points in series).
func TestWFPOAMatchesEditDPPOAOracleOnDeeperDAG(t *testing.T) {
	dag := NewTextDAG()
	s0, _ := dag.AddSegment("ACGT")
	s1, _ := dag.AddSegment("ACGGT")
	s2, _ := dag.AddSegment("AGT")
	s3, _ := dag.AddSegment("TTTT")
	s4, _ := dag.AddSegment("TTCTT")
	s5, _ := dag.AddSegment("GGCC")
	require.NoError(t, dag.AddConnection(s0, s1, 1))
	require.NoError(t, dag.AddConnection(s0, s2, 1))
	require.NoError(t, dag.AddConnection(s1, s3, 1))
	require.NoError(t, dag.AddConnection(s2, s3, 1))
	require.NoError(t, dag.AddConnection(s1, s4, 1))
	require.NoError(t, dag.AddConnection(s2, s4, 1))
	require.NoError(t, dag.AddConnection(s3, s5, 1))
	require.NoError(t, dag.AddConnection(s4, s5, 1))
	require.NoError(t, dag.TopologicalSort())

	a := NewAligner(Options{})
	patterns := []string{
		"ACGTACGGTTTTTGGCC",
		"ACGTAGTTTCTTGGCC",
		"AAAAAAAAAAAAAAAAAAA",
		"ACGTAGTTTTGGCC",
		"",
		// Leading junk before the matching run, as above, to drive the
		// root segment's lo-boundary diagonal into the same regime.
		"GGGACGTACGGTTTTTGGCC",
	}
	for _, pattern := range patterns {
		got, err := a.Align(pattern, dag)
		require.NoError(t, err, "pattern %q", pattern)
		want := EditDPPOA(pattern, dag)

		require.Equal(t, want.Score, got.Score, "pattern %q", pattern)
		require.NoError(t, got.Validate(pattern, dag), "pattern %q", pattern)

		RecycleCIGAR(got)
		RecycleCIGAR(want)
	}
}

// TestComputeNextLoBoundaryMatchesOracle is a minimal, hand-verified
// regression case for computeNext's lo-boundary recurrence: a pattern with
// a junk prefix that matches nothing forces distance-1's k=-1 diagonal (the
// wavefront's lo boundary after the very first step) to be derived purely
// from the deletion term at k=0, not a substitution at k=-1 itself. Giving
// that deletion term its own +1 (the bug this test guards against) claims
// an edit distance one better than reachable; the true answer is 3 (delete
// the pattern's "CCC", then match "AAAA" outright).
func TestComputeNextLoBoundaryMatchesOracle(t *testing.T) {
	dag := NewTextDAG()
	_, err := dag.AddSegment("AAAA")
	require.NoError(t, err)
	require.NoError(t, dag.TopologicalSort())

	a := NewAligner(Options{})
	c, err := a.Align("CCCAAAA", dag)
	require.NoError(t, err)
	defer RecycleCIGAR(c)

	oracle := EditDP("CCCAAAA", "AAAA")
	defer RecycleCIGAR(oracle)

	require.Equal(t, 3, c.Score)
	require.Equal(t, 3, oracle.Score)
	require.NoError(t, c.Validate("CCCAAAA", dag))
}

func TestWFPOAAlignRejectsReservedSentinelInPattern(t *testing.T) {
	dag := buildBranchDAG(t)
	a := NewAligner(Options{})
	_, err := a.Align("ACTY", dag)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInputMisuse)
}

func TestWFPOAAlignRejectsEmptyTextDAG(t *testing.T) {
	dag := NewTextDAG()
	a := NewAligner(Options{})
	_, err := a.Align("ACGT", dag)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInputMisuse)
}

func TestWFPOAAlignRespectsMaxDistance(t *testing.T) {
	dag := buildBranchDAG(t)
	a := NewAligner(Options{MaxDistance: 1})

	// "GT" against this DAG costs 6 (see S6), far past a max distance of 1.
	_, err := a.Align("GT", dag)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOverflow)
}

// Property §8.8: recomputing a wavefront from the same predecessor twice
// must be byte-identical (computeNext has no hidden mutable state besides
// its own output).
func TestComputeNextIsIdempotentGivenSamePredecessor(t *testing.T) {
	dag := NewTextDAG()
	_, err := dag.AddSegment("ACGTACGT")
	require.NoError(t, err)
	require.NoError(t, dag.TopologicalSort())

	padded := []byte("ACGTT" + string(patternSentinel))
	patternLength := 5

	sw := newSegmentWavefronts(padded, patternLength, dag, 0)
	sw.distMin = 0
	wf0 := newWavefront(sw.loMax(), sw.hiMax(), 0, 0)
	wf0.set(0, 0)
	sw.setWavefront(0, wf0)
	sw.numValidOffsets = 1

	sw.computeNext(1)
	first := append([]int(nil), sw.wavefronts[1].offsets...)
	firstLo, firstHi := sw.wavefronts[1].lo, sw.wavefronts[1].hi

	sw2 := newSegmentWavefronts(padded, patternLength, dag, 0)
	sw2.distMin = 0
	wf0b := newWavefront(sw2.loMax(), sw2.hiMax(), 0, 0)
	wf0b.set(0, 0)
	sw2.setWavefront(0, wf0b)
	sw2.numValidOffsets = 1
	sw2.computeNext(1)

	require.Equal(t, first, sw2.wavefronts[1].offsets)
	require.Equal(t, firstLo, sw2.wavefronts[1].lo)
	require.Equal(t, firstHi, sw2.wavefronts[1].hi)
}
