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

// nodeGrowSize is the amortized-doubling base size for Graph's owned node
// and edge arrays, following the growable-owned-array idiom spec §9 asks
// for in place of the reference's ad-hoc malloc(3*...) sizing.
const nodeGrowSize = 256

// Edge is a directed edge between two Node ids, owned by Graph's edge
// arena and addressed by index only (arena+index pattern, per spec §9:
// "adopt uniformly; never raw pointer cycles").
type Edge struct {
	Begin, End   int
	Labels       []int // sequence indices that traverse this edge
	TotalWeight  int64
}

// Node is one POG node: a single character plus incoming/outgoing edge
// indices (into Graph.edges). Aligned-set membership lives in Graph's
// cluster maps, not on the node.
type Node struct {
	Char     byte
	InEdges  []int
	OutEdges []int
}

// Graph is the partial-order graph (POG): a weighted, topologically sorted
// DAG. Nodes and edges are never destroyed once created; the rank array is
// rebuilt after every AddAlignment.
type Graph struct {
	nodes []Node
	edges []Edge

	// aligned-set equivalence, represented as a cluster-id map per spec
	// §9's recommendation over the reference's O(k^2) variable-length
	// array approach.
	cluster      map[int]int
	clusterNodes map[int][]int

	rankToNode []int // length == len(nodes) once sorted
	rank       []int // rank[nodeID] = position in rankToNode, inverse map

	sequencesBeginNode []int
	numSequences       int

	consensus []int
}

// NewGraph returns an empty POG.
func NewGraph() *Graph {
	return &Graph{
		nodes:        make([]Node, 0, nodeGrowSize),
		edges:        make([]Edge, 0, nodeGrowSize),
		cluster:      make(map[int]int),
		clusterNodes: make(map[int][]int),
	}
}

// NumNodes returns the number of nodes created so far.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumSequences returns the number of sequences embedded so far.
func (g *Graph) NumSequences() int { return g.numSequences }

// Node returns node id's data.
func (g *Graph) Node(id int) Node { return g.nodes[id] }

// RankOf returns the topological rank of node id (valid after a
// topological sort has run; AddAlignment always re-sorts).
func (g *Graph) RankOf(id int) int { return g.rank[id] }

// RankToNodeID returns the rank-ordered node id slice.
func (g *Graph) RankToNodeID() []int { return g.rankToNode }

func (g *Graph) newNode(ch byte) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{Char: ch})
	return id
}

// alignedSet returns the sibling node ids sharing n's MSA column (not
// including n itself), per spec §3.1's aligned-set invariant (symmetric,
// reflexive-excluded).
func (g *Graph) alignedSet(n int) []int {
	cid, ok := g.cluster[n]
	if !ok {
		return nil
	}
	members := g.clusterNodes[cid]
	out := make([]int, 0, len(members)-1)
	for _, m := range members {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}

// addToAlignedSet merges n into existing's aligned-set cluster (symmetric,
// transitive closure within the cluster), per spec §4.1 step 3d.
func (g *Graph) addToAlignedSet(existing, n int) {
	cid, ok := g.cluster[existing]
	if !ok {
		cid = existing // use the node id itself as a stable cluster key
		g.cluster[existing] = cid
		g.clusterNodes[cid] = []int{existing}
	}
	g.cluster[n] = cid
	g.clusterNodes[cid] = append(g.clusterNodes[cid], n)
}

// findAlignedWithChar searches n's aligned-set for a sibling carrying ch,
// per spec §4.1 step 3c.
func (g *Graph) findAlignedWithChar(n int, ch byte) (int, bool) {
	for _, m := range g.alignedSet(n) {
		if g.nodes[m].Char == ch {
			return m, true
		}
	}
	return -1, false
}

// addEdge implements the edge-coalescing rule from spec §4.1/§4.5: if
// (begin,end) already exists, append seqIdx to its label list and add
// weight to its total instead of creating a second edge.
func (g *Graph) addEdge(begin, end, seqIdx int, weight int64) {
	for _, eid := range g.nodes[begin].OutEdges {
		e := &g.edges[eid]
		if e.End == end {
			e.Labels = append(e.Labels, seqIdx)
			e.TotalWeight += weight
			return
		}
	}
	eid := len(g.edges)
	g.edges = append(g.edges, Edge{Begin: begin, End: end, Labels: []int{seqIdx}, TotalWeight: weight})
	g.nodes[begin].OutEdges = append(g.nodes[begin].OutEdges, eid)
	g.nodes[end].InEdges = append(g.nodes[end].InEdges, eid)
}

// nodeSuccessor scans n's outgoing edges for one labelled with seqIdx
// (po_node_successor in the reference), used by MSA emission.
func (g *Graph) nodeSuccessor(n, seqIdx int) (int, bool) {
	for _, eid := range g.nodes[n].OutEdges {
		e := &g.edges[eid]
		for _, l := range e.Labels {
			if l == seqIdx {
				return e.End, true
			}
		}
	}
	return -1, false
}

// Pair is one alignment pair: First is an existing node id or -1 (gap
// opposite the new sequence), Second is a position in the new sequence or
// -1 (gap opposite the existing path). Mirrors the reference `alignment`
// struct's pairs (spec §4.1).
type Pair struct {
	First, Second int
}

// AddAlignment embeds sequence as a new path through g, reusing or
// creating nodes per the alignment pairs, exactly per spec §4.1. weights
// has one entry per sequence character; edge weight between consecutive
// embedded positions i-1 and i is weights[i-1]+weights[i] ("both endpoints
// contribute"). A no-op when sequence is empty. Restores topological
// order before returning.
func (g *Graph) AddAlignment(alignment []Pair, sequence string, weights []int64) error {
	if len(sequence) == 0 {
		return nil
	}
	if len(weights) != len(sequence) {
		return inputMisusef("addAlignment: %d weights for a %d-byte sequence", len(weights), len(sequence))
	}
	for _, p := range alignment {
		if p.Second < -1 || p.Second >= len(sequence) {
			return invariantf("addAlignment: pair second=%d out of range for sequence length %d", p.Second, len(sequence))
		}
		if p.First < -1 || p.First >= len(g.nodes) {
			return invariantf("addAlignment: pair first=%d out of range for %d graph nodes", p.First, len(g.nodes))
		}
	}

	// Collect valid query positions (step 1).
	valid := make([]int, 0, len(alignment))
	posToPair := make(map[int]Pair, len(alignment))
	for _, p := range alignment {
		if p.Second != -1 {
			valid = append(valid, p.Second)
			posToPair[p.Second] = p
		}
	}

	seqIdx := g.numSequences
	var head int
	haveHead := false

	// Unaligned prefix [0, valid[0)) as a fresh linear path (step 2).
	prefixEnd := len(sequence)
	if len(valid) > 0 {
		prefixEnd = valid[0]
	}
	beginNodeID := -1

	var prevWeight int64
	for i := 0; i < prefixEnd; i++ {
		id := g.newNode(sequence[i])
		if beginNodeID == -1 {
			beginNodeID = id
		}
		if haveHead {
			g.addEdge(head, id, seqIdx, prevWeight+weights[i])
		}
		head = id
		haveHead = true
		prevWeight = weights[i]
	}

	// Walk alignment pairs in order (step 3-4).
	if len(valid) > 0 {
		for _, pos := range valid {
			p := posToPair[pos]
			var id int
			if p.First == -1 {
				// insertion: fresh node
				id = g.newNode(sequence[pos])
			} else if g.nodes[p.First].Char == sequence[pos] {
				id = p.First
			} else if sib, ok := g.findAlignedWithChar(p.First, sequence[pos]); ok {
				id = sib
			} else {
				id = g.newNode(sequence[pos])
				g.addToAlignedSet(p.First, id)
			}

			if beginNodeID == -1 {
				beginNodeID = id
			}

			if haveHead {
				g.addEdge(head, id, seqIdx, prevWeight+weights[pos])
			}
			head = id
			haveHead = true
			prevWeight = weights[pos]
		}
	}

	// Unaligned suffix (valid[last], len) as a fresh linear path. When
	// there were no aligned positions at all, the prefix loop above
	// already consumed the whole sequence; this must not run a second
	// time over the same range.
	suffixStart := prefixEnd
	if len(valid) > 0 {
		suffixStart = valid[len(valid)-1] + 1
	}
	for i := suffixStart; i < len(sequence); i++ {
		id := g.newNode(sequence[i])
		if beginNodeID == -1 {
			beginNodeID = id
		}
		if haveHead {
			g.addEdge(head, id, seqIdx, prevWeight+weights[i])
		}
		head = id
		haveHead = true
		prevWeight = weights[i]
	}

	if beginNodeID == -1 {
		beginNodeID = head
	}

	g.sequencesBeginNode = append(g.sequencesBeginNode, beginNodeID)
	g.numSequences++

	return g.TopologicalSort()
}
