package euler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dynconn/core"
	"github.com/katalvlaran/dynconn/sequence"
)

// New builds a forest with n singleton trees and no edges.
//
// All sequence elements are allocated here: one self-loop element per vertex
// and a pool of max(0, 2(n-1)) edge elements that AddEdge and DeleteEdge
// recycle through a free list.
// Complexity: O(n)
func New(n int64, opts ...Option) (*DynamicForest, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveVertexCount, n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.seed))
	}

	f := &DynamicForest{
		numVertices: n,
		rng:         rng,
		vertices:    make([]*sequence.Element, n),
	}
	for v := int64(0); v < n; v++ {
		id := core.DirectedEdge{From: core.Vertex(v), To: core.Vertex(v)}
		f.vertices[v] = sequence.NewElement(id, rng)
	}

	maxEdgeElements := 2 * (n - 1)
	if maxEdgeElements < 0 {
		maxEdgeElements = 0
	}
	f.freeEdgeElements = make([]*sequence.Element, 0, maxEdgeElements)
	for i := int64(0); i < maxEdgeElements; i++ {
		f.freeEdgeElements = append(f.freeEdgeElements, sequence.NewElement(noEdgeID, rng))
	}
	f.edges = make(map[core.UndirectedEdge]edgeElements, maxEdgeElements)

	return f, nil
}

// NumVertices returns the fixed number of vertices in the forest.
func (f *DynamicForest) NumVertices() int64 {
	return f.numVertices
}

// checkVertex rejects vertices outside [0, n).
func (f *DynamicForest) checkVertex(v core.Vertex) error {
	if v < 0 || int64(v) >= f.numVertices {
		return fmt.Errorf("%w: vertex %d, forest of %d vertices", ErrVertexOutOfRange, v, f.numVertices)
	}

	return nil
}

// checkEdge rejects edges with an endpoint outside [0, n).
func (f *DynamicForest) checkEdge(e core.UndirectedEdge) error {
	if err := f.checkVertex(e.First); err != nil {
		return err
	}

	return f.checkVertex(e.Second)
}

// IsConnected reports whether u and v are in the same tree.
// Complexity: O(log n)
func (f *DynamicForest) IsConnected(u, v core.Vertex) (bool, error) {
	if err := f.checkVertex(u); err != nil {
		return false, err
	}
	if err := f.checkVertex(v); err != nil {
		return false, err
	}

	return f.vertices[u].Representative() == f.vertices[v].Representative(), nil
}

// HasEdge reports whether the edge is in the forest.
// Complexity: O(1) expected.
func (f *DynamicForest) HasEdge(e core.UndirectedEdge) bool {
	_, ok := f.edges[e]

	return ok
}

// allocateEdgeElements takes two pooled elements and labels them with the
// edge's two orientations.
func (f *DynamicForest) allocateEdgeElements(e core.UndirectedEdge) edgeElements {
	n := len(f.freeEdgeElements)
	elems := edgeElements{
		forward:  f.freeEdgeElements[n-1],
		backward: f.freeEdgeElements[n-2],
	}
	f.freeEdgeElements = f.freeEdgeElements[:n-2]
	elems.forward.SetID(core.DirectedEdge{From: e.First, To: e.Second})
	elems.backward.SetID(core.DirectedEdge{From: e.Second, To: e.First})

	return elems
}

// freeEdgeElementPair clears both elements and returns them to the pool.
func (f *DynamicForest) freeEdgeElementPair(elems edgeElements) {
	elems.forward.SetID(noEdgeID)
	elems.backward.SetID(noEdgeID)
	elems.forward.Mark(edgeMark, false)
	elems.backward.Mark(edgeMark, false)
	f.freeEdgeElements = append(f.freeEdgeElements, elems.forward, elems.backward)
}

// AddEdge links the trees of e.First and e.Second with edge e.
//
// The splice splits both endpoint tours immediately after their vertex
// elements, so that v's tour is rotated to end at v, and lays out the new
// tour as
//
//	[... u] (u,v) [v's rotated tour ... v] (v,u) [u's former suffix ...]
//
// which is the Euler tour of the merged tree.
// Complexity: O(log n)
func (f *DynamicForest) AddEdge(e core.UndirectedEdge) error {
	// 1. Validate the endpoints and the link precondition.
	if err := f.checkEdge(e); err != nil {
		return err
	}
	if e.First == e.Second {
		return fmt.Errorf("%w: %v", ErrSelfLoop, e)
	}
	if f.HasEdge(e) {
		return fmt.Errorf("%w: %v", ErrEdgeAlreadyInForest, e)
	}
	connected, err := f.IsConnected(e.First, e.Second)
	if err != nil {
		return err
	}
	if connected {
		return fmt.Errorf("%w: %v", ErrWouldCreateCycle, e)
	}

	// 2. Draw the two directed-edge elements from the pool.
	elems := f.allocateEdgeElements(e)
	f.edges[e] = elems

	// 3. Splice the tours together.
	uElement := f.vertices[e.First]
	vElement := f.vertices[e.Second]
	uSuccessor := uElement.Split()
	vSuccessor := vElement.Split()
	sequence.Join(uElement, elems.forward)
	sequence.Join(uElement, vSuccessor)
	sequence.Join(uElement, vElement)
	sequence.Join(uElement, elems.backward)
	sequence.Join(uElement, uSuccessor)

	return nil
}

// DeleteEdge cuts edge e out of its tree, splitting the tree in two.
//
// The tour is split around both directed-edge elements and rejoined in the
// orientation observed after the first split. The two elements are never
// adjacent in the tour (an endpoint's vertex element always sits between
// them), so the four fragments are distinct and the elements can be freed.
// Complexity: O(log n)
func (f *DynamicForest) DeleteEdge(e core.UndirectedEdge) error {
	if err := f.checkEdge(e); err != nil {
		return err
	}
	elems, ok := f.edges[e]
	if !ok {
		return fmt.Errorf("%w: %v", ErrEdgeNotInForest, e)
	}
	delete(f.edges, e)
	uv := elems.forward
	vu := elems.backward

	uvSuccessor := uv.Split()
	// After the first split we can tell whether (u, v) appeared before
	// (v, u) in the tour: if so, the split separated them.
	uvBeforeVu := uv.Representative() != vu.Representative()
	vuSuccessor := vu.Split()
	uvPredecessor := uv.Predecessor()
	if uvPredecessor != nil {
		uvPredecessor.Split()
	}
	vuPredecessor := vu.Predecessor()
	if vuPredecessor != nil {
		vuPredecessor.Split()
	}
	if uvBeforeVu {
		sequence.Join(uvPredecessor, vuSuccessor)
	} else {
		sequence.Join(vuPredecessor, uvSuccessor)
	}

	f.freeEdgeElementPair(elems)

	return nil
}

// SizeOfTree returns the number of vertices in the tree containing v.
//
// The tour of a k-vertex tree holds 3k-2 elements (k self-loops and 2(k-1)
// directed edges), so the vertex count is recovered as (tourLength + 2) / 3.
// Complexity: O(log n)
func (f *DynamicForest) SizeOfTree(v core.Vertex) (int64, error) {
	if err := f.checkVertex(v); err != nil {
		return 0, err
	}

	return (f.vertices[v].Size() + 2) / 3, nil
}

// MarkEdge sets or clears the edge mark on both directed elements of e.
// See MarkedEdgeInTree.
// Complexity: O(log n)
func (f *DynamicForest) MarkEdge(e core.UndirectedEdge, on bool) error {
	if err := f.checkEdge(e); err != nil {
		return err
	}
	elems, ok := f.edges[e]
	if !ok {
		return fmt.Errorf("%w: %v", ErrEdgeNotInForest, e)
	}
	elems.forward.Mark(edgeMark, on)
	elems.backward.Mark(edgeMark, on)

	return nil
}

// MarkVertex sets or clears the vertex mark on v's self-loop element.
// See MarkedVertexInTree.
// Complexity: O(log n)
func (f *DynamicForest) MarkVertex(v core.Vertex, on bool) error {
	if err := f.checkVertex(v); err != nil {
		return err
	}
	f.vertices[v].Mark(vertexMark, on)

	return nil
}

// MarkedEdgeInTree returns some edge of v's tree marked via MarkEdge, or
// ok=false if the tree has none.
// Complexity: O(log n)
func (f *DynamicForest) MarkedEdgeInTree(v core.Vertex) (core.UndirectedEdge, bool, error) {
	if err := f.checkVertex(v); err != nil {
		return core.UndirectedEdge{}, false, err
	}
	found := f.vertices[v].FindMarkedElement(edgeMark)
	if found == nil {
		return core.UndirectedEdge{}, false, nil
	}
	id := found.ID()

	return core.NewUndirectedEdge(id.From, id.To), true, nil
}

// MarkedVertexInTree returns some vertex of v's tree marked via MarkVertex,
// or ok=false if the tree has none.
// Complexity: O(log n)
func (f *DynamicForest) MarkedVertexInTree(v core.Vertex) (core.Vertex, bool, error) {
	if err := f.checkVertex(v); err != nil {
		return 0, false, err
	}
	found := f.vertices[v].FindMarkedElement(vertexMark)
	if found == nil {
		return 0, false, nil
	}

	return found.ID().From, true, nil
}
