package connectivity

import (
	"fmt"

	"github.com/katalvlaran/dynconn/core"
	"github.com/katalvlaran/dynconn/euler"
)

// floorLog2 returns floor(log2(x)) for x > 0.
func floorLog2(x int64) int {
	a := 0
	for x > 1 {
		x >>= 1
		a++
	}

	return a
}

// New builds an empty graph on n vertices.
//
// The structure allocates L = floor(log2 n) + 1 forests and L x n non-tree
// adjacency sets up front; AddEdge and DeleteEdge never allocate forest
// elements afterwards.
// Complexity: O(n log n)
func New(n int64, opts ...Option) (*DynamicConnectivity, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveVertexCount, n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	numLevels := floorLog2(n) + 1
	d := &DynamicConnectivity{
		numVertices: n,
		forests:     make([]*euler.DynamicForest, 0, numLevels),
		adjacency:   make([][]vertexSet, numLevels),
		edges:       make(map[core.UndirectedEdge]edgeInfo),
	}
	for l := 0; l < numLevels; l++ {
		f, err := euler.New(n, euler.WithSeed(cfg.seed+int64(l)))
		if err != nil {
			return nil, err
		}
		d.forests = append(d.forests, f)
		d.adjacency[l] = make([]vertexSet, n)
	}

	return d, nil
}

// NumVertices returns the fixed number of vertices in the graph.
func (d *DynamicConnectivity) NumVertices() int64 {
	return d.numVertices
}

// checkVertex rejects vertices outside [0, n).
func (d *DynamicConnectivity) checkVertex(v core.Vertex) error {
	if v < 0 || int64(v) >= d.numVertices {
		return fmt.Errorf("%w: vertex %d, graph of %d vertices", ErrVertexOutOfRange, v, d.numVertices)
	}

	return nil
}

// checkEdge rejects edges with an endpoint outside [0, n).
func (d *DynamicConnectivity) checkEdge(e core.UndirectedEdge) error {
	if err := d.checkVertex(e.First); err != nil {
		return err
	}

	return d.checkVertex(e.Second)
}

// IsConnected reports whether u and v are in the same connected component.
// Complexity: O(log n)
func (d *DynamicConnectivity) IsConnected(u, v core.Vertex) (bool, error) {
	if err := d.checkVertex(u); err != nil {
		return false, err
	}
	if err := d.checkVertex(v); err != nil {
		return false, err
	}

	return d.forests[0].IsConnected(u, v)
}

// HasEdge reports whether the edge is in the graph.
// Complexity: O(1) expected.
func (d *DynamicConnectivity) HasEdge(e core.UndirectedEdge) bool {
	_, ok := d.edges[e]

	return ok
}

// SizeOfConnectedComponent returns the number of vertices in v's component.
// Complexity: O(log n)
func (d *DynamicConnectivity) SizeOfConnectedComponent(v core.Vertex) (int64, error) {
	if err := d.checkVertex(v); err != nil {
		return 0, err
	}

	return d.forests[0].SizeOfTree(v)
}

// AddEdge inserts edge e at level 0.
//
// If the endpoints were disconnected, the edge joins the spanning forest;
// otherwise it is recorded as a non-tree edge in the level-0 adjacency sets.
// Complexity: O(log^2 n) amortized
func (d *DynamicConnectivity) AddEdge(e core.UndirectedEdge) error {
	// 1. Validate.
	if err := d.checkEdge(e); err != nil {
		return err
	}
	if e.First == e.Second {
		return fmt.Errorf("%w: %v", ErrSelfLoop, e)
	}
	if d.HasEdge(e) {
		return fmt.Errorf("%w: %v", ErrEdgeAlreadyExists, e)
	}

	// 2. Tree edge or non-tree edge, depending on current connectivity.
	connected, err := d.forests[0].IsConnected(e.First, e.Second)
	if err != nil {
		return err
	}
	if connected {
		d.edges[e] = edgeInfo{level: 0, kind: nonTreeEdge}

		return d.addToAdjacency(e, 0)
	}

	d.edges[e] = edgeInfo{level: 0, kind: treeEdge}
	if err = d.forests[0].AddEdge(e); err != nil {
		return err
	}

	return d.forests[0].MarkEdge(e, true)
}

// DeleteEdge removes edge e from the graph.
//
// Deleting a non-tree edge only touches the adjacency sets. Deleting a tree
// edge cuts it from every forest it participates in and then searches for a
// replacement edge to reconnect the split component, starting at the edge's
// level.
// Complexity: O(log^2 n) amortized
func (d *DynamicConnectivity) DeleteEdge(e core.UndirectedEdge) error {
	if err := d.checkEdge(e); err != nil {
		return err
	}
	info, ok := d.edges[e]
	if !ok {
		return fmt.Errorf("%w: %v", ErrEdgeNotFound, e)
	}
	delete(d.edges, e)

	if info.kind == nonTreeEdge {
		return d.deleteFromAdjacency(e, info.level)
	}

	for l := info.level; l >= 0; l-- {
		if err := d.forests[l].DeleteEdge(e); err != nil {
			return err
		}
	}

	return d.replaceTreeEdge(e, info.level)
}

// addToAdjacency records non-tree edge e in the level's adjacency sets,
// marking an endpoint in F_level when its set transitions from empty.
func (d *DynamicConnectivity) addToAdjacency(e core.UndirectedEdge, level int) error {
	endpoints := [2][2]core.Vertex{{e.First, e.Second}, {e.Second, e.First}}
	for _, pair := range endpoints {
		x, y := pair[0], pair[1]
		set := &d.adjacency[level][x]
		if set.size() == 0 {
			if err := d.forests[level].MarkVertex(x, true); err != nil {
				return err
			}
		}
		set.add(y)
	}

	return nil
}

// deleteFromAdjacency removes non-tree edge e from the level's adjacency
// sets, clearing an endpoint's mark in F_level when its set empties.
func (d *DynamicConnectivity) deleteFromAdjacency(e core.UndirectedEdge, level int) error {
	endpoints := [2][2]core.Vertex{{e.First, e.Second}, {e.Second, e.First}}
	for _, pair := range endpoints {
		x, y := pair[0], pair[1]
		set := &d.adjacency[level][x]
		set.remove(y)
		if set.size() == 0 {
			if err := d.forests[level].MarkVertex(x, false); err != nil {
				return err
			}
		}
	}

	return nil
}

// replaceTreeEdge searches for a replacement for deleted tree edge e,
// starting at the given level and recursing downward.
//
// At each level the smaller of the two split halves, T_u, pays for the
// search: its level-`level` tree edges are promoted one level up, and its
// level-`level` non-tree edges are scanned. A scanned edge with both
// endpoints in T_u is promoted; a scanned edge reaching the other half is
// the replacement and rejoins forests 0..level. Promotion is what bounds
// the total work: every scanned edge other than the replacement has its
// level strictly increased, and levels are capped at L-1.
func (d *DynamicConnectivity) replaceTreeEdge(e core.UndirectedEdge, level int) error {
	f := d.forests[level]

	// 1. Let u span the smaller of the two halves.
	u, v := e.First, e.Second
	uSize, err := f.SizeOfTree(u)
	if err != nil {
		return err
	}
	vSize, err := f.SizeOfTree(v)
	if err != nil {
		return err
	}
	if uSize > vSize {
		u, v = v, u
	}

	// 2. Promote T_u's level-`level` tree edges to level+1. The promoted
	// tree never exceeds half its parent, so F_{level+1}'s size invariant
	// is preserved.
	for {
		treeEdgeToPromote, ok, mErr := f.MarkedEdgeInTree(u)
		if mErr != nil {
			return mErr
		}
		if !ok {
			break
		}
		info := d.edges[treeEdgeToPromote]
		info.level++
		d.edges[treeEdgeToPromote] = info
		if err = f.MarkEdge(treeEdgeToPromote, false); err != nil {
			return err
		}
		if err = d.forests[level+1].AddEdge(treeEdgeToPromote); err != nil {
			return err
		}
		if err = d.forests[level+1].MarkEdge(treeEdgeToPromote, true); err != nil {
			return err
		}
	}

	// 3. Scan T_u's level-`level` non-tree edges.
	for {
		x, ok, mErr := f.MarkedVertexInTree(u)
		if mErr != nil {
			return mErr
		}
		if !ok {
			break
		}
		y := d.adjacency[level][x].any()
		candidate := core.NewUndirectedEdge(x, y)

		inSmallerHalf, cErr := f.IsConnected(u, y)
		if cErr != nil {
			return cErr
		}
		if inSmallerHalf {
			// Both endpoints in T_u: not a replacement. Promote it.
			if err = d.deleteFromAdjacency(candidate, level); err != nil {
				return err
			}
			info := d.edges[candidate]
			info.level++
			d.edges[candidate] = info
			if err = d.addToAdjacency(candidate, level+1); err != nil {
				return err
			}

			continue
		}

		// Replacement found: promote it to a tree edge and reconnect every
		// forest from its level down to F_0.
		if err = d.deleteFromAdjacency(candidate, level); err != nil {
			return err
		}
		info := d.edges[candidate]
		info.kind = treeEdge
		d.edges[candidate] = info
		for l := level; l >= 0; l-- {
			if err = d.forests[l].AddEdge(candidate); err != nil {
				return err
			}
		}

		return f.MarkEdge(candidate, true)
	}

	// 4. Nothing at this level; retry one level down, or accept the split.
	if level > 0 {
		return d.replaceTreeEdge(e, level-1)
	}

	return nil
}
