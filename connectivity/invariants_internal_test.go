package connectivity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynconn/core"
)

// checkHierarchyInvariants verifies the level bookkeeping from the inside:
// level bounds, tree-edge presence in exactly forests 0..level, non-tree
// edges confined to their level's adjacency sets, adjacency symmetry, and
// agreement between adjacency content and the edge map.
func checkHierarchyInvariants(t *testing.T, d *DynamicConnectivity) {
	t.Helper()
	numLevels := len(d.forests)

	for e, info := range d.edges {
		require.GreaterOrEqual(t, info.level, 0)
		require.Less(t, info.level, numLevels, "edge level must stay below L")

		if info.kind == treeEdge {
			// A level-l tree edge sits in F_0..F_l and nowhere above; this
			// subsumes the forest-inclusion property for tree edges.
			for l := 0; l < numLevels; l++ {
				require.Equal(t, l <= info.level, d.forests[l].HasEdge(e),
					"tree edge %v at level %d, forest %d", e, info.level, l)
			}
		} else {
			for l := 0; l < numLevels; l++ {
				require.False(t, d.forests[l].HasEdge(e), "non-tree edge %v in forest %d", e, l)
			}
		}
	}

	// Adjacency sets hold exactly the non-tree edges of their level, in
	// both directions.
	adjacencyCount := 0
	for l := 0; l < numLevels; l++ {
		for v := int64(0); v < d.numVertices; v++ {
			set := &d.adjacency[l][v]
			for _, y := range set.items {
				e := core.NewUndirectedEdge(core.Vertex(v), y)
				info, ok := d.edges[e]
				require.True(t, ok, "adjacency entry %v has no edge record", e)
				require.Equal(t, nonTreeEdge, info.kind)
				require.Equal(t, l, info.level)
				_, back := d.adjacency[l][y].index[core.Vertex(v)]
				require.True(t, back, "adjacency must be symmetric for %v", e)
			}
			adjacencyCount += set.size()
		}
	}
	nonTreeCount := 0
	for _, info := range d.edges {
		if info.kind == nonTreeEdge {
			nonTreeCount++
		}
	}
	require.Equal(t, 2*nonTreeCount, adjacencyCount)

	// Every edge's endpoints are connected in F_0, so F_0 spans the graph.
	for e := range d.edges {
		connected, err := d.forests[0].IsConnected(e.First, e.Second)
		require.NoError(t, err)
		require.True(t, connected, "F_0 must span edge %v", e)
	}
}

// TestLevels_MonotoneAndBounded runs random churn while asserting that no
// live edge's level ever decreases and the hierarchy invariants hold after
// every operation.
func TestLevels_MonotoneAndBounded(t *testing.T) {
	const n = 20
	const numOps = 700
	rng := rand.New(rand.NewSource(42))

	d, err := New(n, WithSeed(11))
	require.NoError(t, err)

	lastLevel := make(map[core.UndirectedEdge]int)
	var present []core.UndirectedEdge

	for op := 0; op < numOps; op++ {
		if rng.Intn(3) != 0 || len(present) == 0 {
			u := core.Vertex(rng.Intn(n))
			v := core.Vertex(rng.Intn(n))
			if u == v {
				continue
			}
			e := core.NewUndirectedEdge(u, v)
			if _, ok := d.edges[e]; ok {
				continue
			}
			require.NoError(t, d.AddEdge(e))
			lastLevel[e] = 0
			present = append(present, e)
		} else {
			i := rng.Intn(len(present))
			e := present[i]
			require.NoError(t, d.DeleteEdge(e))
			delete(lastLevel, e)
			present = append(present[:i], present[i+1:]...)
		}

		for e, info := range d.edges {
			require.GreaterOrEqual(t, info.level, lastLevel[e],
				"level of %v decreased from %d to %d", e, lastLevel[e], info.level)
			lastLevel[e] = info.level
		}
		checkHierarchyInvariants(t, d)
	}
}

// TestNumLevels pins L = floor(log2 n) + 1 across vertex counts.
func TestNumLevels(t *testing.T) {
	for _, tc := range []struct {
		n    int64
		want int
	}{
		{1, 1}, {2, 2}, {3, 2}, {4, 3}, {6, 3}, {7, 3}, {8, 4}, {1000, 10},
	} {
		d, err := New(tc.n, WithSeed(42))
		require.NoError(t, err)
		require.Len(t, d.forests, tc.want, "n=%d", tc.n)
		require.Len(t, d.adjacency, tc.want, "n=%d", tc.n)
	}
}
