package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dynconn/core"
)

func TestNewUndirectedEdge_Normalizes(t *testing.T) {
	e1 := core.NewUndirectedEdge(7, 3)
	e2 := core.NewUndirectedEdge(3, 7)

	assert.Equal(t, core.Vertex(3), e1.First)
	assert.Equal(t, core.Vertex(7), e1.Second)
	assert.Equal(t, e1, e2, "both endpoint orders must normalize to the same value")
}

func TestNewUndirectedEdge_SelfLoopKeepsEndpoints(t *testing.T) {
	e := core.NewUndirectedEdge(4, 4)
	assert.Equal(t, core.Vertex(4), e.First)
	assert.Equal(t, core.Vertex(4), e.Second)
}

func TestUndirectedEdge_AsMapKey(t *testing.T) {
	seen := make(map[core.UndirectedEdge]int)
	seen[core.NewUndirectedEdge(1, 2)]++
	seen[core.NewUndirectedEdge(2, 1)]++

	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[core.NewUndirectedEdge(1, 2)])
}

func TestUndirectedEdge_String(t *testing.T) {
	assert.Equal(t, "{2, 9}", core.NewUndirectedEdge(9, 2).String())
}

func TestHashInt64_NotIdentity(t *testing.T) {
	// The whole point of the finalizer is to not be the identity function.
	assert.NotEqual(t, uint64(1), core.HashInt64(1))
	assert.NotEqual(t, core.HashInt64(1), core.HashInt64(2))
}

func TestUndirectedEdgeHash_OrderIndependent(t *testing.T) {
	assert.Equal(t,
		core.NewUndirectedEdge(11, 5).Hash(),
		core.NewUndirectedEdge(5, 11).Hash())
	assert.NotEqual(t,
		core.NewUndirectedEdge(5, 11).Hash(),
		core.NewUndirectedEdge(5, 12).Hash())
}
