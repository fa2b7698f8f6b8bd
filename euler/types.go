package euler

import (
	"math/rand"

	"github.com/katalvlaran/dynconn/core"
	"github.com/katalvlaran/dynconn/sequence"
)

// Mark channels in the sequence layer: kind 0 carries edge marks, kind 1
// carries vertex marks.
const (
	edgeMark   = 0
	vertexMark = 1
)

// noEdgeID is the identifier carried by pooled elements not currently
// representing any directed edge.
var noEdgeID = core.DirectedEdge{From: -1, To: -1}

// edgeElements holds the pair of sequence elements representing the two
// orientations (u, v) and (v, u) of an undirected tree edge.
type edgeElements struct {
	forward  *sequence.Element
	backward *sequence.Element
}

// DynamicForest is a forest over a fixed vertex set [0, n) that supports
// linking and cutting edges, connectivity and tree-size queries, and the
// mark channels used by the dynamic connectivity engine.
type DynamicForest struct {
	numVertices int64

	// rng supplies treap priorities for every element of this forest.
	rng *rand.Rand

	// vertices[v] is the self-loop element anchoring vertex v in its tour.
	vertices []*sequence.Element

	// freeEdgeElements is the pool of currently unused edge elements. All
	// 2(n-1) edge elements are allocated at construction; the used ones are
	// reachable through edges.
	freeEdgeElements []*sequence.Element

	// edges maps an undirected edge {u, v} to the elements representing the
	// directed edges (u, v) and (v, u).
	edges map[core.UndirectedEdge]edgeElements
}

// Option configures a DynamicForest before construction.
type Option func(*config)

type config struct {
	seed int64
	rng  *rand.Rand
}

func defaultConfig() config {
	return config{seed: 0}
}

// WithSeed seeds the forest's instance-scoped priority generator, making
// treap shapes (and therefore mark-search outcomes) reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand supplies the priority generator directly, overriding WithSeed.
// The forest takes ownership of the generator; sharing it with concurrent
// users is not supported.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}
