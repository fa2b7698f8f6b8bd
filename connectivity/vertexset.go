package connectivity

import "github.com/katalvlaran/dynconn/core"

// vertexSet is a set of vertices with O(1) insert, O(1) swap-remove, and a
// deterministic any: unlike a bare map, whose iteration order Go
// randomizes, the backing slice makes the pick reproducible for a fixed
// operation history. The zero value is an empty set.
type vertexSet struct {
	items []core.Vertex
	index map[core.Vertex]int
}

// add inserts v; inserting a present vertex is a no-op.
func (s *vertexSet) add(v core.Vertex) {
	if _, ok := s.index[v]; ok {
		return
	}
	if s.index == nil {
		s.index = make(map[core.Vertex]int)
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
}

// remove deletes v by swapping the last element into its slot; removing an
// absent vertex is a no-op.
func (s *vertexSet) remove(v core.Vertex) {
	i, ok := s.index[v]
	if !ok {
		return
	}
	last := len(s.items) - 1
	moved := s.items[last]
	s.items[i] = moved
	s.index[moved] = i
	s.items = s.items[:last]
	delete(s.index, v)
}

// size returns the number of vertices in the set.
func (s *vertexSet) size() int {
	return len(s.items)
}

// any returns an arbitrary but deterministic member; the set must be
// non-empty.
func (s *vertexSet) any() core.Vertex {
	return s.items[len(s.items)-1]
}
