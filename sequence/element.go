package sequence

import (
	"math/rand"

	"github.com/katalvlaran/dynconn/core"
)

// NumMarkKinds is the number of independent mark channels carried by every
// element. Channel assignment is up to the caller.
const NumMarkKinds = 2

// Child slots; also the two directions of an in-order traversal.
const (
	left  = 0
	right = 1
)

// subtreeData is the augmented aggregate maintained at every node for the
// subtree rooted there.
type subtreeData struct {
	// size counts the elements in the subtree.
	size int64

	// hasMarked[k] is the OR of marked[k] over all elements in the subtree.
	hasMarked [NumMarkKinds]bool
}

// Element is one element of a sequence, i.e. one treap node.
//
// The zero value is not usable; construct elements with NewElement. An
// Element must not be copied once it participates in a sequence, because
// parent and child links reference it by address.
type Element struct {
	// id identifies the element for the caller. Specialized for storing
	// Euler-tour entries: the edge or self-loop this element represents.
	id core.DirectedEdge

	// Treap invariant: the priority of a node is at least as great as the
	// priority of each of its children.
	priority int64

	parent   *Element
	children [2]*Element

	// marked holds the element's own marks, one per kind.
	marked [NumMarkKinds]bool

	subtree subtreeData
}

// NewElement creates a single-element sequence carrying id. The element's
// treap priority is drawn from rng; supplying a seeded generator makes the
// resulting tree shapes reproducible.
// Complexity: O(1)
func NewElement(id core.DirectedEdge, rng *rand.Rand) *Element {
	return &Element{
		id:       id,
		priority: int64(rng.Uint64()),
		subtree:  subtreeData{size: 1},
	}
}

// ID returns the identifier the element carries.
func (e *Element) ID() core.DirectedEdge {
	return e.id
}

// SetID replaces the identifier the element carries. The identifier does not
// participate in any treap invariant, so this is always safe.
func (e *Element) SetID(id core.DirectedEdge) {
	e.id = id
}

// childSubtree returns the aggregate of the child in the given slot, or the
// empty aggregate if the slot is vacant.
func (e *Element) childSubtree(dir int) subtreeData {
	if e.children[dir] == nil {
		return subtreeData{}
	}

	return e.children[dir].subtree
}

// updateSubtree recomputes this node's aggregate assuming both children's
// aggregates are correct.
func (e *Element) updateSubtree() {
	lst := e.childSubtree(left)
	rst := e.childSubtree(right)
	e.subtree.size = 1 + lst.size + rst.size
	for k := 0; k < NumMarkKinds; k++ {
		e.subtree.hasMarked[k] = e.marked[k] || lst.hasMarked[k] || rst.hasMarked[k]
	}
}

// assignChild links child into the given slot and repoints its parent.
// A nil child clears the slot without touching any other node.
func (e *Element) assignChild(dir int, child *Element) {
	if child != nil {
		child.parent = e
	}
	e.children[dir] = child
}

// root walks parent links up to the treap root.
func (e *Element) root() *Element {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}
