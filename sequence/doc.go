// Package sequence implements an ordered list of elements with logarithmic
// split and concatenation, backed by an implicit-key treap.
//
// A treap is a binary tree in which every node carries an independently
// random priority and the tree obeys heap order on priorities; its height is
// logarithmic in the number of nodes with high probability. Each element of
// the sequence is one treap node, and the in-order traversal of the treap
// yields the sequence in order. There are no keys: an element's position is
// determined purely by the split and join operations that built its
// sequence.
//
// Every node additionally maintains augmented subtree aggregates:
//
//   - size: the number of elements in the node's subtree, and
//   - hasMarked[k] for each mark kind k: whether any element of the subtree
//     is marked with kind k.
//
// The aggregates make Size an O(1) lookup at the root and allow
// FindMarkedElement to locate an arbitrary marked element of a sequence in
// O(log k) by steering on hasMarked. The package euler uses mark kind 0 for
// tree edges and kind 1 for vertices carrying non-tree incidences; the
// channels themselves are generic.
//
// Usage: create single-element sequences with NewElement and build bigger
// sequences with Join and Split. Element priorities come from the *rand.Rand
// supplied at construction; callers own that generator and seed it for
// reproducible shapes.
//
// Misuse of the package (joining two elements that already share a sequence)
// is a programmer error and panics with a "sequence:"-prefixed message; see
// Join.
package sequence
