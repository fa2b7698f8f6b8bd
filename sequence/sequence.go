package sequence

// Representative returns a canonical element of the sequence that e lives
// in: two elements are in the same sequence if and only if their
// representatives are identical. Representatives are invalidated by any
// mutation of the sequence (Join or Split).
// Complexity: O(log k) for a sequence of k elements.
func (e *Element) Representative() *Element {
	return e.root()
}

// Size returns the number of elements in the sequence that e lives in.
// Complexity: O(log k)
func (e *Element) Size() int64 {
	return e.root().subtree.size
}

// Predecessor returns the element immediately preceding e in its sequence,
// or nil if e is the first element.
// Complexity: O(log k)
func (e *Element) Predecessor() *Element {
	cur := e
	if cur.children[left] == nil {
		// No left child. The predecessor is the first ancestor reached by
		// stepping up out of a right subtree.
		for {
			switch {
			case cur.parent == nil:
				return nil
			case cur.parent.children[right] == cur:
				return cur.parent
			default:
				cur = cur.parent
			}
		}
	}
	// With a left child, the predecessor is the rightmost node of the left
	// subtree.
	cur = cur.children[left]
	for cur.children[right] != nil {
		cur = cur.children[right]
	}

	return cur
}

// Join concatenates the sequence containing greater onto the end of the
// sequence containing lesser. Either argument may be nil, in which case the
// other sequence is left as is.
//
// Panics if lesser and greater already live in the same sequence; that is a
// programmer error under the exclusive-sequence contract.
// Complexity: O(log k) in the total number of elements involved.
func Join(lesser, greater *Element) {
	joinWithRootReturned(lesser, greater)
}

// joinWithRootReturned joins the sequences that lesser and greater live in
// and returns the root of the resulting treap.
func joinWithRootReturned(lesser, greater *Element) *Element {
	var lesserRoot, greaterRoot *Element
	if lesser != nil {
		lesserRoot = lesser.root()
	}
	if greater != nil {
		greaterRoot = greater.root()
	}
	if lesserRoot != nil && lesserRoot == greaterRoot {
		panic("sequence: join: input elements live in the same sequence")
	}

	return joinRoots(lesserRoot, greaterRoot)
}

// joinRoots joins the treap rooted at lesser to the treap rooted at greater
// and returns the root of the joined treap. Heap order selects the root at
// each step; aggregates are recomputed on the way back up.
func joinRoots(lesser, greater *Element) *Element {
	if lesser == nil {
		return greater
	}
	if greater == nil {
		return lesser
	}

	if lesser.priority > greater.priority {
		lesser.assignChild(right, joinRoots(lesser.children[right], greater))
		lesser.updateSubtree()

		return lesser
	}
	greater.assignChild(left, joinRoots(lesser, greater.children[left]))
	greater.updateSubtree()

	return greater
}

// Split cuts e's sequence immediately after e. Afterwards e's sequence
// contains e and all elements that were before it, and the returned
// element's sequence contains all elements that were after e.
//
// Returns what was formerly the successor of e, or nil if e was last.
// Complexity: O(log k)
func (e *Element) Split() *Element {
	// lesser accumulates the treap holding e and all preceding elements;
	// greater accumulates the treap holding all following elements.
	var lesser *Element
	greater := e.children[right]
	if greater != nil {
		greater.parent = nil
		e.children[right] = nil
	}

	// Walk from e to the root, detaching each ancestor. A subtree entered
	// from its right child belongs to the lesser pile; a subtree entered
	// from its left child belongs to the greater pile.
	cur := e
	traversedUpFromRight := true
	curIsRightChild := true
	for cur != nil {
		parent := cur.parent
		if parent != nil {
			curIsRightChild = parent.children[right] == cur
			if curIsRightChild {
				parent.children[right] = nil
			} else {
				parent.children[left] = nil
			}
			cur.parent = nil
		}
		if traversedUpFromRight {
			lesser = joinWithRootReturned(cur, lesser)
		} else {
			greater = joinWithRootReturned(greater, cur)
		}

		traversedUpFromRight = curIsRightChild
		cur.updateSubtree()
		cur = parent
	}

	// The former successor of e is the leftmost descendant of greater.
	successor := greater
	for successor != nil && successor.children[left] != nil {
		successor = successor.children[left]
	}

	return successor
}

// Mark sets (on=true) or clears (on=false) mark channel kind on e and
// re-propagates the hasMarked aggregate towards the root, stopping as soon
// as an ancestor's aggregate is unchanged.
// Complexity: O(log k)
func (e *Element) Mark(kind int, on bool) {
	e.marked[kind] = on
	for cur := e; cur != nil; cur = cur.parent {
		oldHasMarked := cur.subtree.hasMarked[kind]
		cur.subtree.hasMarked[kind] = cur.marked[kind] ||
			cur.childSubtree(left).hasMarked[kind] ||
			cur.childSubtree(right).hasMarked[kind]
		if cur.subtree.hasMarked[kind] == oldHasMarked {
			break
		}
	}
}

// FindMarkedElement returns some element of e's sequence whose mark channel
// kind is set, or nil if the sequence has no such element. Which marked
// element is returned is unspecified but deterministic for a fixed treap
// shape.
// Complexity: O(log k)
func (e *Element) FindMarkedElement(kind int) *Element {
	cur := e.root()
	if !cur.subtree.hasMarked[kind] {
		return nil
	}
	// Descend: the aggregate guarantees a marked element below; prefer the
	// current node, then the left subtree, then the right.
	for {
		if cur.marked[kind] {
			return cur
		}
		if l := cur.children[left]; l != nil && l.subtree.hasMarked[kind] {
			cur = l
		} else {
			cur = cur.children[right]
		}
	}
}
