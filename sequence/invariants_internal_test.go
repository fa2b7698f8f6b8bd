package sequence

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynconn/core"
)

// checkStructure recursively verifies the treap invariants below e:
// heap order on priorities, parent/child link consistency, and subtree
// aggregates matching a from-scratch recomputation.
func checkStructure(t *testing.T, e *Element) subtreeData {
	t.Helper()
	want := subtreeData{size: 1}
	for k := 0; k < NumMarkKinds; k++ {
		want.hasMarked[k] = e.marked[k]
	}
	for dir := left; dir <= right; dir++ {
		child := e.children[dir]
		if child == nil {
			continue
		}
		require.Same(t, e, child.parent, "child's parent link must point back")
		require.LessOrEqual(t, child.priority, e.priority, "heap order violated")
		sub := checkStructure(t, child)
		want.size += sub.size
		for k := 0; k < NumMarkKinds; k++ {
			want.hasMarked[k] = want.hasMarked[k] || sub.hasMarked[k]
		}
	}
	require.Equal(t, want, e.subtree, "stale subtree aggregate")

	return want
}

// checkModel verifies each model sequence against the real structure:
// shared representative, in-order positions via predecessor links, and a
// full structural check from the root.
func checkModel(t *testing.T, model [][]*Element) {
	t.Helper()
	for _, seq := range model {
		root := seq[0].Representative()
		require.Nil(t, root.parent)
		checkStructure(t, root)
		require.Equal(t, int64(len(seq)), seq[0].Size())
		for i, e := range seq {
			require.Same(t, root, e.Representative())
			if i == 0 {
				require.Nil(t, e.Predecessor())
			} else {
				require.Same(t, seq[i-1], e.Predecessor())
			}
		}
	}
}

// TestRandomOperations_InvariantsHold drives a random mix of joins, splits,
// and marks against a slice-of-slices model and validates the treap
// invariants after every operation.
func TestRandomOperations_InvariantsHold(t *testing.T) {
	const numElements = 64
	const numOps = 400
	rng := rand.New(rand.NewSource(42))

	var model [][]*Element
	for i := 0; i < numElements; i++ {
		v := core.Vertex(i)
		model = append(model, []*Element{NewElement(core.DirectedEdge{From: v, To: v}, rng)})
	}

	for op := 0; op < numOps; op++ {
		switch rng.Intn(3) {
		case 0: // join two distinct sequences
			if len(model) < 2 {
				continue
			}
			i := rng.Intn(len(model))
			j := rng.Intn(len(model))
			if i == j {
				continue
			}
			a, b := model[i], model[j]
			Join(a[rng.Intn(len(a))], b[rng.Intn(len(b))])
			merged := append(append([]*Element{}, a...), b...)
			model[i] = merged
			model = append(model[:j], model[j+1:]...)
		case 1: // split a sequence at a random position
			i := rng.Intn(len(model))
			seq := model[i]
			cut := rng.Intn(len(seq))
			successor := seq[cut].Split()
			if cut == len(seq)-1 {
				require.Nil(t, successor)
				continue
			}
			require.Same(t, seq[cut+1], successor)
			model[i] = seq[:cut+1]
			model = append(model, seq[cut+1:])
		case 2: // toggle a random mark
			seq := model[rng.Intn(len(model))]
			e := seq[rng.Intn(len(seq))]
			e.Mark(rng.Intn(NumMarkKinds), rng.Intn(2) == 0)
		}

		checkModel(t, model)
	}
}

// TestFindMarkedElement_AgreesWithScan cross-checks the aggregate-guided
// search against a linear scan of the model after random marking.
func TestFindMarkedElement_AgreesWithScan(t *testing.T) {
	const numElements = 48
	rng := rand.New(rand.NewSource(7))

	elems := make([]*Element, numElements)
	for i := 0; i < numElements; i++ {
		v := core.Vertex(i)
		elems[i] = NewElement(core.DirectedEdge{From: v, To: v}, rng)
		if i > 0 {
			Join(elems[i-1], elems[i])
		}
	}

	for trial := 0; trial < 200; trial++ {
		e := elems[rng.Intn(numElements)]
		kind := rng.Intn(NumMarkKinds)
		e.Mark(kind, rng.Intn(2) == 0)

		for k := 0; k < NumMarkKinds; k++ {
			any := false
			for _, candidate := range elems {
				if candidate.marked[k] {
					any = true
					break
				}
			}
			found := elems[rng.Intn(numElements)].FindMarkedElement(k)
			if !any {
				require.Nil(t, found)
			} else {
				require.NotNil(t, found)
				require.True(t, found.marked[k])
			}
		}
	}
}
