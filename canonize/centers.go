// Package canonize: tree centers and the Isomorphic convenience wrapper.

package canonize

import (
	"sort"

	"github.com/katalvlaran/treecanon/tree"
)

// Centers returns the one or two nodes that survive repeated leaf removal:
// the center(s) of the tree (two centers are always adjacent). Unlike
// Canonize, this is a label-free peel — no state on t is mutated.
//
// Returns ErrTreeNil for a nil tree; the zero-node tree yields a nil slice.
// The result is sorted ascending.
//
// Complexity: O(V + E) time, O(V) space.
func Centers(t *tree.Tree) ([]int, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	if t.NodeCount() == 0 {
		return nil, nil
	}

	// nil labels switch the walker into topology-only mode
	w := newWalker(t.InternalAdjacency(), nil, DefaultOptions())
	w.discover(0)
	w.peel()

	centers := append([]int(nil), w.leafs...)
	sort.Ints(centers)

	return centers, nil
}

// Isomorphic reports whether a and b have the same shape as unlabeled,
// unrooted trees. Both inputs are validated (ErrNotATree for cyclic or
// disconnected graphs) and canonized on internal clones, so neither tree's
// labels are consumed.
//
// Complexity: O(V + E) time, O(V + E) space for the clones.
func Isomorphic(a, b *tree.Tree) (bool, error) {
	if a == nil || b == nil {
		return false, ErrTreeNil
	}
	if err := validateTree(a); err != nil {
		return false, err
	}
	if err := validateTree(b); err != nil {
		return false, err
	}

	// different sizes cannot be isomorphic; skip the peels entirely
	if a.NodeCount() != b.NodeCount() {
		return false, nil
	}

	ca, err := Canonize(a.Clone())
	if err != nil {
		return false, err
	}
	cb, err := Canonize(b.Clone())
	if err != nil {
		return false, err
	}

	return ca == cb, nil
}
