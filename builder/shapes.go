// SPDX-License-Identifier: MIT
// Package: treecanon/builder
//
// shapes.go — deterministic fixed-shape tree constructors.
//
// Contract:
//   - Node 0 plays the distinguished role where one exists (path end, star
//     center, caterpillar spine head, spider body, k-ary root).
//   - Edges are emitted in ascending index order, so the same parameters
//     always produce byte-identical arenas.
//   - Validation errors are sentinels wrapped with method context; the
//     tree.AddEdge calls below cannot fail once parameters are validated,
//     but their errors are still propagated rather than swallowed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treecanon/tree"
)

// File-local method tags for error context (no magic strings inline).
const (
	methodPath        = "Path"
	methodStar        = "Star"
	methodCaterpillar = "Caterpillar"
	methodSpider      = "Spider"
	methodKaryTree    = "KaryTree"
)

// Path builds the path P_n: 0—1—…—(n-1).
// n == 0 yields the empty tree; n < 0 → ErrTooFewNodes.
func Path(n int) (*tree.Tree, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPath, n, ErrTooFewNodes)
	}

	t, err := tree.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for i := 0; i+1 < n; i++ {
		if err = t.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
		}
	}

	return t, nil
}

// Star builds the star S_n: center 0 with n-1 leaves.
// n == 0 yields the empty tree; n < 0 → ErrTooFewNodes.
func Star(n int) (*tree.Tree, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodStar, n, ErrTooFewNodes)
	}

	t, err := tree.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	for i := 1; i < n; i++ {
		if err = t.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodStar, i, err)
		}
	}

	return t, nil
}

// Caterpillar builds a path of `spine` nodes (indices 0..spine-1) with `legs`
// leaves hanging off every spine node. Total size: spine*(1+legs).
// spine < 1 → ErrTooFewNodes; legs < 0 → ErrBadDegree.
func Caterpillar(spine, legs int) (*tree.Tree, error) {
	if spine < 1 {
		return nil, fmt.Errorf("%s: spine=%d: %w", methodCaterpillar, spine, ErrTooFewNodes)
	}
	if legs < 0 {
		return nil, fmt.Errorf("%s: legs=%d: %w", methodCaterpillar, legs, ErrBadDegree)
	}

	t, err := tree.New(spine * (1 + legs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCaterpillar, err)
	}
	for i := 0; i+1 < spine; i++ {
		if err = t.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCaterpillar, i, i+1, err)
		}
	}
	// leaves occupy indices spine..end, grouped by spine node
	next := spine
	for i := 0; i < spine; i++ {
		for j := 0; j < legs; j++ {
			if err = t.AddEdge(i, next); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCaterpillar, i, next, err)
			}
			next++
		}
	}

	return t, nil
}

// Spider builds `legs` disjoint paths of `legLen` nodes, all attached to a
// body node 0. Total size: 1 + legs*legLen.
// Negative parameters → ErrBadDegree; legs == 0 or legLen == 0 yields the
// single-node tree.
func Spider(legs, legLen int) (*tree.Tree, error) {
	if legs < 0 || legLen < 0 {
		return nil, fmt.Errorf("%s: legs=%d legLen=%d: %w", methodSpider, legs, legLen, ErrBadDegree)
	}
	if legLen == 0 {
		legs = 0
	}

	t, err := tree.New(1 + legs*legLen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSpider, err)
	}
	next := 1
	for l := 0; l < legs; l++ {
		prev := 0
		for s := 0; s < legLen; s++ {
			if err = t.AddEdge(prev, next); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodSpider, prev, next, err)
			}
			prev = next
			next++
		}
	}

	return t, nil
}

// KaryTree builds the n-node complete-ish k-ary tree in array-heap layout:
// node i's parent is (i-1)/k. n == 0 yields the empty tree.
// n < 0 → ErrTooFewNodes; k < 1 → ErrBadDegree.
func KaryTree(n, k int) (*tree.Tree, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodKaryTree, n, ErrTooFewNodes)
	}
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodKaryTree, k, ErrBadDegree)
	}

	t, err := tree.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodKaryTree, err)
	}
	for i := 1; i < n; i++ {
		if err = t.AddEdge((i-1)/k, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodKaryTree, (i-1)/k, i, err)
		}
	}

	return t, nil
}
