// Package canonize: explicit tree-ness validation.
//
// validateTree is the check behind WithValidation and Isomorphic. It relies
// on the classic characterization: an undirected graph without self-loops is
// a tree iff it is connected and |E| = |V| - 1. Connectivity is established
// by a marking walk; the edge-count test then rules out every cycle,
// including parallel edges, without enumerating them.
//
// Complexity: O(V + E) time, O(V) space.

package canonize

import (
	"fmt"

	"github.com/katalvlaran/treecanon/tree"
)

// validateTree reports ErrNotATree when t is disconnected or contains a
// cycle. The zero-node tree is valid. No state on t is mutated.
func validateTree(t *tree.Tree) error {
	n := t.NodeCount()
	if n == 0 {
		return nil
	}

	// |E| != |V|-1 already rules out tree-ness (too few edges ⇒ disconnected,
	// too many ⇒ at least one cycle).
	if e := t.EdgeCount(); e != n-1 {
		return fmt.Errorf("canonize: %d nodes but %d edges: %w", n, e, ErrNotATree)
	}

	// With the edge count fixed, connectivity is the remaining condition.
	adj := t.InternalAdjacency()
	seen := make([]bool, n)
	seen[0] = true

	stack := make([]int, 0, n)
	stack = append(stack, 0)

	reached := 0
	var id int
	for len(stack) > 0 {
		id, stack = stack[len(stack)-1], stack[:len(stack)-1]
		reached++

		for _, nbr := range adj[id] {
			if !seen[nbr] {
				seen[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}

	if reached != n {
		return fmt.Errorf("canonize: only %d of %d nodes reachable: %w", reached, n, ErrNotATree)
	}

	return nil
}
