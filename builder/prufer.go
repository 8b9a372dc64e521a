// SPDX-License-Identifier: MIT
// Package: treecanon/builder
//
// prufer.go — Prüfer codecs, uniform random trees, and relabeling.
//
// A Prüfer sequence of length n-2 over [0, n) encodes exactly one labeled
// tree on n nodes, and every labeled tree has exactly one sequence (Cayley's
// bijection). That makes the codec triple-duty here:
//   - Random(n, seed): uniform random labeled trees from random sequences.
//   - FromPrufer/ToPrufer: round-trip fixtures for property tests.
//   - Relabel: identity permutation fixtures without touching topology.
//
// Both codec directions use the linear-time pointer/leaf scan: the candidate
// pointer only moves forward, and a freed node re-enters consideration
// immediately only when its index is below the pointer.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/treecanon/tree"
)

const (
	methodFromPrufer = "FromPrufer"
	methodToPrufer   = "ToPrufer"
	methodRandom     = "Random"
	methodRelabel    = "Relabel"
)

// FromPrufer decodes seq into the unique labeled tree on len(seq)+2 nodes.
// An empty sequence yields the two-node tree. Entries outside [0, n) →
// ErrBadPrufer. Complexity: O(n).
func FromPrufer(seq []int) (*tree.Tree, error) {
	n := len(seq) + 2
	for i, v := range seq {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%s: seq[%d]=%d, n=%d: %w", methodFromPrufer, i, v, n, ErrBadPrufer)
		}
	}

	t, err := tree.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromPrufer, err)
	}

	// degree = 1 + multiplicity in seq
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		degree[v]++
	}

	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	for _, v := range seq {
		if err = t.AddEdge(leaf, v); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodFromPrufer, leaf, v, err)
		}
		degree[v]--
		if degree[v] == 1 && v < ptr {
			leaf = v
		} else {
			ptr++
			for degree[ptr] != 1 {
				ptr++
			}
			leaf = ptr
		}
	}
	// the two nodes left with degree 1 are leaf and n-1
	if err = t.AddEdge(leaf, n-1); err != nil {
		return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodFromPrufer, leaf, n-1, err)
	}

	return t, nil
}

// ToPrufer encodes t into its Prüfer sequence. Trees with fewer than three
// nodes encode to nil. Cyclic or disconnected input → ErrNotATree.
// No state on t is mutated. Complexity: O(n).
func ToPrufer(t *tree.Tree) ([]int, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: nil tree: %w", methodToPrufer, ErrNotATree)
	}
	n := t.NodeCount()
	if t.EdgeCount() != max(n-1, 0) {
		return nil, fmt.Errorf("%s: %d nodes, %d edges: %w", methodToPrufer, n, t.EdgeCount(), ErrNotATree)
	}
	if n < 3 {
		return nil, nil
	}

	adj := t.InternalAdjacency()

	// orient the tree towards root n-1
	parent := make([]int, n)
	parent[n-1] = -1
	seen := make([]bool, n)
	seen[n-1] = true

	stack := make([]int, 0, n)
	stack = append(stack, n-1)

	reached := 0
	var id int
	for len(stack) > 0 {
		id, stack = stack[len(stack)-1], stack[:len(stack)-1]
		reached++
		for _, nbr := range adj[id] {
			if !seen[nbr] {
				seen[nbr] = true
				parent[nbr] = id
				stack = append(stack, nbr)
			}
		}
	}
	if reached != n {
		return nil, fmt.Errorf("%s: only %d of %d nodes reachable: %w", methodToPrufer, reached, n, ErrNotATree)
	}

	degree := make([]int, n)
	ptr := -1
	for i := 0; i < n; i++ {
		degree[i] = len(adj[i])
		if degree[i] == 1 && ptr == -1 {
			ptr = i
		}
	}

	seq := make([]int, n-2)
	leaf := ptr
	for i := 0; i < n-2; i++ {
		next := parent[leaf]
		seq[i] = next
		degree[next]--
		if degree[next] == 1 && next < ptr {
			leaf = next
		} else {
			ptr++
			for degree[ptr] != 1 {
				ptr++
			}
			leaf = ptr
		}
	}

	return seq, nil
}

// Random builds a uniformly random labeled tree on n nodes, deterministic for
// a fixed seed. n < 0 → ErrTooFewNodes; n ≤ 2 has a single shape and is built
// directly. Complexity: O(n).
func Random(n int, seed int64) (*tree.Tree, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandom, n, ErrTooFewNodes)
	}
	if n <= 2 {
		return Path(n)
	}

	rnd := rand.New(rand.NewSource(seed))
	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = rnd.Intn(n)
	}

	return FromPrufer(seq)
}

// Relabel returns a fresh tree with the same topology as t but node i renamed
// to perm[i]. Edge emission order follows t's edge list, so only identities
// change. perm must be a permutation of 0..n-1 → ErrBadPermutation otherwise.
// Complexity: O(n).
func Relabel(t *tree.Tree, perm []int) (*tree.Tree, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: nil tree: %w", methodRelabel, ErrNotATree)
	}
	n := t.NodeCount()
	if len(perm) != n {
		return nil, fmt.Errorf("%s: len(perm)=%d, n=%d: %w", methodRelabel, len(perm), n, ErrBadPermutation)
	}
	hit := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || hit[p] {
			return nil, fmt.Errorf("%s: perm[%d]=%d: %w", methodRelabel, i, p, ErrBadPermutation)
		}
		hit[p] = true
	}

	out, err := tree.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRelabel, err)
	}
	for _, e := range t.Edges() {
		if err = out.AddEdge(perm[e.U], perm[e.V]); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRelabel, perm[e.U], perm[e.V], err)
		}
	}

	return out, nil
}
