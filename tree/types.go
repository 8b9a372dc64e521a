// Package tree declares the Tree arena, the Edge value type,
// sentinel errors, and the New constructor.
package tree

import (
	"errors"
	"sync"
)

// LeafLabel is the initial label of every node: the encoding of a bare leaf.
const LeafLabel = "()"

// Sentinel errors for tree construction and access.
var (
	// ErrNegativeCount indicates New was called with a negative node count.
	ErrNegativeCount = errors.New("tree: negative node count")

	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("tree: node index out of range")

	// ErrSelfLoop indicates an edge from a node to itself; trees have none.
	ErrSelfLoop = errors.New("tree: self-loop not allowed")
)

// Edge is one undirected edge, stored once. U and V are arena indices;
// no normalization of endpoint order is performed.
type Edge struct {
	U int
	V int
}

// Tree is an arena of n nodes connected by undirected edges.
//
// Node identity is the arena index. adj mirrors edges for O(deg) neighbor
// scans; neighbor order within a row is edge-insertion order and carries no
// meaning (canonicalization is order-independent).
// mu guards all three stores for concurrent assembly.
type Tree struct {
	mu sync.RWMutex

	labels []string // per-node mutable label, index-aligned
	adj    [][]int  // adjacency index derived from edges
	edges  []Edge   // single source of truth for connectivity
}

// New allocates a Tree with n isolated nodes, each labeled LeafLabel.
// Returns ErrNegativeCount if n < 0. n == 0 is a valid degenerate tree.
// Complexity: O(n).
func New(n int) (*Tree, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	t := &Tree{
		labels: make([]string, n),
		adj:    make([][]int, n),
		edges:  make([]Edge, 0, max(n-1, 0)),
	}
	for i := range t.labels {
		t.labels[i] = LeafLabel
	}

	return t, nil
}
