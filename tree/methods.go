// Package tree: mutators and accessors for the Tree arena.
//
// All methods here take the RWMutex; the lock-free fast paths used by the
// canonicalizer live in view.go.

package tree

import "fmt"

// AddEdge registers an undirected edge between nodes u and v: the edge is
// appended to the edge list and each endpoint is appended to the other's
// adjacency row.
//
// Index ranges are validated and self-loops rejected, but no acyclicity or
// connectivity check is performed — growing a valid tree is the caller's
// contract. Complexity: O(1) amortized.
func (t *Tree) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.adj)
	if u < 0 || u >= n {
		return fmt.Errorf("AddEdge: u=%d, n=%d: %w", u, n, ErrNodeOutOfRange)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("AddEdge: v=%d, n=%d: %w", v, n, ErrNodeOutOfRange)
	}

	t.edges = append(t.edges, Edge{U: u, V: v})
	t.adj[u] = append(t.adj[u], v)
	t.adj[v] = append(t.adj[v], u)

	return nil
}

// NodeCount reports the number of nodes in the arena. Complexity: O(1).
func (t *Tree) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.adj)
}

// EdgeCount reports the number of undirected edges. Complexity: O(1).
func (t *Tree) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.edges)
}

// Degree reports the number of neighbors of node i.
// Returns ErrNodeOutOfRange for an invalid index. Complexity: O(1).
func (t *Tree) Degree(i int) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i < 0 || i >= len(t.adj) {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrNodeOutOfRange)
	}

	return len(t.adj[i]), nil
}

// Neighbors returns a copy of node i's adjacency row, in edge-insertion order.
// Returns ErrNodeOutOfRange for an invalid index. Complexity: O(deg).
func (t *Tree) Neighbors(i int) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i < 0 || i >= len(t.adj) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrNodeOutOfRange)
	}

	return append([]int(nil), t.adj[i]...), nil
}

// Label returns the current label of node i.
// Returns ErrNodeOutOfRange for an invalid index. Complexity: O(1).
func (t *Tree) Label(i int) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i < 0 || i >= len(t.labels) {
		return "", fmt.Errorf("Label(%d): %w", i, ErrNodeOutOfRange)
	}

	return t.labels[i], nil
}

// SetLabel overwrites the label of node i.
// Returns ErrNodeOutOfRange for an invalid index. Complexity: O(1).
func (t *Tree) SetLabel(i int, label string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i < 0 || i >= len(t.labels) {
		return fmt.Errorf("SetLabel(%d): %w", i, ErrNodeOutOfRange)
	}
	t.labels[i] = label

	return nil
}

// Edges returns a copy of the edge list in insertion order. Complexity: O(E).
func (t *Tree) Edges() []Edge {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]Edge(nil), t.edges...)
}

// ResetLabels restores every label to LeafLabel, making the tree ready for
// another canonicalization run over the same topology. Complexity: O(V).
func (t *Tree) ResetLabels() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.labels {
		t.labels[i] = LeafLabel
	}
}

// Clone returns a deep copy of the tree: labels, adjacency rows, and edge
// list are all duplicated, so the clone and the original never share mutable
// state. Complexity: O(V + E).
func (t *Tree) Clone() *Tree {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := &Tree{
		labels: append([]string(nil), t.labels...),
		adj:    make([][]int, len(t.adj)),
		edges:  append([]Edge(nil), t.edges...),
	}
	for i, row := range t.adj {
		c.adj[i] = append([]int(nil), row...)
	}

	return c
}
