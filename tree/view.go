// File: view.go
// Role: lock-free internal views consumed by the canonicalizer.
// Concurrency:
//   - These views hand out the live backing slices WITHOUT locking.
//   - Callers must hold exclusive access to the Tree for as long as they use
//     the returned slices (canonize.Canonize requires exactly that).

package tree

// InternalAdjacency returns the live adjacency rows (no locking, no copy).
// Row i lists the neighbors of node i in edge-insertion order. Mutating the
// rows corrupts the tree; the canonicalizer only reads them.
func (t *Tree) InternalAdjacency() [][]int {
	return t.adj
}

// InternalLabels returns the live label slice (no locking, no copy).
// The canonicalizer folds labels in place through this view; after a run the
// labels are consumed (see ResetLabels).
func (t *Tree) InternalLabels() []string {
	return t.labels
}
