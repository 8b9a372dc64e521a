// Package tree provides the arena-backed unrooted tree container consumed by
// the canonize package.
//
// What
//
//   - A Tree owns all of its nodes; a node's identity is simply its index in
//     the arena (0..n-1). There are no node objects to share or leak.
//   - Undirected edges are stored once in an edge list and mirrored into an
//     adjacency index, so both endpoints always agree on connectivity.
//   - Every node carries a mutable label, initialized to LeafLabel ("()").
//     Labels are the canonicalizer's working storage: Canonize folds child
//     labels into parent labels in place, so after a run the labels are
//     consumed. Use ResetLabels or Clone to reuse the topology.
//
// Why
//
//   - Index identity makes visited-set membership an integer comparison and
//     side-array lookup — no hashing, no pointer ownership questions.
//   - A single edge list plus a derived adjacency index rules out asymmetric
//     edge state by construction.
//
// Validation policy
//
//	AddEdge validates index ranges and rejects self-loops, but it does NOT
//	check that the growing graph stays acyclic or becomes connected; that is
//	the caller's contract (canonize.WithValidation offers an explicit check).
//
// Concurrency
//
//	Construction and accessors are guarded by a sync.RWMutex, so a Tree may be
//	assembled from several goroutines. The Internal* views and the label
//	mutation performed by canonize.Canonize bypass the lock: canonicalization
//	requires exclusive access to the tree for its whole duration.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - New:        O(V)
//   - AddEdge:    O(1) amortized
//   - Neighbors:  O(deg)   (copying accessor)
//   - Clone:      O(V + E)
//
// Errors
//
//   - ErrNegativeCount  if New is called with n < 0.
//   - ErrNodeOutOfRange if a node index is outside [0, n).
//   - ErrSelfLoop       if AddEdge(u, u) is attempted.
package tree
