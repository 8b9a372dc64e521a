// Package canonize implements AHU (Aho–Hopcroft–Ullman) canonicalization for
// unrooted, unlabeled trees over a tree.Tree arena.
//
// What
//
//   - Canonize maps a tree to a string over '(' and ')' such that two trees
//     are isomorphic if and only if their strings are identical.
//   - Centers returns the one or two nodes left standing by repeated leaf
//     removal (the tree's center or adjacent center pair).
//   - Isomorphic compares two trees by canonizing internal clones.
//
// How
//
//	Three phases, driven by a generation-marked visited array:
//	  1. Discovery — BFS from the start node counts reachable nodes and
//	     collects the degree-1 nodes as the initial leaf set.
//	  2. Peeling — while more than two nodes stand, every current leaf finds
//	     its unique unvisited neighbor (its parent), is marked removed, and
//	     contributes its label to that parent; parents left with a single
//	     unvisited neighbor are promoted to next-round leaves. At the end of
//	     each round every touched parent label is rebuilt: collected child
//	     labels plus the parent's previous inner content, sorted
//	     lexicographically, concatenated, wrapped in "(...)".
//	  3. Combination — one remaining node: its label is the answer; two
//	     remaining: the smaller-or-equal label concatenated first.
//
//	The lexicographic sort at every fold is what makes the result independent
//	of node numbering, edge-insertion order, and BFS start; the parenthesis
//	wrapping keeps the string unambiguously parseable back into a shape.
//
// Destructive labels
//
//	Canonize folds labels in place on the tree. After a run the labels are
//	consumed; call tree.ResetLabels (or work on tree.Clone) to run again.
//	Running two canonicalizations over the same tree concurrently is a data
//	race and is not supported.
//
// Malformed input
//
//	By default, cyclic or disconnected input is a precondition violation with
//	an unspecified result (the peel may terminate early with a meaningless
//	label). WithValidation makes the check explicit: such input is rejected
//	with ErrNotATree before any label is touched.
//
// Complexity (V = |nodes|, E = |edges| = V-1)
//
//   - Time:   O(V + E) amortized — generation marks make the per-round
//     "reset" free, each node is folded into a parent exactly once, and each
//     node is promoted to leaf at most once.
//   - Memory: O(V) — visited marks plus round scratch, cleared and reused.
//
// Usage
//
//	form, err := canonize.Canonize(t)
//	if err != nil {
//	    // ErrTreeNil, ErrStartNodeNotFound, ErrOptionViolation, or ErrNotATree
//	}
//
//	// With functional options:
//	form, err := canonize.Canonize(
//	    t,
//	    canonize.WithStartNode(3),
//	    canonize.WithValidation(),
//	    canonize.WithOnRound(func(round, remaining int) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): start at node 0, no-op round hook, no validation.
//   - WithStartNode(i):  start discovery at node i (result is unaffected).
//   - WithOnRound(fn):   hook fired after each peeling round.
//   - WithValidation():  reject cyclic/disconnected input with ErrNotATree.
//
// Errors
//
//   - ErrTreeNil            if the tree pointer is nil.
//   - ErrStartNodeNotFound  if the start node is outside the arena.
//   - ErrOptionViolation    if an invalid Option was supplied.
//   - ErrNotATree           if validation is enabled and the input is not a tree.
package canonize
