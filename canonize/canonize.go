// Package canonize computes the AHU canonical form of an unrooted tree:
// a parenthesis string equal for two trees iff they are isomorphic.
//
// Canonicalization runs in three phases: BFS discovery of size and initial
// leaves, iterative leaf peeling that folds child labels into parents, and a
// final combination of the one or two remaining center labels.
package canonize

import (
	"sort"
	"strings"

	"github.com/katalvlaran/treecanon/tree"
)

// emptyForm is the defined canonical form of the zero-node tree.
const emptyForm = ""

// walker encapsulates mutable canonicalization state.
//
// visited holds per-node generation marks: a node counts as visited when its
// mark equals the walker's current generation, so advancing the generation
// "clears" the whole array in O(1) between phases.
type walker struct {
	adj      [][]int  // live adjacency rows (exclusive access)
	labels   []string // live labels; nil for label-free peels (Centers)
	opts     Options
	visited  []int // generation marks, index-aligned with adj
	gen      int   // current generation
	treeSize int   // nodes still standing

	// per-round scratch, cleared and reused each round
	leafs    []int
	newLeafs []int
	folds    map[int][]string // parent → child labels collected this round
}

// Canonize computes the canonical form of t, applying any number of
// functional Options. Node labels are folded in place: after a successful run
// the tree's labels are consumed (tree.ResetLabels restores them).
//
// Returns ErrTreeNil for a nil tree, ErrOptionViolation for bad options,
// ErrStartNodeNotFound for an out-of-range start node, and ErrNotATree when
// WithValidation is enabled and t is cyclic or disconnected.
// The zero-node tree yields "" with a nil error.
//
// Complexity: O(V + E) time, O(V) extra space.
func Canonize(t *tree.Tree, opts ...Option) (string, error) {
	if t == nil {
		return emptyForm, ErrTreeNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return emptyForm, o.err
	}

	n := t.NodeCount()
	if n == 0 {
		return emptyForm, nil
	}
	if o.StartNode >= n {
		return emptyForm, ErrStartNodeNotFound
	}
	if o.Validate {
		if err := validateTree(t); err != nil {
			return emptyForm, err
		}
	}

	w := newWalker(t.InternalAdjacency(), t.InternalLabels(), o)
	w.discover(o.StartNode)
	w.peel()

	return w.combine(), nil
}

// newWalker prepares a walker over the given adjacency rows.
// labels may be nil, in which case peeling only tracks topology.
func newWalker(adj [][]int, labels []string, o Options) *walker {
	n := len(adj)

	return &walker{
		adj:      adj,
		labels:   labels,
		opts:     o,
		visited:  make([]int, n),
		leafs:    make([]int, 0, n),
		newLeafs: make([]int, 0, n),
		folds:    make(map[int][]string, n),
	}
}

// discover runs BFS from start, counting reachable nodes and collecting the
// degree-1 nodes as the initial leaf set. Marks use a fresh generation; a
// second generation is opened afterwards so peeling starts with every node
// unvisited again at O(1) cost.
func (w *walker) discover(start int) {
	w.gen++
	w.visited[start] = w.gen

	queue := make([]int, 0, len(w.adj))
	queue = append(queue, start)

	var id int
	for len(queue) > 0 {
		id, queue = queue[0], queue[1:]
		w.treeSize++

		if len(w.adj[id]) == 1 {
			w.leafs = append(w.leafs, id)
		}
		for _, nbr := range w.adj[id] {
			if w.visited[nbr] != w.gen {
				w.visited[nbr] = w.gen
				queue = append(queue, nbr)
			}
		}
	}

	// open the peeling generation
	w.gen++

	// a single node is trivially both root and leaf
	if w.treeSize == 1 {
		w.leafs = append(w.leafs[:0], start)
	}
}

// peel strips leaves round by round until at most two nodes remain.
//
// Ordering invariant (promotion correctness): each leaf is marked visited
// immediately after its own parent lookup and before the promotion check, so
// a later sibling in the same round sees earlier siblings as already removed.
func (w *walker) peel() {
	var round int
	// a malformed (cyclic) input can starve the leaf set; stop rather than spin
	for w.treeSize > 2 && len(w.leafs) > 0 {
		round++

		for _, leaf := range w.leafs {
			parent, ok := w.findParent(leaf)
			w.visited[leaf] = w.gen
			if !ok {
				// malformed input (cycle/disconnection); undefined result
				w.treeSize--
				continue
			}

			// parent with a single unvisited neighbor left is next round's leaf
			if _, promoted := w.findParent(parent); promoted {
				w.newLeafs = append(w.newLeafs, parent)
			}

			if w.labels != nil {
				w.folds[parent] = append(w.folds[parent], w.labels[leaf])
			}
			w.treeSize--
		}

		if w.labels != nil {
			w.foldRound()
		}

		// swap the leaf buffers and clear scratch for the next round
		w.leafs, w.newLeafs = w.newLeafs, w.leafs[:0]
		clear(w.folds)

		w.opts.OnRound(round, w.treeSize)
	}
}

// foldRound rewrites every parent label touched this round: collected child
// labels plus the parent's previous inner content, sorted lexicographically,
// concatenated, and wrapped in a fresh parenthesis pair.
func (w *walker) foldRound() {
	var inner string
	for parent, kids := range w.folds {
		inner = w.labels[parent][1 : len(w.labels[parent])-1]
		kids = append(kids, inner)
		sort.Strings(kids)
		w.labels[parent] = "(" + strings.Join(kids, "") + ")"
	}
}

// combine produces the final form from the one or two remaining centers.
// Two labels are concatenated smaller-or-equal first, so the result does not
// depend on which center was discovered first.
func (w *walker) combine() string {
	if w.labels == nil || len(w.leafs) == 0 {
		return emptyForm
	}

	first := w.labels[w.leafs[0]]
	if w.treeSize == 1 || len(w.leafs) == 1 {
		return first
	}

	second := w.labels[w.leafs[1]]
	if first <= second {
		return first + second
	}

	return second + first
}

// findParent scans node's neighbor row for the single neighbor not yet marked
// with the current generation. Reports ok=false when zero or more than one
// such neighbor exists. No side effects.
func (w *walker) findParent(node int) (int, bool) {
	parent := -1
	for _, nbr := range w.adj[node] {
		if w.visited[nbr] == w.gen {
			continue
		}
		if parent >= 0 {
			return -1, false
		}
		parent = nbr
	}
	if parent < 0 {
		return -1, false
	}

	return parent, true
}
