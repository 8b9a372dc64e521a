package tree_test

import (
	"fmt"

	"github.com/katalvlaran/treecanon/tree"
)

// ExampleNew assembles the 5-node chair tree and inspects it.
func ExampleNew() {
	//	0───2───3───4
	//	    │
	//	    1
	t, _ := tree.New(5)
	t.AddEdge(2, 0)
	t.AddEdge(2, 1)
	t.AddEdge(2, 3)
	t.AddEdge(3, 4)

	fmt.Println(t.NodeCount(), t.EdgeCount())
	nbrs, _ := t.Neighbors(2)
	fmt.Println(nbrs)
	lbl, _ := t.Label(4)
	fmt.Println(lbl)
	// Output:
	// 5 4
	// [0 1 3]
	// ()
}
