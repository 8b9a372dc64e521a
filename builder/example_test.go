package builder_test

import (
	"fmt"

	"github.com/katalvlaran/treecanon/builder"
)

// ExampleFromPrufer decodes the sequence [0 0] into the 4-node star.
func ExampleFromPrufer() {
	t, err := builder.FromPrufer([]int{0, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t.Edges())
	// Output:
	// [{1 0} {2 0} {0 3}]
}

// ExampleToPrufer encodes a 5-node path; interior nodes appear in peel order.
func ExampleToPrufer() {
	p, _ := builder.Path(5)

	seq, err := builder.ToPrufer(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(seq)
	// Output:
	// [1 2 3]
}

// ExampleRandom draws the same tree twice from the same seed.
func ExampleRandom() {
	a, _ := builder.Random(10, 42)
	b, _ := builder.Random(10, 42)

	fmt.Println(a.NodeCount(), a.EdgeCount())
	fmt.Println(fmt.Sprint(a.Edges()) == fmt.Sprint(b.Edges()))
	// Output:
	// 10 9
	// true
}
