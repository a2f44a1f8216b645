package mmd_test

import (
	"fmt"

	"github.com/katalvlaran/mindeg/builder"
	"github.com/katalvlaran/mindeg/mmd"
)

// ExampleOrder orders the path 0-1-2-3: both ends go first in one batch,
// then the interior.
func ExampleOrder() {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := mmd.Order(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("sequence:", res.InvPerm)
	fmt.Println("batches:", res.Batches)
	// Output:
	// sequence: [3 0 2 1]
	// batches: 3
}
