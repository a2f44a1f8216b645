// SPDX-License-Identifier: MIT

// Command mindeg computes minimum degree orderings of sparse symmetric
// graphs: a generated mesh or path, or an edge list read from a file.
//
//	mindeg order --grid 30x30 --delta 1
//	mindeg order --input edges.txt --single --perm
//	MINDEG_LOG_LEVEL=debug mindeg order --path 100
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
