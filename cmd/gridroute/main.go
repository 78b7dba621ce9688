// Command gridroute renders routing problems and routes their nets.
//
//	gridroute render -f problem.yaml
//	gridroute route  -f problem.yaml [--heuristic NAME] [--diagonal] [--json] [--trace]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
