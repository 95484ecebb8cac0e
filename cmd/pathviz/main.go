// Command pathviz animates breadth-first search on a grid, either in the
// terminal (pathviz run) or for browsers over a websocket (pathviz serve).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
