// gedsite converts a GEDCOM genealogy file into a set of cross-linked
// markdown profile documents for a wiki-style static site generator.
package main

import (
	"github.com/gedtree/gedsite/cmd"
)

func main() {
	cmd.Execute()
}
