package main

import (
	"fmt"

	"github.com/fwojciec/lawtree"
)

// Run executes the types command.
func (c *TypesCmd) Run(deps *Dependencies) error {
	for _, r := range lawtree.Routes() {
		fmt.Fprintf(deps.Stdout, "%-20s %s\n", r.Label, r.Variant)
	}
	fmt.Fprintf(deps.Stdout, "%-20s %s\n", "(other)", lawtree.Hierarchical)
	return nil
}
