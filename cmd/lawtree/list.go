package main

import (
	"fmt"

	"github.com/fwojciec/lawtree"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := lawtree.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Type != "" {
		filter.DocumentType = &c.Type
	}
	if c.Variant != "" {
		filter.Variant = &c.Variant
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'lawtree parse --save' to store one.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %-12s  %4d nodes  %s\n", r.ID, r.Variant, r.NodeCount, r.Title)
	}

	return nil
}
