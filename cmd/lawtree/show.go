package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fwojciec/lawtree"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	if c.Format == "summary" {
		fmt.Fprintf(deps.Stdout, "id: %s\nsource: %s\ntype: %s (%s)\nparsed: %s\n\n",
			rec.ID, rec.SourceID, rec.DocumentType, rec.Variant, rec.ParsedAt.Format("2006-01-02 15:04:05"))
	}

	return render(deps, c.Format, rec.Result, !c.NoColor && !color.NoColor)
}
