package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fwojciec/lawtree"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	content, err := readDocument(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	in := &lawtree.Input{
		ID:      c.ID,
		Title:   c.Title,
		Type:    c.Type,
		Content: content,
	}
	if in.ID == "" {
		in.ID = fileStem(c.File)
	}
	if in.Title == "" {
		in.Title = fileStem(c.File)
	}

	result, err := deps.Parser.Parse(in.Content, in.Title, in.DocumentType())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	if c.Save {
		rec := lawtree.NewRecord(in, result)
		if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved record %s\n", rec.ID)
	}

	return render(deps, c.Format, result, !c.NoColor && !color.NoColor)
}
