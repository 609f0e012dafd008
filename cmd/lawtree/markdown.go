package main

import (
	"fmt"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/goquery"
)

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	content, err := readDocument(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	region, err := goquery.ContentHTML(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(region, lawtree.VariantFor(c.Type))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
