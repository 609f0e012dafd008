package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/batch"
	"github.com/fwojciec/lawtree/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	inputs, err := batch.ReadInputs(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
		return err
	}

	runner := &batch.Runner{
		Parser:      deps.Parser,
		Concurrency: c.Concurrency,
		Dedupe:      c.Dedupe,
	}

	var store *fs.Store
	switch {
	case c.Save:
		runner.Records = deps.Records
	case c.Out != "":
		out := filepath.Clean(c.Out)
		store = fs.NewStore(filepath.Dir(out), filepath.Base(out))
		if err := store.CheckTarget(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
			return err
		}
		// Discard staging left by an interrupted run.
		_ = store.Abort()
		runner.Records = store
	}

	if c.Log != "" {
		log, err := fs.OpenLog(c.Log)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer log.Close()
		runner.Log = log
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Parsing %d documents\n", event.Total)
		case batch.ProgressFailed:
			name := event.SourceID
			if name == "" {
				name = batch.Truncate(event.Title, 60)
			}
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", name, lawtree.ErrorMessage(event.Error))
		}
	}

	result, _, err := runner.Run(deps.Ctx, inputs, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", lawtree.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "  %s\n", batch.FormatResult(result))
	return nil
}
