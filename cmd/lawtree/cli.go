package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/lawtree"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Parser    lawtree.Parser
	Records   lawtree.RecordService
	Converter lawtree.Converter
	Encoders  map[string]lawtree.Encoder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB           string `help:"Database path (default: $LAWTREE_DB or ~/.lawtree/lawtree.db)"`
	LogLevel     string `name:"log-level" env:"LAWTREE_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	MaxFragments int    `name:"max-fragments" default:"0" help:"Reject documents with more fragments (0 for no limit)"`

	Parse    ParseCmd    `cmd:"" help:"Parse a document file"`
	Batch    BatchCmd    `cmd:"" help:"Parse a JSON lines file of documents"`
	List     ListCmd     `cmd:"" help:"List stored parse records"`
	Show     ShowCmd     `cmd:"" help:"Show a stored parse record"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stored parse record"`
	Markdown MarkdownCmd `cmd:"" help:"Render a document's content as Markdown"`
	Types    TypesCmd    `cmd:"" help:"List document types and their rule variants"`
	Serve    ServeCmd    `cmd:"" help:"Serve the HTTP API"`
}

// needsRecords reports whether the selected command uses record storage.
func (c *CLI) needsRecords(cmd string) bool {
	switch cmd {
	case "list", "show", "delete", "serve":
		return true
	case "parse":
		return c.Parse.Save
	case "batch":
		return c.Batch.Save
	}
	return false
}

// Output formats shared by parse and show.
const formatEnum = "json,yaml,xml,tree,text,summary"

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File    string `arg:"" type:"existingfile" help:"HTML document file"`
	Title   string `short:"t" help:"Document title (default: file name)"`
	Type    string `short:"T" name:"type" help:"Document type label (default: inferred from title)"`
	ID      string `help:"Source ID stored with the record"`
	Format  string `short:"f" default:"json" enum:"${formats}" help:"Output format (${enum})"`
	Save    bool   `short:"s" help:"Store the result in the database"`
	NoColor bool   `name:"no-color" help:"Disable colors in tree output"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string `arg:"" type:"existingfile" help:"JSON lines file with id, title, type and content"`
	Out         string `short:"o" xor:"dest" help:"Write <id>.json and <id>.txt files to this directory, replacing earlier batch output there (refuses other non-empty directories)"`
	Save        bool   `short:"s" xor:"dest" help:"Store results in the database"`
	Log         string `short:"l" help:"Append one JSON line per document to this file"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent parse limit"`
	Dedupe      bool   `help:"Skip documents whose content repeats an earlier one"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type    string `short:"T" name:"type" help:"Filter by document type"`
	Variant string `short:"v" help:"Filter by rule variant"`
	Limit   int    `short:"n" default:"20" help:"Maximum records to list"`
	Offset  int    `help:"Records to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Record ID"`
	Format  string `short:"f" default:"summary" enum:"${formats}" help:"Output format (${enum})"`
	NoColor bool   `name:"no-color" help:"Disable colors in tree output"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	File string `arg:"" type:"existingfile" help:"HTML document file"`
	Type string `short:"T" name:"type" help:"Document type label selecting the heading rules (default: hierarchical rules)"`
}

// TypesCmd is the "types" subcommand.
type TypesCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string  `short:"a" default:"127.0.0.1:8080" help:"Listen address"`
	RateLimit float64 `name:"rate-limit" default:"0" help:"Parse requests per second per client (0 for no limit)"`
	Burst     int     `default:"10" help:"Parse request burst per client"`
}
