package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/charset"
)

// readDocument reads an HTML file and decodes it to UTF-8.
func readDocument(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return charset.Decode(raw, "")
}

// fileStem returns the file name without directory and extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// render writes a parse result in the named format.
func render(deps *Dependencies, format string, r *lawtree.ParseResult, colorize bool) error {
	switch format {
	case "tree":
		return writeTree(deps.Stdout, r.Structure, colorize)
	case "text":
		_, err := deps.Stdout.Write([]byte(lawtree.PlainText(r.Structure) + "\n"))
		return err
	case "summary":
		_, err := deps.Stdout.Write([]byte(lawtree.FormatSummary(r) + "\n"))
		return err
	}

	enc, ok := deps.Encoders[format]
	if !ok {
		return lawtree.Errorf(lawtree.EINVALID, "unknown format %q", format)
	}
	return enc.Encode(deps.Stdout, r)
}
