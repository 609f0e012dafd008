package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/lawtree"
)

// treeStyle colors the parts of an outline line.
type treeStyle struct {
	types  map[lawtree.NodeType]*color.Color
	plain  *color.Color
	title  *color.Color
	anchor *color.Color
	muted  *color.Color
}

func newTreeStyle(colorize bool) *treeStyle {
	heading := color.New(color.FgMagenta, color.Bold)
	s := &treeStyle{
		types: map[lawtree.NodeType]*color.Color{
			lawtree.TypeDocument: color.New(color.FgWhite, color.Bold),
			lawtree.TypePart:     heading,
			lawtree.TypeChapter:  heading,
			lawtree.TypeSection:  color.New(color.FgBlue, color.Bold),
			lawtree.TypeArticle:  color.New(color.FgCyan),
			lawtree.TypeClause:   color.New(color.FgGreen),
			lawtree.TypeItem:     color.New(color.FgGreen),
		},
		plain:  color.New(color.Reset),
		title:  color.New(color.Bold),
		anchor: color.New(color.FgYellow),
		muted:  color.New(color.FgHiBlack),
	}

	all := []*color.Color{s.plain, s.title, s.anchor, s.muted}
	for _, c := range s.types {
		all = append(all, c)
	}
	for _, c := range all {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *treeStyle) typeColor(t lawtree.NodeType) *color.Color {
	if c, ok := s.types[t]; ok {
		return c
	}
	return s.plain
}

// writeTree writes an indented outline of the tree rooted at root, one node
// per line with its type, title, anchor and number of content lines.
func writeTree(w io.Writer, root *lawtree.Node, colorize bool) error {
	if root == nil {
		return nil
	}
	s := newTreeStyle(colorize)

	var b strings.Builder
	var walk func(n *lawtree.Node, depth int)
	walk = func(n *lawtree.Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(s.typeColor(n.Type).Sprint(n.Type))
		b.WriteByte(' ')
		b.WriteString(s.title.Sprint(n.Title))
		if n.AnchorID != "" {
			b.WriteByte(' ')
			b.WriteString(s.anchor.Sprint("#" + n.AnchorID))
		}
		if len(n.Content) > 0 {
			b.WriteByte(' ')
			b.WriteString(s.muted.Sprint(lineCount(len(n.Content))))
		}
		b.WriteByte('\n')
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)

	_, err := io.WriteString(w, b.String())
	return err
}

func lineCount(n int) string {
	if n == 1 {
		return "(1 line)"
	}
	return fmt.Sprintf("(%d lines)", n)
}
