package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/lawtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

var _ lawtree.Normalizer = (*Normalizer)(nil)

// Normalizer converts legal-document markup into fragments.
type Normalizer struct {
	maxFragments int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithMaxFragments rejects documents that yield more than n fragments.
// Zero means no limit.
func WithMaxFragments(n int) Option {
	return func(nz *Normalizer) {
		nz.maxFragments = n
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	nz := &Normalizer{}
	for _, opt := range opts {
		opt(nz)
	}
	return nz
}

// Normalize implements lawtree.Normalizer.
//
// Every allowlisted element without allowlisted block descendants is one
// unit. Allowlisted elements that do contain such blocks, and the region
// itself, split their loose inline content into units at block boundaries.
// Other block elements only pass through their allowlisted descendants.
func (nz *Normalizer) Normalize(content string, v lawtree.Variant) ([]lawtree.Fragment, error) {
	region, err := selectRegion(content)
	if err != nil {
		return nil, err
	}

	w := &walker{allowed: make(map[atom.Atom]bool)}
	for _, name := range v.Elements() {
		w.allowed[atom.Lookup([]byte(name))] = true
	}
	for _, root := range region.Nodes {
		w.container(root)
	}

	if nz.maxFragments > 0 && len(w.fragments) > nz.maxFragments {
		return nil, lawtree.Errorf(lawtree.EINVALID, "document has %d fragments, limit is %d", len(w.fragments), nz.maxFragments)
	}
	return w.fragments, nil
}

// blockAtoms are elements that break inline runs.
var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Table: true, atom.Thead: true,
	atom.Tbody: true, atom.Tfoot: true, atom.Tr: true, atom.Td: true,
	atom.Th: true, atom.Caption: true, atom.Ul: true, atom.Ol: true,
	atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Section: true, atom.Article: true,
	atom.Blockquote: true, atom.Center: true, atom.Pre: true, atom.Hr: true,
	atom.Form: true, atom.Header: true, atom.Footer: true, atom.Main: true,
	atom.Nav: true, atom.Aside: true, atom.Figure: true,
}

type walker struct {
	allowed   map[atom.Atom]bool
	fragments []lawtree.Fragment
}

func isElement(n *html.Node) bool {
	return n.Type == html.ElementNode
}

func isBlock(n *html.Node) bool {
	return isElement(n) && blockAtoms[n.DataAtom]
}

// hasAllowedBlock reports whether any descendant of n is an allowlisted
// block element.
func (w *walker) hasAllowedBlock(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isBlock(c) && w.allowed[c.DataAtom] {
			return true
		}
		if w.hasAllowedBlock(c) {
			return true
		}
	}
	return false
}

// container emits the inline runs between n's block children as units and
// descends into the block children.
func (w *walker) container(n *html.Node) {
	var run []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !isBlock(c) {
			run = append(run, c)
			continue
		}
		w.emit(run...)
		run = nil
		w.block(c)
	}
	w.emit(run...)
}

// block dispatches a block element.
func (w *walker) block(n *html.Node) {
	switch {
	case !w.allowed[n.DataAtom]:
		w.transparent(n)
	case w.hasAllowedBlock(n):
		w.container(n)
	default:
		w.emit(n)
	}
}

// transparent visits the allowlisted descendants of a non-allowlisted
// element and drops its loose text.
func (w *walker) transparent(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case isBlock(c):
			w.block(c)
		case isElement(c) && w.allowed[c.DataAtom]:
			w.emit(c)
		case isElement(c):
			w.transparent(c)
		}
	}
}

// emit appends the fragment formed by nodes, a run of siblings in document
// order. Empty fragments are dropped.
func (w *walker) emit(nodes ...*html.Node) {
	if len(nodes) == 0 {
		return
	}
	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}
	text := cleanText(b.String())
	if text == "" {
		return
	}

	f := lawtree.Fragment{Text: text}
	for _, n := range nodes {
		f.Bold = f.Bold || hasBoldDescendant(n)
		if f.Anchor == "" {
			f.Anchor = findAnchor(n)
		}
	}
	f.Bold = f.Bold || hasBoldAncestor(nodes[0].Parent)
	w.fragments = append(w.fragments, f)
}

// writeText writes the text of n. Line breaks and block boundaries become
// spaces.
func writeText(b *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
		return
	case isElement(n) && n.DataAtom == atom.Br:
		b.WriteByte(' ')
		return
	}
	block := isBlock(n)
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte(' ')
	}
}

// cleanText normalizes non-breaking spaces, drops carriage returns,
// collapses whitespace and composes Unicode to NFC.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

var boldStyle = regexp.MustCompile(`(?i)font-weight\s*:\s*(bold|bolder|[7-9]00)`)

// isBold reports whether the element itself renders bold.
func isBold(n *html.Node) bool {
	if !isElement(n) {
		return false
	}
	switch n.DataAtom {
	case atom.B, atom.Strong, atom.H3, atom.H4, atom.H5:
		return true
	}
	for _, a := range n.Attr {
		if a.Key == "style" && boldStyle.MatchString(a.Val) {
			return true
		}
	}
	return false
}

func hasBoldDescendant(n *html.Node) bool {
	if isBold(n) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasBoldDescendant(c) {
			return true
		}
	}
	return false
}

func hasBoldAncestor(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if isBold(n) {
			return true
		}
	}
	return false
}

// findAnchor returns the name of the first named anchor at or below n.
func findAnchor(n *html.Node) string {
	if isElement(n) && n.DataAtom == atom.A {
		for _, a := range n.Attr {
			if a.Key == "name" && a.Val != "" {
				return a.Val
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if name := findAnchor(c); name != "" {
			return name
		}
	}
	return ""
}
