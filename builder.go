package lawtree

import (
	"strings"
	"unicode/utf8"
)

// mode is the side-channel state of a Builder. Exactly one mode is active.
type mode int

const (
	modeBody mode = iota
	modeMetadata
	modeAppendix
)

// Builder assembles a ParseResult from fragments delivered in document order.
// A Builder is single-use and not safe for concurrent use.
type Builder struct {
	variant Variant
	root    *Node
	stack   []*Node

	metadata    Metadata
	attachments []*Attachment

	mode mode
	// active is LabelRecipients or LabelSignature while in modeMetadata.
	active Label
	// enclosing is the level an open appendix is nested under.
	enclosing Level
	// named is set while the previous fragment opened a part or chapter,
	// whose upper-case name line may look like a signature marker.
	named bool
}

// NewBuilder returns a builder whose root node carries title.
func NewBuilder(title string, v Variant) *Builder {
	root := NewNode(LevelDocument, TypeDocument, title)
	return &Builder{
		variant: v,
		root:    root,
		stack:   []*Node{root},
	}
}

// Add consumes the next fragment.
func (b *Builder) Add(f Fragment) {
	if f.Text = strings.TrimSpace(f.Text); f.Text == "" {
		return
	}

	trigger := DetectTrigger(f)
	if trigger == LabelSignature && b.named {
		trigger = LabelNone
	}
	b.named = false

	if trigger == LabelRecipients || trigger == LabelSignature {
		b.mode = modeMetadata
		b.active = trigger
		b.addMetadata(trigger, f.Text)
		return
	}

	if b.mode == modeMetadata {
		if !b.endsMetadata(f, trigger) {
			switch {
			case utf8.RuneCountInString(f.Text) < b.variant.MetadataThreshold():
				b.addMetadata(b.active, f.Text)
				return
			case strings.HasPrefix(f.Text, "-"):
				b.addMetadata(LabelRecipients, f.Text)
				return
			}
		}
		b.mode = modeBody
	}

	if trigger == LabelAppendix {
		b.mode = modeAppendix
		b.enclosing = min(b.top().Level, LevelArticle)
		b.attachments = append(b.attachments, &Attachment{Title: f.Text})
		return
	}

	if b.mode == modeAppendix {
		n, ok := classify(f, b.top().Type, b.variant)
		if !ok || n.Level > b.enclosing {
			b.attachments[len(b.attachments)-1].AddText(f.Text)
			return
		}
		b.mode = modeBody
		b.push(n)
		return
	}

	if n, ok := classify(f, b.top().Type, b.variant); ok {
		b.push(n)
		return
	}
	b.top().AddText(f.Text)
}

// Result returns the parse result built so far.
func (b *Builder) Result() *ParseResult {
	return &ParseResult{
		Structure:   b.root,
		Metadata:    b.metadata,
		Attachments: b.attachments,
	}
}

// Build runs a fresh builder over fragments.
//
// Returns EINVALID if title is blank.
func Build(title string, v Variant, fragments []Fragment) (*ParseResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, Errorf(EINVALID, "document title required")
	}
	b := NewBuilder(title, v)
	for _, f := range fragments {
		b.Add(f)
	}
	return b.Result(), nil
}

func (b *Builder) top() *Node {
	return b.stack[len(b.stack)-1]
}

// push closes every open node at or below n's level, then attaches n to the
// innermost remaining node, merging it into a duplicate preceding sibling.
func (b *Builder) push(n *Node) {
	b.named = n.Type == TypePart || n.Type == TypeChapter
	for len(b.stack) > 1 && b.top().Level >= n.Level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.top()
	if b.variant.Merges() && len(parent.Children) > 0 {
		if last := parent.Children[len(parent.Children)-1]; IsDuplicate(last, n) {
			merge(last, n)
			b.stack = append(b.stack, last)
			return
		}
	}
	parent.Children = append(parent.Children, n)
	b.stack = append(b.stack, n)
}

// endsMetadata reports whether f opens body or appendix content again.
func (b *Builder) endsMetadata(f Fragment, trigger Label) bool {
	if trigger == LabelAppendix {
		return true
	}
	if t, ok := AnchorType(f.Anchor); ok && b.variant.anchored(t) {
		return true
	}
	_, ok := heading(f, b.variant)
	return ok
}

func (b *Builder) addMetadata(list Label, text string) {
	if list == LabelSignature {
		b.metadata.Signers = append(b.metadata.Signers, text)
		return
	}
	b.metadata.Recipients = append(b.metadata.Recipients, text)
}
