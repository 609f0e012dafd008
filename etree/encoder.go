// Package etree encodes parse results as XML using github.com/beevik/etree.
package etree

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/lawtree"
)

// Compile-time interface verification.
var _ lawtree.Encoder = (*Encoder)(nil)

// Encoder writes parse results as indented XML:
//
//	<result>
//	  <structure><node type="document" title="...">...</node></structure>
//	  <metadata><recipient/>...<signer/>...</metadata>
//	  <attachments><attachment title="..."><line/>...</attachment></attachments>
//	</result>
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Name implements lawtree.Encoder.
func (e *Encoder) Name() string { return "xml" }

// Encode implements lawtree.Encoder.
func (e *Encoder) Encode(w io.Writer, r *lawtree.ParseResult) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("result")
	structure := root.CreateElement("structure")
	if r.Structure != nil {
		addNode(structure, r.Structure)
	}

	metadata := root.CreateElement("metadata")
	for _, s := range r.Metadata.Recipients {
		metadata.CreateElement("recipient").SetText(s)
	}
	for _, s := range r.Metadata.Signers {
		metadata.CreateElement("signer").SetText(s)
	}

	attachments := root.CreateElement("attachments")
	for _, a := range r.Attachments {
		el := attachments.CreateElement("attachment")
		el.CreateAttr("title", a.Title)
		addLines(el, a.Content)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func addNode(parent *etree.Element, n *lawtree.Node) {
	el := parent.CreateElement("node")
	el.CreateAttr("type", string(n.Type))
	el.CreateAttr("title", n.Title)
	if n.AnchorID != "" {
		el.CreateAttr("anchor", n.AnchorID)
	}
	addLines(el, n.Content)
	for _, c := range n.Children {
		addNode(el, c)
	}
}

func addLines(el *etree.Element, lines []string) {
	for _, line := range lines {
		el.CreateElement("line").SetText(line)
	}
}
